package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdsolution/vitrine/internal/core/domain"
)

var (
	resolveJSON bool
	resolveAll  bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [surface]",
	Short: "Resolve the offerings for a display surface",
	Long: `Fetch service records once and resolve them against a surface's fallback catalog.

Without a surface name (or with --all) every surface is resolved, each
with its own fetch. Record source failures never fail the command: the
surface renders its fallback catalog and the failure is reported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

var surfacesCmd = &cobra.Command{
	Use:   "surfaces",
	Short: "List the known display surfaces",
	RunE:  runSurfaces,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output as JSON")
	resolveCmd.Flags().BoolVar(&resolveAll, "all", false, "resolve every surface")
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(surfacesCmd)
}

// resolutionJSON is the machine-readable form of a resolution.
type resolutionJSON struct {
	Surface     string              `json:"surface"`
	Origin      string              `json:"origin"`
	Selected    int                 `json:"selected"`
	FetchError  string              `json:"fetch_error,omitempty"`
	Descriptors []domain.Descriptor `json:"offerings"`
}

func toResolutionJSON(res *domain.Resolution) resolutionJSON {
	out := resolutionJSON{
		Surface:     res.Surface,
		Origin:      res.Origin.String(),
		Selected:    res.Selected,
		Descriptors: res.Descriptors,
	}
	if res.FetchErr != nil {
		out.FetchError = res.FetchErr.Error()
	}
	return out
}

func runResolve(cmd *cobra.Command, args []string) error {
	if contentService == nil {
		return errors.New("content service not configured")
	}

	var results []domain.Resolution
	if resolveAll || len(args) == 0 {
		all, err := contentService.ResolveAll(cmd.Context())
		if err != nil {
			return err
		}
		results = all
	} else {
		res, err := contentService.Resolve(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, domain.ErrUnknownSurface) {
				return fmt.Errorf("%w: %s (run 'vitrine surfaces' to list them)", err, args[0])
			}
			return err
		}
		results = []domain.Resolution{*res}
	}

	if resolveJSON {
		out := make([]resolutionJSON, 0, len(results))
		for i := range results {
			out = append(out, toResolutionJSON(&results[i]))
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal resolutions: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for i := range results {
		if i > 0 {
			cmd.Println()
		}
		printResolution(cmd.OutOrStdout(), &results[i])
	}
	return nil
}

func printResolution(w io.Writer, res *domain.Resolution) {
	header := fmt.Sprintf("%s (%s", res.Surface, res.Origin)
	if res.Origin == domain.OriginRemote {
		header += fmt.Sprintf(", %d records", res.Selected)
	}
	header += ")"
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("=", len(header)))
	if res.FetchErr != nil {
		fmt.Fprintf(w, "Record source failed: %v\n", res.FetchErr)
	}

	for i := range res.Descriptors {
		d := &res.Descriptors[i]
		fmt.Fprintln(w)
		marker := " "
		if d.Highlighted {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %d. %s [%s]\n", marker, i+1, d.Name, d.BadgeText)
		fmt.Fprintf(w, "     %s\n", d.Subtitle)
		fmt.Fprintf(w, "     %s  %s\n", d.Price, d.ExtraInfo)
		fmt.Fprintf(w, "     %s\n", d.Description)
		for _, f := range d.Features {
			fmt.Fprintf(w, "       - %s\n", f)
		}
		fmt.Fprintf(w, "     -> %s\n", d.CTAText)
	}
}

func runSurfaces(cmd *cobra.Command, _ []string) error {
	if contentService == nil {
		return errors.New("content service not configured")
	}

	surfaces := contentService.Surfaces()
	cmd.Printf("%-16s %-14s %-14s %s\n", "NAME", "CATEGORY", "PAGE", "TITLE")
	for _, s := range surfaces {
		page := s.Page
		if s.CategoryOnly {
			page += " (or none)"
		}
		cmd.Printf("%-16s %-14s %-14s %s\n", s.Name, s.Category, page, s.Title)
	}
	return nil
}
