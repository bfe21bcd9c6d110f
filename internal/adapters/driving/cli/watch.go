package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mdsolution/vitrine/internal/core/domain"
	"github.com/mdsolution/vitrine/internal/core/services"
	"github.com/mdsolution/vitrine/internal/logger"
)

const defaultWatchInterval = 30 * time.Second

var (
	watchInterval time.Duration
	watchFor      time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [surface...]",
	Short: "Keep surfaces mounted and report every re-resolution",
	Long: `Mount display surfaces and re-resolve them whenever the records change.

Each surface starts on its fallback catalog. When the record source is a
JSON export file, changes to the file trigger re-resolution; otherwise
surfaces are re-resolved every --interval. A re-resolution cancels the
previous one, so a slow fetch never overwrites a newer result.

Without surface names every surface is watched.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", defaultWatchInterval,
		"re-resolve interval when the source cannot signal changes")
	watchCmd.Flags().DurationVar(&watchFor, "for", 0, "stop after this long (0 = until interrupted)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if contentService == nil {
		return errors.New("content service not configured")
	}
	if watchInterval <= 0 {
		return fmt.Errorf("--interval must be positive: %w", domain.ErrInvalidInput)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if watchFor > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, watchFor)
		defer cancel()
	}

	names := args
	if len(names) == 0 {
		for _, s := range contentService.Surfaces() {
			names = append(names, s.Name)
		}
	}

	var mu sync.Mutex
	out := cmd.OutOrStdout()
	report := func(res domain.Resolution) {
		mu.Lock()
		defer mu.Unlock()
		printWatchLine(out, &res)
	}

	mounts := make([]*services.SurfaceMount, 0, len(names))
	for _, name := range names {
		m, err := services.NewSurfaceMount(contentService, name, report)
		if err != nil {
			return err
		}
		report(m.Current())
		mounts = append(mounts, m)
	}

	remount := func() {
		for _, m := range mounts {
			m.Unmount()
			m.Mount(ctx)
		}
	}
	defer func() {
		for _, m := range mounts {
			m.Unmount()
			<-m.Done()
		}
	}()

	remount()

	if recordWatcher != nil {
		logger.Info("Watching records file for changes")
		return recordWatcher.Watch(ctx, func() {
			logger.Info("Records changed, re-resolving %d surfaces", len(mounts))
			remount()
		})
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			remount()
		}
	}
}

func printWatchLine(w io.Writer, res *domain.Resolution) {
	names := make([]string, len(res.Descriptors))
	for i := range res.Descriptors {
		names[i] = res.Descriptors[i].Name
	}

	status := res.Origin.String()
	if res.Origin == domain.OriginRemote {
		status = fmt.Sprintf("remote, %d records", res.Selected)
	}
	if res.FetchErr != nil {
		status += ": " + res.FetchErr.Error()
	}

	fmt.Fprintf(w, "[%s] %s (%s): %s\n",
		res.ResolvedAt.Format(time.TimeOnly), res.Surface, status, strings.Join(names, ", "))
}
