package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mdsolution/vitrine/internal/core/domain"
)

// ResolveInput is the input schema for the resolve_offerings tool.
type ResolveInput struct {
	Surface string `json:"surface" jsonschema:"the display surface to resolve, e.g. pricing"`
}

// ResolveOutput is the output schema for the resolve_offerings tool.
type ResolveOutput struct {
	Surface    string              `json:"surface"`
	Origin     string              `json:"origin"`
	Selected   int                 `json:"selected"`
	FetchError string              `json:"fetch_error,omitempty"`
	Offerings  []domain.Descriptor `json:"offerings"`
}

// ListSurfacesInput is the (empty) input schema for the list_surfaces tool.
type ListSurfacesInput struct{}

// ListSurfacesOutput is the output schema for the list_surfaces tool.
type ListSurfacesOutput struct {
	Surfaces []SurfaceOutput `json:"surfaces"`
}

// SurfaceOutput describes one display surface.
type SurfaceOutput struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	Page         string `json:"page"`
	CategoryOnly bool   `json:"category_only"`
	Single       bool   `json:"single"`
}

// ListRecordsInput is the input schema for the list_records tool.
type ListRecordsInput struct {
	Category string `json:"category,omitempty" jsonschema:"only records in this category"`
	Page     string `json:"page,omitempty" jsonschema:"only records tagged with this page"`
	Search   string `json:"search,omitempty" jsonschema:"case-insensitive substring of name, category or page"`
}

// ListRecordsOutput is the output schema for the list_records tool.
type ListRecordsOutput struct {
	Records []RecordOutput `json:"records"`
	Count   int            `json:"count"`
}

// RecordOutput is a stored record. Absent fields are omitted.
type RecordOutput struct {
	ID            *string  `json:"id,omitempty"`
	Name          *string  `json:"name,omitempty"`
	Price         *string  `json:"price,omitempty"`
	Category      string   `json:"category"`
	Page          *string  `json:"page,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
	IsHighlighted *bool    `json:"is_highlighted,omitempty"`
	Features      []string `json:"features,omitempty"`
	DisplayOrder  float64  `json:"display_order"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_offerings",
		Description: "Resolve the offerings a display surface renders, merging remote records with the fallback catalog",
	}, s.handleResolve)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_surfaces",
		Description: "List the display surfaces and the records each accepts",
	}, s.handleListSurfaces)

	if s.ports.Records != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_records",
			Description: "List service records in the local store",
		}, s.handleListRecords)
	}
}

// handleResolve handles the resolve_offerings tool invocation.
func (s *Server) handleResolve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResolveInput,
) (*mcp.CallToolResult, ResolveOutput, error) {
	if input.Surface == "" {
		return nil, ResolveOutput{}, errors.New("surface is required")
	}

	res, err := s.ports.Content.Resolve(ctx, input.Surface)
	if err != nil {
		return nil, ResolveOutput{}, err
	}

	return nil, toResolveOutput(res), nil
}

// handleListSurfaces handles the list_surfaces tool invocation.
func (s *Server) handleListSurfaces(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListSurfacesInput,
) (*mcp.CallToolResult, ListSurfacesOutput, error) {
	return nil, ListSurfacesOutput{Surfaces: surfaceOutputs(s.ports.Content.Surfaces())}, nil
}

// handleListRecords handles the list_records tool invocation.
func (s *Server) handleListRecords(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListRecordsInput,
) (*mcp.CallToolResult, ListRecordsOutput, error) {
	filter := domain.RecordFilter{
		Category: domain.Category(input.Category),
		Page:     input.Page,
		Search:   input.Search,
	}

	records, err := s.ports.Records.List(ctx, filter)
	if err != nil {
		return nil, ListRecordsOutput{}, err
	}

	output := ListRecordsOutput{
		Records: make([]RecordOutput, len(records)),
		Count:   len(records),
	}
	for i := range records {
		r := &records[i]
		output.Records[i] = RecordOutput{
			ID:            r.ID.Ptr(),
			Name:          r.Name.Ptr(),
			Price:         r.Price.Ptr(),
			Category:      r.Category.String(),
			Page:          r.Page.Ptr(),
			IsActive:      r.IsActive.Ptr(),
			IsHighlighted: r.IsHighlighted.Ptr(),
			Features:      r.Features,
			DisplayOrder:  r.DisplayOrder,
		}
	}

	return nil, output, nil
}

func toResolveOutput(res *domain.Resolution) ResolveOutput {
	out := ResolveOutput{
		Surface:   res.Surface,
		Origin:    res.Origin.String(),
		Selected:  res.Selected,
		Offerings: res.Descriptors,
	}
	if res.FetchErr != nil {
		out.FetchError = res.FetchErr.Error()
	}
	return out
}

func surfaceOutputs(surfaces []domain.Surface) []SurfaceOutput {
	out := make([]SurfaceOutput, len(surfaces))
	for i, s := range surfaces {
		out[i] = SurfaceOutput{
			Name:         s.Name,
			Title:        s.Title,
			Category:     s.Category.String(),
			Page:         s.Page,
			CategoryOnly: s.CategoryOnly,
			Single:       s.Single,
		}
	}
	return out
}
