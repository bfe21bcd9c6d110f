package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mdsolution/vitrine/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for vitrine resources.
	uriScheme = "vitrine://"

	offeringsSuffix = "/offerings"
	fallbackSuffix  = "/fallback"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing surfaces.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "surfaces",
		Name:        "surfaces",
		Description: "List of all display surfaces",
		MIMEType:    "application/json",
	}, s.handleSurfacesResource)

	// Template for resolved offerings.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "surfaces/{name}" + offeringsSuffix,
		Name:        "surface-offerings",
		Description: "Offerings a surface renders, resolved against the record source",
		MIMEType:    "application/json",
	}, s.handleOfferingsResource)

	// Template for the fallback catalog.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "surfaces/{name}" + fallbackSuffix,
		Name:        "surface-fallback",
		Description: "Built-in fallback catalog of a surface",
		MIMEType:    "application/json",
	}, s.handleFallbackResource)
}

// handleSurfacesResource returns a list of all surfaces.
func (s *Server) handleSurfacesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResult(req.Params.URI, surfaceOutputs(s.ports.Content.Surfaces()))
}

// handleOfferingsResource resolves one surface.
func (s *Server) handleOfferingsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractSurfaceName(req.Params.URI, offeringsSuffix)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	res, err := s.ports.Content.Resolve(ctx, name)
	if errors.Is(err, domain.ErrUnknownSurface) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", name, err)
	}

	return jsonResult(req.Params.URI, toResolveOutput(res))
}

// handleFallbackResource returns one surface's fallback catalog.
func (s *Server) handleFallbackResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractSurfaceName(req.Params.URI, fallbackSuffix)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	res, err := s.ports.Content.Fallback(name)
	if errors.Is(err, domain.ErrUnknownSurface) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("loading fallback for %s: %w", name, err)
	}

	return jsonResult(req.Params.URI, res.Descriptors)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractSurfaceName extracts the name from a URI like vitrine://surfaces/{name}/offerings.
func extractSurfaceName(uri, suffix string) string {
	const prefix = uriScheme + "surfaces/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	name := strings.TrimSuffix(uri, suffix)
	if strings.Contains(name, "/") {
		return ""
	}
	return name
}
