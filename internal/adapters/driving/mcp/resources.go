package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/planar/internal/core/domain"
)

const uriScheme = "planar://"

// kindSyntax documents the spec form accepted for each shape kind.
var kindSyntax = map[domain.ShapeKind]string{
	domain.ShapeKindRectangle: "rect:<top-right>;<bottom-left>  e.g. rect:10,10;0,0\n" +
		"The top-right corner must lie strictly above and to the right of the bottom-left corner.",
	domain.ShapeKindCircle: "circle:<center>;<radius>  e.g. circle:5,5;5\n" +
		"The radius must be zero or positive.",
	domain.ShapeKindVector2D: "vector:<start>;<end>  e.g. vector:0,0;10,10\n" +
		"Vectors enclose no area and contribute 0 to totals.",
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current output and distance settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "kinds/{kind}",
		Name:        "shape-kind",
		Description: "Spec syntax and rules for a shape kind",
		MIMEType:    "text/plain",
	}, s.handleKindResource)
}

// handleSettingsResource returns the current settings, or defaults when no
// settings service is wired.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := domain.DefaultAppSettings()
	if s.ports.Settings != nil {
		current, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("getting settings: %w", err)
		}
		settings = *current
	}

	type settingsInfo struct {
		Format    string `json:"format"`
		Precision int    `json:"precision"`
		Color     bool   `json:"color"`
		Metric    string `json:"metric"`
	}

	data, err := json.MarshalIndent(settingsInfo{
		Format:    settings.Output.Format.String(),
		Precision: settings.Output.Precision,
		Color:     settings.Output.Color,
		Metric:    settings.Distance.Metric.String(),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleKindResource describes one shape kind.
func (s *Server) handleKindResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	syntax, ok := kindSyntax[domain.ShapeKind(extractKind(req.Params.URI))]
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     syntax,
		}},
	}, nil
}

// extractKind extracts the kind from a URI like planar://kinds/{kind}.
func extractKind(uri string) string {
	const prefix = uriScheme + "kinds/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
