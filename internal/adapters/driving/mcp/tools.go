package mcp

import (
	"context"
	"fmt"
	"math"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/planar/internal/core/domain"
	"github.com/custodia-labs/planar/internal/core/ports/driving"
)

// ParsePointInput is the input schema for the parse_point tool.
type ParsePointInput struct {
	Point string `json:"point" jsonschema:"coordinate text in the form x,y"`
}

// PointOutput is a parsed point.
type PointOutput struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceInput is the input schema for the distance tool.
type DistanceInput struct {
	A      string `json:"a" jsonschema:"first point as x,y"`
	B      string `json:"b" jsonschema:"second point as x,y"`
	Metric string `json:"metric,omitempty" jsonschema:"euclidean or manhattan (default from settings)"`
}

// DistanceOutput is the output schema for the distance tool.
type DistanceOutput struct {
	Metric   string  `json:"metric"`
	Distance float64 `json:"distance"`
}

// AreaInput is the input schema for the area tool.
type AreaInput struct {
	Shapes []string `json:"shapes" jsonschema:"shape specs such as rect:10,10;0,0 or circle:5,5;5 or vector:0,0;1,1"`
}

// AreaOutput is the output schema for the area tool.
type AreaOutput struct {
	Shapes []AreaEntryOutput `json:"shapes"`
	Total  float64           `json:"total"`
}

// AreaEntryOutput is the area of one shape.
type AreaEntryOutput struct {
	Kind        string  `json:"kind"`
	Description string  `json:"description"`
	Area        float64 `json:"area"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_point",
		Description: "Parse \"x,y\" coordinate text into a point; NaN and Inf coordinates are rejected",
	}, s.handleParsePoint)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "distance",
		Description: "Distance between two \"x,y\" points",
	}, s.handleDistance)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "area",
		Description: "Area of each shape and their total; vectors contribute 0",
	}, s.handleArea)
}

func (s *Server) handleParsePoint(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ParsePointInput,
) (*mcp.CallToolResult, PointOutput, error) {
	p, err := s.ports.Geometry.ParsePoint(input.Point)
	if err != nil {
		return nil, PointOutput{}, err
	}
	if err := finite("point", p.X, p.Y); err != nil {
		return nil, PointOutput{}, err
	}
	return nil, PointOutput{X: p.X, Y: p.Y}, nil
}

func (s *Server) handleDistance(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DistanceInput,
) (*mcp.CallToolResult, DistanceOutput, error) {
	metric, err := s.metric(input.Metric)
	if err != nil {
		return nil, DistanceOutput{}, err
	}

	d, err := s.ports.Geometry.Distance(input.A, input.B, metric)
	if err != nil {
		return nil, DistanceOutput{}, err
	}
	if err := finite("distance", d); err != nil {
		return nil, DistanceOutput{}, err
	}
	return nil, DistanceOutput{Metric: metric.String(), Distance: d}, nil
}

func (s *Server) handleArea(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AreaInput,
) (*mcp.CallToolResult, AreaOutput, error) {
	shapes := make([]domain.Shape, 0, len(input.Shapes))
	for _, spec := range input.Shapes {
		shape, err := s.ports.Geometry.ParseShape(spec)
		if err != nil {
			return nil, AreaOutput{}, fmt.Errorf("shape %q: %w", spec, err)
		}
		shapes = append(shapes, shape)
	}

	report := s.ports.Geometry.Breakdown(shapes)
	if err := finite("total area", report.Total); err != nil {
		return nil, AreaOutput{}, err
	}

	output := AreaOutput{
		Shapes: make([]AreaEntryOutput, len(report.Entries)),
		Total:  report.Total,
	}
	for i, e := range report.Entries {
		output.Shapes[i] = AreaEntryOutput{
			Kind:        e.Kind.String(),
			Description: e.Description,
			Area:        e.Area,
		}
	}
	return nil, output, nil
}

// finite rejects values the JSON tool result cannot carry. A finite
// total implies every per-shape area is finite.
func finite(what string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is %g", ErrNonFinite, what, v)
		}
	}
	return nil
}

// metric resolves a requested metric, falling back to settings then Euclidean.
func (s *Server) metric(name string) (domain.DistanceMetric, error) {
	if name != "" {
		m := domain.DistanceMetric(name)
		if !m.IsValid() {
			return "", fmt.Errorf("%w: unknown metric %q", domain.ErrInvalidInput, name)
		}
		return m, nil
	}
	return defaultMetric(s.ports.Settings), nil
}

func defaultMetric(settings driving.SettingsService) domain.DistanceMetric {
	if settings == nil {
		return domain.DistanceEuclidean
	}
	current, err := settings.Get()
	if err != nil || current == nil {
		return domain.DistanceEuclidean
	}
	return current.Distance.Metric
}
