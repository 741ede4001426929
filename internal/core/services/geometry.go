package services

import (
	"github.com/custodia-labs/planar/internal/core/domain"
	"github.com/custodia-labs/planar/internal/core/ports/driving"
	"github.com/custodia-labs/planar/internal/logger"
)

// Ensure GeometryService implements the interface.
var _ driving.GeometryService = (*GeometryService)(nil)

// GeometryService combines the coordinate parser and area engine
// behind the driving port.
type GeometryService struct {
	parser *CoordinateParser
	engine *AreaEngine
}

// NewGeometryService creates a new geometry service.
// Nil dependencies are replaced with fresh instances.
func NewGeometryService(parser *CoordinateParser, engine *AreaEngine) *GeometryService {
	if parser == nil {
		parser = NewCoordinateParser()
	}
	if engine == nil {
		engine = NewAreaEngine()
	}
	return &GeometryService{parser: parser, engine: engine}
}

// ParsePoint converts "x,y" text into a Point.
func (s *GeometryService) ParsePoint(input string) (domain.Point, error) {
	return s.parser.ParsePoint(input)
}

// ParseShape converts a shape spec into a Shape.
func (s *GeometryService) ParseShape(spec string) (domain.Shape, error) {
	return s.parser.ParseShape(spec)
}

// Distance parses both inputs and measures between them.
func (s *GeometryService) Distance(a, b string, metric domain.DistanceMetric) (float64, error) {
	if !metric.IsValid() {
		logger.Warn("unknown distance metric %q, using %s", metric, domain.DistanceEuclidean)
		metric = domain.DistanceEuclidean
	}
	return s.parser.DistanceFromStringsWith(a, b, metric)
}

// Area returns the area of a single shape.
func (s *GeometryService) Area(shape domain.Shape) float64 {
	return s.engine.Area(shape)
}

// TotalArea sums the area of every shape in order.
func (s *GeometryService) TotalArea(shapes []domain.Shape) float64 {
	return s.engine.TotalArea(shapes)
}

// Breakdown returns per-shape areas together with the total.
func (s *GeometryService) Breakdown(shapes []domain.Shape) domain.AreaReport {
	logger.Section("Area")
	return s.engine.Breakdown(shapes)
}
