package driving

import "github.com/custodia-labs/planar/internal/core/domain"

// GeometryService exposes point parsing, distance and area operations.
// Every fallible operation returns an error value; none panic on bad input.
type GeometryService interface {
	// ParsePoint converts "x,y" text into a Point.
	// Failures are *domain.ParseError values.
	ParsePoint(input string) (domain.Point, error)

	// ParseShape converts a shape spec such as "rect:10,10;0,0" into a Shape.
	ParseShape(spec string) (domain.Shape, error)

	// Distance parses both inputs and returns the distance under metric.
	// The first parse failure is returned without parsing the second input.
	Distance(a, b string, metric domain.DistanceMetric) (float64, error)

	// Area returns the area of a single shape.
	Area(shape domain.Shape) float64

	// TotalArea sums the area of every shape in order.
	TotalArea(shapes []domain.Shape) float64

	// Breakdown returns per-shape areas together with the total.
	Breakdown(shapes []domain.Shape) domain.AreaReport
}
