package domain

import (
	"fmt"
	"math"
	"strings"
)

// Axis selects one coordinate of a Point.
type Axis string

// Available axes.
const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// IsValid returns true if the axis is recognised.
func (a Axis) IsValid() bool {
	return a == AxisX || a == AxisY
}

// String returns the string representation.
func (a Axis) String() string {
	return string(a)
}

// ParseAxis converts a case-insensitive axis name into an Axis.
func ParseAxis(s string) (Axis, error) {
	a := Axis(strings.ToLower(strings.TrimSpace(s)))
	if !a.IsValid() {
		return "", fmt.Errorf("%w: unknown axis %q", ErrInvalidInput, s)
	}
	return a, nil
}

// Point is a 2D coordinate. It is a plain value: copy it freely.
// Non-finite coordinates are accepted and propagate through the
// arithmetic per IEEE-754.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint creates a point at (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// MoveBy adds delta to the coordinate selected by axis.
// An unrecognised axis leaves the point unchanged.
func (p *Point) MoveBy(axis Axis, delta float64) {
	switch axis {
	case AxisX:
		p.X += delta
	case AxisY:
		p.Y += delta
	}
}

// MoveRight shifts the point along the x axis.
func (p *Point) MoveRight(dx float64) {
	p.MoveBy(AxisX, dx)
}

// MoveUp shifts the point along the y axis.
func (p *Point) MoveUp(dy float64) {
	p.MoveBy(AxisY, dy)
}

// DistanceEuclidean returns the straight-line distance to other.
func (p Point) DistanceEuclidean(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceManhattan returns the taxicab distance to other.
func (p Point) DistanceManhattan(other Point) float64 {
	return math.Abs(p.X-other.X) + math.Abs(p.Y-other.Y)
}

// Distance returns the distance to other under the given metric.
// Unknown metrics fall back to Euclidean.
func (p Point) Distance(other Point, metric DistanceMetric) float64 {
	if metric == DistanceManhattan {
		return p.DistanceManhattan(other)
	}
	return p.DistanceEuclidean(other)
}

// String formats the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// DistanceMetric names a way of measuring distance between points.
type DistanceMetric string

// Available distance metrics.
const (
	// DistanceEuclidean is the straight-line distance.
	DistanceEuclidean DistanceMetric = "euclidean"

	// DistanceManhattan is the sum of absolute axis differences.
	DistanceManhattan DistanceMetric = "manhattan"
)

// IsValid returns true if the metric is recognised.
func (m DistanceMetric) IsValid() bool {
	return m == DistanceEuclidean || m == DistanceManhattan
}

// String returns the string representation.
func (m DistanceMetric) String() string {
	return string(m)
}

// Description returns a human-readable description of the metric.
func (m DistanceMetric) Description() string {
	switch m {
	case DistanceEuclidean:
		return "Euclidean (straight line)"
	case DistanceManhattan:
		return "Manhattan (sum of axis offsets)"
	default:
		return unknownDescription
	}
}
