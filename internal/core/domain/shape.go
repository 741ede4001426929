package domain

import (
	"fmt"
	"math"
)

// ShapeKind identifies a Shape variant.
type ShapeKind string

// Shape variants. The set is closed: Shape cannot be implemented
// outside this package.
const (
	ShapeKindRectangle ShapeKind = "rectangle"
	ShapeKindCircle    ShapeKind = "circle"
	ShapeKindVector2D  ShapeKind = "vector2d"
)

// ShapeKinds returns every shape variant in declaration order.
func ShapeKinds() []ShapeKind {
	return []ShapeKind{ShapeKindRectangle, ShapeKindCircle, ShapeKindVector2D}
}

// IsValid returns true if the kind is one of the known variants.
func (k ShapeKind) IsValid() bool {
	switch k {
	case ShapeKindRectangle, ShapeKindCircle, ShapeKindVector2D:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k ShapeKind) String() string {
	return string(k)
}

// Shape is one of Rectangle, Circle or Vector2D.
type Shape interface {
	// Kind reports which variant this shape is.
	Kind() ShapeKind

	// String returns a short human-readable form.
	String() string

	shape()
}

// Rectangle is an axis-aligned rectangle given by its top-right and
// bottom-left corners. Values built by NewRectangle always satisfy
// topRight.X > bottomLeft.X and topRight.Y > bottomLeft.Y. The zero value
// is not a valid rectangle; the area engine reports it as 0 with a warning.
type Rectangle struct {
	topRight   Point
	bottomLeft Point
}

// NewRectangle validates the corners and returns a Rectangle.
// Inverted, degenerate or NaN corners yield ErrInvalidShape.
func NewRectangle(topRight, bottomLeft Point) (Rectangle, error) {
	// Written positively so NaN comparisons fail the check.
	if !(topRight.X > bottomLeft.X && topRight.Y > bottomLeft.Y) {
		return Rectangle{}, fmt.Errorf("%w: rectangle corner %s must be above and right of %s",
			ErrInvalidShape, topRight, bottomLeft)
	}
	return Rectangle{topRight: topRight, bottomLeft: bottomLeft}, nil
}

// TopRight returns the top-right corner.
func (r Rectangle) TopRight() Point { return r.topRight }

// BottomLeft returns the bottom-left corner.
func (r Rectangle) BottomLeft() Point { return r.bottomLeft }

// Width returns the horizontal extent.
func (r Rectangle) Width() float64 { return r.topRight.X - r.bottomLeft.X }

// Height returns the vertical extent.
func (r Rectangle) Height() float64 { return r.topRight.Y - r.bottomLeft.Y }

// Kind implements Shape.
func (Rectangle) Kind() ShapeKind { return ShapeKindRectangle }

func (r Rectangle) String() string {
	return fmt.Sprintf("rectangle %s-%s", r.topRight, r.bottomLeft)
}

func (Rectangle) shape() {}

// Circle is a circle with a non-negative radius.
type Circle struct {
	center Point
	radius float64
}

// NewCircle validates the radius and returns a Circle.
// A zero radius is allowed; negative or NaN radii yield ErrInvalidShape.
func NewCircle(center Point, radius float64) (Circle, error) {
	if math.IsNaN(radius) || radius < 0 {
		return Circle{}, fmt.Errorf("%w: circle radius %g must be non-negative", ErrInvalidShape, radius)
	}
	return Circle{center: center, radius: radius}, nil
}

// Center returns the centre point.
func (c Circle) Center() Point { return c.center }

// Radius returns the radius.
func (c Circle) Radius() float64 { return c.radius }

// Kind implements Shape.
func (Circle) Kind() ShapeKind { return ShapeKindCircle }

func (c Circle) String() string {
	return fmt.Sprintf("circle %s r=%g", c.center, c.radius)
}

func (Circle) shape() {}

// Vector2D is a directed segment from start to end. It encloses no area.
type Vector2D struct {
	start Point
	end   Point
}

// NewVector2D returns the segment from start to end. Any two points are accepted.
func NewVector2D(start, end Point) Vector2D {
	return Vector2D{start: start, end: end}
}

// Start returns the tail of the vector.
func (v Vector2D) Start() Point { return v.start }

// End returns the head of the vector.
func (v Vector2D) End() Point { return v.end }

// Length returns the Euclidean length of the segment.
func (v Vector2D) Length() float64 { return v.start.DistanceEuclidean(v.end) }

// Kind implements Shape.
func (Vector2D) Kind() ShapeKind { return ShapeKindVector2D }

func (v Vector2D) String() string {
	return fmt.Sprintf("vector %s->%s", v.start, v.end)
}

func (Vector2D) shape() {}
