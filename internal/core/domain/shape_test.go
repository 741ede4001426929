package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRectangle_Valid(t *testing.T) {
	r, err := NewRectangle(NewPoint(10, 10), NewPoint(0, 0))

	require.NoError(t, err)
	assert.Equal(t, NewPoint(10, 10), r.TopRight())
	assert.Equal(t, NewPoint(0, 0), r.BottomLeft())
	assert.Equal(t, 10.0, r.Width())
	assert.Equal(t, 10.0, r.Height())
	assert.Equal(t, ShapeKindRectangle, r.Kind())
}

func TestNewRectangle_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		topRight   Point
		bottomLeft Point
	}{
		{"inverted corners", NewPoint(0, 0), NewPoint(10, 10)},
		{"zero width", NewPoint(0, 10), NewPoint(0, 0)},
		{"zero height", NewPoint(10, 0), NewPoint(0, 0)},
		{"inverted x only", NewPoint(-1, 10), NewPoint(0, 0)},
		{"inverted y only", NewPoint(10, -1), NewPoint(0, 0)},
		{"NaN corner", NewPoint(math.NaN(), 10), NewPoint(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRectangle(tt.topRight, tt.bottomLeft)

			assert.ErrorIs(t, err, ErrInvalidShape)
			assert.Equal(t, Rectangle{}, r)
		})
	}
}

func TestNewCircle(t *testing.T) {
	c, err := NewCircle(NewPoint(5, 5), 5)
	require.NoError(t, err)
	assert.Equal(t, NewPoint(5, 5), c.Center())
	assert.Equal(t, 5.0, c.Radius())
	assert.Equal(t, ShapeKindCircle, c.Kind())

	_, err = NewCircle(NewPoint(0, 0), 0)
	assert.NoError(t, err, "zero radius is a degenerate but valid circle")
}

func TestNewCircle_Invalid(t *testing.T) {
	_, err := NewCircle(NewPoint(0, 0), -1)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = NewCircle(NewPoint(0, 0), math.NaN())
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestNewVector2D(t *testing.T) {
	v := NewVector2D(NewPoint(0, 0), NewPoint(3, 4))

	assert.Equal(t, NewPoint(0, 0), v.Start())
	assert.Equal(t, NewPoint(3, 4), v.End())
	assert.Equal(t, 5.0, v.Length())
	assert.Equal(t, ShapeKindVector2D, v.Kind())
}

func TestShape_String(t *testing.T) {
	r, err := NewRectangle(NewPoint(2, 2), NewPoint(0, 0))
	require.NoError(t, err)
	c, err := NewCircle(NewPoint(1, 1), 2)
	require.NoError(t, err)
	v := NewVector2D(NewPoint(0, 0), NewPoint(1, 0))

	assert.Equal(t, "rectangle (2, 2)-(0, 0)", r.String())
	assert.Equal(t, "circle (1, 1) r=2", c.String())
	assert.Equal(t, "vector (0, 0)->(1, 0)", v.String())
}

func TestShapeKinds_AllValid(t *testing.T) {
	kinds := ShapeKinds()

	assert.Len(t, kinds, 3)
	for _, k := range kinds {
		assert.True(t, k.IsValid(), k)
	}
	assert.False(t, ShapeKind("triangle").IsValid())
}

func TestShape_KindsMatchVariants(t *testing.T) {
	var shapes []Shape
	shapes = append(shapes, Rectangle{}, Circle{}, Vector2D{})

	for i, s := range shapes {
		assert.Equal(t, ShapeKinds()[i], s.Kind())
	}
}
