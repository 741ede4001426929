package mcp

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/planar/internal/core/domain"
	"github.com/custodia-labs/planar/internal/core/services"
)

func TestServer_handleParsePoint(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, newTestPorts(nil))

	t.Run("parses coordinates", func(t *testing.T) {
		_, output, err := server.handleParsePoint(ctx, nil, ParsePointInput{Point: " 1.5 , -2 "})
		require.NoError(t, err)
		assert.Equal(t, PointOutput{X: 1.5, Y: -2}, output)
	})

	t.Run("rejects wrong field count", func(t *testing.T) {
		_, _, err := server.handleParsePoint(ctx, nil, ParsePointInput{Point: "1,2,3"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrWrongFieldCount)
	})

	t.Run("rejects non-finite coordinates", func(t *testing.T) {
		for _, in := range []string{"NaN,1", "1,Inf", "-Inf,0"} {
			_, _, err := server.handleParsePoint(ctx, nil, ParsePointInput{Point: in})
			require.Error(t, err, in)
			assert.ErrorIs(t, err, ErrNonFinite, in)
		}
	})
}

func TestServer_handleDistance(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to euclidean", func(t *testing.T) {
		server := newTestServer(t, &Ports{Geometry: services.NewGeometryService(nil, nil)})

		_, output, err := server.handleDistance(ctx, nil, DistanceInput{A: "0,0", B: "3,4"})
		require.NoError(t, err)
		assert.Equal(t, "euclidean", output.Metric)
		assert.InDelta(t, 5.0, output.Distance, 1e-9)
	})

	t.Run("uses metric from settings", func(t *testing.T) {
		server := newTestServer(t, newTestPorts(map[string]any{"distance.metric": "manhattan"}))

		_, output, err := server.handleDistance(ctx, nil, DistanceInput{A: "0,0", B: "3,4"})
		require.NoError(t, err)
		assert.Equal(t, "manhattan", output.Metric)
		assert.InDelta(t, 7.0, output.Distance, 1e-9)
	})

	t.Run("explicit metric wins", func(t *testing.T) {
		server := newTestServer(t, newTestPorts(map[string]any{"distance.metric": "manhattan"}))

		_, output, err := server.handleDistance(ctx, nil, DistanceInput{A: "0,0", B: "3,4", Metric: "euclidean"})
		require.NoError(t, err)
		assert.InDelta(t, 5.0, output.Distance, 1e-9)
	})

	t.Run("unknown metric", func(t *testing.T) {
		server := newTestServer(t, newTestPorts(nil))

		_, _, err := server.handleDistance(ctx, nil, DistanceInput{A: "0,0", B: "3,4", Metric: "chebyshev"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("invalid point", func(t *testing.T) {
		server := newTestServer(t, newTestPorts(nil))

		_, _, err := server.handleDistance(ctx, nil, DistanceInput{A: "0,x", B: "3,4"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNumericConversion)
	})

	t.Run("non-finite distance", func(t *testing.T) {
		server := newTestServer(t, newTestPorts(nil))

		_, _, err := server.handleDistance(ctx, nil, DistanceInput{A: "0,0", B: "Inf,0"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNonFinite)
	})
}

func TestServer_handleArea(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, newTestPorts(nil))

	t.Run("sums shapes in order", func(t *testing.T) {
		input := AreaInput{Shapes: []string{"rect:10,10;0,0", "circle:5,5;5", "vector:0,0;10,10"}}

		_, output, err := server.handleArea(ctx, nil, input)
		require.NoError(t, err)
		require.Len(t, output.Shapes, 3)
		assert.Equal(t, "rectangle", output.Shapes[0].Kind)
		assert.InDelta(t, 100.0, output.Shapes[0].Area, 1e-9)
		assert.Equal(t, "circle", output.Shapes[1].Kind)
		assert.Equal(t, "vector2d", output.Shapes[2].Kind)
		assert.Zero(t, output.Shapes[2].Area)
		assert.InDelta(t, 100+25*math.Pi, output.Total, 1e-9)
	})

	t.Run("empty input", func(t *testing.T) {
		_, output, err := server.handleArea(ctx, nil, AreaInput{})
		require.NoError(t, err)
		assert.Empty(t, output.Shapes)
		assert.Zero(t, output.Total)
	})

	t.Run("invalid rectangle", func(t *testing.T) {
		_, _, err := server.handleArea(ctx, nil, AreaInput{Shapes: []string{"rect:0,0;10,10"}})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidShape)
		assert.Contains(t, err.Error(), "rect:0,0;10,10")
	})

	t.Run("infinite radius", func(t *testing.T) {
		_, _, err := server.handleArea(ctx, nil, AreaInput{Shapes: []string{"circle:0,0;Inf"}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNonFinite)
	})
}
