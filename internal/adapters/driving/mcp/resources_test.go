package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/planar/internal/core/domain"
	"github.com/custodia-labs/planar/internal/core/services"
)

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestExtractKind(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid kind URI",
			uri:      "planar://kinds/circle",
			expected: "circle",
		},
		{
			name:     "invalid prefix",
			uri:      "file://kinds/circle",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractKind(tt.uri))
		})
	}
}

func TestKindSyntax_CoversEveryKind(t *testing.T) {
	for _, k := range domain.ShapeKinds() {
		assert.NotEmpty(t, kindSyntax[k], "missing syntax for %s", k)
	}
}

func TestServer_handleSettingsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil settings service returns defaults", func(t *testing.T) {
		server := newTestServer(t, &Ports{Geometry: services.NewGeometryService(nil, nil)})

		result, err := server.handleSettingsResource(ctx, makeReadResourceRequest("planar://settings"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.JSONEq(t,
			`{"format":"text","precision":4,"color":true,"metric":"euclidean"}`,
			result.Contents[0].Text)
	})

	t.Run("reflects stored settings", func(t *testing.T) {
		server := newTestServer(t, newTestPorts(map[string]any{
			"output.format":   "json",
			"distance.metric": "manhattan",
		}))

		result, err := server.handleSettingsResource(ctx, makeReadResourceRequest("planar://settings"))
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"format":"json","precision":4,"color":true,"metric":"manhattan"}`,
			result.Contents[0].Text)
	})
}

func TestServer_handleKindResource(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, newTestPorts(nil))

	t.Run("known kind", func(t *testing.T) {
		uri := "planar://kinds/vector2d"
		result, err := server.handleKindResource(ctx, makeReadResourceRequest(uri))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, uri, result.Contents[0].URI)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "contribute 0")
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := server.handleKindResource(ctx, makeReadResourceRequest("planar://kinds/hexagon"))
		assert.Error(t, err)
	})
}
