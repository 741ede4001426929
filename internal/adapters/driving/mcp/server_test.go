package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/planar/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/planar/internal/core/services"
)

// newTestPorts wires real services over an in-memory config store.
func newTestPorts(seed map[string]any) *Ports {
	return &Ports{
		Geometry: services.NewGeometryService(nil, nil),
		Settings: services.NewSettingsService(memory.NewConfigStore(seed)),
	}
}

func newTestServer(t *testing.T, ports *Ports) *Server {
	t.Helper()
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}

func TestNewServer(t *testing.T) {
	t.Run("nil ports returns error", func(t *testing.T) {
		server, err := NewServer(nil)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingGeometryService)
	})

	t.Run("nil geometry service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingGeometryService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(newTestPorts(nil))
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("geometry only is valid", func(t *testing.T) {
		ports := &Ports{Geometry: services.NewGeometryService(nil, nil)}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		assert.NoError(t, newTestPorts(nil).Validate())
	})
}
