package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPCmd_Flags(t *testing.T) {
	flag := mcpCmd.Flags().Lookup("http")
	require.NotNil(t, flag)
	assert.Empty(t, flag.DefValue)
}

func TestMCPCmd_RejectsArgs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "mcp", "extra")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestMCPCmd_ServiceNotConfigured(t *testing.T) {
	old := geometryService
	geometryService = nil
	defer func() { geometryService = old }()

	_, err := execute(t, "mcp")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "geometry service not configured")
}
