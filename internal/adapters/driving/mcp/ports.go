package mcp

import (
	"github.com/custodia-labs/planar/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Geometry parses points and shapes and computes measurements.
	Geometry driving.GeometryService

	// Settings supplies the default distance metric. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Geometry == nil {
		return ErrMissingGeometryService
	}
	return nil
}
