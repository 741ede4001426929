// Package mcp serves planar's geometry operations over the Model Context
// Protocol so assistants can parse points, measure distances and sum areas.
package mcp

import "errors"

// ErrMissingGeometryService is returned when the geometry service is not provided.
var ErrMissingGeometryService = errors.New("mcp: geometry service is required")

// ErrNonFinite is returned when a result is NaN or infinite, which JSON cannot encode.
var ErrNonFinite = errors.New("mcp: result is NaN or infinite and cannot be encoded as JSON")
