package driven

import "github.com/custodia-labs/planar/internal/core/domain"

// PointParser converts coordinate text into a Point.
// Decoders use it so manifests share the CLI's coordinate grammar.
type PointParser interface {
	ParsePoint(input string) (domain.Point, error)
}

// ShapeDecoder reads a shape manifest held in memory.
type ShapeDecoder interface {
	// Format returns the manifest format name (e.g., "yaml").
	Format() string

	// Decode parses data into shapes, preserving document order.
	// Any invalid entry fails the whole document.
	Decode(data []byte) ([]domain.Shape, error)
}
