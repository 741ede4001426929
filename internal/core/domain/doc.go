// Package domain defines the core geometric entities for planar.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Point: A 2D coordinate value with distance operations
//   - Shape: A closed set of variants (Rectangle, Circle, Vector2D)
//   - ParseError: A structured failure from coordinate text parsing
//   - AppSettings: User preferences for output and distance metric
//
// Shapes are built through constructors that enforce their invariants.
// A constructor that fails returns ErrInvalidShape and a zero value the
// caller must not use.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
