package services

import (
	"math"

	"github.com/custodia-labs/planar/internal/core/domain"
	"github.com/custodia-labs/planar/internal/logger"
)

type areaFunc func(domain.Shape) float64

// areaByKind holds one entry per shape variant. Adding a variant to
// domain.ShapeKinds without an entry here fails TestAreaByKind_CoversEveryKind.
var areaByKind = map[domain.ShapeKind]areaFunc{
	domain.ShapeKindRectangle: func(s domain.Shape) float64 {
		r, ok := s.(domain.Rectangle)
		if !ok {
			return unexpectedShape(s)
		}
		if r.Width() <= 0 || r.Height() <= 0 {
			logger.Warn("rectangle %s was not built by NewRectangle, contributing 0", r)
			return 0
		}
		return r.Width() * r.Height()
	},
	domain.ShapeKindCircle: func(s domain.Shape) float64 {
		c, ok := s.(domain.Circle)
		if !ok {
			return unexpectedShape(s)
		}
		return math.Pi * c.Radius() * c.Radius()
	},
	// Open geometry encloses nothing.
	domain.ShapeKindVector2D: func(domain.Shape) float64 {
		return 0
	},
}

func unexpectedShape(s domain.Shape) float64 {
	logger.Warn("unexpected shape type %T, contributing 0", s)
	return 0
}

// shapeValue dereferences pointer variants so every rule sees a value.
// A typed nil pointer becomes a nil Shape.
func shapeValue(s domain.Shape) domain.Shape {
	switch v := s.(type) {
	case *domain.Rectangle:
		if v == nil {
			return nil
		}
		return *v
	case *domain.Circle:
		if v == nil {
			return nil
		}
		return *v
	case *domain.Vector2D:
		if v == nil {
			return nil
		}
		return *v
	default:
		return s
	}
}

// AreaEngine computes shape areas.
type AreaEngine struct{}

// NewAreaEngine creates a new area engine.
func NewAreaEngine() *AreaEngine {
	return &AreaEngine{}
}

// Area returns the area of shape. Pointers to shapes are accepted.
// A nil shape, a kind without an area entry, or a zero-value Rectangle
// contributes 0 and logs a warning.
func (e *AreaEngine) Area(shape domain.Shape) float64 {
	shape = shapeValue(shape)
	if shape == nil {
		logger.Warn("area requested for nil shape")
		return 0
	}
	fn, ok := areaByKind[shape.Kind()]
	if !ok {
		logger.Warn("no area rule for shape kind %q, contributing 0", shape.Kind())
		return 0
	}
	return fn(shape)
}

// TotalArea sums the area of every shape, in order.
func (e *AreaEngine) TotalArea(shapes []domain.Shape) float64 {
	acc := NewAreaAccumulator(e)
	for _, s := range shapes {
		acc.Add(s)
	}
	return acc.Total()
}

// Breakdown returns each shape's area along with the total.
func (e *AreaEngine) Breakdown(shapes []domain.Shape) domain.AreaReport {
	report := domain.AreaReport{Entries: make([]domain.AreaEntry, 0, len(shapes))}
	acc := NewAreaAccumulator(e)
	for i, s := range shapes {
		a := acc.Add(s)
		entry := domain.AreaEntry{Index: i, Area: a, Shape: s}
		if v := shapeValue(s); v != nil {
			entry.Kind = v.Kind()
			entry.Description = v.String()
		}
		report.Entries = append(report.Entries, entry)
		logger.Debug("shape %d %s area=%g", i, entry.Description, a)
	}
	report.Total = acc.Total()
	return report
}

// AreaAccumulator is a running sum of shape areas. It is a plain value
// owned by its caller; share it across goroutines only with external locking.
type AreaAccumulator struct {
	engine *AreaEngine
	total  float64
	count  int
}

// NewAreaAccumulator starts an empty sum using engine for per-shape areas.
func NewAreaAccumulator(engine *AreaEngine) *AreaAccumulator {
	if engine == nil {
		engine = NewAreaEngine()
	}
	return &AreaAccumulator{engine: engine}
}

// Add folds shape into the sum and returns the shape's own area.
func (a *AreaAccumulator) Add(shape domain.Shape) float64 {
	area := a.engine.Area(shape)
	a.total += area
	a.count++
	return area
}

// Total returns the sum so far.
func (a *AreaAccumulator) Total() float64 {
	return a.total
}

// Count returns how many shapes have been added.
func (a *AreaAccumulator) Count() int {
	return a.count
}
