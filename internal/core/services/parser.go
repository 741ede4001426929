package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/planar/internal/core/domain"
	"github.com/custodia-labs/planar/internal/core/ports/driven"
	"github.com/custodia-labs/planar/internal/logger"
)

// Ensure CoordinateParser implements the interface.
var _ driven.PointParser = (*CoordinateParser)(nil)

const (
	coordinateDelimiter = ","
	shapeKindDelimiter  = ":"
	shapeArgDelimiter   = ";"
)

// Shape spec prefixes accepted by ParseShape.
var shapeSpecKinds = map[string]domain.ShapeKind{
	"rect":      domain.ShapeKindRectangle,
	"rectangle": domain.ShapeKindRectangle,
	"circle":    domain.ShapeKindCircle,
	"vector":    domain.ShapeKindVector2D,
	"vector2d":  domain.ShapeKindVector2D,
}

// CoordinateParser turns "x,y" text into points and shape specs into shapes.
type CoordinateParser struct{}

// NewCoordinateParser creates a new coordinate parser.
func NewCoordinateParser() *CoordinateParser {
	return &CoordinateParser{}
}

// ParsePoint parses "x,y" into a Point. Whitespace around the whole
// input and around each field is ignored. Failures are *domain.ParseError.
func (p *CoordinateParser) ParsePoint(input string) (domain.Point, error) {
	fields := strings.Split(strings.TrimSpace(input), coordinateDelimiter)
	if len(fields) != 2 {
		return domain.Point{}, &domain.ParseError{Kind: domain.ParseErrorFieldCount, Input: input}
	}

	x, err := parseField(domain.AxisX, fields[0])
	if err != nil {
		return domain.Point{}, err
	}
	y, err := parseField(domain.AxisY, fields[1])
	if err != nil {
		return domain.Point{}, err
	}

	logger.Debug("parsed %q as (%g, %g)", input, x, y)
	return domain.NewPoint(x, y), nil
}

// strconv.ParseFloat rejects surrounding spaces, so each field is trimmed first.
func parseField(axis domain.Axis, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, &domain.ParseError{
			Kind:  domain.ParseErrorNumeric,
			Field: axis.String(),
			Input: field,
			Err:   err,
		}
	}
	return v, nil
}

// DistanceFromStrings parses both points and returns their Euclidean distance.
// b is not parsed when a fails.
func (p *CoordinateParser) DistanceFromStrings(a, b string) (float64, error) {
	return p.DistanceFromStringsWith(a, b, domain.DistanceEuclidean)
}

// DistanceFromStringsWith is DistanceFromStrings under an explicit metric.
func (p *CoordinateParser) DistanceFromStringsWith(a, b string, metric domain.DistanceMetric) (float64, error) {
	p1, err := p.ParsePoint(a)
	if err != nil {
		return 0, err
	}
	p2, err := p.ParsePoint(b)
	if err != nil {
		return 0, err
	}
	return p1.Distance(p2, metric), nil
}

// ParseShape parses a shape spec:
//
//	rect:<topRight>;<bottomLeft>
//	circle:<center>;<radius>
//	vector:<start>;<end>
//
// Points use the ParsePoint grammar. Constructor failures wrap
// domain.ErrInvalidShape.
func (p *CoordinateParser) ParseShape(spec string) (domain.Shape, error) {
	name, rest, ok := strings.Cut(strings.TrimSpace(spec), shapeKindDelimiter)
	if !ok {
		return nil, fmt.Errorf("%w: shape spec %q has no kind prefix", domain.ErrInvalidInput, spec)
	}
	kind, ok := shapeSpecKinds[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: shape kind %q", domain.ErrUnsupportedType, name)
	}

	args := strings.Split(rest, shapeArgDelimiter)
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: %s spec %q needs two arguments separated by %q",
			domain.ErrInvalidInput, kind, spec, shapeArgDelimiter)
	}

	first, err := p.ParsePoint(args[0])
	if err != nil {
		return nil, err
	}

	switch kind {
	case domain.ShapeKindRectangle:
		second, err := p.ParsePoint(args[1])
		if err != nil {
			return nil, err
		}
		r, err := domain.NewRectangle(first, second)
		if err != nil {
			return nil, err
		}
		return r, nil
	case domain.ShapeKindCircle:
		radius, err := parseRadius(args[1])
		if err != nil {
			return nil, err
		}
		c, err := domain.NewCircle(first, radius)
		if err != nil {
			return nil, err
		}
		return c, nil
	case domain.ShapeKindVector2D:
		second, err := p.ParsePoint(args[1])
		if err != nil {
			return nil, err
		}
		return domain.NewVector2D(first, second), nil
	default:
		return nil, fmt.Errorf("%w: shape kind %q", domain.ErrUnsupportedType, kind)
	}
}

func parseRadius(field string) (float64, error) {
	r, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, &domain.ParseError{Kind: domain.ParseErrorNumeric, Field: "radius", Input: field, Err: err}
	}
	return r, nil
}
