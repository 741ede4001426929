package manifest

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/planar/internal/core/domain"
	"github.com/custodia-labs/planar/internal/core/ports/driven"
)

// Supported manifest formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Ensure Decoder implements the interface.
var _ driven.ShapeDecoder = (*Decoder)(nil)

// document is the on-disk layout shared by all formats.
type document struct {
	Shapes []entry `yaml:"shapes" toml:"shapes" json:"shapes"`
}

type entry struct {
	Kind string `yaml:"kind" toml:"kind" json:"kind"`

	// Rectangle
	TopRight   string `yaml:"top_right" toml:"top_right" json:"top_right"`
	BottomLeft string `yaml:"bottom_left" toml:"bottom_left" json:"bottom_left"`

	// Circle
	Center string   `yaml:"center" toml:"center" json:"center"`
	Radius *float64 `yaml:"radius" toml:"radius" json:"radius"`

	// Vector
	Start string `yaml:"start" toml:"start" json:"start"`
	End   string `yaml:"end" toml:"end" json:"end"`
}

type unmarshalFunc func(data []byte, v any) error

// Decoder decodes one manifest format.
type Decoder struct {
	format    string
	unmarshal unmarshalFunc
	parser    driven.PointParser
}

// NewDecoder returns a decoder for format ("yaml", "yml", "toml" or "json").
func NewDecoder(format string, parser driven.PointParser) (*Decoder, error) {
	if parser == nil {
		return nil, fmt.Errorf("%w: manifest decoder needs a point parser", domain.ErrInvalidInput)
	}

	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		return &Decoder{format: FormatYAML, unmarshal: yaml.Unmarshal, parser: parser}, nil
	case FormatTOML:
		return &Decoder{format: FormatTOML, unmarshal: toml.Unmarshal, parser: parser}, nil
	case FormatJSON:
		return &Decoder{format: FormatJSON, unmarshal: json.Unmarshal, parser: parser}, nil
	default:
		return nil, fmt.Errorf("%w: manifest format %q", domain.ErrUnsupportedType, format)
	}
}

// NewDecoderForPath picks the decoder from the file extension.
func NewDecoderForPath(path string, parser driven.PointParser) (*Decoder, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, fmt.Errorf("%w: manifest %q has no extension", domain.ErrUnsupportedType, path)
	}
	return NewDecoder(ext, parser)
}

// Format returns the manifest format name.
func (d *Decoder) Format() string {
	return d.format
}

// Decode parses data into shapes in document order.
// The first invalid entry fails the whole manifest.
func (d *Decoder) Decode(data []byte) ([]domain.Shape, error) {
	var doc document
	if err := d.unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s manifest: %w", d.format, err)
	}

	shapes := make([]domain.Shape, 0, len(doc.Shapes))
	for i, e := range doc.Shapes {
		s, err := d.toShape(e)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

func (d *Decoder) toShape(e entry) (domain.Shape, error) {
	switch domain.ShapeKind(normaliseKind(e.Kind)) {
	case domain.ShapeKindRectangle:
		tr, err := d.parser.ParsePoint(e.TopRight)
		if err != nil {
			return nil, fmt.Errorf("top_right: %w", err)
		}
		bl, err := d.parser.ParsePoint(e.BottomLeft)
		if err != nil {
			return nil, fmt.Errorf("bottom_left: %w", err)
		}
		r, err := domain.NewRectangle(tr, bl)
		if err != nil {
			return nil, err
		}
		return r, nil

	case domain.ShapeKindCircle:
		center, err := d.parser.ParsePoint(e.Center)
		if err != nil {
			return nil, fmt.Errorf("center: %w", err)
		}
		if e.Radius == nil {
			return nil, fmt.Errorf("%w: circle is missing radius", domain.ErrInvalidInput)
		}
		c, err := domain.NewCircle(center, *e.Radius)
		if err != nil {
			return nil, err
		}
		return c, nil

	case domain.ShapeKindVector2D:
		start, err := d.parser.ParsePoint(e.Start)
		if err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
		end, err := d.parser.ParsePoint(e.End)
		if err != nil {
			return nil, fmt.Errorf("end: %w", err)
		}
		return domain.NewVector2D(start, end), nil

	default:
		return nil, fmt.Errorf("%w: shape kind %q", domain.ErrUnsupportedType, e.Kind)
	}
}

// normaliseKind maps short aliases onto canonical kind names.
func normaliseKind(kind string) string {
	switch k := strings.ToLower(strings.TrimSpace(kind)); k {
	case "rect":
		return string(domain.ShapeKindRectangle)
	case "vector":
		return string(domain.ShapeKindVector2D)
	default:
		return k
	}
}
