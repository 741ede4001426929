package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/planar/internal/core/domain"
	"github.com/custodia-labs/planar/internal/core/ports/driven"
	"github.com/custodia-labs/planar/internal/logger"
)

// decoderFor returns the manifest decoder for a file path.
var decoderFor func(path string) (driven.ShapeDecoder, error)

var (
	areaRects   []string
	areaCircles []string
	areaVectors []string
	areaFile    string
	areaJSON    bool
	areaOnlySum bool
)

var areaCmd = &cobra.Command{
	Use:   "area [shape-spec...]",
	Short: "Compute the area of shapes",
	Long: `Computes the area of each shape and their total.

Shapes can be given as specs:
  rect:<top-right>;<bottom-left>     e.g. rect:10,10;0,0
  circle:<center>;<radius>           e.g. circle:5,5;5
  vector:<start>;<end>               e.g. vector:0,0;10,10

or with --rect, --circle and --vector (omit the prefix), or loaded from
a YAML, TOML or JSON manifest with --file. Vectors enclose no area and
contribute 0. Rectangles must have their top-right corner above and to
the right of the bottom-left corner; circles need a non-negative radius.`,
	RunE: runArea,
}

func init() {
	areaCmd.Flags().StringArrayVar(&areaRects, "rect", nil, "rectangle as <top-right>;<bottom-left> (repeatable)")
	areaCmd.Flags().StringArrayVar(&areaCircles, "circle", nil, "circle as <center>;<radius> (repeatable)")
	areaCmd.Flags().StringArrayVar(&areaVectors, "vector", nil, "vector as <start>;<end> (repeatable)")
	areaCmd.Flags().StringVarP(&areaFile, "file", "f", "", "shape manifest (.yaml, .yml, .toml or .json)")
	areaCmd.Flags().BoolVar(&areaJSON, "json", false, "output the report as JSON")
	areaCmd.Flags().BoolVar(&areaOnlySum, "total", false, "print only the total area")
	rootCmd.AddCommand(areaCmd)
}

// SetManifestDecoders registers how manifest files are decoded.
func SetManifestDecoders(factory func(path string) (driven.ShapeDecoder, error)) {
	decoderFor = factory
}

func runArea(cmd *cobra.Command, args []string) error {
	if geometryService == nil {
		return errors.New("geometry service not configured")
	}

	shapes, err := collectShapes(args)
	if err != nil {
		return err
	}

	report := geometryService.Breakdown(shapes)

	out := newPrinter(cmd, areaJSON)
	if out.asJSON {
		if areaOnlySum {
			return out.printJSON(map[string]float64{"total": report.Total})
		}
		return out.printJSON(report)
	}

	if areaOnlySum {
		out.println(out.number(report.Total))
		return nil
	}

	return outputAreaTable(out, report)
}

// collectShapes gathers shapes in a fixed order: manifest, positional
// specs, then --rect, --circle and --vector values.
func collectShapes(args []string) ([]domain.Shape, error) {
	var shapes []domain.Shape

	if areaFile != "" {
		fromFile, err := loadManifest(areaFile)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, fromFile...)
	}

	specs := make([]string, 0, len(args)+len(areaRects)+len(areaCircles)+len(areaVectors))
	specs = append(specs, args...)
	for _, v := range areaRects {
		specs = append(specs, "rect:"+v)
	}
	for _, v := range areaCircles {
		specs = append(specs, "circle:"+v)
	}
	for _, v := range areaVectors {
		specs = append(specs, "vector:"+v)
	}

	for _, spec := range specs {
		s, err := geometryService.ParseShape(spec)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", spec, err)
		}
		shapes = append(shapes, s)
	}

	logger.Debug("collected %d shapes", len(shapes))
	return shapes, nil
}

func loadManifest(path string) ([]domain.Shape, error) {
	if decoderFor == nil {
		return nil, errors.New("manifest decoding not configured")
	}

	dec, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	shapes, err := dec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	logger.Debug("loaded %d shapes from %s manifest %s", len(shapes), dec.Format(), path)
	return shapes, nil
}

func outputAreaTable(out *printer, report domain.AreaReport) error {
	if len(report.Entries) == 0 {
		out.println("No shapes given.")
	} else {
		out.println(out.styles.Title.Render("Shapes:"))
		for _, e := range report.Entries {
			out.printf("  [%d] %-9s %s  area %s\n",
				e.Index+1,
				out.styles.Kind.Render(e.Kind.String()),
				out.styles.Muted.Render(e.Description),
				out.styles.Value.Render(out.number(e.Area)))
		}
	}
	out.println(out.styles.Total.Render("Total area: " + out.number(report.Total)))
	return nil
}
