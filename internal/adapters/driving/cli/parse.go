package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse [point]",
	Short: "Parse an \"x,y\" coordinate",
	Long: `Parses a coordinate written as "x,y" into a point.

Whitespace around the input and around each number is ignored.
Use -- before negative coordinates so they are not read as flags:

  planar parse -- "-1.5, 2"`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "output the point as JSON")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if geometryService == nil {
		return errors.New("geometry service not configured")
	}

	point, err := geometryService.ParsePoint(args[0])
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	out := newPrinter(cmd, parseJSON)
	if out.asJSON {
		return out.printJSON(point)
	}

	out.printf("%s x=%s y=%s\n",
		out.styles.Title.Render("point"),
		out.styles.Value.Render(out.number(point.X)),
		out.styles.Value.Render(out.number(point.Y)))
	return nil
}
