package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/planar/internal/core/domain"
)

var (
	distanceMetric string
	distanceJSON   bool
)

var distanceCmd = &cobra.Command{
	Use:   "distance [a] [b]",
	Short: "Measure the distance between two points",
	Long: `Parses two "x,y" coordinates and prints the distance between them.

Metrics:
  euclidean  - straight-line distance (default)
  manhattan  - sum of the absolute x and y offsets

If the first point is invalid the second is not parsed.`,
	Args: cobra.ExactArgs(2),
	RunE: runDistance,
}

func init() {
	distanceCmd.Flags().StringVarP(&distanceMetric, "metric", "m", "",
		"distance metric: euclidean or manhattan (default from settings)")
	distanceCmd.Flags().BoolVar(&distanceJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(distanceCmd)
}

type distanceResult struct {
	A        string                `json:"a"`
	B        string                `json:"b"`
	Metric   domain.DistanceMetric `json:"metric"`
	Distance float64               `json:"distance"`
}

func runDistance(cmd *cobra.Command, args []string) error {
	if geometryService == nil {
		return errors.New("geometry service not configured")
	}

	out := newPrinter(cmd, distanceJSON)

	metric := out.settings.Distance.Metric
	if distanceMetric != "" {
		metric = domain.DistanceMetric(strings.ToLower(distanceMetric))
		if !metric.IsValid() {
			return fmt.Errorf("invalid metric %q: use euclidean or manhattan", distanceMetric)
		}
	}

	d, err := geometryService.Distance(args[0], args[1], metric)
	if err != nil {
		return fmt.Errorf("distance failed: %w", err)
	}

	if out.asJSON {
		return out.printJSON(distanceResult{A: args[0], B: args[1], Metric: metric, Distance: d})
	}

	out.printf("%s (%s): %s\n",
		out.styles.Title.Render("distance"),
		metric,
		out.styles.Value.Render(out.number(d)))
	return nil
}
