package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/planar/internal/core/domain"
)

var (
	moveAxis  string
	moveDelta float64
	moveJSON  bool
)

var moveCmd = &cobra.Command{
	Use:   "move [point]",
	Short: "Shift a point along one axis",
	Long: `Parses an "x,y" coordinate, adds --by to the coordinate selected
by --axis, and prints the moved point.`,
	Args: cobra.ExactArgs(1),
	RunE: runMove,
}

func init() {
	moveCmd.Flags().StringVarP(&moveAxis, "axis", "a", "x", "axis to move along: x or y")
	moveCmd.Flags().Float64Var(&moveDelta, "by", 0, "amount to add to the coordinate")
	moveCmd.Flags().BoolVar(&moveJSON, "json", false, "output the point as JSON")
	_ = moveCmd.MarkFlagRequired("by")
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	if geometryService == nil {
		return errors.New("geometry service not configured")
	}

	axis, err := domain.ParseAxis(moveAxis)
	if err != nil {
		return err
	}

	point, err := geometryService.ParsePoint(args[0])
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	point.MoveBy(axis, moveDelta)

	out := newPrinter(cmd, moveJSON)
	if out.asJSON {
		return out.printJSON(point)
	}

	out.printf("%s x=%s y=%s\n",
		out.styles.Title.Render("moved"),
		out.styles.Value.Render(out.number(point.X)),
		out.styles.Value.Render(out.number(point.Y)))
	return nil
}
