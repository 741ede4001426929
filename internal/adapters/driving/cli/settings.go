package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/planar/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure output formatting and the default distance metric.

Use subcommands to change a single setting or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a single setting",
	Long: `Change a single setting.

Keys:
  output.format     text or json
  output.precision  decimal places, 0 to 12
  output.color      true or false
  distance.metric   euclidean or manhattan`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Format: %s\n", settings.Output.Format.Description())
	cmd.Printf("  Precision: %d\n", settings.Output.Precision)
	cmd.Printf("  Color: %t\n", settings.Output.Color)
	cmd.Println()

	cmd.Println("[Distance]")
	cmd.Printf("  Metric: %s\n", settings.Distance.Metric.Description())

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetValue(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	cmd.Printf("Set %s to %s\n", args[0], args[1])
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Planar Settings Wizard")
	cmd.Println("======================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println("Step 1: Output Format")
	formats := domain.AllOutputFormats()
	settings.Output.Format = formats[chooseOption(cmd, reader, formats, settings.Output.Format)-1]

	cmd.Println("Step 2: Distance Metric")
	metrics := domain.AllDistanceMetrics()
	settings.Distance.Metric = metrics[chooseOption(cmd, reader, metrics, settings.Distance.Metric)-1]

	cmd.Printf("Step 3: Decimal places (%d-%d) [%d]: ",
		domain.MinPrecision, domain.MaxPrecision, settings.Output.Precision)
	if input := readLine(reader); input != "" {
		p, err := strconv.Atoi(input)
		if err != nil || !domain.ValidPrecision(p) {
			cmd.Printf("Ignoring invalid precision %q\n", input)
		} else {
			settings.Output.Precision = p
		}
	}

	cmd.Printf("Step 4: Coloured output (y/n) [%s]: ", yesNo(settings.Output.Color))
	switch strings.ToLower(readLine(reader)) {
	case "y", "yes":
		settings.Output.Color = true
	case "n", "no":
		settings.Output.Color = false
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println()
	cmd.Println("Settings saved.")
	return nil
}

type describer interface {
	comparable
	Description() string
}

// chooseOption lists options and returns the 1-based choice, defaulting to current.
func chooseOption[T describer](cmd *cobra.Command, reader *bufio.Reader, options []T, current T) int {
	defaultIdx := 1
	for i, o := range options {
		cmd.Printf("  %d. %s\n", i+1, o.Description())
		if o == current {
			defaultIdx = i + 1
		}
	}
	cmd.Printf("Enter choice [%d]: ", defaultIdx)
	return parseChoice(readLine(reader), len(options), defaultIdx)
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}
