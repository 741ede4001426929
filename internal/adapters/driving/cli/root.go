// Package cli provides the cobra command tree for planar.
//
// Commands reach the core only through driving ports. cmd/planar injects
// the service implementations with SetServices before calling Execute.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/planar/internal/core/ports/driving"
	"github.com/custodia-labs/planar/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	geometryService driving.GeometryService
	settingsService driving.SettingsService

	// settingsFactory rebuilds settingsService when --config-dir is given.
	settingsFactory func(configDir string) (driving.SettingsService, error)
)

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "planar",
	Short: "Parse coordinates and measure shapes",
	Long: `planar parses "x,y" coordinate text into points, measures distances
between them, and computes the area of rectangles, circles and vectors.

Invalid input is reported as an error; it never produces a shape.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if configDir != "" && settingsFactory != nil {
			svc, err := settingsFactory(configDir)
			if err != nil {
				return err
			}
			settingsService = svc
			logger.Debug("using config dir %s", configDir)
		}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding config.toml (default ~/.planar)")
}

// SetServices injects the core services used by commands.
func SetServices(geometry driving.GeometryService, settings driving.SettingsService) {
	geometryService = geometry
	settingsService = settings
}

// SetSettingsFactory registers how to build a settings service for --config-dir.
func SetSettingsFactory(factory func(configDir string) (driving.SettingsService, error)) {
	settingsFactory = factory
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
