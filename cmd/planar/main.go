// Command planar parses coordinate text and measures shapes.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/planar/internal/adapters/driven/config/file"
	"github.com/custodia-labs/planar/internal/adapters/driven/manifest"
	"github.com/custodia-labs/planar/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/planar/internal/adapters/driving/cli"
	"github.com/custodia-labs/planar/internal/core/ports/driven"
	"github.com/custodia-labs/planar/internal/core/ports/driving"
	"github.com/custodia-labs/planar/internal/core/services"
	"github.com/custodia-labs/planar/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version string

func main() {
	var store driven.ConfigStore
	fileStore, err := file.NewConfigStore("")
	if err != nil {
		logger.Warn("config file unavailable, settings will not persist: %v", err)
		store = memory.NewConfigStore()
	} else {
		store = fileStore
	}

	geometry := services.NewGeometryService(services.NewCoordinateParser(), services.NewAreaEngine())

	cli.SetVersion(version)
	cli.SetServices(geometry, services.NewSettingsService(store))
	cli.SetSettingsFactory(func(dir string) (driving.SettingsService, error) {
		s, err := file.NewConfigStore(dir)
		if err != nil {
			return nil, fmt.Errorf("open config dir %s: %w", dir, err)
		}
		return services.NewSettingsService(s), nil
	})
	cli.SetManifestDecoders(func(path string) (driven.ShapeDecoder, error) {
		return manifest.NewDecoderForPath(path, geometry)
	})

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
