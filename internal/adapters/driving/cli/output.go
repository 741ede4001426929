package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/planar/internal/adapters/driving/styles"
	"github.com/custodia-labs/planar/internal/core/domain"
	"github.com/custodia-labs/planar/internal/logger"
)

// printer renders command results according to the user's settings.
type printer struct {
	out      io.Writer
	settings domain.AppSettings
	asJSON   bool
	styles   *styles.Styles
}

// newPrinter loads settings and decides between JSON, styled and plain text.
// forceJSON is the command's --json flag.
func newPrinter(cmd *cobra.Command, forceJSON bool) *printer {
	settings := currentSettings()
	p := &printer{
		out:      cmd.OutOrStdout(),
		settings: settings,
		asJSON:   forceJSON || settings.Output.Format == domain.OutputFormatJSON,
		styles:   styles.Plain(),
	}
	if settings.Output.Color && isTerminal(p.out) {
		p.styles = styles.DefaultStyles()
	}
	return p
}

func currentSettings() domain.AppSettings {
	if settingsService == nil {
		return domain.DefaultAppSettings()
	}
	s, err := settingsService.Get()
	if err != nil || s == nil {
		logger.Warn("could not load settings, using defaults: %v", err)
		return domain.DefaultAppSettings()
	}
	return *s
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// number formats v with the configured precision.
func (p *printer) number(v float64) string {
	return strconv.FormatFloat(v, 'f', p.settings.Output.Precision, 64)
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *printer) println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

func (p *printer) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	p.println(string(data))
	return nil
}
