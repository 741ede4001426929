package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/planar/internal/core/domain"
	"github.com/custodia-labs/planar/internal/core/ports/driven"
	"github.com/custodia-labs/planar/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyOutputFormat    = "output.format"
	keyOutputPrecision = "output.precision"
	keyOutputColor     = "output.color"
	keyDistanceMetric  = "distance.metric"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Output: domain.OutputSettings{
			Format:    s.getOutputFormat(defaults.Output.Format),
			Precision: s.getPrecision(defaults.Output.Precision),
			Color:     s.getBool(keyOutputColor, defaults.Output.Color),
		},
		Distance: domain.DistanceSettings{
			Metric: s.getMetric(defaults.Distance.Metric),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidInput)
	}
	if !settings.Output.Format.IsValid() {
		return fmt.Errorf("%w: output format %q", domain.ErrInvalidInput, settings.Output.Format)
	}
	if !domain.ValidPrecision(settings.Output.Precision) {
		return fmt.Errorf("%w: precision %d outside [%d, %d]",
			domain.ErrInvalidInput, settings.Output.Precision, domain.MinPrecision, domain.MaxPrecision)
	}
	if !settings.Distance.Metric.IsValid() {
		return fmt.Errorf("%w: distance metric %q", domain.ErrInvalidInput, settings.Distance.Metric)
	}

	if err := s.configStore.Set(keyOutputFormat, settings.Output.Format.String()); err != nil {
		return fmt.Errorf("save output format: %w", err)
	}
	if err := s.configStore.Set(keyOutputPrecision, settings.Output.Precision); err != nil {
		return fmt.Errorf("save output precision: %w", err)
	}
	if err := s.configStore.Set(keyOutputColor, settings.Output.Color); err != nil {
		return fmt.Errorf("save output color: %w", err)
	}
	if err := s.configStore.Set(keyDistanceMetric, settings.Distance.Metric.String()); err != nil {
		return fmt.Errorf("save distance metric: %w", err)
	}

	return nil
}

// SetValue validates and stores a single setting by its dotted key.
func (s *SettingsService) SetValue(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch key {
	case keyOutputFormat:
		settings.Output.Format = domain.OutputFormat(strings.ToLower(value))
	case keyOutputPrecision:
		p, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: precision %q is not an integer", domain.ErrInvalidInput, value)
		}
		settings.Output.Precision = p
	case keyOutputColor:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: color %q is not a boolean", domain.ErrInvalidInput, value)
		}
		settings.Output.Color = b
	case keyDistanceMetric:
		settings.Distance.Metric = domain.DistanceMetric(strings.ToLower(value))
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return []string{keyOutputFormat, keyOutputPrecision, keyOutputColor, keyDistanceMetric}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

// Zero is a valid precision, so presence is checked before reading.
func (s *SettingsService) getPrecision(defaultVal int) int {
	if _, exists := s.configStore.Get(keyOutputPrecision); !exists {
		return defaultVal
	}
	p := s.configStore.GetInt(keyOutputPrecision)
	if !domain.ValidPrecision(p) {
		return defaultVal
	}
	return p
}

func (s *SettingsService) getOutputFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	val := s.configStore.GetString(keyOutputFormat)
	if val == "" {
		return defaultVal
	}
	format := domain.OutputFormat(val)
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

func (s *SettingsService) getMetric(defaultVal domain.DistanceMetric) domain.DistanceMetric {
	val := s.configStore.GetString(keyDistanceMetric)
	if val == "" {
		return defaultVal
	}
	metric := domain.DistanceMetric(val)
	if !metric.IsValid() {
		return defaultVal
	}
	return metric
}
