package domain

const unknownDescription = "Unknown"

// OutputFormat defines how CLI results are rendered.
type OutputFormat string

// Available output formats.
const (
	// OutputFormatText renders human-readable text.
	OutputFormatText OutputFormat = "text"

	// OutputFormatJSON renders indented JSON.
	OutputFormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatText, OutputFormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case OutputFormatText:
		return "Text (human readable)"
	case OutputFormatJSON:
		return "JSON (machine readable)"
	default:
		return unknownDescription
	}
}

// Precision bounds for printed numbers.
const (
	MinPrecision     = 0
	MaxPrecision     = 12
	DefaultPrecision = 4
)

// OutputSettings holds result rendering preferences.
type OutputSettings struct {
	// Format is the default rendering when --json is not given.
	Format OutputFormat

	// Precision is the number of decimal places printed for scalars.
	Precision int

	// Color enables styled output when stdout is a terminal.
	Color bool
}

// DistanceSettings holds distance computation preferences.
type DistanceSettings struct {
	// Metric is used when a command does not specify one.
	Metric DistanceMetric
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Output holds rendering settings.
	Output OutputSettings

	// Distance holds distance computation settings.
	Distance DistanceSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Output: OutputSettings{
			Format:    OutputFormatText,
			Precision: DefaultPrecision,
			Color:     true,
		},
		Distance: DistanceSettings{
			Metric: DistanceEuclidean,
		},
	}
}

// ValidPrecision reports whether p is within [MinPrecision, MaxPrecision].
func ValidPrecision(p int) bool {
	return p >= MinPrecision && p <= MaxPrecision
}

// AllOutputFormats returns all available output formats.
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{OutputFormatText, OutputFormatJSON}
}

// AllDistanceMetrics returns all available distance metrics.
func AllDistanceMetrics() []DistanceMetric {
	return []DistanceMetric{DistanceEuclidean, DistanceManhattan}
}
