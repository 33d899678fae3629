package text

import "log/slog"

// MeasurerOption configures the font-backed measurers.
type MeasurerOption func(*measurerConfig)

// measurerConfig holds configuration shared by FaceMeasurer and
// ShapingMeasurer.
type measurerConfig struct {
	fallback string
	logger   *slog.Logger
	language string
}

func defaultMeasurerConfig() measurerConfig {
	return measurerConfig{
		fallback: DefaultFamily,
		language: "en",
	}
}

// WithFallbackFamily sets the family used when a style names an unknown one.
// It must be a builtin family or one registered before first use.
func WithFallbackFamily(name string) MeasurerOption {
	return func(c *measurerConfig) {
		c.fallback = name
	}
}

// WithMeasurerLogger sets the logger used to report substituted families.
func WithMeasurerLogger(l *slog.Logger) MeasurerOption {
	return func(c *measurerConfig) {
		c.logger = l
	}
}

// WithLanguage sets the language tag used for shaping (e.g., "en", "ar").
// Only ShapingMeasurer uses it.
func WithLanguage(lang string) MeasurerOption {
	return func(c *measurerConfig) {
		c.language = lang
	}
}
