package app

import (
	"fmt"

	"calc555/internal/format"
	"calc555/internal/render"
	"calc555/internal/services/calculator"
)

// Config holds runtime options for building the app.
type Config struct {
	DefaultCapacitor  string            `json:"default_capacitor"`   // used when the capacitor entry is empty
	LowValueThreshold float64           `json:"low_value_threshold"` // ohms; 0 disables the low-value suffix
	Limits            calculator.Limits `json:"limits"`
	Color             bool              `json:"color"`
	Plot              PlotConfig        `json:"plot"`
}

// PlotConfig configures the waveform chart.
type PlotConfig struct {
	Cycles   int     `json:"cycles"`
	Vcc      float64 `json:"vcc"`
	Format   string  `json:"format"`
	WidthIn  float64 `json:"width_in"`
	HeightIn float64 `json:"height_in"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		DefaultCapacitor:  "10µF",
		LowValueThreshold: format.DefaultLowValueThreshold,
		Limits:            calculator.DefaultLimits(),
		Color:             true,
		Plot: PlotConfig{
			Cycles:   render.DefaultCycles,
			Vcc:      render.DefaultVcc,
			Format:   render.DefaultFormat,
			WidthIn:  8,
			HeightIn: 4,
		},
	}
}

// LoadConfig returns DefaultConfig overlaid with the JSON file at path. A
// missing file is not an error; an empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if err := readJSON(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as indented JSON to path.
func SaveConfig(path string, cfg Config) error {
	return writeJSON(path, cfg, 0o644)
}

// Validate checks that limits are ordered and the plot is drawable.
func (c Config) Validate() error {
	l := c.Limits
	switch {
	case l.PeriodMin <= 0 || l.PeriodMin > l.PeriodMax:
		return fmt.Errorf("period limits %g..%g", l.PeriodMin, l.PeriodMax)
	case l.FrequencyMin <= 0 || l.FrequencyMin > l.FrequencyMax:
		return fmt.Errorf("frequency limits %g..%g", l.FrequencyMin, l.FrequencyMax)
	case l.DutyMin > l.DutyMax:
		return fmt.Errorf("duty limits %g..%g", l.DutyMin, l.DutyMax)
	case c.LowValueThreshold < 0:
		return fmt.Errorf("low value threshold %g", c.LowValueThreshold)
	case c.Plot.Cycles < 1 || c.Plot.WidthIn <= 0 || c.Plot.HeightIn <= 0:
		return fmt.Errorf("plot size %d cycles, %gx%g in", c.Plot.Cycles, c.Plot.WidthIn, c.Plot.HeightIn)
	}
	return nil
}
