// Package config holds the qualreport configuration: heuristic thresholds for
// value classification and display selection, the report color palette, and
// logging settings. Everything here is read-only after Load; the pipeline never
// mutates configuration at runtime.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all qualreport configuration.
type Config struct {
	Heuristics HeuristicsConfig `yaml:"heuristics"`
	Palette    PaletteConfig    `yaml:"palette"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// HeuristicsConfig carries the detection thresholds used by the value
// classifier and the grouped-response display chooser. The defaults were tuned
// empirically against real exports; changing them changes which layout a
// question gets, so treat them as compatibility constants.
type HeuristicsConfig struct {
	// LongTextThreshold is the character count past which a value is
	// rendered as long-form text.
	LongTextThreshold int `yaml:"long_text_threshold"`

	// NumericCodeMax is the largest single-digit-range integer treated as an
	// internal selection code (1..NumericCodeMax).
	NumericCodeMax int `yaml:"numeric_code_max"`

	// NumericCodeRangeMin/Max bound the second code band; non-round numbers
	// inside it are treated as codes.
	NumericCodeRangeMin int `yaml:"numeric_code_range_min"`
	NumericCodeRangeMax int `yaml:"numeric_code_range_max"`

	// MultiValueAvgLengthMax is the maximum average part length for a
	// delimited value to count as a list rather than prose.
	MultiValueAvgLengthMax int `yaml:"multi_value_avg_length_max"`

	// ShortValueMaxLength is the maximum length of a categorical token.
	ShortValueMaxLength int `yaml:"short_value_max_length"`

	// UniqueRatioMax is the uniqueness ratio above which grouped values are
	// treated as data entries instead of categorical selections.
	UniqueRatioMax float64 `yaml:"unique_ratio_max"`

	// Checkmark table bounds: distinct token count must fall inside
	// [CheckmarkMinTokens, CheckmarkMaxTokens] and the token-to-row ratio
	// must not exceed CheckmarkTokenRowRatioMax.
	CheckmarkMinTokens        int     `yaml:"checkmark_min_tokens"`
	CheckmarkMaxTokens        int     `yaml:"checkmark_max_tokens"`
	CheckmarkTokenRowRatioMax float64 `yaml:"checkmark_token_row_ratio_max"`
}

// PaletteConfig is the colorblind-friendly palette (Wong palette plus
// neutrals) injected into the report stylesheet and mirrored by the CLI theme.
type PaletteConfig struct {
	Primary     string `yaml:"primary"`
	PrimaryDark string `yaml:"primary_dark"`
	Success     string `yaml:"success"`
	Warning     string `yaml:"warning"`
	WarningDark string `yaml:"warning_dark"`
	Error       string `yaml:"error"`
	Neutral     string `yaml:"neutral"`
	Light       string `yaml:"light"`
	Border      string `yaml:"border"`
}

// LoggingConfig configures the category file logger.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"` // debug, info, warn, error
	Categories map[string]bool `yaml:"categories"`
	File       string          `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Heuristics: HeuristicsConfig{
			LongTextThreshold:         200,
			NumericCodeMax:            20,
			NumericCodeRangeMin:       100,
			NumericCodeRangeMax:       300,
			MultiValueAvgLengthMax:    40,
			ShortValueMaxLength:       30,
			UniqueRatioMax:            0.5,
			CheckmarkMinTokens:        2,
			CheckmarkMaxTokens:        10,
			CheckmarkTokenRowRatioMax: 0.7,
		},

		Palette: PaletteConfig{
			Primary:     "#0077BB",
			PrimaryDark: "#004488",
			Success:     "#009988",
			Warning:     "#EE7733",
			WarningDark: "#CC6600",
			Error:       "#CC3311",
			Neutral:     "#718096",
			Light:       "#f8fafc",
			Border:      "#e2e8f0",
		},

		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults;
// the QUALREPORT_CONFIG environment variable overrides the path.
func Load(path string) (*Config, error) {
	if env := os.Getenv("QUALREPORT_CONFIG"); env != "" {
		path = env
	}

	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks threshold sanity. Zero or inverted bounds would silently
// disable whole display paths, so they are rejected up front.
func (c *Config) Validate() error {
	h := c.Heuristics
	if h.LongTextThreshold <= 0 {
		return fmt.Errorf("long_text_threshold must be positive, got %d", h.LongTextThreshold)
	}
	if h.NumericCodeRangeMin > h.NumericCodeRangeMax {
		return fmt.Errorf("numeric code range inverted: %d > %d", h.NumericCodeRangeMin, h.NumericCodeRangeMax)
	}
	if h.CheckmarkMinTokens > h.CheckmarkMaxTokens {
		return fmt.Errorf("checkmark token bounds inverted: %d > %d", h.CheckmarkMinTokens, h.CheckmarkMaxTokens)
	}
	if h.UniqueRatioMax <= 0 || h.UniqueRatioMax > 1 {
		return fmt.Errorf("unique_ratio_max must be in (0,1], got %v", h.UniqueRatioMax)
	}
	if h.CheckmarkTokenRowRatioMax <= 0 {
		return fmt.Errorf("checkmark_token_row_ratio_max must be positive, got %v", h.CheckmarkTokenRowRatioMax)
	}
	return nil
}
