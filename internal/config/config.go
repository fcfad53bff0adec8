package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/amountfield/internal/amount"
)

var (
	ErrInvalidStep   = errors.New("step must be a positive number")
	ErrInvalidBounds = errors.New("min must not exceed max")
	ErrNonFinite     = errors.New("value must be finite")
)

// Config holds application configuration.
type Config struct {
	Field   Field
	Log     LogConfig
	Presets PresetsConfig
	// Remember writes the last committed amount back to field.amount on exit
	// when the form runs on the [field] section.
	Remember bool
}

// Field configures a single amount field. Min, Max and Amount are optional.
type Field struct {
	Min       *float64 `mapstructure:"min" toml:"min"`
	Max       *float64 `mapstructure:"max" toml:"max"`
	Step      float64  `mapstructure:"step" toml:"step"`
	ForceStep bool     `mapstructure:"force_step" toml:"force_step"`
	Amount    *float64 `mapstructure:"amount" toml:"amount"`
}

// LogConfig holds log file settings. An empty Path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

// PresetsConfig points at the named field presets file.
type PresetsConfig struct {
	Path string
}

// DefaultField returns a field with step 1, no bounds and no amount.
func DefaultField() Field {
	return Field{Step: amount.DefaultStep}
}

// Bounds returns the field's min/max as an amount.Bounds.
func (f Field) Bounds() amount.Bounds {
	return amount.Bounds{Min: f.Min, Max: f.Max}
}

// WithDefaults fills in a zero step.
func (f Field) WithDefaults() Field {
	if f.Step == 0 {
		f.Step = amount.DefaultStep
	}
	return f
}

// Validate checks the field configuration. All problems are reported together.
func (f Field) Validate() error {
	var errs []error
	if math.IsNaN(f.Step) || math.IsInf(f.Step, 0) || f.Step <= 0 {
		errs = append(errs, fmt.Errorf("step %v: %w", f.Step, ErrInvalidStep))
	}
	for _, p := range []struct {
		name string
		v    *float64
	}{{"min", f.Min}, {"max", f.Max}, {"amount", f.Amount}} {
		if p.v != nil && (math.IsNaN(*p.v) || math.IsInf(*p.v, 0)) {
			errs = append(errs, fmt.Errorf("%s: %w", p.name, ErrNonFinite))
		}
	}
	if f.Min != nil && f.Max != nil && *f.Min > *f.Max {
		errs = append(errs, fmt.Errorf("min %v, max %v: %w", *f.Min, *f.Max, ErrInvalidBounds))
	}
	return errors.Join(errs...)
}

// Load reads configuration from file and env. Env var overrides use prefix AMOUNTFIELD_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("field.step", amount.DefaultStep)
	v.SetDefault("field.force_step", false)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("presets.path", filepath.Join(configDir(), "fields.toml"))
	v.SetDefault("remember", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("AMOUNTFIELD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("AMOUNTFIELD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// optional keys have no default, so env lookups need explicit binding
	for _, key := range []string{"field.min", "field.max", "field.amount"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Field = c.Field.WithDefaults()
	if err := c.Field.Validate(); err != nil {
		return Config{}, fmt.Errorf("field config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("AMOUNTFIELD_CONFIG")
	if path == "" {
		path = filepath.Join(configDir(), "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	if cfg.Field.Min != nil {
		v.Set("field.min", *cfg.Field.Min)
	}
	if cfg.Field.Max != nil {
		v.Set("field.max", *cfg.Field.Max)
	}
	if cfg.Field.Amount != nil {
		v.Set("field.amount", *cfg.Field.Amount)
	}
	v.Set("field.step", cfg.Field.Step)
	v.Set("field.force_step", cfg.Field.ForceStep)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("presets.path", cfg.Presets.Path)
	v.Set("remember", cfg.Remember)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// RememberAmount stores v as the field's starting amount and saves cfg.
func RememberAmount(cfg Config, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("remember amount: %w", ErrNonFinite)
	}
	cfg.Field.Amount = &v
	return Save(cfg)
}

// configDir returns the amountfield directory under the user config dir,
// falling back to ~/.config.
func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "amountfield")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "amountfield")
}
