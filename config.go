package qprep

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the defaults a run falls back to when a flag is not given.
type Config struct {
	Qubits        QubitCount
	Mode          string
	Precision     int
	Tolerance     float64
	Probabilities bool
	LogLevel      string
}

// NewConfig returns the built-in defaults. Qubits and Mode are left unset
// so the CLI asks for them.
func NewConfig() *Config {
	return &Config{
		Precision: DefaultPrecision,
		Tolerance: Tolerance,
		LogLevel:  "warn",
	}
}

/*
LoadConfig layers the defaults, an optional config file (any format viper
reads, chosen by extension) and QPREP_* environment variables, in that order
of increasing priority. An empty path skips the file.
*/
func LoadConfig(path string) (*Config, error) {
	defaults := NewConfig()

	v := viper.New()
	v.SetDefault("qubits", int(defaults.Qubits))
	v.SetDefault("mode", defaults.Mode)
	v.SetDefault("precision", defaults.Precision)
	v.SetDefault("tolerance", defaults.Tolerance)
	v.SetDefault("probabilities", defaults.Probabilities)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix("qprep")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := &Config{
		Qubits:        QubitCount(v.GetInt("qubits")),
		Mode:          v.GetString("mode"),
		Precision:     v.GetInt("precision"),
		Tolerance:     v.GetFloat64("tolerance"),
		Probabilities: v.GetBool("probabilities"),
		LogLevel:      v.GetString("log_level"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values no run could use. A zero Qubits means "ask".
func (cfg *Config) Validate() error {
	if cfg.Qubits != 0 && !cfg.Qubits.Supported() {
		return fmt.Errorf("%w: qubits must be 2 or 3, got %d", ErrInvalidInput, cfg.Qubits)
	}

	if cfg.Mode != "" {
		if _, err := ParseMode(cfg.Mode); err != nil {
			return err
		}
	}

	if cfg.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive, got %v", ErrInvalidInput, cfg.Tolerance)
	}

	return nil
}
