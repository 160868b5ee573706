// Package config loads the analysis tunables from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pthm/reqlint/internal/analyzer"
	"github.com/pthm/reqlint/internal/rules"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".reqlint.yaml"

// ErrInvalid is returned for out-of-range values
var ErrInvalid = errors.New("invalid config")

// Config holds the recognized tunables. No other option affects analysis.
type Config struct {
	// MaxLength is the token count above which a sentence is too complex.
	MaxLength int `yaml:"max_length"`

	// MLThreshold is the unclear probability above which the model flags ambiguity.
	MLThreshold float64 `yaml:"ml_threshold"`
}

// Default returns max_length 20 and ml_threshold 0.6.
func Default() Config {
	return Config{
		MaxLength:   rules.DefaultMaxLength,
		MLThreshold: rules.DefaultThreshold,
	}
}

// Validate checks max_length >= 1 and 0 < ml_threshold < 1.
func (c Config) Validate() error {
	if c.MaxLength < 1 {
		return fmt.Errorf("%w: max_length must be at least 1, got %d", ErrInvalid, c.MaxLength)
	}
	if c.MLThreshold <= 0 || c.MLThreshold >= 1 {
		return fmt.Errorf("%w: ml_threshold must be between 0 and 1, got %g", ErrInvalid, c.MLThreshold)
	}
	return nil
}

// Options converts the config to analyzer options
func (c Config) Options() analyzer.Options {
	return analyzer.Options{
		MaxLength: c.MaxLength,
		Threshold: c.MLThreshold,
	}
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the config at path. An empty path loads DefaultFile if it
// exists and falls back to the defaults otherwise; an explicit path must
// exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
