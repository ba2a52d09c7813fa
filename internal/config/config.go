// Package config resolves ridelog settings.
//
// Precedence, lowest to highest: built-in defaults, an optional YAML file,
// RIDELOG_* environment variables, then command-line flags (applied by the
// cli package).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/roach88/ridelog/internal/pacing"
	"github.com/roach88/ridelog/internal/poster"
	"github.com/roach88/ridelog/internal/store"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "RIDELOG"

// Config holds all ridelog settings.
type Config struct {
	// Database is the SQLite file the recorder writes to.
	Database string `yaml:"database" envconfig:"DB"`

	// PostCommand is the external posting client.
	PostCommand string `yaml:"post_command" envconfig:"POST_COMMAND"`

	// PostArgs are the client arguments; "{status}" is replaced by the text.
	PostArgs []string `yaml:"post_args" envconfig:"POST_ARGS"`

	// PostDelay is the pause taken before posting. Zero disables it.
	PostDelay time.Duration `yaml:"post_delay" envconfig:"POST_DELAY"`

	// LogLevel is a zap level name for diagnostics on stderr.
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Database:    store.DefaultPath,
		PostCommand: poster.DefaultCommand,
		PostArgs:    append([]string(nil), poster.DefaultArgs...),
		PostDelay:   pacing.DefaultInterval,
		LogLevel:    "warn",
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is non-empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		defer f.Close()
		if err := cfg.decodeYAML(f); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeYAML overlays the keys present in r onto cfg. Unknown keys are an
// error so typos do not silently fall back to defaults.
func (c *Config) decodeYAML(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks settings that would otherwise fail late.
func (c *Config) Validate() error {
	if c.Database == "" {
		return errors.New("invalid config: database path is empty")
	}
	if c.PostCommand == "" {
		return errors.New("invalid config: post_command is empty")
	}
	if c.PostDelay < 0 {
		return fmt.Errorf("invalid config: post_delay %s is negative", c.PostDelay)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: log_level: %w", err)
	}
	return nil
}
