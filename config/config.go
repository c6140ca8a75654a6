// Package config loads the game configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/plus3/blockfall/piece"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

type Field struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Loop struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

type Logging struct {
	// Debug enables log output. Without it everything is discarded.
	Debug bool `yaml:"debug"`
	// File receives the log when Debug is set. Empty means stderr, which
	// garbles the terminal frontend.
	File string `yaml:"file"`
}

// Config is the complete set of knobs of the game binary.
type Config struct {
	Field Field `yaml:"field"`
	Loop  Loop  `yaml:"loop"`
	// Seed for the piece sequence. Zero seeds from the clock.
	Seed uint64 `yaml:"seed"`
	// Pieces is the path of a blueprint file. Empty selects the built-in set.
	Pieces   string  `yaml:"pieces"`
	Frontend string  `yaml:"frontend"`
	Audio    bool    `yaml:"audio"`
	Logging  Logging `yaml:"logging"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Field: Field{Width: 10, Height: 20},
		Loop: Loop{
			TickInterval: 500 * time.Millisecond,
			PollInterval: 16 * time.Millisecond,
		},
		Frontend: FrontendTerminal,
		Audio:    true,
		Logging:  Logging{File: "blockfall.log"},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. Keys missing from the file keep their default value; unknown keys
// are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting the game cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field size %dx%d must be positive", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	case c.Loop.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval %s must be positive", ErrInvalidConfig, c.Loop.TickInterval)
	case c.Loop.PollInterval <= 0:
		return fmt.Errorf("%w: poll interval %s must be positive", ErrInvalidConfig, c.Loop.PollInterval)
	case c.Loop.PollInterval > c.Loop.TickInterval:
		return fmt.Errorf("%w: poll interval %s exceeds tick interval %s", ErrInvalidConfig, c.Loop.PollInterval, c.Loop.TickInterval)
	}

	if c.Frontend != FrontendTerminal && c.Frontend != FrontendWindow {
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalidConfig, c.Frontend)
	}
	return nil
}

// Blueprints loads the configured piece set.
func (c Config) Blueprints() ([]piece.Blueprint, error) {
	if c.Pieces == "" {
		return piece.DefaultBlueprints(), nil
	}

	f, err := os.Open(c.Pieces)
	if err != nil {
		return nil, fmt.Errorf("open pieces: %w", err)
	}
	defer f.Close()

	blueprints, err := piece.LoadBlueprints(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Pieces, err)
	}
	return blueprints, nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
