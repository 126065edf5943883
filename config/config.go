package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the runtime configuration of the game binaries
// Simulation rules are fixed in the parameter package and are not configurable
type Config struct {
	Seed       int64 `yaml:"seed"` // 0 picks a time-based seed
	StartLevel int   `yaml:"start_level"`
	Lives      int   `yaml:"lives"`
	TickMs     int   `yaml:"tick_ms"`

	Audio      Audio             `yaml:"audio"`
	Replay     Replay            `yaml:"replay"`
	Scoreboard Scoreboard        `yaml:"scoreboard"`
	Observer   Observer          `yaml:"observer"`
	Keys       map[string]string `yaml:"keys"` // action name -> key name overrides
}

type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type Replay struct {
	Record bool   `yaml:"record"`
	Dir    string `yaml:"dir"`
}

type Scoreboard struct {
	Path   string `yaml:"path"` // empty disables the table
	Player string `yaml:"player"`
}

type Observer struct {
	Addr string `yaml:"addr"` // empty disables the stream
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		StartLevel: 0,
		Lives:      3,
		TickMs:     50,
		Audio: Audio{
			Enabled: true,
			Volume:  0.7,
		},
		Replay: Replay{
			Record: false,
			Dir:    "replays",
		},
		Scoreboard: Scoreboard{
			Path:   "tunnelman.db",
			Player: "player",
		},
	}
}

// Load reads a YAML file over the defaults and validates the result
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.StartLevel < 0:
		return fmt.Errorf("%w: start_level %d is negative", ErrInvalid, c.StartLevel)
	case c.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive, got %d", ErrInvalid, c.Lives)
	case c.TickMs <= 0:
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalid, c.TickMs)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume %.2f outside [0,1]", ErrInvalid, c.Audio.Volume)
	case c.Replay.Record && c.Replay.Dir == "":
		return fmt.Errorf("%w: replay.record needs replay.dir", ErrInvalid)
	}
	return nil
}

// TickPeriod returns the wall-clock duration of one tick
func (c Config) TickPeriod() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

// ResolveSeed returns the configured seed, or one derived from now when unset
func (c Config) ResolveSeed(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}
