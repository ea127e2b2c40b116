package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ndviplay/internal/playback"
)

const (
	DefaultDir            = "."
	DefaultPattern        = "*.jpg"
	DefaultInterval       = 2 * time.Second
	DefaultBackend        = "tui"
	DefaultEmptySelection = "clear"
	DefaultPreviewWidth   = 64
	DefaultPreviewHeight  = 24
)

// Backends understood by the CLI.
var Backends = []string{"tui", "gui", "cv"}

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Dir            string        `yaml:"dir"`
	Pattern        string        `yaml:"pattern"`
	Interval       time.Duration `yaml:"interval"`
	Backend        string        `yaml:"backend"`
	EmptySelection string        `yaml:"empty_selection"`
	Keys           KeyConfig     `yaml:"keys"`
	Windows        WindowConfig  `yaml:"windows"`
	Preview        PreviewConfig `yaml:"preview"`
	LogFile        string        `yaml:"log_file"`
}

type KeyConfig struct {
	Quit     []string `yaml:"quit"`
	Baseline []string `yaml:"baseline"`
	Hold     []string `yaml:"hold"`
}

type WindowConfig struct {
	Index      string `yaml:"index"`
	Difference string `yaml:"difference"`
}

type PreviewConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Dir:            DefaultDir,
		Pattern:        DefaultPattern,
		Interval:       DefaultInterval,
		Backend:        DefaultBackend,
		EmptySelection: DefaultEmptySelection,
		Keys: KeyConfig{
			Quit:     []string{"q", "Q"},
			Baseline: []string{"b"},
		},
		Windows: WindowConfig{
			Index:      playback.DefaultIndexWindow,
			Difference: playback.DefaultDiffWindow,
		},
		Preview: PreviewConfig{
			Width:  DefaultPreviewWidth,
			Height: DefaultPreviewHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := cfg.YAML()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %s", ErrInvalidConfig, c.Interval)
	}
	known := false
	for _, b := range Backends {
		if b == c.Backend {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("%w: unknown backend %q (available: %v)", ErrInvalidConfig, c.Backend, Backends)
	}
	if _, err := playback.ParseSelectionPolicy(c.EmptySelection); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		return fmt.Errorf("%w: preview size must be positive", ErrInvalidConfig)
	}
	return nil
}

// PlaybackOptions translates the configuration into controller options.
// Clock and logger are left for the caller.
func (c *Config) PlaybackOptions() (playback.Options, error) {
	policy, err := playback.ParseSelectionPolicy(c.EmptySelection)
	if err != nil {
		return playback.Options{}, err
	}
	return playback.Options{
		Interval:       c.Interval,
		Keymap:         playback.NewKeymap(c.Keys.Quit, c.Keys.Baseline, c.Keys.Hold),
		EmptySelection: policy,
		IndexWindow:    c.Windows.Index,
		DiffWindow:     c.Windows.Difference,
	}, nil
}
