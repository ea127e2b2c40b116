package config

import (
	"sort"
	"time"
)

var Presets = map[string]func(*Config){
	"default": func(c *Config) {},
	"slow": func(c *Config) {
		c.Interval = 5 * time.Second
	},
	"fast": func(c *Config) {
		c.Interval = 500 * time.Millisecond
	},
	"sticky": func(c *Config) {
		c.EmptySelection = "keep"
	},
}

// GetPreset returns the default configuration with the named preset
// applied, or nil for an unknown name.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
