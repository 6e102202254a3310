package config

import (
	"sort"

	"github.com/san-kum/orrery/internal/solar"
)

// Presets are named variations on the default system.
var Presets = map[string]func() *Config{
	"classic": DefaultConfig,
	"inner": func() *Config {
		c := DefaultConfig()
		c.Bodies = c.Bodies[:5]
		c.Camera.Distance = 20
		return c
	},
	"outer": func() *Config {
		c := DefaultConfig()
		c.Bodies = append(c.Bodies[:1:1], c.Bodies[5:]...)
		c.Camera.Distance = 55
		return c
	},
	"frozen": func() *Config {
		c := DefaultConfig()
		for i := range c.Bodies {
			if i == solar.SunIndex {
				continue
			}
			c.Bodies[i].Speed = 0
		}
		return c
	},
	"sparse": func() *Config {
		c := DefaultConfig()
		c.Scene.StarCount = 500
		c.Scene.OrbitSegments = 32
		return c
	},
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
