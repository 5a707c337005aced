package app

import (
	"flag"
	"strings"
)

// Config represents the command-line parameters for the GUI.
type Config struct {
	Sim    string
	Scale  int
	TPS    int
	Seed   int64
	Preset string
	File   string
	HUD    int

	// Overrides holds key=value pairs passed through to the sim factory.
	Overrides map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "forestfire", Scale: 2, TPS: 20, Seed: 1337, HUD: 220, Overrides: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Preset, "preset", c.Preset, "named parameter preset")
	fs.StringVar(&c.File, "config", c.File, "YAML config file (overrides -preset)")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
	fs.Func("set", "sim parameter override in key=value form (repeatable)", func(v string) error {
		key, value, ok := strings.Cut(v, "=")
		if !ok {
			return errMalformedOverride
		}
		c.Overrides[key] = value
		return nil
	})
}

// FactoryArgs merges preset and overrides into the map handed to a sim
// factory.
func (c *Config) FactoryArgs() map[string]string {
	args := map[string]string{}
	if c.Preset != "" {
		args["preset"] = c.Preset
	}
	if c.File != "" {
		args["config"] = c.File
	}
	for k, v := range c.Overrides {
		args[k] = v
	}
	return args
}
