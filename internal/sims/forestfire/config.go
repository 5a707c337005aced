package forestfire

import (
	"strconv"

	"fireca/internal/core"

	"github.com/pkg/errors"
)

// Variant names one of the supported rule sets.
type Variant string

const (
	// VariantMooreWeighted evaluates two passes over the 8-cell Moore
	// neighborhood with square-root weighted regrowth and burned relight.
	VariantMooreWeighted Variant = "moore-weighted"
	// VariantVonNeumannSigned evaluates a single pass over the 4-cell von
	// Neumann neighborhood where burned neighbors suppress regrowth.
	VariantVonNeumannSigned Variant = "vonneumann-signed"
)

// Params holds the transition probabilities. They are fixed for the lifetime
// of a Forest.
type Params struct {
	TreeGrowth     float64 `yaml:"tree_growth"`
	Lightning      float64 `yaml:"lightning"`
	FireSpread     float64 `yaml:"fire_spread"`
	OnFireToBurned float64 `yaml:"on_fire_to_burned"`
	BurnedRelight  float64 `yaml:"burned_relight"`
	BurnedToNone   float64 `yaml:"burned_to_none"`

	// SeedTree is the chance a cell starts as Tree when the grid is seeded.
	SeedTree float64 `yaml:"seed_tree"`
}

// Config controls the forest dimensions, rule variant and probabilities.
type Config struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Seed    int64   `yaml:"seed"`
	Variant Variant `yaml:"variant"`
	Params  Params  `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   256,
		Height:  256,
		Seed:    1337,
		Variant: VariantMooreWeighted,
		Params: Params{
			TreeGrowth:     0.001,
			Lightning:      0.000001,
			FireSpread:     0.4,
			OnFireToBurned: 0.6,
			BurnedRelight:  0,
			BurnedToNone:   0.05,
			SeedTree:       0.9,
		},
	}
}

// Validate reports the first configuration error. Nothing is clamped.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(core.ErrInvalidSize, "[Config.Validate] got %dx%d", c.Width, c.Height)
	}
	if _, err := RulesFor(c.Variant); err != nil {
		return err
	}
	for _, p := range c.Params.fields() {
		// Written as a negated range test so NaN is rejected too.
		if !(p.value >= 0 && p.value <= 1) {
			return errors.Wrapf(ErrProbabilityRange, "[Config.Validate] %s=%v", p.key, p.value)
		}
	}
	return nil
}

type paramField struct {
	key   string
	value float64
	ptr   *float64
}

func (p *Params) fields() []paramField {
	return []paramField{
		{"tree_growth", p.TreeGrowth, &p.TreeGrowth},
		{"lightning", p.Lightning, &p.Lightning},
		{"fire_spread", p.FireSpread, &p.FireSpread},
		{"on_fire_to_burned", p.OnFireToBurned, &p.OnFireToBurned},
		{"burned_relight", p.BurnedRelight, &p.BurnedRelight},
		{"burned_to_none", p.BurnedToNone, &p.BurnedToNone},
		{"seed_tree", p.SeedTree, &p.SeedTree},
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). A "config" key loads the base configuration from a YAML file;
// otherwise a "preset" key selects it. The other keys are applied on top. Values that fail to parse are reported, not skipped; the
// result is not validated.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if path, ok := cfg["config"]; ok {
		loaded, err := LoadConfig(path)
		if err != nil {
			return c, err
		}
		c = loaded
	} else if name, ok := cfg["preset"]; ok {
		preset, err := GetPreset(name)
		if err != nil {
			return c, err
		}
		c = preset
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(err, "[FromMap] w=%q", v)
		}
		c.Width = parsed
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(err, "[FromMap] h=%q", v)
		}
		c.Height = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, errors.Wrapf(err, "[FromMap] seed=%q", v)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["variant"]; ok {
		c.Variant = Variant(v)
	}
	for _, f := range c.Params.fields() {
		v, ok := cfg[f.key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, errors.Wrapf(err, "[FromMap] %s=%q", f.key, v)
		}
		*f.ptr = parsed
	}
	return c, nil
}
