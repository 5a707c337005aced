package forestfire

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Presets holds named configurations. "classic" matches DefaultConfig.
var Presets = map[string]Config{
	"classic": DefaultConfig(),
	"signed": {
		Width: 256, Height: 256, Seed: 1337,
		Variant: VariantVonNeumannSigned,
		Params: Params{
			TreeGrowth:     0.01,
			Lightning:      0.00001,
			FireSpread:     0.25,
			OnFireToBurned: 0.3,
			BurnedToNone:   0.02,
			SeedTree:       0.9,
		},
	},
	"rekindle": {
		Width: 256, Height: 256, Seed: 1337,
		Variant: VariantMooreWeighted,
		Params: Params{
			TreeGrowth:     0.001,
			Lightning:      0.000001,
			FireSpread:     0.4,
			OnFireToBurned: 0.6,
			BurnedRelight:  0.3,
			BurnedToNone:   0.05,
			SeedTree:       0.9,
		},
	},
	"inferno": {
		Width: 256, Height: 256, Seed: 1337,
		Variant: VariantMooreWeighted,
		Params: Params{
			TreeGrowth:     0.01,
			Lightning:      0.0001,
			FireSpread:     0.9,
			OnFireToBurned: 0.2,
			BurnedRelight:  0.1,
			BurnedToNone:   0.1,
			SeedTree:       0.95,
		},
	},
}

// GetPreset returns a copy of the named preset.
func GetPreset(name string) (Config, error) {
	cfg, ok := Presets[name]
	if !ok {
		return Config{}, errors.Wrapf(ErrUnknownPreset, "[GetPreset] %q", name)
	}
	return cfg, nil
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfig] failed to read file: %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfig] %s", path)
	}
	return cfg, nil
}

// MarshalConfig encodes cfg as YAML.
func MarshalConfig(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "[MarshalConfig] failed to marshal config")
	}
	return data, nil
}

// SaveConfig writes cfg as YAML to path.
func SaveConfig(path string, cfg Config) error {
	data, err := MarshalConfig(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "[SaveConfig] failed to write file: %s", path)
	}
	return nil
}
