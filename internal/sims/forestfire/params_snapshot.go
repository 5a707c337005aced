package forestfire

import (
	"strconv"

	"fireca/internal/core"
)

// Parameters returns a read-only snapshot of the configuration.
func (f *Forest) Parameters() core.ParameterSnapshot {
	params := f.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", f.cfg.Width),
				intParam("h", "Height", f.cfg.Height),
				int64Param("seed", "Seed", f.cfg.Seed),
				{
					Key:   "variant",
					Label: "Variant",
					Type:  core.ParamTypeString,
					Value: string(f.cfg.Variant),
				},
				floatParam("seed_tree", "Initial tree cover", params.SeedTree),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				floatParam("tree_growth", "Tree growth chance", params.TreeGrowth),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam("lightning", "Lightning chance", params.Lightning),
				floatParam("fire_spread", "Spread per burning neighbor", params.FireSpread),
				floatParam("on_fire_to_burned", "Burnout chance", params.OnFireToBurned),
				floatParam("burned_relight", "Burned relight factor", params.BurnedRelight),
			},
		},
		{
			Name: "Decay",
			Params: []core.Parameter{
				floatParam("burned_to_none", "Burned decay chance", params.BurnedToNone),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'g', -1, 64),
	}
}
