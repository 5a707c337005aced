package forestfire

import (
	"math"

	"github.com/pkg/errors"
)

// GrowthWeighting scales TreeGrowth for an Empty cell from its neighbor tally.
type GrowthWeighting func(t Tally) float64

// SqrtWeighting favors growth next to existing trees: sqrt(trees) + 1.
func SqrtWeighting(t Tally) float64 {
	return math.Sqrt(float64(t[Tree])) + 1
}

// SignedWeighting lets burned neighbors cancel tree neighbors:
// min(trees-burned, 2) + 0.5. The result may be negative, which blocks growth.
func SignedWeighting(t Tally) float64 {
	w := t[Tree] - t[Burned]
	if w > 2 {
		w = 2
	}
	return float64(w) + 0.5
}

// Rules is the strategy a Forest steps with.
type Rules struct {
	Neighborhood Neighborhood
	Growth       GrowthWeighting

	// TwoPass splits a tick into a local pass and a fire-spread pass and
	// enables burned relight.
	TwoPass bool
}

var variants = map[Variant]Rules{
	VariantMooreWeighted: {
		Neighborhood: Moore,
		Growth:       SqrtWeighting,
		TwoPass:      true,
	},
	VariantVonNeumannSigned: {
		Neighborhood: VonNeumann,
		Growth:       SignedWeighting,
	},
}

// RulesFor resolves a variant name.
func RulesFor(v Variant) (Rules, error) {
	r, ok := variants[v]
	if !ok {
		return Rules{}, errors.Wrapf(ErrUnknownVariant, "[RulesFor] %q", v)
	}
	return r, nil
}

// Variants lists the supported variant names.
func Variants() []Variant {
	return []Variant{VariantMooreWeighted, VariantVonNeumannSigned}
}
