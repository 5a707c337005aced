package forestfire

import "github.com/pkg/errors"

// Configuration errors. They are returned wrapped; match with errors.Is.
var (
	// ErrProbabilityRange indicates a transition probability outside [0, 1].
	ErrProbabilityRange = errors.New("forestfire: probability outside [0, 1]")

	// ErrUnknownVariant indicates a rule variant name with no registered rules.
	ErrUnknownVariant = errors.New("forestfire: unknown rule variant")

	// ErrUnknownPreset indicates a preset name that is not defined.
	ErrUnknownPreset = errors.New("forestfire: unknown preset")
)
