package forestfire

import (
	"fmt"
	"strconv"

	"fireca/internal/core"
)

// Census counts cells per state at a given tick.
type Census struct {
	Tick   uint64
	Counts [numStates]int
}

// Total returns the number of counted cells.
func (c Census) Total() int {
	n := 0
	for _, v := range c.Counts {
		n += v
	}
	return n
}

// Of returns the count for s.
func (c Census) Of(s State) int {
	if !s.Valid() {
		return 0
	}
	return c.Counts[s]
}

// Fraction returns the share of cells in state s.
func (c Census) Fraction(s State) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c.Of(s)) / float64(total)
}

// Census counts the current generation.
func (f *Forest) Census() Census {
	c := Census{Tick: f.Tick()}
	for _, v := range f.grid.Cur() {
		if v < numStates {
			c.Counts[v]++
		}
	}
	return c
}

var stateLabels = [numStates]string{"Empty", "Tree", "Burning", "Burned"}

// Stats reports the tick counter and per-state populations.
func (f *Forest) Stats() []core.Parameter {
	c := f.Census()
	stats := []core.Parameter{{
		Key:   "tick",
		Label: "Tick",
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(c.Tick, 10),
	}}
	for _, s := range States() {
		stats = append(stats, core.Parameter{
			Key:   s.String(),
			Label: stateLabels[s],
			Type:  core.ParamTypeString,
			Value: fmt.Sprintf("%d (%.1f%%)", c.Of(s), 100*c.Fraction(s)),
		})
	}
	return stats
}
