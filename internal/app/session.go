package app

import (
	"time"

	"fireca/internal/core"
	"fireca/internal/render"

	"github.com/pkg/errors"
)

// Session drives a simulation and its pixel projection: Render once after
// construction, then one Step followed by one Render per due tick.
type Session struct {
	sim       core.Sim
	palette   core.PaletteProvider
	projector *render.Projector
	clock     *core.FixedStep
	frames    uint64
}

// NewSession wraps sim, which must expose a palette, and projects its
// initial state.
func NewSession(sim core.Sim, tps int) (*Session, error) {
	palette, ok := sim.(core.PaletteProvider)
	if !ok {
		return nil, errors.Errorf("app: sim %q has no palette", sim.Name())
	}
	size := sim.Size()
	s := &Session{
		sim:       sim,
		palette:   palette,
		projector: render.NewProjector(size.W, size.H),
		clock:     core.NewFixedStep(tps),
	}
	s.Render()
	return s, nil
}

// Sim returns the driven simulation.
func (s *Session) Sim() core.Sim { return s.sim }

// Step advances the simulation by one tick and re-projects it.
func (s *Session) Step() {
	s.sim.Step()
	s.Render()
}

// Render projects the current cells into the pixel buffer.
func (s *Session) Render() {
	s.projector.Project(s.sim.Cells(), s.palette.Palette())
	s.frames++
}

// Advance feeds elapsed time to the fixed-step clock and steps when a tick
// is due. It reports whether a step happened.
func (s *Session) Advance(delta time.Duration) bool {
	if !s.clock.Advance(delta) {
		return false
	}
	s.Step()
	return true
}

// Update is the wall-clock variant of Advance for frame-driven loops.
func (s *Session) Update() bool {
	if !s.clock.ShouldStep() {
		return false
	}
	s.Step()
	return true
}

// Reset reseeds the simulation and re-projects it.
func (s *Session) Reset(seed int64) {
	s.sim.Reset(seed)
	s.Render()
}

// Pixels returns the latest RGBA projection; see render.Projector.Pixels.
func (s *Session) Pixels() []byte { return s.projector.Pixels() }

// Projector exposes the projector for raster consumers.
func (s *Session) Projector() *render.Projector { return s.projector }

// Interval returns the logical tick duration.
func (s *Session) Interval() time.Duration { return s.clock.Interval() }

// Frames counts Render calls, including the initial projection.
func (s *Session) Frames() uint64 { return s.frames }
