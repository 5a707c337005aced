package forestfire

import (
	"fmt"

	"fireca/internal/core"
)

// Forest is the forest-fire automaton: a double-buffered grid stepped by a
// rule variant, with every stochastic decision drawn from an injected source.
type Forest struct {
	cfg   Config
	rules Rules
	grid  *core.Grid
	src   core.Source
}

// New validates cfg and returns a Forest seeded from src. A nil src is
// replaced by a core.RNG seeded with cfg.Seed.
func New(cfg Config, src core.Source) (*Forest, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rules, err := RulesFor(cfg.Variant)
	if err != nil {
		return nil, err
	}
	grid, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = core.NewRNG(cfg.Seed)
	}
	f := &Forest{cfg: cfg, rules: rules, grid: grid, src: src}
	f.grid.Seed(f.src, cfg.Params.SeedTree, uint8(Tree))
	return f, nil
}

// Name returns the simulation identifier.
func (f *Forest) Name() string { return "forestfire" }

// Size reports the grid dimensions.
func (f *Forest) Size() core.Size { return core.Size{W: f.grid.W, H: f.grid.H} }

// Cells exposes the current generation.
func (f *Forest) Cells() []uint8 { return f.grid.Cur() }

// Config returns the configuration the forest was built with.
func (f *Forest) Config() Config { return f.cfg }

// Rules returns the resolved rule strategy.
func (f *Forest) Rules() Rules { return f.rules }

// Tick returns the number of completed steps since the last seeding.
func (f *Forest) Tick() uint64 { return f.grid.Tick() }

// At returns the state of cell (x, y).
func (f *Forest) At(x, y int) State {
	if !f.grid.InBounds(x, y) {
		panic(fmt.Sprintf("forestfire: cell (%d,%d) outside %dx%d grid", x, y, f.grid.W, f.grid.H))
	}
	return State(f.grid.Cur()[f.grid.Index(x, y)])
}

// Set overwrites the state of cell (x, y) in the current generation.
func (f *Forest) Set(x, y int, s State) {
	if !f.grid.InBounds(x, y) || !s.Valid() {
		panic(fmt.Sprintf("forestfire: cannot set (%d,%d) to %v on %dx%d grid", x, y, s, f.grid.W, f.grid.H))
	}
	f.grid.Cur()[f.grid.Index(x, y)] = uint8(s)
}

// Fill sets every cell of the current generation to s.
func (f *Forest) Fill(s State) {
	cells := f.grid.Cur()
	for i := range cells {
		cells[i] = uint8(s)
	}
}

// Reset reseeds the grid. A zero seed falls back to the configured one. When
// the source can be rewound it is reseeded first so resets are repeatable;
// otherwise the grid is reseeded from the source's current stream.
func (f *Forest) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = f.cfg.Seed
	}
	if s, ok := f.src.(core.Seeder); ok {
		s.Seed(effective)
	}
	f.grid.Seed(f.src, f.cfg.Params.SeedTree, uint8(Tree))
}

// Step advances the forest by one tick and swaps the buffers.
//
// Random draws are taken in row-major order. For VariantVonNeumannSigned each
// cell consumes exactly one draw in a single pass. For VariantMooreWeighted
// the local pass draws once per Empty and once per Burning cell, then the
// spread pass draws once per Tree cell and once or twice per Burned cell
// (relight, then decay if not relit).
func (f *Forest) Step() {
	if f.rules.TwoPass {
		f.stepLocal()
		f.stepSpread()
	} else {
		f.stepSingle()
	}
	f.grid.Swap()
}

// stepLocal evaluates the transitions that depend only on a cell's own state
// and, for Empty cells, on tree neighbors.
//
// A Burning cell that burns out is written to the current buffer as well as
// the next one. This is the only in-place write during a step: the spread
// pass then sees it as Burned, so it no longer feeds fire to its neighbors and
// is itself eligible for relight or decay within the same tick.
func (f *Forest) stepLocal() {
	w, h := f.grid.W, f.grid.H
	cur, nxt := f.grid.Cur(), f.grid.Next()
	p := f.cfg.Params
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			switch State(cur[i]) {
			case Empty:
				t := f.rules.Neighborhood.Tally(cur, w, h, x, y)
				nxt[i] = uint8(Empty)
				if f.src.Float64() < f.rules.Growth(t)*p.TreeGrowth {
					nxt[i] = uint8(Tree)
				}
			case Tree:
				nxt[i] = uint8(Tree)
			case Burning:
				nxt[i] = uint8(Burning)
				if f.src.Float64() < p.OnFireToBurned {
					cur[i] = uint8(Burned)
					nxt[i] = uint8(Burned)
				}
			case Burned:
				nxt[i] = uint8(Burned)
			default:
				panic(fmt.Sprintf("forestfire: cell %d holds invalid state %d", i, cur[i]))
			}
		}
	}
}

// stepSpread evaluates ignition and burned-cell transitions against the
// current buffer as left by stepLocal.
//
// The relight chance is burning*FireSpread*BurnedRelight and is not clamped;
// values above one simply make relight certain.
func (f *Forest) stepSpread() {
	w, h := f.grid.W, f.grid.H
	cur, nxt := f.grid.Cur(), f.grid.Next()
	p := f.cfg.Params
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			switch State(cur[i]) {
			case Tree:
				t := f.rules.Neighborhood.Tally(cur, w, h, x, y)
				nxt[i] = uint8(Tree)
				if f.src.Float64() < p.Lightning+float64(t[Burning])*p.FireSpread {
					nxt[i] = uint8(Burning)
				}
			case Burned:
				t := f.rules.Neighborhood.Tally(cur, w, h, x, y)
				switch {
				case f.src.Float64() < float64(t[Burning])*p.FireSpread*p.BurnedRelight:
					nxt[i] = uint8(Burning)
				case f.src.Float64() < p.BurnedToNone:
					nxt[i] = uint8(Empty)
				default:
					nxt[i] = uint8(Burned)
				}
			}
		}
	}
}

// stepSingle reads only the current buffer and writes only the next one.
func (f *Forest) stepSingle() {
	w, h := f.grid.W, f.grid.H
	cur, nxt := f.grid.Cur(), f.grid.Next()
	p := f.cfg.Params
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			s := State(cur[i])
			switch s {
			case Empty:
				t := f.rules.Neighborhood.Tally(cur, w, h, x, y)
				if f.src.Float64() < f.rules.Growth(t)*p.TreeGrowth {
					s = Tree
				}
			case Tree:
				t := f.rules.Neighborhood.Tally(cur, w, h, x, y)
				if f.src.Float64() < p.Lightning+float64(t[Burning])*p.FireSpread {
					s = Burning
				}
			case Burning:
				if f.src.Float64() < p.OnFireToBurned {
					s = Burned
				}
			case Burned:
				if f.src.Float64() < p.BurnedToNone {
					s = Empty
				}
			default:
				panic(fmt.Sprintf("forestfire: cell %d holds invalid state %d", i, cur[i]))
			}
			nxt[i] = uint8(s)
		}
	}
}

func init() {
	core.Register("forestfire", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		f, err := New(c, nil)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
}
