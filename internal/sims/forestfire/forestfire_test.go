package forestfire

import (
	"math"
	"slices"
	"testing"

	"fireca/internal/core"
	"fireca/internal/render"
)

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

// scriptedSource replays fixed draws and fails the test when exhausted.
type scriptedSource struct {
	t     *testing.T
	draws []float64
	pos   int
}

func (s *scriptedSource) Float64() float64 {
	if s.pos >= len(s.draws) {
		s.t.Fatalf("random source exhausted after %d draws", len(s.draws))
	}
	v := s.draws[s.pos]
	s.pos++
	return v
}

func quietParams() Params {
	return Params{SeedTree: 0.9}
}

func newForest(t *testing.T, w, h int, variant Variant, params Params, src core.Source) *Forest {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Variant = variant
	cfg.Params = params
	f, err := New(cfg, src)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func TestNeighborCountsByPosition(t *testing.T) {
	cases := []struct {
		nb                     Neighborhood
		corner, edge, interior int
	}{
		{Moore, 3, 5, 8},
		{VonNeumann, 2, 3, 4},
	}
	for _, tc := range cases {
		for _, dims := range [][2]int{{3, 3}, {5, 4}, {7, 9}} {
			w, h := dims[0], dims[1]
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					onX := x == 0 || x == w-1
					onY := y == 0 || y == h-1
					want := tc.interior
					switch {
					case onX && onY:
						want = tc.corner
					case onX || onY:
						want = tc.edge
					}
					got := len(tc.nb.Neighbors(nil, w, h, x, y))
					if got != want {
						t.Fatalf("%s %dx%d cell (%d,%d): %d neighbors, expected %d", tc.nb.Name, w, h, x, y, got, want)
					}
				}
			}
		}
	}
}

func TestNeighborsStayInBounds(t *testing.T) {
	for _, nb := range []Neighborhood{Moore, VonNeumann} {
		for w := 1; w <= 6; w++ {
			for h := 1; h <= 6; h++ {
				for y := 0; y < h; y++ {
					for x := 0; x < w; x++ {
						self := y*w + x
						seen := map[int]bool{}
						for _, idx := range nb.Neighbors(nil, w, h, x, y) {
							if idx < 0 || idx >= w*h {
								t.Fatalf("%s %dx%d (%d,%d): index %d out of range", nb.Name, w, h, x, y, idx)
							}
							if idx == self || seen[idx] {
								t.Fatalf("%s %dx%d (%d,%d): bad neighbor %d", nb.Name, w, h, x, y, idx)
							}
							seen[idx] = true
						}
					}
				}
			}
		}
	}
}

func TestTallyIgnoresOutOfBounds(t *testing.T) {
	cells := []uint8{
		uint8(Tree), uint8(Burning),
		uint8(Burned), uint8(Empty),
	}
	got := Moore.Tally(cells, 2, 2, 0, 0)
	want := Tally{Empty: 1, Burning: 1, Burned: 1}
	if got != want {
		t.Fatalf("Moore tally = %v, expected %v", got, want)
	}
	got = VonNeumann.Tally(cells, 2, 2, 1, 1)
	want = Tally{Burning: 1, Burned: 1}
	if got != want {
		t.Fatalf("VonNeumann tally = %v, expected %v", got, want)
	}
}

func TestGrowthWeightings(t *testing.T) {
	if got := SqrtWeighting(Tally{Tree: 4}); got != 3 {
		t.Fatalf("SqrtWeighting(4 trees) = %v, expected 3", got)
	}
	if got := SqrtWeighting(Tally{}); got != 1 {
		t.Fatalf("SqrtWeighting(0 trees) = %v, expected 1", got)
	}
	if got := SignedWeighting(Tally{Tree: 4}); got != 2.5 {
		t.Fatalf("SignedWeighting caps at 2.5, got %v", got)
	}
	if got := SignedWeighting(Tally{Tree: 1, Burned: 3}); got != -1.5 {
		t.Fatalf("SignedWeighting(1 tree, 3 burned) = %v, expected -1.5", got)
	}
}

func TestZeroProbabilitiesConserveGrid(t *testing.T) {
	for _, variant := range Variants() {
		params := Params{SeedTree: 0.5}
		f := newForest(t, 16, 12, variant, params, nil)
		initial := slices.Clone(f.Cells())
		if !slices.Contains(initial, uint8(Tree)) || !slices.Contains(initial, uint8(Empty)) {
			t.Fatalf("%s: expected a mixed seeding", variant)
		}
		for i := 0; i < 25; i++ {
			f.Step()
		}
		if !slices.Equal(initial, f.Cells()) {
			t.Fatalf("%s: grid changed under zero probabilities", variant)
		}
		if f.Tick() != 25 {
			t.Fatalf("%s: tick = %d, expected 25", variant, f.Tick())
		}
	}
}

func TestCertainBurnoutRegardlessOfSource(t *testing.T) {
	for _, variant := range Variants() {
		for _, draw := range []float64{0, 0.5, 0.999999} {
			params := quietParams()
			params.OnFireToBurned = 1
			f := newForest(t, 5, 5, variant, params, constSource(draw))
			f.Fill(Empty)
			f.Set(2, 2, Burning)

			f.Step()

			if got := f.At(2, 2); got != Burned {
				t.Fatalf("%s draw=%v: centre is %v, expected burned", variant, draw, got)
			}
		}
	}
}

func TestVonNeumannScenario(t *testing.T) {
	params := Params{OnFireToBurned: 1}
	f := newForest(t, 3, 3, VariantVonNeumannSigned, params, nil)
	f.Fill(Empty)
	f.Set(1, 1, Burning)

	f.Step()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := Empty
			if x == 1 && y == 1 {
				want = Burned
			}
			if got := f.At(x, y); got != want {
				t.Fatalf("after step 1 cell (%d,%d) = %v, expected %v", x, y, got, want)
			}
		}
	}

	f.Step()
	if got := f.At(1, 1); got != Burned {
		t.Fatalf("after step 2 centre = %v, expected burned", got)
	}
	c := f.Census()
	if c.Of(Empty) != 8 || c.Of(Burned) != 1 || c.Tick != 2 {
		t.Fatalf("unexpected census after step 2: %+v", c)
	}
}

func TestMooreDrawOrder(t *testing.T) {
	params := Params{
		TreeGrowth:     0.5,
		FireSpread:     0.4,
		OnFireToBurned: 0.5,
		BurnedRelight:  1,
		BurnedToNone:   0.5,
		SeedTree:       0.9,
	}

	t.Run("burnout seen by spread pass", func(t *testing.T) {
		f := newForest(t, 3, 1, VariantMooreWeighted, params, constSource(0))
		f.Set(0, 0, Empty)
		f.Set(1, 0, Burning)
		f.Set(2, 0, Tree)

		// empty growth, burnout, burned relight, burned decay, tree ignition
		src := &scriptedSource{t: t, draws: []float64{0.1, 0.2, 0.0, 0.9, 0.0}}
		f.src = src
		f.Step()

		want := []uint8{uint8(Tree), uint8(Burned), uint8(Tree)}
		if !slices.Equal(f.Cells(), want) {
			t.Fatalf("cells = %v, expected %v", f.Cells(), want)
		}
		if src.pos != len(src.draws) {
			t.Fatalf("consumed %d draws, expected %d", src.pos, len(src.draws))
		}
	})

	t.Run("burning neighbor ignites tree", func(t *testing.T) {
		f := newForest(t, 3, 1, VariantMooreWeighted, params, constSource(0))
		f.Set(0, 0, Empty)
		f.Set(1, 0, Burning)
		f.Set(2, 0, Tree)

		// empty growth, burnout, tree ignition
		src := &scriptedSource{t: t, draws: []float64{0.6, 0.7, 0.3}}
		f.src = src
		f.Step()

		want := []uint8{uint8(Empty), uint8(Burning), uint8(Burning)}
		if !slices.Equal(f.Cells(), want) {
			t.Fatalf("cells = %v, expected %v", f.Cells(), want)
		}
		if src.pos != len(src.draws) {
			t.Fatalf("consumed %d draws, expected %d", src.pos, len(src.draws))
		}
	})
}

func TestVonNeumannDrawOrder(t *testing.T) {
	params := Params{
		TreeGrowth:     0.4,
		Lightning:      0.1,
		FireSpread:     0.3,
		OnFireToBurned: 0.5,
		BurnedToNone:   0.5,
		SeedTree:       0.9,
	}
	f := newForest(t, 2, 2, VariantVonNeumannSigned, params, constSource(0))
	f.Set(0, 0, Empty)
	f.Set(1, 0, Tree)
	f.Set(0, 1, Burning)
	f.Set(1, 1, Burned)

	src := &scriptedSource{t: t, draws: []float64{0.5, 0.05, 0.6, 0.4}}
	f.src = src
	f.Step()

	want := []uint8{uint8(Tree), uint8(Burning), uint8(Burning), uint8(Empty)}
	if !slices.Equal(f.Cells(), want) {
		t.Fatalf("cells = %v, expected %v", f.Cells(), want)
	}
	if src.pos != 4 {
		t.Fatalf("consumed %d draws, expected one per cell", src.pos)
	}
}

func TestRelightIsNotClamped(t *testing.T) {
	params := quietParams()
	params.FireSpread = 1
	params.BurnedRelight = 1
	f := newForest(t, 3, 3, VariantMooreWeighted, params, constSource(0.999999))
	f.Fill(Burning)
	f.Set(1, 1, Burned)

	f.Step()

	if got := f.At(1, 1); got != Burning {
		t.Fatalf("centre = %v, expected relight with eight burning neighbors", got)
	}
}

func TestStepIsDeterministic(t *testing.T) {
	for _, name := range ListPresets() {
		cfg, err := GetPreset(name)
		if err != nil {
			t.Fatalf("GetPreset(%q): %v", name, err)
		}
		cfg.Width, cfg.Height = 40, 30
		a, err := New(cfg, nil)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		b, _ := New(cfg, nil)
		a.Set(20, 15, Burning)
		b.Set(20, 15, Burning)
		for i := 0; i < 40; i++ {
			a.Step()
			b.Step()
			if !slices.Equal(a.Cells(), b.Cells()) {
				t.Fatalf("%s: runs diverged at step %d", name, i+1)
			}
		}
	}
}

func TestStateClosure(t *testing.T) {
	cfg, _ := GetPreset("inferno")
	cfg.Width, cfg.Height = 32, 32
	cfg.Params.Lightning = 0.01
	f, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 200; i++ {
		f.Step()
		for idx, v := range f.Cells() {
			if !State(v).Valid() {
				t.Fatalf("step %d cell %d holds %d", i+1, idx, v)
			}
		}
	}
	if c := f.Census(); c.Total() != 32*32 {
		t.Fatalf("census counted %d cells, expected %d", c.Total(), 32*32)
	}
}

func TestResetRepeatsSeeding(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 24, 16
	f, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f.Reset(7)
	first := slices.Clone(f.Cells())
	f.Step()
	f.Reset(7)
	if !slices.Equal(first, f.Cells()) {
		t.Fatal("Reset with the same seed must repeat the seeding")
	}
	if f.Tick() != 0 {
		t.Fatalf("Reset must restart the tick counter, got %d", f.Tick())
	}
	f.Reset(8)
	if slices.Equal(first, f.Cells()) {
		t.Fatal("different seeds should produce different seedings")
	}

	f.Reset(0)
	fromConfig := slices.Clone(f.Cells())
	f.Reset(cfg.Seed)
	if !slices.Equal(fromConfig, f.Cells()) {
		t.Fatal("Reset(0) must fall back to the configured seed")
	}
}

func TestSeedingFollowsThreshold(t *testing.T) {
	params := quietParams()
	params.SeedTree = 0.9
	all := newForest(t, 4, 4, VariantMooreWeighted, params, constSource(0.89))
	if all.Census().Of(Tree) != 16 {
		t.Fatal("draws below the threshold must seed trees")
	}
	none := newForest(t, 4, 4, VariantMooreWeighted, params, constSource(0.9))
	if none.Census().Of(Empty) != 16 {
		t.Fatal("draws at or above the threshold must leave cells empty")
	}
}

func TestRenderMatchesColorTable(t *testing.T) {
	f := newForest(t, 2, 2, VariantMooreWeighted, quietParams(), constSource(0))
	f.Set(0, 0, Empty)
	f.Set(1, 0, Tree)
	f.Set(0, 1, Burning)
	f.Set(1, 1, Burned)

	p := render.NewProjector(2, 2)
	p.Project(f.Cells(), f.Palette())

	want := [][3]byte{{121, 104, 60}, {34, 102, 52}, {228, 111, 40}, {46, 43, 42}}
	px := p.Pixels()
	for i, rgb := range want {
		got := px[i*4 : i*4+4]
		if got[0] != rgb[0] || got[1] != rgb[1] || got[2] != rgb[2] || got[3] != 255 {
			t.Fatalf("pixel %d = %v, expected %v with full opacity", i, got, rgb)
		}
	}
	if ColorOf(Burning) != f.Palette()[Burning] {
		t.Fatal("ColorOf disagrees with the palette")
	}
}

func TestFireRunTracksSpread(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 9, 9
	cfg.Variant = VariantVonNeumannSigned
	cfg.Params = Params{FireSpread: 1, OnFireToBurned: 1, SeedTree: 1}

	res, err := FireRun(cfg, 50)
	if err != nil {
		t.Fatalf("FireRun: %v", err)
	}
	if math.Abs(res.MaxDistance-math.Hypot(4, 4)) > 1e-9 || res.MaxDistanceStep != 8 {
		t.Fatalf("max distance %.3f at step %d, expected corner at step 8", res.MaxDistance, res.MaxDistanceStep)
	}
	if res.PeakBurning != 16 || res.LastActiveStep != 8 || res.StepsSimulated != 9 {
		t.Fatalf("unexpected telemetry %+v", res)
	}
	if res.FinalTreeCover != 0 {
		t.Fatalf("expected the whole forest to burn, tree cover %v", res.FinalTreeCover)
	}
}

func TestStatsReportsCensus(t *testing.T) {
	f := newForest(t, 2, 2, VariantMooreWeighted, quietParams(), constSource(0))
	f.Set(1, 1, Burning)
	f.Step()
	stats := f.Stats()
	got := map[string]string{}
	for _, p := range stats {
		got[p.Key] = p.Value
	}
	if got["tick"] != "1" || got["tree"] != "3 (75.0%)" || got["burning"] != "1 (25.0%)" || got["empty"] != "0 (0.0%)" {
		t.Fatalf("unexpected stats %v", got)
	}
}
