package forestfire

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

// FireRunResult captures telemetry from a single ignition run used for tuning.
type FireRunResult struct {
	// MaxDistance records the farthest Euclidean distance (in cells) that
	// fire reached from the ignition point.
	MaxDistance float64
	// MaxDistanceStep stores the tick at which the farthest distance was first achieved.
	MaxDistanceStep int
	// PeakBurning tracks the maximum number of burning cells at any step.
	PeakBurning int
	// LastActiveStep records the final tick that still contained fire.
	LastActiveStep int
	// StepsSimulated reports how many ticks were executed.
	StepsSimulated int
	// FinalTreeCover is the tree fraction after the last tick.
	FinalTreeCover float64
}

// FireRun seeds a forest from cfg, ignites the centre cell and advances up to
// steps ticks, stopping early once the fire is out and lightning is disabled.
func FireRun(cfg Config, steps int) (FireRunResult, error) {
	f, err := New(cfg, nil)
	if err != nil {
		return FireRunResult{}, err
	}
	result := FireRunResult{}
	if steps <= 0 {
		return result, nil
	}

	cx, cy := cfg.Width/2, cfg.Height/2
	f.Set(cx, cy, Burning)
	centreX := float64(cx) + 0.5
	centreY := float64(cy) + 0.5

	for step := 1; step <= steps; step++ {
		f.Step()
		result.StepsSimulated = step

		burning := 0
		for idx, v := range f.Cells() {
			if State(v) != Burning {
				continue
			}
			burning++
			x := float64(idx%cfg.Width) + 0.5
			y := float64(idx/cfg.Width) + 0.5
			if dist := math.Hypot(x-centreX, y-centreY); dist > result.MaxDistance {
				result.MaxDistance = dist
				result.MaxDistanceStep = step
			}
		}
		if burning > result.PeakBurning {
			result.PeakBurning = burning
		}
		if burning > 0 {
			result.LastActiveStep = step
		} else if cfg.Params.Lightning == 0 {
			break
		}
	}
	result.FinalTreeCover = f.Census().Fraction(Tree)
	return result, nil
}

// SweepRecord pairs a parameter candidate with its run telemetry.
type SweepRecord struct {
	Params Params
	Result FireRunResult
}

// SpreadSweep evaluates every candidate against base on up to workers
// goroutines. Each candidate runs its own Forest; no grid is shared. Records
// are returned in candidate order. The first configuration error cancels the
// remaining runs.
func SpreadSweep(ctx context.Context, base Config, candidates []Params, steps, workers int) ([]SweepRecord, error) {
	if workers <= 0 {
		workers = 1
	}
	records := make([]SweepRecord, len(candidates))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, params := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := base
			cfg.Params = params
			res, err := FireRun(cfg, steps)
			if err != nil {
				return err
			}
			records[i] = SweepRecord{Params: params, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
