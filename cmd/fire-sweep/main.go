package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"fireca/internal/sims/forestfire"
)

func main() {
	steps := flag.Int("steps", 200, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	size := flag.Int("size", 96, "grid width and height")
	variant := flag.String("variant", string(forestfire.VariantMooreWeighted), "rule variant")
	top := flag.Int("top", 5, "results to print")
	flag.Parse()

	base := forestfire.DefaultConfig()
	base.Width, base.Height = *size, *size
	base.Variant = forestfire.Variant(*variant)

	spreadOptions := []float64{0.1, 0.2, 0.3, 0.4, 0.6}
	burnoutOptions := []float64{0.2, 0.4, 0.6, 0.8}
	relightOptions := []float64{0, 0.2, 0.5}
	coverOptions := []float64{0.6, 0.75, 0.9}

	var candidates []forestfire.Params
	for _, spread := range spreadOptions {
		for _, burnout := range burnoutOptions {
			for _, relight := range relightOptions {
				for _, cover := range coverOptions {
					p := base.Params
					p.Lightning = 0
					p.TreeGrowth = 0
					p.FireSpread = spread
					p.OnFireToBurned = burnout
					p.BurnedRelight = relight
					p.SeedTree = cover
					candidates = append(candidates, p)
				}
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps, %s)\n", len(candidates), *workers, *steps, base.Variant)

	start := time.Now()
	records, err := forestfire.SpreadSweep(context.Background(), base, candidates, *steps, *workers)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Result.MaxDistance > records[j].Result.MaxDistance
	})

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(records) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, describe(records[i]))
	}
	if len(records) > 0 {
		fmt.Printf("\nBest overall: %s\n", describe(records[0]))
	}
}

func describe(r forestfire.SweepRecord) string {
	res, p := r.Result, r.Params
	return fmt.Sprintf("dist=%.2f step=%d peak=%d active=%d cover=%.2f spread=%.2f burnout=%.2f relight=%.2f seed_tree=%.2f",
		res.MaxDistance, res.MaxDistanceStep, res.PeakBurning, res.LastActiveStep, res.FinalTreeCover,
		p.FireSpread, p.OnFireToBurned, p.BurnedRelight, p.SeedTree)
}
