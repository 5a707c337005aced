package main

import (
	"context"
	"fmt"
	"image/png"
	"log"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"fireca/internal/app"
	"fireca/internal/render"
	"fireca/internal/sims/forestfire"
	"fireca/internal/tui"

	"github.com/guptarohit/asciigraph"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	preset     string
	configFile string
	overrides  map[string]string
	seed       int64
	steps      int
	tps        int
	watchTPS   int
	every      int
	plot       bool
	pngOut     string
	showPreset string
	exportName string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "fireca",
		Short:        "probabilistic forest-fire cellular automaton",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named preset (see `fireca presets`)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml), wins over --preset")
	rootCmd.PersistentFlags().StringToStringVar(&overrides, "set", nil, "parameter overrides, e.g. --set fire_spread=0.3,w=128")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 keeps the configured one)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and log the census",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&steps, "steps", 500, "ticks to simulate")
	runCmd.Flags().IntVar(&tps, "tps", 0, "ticks per second (0 runs unthrottled)")
	runCmd.Flags().IntVar(&every, "every", 50, "log the census every n ticks (0 disables)")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot tree and burning populations when done")
	runCmd.Flags().StringVar(&pngOut, "png", "", "write the final frame to a PNG file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}
	presetsCmd.Flags().StringVar(&showPreset, "show", "", "print the parameters of a preset")
	presetsCmd.Flags().StringVar(&exportName, "export", "", "print a preset as yaml")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "animate the forest in the terminal",
		RunE:  runWatch,
	}
	watchCmd.Flags().IntVar(&watchTPS, "tps", 10, "ticks per second")

	rootCmd.AddCommand(runCmd, presetsCmd, watchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildForest() (*forestfire.Forest, error) {
	args := map[string]string{}
	if preset != "" {
		args["preset"] = preset
	}
	if configFile != "" {
		args["config"] = configFile
	}
	for k, v := range overrides {
		args[k] = v
	}
	if seed != 0 {
		args["seed"] = fmt.Sprint(seed)
	}
	cfg, err := forestfire.FromMap(args)
	if err != nil {
		return nil, err
	}
	return forestfire.New(cfg, nil)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	forest, err := buildForest()
	if err != nil {
		return err
	}
	cfg := forest.Config()
	log.Printf("running %s %dx%d seed=%d for %d ticks", cfg.Variant, cfg.Width, cfg.Height, cfg.Seed, steps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var throttle <-chan time.Time
	if tps > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(tps))
		defer ticker.Stop()
		throttle = ticker.C
	}

	trees := make([]float64, 0, steps)
	burning := make([]float64, 0, steps)
	start := time.Now()
loop:
	for i := 0; i < steps; i++ {
		if throttle != nil {
			select {
			case <-ctx.Done():
				break loop
			case <-throttle:
			}
		} else if ctx.Err() != nil {
			break
		}
		forest.Step()
		c := forest.Census()
		trees = append(trees, float64(c.Of(forestfire.Tree)))
		burning = append(burning, float64(c.Of(forestfire.Burning)))
		if every > 0 && c.Tick%uint64(every) == 0 {
			logCensus(c)
		}
	}
	final := forest.Census()
	log.Printf("done after %d ticks in %s", final.Tick, time.Since(start).Round(time.Millisecond))
	logCensus(final)

	if plot && len(trees) > 0 {
		fmt.Println(asciigraph.PlotMany([][]float64{trees, burning},
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
			asciigraph.Caption("trees (green) and burning (red) per tick"),
		))
	}
	if pngOut != "" {
		return writeFrame(forest, pngOut)
	}
	return nil
}

func logCensus(c forestfire.Census) {
	log.Printf("tick %6d  empty %6d  tree %6d (%.1f%%)  burning %5d  burned %6d",
		c.Tick, c.Of(forestfire.Empty), c.Of(forestfire.Tree), 100*c.Fraction(forestfire.Tree),
		c.Of(forestfire.Burning), c.Of(forestfire.Burned))
}

func writeFrame(forest *forestfire.Forest, path string) error {
	size := forest.Size()
	p := render.NewProjector(size.W, size.H)
	p.Project(forest.Cells(), forest.Palette())
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[writeFrame] create %s", path)
	}
	defer f.Close()
	if err := png.Encode(f, p.Image()); err != nil {
		return errors.Wrapf(err, "[writeFrame] encode %s", path)
	}
	log.Printf("wrote %s", path)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	switch {
	case exportName != "":
		cfg, err := forestfire.GetPreset(exportName)
		if err != nil {
			return err
		}
		data, err := forestfire.MarshalConfig(cfg)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	case showPreset != "":
		cfg, err := forestfire.GetPreset(showPreset)
		if err != nil {
			return err
		}
		forest, err := forestfire.New(cfg, nil)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, g := range forest.Parameters().Groups {
			fmt.Fprintf(w, "%s\n", g.Name)
			for _, p := range g.Params {
				fmt.Fprintf(w, "  %s\t%s\t%s\n", p.Key, p.Value, p.Label)
			}
		}
		return w.Flush()
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVARIANT\tSIZE\tSPREAD\tBURNOUT\tRELIGHT")
	for _, name := range forestfire.ListPresets() {
		cfg := forestfire.Presets[name]
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%g\t%g\t%g\n", name, cfg.Variant, cfg.Width, cfg.Height,
			cfg.Params.FireSpread, cfg.Params.OnFireToBurned, cfg.Params.BurnedRelight)
	}
	return w.Flush()
}

func runWatch(cmd *cobra.Command, args []string) error {
	forest, err := buildForest()
	if err != nil {
		return err
	}
	session, err := app.NewSession(forest, watchTPS)
	if err != nil {
		return err
	}
	return tui.Run(session, forest.Config().Seed)
}
