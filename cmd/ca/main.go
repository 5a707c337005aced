//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"fireca/internal/app"
	"fireca/internal/core"
	_ "fireca/internal/sims/forestfire"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %v)", cfg.Sim, core.SimNames())
	}

	sim, err := factory(cfg.FactoryArgs())
	if err != nil {
		log.Fatalf("configure %s: %v", cfg.Sim, err)
	}
	sim.Reset(cfg.Seed)

	session, err := app.NewSession(sim, cfg.TPS)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(session, cfg.Scale, cfg.Seed, cfg.HUD)
	ebiten.SetWindowTitle("fireca - " + sim.Name())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
