package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Fleet-Skirmish/internal/config"
	"github.com/Garsondee/Fleet-Skirmish/internal/engine"
	"github.com/Garsondee/Fleet-Skirmish/internal/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	seed := flag.Int64("seed", cfg.Seed, "RNG seed for terrain placement")
	mitigation := flag.String("mitigation", cfg.Mitigation.String(), "long-range rule: per-target or last-scanned")
	flag.Parse()

	cfg.Seed = *seed
	if cfg.Mitigation, err = engine.ParseMitigation(*mitigation); err != nil {
		log.Fatal(err)
	}

	w, h := game.ScreenSize()
	ebiten.SetWindowTitle("Fleet Skirmish")
	ebiten.SetWindowSize(w, h)
	g := game.New(cfg.Seed,
		engine.WithMitigation(cfg.Mitigation),
		engine.WithScatterAttempts(cfg.ScatterAttempts),
	)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
