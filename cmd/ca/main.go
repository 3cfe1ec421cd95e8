//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strings"

	"meta-ca/internal/app"
	"meta-ca/pkg/core"
	_ "meta-ca/pkg/sims/briansbrain"
	_ "meta-ca/pkg/sims/elementary"
	_ "meta-ca/pkg/sims/flux"
	_ "meta-ca/pkg/sims/life"
	_ "meta-ca/pkg/sims/light"
	_ "meta-ca/pkg/sims/meta"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	if err := cfg.Load(flag.CommandLine); err != nil {
		log.Error("load run file", "err", err)
		os.Exit(1)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Error("unknown sim", "sim", cfg.Sim, "available", strings.Join(core.Names(), ","))
		os.Exit(1)
	}

	sim := factory(cfg.Params)
	sim.Reset(cfg.Seed)
	size := sim.Size()
	log.Info("starting", "sim", sim.Name(), "w", size.W, "h", size.H, "seed", cfg.Seed, "tps", cfg.TPS)

	game := app.New(sim, cfg.Scale, cfg.Seed, log)

	ebiten.SetWindowTitle("meta-ca: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run", "err", err)
		os.Exit(1)
	}
}
