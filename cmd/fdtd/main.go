//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"yee2d/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("yee2d: 2-D FDTD electromagnetic simulation")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
