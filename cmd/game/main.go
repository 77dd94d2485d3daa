package main

import (
	"log"

	"github.com/feathergames/skyflock/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ebiten.SetWindowTitle("Skyflock")
	ebiten.SetWindowSize(1280, 800)
	g, err := game.New()
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
