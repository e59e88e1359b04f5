package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/lanerunner/pkg/game"
)

func main() {
	// The keyboard stands in for the classifier; any predictor.Source
	// can be plugged in here with its own sampling interval.
	g := game.NewGame(game.KeyboardSource{}, game.DefaultPredictionInterval)

	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetWindowTitle("Lane Runner")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
