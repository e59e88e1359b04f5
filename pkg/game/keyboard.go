package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/lanerunner/pkg/predictor"
)

// KeyboardSource maps arrow keys onto the command vocabulary so the
// game is playable without a classifier. Left/right arrows swipe, the
// down arrow or space brakes, anything else is CENTER.
type KeyboardSource struct{}

// Predict reads the currently pressed keys as a full-confidence command.
func (KeyboardSource) Predict() (predictor.Prediction, error) {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		return predictor.Prediction{
			Action:        "SWIPE_LEFT",
			Confidence:    1,
			Probabilities: []float64{1, 0, 0},
		}, nil
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		return predictor.Prediction{
			Action:        "SWIPE_RIGHT",
			Confidence:    1,
			Probabilities: []float64{0, 0, 1},
		}, nil
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown), ebiten.IsKeyPressed(ebiten.KeySpace):
		return predictor.Prediction{
			Action:        "BRAKE",
			Confidence:    1,
			Probabilities: []float64{0, 0, 0},
		}, nil
	default:
		return predictor.Prediction{
			Action:        "CENTER",
			Confidence:    1,
			Probabilities: []float64{0, 1, 0},
		}, nil
	}
}
