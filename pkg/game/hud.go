package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/golangdaddy/lanerunner/pkg/sim"
)

var hudFace = text.NewGoXFace(bitmapfont.Face)

// drawText draws a string at (x, y) with the given scale and color.
func drawText(screen *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, hudFace, op)
}

// drawTextCentered draws a string horizontally centered on centerX.
func drawTextCentered(screen *ebiten.Image, s string, centerX, y, scale float64, c color.Color) {
	width := text.Advance(s, hudFace) * scale
	drawText(screen, s, centerX-width/2, y, scale, c)
}

// drawHUD renders the score panel and the prediction info panel.
func (g *Game) drawHUD(screen *ebiten.Image) {
	// Score panel background
	panel := ebiten.NewImage(230, 150)
	panel.Fill(color.RGBA{0, 0, 0, 100})
	screen.DrawImage(panel, &ebiten.DrawImageOptions{})

	yellow := color.RGBA{255, 255, 0, 255}
	white := color.RGBA{255, 255, 255, 255}

	y := 15.0
	drawText(screen, fmt.Sprintf("Score: %d", g.road.Score()), 15, y, 2.5, yellow)
	y += 35

	// Multiplier shown only once something raises it above 1
	if g.road.Multiplier() > 1.0 {
		drawText(screen, fmt.Sprintf("Multiplier: %.1fx", g.road.Multiplier()), 15, y, 2, color.RGBA{0, 255, 0, 255})
		y += 28
	}

	drawText(screen, fmt.Sprintf("Speed: %d", int(g.vehicle.Velocity)), 15, y, 1.5, white)
	y += 22

	laneNames := []string{"LEFT", "CENTER", "RIGHT"}
	drawText(screen, fmt.Sprintf("Lane: %s", laneNames[g.vehicle.Lane]), 15, y, 1.5, white)
	y += 22

	g.drawLaneIndicator(screen, 15, y)
	y += 25

	if g.highScore > 0 {
		drawText(screen, fmt.Sprintf("High Score: %d", g.highScore), 15, y, 1.5, yellow)
	}

	g.drawPredictionPanel(screen)
}

// drawLaneIndicator draws three boxes with the occupied lane filled.
func (g *Game) drawLaneIndicator(screen *ebiten.Image, x, y float64) {
	for i := 0; i < sim.LaneCount; i++ {
		box := ebiten.NewImage(25, 15)
		if i == g.vehicle.Lane {
			box.Fill(color.RGBA{0, 255, 0, 255})
		} else {
			box.Fill(color.RGBA{100, 100, 100, 255})
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x+float64(i)*30, y)
		screen.DrawImage(box, op)
	}
}

// drawPredictionPanel renders the command source status: held action,
// confidence, sampling rate, and per-class probabilities.
func (g *Game) drawPredictionPanel(screen *ebiten.Image) {
	panelY := float64(ScreenHeight) - 150
	panel := ebiten.NewImage(250, 140)
	panel.Fill(color.RGBA{0, 0, 0, 140})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(10, panelY)
	screen.DrawImage(panel, op)

	cyan := color.RGBA{0, 255, 255, 255}
	gray := color.RGBA{220, 220, 220, 255}

	rateHz := 60.0
	if g.sampler.Interval() > 0 {
		rateHz = 1.0 / g.sampler.Interval()
	}

	lines := []string{
		fmt.Sprintf("Action: %s (%.0f%%)", g.current.Action, g.current.Confidence*100),
		fmt.Sprintf("Rate: %.1f Hz", rateHz),
	}
	classNames := []string{"Left", "Center", "Right"}
	for i, p := range g.current.Probabilities {
		if i >= len(classNames) {
			break
		}
		lines = append(lines, fmt.Sprintf("%s: %.0f%%", classNames[i], p*100))
	}

	drawText(screen, "COMMAND SOURCE", 20, panelY+10, 1.5, cyan)
	for i, line := range lines {
		drawText(screen, line, 20, panelY+35+float64(i)*20, 1.2, gray)
	}
}

// drawGameOver renders the terminal-state overlay on top of the frozen
// world.
func (g *Game) drawGameOver(screen *ebiten.Image) {
	overlay := ebiten.NewImage(ScreenWidth, ScreenHeight)
	overlay.Fill(color.RGBA{0, 0, 0, 150})
	screen.DrawImage(overlay, &ebiten.DrawImageOptions{})

	centerX := float64(ScreenWidth) / 2
	centerY := float64(ScreenHeight) / 2

	drawTextCentered(screen, "GAME OVER", centerX, centerY-130, 5, color.RGBA{255, 0, 0, 255})
	drawTextCentered(screen, fmt.Sprintf("Final Score: %d", g.road.Score()), centerX, centerY-50, 3, color.RGBA{255, 255, 0, 255})

	if g.road.Score() >= g.highScore && g.road.Score() > 0 {
		drawTextCentered(screen, "NEW HIGH SCORE!", centerX, centerY-10, 2, color.RGBA{0, 255, 0, 255})
	} else if g.highScore > 0 {
		drawTextCentered(screen, fmt.Sprintf("High Score: %d", g.highScore), centerX, centerY-10, 2, color.RGBA{200, 200, 200, 255})
	}

	drawTextCentered(screen, fmt.Sprintf("Distance: %dm", g.road.Distance()), centerX, centerY+30, 2, color.RGBA{255, 255, 255, 255})
	drawTextCentered(screen, "Press R to Restart", centerX, centerY+80, 2, color.RGBA{150, 200, 255, 255})
}
