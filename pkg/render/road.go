// Package render draws the simulation state with simple ebiten
// primitives. It only reads the core types; all mutation happens in
// pkg/sim.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/lanerunner/pkg/sim"
)

// DrawRoad renders the road surface, the scrolling dashed lane
// dividers, and the edge lines.
func DrawRoad(screen *ebiten.Image, road *sim.Road) {
	height := screen.Bounds().Dy()
	roadWidth := sim.LaneCount * sim.LaneWidth

	// Road surface
	surface := ebiten.NewImage(int(roadWidth), height)
	surface.Fill(color.RGBA{50, 50, 50, 255})
	screen.DrawImage(surface, &ebiten.DrawImageOptions{})

	// Dashed dividers between lanes, scrolled by the wrap offset
	dividerColor := color.RGBA{255, 255, 150, 255}
	dashWidth := 6.0
	dashHeight := 25.0

	for lane := 1; lane < sim.LaneCount; lane++ {
		x := float64(lane) * sim.LaneWidth
		for y := -road.ScrollOffset; y < float64(height)+sim.LineSpacing; y += sim.LineSpacing {
			dash := ebiten.NewImage(int(dashWidth), int(dashHeight))
			dash.Fill(dividerColor)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x-dashWidth/2, y)
			screen.DrawImage(dash, op)
		}
	}

	// Solid edge lines
	edgeColor := color.RGBA{255, 255, 100, 255}
	edgeWidth := 6.0

	leftEdge := ebiten.NewImage(int(edgeWidth), height)
	leftEdge.Fill(edgeColor)
	screen.DrawImage(leftEdge, &ebiten.DrawImageOptions{})

	rightEdge := ebiten.NewImage(int(edgeWidth), height)
	rightEdge.Fill(edgeColor)
	rightOp := &ebiten.DrawImageOptions{}
	rightOp.GeoM.Translate(roadWidth-edgeWidth, 0)
	screen.DrawImage(rightEdge, rightOp)
}
