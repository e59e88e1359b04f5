package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/lanerunner/pkg/sim"
)

// DrawObstacles renders every active obstacle with a per-type look:
// red cars, gray trucks, orange striped barriers.
func DrawObstacles(screen *ebiten.Image, road *sim.Road) {
	for _, o := range road.Obstacles {
		if !o.Active {
			continue
		}
		drawObstacle(screen, o)
	}
}

func drawObstacle(screen *ebiten.Image, o *sim.Obstacle) {
	w, h := int(o.Width), int(o.Height)
	img := ebiten.NewImage(w, h)

	switch o.Type {
	case sim.ObstacleCar:
		img.Fill(color.RGBA{200, 0, 0, 255})
		drawBorder(img, color.RGBA{100, 0, 0, 255}, 3)

		// Windows
		window := ebiten.NewImage(w/2, h/3)
		window.Fill(color.RGBA{100, 150, 200, 255})
		windowOp := &ebiten.DrawImageOptions{}
		windowOp.GeoM.Translate(float64(w)/4, float64(h)/4)
		img.DrawImage(window, windowOp)

	case sim.ObstacleTruck:
		img.Fill(color.RGBA{80, 80, 80, 255})
		drawBorder(img, color.RGBA{50, 50, 50, 255}, 4)

		// Cabin at the front
		cabin := ebiten.NewImage(w*2/3, h/3)
		cabin.Fill(color.RGBA{120, 120, 120, 255})
		cabinOp := &ebiten.DrawImageOptions{}
		cabinOp.GeoM.Translate(float64(w)/6, 0)
		img.DrawImage(cabin, cabinOp)

		// Side stripe
		stripe := ebiten.NewImage(w-4, 4)
		stripe.Fill(color.RGBA{255, 100, 100, 255})
		stripeOp := &ebiten.DrawImageOptions{}
		stripeOp.GeoM.Translate(2, float64(h)/2)
		img.DrawImage(stripe, stripeOp)

	case sim.ObstacleBarrier:
		img.Fill(color.RGBA{255, 140, 0, 255})
		drawBorder(img, color.RGBA{200, 100, 0, 255}, 3)

		// Horizontal hazard stripes
		for y := 8; y < h; y += 16 {
			stripe := ebiten.NewImage(w-6, 5)
			stripe.Fill(color.RGBA{255, 255, 255, 255})
			stripeOp := &ebiten.DrawImageOptions{}
			stripeOp.GeoM.Translate(3, float64(y))
			img.DrawImage(stripe, stripeOp)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.X-o.Width/2, o.Y-o.Height/2)
	screen.DrawImage(img, op)
}
