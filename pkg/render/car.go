package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/lanerunner/pkg/sim"
)

// DrawVehicle renders a top-down view of the player vehicle at its
// current position. The body turns red while braking.
func DrawVehicle(screen *ebiten.Image, v *sim.Vehicle) {
	carWidth := v.Width
	carHeight := v.Height

	bodyColor := color.RGBA{50, 120, 220, 255} // Blue
	outlineColor := color.RGBA{30, 80, 150, 255}
	if v.Braking {
		bodyColor = color.RGBA{220, 50, 50, 255} // Red when braking
		outlineColor = color.RGBA{150, 20, 20, 255}
	}

	carImg := ebiten.NewImage(int(carWidth), int(carHeight))
	carImg.Fill(bodyColor)

	drawBorder(carImg, outlineColor, 3)

	// Windshield near the front (top)
	windshieldColor := color.RGBA{150, 200, 255, 255}
	windshieldWidth := carWidth * 0.6
	windshieldHeight := carHeight * 0.2
	windshield := ebiten.NewImage(int(windshieldWidth), int(windshieldHeight))
	windshield.Fill(windshieldColor)
	windshieldOp := &ebiten.DrawImageOptions{}
	windshieldOp.GeoM.Translate((carWidth-windshieldWidth)/2, carHeight*0.15)
	carImg.DrawImage(windshield, windshieldOp)

	// Wheels at the four corners
	wheelColor := color.RGBA{30, 30, 30, 255}
	wheelWidth := 6.0
	wheelHeight := 12.0
	for _, pos := range [][2]float64{
		{1, 6},
		{carWidth - wheelWidth - 1, 6},
		{1, carHeight - wheelHeight - 6},
		{carWidth - wheelWidth - 1, carHeight - wheelHeight - 6},
	} {
		wheel := ebiten.NewImage(int(wheelWidth), int(wheelHeight))
		wheel.Fill(wheelColor)
		wheelOp := &ebiten.DrawImageOptions{}
		wheelOp.GeoM.Translate(pos[0], pos[1])
		carImg.DrawImage(wheel, wheelOp)
	}

	// Brake lights at the back while braking
	if v.Braking {
		lightColor := color.RGBA{255, 80, 80, 255}
		for _, x := range []float64{carWidth * 0.2, carWidth * 0.65} {
			light := ebiten.NewImage(int(carWidth*0.15), 4)
			light.Fill(lightColor)
			lightOp := &ebiten.DrawImageOptions{}
			lightOp.GeoM.Translate(x, carHeight-5)
			carImg.DrawImage(light, lightOp)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(v.X-carWidth/2, v.Y-carHeight/2)
	screen.DrawImage(carImg, op)
}

// drawBorder paints a rectangular outline inside img.
func drawBorder(img *ebiten.Image, c color.Color, thickness int) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	horizontal := ebiten.NewImage(w, thickness)
	horizontal.Fill(c)
	topOp := &ebiten.DrawImageOptions{}
	img.DrawImage(horizontal, topOp)
	bottomOp := &ebiten.DrawImageOptions{}
	bottomOp.GeoM.Translate(0, float64(h-thickness))
	img.DrawImage(horizontal, bottomOp)

	vertical := ebiten.NewImage(thickness, h)
	vertical.Fill(c)
	leftOp := &ebiten.DrawImageOptions{}
	img.DrawImage(vertical, leftOp)
	rightOp := &ebiten.DrawImageOptions{}
	rightOp.GeoM.Translate(float64(w-thickness), 0)
	img.DrawImage(vertical, rightOp)
}
