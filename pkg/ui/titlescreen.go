package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	// Any key or mouse click to start
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()

	// Draw title with pulsing effect
	titleText := "LANE RUNNER"
	face := text.NewGoXFace(bitmapfont.Face)
	textWidth := text.Advance(titleText, face)

	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Pulsing scale effect (1.0 to 1.1)
	pulseScale := 1.0 + 0.1*math.Sin(elapsed*2.0)
	titleScale := 6.0 * pulseScale

	scaledTextWidth := textWidth * titleScale
	scaledTextX := centerX - scaledTextWidth/2
	textY := centerY - 8

	titleOp := &text.DrawOptions{}
	titleOp.GeoM.Scale(titleScale, titleScale)
	titleOp.GeoM.Translate(scaledTextX, textY)

	// Gold/yellow color with slight pulsing brightness
	brightness := 1.0 + 0.2*math.Sin(elapsed*1.5)
	if brightness > 1.0 {
		brightness = 1.0
	}
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	titleOp.ColorScale.ScaleWithColor(titleColor)
	text.Draw(screen, titleText, face, titleOp)

	// Draw subtitle
	subtitleText := "Vision-Commanded Driving"
	subtitleWidth := text.Advance(subtitleText, face)
	subtitleScale := 2.0
	subtitleX := centerX - subtitleWidth*subtitleScale/2
	subtitleY := centerY + 80

	subtitleOp := &text.DrawOptions{}
	subtitleOp.GeoM.Scale(subtitleScale, subtitleScale)
	subtitleOp.GeoM.Translate(subtitleX, subtitleY)
	subtitleOp.ColorScale.ScaleWithColor(color.RGBA{180, 180, 200, 255})
	text.Draw(screen, subtitleText, face, subtitleOp)

	// Draw "Press to Start" with blinking effect
	pressText := "Press ENTER or SPACE to Start"
	if int(elapsed*2)%2 == 0 { // Blink every 0.5 seconds
		pressWidth := text.Advance(pressText, face)
		pressScale := 1.5
		pressX := centerX - pressWidth*pressScale/2
		pressY := float64(height) - 120

		pressOp := &text.DrawOptions{}
		pressOp.GeoM.Scale(pressScale, pressScale)
		pressOp.GeoM.Translate(pressX, pressY)
		pressOp.ColorScale.ScaleWithColor(color.RGBA{150, 200, 255, 255})
		text.Draw(screen, pressText, face, pressOp)
	}

	drawDecorativeLines(screen, width, height)
}

// drawDecorativeLines draws horizontal accent lines on the title screen
func drawDecorativeLines(screen *ebiten.Image, width, height int) {
	lineColor := color.RGBA{50, 60, 80, 100}
	lineThickness := 2

	for _, y := range []float64{float64(height) / 6, float64(height) * 5 / 6} {
		lineImg := ebiten.NewImage(width, lineThickness)
		lineImg.Fill(lineColor)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, y)
		screen.DrawImage(lineImg, op)
	}
}
