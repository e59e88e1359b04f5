// Package game wires the simulation core, the command source, and the
// renderer into an ebiten game loop.
package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/lanerunner/pkg/predictor"
	"github.com/golangdaddy/lanerunner/pkg/render"
	"github.com/golangdaddy/lanerunner/pkg/sim"
	"github.com/golangdaddy/lanerunner/pkg/ui"
)

const (
	// ScreenWidth and ScreenHeight are the logical screen size; the road
	// spans the full width with three 200-unit lanes.
	ScreenWidth  = 600
	ScreenHeight = 800

	// tickSeconds is the fixed simulation step; ebiten calls Update at
	// 60 Hz by default.
	tickSeconds = 1.0 / 60

	// DefaultPredictionInterval is how often the command source is
	// sampled, in seconds. The simulation holds the last command between
	// samples.
	DefaultPredictionInterval = 0.6

	// vehicleScreenY is the fixed screen height the vehicle sits at.
	vehicleScreenY = 650.0
)

// State represents the current state of the game
type State int

const (
	StateTitle State = iota
	StatePlaying
	StateGameOver
)

// Game implements ebiten.Game: a fixed-order tick of command sampling,
// vehicle physics, road advance, and collision query. After a collision
// the simulation freezes until an explicit restart.
type Game struct {
	state State
	title *ui.TitleScreen

	vehicle *sim.Vehicle
	road    *sim.Road
	sampler *predictor.Sampler
	current predictor.Prediction

	highScore int
}

// NewGame creates a game driven by the given command source, sampled
// every interval seconds.
func NewGame(source predictor.Source, interval float64) *Game {
	g := &Game{
		vehicle: sim.NewVehicle(vehicleScreenY),
		road:    sim.NewRoad(uint64(time.Now().UnixNano())),
		sampler: predictor.NewSampler(source, interval),
		current: predictor.Neutral(),
	}
	g.title = ui.NewTitleScreen(func() {
		g.state = StatePlaying
	})
	return g
}

// Update proceeds the game state.
// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	switch g.state {
	case StateTitle:
		return g.title.Update()

	case StatePlaying:
		g.current = g.sampler.Sample(tickSeconds)
		command := sim.ParseCommand(g.current.Action)

		g.vehicle.UpdateControls(command)
		g.vehicle.Update(tickSeconds)
		g.road.Update(tickSeconds, g.vehicle.Velocity)

		if hit := g.road.CheckCollision(g.vehicle.Bounds()); hit != nil {
			g.state = StateGameOver
			if g.road.Score() > g.highScore {
				g.highScore = g.road.Score()
			}
			log.Printf("Collision with %s: score %d, distance %d",
				hit.Type, g.road.Score(), g.road.Distance())
		}

	case StateGameOver:
		// Physics and scoring stay frozen until an explicit restart.
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.restart()
		}
	}

	return nil
}

// restart clears vehicle and road back to canonical initial state
// within a single tick.
func (g *Game) restart() {
	g.vehicle.Reset()
	g.road.Reset()
	g.sampler.Reset()
	g.current = predictor.Neutral()
	g.state = StatePlaying
}

// Draw draws the game screen.
// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case StateTitle:
		g.title.Draw(screen)
	case StatePlaying:
		g.drawWorld(screen)
		g.drawHUD(screen)
	case StateGameOver:
		g.drawWorld(screen)
		g.drawHUD(screen)
		g.drawGameOver(screen)
	}
}

// drawWorld renders the road, obstacles, and vehicle.
func (g *Game) drawWorld(screen *ebiten.Image) {
	render.DrawRoad(screen, g.road)
	render.DrawObstacles(screen, g.road)
	render.DrawVehicle(screen, g.vehicle)
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth, ScreenHeight
}
