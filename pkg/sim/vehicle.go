package sim

import "math"

const (
	// LaneWidth is the width of each road lane in world units.
	LaneWidth = 200.0

	// LaneCount is the number of lanes; lanes are indexed 0 (left) to 2 (right).
	LaneCount = 3

	// laneSnapTolerance is how close to a lane center the vehicle must be
	// before it snaps exactly onto it and the arrived lane updates.
	laneSnapTolerance = 3.0

	// brakeFactor scales acceleration into per-tick brake deceleration.
	brakeFactor = 4.0
)

// LaneCenterX returns the X coordinate of the center of the given lane.
func LaneCenterX(lane int) float64 {
	return float64(lane)*LaneWidth + LaneWidth/2
}

// Vehicle is the player vehicle: velocity physics plus the lane state
// machine. The vehicle's screen position is fixed vertically; forward
// motion is simulated by scrolling the road, so Y never advances.
type Vehicle struct {
	X, Y          float64 // Center position; Y is fixed on screen
	Width, Height float64

	Velocity     float64 // Current speed, in [0, MaxVelocity]
	MaxVelocity  float64
	Acceleration float64 // Per-tick speed gain when below cruise
	DefaultSpeed float64 // Cruise speed held when not braking

	Lane       int // Lane the vehicle has visually arrived in
	TargetLane int // Lane the vehicle is transitioning toward

	// LaneChangeSpeed is the fixed sideways step per tick during a
	// lane transition.
	LaneChangeSpeed float64

	Braking     bool
	LastCommand Command // Previous command, for rising-edge detection
}

// NewVehicle creates a vehicle at the canonical start state: center
// lane, stationary, sized 45x70 at the fixed screen height y.
func NewVehicle(y float64) *Vehicle {
	v := &Vehicle{
		Y:               y,
		Width:           45,
		Height:          70,
		MaxVelocity:     6,
		Acceleration:    0.2,
		DefaultSpeed:    3,
		Lane:            1, // Middle lane
		TargetLane:      1,
		LaneChangeSpeed: 10,
		LastCommand:     commandNone,
	}
	v.X = LaneCenterX(v.Lane)
	return v
}

// UpdateControls applies a steering command. BRAKE asserts braking and
// performs no lane action; any other command clears braking and, only
// on a rising edge (command differs from the previous one), moves the
// target lane one step, clamped to the road. Repeating the same command
// on consecutive calls is debounced.
func (v *Vehicle) UpdateControls(command Command) {
	if command == CommandBrake {
		v.Braking = true
	} else {
		v.Braking = false

		if command != v.LastCommand {
			switch command {
			case CommandSwipeLeft:
				if v.TargetLane > 0 {
					v.TargetLane--
				}
			case CommandSwipeRight:
				if v.TargetLane < LaneCount-1 {
					v.TargetLane++
				}
			}
		}
	}

	v.LastCommand = command
}

// Update advances vehicle physics by one tick. Velocity and the lane
// step are per-tick quantities; dt is carried for signature symmetry
// with the road update.
func (v *Vehicle) Update(dt float64) {
	if v.Braking {
		// Deceleration dominates every tick while braking is asserted.
		v.Velocity = math.Max(0, v.Velocity-v.Acceleration*brakeFactor)
	} else if v.Velocity < v.DefaultSpeed {
		v.Velocity = math.Min(v.DefaultSpeed, v.Velocity+v.Acceleration)
	} else {
		v.Velocity = v.DefaultSpeed
	}

	// Slide toward the target lane center, snapping exactly once within
	// tolerance. Lane-dependent logic elsewhere must use TargetLane
	// during the transition; Lane is the visually arrived lane.
	targetX := LaneCenterX(v.TargetLane)
	if math.Abs(v.X-targetX) > laneSnapTolerance {
		if v.X < targetX {
			v.X += v.LaneChangeSpeed
		} else {
			v.X -= v.LaneChangeSpeed
		}
	} else {
		v.X = targetX
		v.Lane = v.TargetLane
	}
}

// Bounds returns the vehicle's collision box, used verbatim by the
// road's collision query.
func (v *Vehicle) Bounds() Rect {
	return RectAround(v.X, v.Y, v.Width, v.Height)
}

// Reset restores the canonical start state: center lane, zero velocity,
// braking cleared, command tracking reset.
func (v *Vehicle) Reset() {
	v.Velocity = 0
	v.Braking = false
	v.Lane = 1
	v.TargetLane = 1
	v.X = LaneCenterX(v.Lane)
	v.LastCommand = commandNone
}
