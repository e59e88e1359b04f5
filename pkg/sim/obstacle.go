package sim

// ObstacleType tags the variant of a spawned obstacle. The tag carries
// the point value used by the (currently dormant) avoidance award.
type ObstacleType int

const (
	ObstacleCar ObstacleType = iota
	ObstacleTruck
	ObstacleBarrier
)

// Points returns the avoidance point value for this obstacle type.
func (t ObstacleType) Points() int {
	switch t {
	case ObstacleCar:
		return 10
	case ObstacleTruck:
		return 20
	case ObstacleBarrier:
		return 5
	}
	return 0
}

// String returns a display name for the obstacle type.
func (t ObstacleType) String() string {
	switch t {
	case ObstacleCar:
		return "car"
	case ObstacleTruck:
		return "truck"
	case ObstacleBarrier:
		return "barrier"
	}
	return "unknown"
}

const (
	// ObstacleWidth and ObstacleHeight are fixed regardless of type.
	ObstacleWidth  = 50.0
	ObstacleHeight = 80.0

	// obstacleAdvanceRate scales vehicle velocity into obstacle screen
	// movement per second, simulating the vehicle closing on traffic ahead.
	obstacleAdvanceRate = 150.0

	// BottomBoundary is the screen Y past which an obstacle has scrolled
	// behind the vehicle and expires.
	BottomBoundary = 800.0

	// SpawnY is the off-screen Y where new obstacles appear.
	SpawnY = -100.0
)

// Obstacle is a single traffic hazard scrolling toward the vehicle.
// Obstacles are owned exclusively by the Road; everything else only
// reads them.
type Obstacle struct {
	X, Y          float64      // Center position
	Width, Height float64      // Box size, fixed at 50x80
	Type          ObstacleType // Variant tag
	Active        bool         // False once scrolled past the bottom boundary
	PointsAwarded bool         // Guards the one-shot avoidance award
}

// Update advances the obstacle toward the bottom of the screen and
// deactivates it once it passes the vehicle.
func (o *Obstacle) Update(dt, cameraSpeed float64) {
	o.Y += cameraSpeed * dt * obstacleAdvanceRate
	if o.Y > BottomBoundary {
		o.Active = false
	}
}

// Bounds returns the obstacle's collision box.
func (o *Obstacle) Bounds() Rect {
	return RectAround(o.X, o.Y, o.Width, o.Height)
}
