package sim

import "math/rand/v2"

const (
	// LineSpacing is the distance between lane marking dashes; the
	// scroll offset wraps at this value.
	LineSpacing = 40.0

	// SpawnInterval is the time between automatic obstacle spawns, in
	// milliseconds.
	SpawnInterval = 1500.0

	// scrollRate scales vehicle velocity into road scroll per second.
	scrollRate = 100.0

	// distanceRate scales vehicle velocity into distance units per
	// second, keeping scores in a readable range.
	distanceRate = 15.0
)

// Road owns the scrolling road state and the set of live obstacles:
// it spawns, advances, and expires them, and answers collision queries
// against the vehicle. All updates happen inside Update; external
// collaborators only read.
type Road struct {
	ScrollOffset float64 // Lane marking scroll, wraps at LineSpacing
	SpawnTimer   float64 // Milliseconds accumulated toward the next spawn

	Obstacles []*Obstacle
	Tracker   *ScoreTracker

	pcg *rand.PCG
	rng *rand.Rand
}

// NewRoad creates a road with an empty obstacle set and a spawn RNG
// seeded from seed, so tests and replays can fix the spawn sequence.
func NewRoad(seed uint64) *Road {
	r := &Road{Tracker: NewScoreTracker()}
	r.reseed(seed, seed)
	return r
}

// reseed replaces the spawn RNG with a fresh PCG stream.
func (r *Road) reseed(seed1, seed2 uint64) {
	r.pcg = rand.NewPCG(seed1, seed2)
	r.rng = rand.New(r.pcg)
}

// Update advances the road by one tick at the given vehicle velocity:
// scroll, distance/score accrual, spawn cadence, then obstacle advance
// and expiry.
func (r *Road) Update(dt, cameraSpeed float64) {
	// Road moves down to simulate the vehicle moving up.
	r.ScrollOffset += cameraSpeed * dt * scrollRate
	if r.ScrollOffset > LineSpacing {
		r.ScrollOffset = 0
	}

	r.Tracker.AddDistance(cameraSpeed * dt * distanceRate)

	r.SpawnTimer += dt * 1000
	if r.SpawnTimer >= SpawnInterval {
		r.Spawn()
		r.SpawnTimer = 0
	}

	// Advance every obstacle, then compact away the expired ones in a
	// single pass rather than removing during iteration.
	active := r.Obstacles[:0]
	for _, o := range r.Obstacles {
		o.Update(dt, cameraSpeed)
		if o.Active {
			active = append(active, o)
		}
	}
	r.Obstacles = active
}

// Spawn creates one obstacle in a uniformly random lane, off-screen
// above the visible area. The type is a weighted draw on a single
// roll: below 0.33 truck, below 0.67 barrier, otherwise car.
func (r *Road) Spawn() {
	lane := r.rng.IntN(LaneCount)

	var obstacleType ObstacleType
	switch roll := r.rng.Float64(); {
	case roll < 0.33:
		obstacleType = ObstacleTruck
	case roll < 0.67:
		obstacleType = ObstacleBarrier
	default:
		obstacleType = ObstacleCar
	}

	r.Obstacles = append(r.Obstacles, &Obstacle{
		X:      LaneCenterX(lane),
		Y:      SpawnY,
		Width:  ObstacleWidth,
		Height: ObstacleHeight,
		Type:   obstacleType,
		Active: true,
	})
}

// CheckCollision returns the first active obstacle whose box overlaps
// the vehicle bounds, or nil if there is no collision. Overlap is
// strict: edge-touching boxes do not collide. A single overlapping
// obstacle is terminal for the enclosing game; there are no
// partial-damage semantics.
func (r *Road) CheckCollision(vehicleBounds Rect) *Obstacle {
	for _, o := range r.Obstacles {
		if o.Active && vehicleBounds.Intersects(o.Bounds()) {
			return o
		}
	}
	return nil
}

// Reset clears the obstacle set, the timers, and the score back to the
// initial road state.
func (r *Road) Reset() {
	r.Obstacles = nil
	r.ScrollOffset = 0
	r.SpawnTimer = 0
	r.Tracker.Reset()
}

// Score returns the current score.
func (r *Road) Score() int {
	return r.Tracker.Score
}

// Multiplier returns the current score multiplier.
func (r *Road) Multiplier() float64 {
	return r.Tracker.Multiplier
}

// Distance returns the whole distance traveled so far.
func (r *Road) Distance() int {
	return int(r.Tracker.DistanceTraveled)
}
