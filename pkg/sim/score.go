package sim

// ScoreTracker accumulates distance-based score. Score and distance
// only ever increase while the game is playing; both reset to zero on
// restart.
type ScoreTracker struct {
	Score            int     // Total points
	Multiplier       float64 // Scalar applied to score accrual, currently always 1
	DistanceTraveled float64 // Cumulative scaled distance
}

// NewScoreTracker returns a tracker in its canonical initial state.
func NewScoreTracker() *ScoreTracker {
	return &ScoreTracker{Multiplier: 1}
}

// AddDistance records a distance increment and accrues the scaled,
// truncated score for it. Sub-point increments truncate to zero, so at
// fine tick rates score accrues only once increments reach a full point.
func (s *ScoreTracker) AddDistance(increment float64) {
	s.DistanceTraveled += increment
	s.Score += int(increment * s.Multiplier)
}

// AwardPoints grants the avoidance bonus for an obstacle, once. This is
// an extension hook: the update loop never calls it, so distance scoring
// is the only active path.
func (s *ScoreTracker) AwardPoints(o *Obstacle) int {
	if o.PointsAwarded {
		return 0
	}
	points := int(float64(o.Type.Points()) * s.Multiplier)
	s.Score += points
	o.PointsAwarded = true
	return points
}

// Reset restores the tracker to its initial state.
func (s *ScoreTracker) Reset() {
	s.Score = 0
	s.Multiplier = 1
	s.DistanceTraveled = 0
}
