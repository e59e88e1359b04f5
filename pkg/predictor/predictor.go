// Package predictor abstracts the external control signal steering the
// game: originally a vision classifier, but to the simulation just a
// periodic source of one command out of a small vocabulary plus a
// confidence value.
package predictor

// Prediction is one sampled command from a source.
type Prediction struct {
	Action        string    // One of the command vocabulary strings
	Confidence    float64   // Source confidence in [0, 1]
	Probabilities []float64 // Per-class probabilities (left, center, right)
}

// Source produces predictions on demand. Implementations may be a
// classifier, a keyboard, or a script; failures are the source's
// concern and the sampler falls back to a neutral command.
type Source interface {
	Predict() (Prediction, error)
}

// Neutral is the held prediction before the first sample and the
// fallback when a source fails: CENTER with zero confidence.
func Neutral() Prediction {
	return Prediction{
		Action:        "CENTER",
		Confidence:    0,
		Probabilities: []float64{0, 1, 0},
	}
}

// ScriptedSource replays a fixed sequence of actions, one per Predict
// call, then holds the last one. Used for replays and tests.
type ScriptedSource struct {
	Actions []string
	next    int
}

// Predict returns the next scripted action with full confidence.
func (s *ScriptedSource) Predict() (Prediction, error) {
	if len(s.Actions) == 0 {
		return Neutral(), nil
	}
	i := s.next
	if i >= len(s.Actions) {
		i = len(s.Actions) - 1
	} else {
		s.next++
	}
	return scripted(s.Actions[i]), nil
}

// scripted builds a full-confidence prediction with the probability
// mass on the class matching the action, so in-script and held returns
// have the same shape.
func scripted(action string) Prediction {
	p := Prediction{Action: action, Confidence: 1, Probabilities: []float64{0, 0, 0}}
	switch action {
	case "SWIPE_LEFT":
		p.Probabilities[0] = 1
	case "SWIPE_RIGHT":
		p.Probabilities[2] = 1
	case "CENTER", "NO_ACTION":
		p.Probabilities[1] = 1
	}
	return p
}
