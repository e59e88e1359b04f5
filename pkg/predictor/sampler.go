package predictor

// Sampler rate-limits a source and holds its last prediction between
// samples. This is sample-and-hold, not a queue: missed commands are
// never buffered, and a new prediction immediately replaces the held
// one from the next tick onward.
type Sampler struct {
	source   Source
	interval float64 // Seconds between samples
	elapsed  float64 // Seconds since the last sample
	held     Prediction
}

// NewSampler wraps source, sampling it at most once per interval
// seconds. An interval of zero samples every tick.
func NewSampler(source Source, interval float64) *Sampler {
	return &Sampler{
		source:   source,
		interval: interval,
		held:     Neutral(),
	}
}

// Sample accumulates dt and, once the interval has elapsed, pulls a new
// prediction from the source and resets the timer. A source error falls
// back to the neutral prediction instead of propagating. The held
// prediction is returned either way.
func (s *Sampler) Sample(dt float64) Prediction {
	s.elapsed += dt
	if s.elapsed >= s.interval {
		p, err := s.source.Predict()
		if err != nil {
			p = Neutral()
		}
		s.held = p
		s.elapsed = 0
	}
	return s.held
}

// Held returns the current held prediction without advancing time.
func (s *Sampler) Held() Prediction {
	return s.held
}

// Interval returns the sampling interval in seconds.
func (s *Sampler) Interval() float64 {
	return s.interval
}

// Reset clears the timer and the held prediction back to neutral.
func (s *Sampler) Reset() {
	s.elapsed = 0
	s.held = Neutral()
}
