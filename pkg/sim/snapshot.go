package sim

import (
	"encoding/json"
	"fmt"
	"os"
)

// Snapshot captures the complete simulation state for save and replay.
// Restoring a snapshot and feeding it the same command sequence
// reproduces identical tick outputs, because the spawn RNG state is
// carried along with the vehicle and road.
type Snapshot struct {
	Vehicle      Vehicle
	Obstacles    []Obstacle
	ScrollOffset float64
	SpawnTimer   float64
	Score        int
	Multiplier   float64
	Distance     float64
	RNGState     []byte // Serialized PCG state for the spawn RNG
}

// TakeSnapshot copies the current vehicle and road state.
func TakeSnapshot(v *Vehicle, r *Road) (*Snapshot, error) {
	rngState, err := r.pcg.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize spawn rng: %w", err)
	}

	s := &Snapshot{
		Vehicle:      *v,
		Obstacles:    make([]Obstacle, len(r.Obstacles)),
		ScrollOffset: r.ScrollOffset,
		SpawnTimer:   r.SpawnTimer,
		Score:        r.Tracker.Score,
		Multiplier:   r.Tracker.Multiplier,
		Distance:     r.Tracker.DistanceTraveled,
		RNGState:     rngState,
	}
	for i, o := range r.Obstacles {
		s.Obstacles[i] = *o
	}
	return s, nil
}

// Restore rebuilds a vehicle and road from the snapshot.
func (s *Snapshot) Restore() (*Vehicle, *Road, error) {
	vehicle := s.Vehicle

	road := NewRoad(0)
	if err := road.pcg.UnmarshalBinary(s.RNGState); err != nil {
		return nil, nil, fmt.Errorf("failed to restore spawn rng: %w", err)
	}
	road.ScrollOffset = s.ScrollOffset
	road.SpawnTimer = s.SpawnTimer
	road.Tracker.Score = s.Score
	road.Tracker.Multiplier = s.Multiplier
	road.Tracker.DistanceTraveled = s.Distance
	road.Obstacles = make([]*Obstacle, len(s.Obstacles))
	for i := range s.Obstacles {
		o := s.Obstacles[i]
		road.Obstacles[i] = &o
	}

	return &vehicle, road, nil
}

// SaveToFile writes the snapshot to a JSON file.
func (s *Snapshot) SaveToFile(filename string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// LoadSnapshotFromFile loads a snapshot from a JSON file.
func LoadSnapshotFromFile(filename string) (*Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	return &s, nil
}
