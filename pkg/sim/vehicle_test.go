package sim

import "testing"

const testTick = 1.0 / 60

// TestVehicleInitialState verifies the canonical start state
func TestVehicleInitialState(t *testing.T) {
	v := NewVehicle(650)

	if v.Lane != 1 || v.TargetLane != 1 {
		t.Errorf("Expected start in center lane, got lane=%d target=%d", v.Lane, v.TargetLane)
	}
	if v.X != 300 {
		t.Errorf("Expected x 300 for center lane, got %f", v.X)
	}
	if v.Velocity != 0 {
		t.Errorf("Expected velocity 0 at start, got %f", v.Velocity)
	}
	if v.Braking {
		t.Error("Expected braking off at start")
	}
}

// TestLaneChangeDebounce verifies repeated identical commands change the
// target lane at most once
func TestLaneChangeDebounce(t *testing.T) {
	v := NewVehicle(650)

	v.UpdateControls(CommandSwipeLeft)
	if v.TargetLane != 0 {
		t.Errorf("Expected target lane 0 after first SWIPE_LEFT, got %d", v.TargetLane)
	}

	v.UpdateControls(CommandSwipeLeft)
	if v.TargetLane != 0 {
		t.Errorf("Expected target lane unchanged on repeated SWIPE_LEFT, got %d", v.TargetLane)
	}
}

// TestLaneClamping verifies the target lane never leaves [0, 2]
func TestLaneClamping(t *testing.T) {
	v := NewVehicle(650)

	// Alternate with CENTER so every swipe is a rising edge
	for i := 0; i < 5; i++ {
		v.UpdateControls(CommandSwipeLeft)
		v.UpdateControls(CommandCenter)
	}
	if v.TargetLane != 0 {
		t.Errorf("Expected target lane clamped at 0, got %d", v.TargetLane)
	}

	for i := 0; i < 5; i++ {
		v.UpdateControls(CommandSwipeRight)
		v.UpdateControls(CommandCenter)
	}
	if v.TargetLane != 2 {
		t.Errorf("Expected target lane clamped at 2, got %d", v.TargetLane)
	}
}

// TestRisingEdgeAfterOtherCommand verifies a lane change fires again once
// a different command has been seen in between
func TestRisingEdgeAfterOtherCommand(t *testing.T) {
	v := NewVehicle(650)

	v.UpdateControls(CommandSwipeRight)
	if v.TargetLane != 2 {
		t.Errorf("Expected target lane 2, got %d", v.TargetLane)
	}

	v.UpdateControls(CommandSwipeLeft)
	if v.TargetLane != 1 {
		t.Errorf("Expected target lane 1 after SWIPE_LEFT, got %d", v.TargetLane)
	}

	v.UpdateControls(CommandSwipeLeft)
	if v.TargetLane != 1 {
		t.Errorf("Expected repeated SWIPE_LEFT debounced, got %d", v.TargetLane)
	}

	// BRAKE updates the last command, so the next SWIPE_LEFT is a
	// rising edge again
	v.UpdateControls(CommandBrake)
	if !v.Braking {
		t.Error("Expected braking asserted")
	}
	if v.TargetLane != 1 {
		t.Errorf("Expected BRAKE to perform no lane action, got target %d", v.TargetLane)
	}

	v.UpdateControls(CommandSwipeLeft)
	if v.Braking {
		t.Error("Expected braking cleared by non-BRAKE command")
	}
	if v.TargetLane != 0 {
		t.Errorf("Expected target lane 0 after rising edge, got %d", v.TargetLane)
	}
}

// TestBrakingDeceleration verifies braking from velocity 3 reaches
// exactly 0 within 4 ticks and stays there
func TestBrakingDeceleration(t *testing.T) {
	v := NewVehicle(650)
	v.Velocity = 3
	v.UpdateControls(CommandBrake)

	expected := []float64{2.2, 1.4, 0.6, 0}
	for i, want := range expected {
		v.Update(testTick)
		got := v.Velocity
		if diff := got - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Tick %d: expected velocity %f, got %f", i+1, want, got)
		}
	}

	// Stays at 0 while braking continues
	for i := 0; i < 10; i++ {
		v.UpdateControls(CommandBrake)
		v.Update(testTick)
		if v.Velocity != 0 {
			t.Errorf("Expected velocity to stay 0 under braking, got %f", v.Velocity)
		}
	}
}

// TestCruiseAcceleration verifies the vehicle accelerates to the default
// speed and holds it without overshoot
func TestCruiseAcceleration(t *testing.T) {
	v := NewVehicle(650)

	for i := 0; i < 100; i++ {
		v.UpdateControls(CommandCenter)
		v.Update(testTick)
		if v.Velocity > v.DefaultSpeed {
			t.Errorf("Tick %d: velocity %f exceeded cruise speed %f", i, v.Velocity, v.DefaultSpeed)
		}
	}
	if v.Velocity != v.DefaultSpeed {
		t.Errorf("Expected cruise speed %f, got %f", v.DefaultSpeed, v.Velocity)
	}
}

// TestVelocityAndLaneBounds fuzzes commands and verifies the invariants
// velocity in [0, max] and lanes in {0, 1, 2} hold on every tick
func TestVelocityAndLaneBounds(t *testing.T) {
	v := NewVehicle(650)
	commands := []Command{
		CommandSwipeLeft, CommandSwipeLeft, CommandBrake, CommandSwipeRight,
		CommandCenter, CommandSwipeRight, CommandSwipeRight, CommandBrake,
		CommandCenter, CommandSwipeLeft,
	}

	for i := 0; i < 1000; i++ {
		v.UpdateControls(commands[i%len(commands)])
		v.Update(testTick)

		if v.Velocity < 0 || v.Velocity > v.MaxVelocity {
			t.Fatalf("Tick %d: velocity %f out of [0, %f]", i, v.Velocity, v.MaxVelocity)
		}
		if v.Lane < 0 || v.Lane >= LaneCount {
			t.Fatalf("Tick %d: lane %d out of range", i, v.Lane)
		}
		if v.TargetLane < 0 || v.TargetLane >= LaneCount {
			t.Fatalf("Tick %d: target lane %d out of range", i, v.TargetLane)
		}
	}
}

// TestLaneTransitionSnap verifies the decided lane and the arrived lane
// decouple during a transition and converge on the lane center
func TestLaneTransitionSnap(t *testing.T) {
	v := NewVehicle(650)

	v.UpdateControls(CommandSwipeLeft)
	if v.TargetLane != 0 {
		t.Fatalf("Expected target lane 0, got %d", v.TargetLane)
	}

	// Mid-transition the arrived lane still reads the old value
	v.Update(testTick)
	if v.Lane != 1 {
		t.Errorf("Expected arrived lane 1 during transition, got %d", v.Lane)
	}
	if v.X >= 300 {
		t.Errorf("Expected x moving left of 300, got %f", v.X)
	}

	// 300 -> 100 at 10 units per tick
	for i := 0; i < 30; i++ {
		v.Update(testTick)
	}
	if v.X != LaneCenterX(0) {
		t.Errorf("Expected exact snap to %f, got %f", LaneCenterX(0), v.X)
	}
	if v.Lane != 0 {
		t.Errorf("Expected arrived lane 0 after snap, got %d", v.Lane)
	}
}

// TestVehicleReset verifies reset restores the canonical start state
func TestVehicleReset(t *testing.T) {
	v := NewVehicle(650)
	v.UpdateControls(CommandSwipeRight)
	for i := 0; i < 50; i++ {
		v.Update(testTick)
	}
	v.UpdateControls(CommandBrake)

	v.Reset()

	if v.Lane != 1 || v.TargetLane != 1 {
		t.Errorf("Expected reset to center lane, got lane=%d target=%d", v.Lane, v.TargetLane)
	}
	if v.Velocity != 0 {
		t.Errorf("Expected velocity 0 after reset, got %f", v.Velocity)
	}
	if v.Braking {
		t.Error("Expected braking cleared after reset")
	}
	if v.X != 300 {
		t.Errorf("Expected x 300 after reset, got %f", v.X)
	}

	// Command tracking is reset too: the next command is a rising edge
	v.UpdateControls(CommandSwipeLeft)
	if v.TargetLane != 0 {
		t.Errorf("Expected lane change after reset, got target %d", v.TargetLane)
	}
}
