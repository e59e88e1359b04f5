package sim

import "testing"

// TestRectAround verifies centered box construction
func TestRectAround(t *testing.T) {
	r := RectAround(300, 650, 45, 70)

	if r.X != 277.5 || r.Y != 615 {
		t.Errorf("Expected top-left (277.5, 615), got (%f, %f)", r.X, r.Y)
	}
	if r.W != 45 || r.H != 70 {
		t.Errorf("Expected size 45x70, got %fx%f", r.W, r.H)
	}
}

// TestRectIntersects verifies the collision geometry from the vehicle
// and obstacle boxes
func TestRectIntersects(t *testing.T) {
	vehicle := RectAround(300, 650, 45, 70)

	// Obstacle centered on the vehicle collides
	obstacle := RectAround(300, 650, 50, 80)
	if !vehicle.Intersects(obstacle) {
		t.Error("Expected overlapping boxes to collide")
	}

	// Same lane, far ahead: no collision
	ahead := RectAround(300, 900, 50, 80)
	if vehicle.Intersects(ahead) {
		t.Error("Expected distant boxes not to collide")
	}

	// Adjacent lane, same height: no collision
	beside := RectAround(500, 650, 50, 80)
	if vehicle.Intersects(beside) {
		t.Error("Expected boxes in different lanes not to collide")
	}
}

// TestRectEdgeTouchingIsNotCollision pins the strict-overlap convention:
// boxes sharing only an edge or corner do not collide
func TestRectEdgeTouchingIsNotCollision(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 50, H: 80}

	edge := Rect{X: 50, Y: 0, W: 50, H: 80} // Shares the x=50 edge
	if a.Intersects(edge) {
		t.Error("Expected edge-touching boxes not to collide")
	}

	corner := Rect{X: 50, Y: 80, W: 50, H: 80} // Shares only the (50, 80) corner
	if a.Intersects(corner) {
		t.Error("Expected corner-touching boxes not to collide")
	}

	barely := Rect{X: 49.9, Y: 0, W: 50, H: 80}
	if !a.Intersects(barely) {
		t.Error("Expected barely overlapping boxes to collide")
	}
}
