package sim

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// RectAround builds a Rect of the given size centered on (cx, cy).
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Intersects reports whether two boxes overlap. The comparison is
// strict: boxes that merely touch along an edge or corner do not count
// as overlapping.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}
