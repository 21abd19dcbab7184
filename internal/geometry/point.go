package geometry

// Point represents an (X, Y) pixel coordinate.
type Point struct {
	X, Y int
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// Pos returns the coordinate along the given orientation: Y when vertical,
// X when horizontal.
func (p Point) Pos(o Orientation) int {
	if o == Vertical {
		return p.Y
	}
	return p.X
}
