package geometry

// Rect represents a rectangle with integer pixel coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
// Right and Bottom edges are exclusive.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// TopLeft returns the position of the rectangle.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// WithSize returns a copy with the given dimensions, keeping the position.
func (r Rect) WithSize(sz Size) Rect {
	r.Width = sz.Width
	r.Height = sz.Height
	return r
}

// MovedTo returns a copy moved so its top-left corner is at p.
func (r Rect) MovedTo(p Point) Rect {
	r.X = p.X
	r.Y = p.Y
	return r
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and
// bottom edges are outside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect returns true if the other rectangle is fully contained
// within this rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Pos returns the position along the given orientation.
func (r Rect) Pos(o Orientation) int {
	if o == Vertical {
		return r.Y
	}
	return r.X
}

// Length returns the dimension along the given orientation.
func (r Rect) Length(o Orientation) int {
	return r.Size().Length(o)
}

// Edge returns the far coordinate along the given orientation (exclusive):
// Bottom when vertical, Right when horizontal.
func (r Rect) Edge(o Orientation) int {
	if o == Vertical {
		return r.Bottom()
	}
	return r.Right()
}

// WithPos returns a copy moved to position p along the given orientation,
// keeping the cross-axis position.
func (r Rect) WithPos(p int, o Orientation) Rect {
	if o == Vertical {
		r.Y = p
	} else {
		r.X = p
	}
	return r
}

// WithLength returns a copy with the dimension along o replaced, keeping
// the position.
func (r Rect) WithLength(l int, o Orientation) Rect {
	if o == Vertical {
		r.Height = l
	} else {
		r.Width = l
	}
	return r
}

// Adjusted returns a copy with the leading edge moved by p1 and the
// trailing edge moved by p2 along the given orientation.
func (r Rect) Adjusted(o Orientation, p1, p2 int) Rect {
	if o == Vertical {
		r.Y += p1
		r.Height += p2 - p1
	} else {
		r.X += p1
		r.Width += p2 - p1
	}
	return r
}
