package geometry

// Size represents a width/height pair in pixels.
type Size struct {
	Width, Height int
}

// NewSize creates a new Size.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// IsZero returns true if both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Add returns the componentwise sum of the two sizes.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// Sub returns the componentwise difference of the two sizes.
func (s Size) Sub(other Size) Size {
	return Size{Width: s.Width - other.Width, Height: s.Height - other.Height}
}

// ExpandedTo returns the componentwise maximum of the two sizes.
func (s Size) ExpandedTo(other Size) Size {
	return Size{Width: max(s.Width, other.Width), Height: max(s.Height, other.Height)}
}

// BoundedTo returns the componentwise minimum of the two sizes.
func (s Size) BoundedTo(other Size) Size {
	return Size{Width: min(s.Width, other.Width), Height: min(s.Height, other.Height)}
}

// ClampedToZero returns the size with negative components replaced by zero.
func (s Size) ClampedToZero() Size {
	return Size{Width: max(s.Width, 0), Height: max(s.Height, 0)}
}

// Length returns the dimension along the given orientation: height when
// vertical, width when horizontal.
func (s Size) Length(o Orientation) int {
	if o == Vertical {
		return s.Height
	}
	return s.Width
}

// WithLength returns a copy with the dimension along o replaced.
func (s Size) WithLength(l int, o Orientation) Size {
	if o == Vertical {
		s.Height = l
	} else {
		s.Width = l
	}
	return s
}

// Fits returns true if s fits inside other, i.e. s is no larger than
// other in either dimension.
func (s Size) Fits(other Size) bool {
	return s.Width <= other.Width && s.Height <= other.Height
}
