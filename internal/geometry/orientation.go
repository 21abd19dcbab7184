package geometry

// Orientation is the axis along which a container lays out its children.
//
// The numeric values are part of the serialization format: 0 is vertical,
// 1 is horizontal.
type Orientation uint8

const (
	Vertical   Orientation = iota // Children stacked top-to-bottom
	Horizontal                    // Children laid out left-to-right
)

// Opposite returns the perpendicular orientation.
func (o Orientation) Opposite() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Location identifies a docking edge, either of an existing item or of the
// whole layout.
type Location uint8

const (
	LocationNone Location = iota
	LocationOnLeft
	LocationOnTop
	LocationOnRight
	LocationOnBottom
)

// Orientation returns the split axis implied by the location. Dropping on
// the left or right splits horizontally, top or bottom vertically.
func (l Location) Orientation() Orientation {
	switch l {
	case LocationOnLeft, LocationOnRight:
		return Horizontal
	default:
		return Vertical
	}
}

// IsSide1 returns true for the locations that insert before existing
// children (left and top).
func (l Location) IsSide1() bool {
	return l == LocationOnLeft || l == LocationOnTop
}

// IsVertical returns true for top and bottom locations.
func (l Location) IsVertical() bool {
	return l == LocationOnTop || l == LocationOnBottom
}

func (l Location) String() string {
	switch l {
	case LocationOnLeft:
		return "left"
	case LocationOnTop:
		return "top"
	case LocationOnRight:
		return "right"
	case LocationOnBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Side distinguishes the two directions along a container's orientation:
// Side1 is left/top, Side2 is right/bottom.
type Side uint8

const (
	Side1 Side = iota
	Side2
)

// Side returns which side of an existing item the location refers to.
func (l Location) Side() Side {
	if l.IsSide1() {
		return Side1
	}
	return Side2
}
