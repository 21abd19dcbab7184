// geometry.go re-exports value types from internal/geometry.
// Any changes to internal/geometry types must be mirrored here.
package multisplit

import "multisplit/internal/geometry"

// Point represents an (X, Y) pixel coordinate.
type Point = geometry.Point

// Size represents a width/height pair in pixels.
type Size = geometry.Size

// Rect represents a rectangle with integer pixel coordinates.
type Rect = geometry.Rect

// Orientation is the axis along which a container lays out its children.
type Orientation = geometry.Orientation

const (
	Vertical   = geometry.Vertical
	Horizontal = geometry.Horizontal
)

// Location identifies a docking edge, either of an existing item or of the
// whole layout.
type Location = geometry.Location

const (
	LocationNone     = geometry.LocationNone
	LocationOnLeft   = geometry.LocationOnLeft
	LocationOnTop    = geometry.LocationOnTop
	LocationOnRight  = geometry.LocationOnRight
	LocationOnBottom = geometry.LocationOnBottom
)

// Side distinguishes the two directions along a container's orientation:
// Side1 is left/top, Side2 is right/bottom.
type Side = geometry.Side

const (
	Side1 = geometry.Side1
	Side2 = geometry.Side2
)

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return geometry.NewRect(x, y, width, height)
}

// NewSize creates a new Size.
func NewSize(width, height int) Size {
	return geometry.NewSize(width, height)
}
