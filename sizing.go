package multisplit

// Hard limits applied to every leaf regardless of what its guest reports.
var (
	// HardcodedMinimumSize is the floor below which no item can shrink.
	HardcodedMinimumSize = NewSize(80, 90)

	// HardcodedMaximumSize is the (practically unbounded) ceiling.
	HardcodedMaximumSize = NewSize(16777215, 16777215)

	// SeparatorThickness is the number of pixels a separator occupies
	// between two adjacent visible siblings. Process-wide setting.
	SeparatorThickness = 5
)

// GrowthStrategy decides which side donates space when an item grows.
type GrowthStrategy uint8

const (
	// BothSidesEqually takes space from both sides in alternating
	// increments, exhausting one side before draining the other.
	BothSidesEqually GrowthStrategy = iota
	// Side1Only takes the entire amount from the left/top side.
	Side1Only
	// Side2Only takes the entire amount from the right/bottom side.
	Side2Only
)

// NeighbourSqueezeStrategy decides how a required squeeze is distributed
// among the donor neighbours on one side.
type NeighbourSqueezeStrategy uint8

const (
	// AllNeighbours spreads the squeeze between all neighbours with
	// available slack, round-robin.
	AllNeighbours NeighbourSqueezeStrategy = iota
	// ImmediateNeighboursFirst drains the closest neighbour completely
	// before touching the next one.
	ImmediateNeighboursFirst
)

// ChildrenResizeStrategy decides how a container resize is distributed
// among its children.
type ChildrenResizeStrategy uint8

const (
	// ResizePercentage keeps each child's relative share of the usable
	// length across the resize.
	ResizePercentage ChildrenResizeStrategy = iota
	// ResizeSide1SeparatorMove resizes children starting from the
	// left/top end. Used when the resize originates from a separator
	// being dragged towards side1 elsewhere in the tree.
	ResizeSide1SeparatorMove
	// ResizeSide2SeparatorMove resizes children starting from the
	// right/bottom end.
	ResizeSide2SeparatorMove
)

// DefaultSizeMode specifies how to pick an initial length for an item
// being added to a container.
type DefaultSizeMode uint8

const (
	// DefaultSizeFair gives the new item an equal relative share of the
	// usable length.
	DefaultSizeFair DefaultSizeMode = iota
	// DefaultSizeFairButFloor is fair, but never grows the item beyond
	// its current length.
	DefaultSizeFairButFloor
	// DefaultSizeItemSize keeps the item's current length.
	DefaultSizeItemSize
	// DefaultSizeNone does no sizing.
	DefaultSizeNone
)

// AddingOption modifies insertion behavior.
type AddingOption uint8

const (
	AddingOptionNone AddingOption = iota
	// AddingOptionStartHidden inserts the item as a placeholder.
	AddingOptionStartHidden
)

// SizingInfo holds one item's geometry and size constraints, plus the
// transient bookkeeping the negotiation algorithms need. Pure data.
type SizingInfo struct {
	Geometry               Rect
	MinSize                Size
	MaxSize                Size
	PercentageWithinParent float64
	IsBeingInserted        bool
}

func newSizingInfo() SizingInfo {
	return SizingInfo{
		MinSize: HardcodedMinimumSize,
		MaxSize: HardcodedMaximumSize,
	}
}

// Size returns the geometry's dimensions.
func (s *SizingInfo) Size() Size {
	return s.Geometry.Size()
}

// SetSize replaces the geometry's dimensions, keeping the position.
func (s *SizingInfo) SetSize(sz Size) {
	s.Geometry = s.Geometry.WithSize(sz)
}

// Length returns the dimension along the given orientation.
func (s *SizingInfo) Length(o Orientation) int {
	return s.Size().Length(o)
}

// MinLength returns the minimum dimension along the given orientation.
func (s *SizingInfo) MinLength(o Orientation) int {
	return s.MinSize.Length(o)
}

// AvailableLength returns how much the item can still shrink along o
// without violating its minimum.
func (s *SizingInfo) AvailableLength(o Orientation) int {
	return max(0, s.Length(o)-s.MinLength(o))
}

// MissingLength returns how much the item must grow along o to reach its
// minimum.
func (s *SizingInfo) MissingLength(o Orientation) int {
	return max(0, s.MinLength(o)-s.Length(o))
}

// Pos returns the position along the given orientation.
func (s *SizingInfo) Pos(o Orientation) int {
	return s.Geometry.Pos(o)
}

// Edge returns the far coordinate along the given orientation (exclusive).
func (s *SizingInfo) Edge(o Orientation) int {
	return s.Geometry.Edge(o)
}

// SetLength replaces the dimension along o, keeping the position.
func (s *SizingInfo) SetLength(l int, o Orientation) {
	s.Geometry = s.Geometry.WithLength(l, o)
}

// IncrementLength grows (or shrinks, if negative) the dimension along o.
func (s *SizingInfo) IncrementLength(by int, o Orientation) {
	s.SetLength(s.Length(o)+by, o)
}

// SetOppositeLength replaces the cross-axis dimension.
func (s *SizingInfo) SetOppositeLength(l int, o Orientation) {
	s.SetLength(l, o.Opposite())
}

// SetPos moves the geometry to position p along the given orientation.
func (s *SizingInfo) SetPos(p int, o Orientation) {
	s.Geometry = s.Geometry.WithPos(p, o)
}

// lengthOnSide accumulates length/minLength over a contiguous run of
// sizing records, used to compute how much slack one side of an item has.
type lengthOnSide struct {
	length    int
	minLength int
}

func (l lengthOnSide) available() int {
	return max(0, l.length-l.minLength)
}
