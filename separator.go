package multisplit

import (
	"go.uber.org/zap"
)

// Separator is the draggable gutter between two visible siblings. Its
// position is the root-coordinate edge of the side1 sibling, and it spans
// the container across the orientation. Separators exist only on trees
// with a host; dummy trees skip them entirely.
type Separator struct {
	parent      *Item
	orientation Orientation
	geometry    Rect
}

// Orientation returns the axis of the owning container. A vertical
// separator sits between vertically stacked items, so it is dragged
// vertically.
func (s *Separator) Orientation() Orientation {
	return s.orientation
}

// Geometry returns the separator's rectangle in root coordinates.
func (s *Separator) Geometry() Rect {
	return s.geometry
}

// Position returns the separator's coordinate along its orientation, in
// root coordinates.
func (s *Separator) Position() int {
	if s.orientation == Vertical {
		return s.geometry.Y
	}
	return s.geometry.X
}

// Container returns the container owning this separator.
func (s *Separator) Container() *Item {
	return s.parent
}

// Move drags the separator by delta pixels, negative towards side1.
// Deltas overshooting the reachable range are clamped to it.
func (s *Separator) Move(delta int) {
	pos := s.Position()
	target := clampInt(pos+delta,
		s.parent.MinPosForSeparatorGlobal(s),
		s.parent.MaxPosForSeparatorGlobal(s))
	if target != pos {
		s.parent.RequestSeparatorMove(s, target-pos)
	}
}

func (s *Separator) setGeometry(pos, pos2, length int) {
	var geo Rect
	if s.orientation == Vertical {
		geo = NewRect(pos2, pos, length, SeparatorThickness)
	} else {
		geo = NewRect(pos, pos2, SeparatorThickness, length)
	}
	s.geometry = geo
}

// Separators returns the container's separators, ordered along its
// orientation.
func (m *Item) Separators() []*Separator {
	out := make([]*Separator, len(m.separators))
	copy(out, m.separators)
	return out
}

// SeparatorsRecursive returns every separator in this subtree.
func (m *Item) SeparatorsRecursive() []*Separator {
	seps := make([]*Separator, len(m.separators))
	copy(seps, m.separators)
	for _, child := range m.children {
		if child.isContainer {
			seps = append(seps, child.SeparatorsRecursive()...)
		}
	}
	return seps
}

// SeparatorAt returns the separator whose position equals p, in root
// coordinates.
func (m *Item) SeparatorAt(p int) *Separator {
	for _, sep := range m.separators {
		if sep.Position() == p {
			return sep
		}
	}
	return nil
}

func (m *Item) indexOfSeparator(sep *Separator) int {
	for i, s := range m.separators {
		if s == sep {
			return i
		}
	}
	return -1
}

// requiredSeparatorPositions computes the root-coordinate positions the
// separators must occupy: one at the trailing edge of each visible child
// except the last.
func (m *Item) requiredSeparatorPositions() []int {
	numSeparators := max(0, m.NumVisibleChildren()-1)
	positions := make([]int, 0, numSeparators)

	for _, child := range m.children {
		if len(positions) == numSeparators {
			break
		}
		if child.IsVisible(false) {
			positions = append(positions, m.mapToRootPos(child.sizing.Edge(m.orientation), m.orientation))
		}
	}

	return positions
}

// updateSeparators reconciles the separator list with the visible
// children. Separators already sitting at a required position are reused
// so a drag doesn't see its handle replaced under it.
func (m *Item) updateSeparators() {
	if m.isDummy() {
		return
	}

	positions := m.requiredSeparatorPositions()

	if len(positions) != len(m.separators) {
		newSeparators := make([]*Separator, 0, len(positions))
		for _, position := range positions {
			if sep := m.takeSeparatorAt(position); sep != nil {
				newSeparators = append(newSeparators, sep)
			} else {
				newSeparators = append(newSeparators, &Separator{parent: m, orientation: m.orientation})
			}
		}
		m.separators = newSeparators
	}

	// Update their positions.
	var pos2 int
	if m.isVertical() {
		pos2 = m.MapToRoot(Point{}).X
	} else {
		pos2 = m.MapToRoot(Point{}).Y
	}

	for i, position := range positions {
		m.separators[i].orientation = m.orientation
		m.separators[i].setGeometry(position, pos2, m.oppositeLength())
	}

	m.updateChildPercentages()
}

// takeSeparatorAt removes and returns the separator at position p, if any.
func (m *Item) takeSeparatorAt(p int) *Separator {
	for i, sep := range m.separators {
		if sep.Position() == p {
			m.separators = append(m.separators[:i], m.separators[i+1:]...)
			return sep
		}
	}
	return nil
}

func (m *Item) removeSeparators() {
	m.separators = nil
}

func (m *Item) removeSeparatorsRecursive() {
	m.removeSeparators()
	for _, child := range m.children {
		if child.isContainer {
			child.removeSeparatorsRecursive()
		}
	}
}

func (m *Item) updateSeparatorsRecursive() {
	if !m.isContainer {
		return
	}
	m.updateSeparators()
	for _, child := range m.visibleChildren(false) {
		if child.isContainer {
			child.updateSeparatorsRecursive()
		}
	}
}

// MinPosForSeparator returns the smallest position the separator can be
// dragged to, in the container's coordinates.
func (m *Item) MinPosForSeparator(sep *Separator) int {
	return m.mapFromRootPos(m.MinPosForSeparatorGlobal(sep), m.orientation)
}

// MaxPosForSeparator returns the largest position the separator can be
// dragged to, in the container's coordinates.
func (m *Item) MaxPosForSeparator(sep *Separator) int {
	return m.mapFromRootPos(m.MaxPosForSeparatorGlobal(sep), m.orientation)
}

// MinPosForSeparatorGlobal is MinPosForSeparator in root coordinates. The
// bound accounts for slack in ancestor containers of the same
// orientation, since a drag can squeeze items outside this container.
func (m *Item) MinPosForSeparatorGlobal(sep *Separator) int {
	index := m.indexOfSeparator(sep)
	if index == -1 {
		m.logger().Warn("separator not found")
		return 0
	}

	children := m.visibleChildren(false)
	if index+1 >= len(children) {
		m.logger().Warn("separator index out of range", zap.Int("index", index))
		return sep.Position()
	}
	item := children[index+1]

	available1 := m.availableOnSideRecursive(item, Side1, m.orientation)
	return sep.Position() - available1
}

// MaxPosForSeparatorGlobal is MaxPosForSeparator in root coordinates.
func (m *Item) MaxPosForSeparatorGlobal(sep *Separator) int {
	index := m.indexOfSeparator(sep)
	if index == -1 {
		m.logger().Warn("separator not found")
		return 0
	}

	children := m.visibleChildren(false)
	item := children[index]

	available2 := m.availableOnSideRecursive(item, Side2, m.orientation)
	return sep.Position() + available2
}

// RequestSeparatorMove drags the separator by delta, negative towards
// side1. The space is taken from this container's own slack first; any
// remainder is forwarded to the next separator up the ancestor chain, so
// a drag can push through nested splits.
func (m *Item) RequestSeparatorMove(sep *Separator, delta int) {
	separatorIndex := m.indexOfSeparator(sep)
	if separatorIndex == -1 {
		m.logger().Warn("unknown separator")
		m.Root().dumpToLogger()
		return
	}

	if delta == 0 {
		return
	}

	minPos := m.MinPosForSeparatorGlobal(sep)
	pos := sep.Position()
	maxPos := m.MaxPosForSeparatorGlobal(sep)

	if pos+delta < minPos || pos+delta > maxPos {
		m.logger().Warn("separator would go out of bounds",
			zap.Int("min", minPos), zap.Int("pos", pos),
			zap.Int("max", maxPos), zap.Int("delta", delta))
		return
	}

	moveDirection := Side2
	if delta < 0 {
		moveDirection = Side1
	}

	children := m.visibleChildren(false)
	if len(children) <= separatorIndex {
		m.logger().Warn("not enough children for separator index",
			zap.Int("index", separatorIndex))
		m.Root().dumpToLogger()
		return
	}

	remainingToTake := delta
	if remainingToTake < 0 {
		remainingToTake = -remainingToTake
	}
	tookLocally := 0

	if moveDirection == Side1 {
		// Separator moving left (or up): the side2 neighbour grows into
		// whatever this container can yield locally.
		side2Neighbour := children[separatorIndex+1]
		available1 := m.availableOnSide(side2Neighbour, Side1)
		tookLocally = min(available1, remainingToTake)

		if tookLocally != 0 {
			m.growItem(side2Neighbour, tookLocally, Side1Only,
				ImmediateNeighboursFirst, false, ResizeSide1SeparatorMove)
		}
	} else {
		side1Neighbour := children[separatorIndex]
		available2 := m.availableOnSide(side1Neighbour, Side2)
		tookLocally = min(available2, remainingToTake)

		if tookLocally != 0 {
			m.growItem(side1Neighbour, tookLocally, Side2Only,
				ImmediateNeighboursFirst, false, ResizeSide2SeparatorMove)
		}
	}

	remainingToTake -= tookLocally

	if remainingToTake > 0 {
		if m.IsRoot() {
			m.logger().Warn("not enough space to move separator")
			return
		}
		// Go up the hierarchy and move the next separator in the same
		// direction. It may live in an ancestor other than our direct
		// parent when orientations differ.
		nextSeparator := m.parent.neighbourSeparator(m, moveDirection, m.orientation)
		if nextSeparator == nil {
			m.logger().Warn("no ancestor separator to forward to")
			return
		}
		remainingDelta := remainingToTake
		if moveDirection == Side1 {
			remainingDelta = -remainingToTake
		}
		nextSeparator.parent.RequestSeparatorMove(nextSeparator, remainingDelta)
	}
}

// RequestEqualSize drags the separator so both adjacent items end up with
// the same length, clamped to the allowed bounds. A one pixel difference
// is left alone since it can't be split.
func (m *Item) RequestEqualSize(sep *Separator) {
	separatorIndex := m.indexOfSeparator(sep)
	if separatorIndex == -1 {
		m.logger().Warn("separator not found")
		return
	}

	children := m.visibleChildren(false)
	side1Item := children[separatorIndex]
	side2Item := children[separatorIndex+1]

	length1 := side1Item.length(m.orientation)
	length2 := side2Item.length(m.orientation)

	diff := length1 - length2
	if diff >= -1 && diff <= 1 {
		return
	}

	newLength := (length1 + length2) / 2

	delta := 0
	if length1 < newLength {
		delta = newLength - length1
	} else if length2 < newLength {
		delta = -(newLength - length2)
	}

	// Bounds checking, to respect min sizes.
	minPos := m.MinPosForSeparatorGlobal(sep)
	maxPos := m.MaxPosForSeparatorGlobal(sep)
	newPos := clampInt(sep.Position()+delta, minPos, maxPos)

	delta = newPos - sep.Position()
	if delta != 0 {
		m.RequestSeparatorMove(sep, delta)
	}
}

// neighbourSeparator returns the separator adjacent to item on the given
// side, climbing ancestors until one with the matching orientation is
// found.
func (m *Item) neighbourSeparator(item *Item, side Side, o Orientation) *Separator {
	itemIndex := -1
	for i, child := range m.visibleChildren(false) {
		if child == item {
			itemIndex = i
			break
		}
	}
	if itemIndex == -1 {
		m.logger().Warn("neighbourSeparator: item not found")
		m.Root().dumpToLogger()
		return nil
	}

	if o != m.orientation {
		if m.IsRoot() {
			return nil
		}
		return m.parent.neighbourSeparator(m, side, o)
	}

	separatorIndex := itemIndex
	if side == Side1 {
		separatorIndex = itemIndex - 1
	}

	if separatorIndex < 0 || separatorIndex >= len(m.separators) {
		return nil
	}
	return m.separators[separatorIndex]
}
