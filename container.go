package multisplit

import (
	"go.uber.org/zap"
)

// Container-side behavior of Item: child bookkeeping, size constraints and
// the availability arithmetic the negotiation runs on. Methods here are
// only meaningful on items with the container flag set; the public ones
// warn and bail out on leaves.

// Orientation returns the axis along which the container's children run.
func (m *Item) Orientation() Orientation {
	return m.orientation
}

func (m *Item) isVertical() bool   { return m.orientation == Vertical }
func (m *Item) isHorizontal() bool { return m.orientation == Horizontal }

func (m *Item) setOrientation(o Orientation) {
	if o != m.orientation {
		m.orientation = o
		m.updateSeparatorsRecursive()
	}
}

// NumChildren returns the number of direct children, visible or not.
func (m *Item) NumChildren() int {
	return len(m.children)
}

// NumVisibleChildren returns the number of visible direct children.
func (m *Item) NumVisibleChildren() int {
	num := 0
	for _, child := range m.children {
		if child.IsVisible(false) {
			num++
		}
	}
	return num
}

// Children returns a copy of the direct child list.
func (m *Item) Children() []*Item {
	out := make([]*Item, len(m.children))
	copy(out, m.children)
	return out
}

func (m *Item) isEmpty() bool {
	return len(m.children) == 0
}

func (m *Item) hasChildren() bool {
	return len(m.children) > 0
}

func (m *Item) hasVisibleChildren(excludeBeingInserted bool) bool {
	for _, child := range m.children {
		if child.IsVisible(excludeBeingInserted) {
			return true
		}
	}
	return false
}

func (m *Item) hasSingleVisibleItem() bool {
	return m.NumVisibleChildren() == 1
}

func (m *Item) visibleChildren(includeBeingInserted bool) []*Item {
	items := make([]*Item, 0, len(m.children))
	for _, child := range m.children {
		if includeBeingInserted {
			if child.IsVisible(false) || child.IsBeingInserted() {
				items = append(items, child)
			}
		} else {
			if child.IsVisible(false) && !child.IsBeingInserted() {
				items = append(items, child)
			}
		}
	}
	return items
}

func (m *Item) indexOfChild(item *Item) int {
	for i, child := range m.children {
		if child == item {
			return i
		}
	}
	return -1
}

func (m *Item) indexOfVisibleChild(item *Item) int {
	for i, child := range m.visibleChildren(false) {
		if child == item {
			return i
		}
	}
	return -1
}

// Contains reports whether item is a direct child.
func (m *Item) Contains(item *Item) bool {
	return m.indexOfChild(item) != -1
}

// ContainsRecursive reports whether item is anywhere in this subtree.
func (m *Item) ContainsRecursive(item *Item) bool {
	for _, child := range m.children {
		if child == item {
			return true
		}
		if child.isContainer && child.ContainsRecursive(item) {
			return true
		}
	}
	return false
}

// ItemAt returns the visible direct child containing the point, in this
// container's coordinate space.
func (m *Item) ItemAt(p Point) *Item {
	for _, child := range m.children {
		if child.IsVisible(false) && child.Geometry().Contains(p.X, p.Y) {
			return child
		}
	}
	return nil
}

// ItemAtRecursive descends to the visible leaf containing the point.
func (m *Item) ItemAtRecursive(p Point) *Item {
	if item := m.ItemAt(p); item != nil {
		if item.isContainer {
			return item.ItemAtRecursive(item.MapFromParent(p))
		}
		return item
	}
	return nil
}

// ItemsRecursive returns all leaves in this subtree, depth first.
func (m *Item) ItemsRecursive() []*Item {
	var items []*Item
	for _, child := range m.children {
		if child.isContainer {
			items = append(items, child.ItemsRecursive()...)
		} else {
			items = append(items, child)
		}
	}
	return items
}

// ItemForGuest finds the leaf hosting the guest with the given id.
func (m *Item) ItemForGuest(id string) *Item {
	for _, child := range m.children {
		if child.isContainer {
			if found := child.ItemForGuest(id); found != nil {
				return found
			}
		} else if child.guest != nil && child.guest.ID() == id {
			return child
		}
	}
	return nil
}

func (m *Item) setChildren(children []*Item, o Orientation) {
	m.children = children
	for _, child := range children {
		child.setParentContainer(m)
	}
	m.setOrientation(o)
}

func (m *Item) containerMinSize() Size {
	minW, minH := 0, 0
	numVisible := 0
	for _, child := range m.children {
		if !(child.IsVisible(false) || child.IsBeingInserted()) {
			continue
		}
		numVisible++
		childMin := child.MinSize()
		if m.isVertical() {
			minW = max(minW, childMin.Width)
			minH += childMin.Height
		} else {
			minH = max(minH, childMin.Height)
			minW += childMin.Width
		}
	}
	if numVisible > 0 {
		waste := (numVisible - 1) * SeparatorThickness
		if m.isVertical() {
			minH += waste
		} else {
			minW += waste
		}
	}
	return Size{Width: minW, Height: minH}
}

func (m *Item) containerMaxSize() Size {
	maxW, maxH := 0, 0
	visible := m.visibleChildren(false)
	if len(visible) > 0 {
		for _, child := range visible {
			childMax := child.MaxSize()
			if m.isVertical() {
				maxW = min(maxW, childMax.Width)
				maxH += childMax.Height
			} else {
				maxH = min(maxH, childMax.Height)
				maxW += childMax.Width
			}
		}
		waste := (len(visible) - 1) * SeparatorThickness
		if m.isVertical() {
			maxH += waste
		} else {
			maxW += waste
		}
	}
	return Size{Width: maxW, Height: maxH}
}

// containerLength is the container's extent along its own orientation.
func (m *Item) containerLength() int {
	if m.isVertical() {
		return m.Height()
	}
	return m.Width()
}

// oppositeLength is the container's extent across its orientation.
func (m *Item) oppositeLength() int {
	if m.isVertical() {
		return m.Width()
	}
	return m.Height()
}

// usableLength is the container's length minus separator waste.
func (m *Item) usableLength() int {
	visible := m.visibleChildren(false)
	if len(visible) <= 1 {
		return m.Size().Length(m.orientation)
	}
	waste := SeparatorThickness * (len(visible) - 1)
	return m.containerLength() - waste
}

// availableSize is the slack between current and minimum size,
// componentwise.
func (m *Item) availableSize() Size {
	return m.Size().Sub(m.MinSize())
}

func (m *Item) availableLength() int {
	if m.isVertical() {
		return m.availableSize().Height
	}
	return m.availableSize().Width
}

// lengthOnSide sums length and min-length over the run of sizes on one
// side of fromIndex, inclusive.
func (m *Item) lengthOnSide(sizes []SizingInfo, fromIndex int, side Side, o Orientation) lengthOnSide {
	if fromIndex < 0 || fromIndex >= len(sizes) {
		return lengthOnSide{}
	}

	start, end := 0, fromIndex
	if side == Side2 {
		start, end = fromIndex, len(sizes)-1
	}

	var result lengthOnSide
	for i := start; i <= end; i++ {
		result.length += sizes[i].Length(o)
		result.minLength += sizes[i].MinLength(o)
	}
	return result
}

func (m *Item) neighboursLengthFor(item *Item, side Side, o Orientation) int {
	children := m.visibleChildren(false)
	index := -1
	for i, child := range children {
		if child == item {
			index = i
			break
		}
	}
	if index == -1 {
		m.logger().Warn("neighboursLengthFor: item not found")
		return 0
	}

	if o != m.orientation {
		// No neighbours in the other orientation. Each container is
		// bidimensional.
		return 0
	}

	start, end := 0, index-1
	if side == Side2 {
		start, end = index+1, len(children)-1
	}
	length := 0
	for i := start; i <= end; i++ {
		length += children[i].length(m.orientation)
	}
	return length
}

func (m *Item) neighboursLengthForRecursive(item *Item, side Side, o Orientation) int {
	n := m.neighboursLengthFor(item, side, o)
	if m.IsRoot() {
		return n
	}
	return n + m.parent.neighboursLengthForRecursive(m, side, o)
}

func (m *Item) neighboursMinLengthFor(item *Item, side Side, o Orientation) int {
	children := m.visibleChildren(false)
	index := -1
	for i, child := range children {
		if child == item {
			index = i
			break
		}
	}
	if index == -1 {
		m.logger().Warn("neighboursMinLengthFor: item not found")
		return 0
	}

	if o != m.orientation {
		return 0
	}

	start, end := 0, index-1
	if side == Side2 {
		start, end = index+1, len(children)-1
	}
	minLength := 0
	for i := start; i <= end; i++ {
		minLength += children[i].minLength(m.orientation)
	}
	return minLength
}

// availableOnSide is the slack the visible neighbours of child on the
// given side can yield before hitting their minimums.
func (m *Item) availableOnSide(child *Item, side Side) int {
	length := m.neighboursLengthFor(child, side, m.orientation)
	minLen := m.neighboursMinLengthFor(child, side, m.orientation)
	available := length - minLen
	if available < 0 {
		m.logger().Warn("negative availability", zap.Int("available", available))
		m.Root().dumpToLogger()
	}
	return available
}

// availableOnSideRecursive extends availableOnSide across ancestors that
// share the orientation.
func (m *Item) availableOnSideRecursive(child *Item, side Side, o Orientation) int {
	if o == m.orientation {
		available := m.availableOnSide(child, side)
		if m.IsRoot() {
			return available
		}
		return available + m.parent.availableOnSideRecursive(m, side, o)
	}
	if m.IsRoot() {
		return 0
	}
	return m.parent.availableOnSideRecursive(m, side, o)
}

func (m *Item) visibleNeighbourFor(item *Item, side Side) *Item {
	// The item itself may be hidden, so walk the full child list.
	index := m.indexOfChild(item)

	if side == Side1 {
		for i := index - 1; i >= 0; i-- {
			if m.children[i].IsVisible(false) {
				return m.children[i]
			}
		}
	} else {
		for i := index + 1; i < len(m.children); i++ {
			if m.children[i].IsVisible(false) {
				return m.children[i]
			}
		}
	}
	return nil
}

// sizes snapshots the sizing records of the visible children. Container
// children get their computed min size baked in first.
func (m *Item) sizes(includeBeingInserted bool) []SizingInfo {
	children := m.visibleChildren(includeBeingInserted)
	result := make([]SizingInfo, 0, len(children))
	for _, child := range children {
		if child.isContainer {
			child.sizing.MinSize = child.MinSize()
		}
		result = append(result, child.sizing)
	}
	return result
}

func (m *Item) updateSizeConstraints() {
	missing := m.missingSize()
	if !missing.IsZero() && m.IsRoot() {
		// Resize the whole layout.
		m.containerSetSizeRecursive(m.Size().Add(missing), ResizePercentage)
	}

	// Min size changed, notify upwards until it reaches the root.
	m.emit(MinSizeChanged{Item: m})
	if m.parent != nil {
		m.parent.onChildMinSizeChanged(m)
	}
}

func (m *Item) onChildMinSizeChanged(child *Item) {
	if m.convertingToContainer || m.deserializing || !child.IsVisible(false) {
		return
	}

	m.updateSizeConstraints()

	if child.IsBeingInserted() {
		return
	}

	if m.NumVisibleChildren() == 1 {
		// The easy case. Child is alone in the layout, occupies everything.
		child.SetGeometry(m.Rect())
		m.updateChildPercentages()
		return
	}

	missing := child.missingSize()
	if !missing.IsZero() {
		m.growItem(child, missing.Length(m.orientation), BothSidesEqually, AllNeighbours, false, ResizePercentage)
	}

	m.updateChildPercentages()
}

func (m *Item) onChildVisibleChanged(_ *Item, visible bool) {
	if m.deserializing {
		return
	}

	numVisible := m.NumVisibleChildren()
	if (visible && numVisible == 1) || (!visible && numVisible == 0) {
		// Container went from empty to populated or vice versa.
		m.emit(VisibleChanged{Item: m, Visible: visible})
		if m.parent != nil {
			m.parent.onChildVisibleChanged(m, visible)
		}
	}
	m.emit(NumVisibleItemsChanged{Count: m.Root().VisibleCountRecursive()})
}
