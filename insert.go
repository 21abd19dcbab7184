package multisplit

import (
	"go.uber.org/zap"
)

// InsertItem places item next to the receiver. On a container, side1
// locations prepend and side2 locations append; when the location's axis
// crosses the container's orientation the layout is re-rooted first. On a
// leaf, the new item becomes the leaf's immediate neighbour, splitting the
// leaf's parent, which may require wrapping the leaf in a new nested
// container. A hidden placeholder can't serve as the insertion anchor;
// Restore it first.
func (m *Item) InsertItem(item *Item, loc Location, mode DefaultSizeMode, option AddingOption) {
	if item == m {
		m.logger().Warn("item can't be inserted relative to itself")
		return
	}
	if loc == LocationNone {
		m.logger().Warn("invalid location")
		return
	}
	if !m.isContainer && m.IsPlaceholder() {
		// Splitting a hidden spot would resurrect it as a guest-less
		// visible leaf. Restore it first.
		m.logger().Warn("can't insert relative to a hidden placeholder", zap.String("item", m.name))
		return
	}
	if m.isContainer {
		m.containerInsertItem(item, loc, mode, option)
		return
	}
	m.leafInsertItem(item, loc, mode, option)
}

func (m *Item) leafInsertItem(item *Item, loc Location, mode DefaultSizeMode, option AddingOption) {
	item.setIsVisible(option&AddingOptionStartHidden == 0)

	if m.parent.hasOrientationFor(loc) {
		index := m.parent.indexOfChild(m)
		if !loc.IsSide1() {
			index++
		}

		if o := loc.Orientation(); o != m.parent.orientation {
			// Single-child containers are both vertical and horizontal;
			// the first real split pins the orientation.
			m.parent.setOrientation(o)
		}

		m.parent.insertItemAt(item, index, mode)
	} else {
		container := m.parent.convertChildToContainer(m)
		container.containerInsertItem(item, loc, mode, option)
	}
}

func (m *Item) hasOrientationFor(loc Location) bool {
	if len(m.children) <= 1 {
		return true
	}
	return m.orientation == loc.Orientation()
}

func (m *Item) containerInsertItem(item *Item, loc Location, mode DefaultSizeMode, option AddingOption) {
	if m.Contains(item) {
		m.logger().Warn("item already exists in container")
		return
	}

	if option&AddingOptionStartHidden != 0 && item.isContainer {
		m.logger().Warn("containers can't start hidden")
		option &^= AddingOptionStartHidden
	}
	item.setIsVisible(option&AddingOptionStartHidden == 0)

	if m.hasOrientationFor(loc) {
		if len(m.children) == 1 {
			// 2 items is the minimum to know which orientation we're
			// laid out in.
			m.orientation = loc.Orientation()
		}
		index := 0
		if !loc.IsSide1() {
			index = len(m.children)
		}
		m.insertItemAt(item, index, mode)
	} else {
		if !m.IsRoot() {
			m.logger().Warn("cross-orientation insertion on a non-root container")
			return
		}

		// Re-root: wrap the current children in a new child container
		// and flip our orientation so the insertion axis fits.
		container := newContainer(m.host, m)
		container.SetGeometry(m.Rect())
		container.setChildren(m.children, m.orientation)
		m.children = nil
		m.setOrientation(m.orientation.Opposite())
		m.insertItemAt(container, 0, DefaultSizeNone)

		// Now we have the correct orientation, we can insert.
		m.containerInsertItem(item, loc, mode, option)

		if !container.hasVisibleChildren(false) {
			container.SetGeometry(Rect{})
		}
		return
	}

	m.updateSeparatorsRecursive()
	m.checkSanityAfterMutation()
}

func (m *Item) insertItemAt(item *Item, index int, mode DefaultSizeMode) {
	if mode != DefaultSizeNone {
		// Choose a nice size for the item we're adding.
		suggested := m.defaultLengthFor(item, mode)
		item.setLengthRecursive(suggested, m.orientation)
	}

	m.children = append(m.children, nil)
	copy(m.children[index+1:], m.children[index:])
	m.children[index] = item
	item.setParentContainer(m)

	m.emit(ItemsChanged{Container: m})

	if !m.convertingToContainer && item.IsVisible(false) {
		m.restoreChild(item, AllNeighbours)
	}

	if !item.isContainer {
		root := m.Root()
		if item.IsVisible(false) {
			m.emit(NumVisibleItemsChanged{Count: root.VisibleCountRecursive()})
		}
		m.emit(NumItemsChanged{Count: root.CountRecursive()})
	}
}

// convertChildToContainer wraps a leaf in a new container occupying the
// leaf's spot, so the leaf can be split along the crossing axis.
func (m *Item) convertChildToContainer(leaf *Item) *Item {
	m.convertingToContainer = true
	defer func() { m.convertingToContainer = false }()

	index := m.indexOfChild(leaf)
	if index == -1 {
		m.logger().Warn("convertChildToContainer: leaf is not ours")
		return nil
	}

	container := newContainer(m.host, m)
	m.insertItemAt(container, index, DefaultSizeNone)
	m.children = append(m.children[:m.indexOfChild(leaf)], m.children[m.indexOfChild(leaf)+1:]...)
	container.SetGeometry(leaf.Geometry())
	container.containerInsertItem(leaf, LocationOnTop, DefaultSizeNone, AddingOptionNone)
	m.emit(ItemsChanged{Container: m})
	m.updateSeparatorsRecursive()

	return container
}

// restoreChild gives a newly visible child real space: ancestors are
// unhidden, the root grows if the minimums demand it, and the child then
// steals its length from the neighbours.
func (m *Item) restoreChild(item *Item, squeeze NeighbourSqueezeStrategy) {
	if !m.Contains(item) {
		m.logger().Warn("restoreChild: item is not ours", zap.String("item", item.name))
		return
	}

	hadVisibleChildren := m.hasVisibleChildren(true)
	item.setIsVisible(true)
	item.setBeingInserted(true)

	if !hadVisibleChildren {
		// This container was hidden and will now be restored too, since
		// a child was restored.
		if m.parent != nil {
			m.setSize(item.Size())
			m.parent.restoreChild(m, squeeze)
		}
	}

	// Make sure the root is big enough to respect all minimums.
	m.updateSizeConstraints()

	item.setBeingInserted(false)

	if m.NumVisibleChildren() == 1 {
		// The easy case. Child is alone in the layout, occupies everything.
		item.setGeometryRecursive(m.Rect())
		m.updateSeparatorsRecursive()
		return
	}

	available := m.availableOnSide(item, Side1) + m.availableOnSide(item, Side2) - SeparatorThickness

	minLen := item.minLength(m.orientation)
	proposed := item.length(m.orientation)
	newLength := clampInt(proposed, minLen, available)

	// growItem grows by exactly what it steals from the neighbours, so
	// the item's length must be zeroed first.
	if m.isVertical() {
		item.sizing.Geometry.Height = 0
	} else {
		item.sizing.Geometry.Width = 0
	}

	m.growItem(item, newLength, BothSidesEqually, squeeze, true, ResizePercentage)
	m.updateSeparatorsRecursive()
}

func (m *Item) defaultLengthFor(item *Item, mode DefaultSizeMode) int {
	result := 0
	switch mode {
	case DefaultSizeNone:
	case DefaultSizeFair:
		numVisible := m.NumVisibleChildren() + 1 // count the item being added too
		usable := m.containerLength() - SeparatorThickness*(numVisible-1)
		result = usable / numVisible
	case DefaultSizeFairButFloor:
		fair := m.defaultLengthFor(item, DefaultSizeFair)
		result = min(fair, item.length(m.orientation))
	case DefaultSizeItemSize:
		result = item.length(m.orientation)
	}
	return max(item.minLength(m.orientation), result)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
