package multisplit

// RemoveItem takes item out of the layout. With hardRemove the item is
// detached for good; otherwise it stays in the tree as a hidden
// placeholder that a later Restore can bring back. Either way the visible
// neighbours split the freed space between them, and containers left empty
// collapse away.
func (m *Item) RemoveItem(item *Item, hardRemove bool) {
	if item.IsRoot() {
		m.logger().Warn("the root can't be removed")
		return
	}

	if !m.Contains(item) {
		// Not ours, ask the real parent.
		item.parent.RemoveItem(item, hardRemove)
		return
	}

	side1Item := m.visibleNeighbourFor(item, Side1)
	side2Item := m.visibleNeighbourFor(item, Side2)

	isContainer := item.isContainer
	wasVisible := !isContainer && item.IsVisible(false)

	if hardRemove {
		index := m.indexOfChild(item)
		m.children = append(m.children[:index], m.children[index+1:]...)
		item.parent = nil
		if !isContainer {
			m.emit(NumItemsChanged{Count: m.Root().CountRecursive()})
		}
	} else {
		item.setIsVisible(false)
		item.guest = nil
		item.updateName()

		if !wasVisible && !isContainer {
			// Was already hidden.
			return
		}
	}

	if wasVisible {
		m.emit(NumVisibleItemsChanged{Count: m.Root().VisibleCountRecursive()})
	}

	if m.isEmpty() {
		// An empty container is useless, remove it too.
		if m.parent != nil {
			m.parent.RemoveItem(m, true)
		}
	} else if !m.hasVisibleChildren(false) {
		// Only placeholders left. Hide from the parent and release the
		// space, whichever kind of removal emptied us.
		if m.parent != nil {
			m.parent.RemoveItem(m, false)
			m.SetGeometry(Rect{})
		}
	} else {
		// Neighbours occupy the space of the removed item.
		m.growNeighbours(side1Item, side2Item)
		m.emit(ItemsChanged{Container: m})

		m.updateSizeConstraints()
		m.updateSeparatorsRecursive()
	}
}

// Clear removes every child, recursively.
func (m *Item) Clear() {
	for _, child := range m.children {
		if child.isContainer {
			child.Clear()
		}
		child.parent = nil
	}
	m.children = nil
	m.removeSeparators()
}

// growNeighbours stretches the given neighbours over the gap between
// them. With both present each takes half; with only one it grows to the
// container's edge on the vacated side.
func (m *Item) growNeighbours(side1Neighbour, side2Neighbour *Item) {
	if side1Neighbour == nil && side2Neighbour == nil {
		return
	}

	switch {
	case side1Neighbour != nil && side2Neighbour != nil:
		geo1 := side1Neighbour.Geometry()
		geo2 := side2Neighbour.Geometry()

		if m.isVertical() {
			available := geo2.Y - geo1.Bottom() - SeparatorThickness
			geo1.Height += available / 2
			newTop := geo1.Bottom() + SeparatorThickness
			geo2.Height += geo2.Y - newTop
			geo2.Y = newTop
		} else {
			available := geo2.X - geo1.Right() - SeparatorThickness
			geo1.Width += available / 2
			newLeft := geo1.Right() + SeparatorThickness
			geo2.Width += geo2.X - newLeft
			geo2.X = newLeft
		}

		side1Neighbour.setGeometryRecursive(geo1)
		side2Neighbour.setGeometryRecursive(geo2)

	case side1Neighbour != nil:
		// Grow all the way to the right (or bottom if vertical).
		geo := side1Neighbour.Geometry()
		if m.isVertical() {
			geo.Height = m.Height() - geo.Y
		} else {
			geo.Width = m.Width() - geo.X
		}
		side1Neighbour.setGeometryRecursive(geo)

	case side2Neighbour != nil:
		// Grow all the way to the left (or top if vertical).
		geo := side2Neighbour.Geometry()
		if m.isVertical() {
			geo.Height += geo.Y
			geo.Y = 0
		} else {
			geo.Width += geo.X
			geo.X = 0
		}
		side2Neighbour.setGeometryRecursive(geo)
	}
}
