package multisplit

import (
	"go.uber.org/zap"
)

func (m *Item) containerSetSizeRecursive(newSize Size, strategy ChildrenResizeStrategy) {
	m.blockUpdatePercentages = true
	defer func() { m.blockUpdatePercentages = false }()

	minSize := m.MinSize()
	if !minSize.Fits(newSize) {
		m.Root().dumpToLogger()
		m.logger().Warn("new size doesn't respect size constraints",
			zap.Int("width", newSize.Width), zap.Int("height", newSize.Height),
			zap.Int("minWidth", minSize.Width), zap.Int("minHeight", minSize.Height))
		return
	}
	if newSize == m.Size() {
		return
	}

	oldSize := m.Size()
	m.setSize(newSize)

	childSizes := m.sizes(false)

	// #1 Resize the children on paper first: the records must honour the
	// minimums before any real geometry moves.
	m.resizeChildren(oldSize, newSize, childSizes, strategy)

	// the positions:
	m.positionRecords(childSizes)

	// #2 Adjust sizes so that each item has at least its minimum.
	for i := range childSizes {
		if missing := childSizes[i].MissingLength(m.orientation); missing > 0 {
			m.growRecord(i, childSizes, missing, BothSidesEqually, AllNeighbours, false)
		}
	}

	// #3 Records are now correct, apply them to the items.
	m.applyGeometries(childSizes, strategy)
}

// resizeChildren redistributes the container's new length over the child
// sizing records per the given strategy.
func (m *Item) resizeChildren(oldSize, newSize Size, childSizes []SizingInfo, strategy ChildrenResizeStrategy) {
	percentages := m.childPercentages()
	count := len(childSizes)
	widthChanged := oldSize.Width != newSize.Width
	heightChanged := oldSize.Height != newSize.Height
	lengthChanged := (m.isVertical() && heightChanged) || (m.isHorizontal() && widthChanged)
	totalNewLength := m.usableLength()

	switch strategy {
	case ResizePercentage:
		// Each child preserves its relative share; the last one absorbs
		// the rounding remainder.
		remaining := totalNewLength
		for i := 0; i < count; i++ {
			isLast := i == count-1
			record := &childSizes[i]

			newItemLength := record.Length(m.orientation)
			if lengthChanged {
				if isLast {
					newItemLength = remaining
				} else {
					newItemLength = int(percentages[i] * float64(totalNewLength))
				}
			}

			if newItemLength <= 0 {
				m.Root().dumpToLogger()
				m.logger().Warn("invalid resize", zap.Int("newItemLength", newItemLength))
				return
			}

			remaining -= newItemLength

			if m.isVertical() {
				record.SetSize(Size{Width: m.Width(), Height: newItemLength})
			} else {
				record.SetSize(Size{Width: newItemLength, Height: m.Height()})
			}
		}

	case ResizeSide1SeparatorMove, ResizeSide2SeparatorMove:
		remaining := newSize.Sub(oldSize).Length(m.orientation)
		isGrowing := remaining > 0
		if remaining < 0 {
			remaining = -remaining
		}

		// Whether to start resizing at the head or at the tail depends on
		// which side of the separator this container sits: a growing
		// container on the side2 of the separator gives the new space to
		// its first child, and the mirrored cases follow.
		isSide1Move := strategy == ResizeSide1SeparatorMove
		resizeHeadFirst := isGrowing == isSide1Move

		for i := 0; i < count; i++ {
			index := i
			if !resizeHeadFirst {
				index = count - 1 - i
			}
			record := &childSizes[index]

			if isGrowing {
				// Max sizes aren't enforced, the first child takes it all.
				record.IncrementLength(remaining, m.orientation)
				remaining = 0
			} else {
				took := min(record.AvailableLength(m.orientation), remaining)
				record.IncrementLength(-took, m.orientation)
				remaining -= took
			}

			if remaining == 0 {
				break
			}
		}
	}
}

// positionRecords lays the records head to tail along the orientation,
// stretching each across the opposite axis. Records mid-insertion only
// reserve their future separator.
func (m *Item) positionRecords(sizes []SizingInfo) {
	nextPos := 0
	opposite := m.orientation.Opposite()
	for i := range sizes {
		record := &sizes[i]
		if record.IsBeingInserted {
			nextPos += SeparatorThickness
			continue
		}

		record.SetLength(m.Size().Length(opposite), opposite)
		record.SetPos(0, opposite)

		record.SetPos(nextPos, m.orientation)
		nextPos += record.Length(m.orientation) + SeparatorThickness
	}
}

// positionItems recomputes and applies child positions, then refreshes
// separators.
func (m *Item) positionItems() {
	sizes := m.sizes(false)
	m.positionRecords(sizes)
	m.applyPositions(sizes)

	m.updateSeparatorsRecursive()
}

func (m *Item) applyPositions(sizes []SizingInfo) {
	items := m.visibleChildren(false)
	if len(items) != len(sizes) {
		m.logger().Warn("applyPositions: records out of sync",
			zap.Int("items", len(items)), zap.Int("records", len(sizes)))
		return
	}

	opposite := m.orientation.Opposite()
	for i, item := range items {
		record := sizes[i]
		if record.IsBeingInserted {
			continue
		}

		// A horizontal container's children take its height, and vice-versa.
		item.setLengthRecursive(record.Length(opposite), opposite)
		item.setPos(record.Geometry.TopLeft())
	}
}

func (m *Item) applyGeometries(sizes []SizingInfo, strategy ChildrenResizeStrategy) {
	items := m.visibleChildren(false)
	if len(items) != len(sizes) {
		m.logger().Warn("applyGeometries: records out of sync",
			zap.Int("items", len(items)), zap.Int("records", len(sizes)))
		return
	}

	for i, item := range items {
		item.setSizeRecursive(sizes[i].Size(), strategy)
	}

	m.positionItems()
}

// growRecord grows the record at index by missing and debits the same
// amount from its neighbours' records, per the growth and squeeze
// strategies. Only the sizing records change here; geometry is applied
// later.
func (m *Item) growRecord(index int, sizes []SizingInfo, missing int,
	growth GrowthStrategy, squeeze NeighbourSqueezeStrategy, accountForNewSeparator bool) {

	toSteal := missing // the amount the neighbours will shrink
	if accountForNewSeparator {
		toSteal += SeparatorThickness
	}

	if index == -1 || toSteal == 0 {
		return
	}

	// #1 Grow our record.
	record := &sizes[index]
	record.SetLength(record.Length(m.orientation)+missing, m.orientation)
	record.SetOppositeLength(m.oppositeLength(), m.orientation)

	side1Growth := 0
	side2Growth := 0

	switch growth {
	case BothSidesEqually:
		if len(sizes) == 1 {
			// No neighbours to push, we're alone. Occupy the full container.
			record.IncrementLength(missing, m.orientation)
			return
		}

		// #2 Shrink the neighbours by the same amount, split between the
		// sides as evenly as their availability allows.
		side1 := m.lengthOnSide(sizes, index-1, Side1, m.orientation)
		side2 := m.lengthOnSide(sizes, index+1, Side2, m.orientation)

		available1 := side1.available()
		available2 := side2.available()

		if toSteal > available1+available2 {
			m.Root().dumpToLogger()
			m.logger().Warn("growRecord: not enough space in neighbours",
				zap.Int("toSteal", toSteal),
				zap.Int("available", available1+available2))
		}

		for toSteal > 0 {
			if available1 == 0 {
				side2Growth += toSteal
				break
			}
			if available2 == 0 {
				side1Growth += toSteal
				break
			}

			toTake := max(1, toSteal/2)
			took1 := min(toTake, available1)
			toSteal -= took1
			available1 -= took1
			side1Growth += took1
			if toSteal == 0 {
				break
			}

			took2 := min(toTake, available2)
			toSteal -= took2
			available2 -= took2
			side2Growth += took2
		}

	case Side1Only:
		side1Growth = missing
	case Side2Only:
		side2Growth = missing
	}

	m.shrinkNeighbours(index, sizes, side1Growth, side2Growth, squeeze)
}

// growItem grows a child by amount and applies the resulting geometries.
func (m *Item) growItem(item *Item, amount int, growth GrowthStrategy,
	squeeze NeighbourSqueezeStrategy, accountForNewSeparator bool, strategy ChildrenResizeStrategy) {

	index := -1
	for i, child := range m.visibleChildren(false) {
		if child == item {
			index = i
			break
		}
	}
	sizes := m.sizes(false)

	m.growRecord(index, sizes, amount, growth, squeeze, accountForNewSeparator)

	m.applyGeometries(sizes, strategy)
}

// calculateSqueezes distributes needed over the availabilities of the
// given records. AllNeighbours takes round-robin shares from every donor;
// ImmediateNeighboursFirst drains donors in order, reversed when walking
// towards side1.
func (m *Item) calculateSqueezes(sizes []SizingInfo, needed int,
	squeeze NeighbourSqueezeStrategy, reversed bool) []int {

	count := len(sizes)
	availabilities := make([]int, count)
	for i := range sizes {
		availabilities[i] = sizes[i].AvailableLength(m.orientation)
	}

	squeezes := make([]int, count)
	missing := needed

	switch squeeze {
	case AllNeighbours:
		for missing > 0 {
			numDonors := 0
			for _, a := range availabilities {
				if a > 0 {
					numDonors++
				}
			}

			if numDonors == 0 {
				m.Root().dumpToLogger()
				m.logger().Warn("calculateSqueezes: no space left to squeeze",
					zap.Int("missing", missing))
				return squeezes
			}

			toTake := missing / numDonors
			if toTake == 0 {
				toTake = missing
			}

			for i := 0; i < count; i++ {
				available := availabilities[i]
				if available == 0 {
					continue
				}
				took := min(missing, min(toTake, available))
				availabilities[i] -= took
				missing -= took
				squeezes[i] += took
				if missing == 0 {
					break
				}
			}
		}

	case ImmediateNeighboursFirst:
		for i := 0; i < count; i++ {
			index := i
			if reversed {
				index = count - 1 - i
			}

			if available := availabilities[index]; available > 0 {
				took := min(missing, available)
				missing -= took
				squeezes[index] += took
			}

			if missing == 0 {
				break
			}
		}
	}

	if missing < 0 {
		m.logger().Warn("calculateSqueezes: missing went negative", zap.Int("missing", missing))
	}

	return squeezes
}

// shrinkNeighbours debits side1Amount from the records before index and
// side2Amount from the ones after it, in place.
func (m *Item) shrinkNeighbours(index int, sizes []SizingInfo, side1Amount, side2Amount int,
	squeeze NeighbourSqueezeStrategy) {

	if side1Amount > 0 {
		// Towards side1 the immediate neighbour is the last record, so
		// drain in reverse.
		reversed := squeeze == ImmediateNeighboursFirst
		squeezes := m.calculateSqueezes(sizes[:index], side1Amount, squeeze, reversed)
		for i, sq := range squeezes {
			record := &sizes[i]
			// Only the size matters here; positions are settled later.
			record.SetSize(record.Geometry.Adjusted(m.orientation, 0, -sq).Size())
		}
	}

	if side2Amount > 0 {
		squeezes := m.calculateSqueezes(sizes[index+1:], side2Amount, squeeze, false)
		for i, sq := range squeezes {
			record := &sizes[i+index+1]
			record.SetSize(record.Geometry.Adjusted(m.orientation, sq, 0).Size())
		}
	}
}

// updateChildPercentages refreshes each visible child's share of the
// usable length.
func (m *Item) updateChildPercentages() {
	if m.blockUpdatePercentages {
		return
	}

	usable := m.usableLength()
	for _, child := range m.children {
		if child.IsVisible(false) && !child.IsBeingInserted() {
			p := float64(child.length(m.orientation)) / float64(usable)
			child.sizing.PercentageWithinParent = p
			if p == 0.0 || p > 1.0 {
				m.Root().dumpToLogger()
				m.logger().Warn("invalid percentage", zap.Float64("percentage", p),
					zap.Int("length", child.length(m.orientation)))
			}
		} else {
			child.sizing.PercentageWithinParent = 0.0
		}
	}
}

func (m *Item) updateChildPercentagesRecursive() {
	m.updateChildPercentages()
	for _, child := range m.children {
		if child.isContainer {
			child.updateChildPercentagesRecursive()
		}
	}
}

func (m *Item) childPercentages() []float64 {
	percentages := make([]float64, 0, len(m.children))
	for _, child := range m.children {
		if child.IsVisible(false) && !child.IsBeingInserted() {
			percentages = append(percentages, child.sizing.PercentageWithinParent)
		}
	}
	return percentages
}
