package multisplit

import (
	"go.uber.org/zap"
)

// SuggestedDropRect returns the geometry, in root coordinates, that item
// would get if dropped at loc relative to relativeTo (or relative to this
// container when relativeTo is nil). The layout is serialized into an
// invisible clone and the insertion actually runs there, so the preview
// matches the eventual drop exactly. When the window would have to grow
// to fit the item, a heuristic rect is returned instead.
func (m *Item) SuggestedDropRect(item *Item, relativeTo *Item, loc Location) Rect {
	if relativeTo != nil && relativeTo.parent == nil {
		m.logger().Warn("suggested drop rect: relativeTo has no parent container")
		return Rect{}
	}
	if relativeTo != nil && relativeTo.parent != m {
		m.logger().Warn("suggested drop rect: called on the wrong container")
		return Rect{}
	}
	if relativeTo != nil && !relativeTo.IsVisible(false) {
		m.logger().Warn("suggested drop rect: relativeTo isn't visible")
		return Rect{}
	}
	if loc == LocationNone {
		m.logger().Warn("suggested drop rect: invalid location")
		return Rect{}
	}

	root := m.Root()
	availableSize := root.availableSize()
	minSize := item.MinSize()
	isEmpty := !root.hasVisibleChildren(false)

	extraWidth, extraHeight := 0, 0
	if !isEmpty {
		if loc.IsVertical() {
			extraHeight = SeparatorThickness
		} else {
			extraWidth = SeparatorThickness
		}
	}

	windowNeedsGrowing := availableSize.Width < minSize.Width+extraWidth ||
		availableSize.Height < minSize.Height+extraHeight
	if windowNeedsGrowing {
		return m.suggestedDropRectFallback(item, relativeTo, loc)
	}

	rootCopy := root.cloneDummy()
	itemCopy := item.cloneDummy()

	if relativeTo != nil {
		relativeCopy := rootCopy.ItemFromPath(relativeTo.PathFromRoot())
		if relativeCopy == nil {
			return m.suggestedDropRectFallback(item, relativeTo, loc)
		}
		relativeCopy.InsertItem(itemCopy, loc, DefaultSizeFairButFloor, AddingOptionNone)
	} else {
		rootCopy.InsertItem(itemCopy, loc, DefaultSizeFairButFloor, AddingOptionNone)
	}

	if rootCopy.Size() != root.Size() {
		m.logger().Warn("suggested drop rect: the root copy grew",
			zap.Int("copyWidth", rootCopy.Width()), zap.Int("rootWidth", root.Width()))
		return m.suggestedDropRectFallback(item, relativeTo, loc)
	}

	return itemCopy.MapRectToRoot(itemCopy.Rect())
}

// suggestedDropRectFallback approximates the drop rect without the
// simulation: half of relativeTo on the dropped side, or a one-third slice
// of the root clamped between the item's minimum and the available slack.
func (m *Item) suggestedDropRectFallback(item *Item, relativeTo *Item, loc Location) Rect {
	locOrientation := loc.Orientation()
	itemMin := item.MinSize().Length(locOrientation)
	available := m.availableSize().Length(locOrientation) - SeparatorThickness

	if relativeTo != nil {
		relativeToGeo := relativeTo.Geometry()
		suggestedLength := relativeTo.length(loc.Orientation()) / 2

		suggestedPos := 0
		switch loc {
		case LocationOnLeft:
			suggestedPos = relativeToGeo.X
		case LocationOnTop:
			suggestedPos = relativeToGeo.Y
		case LocationOnRight:
			suggestedPos = relativeToGeo.Right() - suggestedLength
		case LocationOnBottom:
			suggestedPos = relativeToGeo.Bottom() - suggestedLength
		}

		var rect Rect
		if loc.Orientation() == Vertical {
			rect = NewRect(relativeTo.X(), suggestedPos, relativeTo.Width(), suggestedLength)
		} else {
			rect = NewRect(suggestedPos, relativeTo.Y(), suggestedLength, relativeTo.Height())
		}

		return m.MapRectToRoot(rect)
	}

	if m.IsRoot() {
		// Relative to the window itself.
		rect := m.Rect()
		oneThird := m.length(locOrientation) / 3
		suggestedLength := max(min(available, oneThird), itemMin)

		switch loc {
		case LocationOnLeft:
			rect.Width = suggestedLength
		case LocationOnTop:
			rect.Height = suggestedLength
		case LocationOnRight:
			rect.X = rect.Width - suggestedLength
			rect.Width = suggestedLength
		case LocationOnBottom:
			rect.Y = rect.Height - suggestedLength
			rect.Height = suggestedLength
		case LocationNone:
			return Rect{}
		}

		return rect
	}

	m.logger().Warn("suggested drop rect fallback: unexpected container")
	return Rect{}
}
