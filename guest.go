package multisplit

// Guest is the opaque capability hosted inside a leaf item. The engine
// never looks behind this interface; rendering and widget management
// belong to the caller.
type Guest interface {
	// ID identifies the guest for serialization correlation. Restoring a
	// snapshot looks guests up by this id.
	ID() string

	// MinSize reports the guest's minimum size. It is floored to
	// HardcodedMinimumSize when adopted by an item.
	MinSize() Size

	// PreferredGeometry reports the geometry the guest would like, in
	// root coordinates. Used as the item's initial geometry when the item
	// has none yet. May return an empty Rect.
	PreferredGeometry() Rect

	// SetGeometry pushes the item's current geometry, mapped to root
	// coordinates, into the guest. Called synchronously whenever the
	// item's geometry changes.
	SetGeometry(Rect)
}

// guestMinSize returns the guest's min size floored to the hardcoded
// minimum, the only size the engine will actually honour.
func guestMinSize(g Guest) Size {
	return g.MinSize().ExpandedTo(HardcodedMinimumSize)
}
