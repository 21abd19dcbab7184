package multisplit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove_SoftKeepsPlaceholder(t *testing.T) {
	root := newTestRoot(t, 800, 600)
	a := NewItem(newGuest("a"))
	b := NewItem(newGuest("b"))
	root.InsertItem(a, LocationOnLeft, DefaultSizeFair, AddingOptionNone)
	a.InsertItem(b, LocationOnRight, DefaultSizeFair, AddingOptionNone)

	root.RemoveItem(a, false)

	assert.True(t, a.IsPlaceholder())
	assert.Equal(t, 2, root.CountRecursive())
	assert.Equal(t, 1, root.VisibleCountRecursive())
	assert.Equal(t, NewRect(0, 0, 800, 600), b.Geometry(), "survivor takes the whole root")
	assert.Empty(t, root.Separators())
	requireSane(t, root)

	a.Restore(newGuest("a2"))
	assert.Equal(t, NewRect(0, 0, 398, 600), a.Geometry(), "restored into its old slot")
	assert.Equal(t, NewRect(403, 0, 397, 600), b.Geometry())
	requireSane(t, root)
}

func TestRemove_HardSplitsSpaceBetweenNeighbours(t *testing.T) {
	root := newTestRoot(t, 800, 600)
	a := NewItem(newGuest("a"))
	b := NewItem(newGuest("b"))
	c := NewItem(newGuest("c"))
	root.InsertItem(a, LocationOnLeft, DefaultSizeFair, AddingOptionNone)
	a.InsertItem(b, LocationOnRight, DefaultSizeFair, AddingOptionNone)
	b.InsertItem(c, LocationOnRight, DefaultSizeFair, AddingOptionNone)
	require.Equal(t, 3, root.VisibleCountRecursive())

	root.RemoveItem(b, true)

	// b's slot is shared evenly between its two neighbours.
	assert.Equal(t, 2, root.CountRecursive())
	assert.Equal(t, NewRect(0, 0, 398, 600), a.Geometry())
	assert.Equal(t, NewRect(403, 0, 397, 600), c.Geometry())
	require.Len(t, root.Separators(), 1)
	assert.Equal(t, 398, root.Separators()[0].Position())
	requireSane(t, root)
}

func TestRemove_EdgeItemGivesAllToSingleNeighbour(t *testing.T) {
	root := newTestRoot(t, 800, 600)
	a := NewItem(newGuest("a"))
	b := NewItem(newGuest("b"))
	root.InsertItem(a, LocationOnLeft, DefaultSizeFair, AddingOptionNone)
	a.InsertItem(b, LocationOnRight, DefaultSizeFair, AddingOptionNone)

	root.RemoveItem(b, true)

	assert.Equal(t, 1, root.CountRecursive())
	assert.Equal(t, NewRect(0, 0, 800, 600), a.Geometry())
	assert.Empty(t, root.Separators())
	requireSane(t, root)
}

func TestRemove_EmptyContainerCollapses(t *testing.T) {
	root := newTestRoot(t, 800, 600)
	a := NewItem(newGuest("a"))
	b := NewItem(newGuest("b"))
	c := NewItem(newGuest("c"))
	root.InsertItem(a, LocationOnLeft, DefaultSizeFair, AddingOptionNone)
	a.InsertItem(b, LocationOnRight, DefaultSizeFair, AddingOptionNone)
	b.InsertItem(c, LocationOnBottom, DefaultSizeFair, AddingOptionNone)

	inner := b.Parent()
	require.NotSame(t, root, inner)

	root.RemoveItem(b, true)
	root.RemoveItem(c, true)

	// The emptied inner container is gone with its children.
	assert.Equal(t, 1, root.CountRecursive())
	assert.Nil(t, inner.Parent())
	assert.Equal(t, NewRect(0, 0, 800, 600), a.Geometry())
	requireSane(t, root)
}

func TestRemove_ContainerWithOnlyPlaceholdersHides(t *testing.T) {
	root := newTestRoot(t, 800, 600)
	a := NewItem(newGuest("a"))
	b := NewItem(newGuest("b"))
	c := NewItem(newGuest("c"))
	root.InsertItem(a, LocationOnLeft, DefaultSizeFair, AddingOptionNone)
	a.InsertItem(b, LocationOnRight, DefaultSizeFair, AddingOptionNone)
	b.InsertItem(c, LocationOnBottom, DefaultSizeFair, AddingOptionNone)
	inner := b.Parent()

	root.RemoveItem(b, false)
	root.RemoveItem(c, false)

	// Placeholders keep the subtree alive, but the container no longer
	// occupies space.
	assert.Equal(t, 3, root.CountRecursive())
	assert.Equal(t, 1, root.VisibleCountRecursive())
	assert.False(t, inner.IsVisible(false))
	assert.NotNil(t, inner.Parent())
	assert.Equal(t, NewRect(0, 0, 800, 600), a.Geometry())
	requireSane(t, root)
}

func TestRemove_HardRemoveLastVisibleHidesContainer(t *testing.T) {
	root := newTestRoot(t, 800, 600)
	a := NewItem(newGuest("a"))
	b := NewItem(newGuest("b"))
	c := NewItem(newGuest("c"))
	root.InsertItem(a, LocationOnLeft, DefaultSizeFair, AddingOptionNone)
	a.InsertItem(b, LocationOnRight, DefaultSizeFair, AddingOptionNone)
	b.InsertItem(c, LocationOnBottom, DefaultSizeFair, AddingOptionNone)
	inner := b.Parent()
	require.NotSame(t, root, inner)

	root.RemoveItem(c, false)

	// Hard-removing the container's last visible child leaves it holding
	// only a placeholder; it must hide and release its space.
	root.RemoveItem(b, true)

	assert.Same(t, root, inner.Parent())
	assert.False(t, inner.IsVisible(false))
	assert.Equal(t, NewRect(0, 0, 800, 600), a.Geometry())
	assert.Len(t, root.SeparatorsRecursive(), 0)
	assert.Equal(t, 1, root.VisibleCountRecursive())
	requireSane(t, root)
}

func TestRemove_AlreadyHiddenIsNoOp(t *testing.T) {
	root := newTestRoot(t, 800, 600)
	a := NewItem(newGuest("a"))
	b := NewItem(newGuest("b"))
	root.InsertItem(a, LocationOnLeft, DefaultSizeFair, AddingOptionNone)
	a.InsertItem(b, LocationOnRight, DefaultSizeFair, AddingOptionNone)

	root.RemoveItem(b, false)
	before := root.DumpLayout()

	root.RemoveItem(b, false)
	assert.Equal(t, before, root.DumpLayout())
	requireSane(t, root)
}

func TestClear(t *testing.T) {
	root := newTestRoot(t, 800, 600)
	a := NewItem(newGuest("a"))
	b := NewItem(newGuest("b"))
	root.InsertItem(a, LocationOnLeft, DefaultSizeFair, AddingOptionNone)
	a.InsertItem(b, LocationOnRight, DefaultSizeFair, AddingOptionNone)

	root.Clear()

	assert.Equal(t, 0, root.CountRecursive())
	assert.Empty(t, root.Separators())
	assert.Nil(t, a.Parent())
	requireSane(t, root)
}
