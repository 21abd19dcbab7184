package multisplit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert_SideBySideSplitIsFair(t *testing.T) {
	root := newTestRoot(t, 800, 600)
	a := NewItem(newGuest("a"))
	b := NewItem(newGuest("b"))
	root.InsertItem(a, LocationOnLeft, DefaultSizeFair, AddingOptionNone)

	a.InsertItem(b, LocationOnRight, DefaultSizeFair, AddingOptionNone)

	// 800 minus one separator splits into 398 + 397.
	assert.Equal(t, NewRect(0, 0, 398, 600), a.Geometry())
	assert.Equal(t, NewRect(403, 0, 397, 600), b.Geometry())

	seps := root.Separators()
	require.Len(t, seps, 1)
	assert.Equal(t, 398, seps[0].Position())
	assert.Equal(t, NewRect(398, 0, SeparatorThickness, 600), seps[0].Geometry())
	requireSane(t, root)
}

func TestInsert_OrientationPinnedBySecondChild(t *testing.T) {
	root := newTestRoot(t, 800, 600)
	a := NewItem(newGuest("a"))
	b := NewItem(newGuest("b"))
	root.InsertItem(a, LocationOnLeft, DefaultSizeFair, AddingOptionNone)
	require.Equal(t, 1, root.NumChildren())

	// A single-child container takes whatever orientation the next
	// insertion needs.
	a.InsertItem(b, LocationOnBottom, DefaultSizeFair, AddingOptionNone)

	assert.Equal(t, Vertical, root.Orientation())
	assert.Equal(t, 2, root.NumChildren())
	assert.Equal(t, a.Width(), b.Width())
	assert.Equal(t, 600, a.Height()+SeparatorThickness+b.Height())
	requireSane(t, root)
}

func TestInsert_CrossAxisWrapsLeafInContainer(t *testing.T) {
	root := newTestRoot(t, 800, 600)
	a := NewItem(newGuest("a"))
	b := NewItem(newGuest("b"))
	c := NewItem(newGuest("c"))
	root.InsertItem(a, LocationOnLeft, DefaultSizeFair, AddingOptionNone)
	a.InsertItem(b, LocationOnRight, DefaultSizeFair, AddingOptionNone)
	bGeo := b.Geometry()

	// Splitting b vertically inside a horizontal container wraps b in a
	// new vertical container occupying b's old slot.
	b.InsertItem(c, LocationOnBottom, DefaultSizeFair, AddingOptionNone)

	inner := b.Parent()
	require.NotNil(t, inner)
	assert.NotSame(t, root, inner)
	assert.True(t, inner.IsContainer())
	assert.Equal(t, Vertical, inner.Orientation())
	assert.Equal(t, bGeo, inner.Geometry())

	assert.Equal(t, bGeo.Width, b.Width())
	assert.Equal(t, bGeo.Width, c.Width())
	assert.Equal(t, bGeo.Height, b.Height()+SeparatorThickness+c.Height())
	assert.Equal(t, NewRect(0, 0, 398, 600), a.Geometry(), "sibling untouched")
	requireSane(t, root)
}

func TestInsert_RootPromotion(t *testing.T) {
	root := newTestRoot(t, 800, 600)
	a := NewItem(newGuest("a"))
	b := NewItem(newGuest("b"))
	c := NewItem(newGuest("c"))
	root.InsertItem(a, LocationOnLeft, DefaultSizeFair, AddingOptionNone)
	a.InsertItem(b, LocationOnRight, DefaultSizeFair, AddingOptionNone)
	require.Equal(t, Horizontal, root.Orientation())

	// Inserting into the root against its orientation wraps the existing
	// children in an inner container and flips the root.
	root.InsertItem(c, LocationOnBottom, DefaultSizeFair, AddingOptionNone)

	assert.Equal(t, Vertical, root.Orientation())
	require.Equal(t, 2, root.NumChildren())

	inner := a.Parent()
	assert.True(t, inner.IsContainer())
	assert.Equal(t, Horizontal, inner.Orientation())
	assert.Same(t, root, inner.Parent())

	assert.Equal(t, 800, c.Width())
	assert.Equal(t, 600, inner.Height()+SeparatorThickness+c.Height())
	requireSane(t, root)
}

func TestInsert_StartHidden(t *testing.T) {
	root := newTestRoot(t, 800, 600)
	a := NewItem(newGuest("a"))
	b := NewItem(newGuest("b"))
	root.InsertItem(a, LocationOnLeft, DefaultSizeFair, AddingOptionNone)

	a.InsertItem(b, LocationOnRight, DefaultSizeFair, AddingOptionStartHidden)

	assert.False(t, b.IsVisible(false))
	assert.True(t, b.IsPlaceholder())
	assert.Equal(t, 2, root.CountRecursive())
	assert.Equal(t, 1, root.VisibleCountRecursive())
	assert.Equal(t, NewRect(0, 0, 800, 600), a.Geometry(), "hidden insert steals no space")
	assert.Empty(t, root.Separators())
	requireSane(t, root)
}

func TestInsert_RejectsSelfAndDuplicates(t *testing.T) {
	root := newTestRoot(t, 800, 600)
	a := NewItem(newGuest("a"))
	root.InsertItem(a, LocationOnLeft, DefaultSizeFair, AddingOptionNone)

	root.InsertItem(a, LocationOnRight, DefaultSizeFair, AddingOptionNone)
	assert.Equal(t, 1, root.CountRecursive(), "re-inserting an existing child is ignored")

	a.InsertItem(a, LocationOnRight, DefaultSizeFair, AddingOptionNone)
	assert.Equal(t, 1, root.CountRecursive())
	requireSane(t, root)
}

func TestInsert_RejectsPlaceholderAnchor(t *testing.T) {
	root := newTestRoot(t, 800, 600)
	a := NewItem(newGuest("a"))
	b := NewItem(newGuest("b"))
	root.InsertItem(a, LocationOnLeft, DefaultSizeFair, AddingOptionNone)
	a.InsertItem(b, LocationOnRight, DefaultSizeFair, AddingOptionNone)
	root.RemoveItem(b, false)
	before := root.DumpLayout()

	// Splitting a hidden spot must not bring it back as a guest-less
	// visible leaf.
	c := NewItem(newGuest("c"))
	b.InsertItem(c, LocationOnRight, DefaultSizeFair, AddingOptionNone)

	assert.Nil(t, c.Parent())
	assert.True(t, b.IsPlaceholder())
	assert.Equal(t, before, root.DumpLayout())
	requireSane(t, root)
}

func TestInsert_ManyItemsRespectMinimums(t *testing.T) {
	root := newTestRoot(t, 800, 600)
	last := NewItem(newGuest("g0"))
	root.InsertItem(last, LocationOnLeft, DefaultSizeFair, AddingOptionNone)

	for i := 1; i < 8; i++ {
		next := NewItem(newGuest("g" + string(rune('0'+i))))
		last.InsertItem(next, LocationOnRight, DefaultSizeFair, AddingOptionNone)
		last = next
	}

	assert.Equal(t, 8, root.VisibleCountRecursive())
	assert.Len(t, root.Separators(), 7)
	for _, it := range root.ItemsRecursive() {
		assert.GreaterOrEqual(t, it.Width(), it.MinSize().Width, "%s below min width", it.Name())
	}
	requireSane(t, root)
}
