package multisplit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventsOfType[T Event](c *EventCollector) []T {
	var out []T
	for _, ev := range c.Events {
		if typed, ok := ev.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}

func TestEvents_InsertReportsCounts(t *testing.T) {
	collector := &EventCollector{}
	root := NewRoot(NewSize(800, 600), WithEventSink(collector))
	a := NewItem(newGuest("a"))
	b := NewItem(newGuest("b"))

	root.InsertItem(a, LocationOnLeft, DefaultSizeFair, AddingOptionNone)
	a.InsertItem(b, LocationOnRight, DefaultSizeFair, AddingOptionNone)

	counts := eventsOfType[NumItemsChanged](collector)
	require.NotEmpty(t, counts)
	assert.Equal(t, 2, counts[len(counts)-1].Count)

	visible := eventsOfType[NumVisibleItemsChanged](collector)
	require.NotEmpty(t, visible)
	assert.Equal(t, 2, visible[len(visible)-1].Count)
}

func TestEvents_RemoveReportsVisibility(t *testing.T) {
	collector := &EventCollector{}
	root := NewRoot(NewSize(800, 600), WithEventSink(collector))
	a := NewItem(newGuest("a"))
	b := NewItem(newGuest("b"))
	root.InsertItem(a, LocationOnLeft, DefaultSizeFair, AddingOptionNone)
	a.InsertItem(b, LocationOnRight, DefaultSizeFair, AddingOptionNone)
	collector.Reset()

	root.RemoveItem(b, false)

	flips := eventsOfType[VisibleChanged](collector)
	require.NotEmpty(t, flips)
	assert.Same(t, b, flips[0].Item)
	assert.False(t, flips[0].Visible)

	visible := eventsOfType[NumVisibleItemsChanged](collector)
	require.NotEmpty(t, visible)
	assert.Equal(t, 1, visible[len(visible)-1].Count)

	assert.Empty(t, eventsOfType[NumItemsChanged](collector),
		"soft removal keeps the item in the tree")
}

func TestEvents_SeparatorMoveReportsGeometry(t *testing.T) {
	collector := &EventCollector{}
	root := NewRoot(NewSize(800, 600), WithEventSink(collector))
	a := NewItem(newGuest("a"))
	b := NewItem(newGuest("b"))
	root.InsertItem(a, LocationOnLeft, DefaultSizeFair, AddingOptionNone)
	a.InsertItem(b, LocationOnRight, DefaultSizeFair, AddingOptionNone)
	collector.Reset()

	root.Separators()[0].Move(50)

	moved := map[*Item]Rect{}
	for _, ev := range eventsOfType[GeometryChanged](collector) {
		moved[ev.Item] = ev.New
	}
	assert.Equal(t, a.Geometry(), moved[a])
	assert.Equal(t, b.Geometry(), moved[b])
}
