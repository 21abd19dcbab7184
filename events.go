package multisplit

// Event is a notification produced by a mutating operation. Events replace
// implicit signal wiring: the core never calls back into a UI layer other
// than through the tree's EventSink.
type Event interface {
	event()
}

// EventSink receives events synchronously during tree mutation. Sinks must
// not mutate the tree reentrantly.
type EventSink interface {
	OnEvent(Event)
}

// EventSinkFunc adapts a function to the EventSink interface.
type EventSinkFunc func(Event)

// OnEvent calls f(ev).
func (f EventSinkFunc) OnEvent(ev Event) { f(ev) }

// GeometryChanged reports that an item's geometry changed.
type GeometryChanged struct {
	Item *Item
	Old  Rect
	New  Rect
}

// VisibleChanged reports that an item's visibility flipped.
type VisibleChanged struct {
	Item    *Item
	Visible bool
}

// MinSizeChanged reports that an item's minimum size changed.
type MinSizeChanged struct {
	Item *Item
}

// ItemsChanged reports that a container's children set changed.
type ItemsChanged struct {
	Container *Item
}

// NumItemsChanged reports the new total leaf count of the tree.
type NumItemsChanged struct {
	Count int
}

// NumVisibleItemsChanged reports the new visible leaf count of the tree.
type NumVisibleItemsChanged struct {
	Count int
}

func (GeometryChanged) event()        {}
func (VisibleChanged) event()         {}
func (MinSizeChanged) event()         {}
func (ItemsChanged) event()           {}
func (NumItemsChanged) event()        {}
func (NumVisibleItemsChanged) event() {}

// EventCollector is an EventSink that records every event it receives.
// Intended for tests and debugging.
type EventCollector struct {
	Events []Event
}

// OnEvent appends ev to the collected list.
func (c *EventCollector) OnEvent(ev Event) {
	c.Events = append(c.Events, ev)
}

// Reset discards all collected events.
func (c *EventCollector) Reset() {
	c.Events = nil
}
