package multisplit

import (
	"go.uber.org/zap"
)

var nopLogger = zap.NewNop()

// Item is a node of the layout tree: either a leaf hosting one guest
// panel, or a container holding an ordered run of children along one
// orientation. The duality is a kind flag rather than two types; the
// container-only behavior lives in the container files.
type Item struct {
	sizing      SizingInfo
	isContainer bool
	parent      *Item // always a container; nil only for the root
	host        *host // shared tree-wide; nil for dummy/free items
	name        string

	refCount int
	visible  bool
	guest    Guest

	// Container state. Meaningful only when isContainer.
	children    []*Item
	orientation Orientation
	separators  []*Separator

	// Transient container guards, mirroring the negotiation phases.
	blockUpdatePercentages bool
	deserializing          bool
	convertingToContainer  bool
}

// NewItem creates a free leaf item, optionally adopting a guest. The item
// participates in no layout until inserted into one.
func NewItem(guest Guest) *Item {
	item := newLeaf(nil, nil)
	if guest != nil {
		item.SetGuest(guest)
	}
	return item
}

// NewRoot creates an empty root container with the given size.
func NewRoot(size Size, opts ...RootOption) *Item {
	root := newContainer(newHost(opts...), nil)
	root.sizing.Geometry = Rect{Width: size.Width, Height: size.Height}
	return root
}

func newLeaf(h *host, parent *Item) *Item {
	item := &Item{
		sizing: newSizingInfo(),
		host:   h,
		name:   "null",
	}
	item.setParentContainer(parent)
	return item
}

func newContainer(h *host, parent *Item) *Item {
	item := &Item{
		sizing:      newSizingInfo(),
		isContainer: true,
		orientation: Vertical,
		host:        h,
	}
	item.setParentContainer(parent)
	return item
}

func (m *Item) logger() *zap.Logger {
	if m.host != nil {
		return m.host.logger
	}
	return nopLogger
}

func (m *Item) emit(ev Event) {
	if m.host != nil && m.host.sink != nil {
		m.host.sink.OnEvent(ev)
	}
}

// isDummy reports whether this item belongs to an invisible simulation
// tree (drop-rect clones) or is not part of any layout yet.
func (m *Item) isDummy() bool {
	return m.host == nil
}

// IsRoot returns true if the item has no parent container.
func (m *Item) IsRoot() bool {
	return m.parent == nil
}

// IsContainer returns true if the item holds children rather than a guest.
func (m *Item) IsContainer() bool {
	return m.isContainer
}

// Parent returns the item's parent container, or nil for the root.
func (m *Item) Parent() *Item {
	return m.parent
}

// Root walks the parent chain to the tree's root container.
func (m *Item) Root() *Item {
	if m.parent != nil {
		return m.parent.Root()
	}
	return m
}

// Name returns the item's object name, kept for diagnostics and
// serialization. Leaves are named after their guest.
func (m *Item) Name() string {
	return m.name
}

// Guest returns the hosted guest, or nil for containers and placeholders.
func (m *Item) Guest() Guest {
	return m.guest
}

// X returns the item's x position within its parent.
func (m *Item) X() int { return m.sizing.Geometry.X }

// Y returns the item's y position within its parent.
func (m *Item) Y() int { return m.sizing.Geometry.Y }

// Width returns the item's width.
func (m *Item) Width() int { return m.sizing.Geometry.Width }

// Height returns the item's height.
func (m *Item) Height() int { return m.sizing.Geometry.Height }

// Size returns the item's dimensions.
func (m *Item) Size() Size { return m.sizing.Size() }

// Pos returns the item's position within its parent.
func (m *Item) Pos() Point { return m.sizing.Geometry.TopLeft() }

// Geometry returns the item's rectangle within its parent. Mid-insertion
// items report an empty geometry, the invariants being suspended.
func (m *Item) Geometry() Rect {
	if m.IsBeingInserted() {
		return Rect{}
	}
	return m.sizing.Geometry
}

// Rect returns the item's rectangle in its own coordinate space.
func (m *Item) Rect() Rect {
	return Rect{Width: m.Width(), Height: m.Height()}
}

// SizingInfo returns a copy of the item's sizing record.
func (m *Item) SizingInfo() SizingInfo {
	return m.sizing
}

// RefCount returns the number of external holders of this item.
func (m *Item) RefCount() int { return m.refCount }

// Ref registers an external holder, keeping the item alive as a
// placeholder when its guest goes away.
func (m *Item) Ref() {
	m.refCount++
}

// Unref drops one external holder. When the count reaches zero the item
// removes itself from its parent.
func (m *Item) Unref() {
	if m.refCount == 0 {
		m.logger().Warn("unref called on item with zero refcount", zap.String("item", m.name))
		return
	}
	m.refCount--
	if m.refCount == 0 && !m.IsRoot() {
		m.parent.RemoveItem(m, true)
	}
}

// MinSize returns the item's minimum size. For containers it is computed
// from the visible children.
func (m *Item) MinSize() Size {
	if m.isContainer {
		return m.containerMinSize()
	}
	return m.sizing.MinSize
}

// MaxSize returns the item's maximum size. For containers it is computed
// from the visible children.
func (m *Item) MaxSize() Size {
	if m.isContainer {
		return m.containerMaxSize()
	}
	return m.sizing.MaxSize
}

// SetMinSize updates the minimum size. If the item is currently smaller,
// it immediately grows to the new minimum, squeezing siblings and growing
// ancestors as needed, but never shrinking a sibling below its own minimum.
func (m *Item) SetMinSize(sz Size) {
	if sz == m.sizing.MinSize {
		return
	}
	m.sizing.MinSize = sz
	m.emit(MinSizeChanged{Item: m})
	if m.parent != nil {
		m.parent.onChildMinSizeChanged(m)
	}
	m.setSizeRecursive(m.Size().ExpandedTo(sz), ResizePercentage)
}

// SetMaxSize updates the maximum size of a leaf. Maximums are carried and
// serialized but not yet enforced by the negotiation.
func (m *Item) SetMaxSize(sz Size) {
	if m.isContainer {
		m.logger().Warn("setMaxSize called on a container")
		return
	}
	m.sizing.MaxSize = sz
}

func (m *Item) minLength(o Orientation) int {
	return m.MinSize().Length(o)
}

func (m *Item) length(o Orientation) int {
	return m.Size().Length(o)
}

func (m *Item) position(o Orientation) int {
	return m.sizing.Geometry.Pos(o)
}

// missingSize returns how much the item must grow, componentwise, to
// honour its minimum size.
func (m *Item) missingSize() Size {
	return m.MinSize().Sub(m.Size()).ClampedToZero()
}

// MapToRoot maps a point in this item's coordinate space to the root's.
func (m *Item) MapToRoot(p Point) Point {
	if m.IsRoot() {
		return p
	}
	return p.Add(m.parent.MapToRoot(m.Pos()))
}

// MapRectToRoot maps a rectangle in this item's coordinate space to the
// root's.
func (m *Item) MapRectToRoot(r Rect) Rect {
	return r.MovedTo(m.MapToRoot(r.TopLeft()))
}

func (m *Item) mapToRootPos(p int, o Orientation) int {
	if o == Vertical {
		return m.MapToRoot(Point{Y: p}).Y
	}
	return m.MapToRoot(Point{X: p}).X
}

// MapFromRoot maps a point in root coordinates into this item's space.
func (m *Item) MapFromRoot(p Point) Point {
	for it := m; it != nil; it = it.parent {
		p = p.Sub(it.Pos())
	}
	return p
}

// MapRectFromRoot maps a rectangle in root coordinates into this item's
// space.
func (m *Item) MapRectFromRoot(r Rect) Rect {
	return r.MovedTo(m.MapFromRoot(r.TopLeft()))
}

// MapFromParent maps a point in the parent's coordinate space into this
// item's.
func (m *Item) MapFromParent(p Point) Point {
	if m.IsRoot() {
		return p
	}
	return p.Sub(m.Pos())
}

func (m *Item) mapFromRootPos(p int, o Orientation) int {
	if o == Vertical {
		return m.MapFromRoot(Point{Y: p}).Y
	}
	return m.MapFromRoot(Point{X: p}).X
}

// PathFromRoot returns the list of child indexes leading from the root to
// this item. The root itself has an empty path.
func (m *Item) PathFromRoot() []int {
	var path []int
	for it := m; it.parent != nil; it = it.parent {
		path = append([]int{it.parent.indexOfChild(it)}, path...)
	}
	return path
}

// SetGuest adopts a guest into a leaf. The item takes the guest's minimum
// size and, if it has no geometry yet, the guest's preferred geometry.
func (m *Item) SetGuest(guest Guest) {
	if guest != nil && m.guest != nil {
		m.logger().Warn("item already has a guest", zap.String("item", m.name))
		return
	}
	m.guest = guest

	if m.guest != nil {
		m.SetMinSize(guestMinSize(guest))

		if m.sizing.Geometry.IsEmpty() {
			preferred := guest.PreferredGeometry()
			preferred = preferred.WithSize(preferred.Size().ExpandedTo(HardcodedMinimumSize))
			m.SetGeometry(m.MapRectFromRoot(preferred))
		} else {
			m.updateGuestGeometry()
		}
	}

	m.updateName()
}

// Restore re-attaches a guest to a hidden placeholder and gives it back
// its previous place in the layout, taking space from the immediate
// neighbours first so repeated hide/show cycles reuse the same spot.
func (m *Item) Restore(guest Guest) {
	if m.isContainer {
		m.logger().Warn("containers can't be restored")
		return
	}
	if m.IsVisible(false) || m.guest != nil {
		m.logger().Warn("restore called on a visible item", zap.String("item", m.name))
		return
	}
	m.SetGuest(guest)
	m.parent.restoreChild(m, ImmediateNeighboursFirst)
}

// IsPlaceholder returns true for an item that keeps its spot in the tree
// while hidden.
func (m *Item) IsPlaceholder() bool {
	return !m.IsVisible(false)
}

// IsVisible reports effective visibility. A leaf is visible iff explicitly
// shown; a container iff it has at least one visible child. With
// excludeBeingInserted set, items mid-insertion count as invisible.
func (m *Item) IsVisible(excludeBeingInserted bool) bool {
	if m.isContainer {
		return m.hasVisibleChildren(excludeBeingInserted)
	}
	return m.visible && !(excludeBeingInserted && m.IsBeingInserted())
}

func (m *Item) setIsVisible(visible bool) {
	if m.isContainer {
		// Container visibility is computed, never stored.
		return
	}
	if visible != m.visible {
		m.visible = visible
		m.emit(VisibleChanged{Item: m, Visible: visible})
		if m.parent != nil {
			m.parent.onChildVisibleChanged(m, visible)
		}
	}
	if visible {
		m.updateGuestGeometry()
	}
	m.updateName()
}

// IsBeingInserted reports the transient multi-step-insertion state during
// which percentage and geometry invariants are suspended.
func (m *Item) IsBeingInserted() bool {
	return m.sizing.IsBeingInserted
}

func (m *Item) setBeingInserted(is bool) {
	m.sizing.IsBeingInserted = is

	// Trickle up: an ancestor with no other visible children is equally
	// mid-insertion.
	if m.parent == nil {
		return
	}
	if is {
		if !m.parent.hasVisibleChildren(false) {
			m.parent.setBeingInserted(true)
		}
	} else {
		m.parent.setBeingInserted(false)
	}
}

func (m *Item) setParentContainer(parent *Item) {
	if parent == m.parent {
		return
	}

	if m.parent != nil {
		m.emit(VisibleChanged{Item: m, Visible: false})
	}

	if m.isContainer {
		ceasingToBeRoot := m.parent == nil && parent != nil
		if ceasingToBeRoot && !m.hasVisibleChildren(false) {
			// Only the root may keep a non-empty rect while childless.
			m.sizing.Geometry = Rect{}
		}
	}

	m.parent = parent

	if parent != nil {
		m.setHost(parent.host)
		m.updateGuestGeometry()
		m.emit(VisibleChanged{Item: m, Visible: m.IsVisible(false)})
	}
}

func (m *Item) setHost(h *host) {
	if m.host == h {
		return
	}
	m.host = h
	if m.isContainer {
		m.removeSeparatorsRecursive()
		for _, child := range m.children {
			child.setHost(h)
		}
		m.updateSeparatorsRecursive()
	} else {
		m.updateGuestGeometry()
	}
}

// SetGeometry sets the item's geometry within its parent. Constraint
// violations are reported but the commit proceeds; outer operations
// pre-validate before reaching this point.
func (m *Item) SetGeometry(rect Rect) {
	if rect == m.sizing.Geometry {
		return
	}
	old := m.sizing.Geometry
	m.sizing.Geometry = rect

	if rect.IsEmpty() {
		if m.isContainer {
			if m.hasVisibleChildren(false) {
				m.logger().Warn("empty rect on a container with visible children")
				m.Root().dumpToLogger()
			}
		} else {
			m.logger().Warn("empty rect on leaf", zap.String("item", m.name))
		}
	}

	minSz := m.MinSize()
	if rect.Width < minSz.Width || rect.Height < minSz.Height {
		m.logger().Warn("size constraints not honoured",
			zap.String("item", m.name),
			zap.Int("width", rect.Width), zap.Int("height", rect.Height),
			zap.Int("minWidth", minSz.Width), zap.Int("minHeight", minSz.Height))
		m.Root().dumpToLogger()
	}

	m.emit(GeometryChanged{Item: m, Old: old, New: rect})
	if m.isContainer && (old.X != rect.X || old.Y != rect.Y) {
		// Children moved in root coordinates even though their local
		// geometry is unchanged.
		for _, child := range m.children {
			child.updateGuestGeometryRecursive()
		}
	}
	m.updateGuestGeometry()
}

// setGeometryRecursive positions the item and resizes it, recursing into
// children for containers.
func (m *Item) setGeometryRecursive(rect Rect) {
	if m.isContainer {
		m.setPos(rect.TopLeft())
		m.setSizeRecursive(rect.Size(), ResizePercentage)
		return
	}
	m.SetGeometry(rect)
}

func (m *Item) setSize(sz Size) {
	m.SetGeometry(m.sizing.Geometry.WithSize(sz))
}

// setSizeRecursive resizes the item; container children are resized per
// the given strategy.
func (m *Item) setSizeRecursive(sz Size, strategy ChildrenResizeStrategy) {
	if m.isContainer {
		m.containerSetSizeRecursive(sz, strategy)
		return
	}
	m.setSize(sz)
}

// Resize resizes the whole layout. Valid on the root only; sizes below the
// tree's computed minimum are rejected.
func (m *Item) Resize(sz Size) {
	if !m.IsRoot() {
		m.logger().Warn("resize is a root operation", zap.String("item", m.name))
		return
	}
	m.setSizeRecursive(sz, ResizePercentage)
}

func (m *Item) setPos(pos Point) {
	m.SetGeometry(m.sizing.Geometry.MovedTo(pos))
}

func (m *Item) setPosAlong(pos int, o Orientation) {
	if o == Vertical {
		m.setPos(Point{X: m.X(), Y: pos})
	} else {
		m.setPos(Point{X: pos, Y: m.Y()})
	}
}

func (m *Item) setLength(l int, o Orientation) {
	if l <= 0 {
		m.logger().Warn("refusing non-positive length", zap.Int("length", l))
	}
	if o == Vertical {
		w := max(m.Width(), HardcodedMinimumSize.Width)
		m.setSize(Size{Width: w, Height: l})
	} else {
		h := max(m.Height(), HardcodedMinimumSize.Height)
		m.setSize(Size{Width: l, Height: h})
	}
}

func (m *Item) setLengthRecursive(l int, o Orientation) {
	if m.isContainer {
		m.containerSetSizeRecursive(m.Size().WithLength(l, o), ResizePercentage)
		return
	}
	m.setLength(l, o)
}

// updateGuestGeometry pushes the item's geometry, in root coordinates,
// into the hosted guest.
func (m *Item) updateGuestGeometry() {
	if m.guest != nil {
		m.guest.SetGeometry(m.MapRectToRoot(m.Rect()))
	}
}

func (m *Item) updateGuestGeometryRecursive() {
	if m.isContainer {
		for _, child := range m.children {
			child.updateGuestGeometryRecursive()
		}
		return
	}
	m.updateGuestGeometry()
}

// turnIntoPlaceholder hides the leaf, preserving its spot for a later
// Restore. Shares the removal path so neighbours grow into the space.
func (m *Item) turnIntoPlaceholder() {
	if m.isContainer {
		return
	}
	m.parent.RemoveItem(m, false)
}

func (m *Item) updateName() {
	if m.isContainer {
		return
	}
	switch {
	case m.guest != nil:
		if id := m.guest.ID(); id != "" {
			m.name = id
		} else {
			m.name = "widget"
		}
	case !m.IsVisible(false):
		m.name = "hidden"
	default:
		m.name = "null"
	}
}

// VisibleCountRecursive returns the number of visible leaves under (and
// including) this item.
func (m *Item) VisibleCountRecursive() int {
	if m.isContainer {
		count := 0
		for _, child := range m.children {
			count += child.VisibleCountRecursive()
		}
		return count
	}
	if m.IsVisible(false) {
		return 1
	}
	return 0
}

// CountRecursive returns the number of leaves under (and including) this
// item, visible or not.
func (m *Item) CountRecursive() int {
	if !m.isContainer {
		return 1
	}
	count := 0
	for _, child := range m.children {
		count += child.CountRecursive()
	}
	return count
}
