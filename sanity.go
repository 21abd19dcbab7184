package multisplit

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"multisplit/internal/debug"
)

// CheckSanity verifies every layout invariant over this subtree and
// returns the accumulated violations. Dummy trees always pass; they are
// scratch space for simulations and their invariants are suspended.
func (m *Item) CheckSanity() error {
	if m.isDummy() {
		return nil
	}

	var errs error

	minSz := m.MinSize()
	if minSz.Width > m.Width() || minSz.Height > m.Height() {
		m.Root().dumpToLogger()
		errs = multierr.Append(errs, fmt.Errorf("%s: size constraints not honoured: size=%dx%d min=%dx%d",
			m.name, m.Width(), m.Height(), minSz.Width, minSz.Height))
	}

	if !m.isContainer {
		return errs
	}

	if len(m.children) == 0 && !m.IsRoot() {
		errs = multierr.Append(errs, fmt.Errorf("%s: container is empty, should have been removed", m.name))
	}

	if m.orientation != Vertical && m.orientation != Horizontal {
		errs = multierr.Append(errs, fmt.Errorf("%s: invalid orientation %d", m.name, m.orientation))
	}

	// Visible children must be contiguous, one separator gap apart.
	expectedPos := 0
	for _, child := range m.children {
		if !child.IsVisible(false) {
			continue
		}
		pos := child.Pos().Pos(m.orientation)
		if expectedPos != pos {
			m.Root().dumpToLogger()
			errs = multierr.Append(errs, fmt.Errorf("%s: unexpected pos %d for child %q, expected %d",
				m.name, pos, child.name, expectedPos))
		}
		expectedPos = pos + child.length(m.orientation) + SeparatorThickness
	}

	opposite := m.orientation.Opposite()
	containerOpposite := m.Size().Length(opposite)
	for _, child := range m.children {
		if child.parent != m {
			errs = multierr.Append(errs, fmt.Errorf("%s: child %q has wrong parent", m.name, child.name))
		}

		if child.IsVisible(false) {
			if childOpposite := child.Size().Length(opposite); childOpposite != containerOpposite {
				m.Root().dumpToLogger()
				errs = multierr.Append(errs, fmt.Errorf("%s: child %q opposite length %d != container %d",
					m.name, child.name, childOpposite, containerOpposite))
			}

			if !m.Rect().ContainsRect(child.Geometry()) {
				m.Root().dumpToLogger()
				errs = multierr.Append(errs, fmt.Errorf("%s: child %q geometry out of bounds", m.name, child.name))
			}
		}

		errs = multierr.Append(errs, child.CheckSanity())
	}

	visible := m.visibleChildren(false)
	isEmptyRoot := m.IsRoot() && len(visible) == 0
	if !isEmptyRoot {
		occupied := max(0, SeparatorThickness*(len(visible)-1))
		for _, child := range visible {
			occupied += child.length(m.orientation)
		}
		if occupied != m.containerLength() {
			m.Root().dumpToLogger()
			errs = multierr.Append(errs, fmt.Errorf("%s: children occupy %d of %d",
				m.name, occupied, m.containerLength()))
		}

		total := 0.0
		for _, p := range m.childPercentages() {
			total += p
		}
		expected := 1.0
		if len(visible) == 0 {
			expected = 0.0
		}
		if math.Abs(total-expected) > 1e-9 {
			m.Root().dumpToLogger()
			errs = multierr.Append(errs, fmt.Errorf("%s: percentages sum to %v, expected %v",
				m.name, total, expected))
		}
	}

	if len(m.separators) != max(0, len(visible)-1) {
		m.Root().dumpToLogger()
		errs = multierr.Append(errs, fmt.Errorf("%s: %d separators for %d visible children",
			m.name, len(m.separators), len(visible)))
	}

	expectedSepSize := NewSize(SeparatorThickness, m.Height())
	if m.isVertical() {
		expectedSepSize = NewSize(m.Width(), SeparatorThickness)
	}
	pos2 := m.MapToRoot(Point{}).Pos(opposite)

	for i, sep := range m.separators {
		if i >= len(visible) {
			break
		}
		child := visible[i]
		expectedSepPos := m.mapToRootPos(child.sizing.Edge(m.orientation), m.orientation)

		if sep.parent != m {
			errs = multierr.Append(errs, fmt.Errorf("%s: separator %d has wrong container", m.name, i))
		}

		if sep.Position() != expectedSepPos {
			m.Root().dumpToLogger()
			errs = multierr.Append(errs, fmt.Errorf("%s: separator %d at %d, expected %d",
				m.name, i, sep.Position(), expectedSepPos))
		}

		if sep.Geometry().Size() != expectedSepSize {
			errs = multierr.Append(errs, fmt.Errorf("%s: separator %d size %dx%d, expected %dx%d",
				m.name, i, sep.Geometry().Width, sep.Geometry().Height,
				expectedSepSize.Width, expectedSepSize.Height))
		}

		if sepPos2 := sep.Geometry().TopLeft().Pos(opposite); sepPos2 != pos2 {
			m.Root().dumpToLogger()
			errs = multierr.Append(errs, fmt.Errorf("%s: separator %d cross-axis pos %d, expected %d",
				m.name, i, sepPos2, pos2))
		}

		sepMin := m.MinPosForSeparatorGlobal(sep)
		sepMax := m.MaxPosForSeparatorGlobal(sep)
		if pos := sep.Position(); pos < sepMin || pos > sepMax || sepMin <= 0 || sepMax <= 0 {
			m.Root().dumpToLogger()
			errs = multierr.Append(errs, fmt.Errorf("%s: separator %d bounds invalid: pos=%d min=%d max=%d",
				m.name, i, pos, sepMin, sepMax))
		}
	}

	return errs
}

// checkSanityAfterMutation re-verifies the whole tree after a structural
// change. Costly, so only active when debugging is enabled.
func (m *Item) checkSanityAfterMutation() {
	if m.isDummy() || !debug.Enabled() {
		return
	}
	if err := m.Root().CheckSanity(); err != nil {
		debug.Log("layout invariants violated: %v", err)
		m.logger().Warn("layout invariants violated", zap.Error(err))
	}
}
