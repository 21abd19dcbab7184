package multisplit

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// DumpLayout renders the subtree as an indented text diagram, one line
// per item, with separators interleaved. Intended for diagnostics.
func (m *Item) DumpLayout() string {
	var sb strings.Builder
	m.dumpLayout(&sb, 0)
	return sb.String()
}

func (m *Item) dumpLayout(sb *strings.Builder, level int) {
	indent := strings.Repeat(" ", level)

	var flags []string
	if m.sizing.IsBeingInserted {
		flags = append(flags, "beingInserted")
	}
	if !m.IsVisible(false) {
		flags = append(flags, "hidden")
	}
	suffix := ""
	if len(flags) > 0 {
		suffix = " ;" + strings.Join(flags, ";")
	}

	geo := m.sizing.Geometry
	minSz := m.MinSize()

	if m.isContainer {
		kind := "Layout"
		if m.IsRoot() {
			kind = "Root"
		}
		fmt.Fprintf(sb, "%s* %s: %s %d,%d %dx%d; min=%dx%d%s; %%=%v\n",
			indent, kind, m.orientation, geo.X, geo.Y, geo.Width, geo.Height,
			minSz.Width, minSz.Height, suffix, m.childPercentages())

		i := 0
		for _, child := range m.children {
			child.dumpLayout(sb, level+1)
			if child.IsVisible(false) {
				if i < len(m.separators) {
					sep := m.separators[i]
					fmt.Fprintf(sb, "%s - Separator: pos=%d global.geo=%d,%d %dx%d\n",
						indent, sep.Position(), sep.geometry.X, sep.geometry.Y,
						sep.geometry.Width, sep.geometry.Height)
				}
				i++
			}
		}
		return
	}

	fmt.Fprintf(sb, "%s- Leaf: %q %d,%d %dx%d; min=%dx%d%s\n",
		indent, m.name, geo.X, geo.Y, geo.Width, geo.Height,
		minSz.Width, minSz.Height, suffix)
}

func (m *Item) dumpToLogger() {
	m.logger().Debug("layout dump", zap.String("layout", m.DumpLayout()))
}
