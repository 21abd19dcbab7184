package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	cli "github.com/urfave/cli/v3"

	"multisplit"
)

// The engine thinks in pixels; the demo reuses its units as terminal
// cells, so the floor and gutter are shrunk to something cell-sized.
func init() {
	multisplit.SeparatorThickness = 1
	multisplit.HardcodedMinimumSize = multisplit.NewSize(12, 4)
}

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// panel is the demo's guest: a named rectangle that remembers where the
// layout put it.
type panel struct {
	id  string
	geo multisplit.Rect
}

func newPanel() *panel {
	return &panel{id: uuid.NewString()[:8]}
}

func (p *panel) ID() string { return p.id }

func (p *panel) MinSize() multisplit.Size {
	return multisplit.NewSize(12, 4)
}

func (p *panel) PreferredGeometry() multisplit.Rect {
	return multisplit.NewRect(0, 0, 30, 8)
}

func (p *panel) SetGeometry(geo multisplit.Rect) { p.geo = geo }

type demoModel struct {
	root     *multisplit.Item
	selected int // separator index into root.SeparatorsRecursive()
	status   string
	width    int
	height   int
}

func runDemo(_ context.Context, cmd *cli.Command) error {
	logger, err := newLogger(cmd.Bool("verbose"))
	if err != nil {
		return err
	}
	defer logger.Sync()

	root := multisplit.NewRoot(multisplit.NewSize(80, 24), multisplit.WithLogger(logger))
	root.InsertItem(multisplit.NewItem(newPanel()), multisplit.LocationOnLeft,
		multisplit.DefaultSizeFair, multisplit.AddingOptionNone)

	m := &demoModel{root: root, status: "welcome"}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *demoModel) Init() tea.Cmd { return nil }

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		w := max(msg.Width, 20)
		h := max(msg.Height-1, 8) // keep a row for the status bar
		m.root.Resize(multisplit.NewSize(w, h))

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.split(multisplit.LocationOnRight)
		case "b":
			m.split(multisplit.LocationOnBottom)
		case "x":
			m.removeLast()
		case "tab":
			if n := len(m.root.SeparatorsRecursive()); n > 0 {
				m.selected = (m.selected + 1) % n
				m.status = fmt.Sprintf("separator %d selected", m.selected)
			}
		case "left", "up":
			m.moveSeparator(-1)
		case "right", "down":
			m.moveSeparator(1)
		case "e":
			if sep := m.currentSeparator(); sep != nil {
				sep.Container().RequestEqualSize(sep)
				m.status = "equalized"
			}
		case "c":
			if err := m.root.CheckSanity(); err != nil {
				m.status = "INVALID: " + err.Error()
			} else {
				m.status = "layout ok"
			}
		}
	}
	return m, nil
}

func (m *demoModel) currentSeparator() *multisplit.Separator {
	seps := m.root.SeparatorsRecursive()
	if len(seps) == 0 {
		return nil
	}
	if m.selected >= len(seps) {
		m.selected = 0
	}
	return seps[m.selected]
}

func (m *demoModel) moveSeparator(delta int) {
	sep := m.currentSeparator()
	if sep == nil {
		return
	}
	sep.Move(delta)
	m.status = fmt.Sprintf("separator %d at %d", m.selected, sep.Position())
}

func (m *demoModel) split(loc multisplit.Location) {
	leaves := m.root.ItemsRecursive()
	if len(leaves) == 0 {
		m.root.InsertItem(multisplit.NewItem(newPanel()), loc,
			multisplit.DefaultSizeFair, multisplit.AddingOptionNone)
		m.status = "inserted into empty root"
		return
	}

	target := leaves[len(leaves)-1]
	target.InsertItem(multisplit.NewItem(newPanel()), loc,
		multisplit.DefaultSizeFair, multisplit.AddingOptionNone)
	m.status = fmt.Sprintf("split %s", loc)
}

func (m *demoModel) removeLast() {
	leaves := m.root.ItemsRecursive()
	if len(leaves) <= 1 {
		m.status = "keeping the last panel"
		return
	}
	last := leaves[len(leaves)-1]
	last.Parent().RemoveItem(last, true)
	m.selected = 0
	m.status = "panel removed"
}

func (m *demoModel) View() string {
	if m.width == 0 {
		return "starting..."
	}

	canvas := newCanvas(m.root.Width(), m.root.Height())
	for _, leaf := range m.root.ItemsRecursive() {
		if !leaf.IsVisible(false) {
			continue
		}
		geo := leaf.MapRectToRoot(leaf.Rect())
		label := "placeholder"
		if g := leaf.Guest(); g != nil {
			label = g.ID()
		}
		canvas.drawBox(geo, label)
	}
	for i, sep := range m.root.SeparatorsRecursive() {
		canvas.drawSeparator(sep.Geometry(), sep.Orientation() == multisplit.Vertical, i == m.selected)
	}

	status := statusStyle.Render(m.status) + " " +
		hintStyle.Render("r/b split  x close  tab+arrows drag  e equalize  c check  q quit")
	return canvas.String() + status
}

// canvas is a plain rune grid the layout is painted onto.
type canvas struct {
	w, h  int
	cells [][]rune
}

func newCanvas(w, h int) *canvas {
	cells := make([][]rune, h)
	for y := range cells {
		row := make([]rune, w)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) set(x, y int, r rune) {
	if x >= 0 && x < c.w && y >= 0 && y < c.h {
		c.cells[y][x] = r
	}
}

func (c *canvas) drawBox(geo multisplit.Rect, label string) {
	right, bottom := geo.Right()-1, geo.Bottom()-1
	for x := geo.X; x <= right; x++ {
		c.set(x, geo.Y, '─')
		c.set(x, bottom, '─')
	}
	for y := geo.Y; y <= bottom; y++ {
		c.set(geo.X, y, '│')
		c.set(right, y, '│')
	}
	c.set(geo.X, geo.Y, '┌')
	c.set(right, geo.Y, '┐')
	c.set(geo.X, bottom, '└')
	c.set(right, bottom, '┘')

	for i, r := range label {
		if geo.X+2+i >= right {
			break
		}
		c.set(geo.X+2+i, geo.Y+1, r)
	}
}

func (c *canvas) drawSeparator(geo multisplit.Rect, vertical, selected bool) {
	r := '│'
	if vertical {
		r = '─'
	}
	if selected {
		r = '█'
	}
	for y := geo.Y; y < geo.Bottom(); y++ {
		for x := geo.X; x < geo.Right(); x++ {
			c.set(x, y, r)
		}
	}
}

func (c *canvas) String() string {
	var sb strings.Builder
	for _, row := range c.cells {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
