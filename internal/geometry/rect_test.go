package geometry

import "testing"

func TestRect_Edges(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	if r.Right() != 110 {
		t.Errorf("Right() = %d, want 110", r.Right())
	}
	if r.Bottom() != 70 {
		t.Errorf("Bottom() = %d, want 70", r.Bottom())
	}
	if r.Edge(Horizontal) != 110 {
		t.Errorf("Edge(Horizontal) = %d, want 110", r.Edge(Horizontal))
	}
	if r.Edge(Vertical) != 70 {
		t.Errorf("Edge(Vertical) = %d, want 70", r.Edge(Vertical))
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 0, 0, true},
		{"interior", 5, 5, true},
		{"right edge exclusive", 10, 5, false},
		{"bottom edge exclusive", 5, 10, false},
		{"outside negative", -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRect_ContainsRect(t *testing.T) {
	outer := NewRect(0, 0, 100, 100)

	tests := []struct {
		name  string
		inner Rect
		want  bool
	}{
		{"identical", NewRect(0, 0, 100, 100), true},
		{"strictly inside", NewRect(10, 10, 50, 50), true},
		{"flush with right edge", NewRect(50, 0, 50, 100), true},
		{"overhanging right", NewRect(50, 0, 51, 100), false},
		{"empty always contained", Rect{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.ContainsRect(tt.inner); got != tt.want {
				t.Errorf("ContainsRect(%+v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestRect_Adjusted(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	tests := []struct {
		name   string
		o      Orientation
		p1, p2 int
		want   Rect
	}{
		{"shrink trailing horizontal", Horizontal, 0, -10, NewRect(10, 20, 90, 50)},
		{"shrink leading horizontal", Horizontal, 10, 0, NewRect(20, 20, 90, 50)},
		{"shrink trailing vertical", Vertical, 0, -5, NewRect(10, 20, 100, 45)},
		{"grow leading vertical", Vertical, -5, 0, NewRect(10, 15, 100, 55)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Adjusted(tt.o, tt.p1, tt.p2); got != tt.want {
				t.Errorf("Adjusted(%v, %d, %d) = %+v, want %+v", tt.o, tt.p1, tt.p2, got, tt.want)
			}
		})
	}
}

func TestRect_WithPosAndLength(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	if got := r.WithPos(7, Horizontal); got != NewRect(7, 20, 100, 50) {
		t.Errorf("WithPos(7, Horizontal) = %+v", got)
	}
	if got := r.WithPos(7, Vertical); got != NewRect(10, 7, 100, 50) {
		t.Errorf("WithPos(7, Vertical) = %+v", got)
	}
	if got := r.WithLength(30, Horizontal); got != NewRect(10, 20, 30, 50) {
		t.Errorf("WithLength(30, Horizontal) = %+v", got)
	}
	if got := r.WithLength(30, Vertical); got != NewRect(10, 20, 100, 30) {
		t.Errorf("WithLength(30, Vertical) = %+v", got)
	}
}

func TestRect_MapRoundTrip(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	p := Point{X: 3, Y: 4}

	moved := r.MovedTo(Point{X: 0, Y: 0})
	if moved.Size() != r.Size() {
		t.Errorf("MovedTo changed size: %+v", moved)
	}
	if got := r.Translate(5, -5); got != NewRect(15, 15, 100, 50) {
		t.Errorf("Translate = %+v", got)
	}
	if got := p.Add(Point{X: 1, Y: 1}).Sub(Point{X: 1, Y: 1}); got != p {
		t.Errorf("Add/Sub round trip = %+v", got)
	}
}
