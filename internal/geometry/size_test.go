package geometry

import "testing"

func TestSize_ExpandedAndBounded(t *testing.T) {
	a := NewSize(100, 50)
	b := NewSize(80, 90)

	if got := a.ExpandedTo(b); got != NewSize(100, 90) {
		t.Errorf("ExpandedTo = %+v", got)
	}
	if got := a.BoundedTo(b); got != NewSize(80, 50) {
		t.Errorf("BoundedTo = %+v", got)
	}
}

func TestSize_Length(t *testing.T) {
	s := NewSize(100, 50)

	if got := s.Length(Horizontal); got != 100 {
		t.Errorf("Length(Horizontal) = %d", got)
	}
	if got := s.Length(Vertical); got != 50 {
		t.Errorf("Length(Vertical) = %d", got)
	}
	if got := s.WithLength(7, Vertical); got != NewSize(100, 7) {
		t.Errorf("WithLength(7, Vertical) = %+v", got)
	}
}

func TestSize_ClampedToZero(t *testing.T) {
	if got := (Size{Width: -3, Height: 5}).ClampedToZero(); got != NewSize(0, 5) {
		t.Errorf("ClampedToZero = %+v", got)
	}
}

func TestSize_Fits(t *testing.T) {
	tests := []struct {
		name  string
		s, in Size
		want  bool
	}{
		{"smaller fits", NewSize(10, 10), NewSize(20, 20), true},
		{"equal fits", NewSize(20, 20), NewSize(20, 20), true},
		{"wider fails", NewSize(21, 10), NewSize(20, 20), false},
		{"taller fails", NewSize(10, 21), NewSize(20, 20), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Fits(tt.in); got != tt.want {
				t.Errorf("Fits = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrientation_Opposite(t *testing.T) {
	if Vertical.Opposite() != Horizontal || Horizontal.Opposite() != Vertical {
		t.Error("Opposite is not an involution")
	}
}

func TestLocation_Orientation(t *testing.T) {
	tests := []struct {
		loc   Location
		o     Orientation
		side1 bool
	}{
		{LocationOnLeft, Horizontal, true},
		{LocationOnRight, Horizontal, false},
		{LocationOnTop, Vertical, true},
		{LocationOnBottom, Vertical, false},
	}

	for _, tt := range tests {
		if got := tt.loc.Orientation(); got != tt.o {
			t.Errorf("%v.Orientation() = %v, want %v", tt.loc, got, tt.o)
		}
		if got := tt.loc.IsSide1(); got != tt.side1 {
			t.Errorf("%v.IsSide1() = %v, want %v", tt.loc, got, tt.side1)
		}
	}
}
