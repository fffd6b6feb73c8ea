package recording

import (
	"math"
	"testing"
)

func TestNewDash(t *testing.T) {
	tests := []struct {
		name      string
		lengths   []float64
		wantNil   bool
		wantArray []float64
	}{
		{name: "nil input returns nil", lengths: nil, wantNil: true},
		{name: "all zeros returns nil", lengths: []float64{0, 0}, wantNil: true},
		{name: "simple dash-gap pattern", lengths: []float64{5, 3}, wantArray: []float64{5, 3}},
		{name: "negative values become absolute", lengths: []float64{-5, 3}, wantArray: []float64{5, 3}},
		{name: "odd length kept as given", lengths: []float64{2}, wantArray: []float64{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDash(tt.lengths...)
			if tt.wantNil {
				if d != nil {
					t.Errorf("NewDash(%v) = %v, want nil", tt.lengths, d)
				}
				return
			}
			if d == nil {
				t.Fatalf("NewDash(%v) = nil", tt.lengths)
			}
			if len(d.Array) != len(tt.wantArray) {
				t.Fatalf("Array = %v, want %v", d.Array, tt.wantArray)
			}
			for i := range d.Array {
				if d.Array[i] != tt.wantArray[i] {
					t.Errorf("Array[%d] = %v, want %v", i, d.Array[i], tt.wantArray[i])
				}
			}
		})
	}
}

func TestDashPatternLength(t *testing.T) {
	if got := NewDash(5, 3).PatternLength(); got != 8 {
		t.Errorf("PatternLength() = %v, want 8", got)
	}
	if got := NewDash(2).PatternLength(); got != 4 {
		t.Errorf("odd PatternLength() = %v, want 4", got)
	}
	var d *Dash
	if d.PatternLength() != 0 || d.IsDashed() {
		t.Error("nil dash should be solid")
	}
}

func TestDashEqual(t *testing.T) {
	var solid *Dash
	if !solid.Equal(nil) {
		t.Error("nil should equal nil")
	}
	if solid.Equal(NewDash(1, 1)) {
		t.Error("solid should not equal dashed")
	}
	if !NewDash(1, 2).Equal(NewDash(1, 2)) {
		t.Error("identical patterns should be equal")
	}
	if NewDash(1, 2).Equal(NewDash(2, 1)) {
		t.Error("different patterns should not be equal")
	}
}

func TestDashScale(t *testing.T) {
	d := &Dash{Array: []float64{1, 2}, Offset: 0.5}
	s := d.Scale(10)
	if s.Array[0] != 10 || s.Array[1] != 20 || s.Offset != 5 {
		t.Errorf("Scale(10) = %+v", s)
	}
	if d.Array[0] != 1 {
		t.Error("Scale modified the receiver")
	}
}

func TestDashSegmentsSolid(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	var d *Dash
	segs := d.Segments(pts)
	if len(segs) != 1 || len(segs[0]) != 2 {
		t.Fatalf("solid Segments = %v, want the input polyline", segs)
	}
}

func TestDashSegmentsStraight(t *testing.T) {
	d := NewDash(2, 1)
	segs := d.Segments([]Point{{X: 0, Y: 0}, {X: 10, Y: 0}})

	// On: [0,2] [3,5] [6,8] [9,10]
	want := [][2]float64{{0, 2}, {3, 5}, {6, 8}, {9, 10}}
	if len(segs) != len(want) {
		t.Fatalf("got %d dashes, want %d: %v", len(segs), len(want), segs)
	}
	for i, s := range segs {
		first, last := s[0].X, s[len(s)-1].X
		if math.Abs(first-want[i][0]) > 1e-9 || math.Abs(last-want[i][1]) > 1e-9 {
			t.Errorf("dash %d = [%v, %v], want %v", i, first, last, want[i])
		}
	}
}

func TestDashSegmentsAcrossVertex(t *testing.T) {
	// The first dash (length 3) turns the corner at (2, 0).
	d := NewDash(3, 1)
	segs := d.Segments([]Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 4}})
	if len(segs) == 0 {
		t.Fatal("no dashes")
	}
	first := segs[0]
	if len(first) != 3 {
		t.Fatalf("first dash should keep the corner vertex, got %v", first)
	}
	end := first[len(first)-1]
	if math.Abs(end.X-2) > 1e-9 || math.Abs(end.Y-1) > 1e-9 {
		t.Errorf("first dash ends at %v, want (2, 1)", end)
	}
}

func TestDashSegmentsOffset(t *testing.T) {
	// Offset 2 starts in the gap.
	d := &Dash{Array: []float64{2, 2}, Offset: 2}
	segs := d.Segments([]Point{{X: 0, Y: 0}, {X: 8, Y: 0}})
	if len(segs) != 2 {
		t.Fatalf("got %d dashes, want 2: %v", len(segs), segs)
	}
	if math.Abs(segs[0][0].X-2) > 1e-9 {
		t.Errorf("first dash starts at %v, want 2", segs[0][0].X)
	}
}
