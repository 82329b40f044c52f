package ui

import "testing"

func TestScrollData(t *testing.T) {
	tests := []struct {
		name         string
		bounds       [4]float64
		moves        [][2]float64
		wantX, wantY float64
	}{
		{"zero bounds", [4]float64{}, [][2]float64{{1, 1}}, 0, 0},
		{"within", [4]float64{-1, 1, -1, 1}, [][2]float64{{0.5, -0.25}}, 0.5, -0.25},
		{"clamped high", [4]float64{0, 1, 0, 2}, [][2]float64{{3, 3}}, 1, 2},
		{"clamped low", [4]float64{0, 1, -2, 0}, [][2]float64{{-1, -1}, {0, -5}}, 0, -2},
		{"swapped bounds", [4]float64{1, -1, 0, 0}, [][2]float64{{-3, 0}}, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s ScrollData
			s.SetBounds(tt.bounds[0], tt.bounds[1], tt.bounds[2], tt.bounds[3])
			for _, m := range tt.moves {
				s.ScrollBy(m[0], m[1])
			}
			if x, y := s.Offset(); x != tt.wantX || y != tt.wantY {
				t.Errorf("Offset() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestScrollDataSetBoundsClamps(t *testing.T) {
	var s ScrollData
	s.SetBounds(0, 10, 0, 10)
	s.ScrollBy(8, 8)
	s.SetBounds(0, 5, 0, 5)
	if x, y := s.Offset(); x != 5 || y != 5 {
		t.Errorf("Offset() = (%v, %v), want (5, 5)", x, y)
	}
	if minX, maxX, minY, maxY := s.Bounds(); minX != 0 || maxX != 5 || minY != 0 || maxY != 5 {
		t.Errorf("Bounds() = %v %v %v %v", minX, maxX, minY, maxY)
	}
}
