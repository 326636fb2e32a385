package gridviz

import (
	"errors"
	"math"
	"testing"
)

func TestNewGridLineCounts(t *testing.T) {
	tests := []struct {
		name  string
		b     Bounds
		step  float64
		lines int
	}{
		{"unit square quarter step", Bounds{Min: 0, Max: 1}, 0.25, 5},
		{"symmetric unit step", Bounds{Min: -1, Max: 1}, 1, 3},
		{"single cell", Bounds{Min: 0, Max: 1}, 1, 2},
		{"step larger than span", Bounds{Min: 0, Max: 1}, 5, 2},
		{"uneven step clamps to max", Bounds{Min: 0, Max: 1}, 0.4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.b, tt.step)
			if err != nil {
				t.Fatalf("NewGrid failed: %v", err)
			}
			if len(g.Horizontal) != tt.lines || len(g.Vertical) != tt.lines {
				t.Errorf("got %d horizontal / %d vertical lines, want %d each",
					len(g.Horizontal), len(g.Vertical), tt.lines)
			}
		})
	}
}

func TestNewGridLevels(t *testing.T) {
	g, err := NewGrid(Bounds{Min: -1, Max: 1}, 1)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	want := []float64{-1, 0, 1}
	for i, seg := range g.Horizontal {
		if math.Abs(seg[0].Y-want[i]) > 1e-12 {
			t.Errorf("horizontal line %d at y=%v, want %v", i, seg[0].Y, want[i])
		}
	}
	for j, seg := range g.Vertical {
		if math.Abs(seg[0].X-want[j]) > 1e-12 {
			t.Errorf("vertical line %d at x=%v, want %v", j, seg[0].X, want[j])
		}
	}
}

func TestNewGridPointsWithinBounds(t *testing.T) {
	tests := []struct {
		name string
		b    Bounds
		step float64
	}{
		{"unit", Bounds{Min: 0, Max: 1}, 0.25},
		{"offset", Bounds{Min: 2.5, Max: 7.5}, 0.7},
		{"negative", Bounds{Min: -3, Max: -1}, 0.3},
		{"tiny step", Bounds{Min: 0, Max: 1}, 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.b, tt.step)
			if err != nil {
				t.Fatalf("NewGrid failed: %v", err)
			}
			for _, seg := range g.Segments() {
				if len(seg) < 2 {
					t.Fatalf("segment with %d points, want >= 2", len(seg))
				}
				for _, p := range seg {
					if p.X < tt.b.Min-1e-9 || p.X > tt.b.Max+1e-9 ||
						p.Y < tt.b.Min-1e-9 || p.Y > tt.b.Max+1e-9 {
						t.Fatalf("point %v outside bounds %+v", p, tt.b)
					}
				}
			}
		})
	}
}

func TestNewGridLattice(t *testing.T) {
	g, err := NewGrid(Bounds{Min: 0, Max: 1}, 0.25)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	// Horizontal and vertical lines cross at a shared lattice.
	for i, h := range g.Horizontal {
		for j, v := range g.Vertical {
			if !pointsEqual(h[j], v[i], 0) {
				t.Fatalf("lattice mismatch at (%d, %d): %v vs %v", i, j, h[j], v[i])
			}
		}
	}
}

func TestNewGridInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		b    Bounds
		step float64
	}{
		{"zero step", Bounds{Min: 0, Max: 1}, 0},
		{"negative step", Bounds{Min: 0, Max: 1}, -0.5},
		{"nan step", Bounds{Min: 0, Max: 1}, math.NaN()},
		{"inf step", Bounds{Min: 0, Max: 1}, math.Inf(1)},
		{"min equals max", Bounds{Min: 1, Max: 1}, 0.25},
		{"min above max", Bounds{Min: 2, Max: 1}, 0.25},
		{"nan bound", Bounds{Min: math.NaN(), Max: 1}, 0.25},
		{"inf bound", Bounds{Min: 0, Max: math.Inf(1)}, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.b, tt.step)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("NewGrid error = %v, want ErrInvalidConfig", err)
			}
			if len(g.Horizontal) != 0 || len(g.Vertical) != 0 {
				t.Error("NewGrid returned a grid alongside an error")
			}
		})
	}
}

func TestCorners(t *testing.T) {
	g, err := NewGrid(Bounds{Min: -1, Max: 2}, 0.5)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	want := [4]Point{Pt(-1, -1), Pt(2, -1), Pt(-1, 2), Pt(2, 2)}
	got := g.Corners()
	for i := range want {
		if !pointsEqual(got[i], want[i], 1e-12) {
			t.Errorf("corner %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExtent(t *testing.T) {
	g, err := NewGrid(Bounds{Min: 0, Max: 1}, 0.5)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	sheared, err := Shearing(0.5, 0).Transform(g)
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	lo, hi := sheared.Extent()
	if !pointsEqual(lo, Pt(0, 0), 1e-12) || !pointsEqual(hi, Pt(1.5, 1), 1e-12) {
		t.Errorf("Extent() = %v, %v, want (0,0), (1.5,1)", lo, hi)
	}
}

func TestSegmentsOrder(t *testing.T) {
	g, err := NewGrid(Bounds{Min: 0, Max: 1}, 0.5)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	all := g.Segments()
	if len(all) != len(g.Horizontal)+len(g.Vertical) {
		t.Fatalf("Segments() returned %d segments, want %d",
			len(all), len(g.Horizontal)+len(g.Vertical))
	}
	if !pointsEqual(all[0][0], g.Horizontal[0][0], 0) {
		t.Error("Segments() does not start with the horizontal lines")
	}
}
