package gridviz

import "fmt"

// Bounds defines the square domain [Min, Max] x [Min, Max] a grid is
// generated over.
type Bounds struct {
	Min, Max float64
}

// Segment is one polyline of a grid. Generated segments always hold at
// least two points.
type Segment []Point

// Grid is a structured set of horizontal and vertical gridlines tiling a
// rectangular domain. Horizontal segments are ordered bottom to top,
// vertical segments left to right; together they share one lattice of
// points, so Horizontal[i][j] == Vertical[j][i] for a freshly generated
// grid.
type Grid struct {
	Horizontal []Segment
	Vertical   []Segment
}

// NewGrid generates a structured grid over b with the given spacing
// between gridlines. Lines are placed at Min, Min+step, ... and a final
// line at Max; when step does not evenly divide the span the last
// interval is shortened so the grid still tiles the full rectangle.
//
// Returns an error wrapping ErrInvalidConfig when step <= 0, the bounds
// are degenerate (Min >= Max), or any value is non-finite.
func NewGrid(b Bounds, step float64) (Grid, error) {
	if !isFinite(step) || step <= 0 {
		return Grid{}, fmt.Errorf("%w: step %v must be a positive finite number", ErrInvalidConfig, step)
	}
	if !isFinite(b.Min) || !isFinite(b.Max) {
		return Grid{}, fmt.Errorf("%w: bounds [%v, %v] must be finite", ErrInvalidConfig, b.Min, b.Max)
	}
	if b.Min >= b.Max {
		return Grid{}, fmt.Errorf("%w: bounds [%v, %v] are degenerate", ErrInvalidConfig, b.Min, b.Max)
	}

	levels := gridLevels(b, step)
	n := len(levels)

	g := Grid{
		Horizontal: make([]Segment, n),
		Vertical:   make([]Segment, n),
	}
	for i, y := range levels {
		seg := make(Segment, n)
		for j, x := range levels {
			seg[j] = Point{X: x, Y: y}
		}
		g.Horizontal[i] = seg
	}
	for j, x := range levels {
		seg := make(Segment, n)
		for i, y := range levels {
			seg[i] = Point{X: x, Y: y}
		}
		g.Vertical[j] = seg
	}
	return g, nil
}

// gridLevels returns the ascending gridline coordinates for one axis.
// Floating-point drift near Max collapses onto Max itself, so an even
// step never produces a duplicated or missing final line.
func gridLevels(b Bounds, step float64) []float64 {
	eps := (b.Max - b.Min) * 1e-9
	var levels []float64
	for i := 0; ; i++ {
		v := b.Min + float64(i)*step
		if v >= b.Max-eps {
			break
		}
		levels = append(levels, v)
	}
	return append(levels, b.Max)
}

// Segments returns all gridlines, horizontal first.
func (g Grid) Segments() []Segment {
	out := make([]Segment, 0, len(g.Horizontal)+len(g.Vertical))
	out = append(out, g.Horizontal...)
	return append(out, g.Vertical...)
}

// Corners returns the four extreme lattice points in the order
// bottom-left, bottom-right, top-left, top-right. For transformed grids
// these are the images of the original domain corners.
func (g Grid) Corners() [4]Point {
	bottom := g.Horizontal[0]
	top := g.Horizontal[len(g.Horizontal)-1]
	return [4]Point{
		bottom[0],
		bottom[len(bottom)-1],
		top[0],
		top[len(top)-1],
	}
}

// Extent returns the axis-aligned bounding box of all grid points.
func (g Grid) Extent() (lo, hi Point) {
	first := true
	for _, seg := range g.Segments() {
		for _, p := range seg {
			if first {
				lo, hi = p, p
				first = false
				continue
			}
			lo.X = min(lo.X, p.X)
			lo.Y = min(lo.Y, p.Y)
			hi.X = max(hi.X, p.X)
			hi.Y = max(hi.Y, p.Y)
		}
	}
	return lo, hi
}
