// Package render draws before/after grid comparisons with gg.
//
// Each transformation case becomes one panel: the reference grid dashed
// and dimmed underneath, the deformed grid solid on top, a bolder outer
// border, dots at the four domain corners, and a centered title. Panels
// are laid out in a rows-by-columns figure and saved as PNG via
// gg.Context.
package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"gridviz"
)

// ErrNoCases is returned by Figure when there is nothing to draw.
var ErrNoCases = errors.New("render: no cases to draw")

// Renderer turns grids into comparison figures. Create one with New;
// the zero value is not usable.
type Renderer struct {
	opts options
}

// New creates a Renderer with the given options applied over defaults.
func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.cols < 1 {
		o.cols = 1
	}
	return &Renderer{opts: o}
}

// Figure renders one comparison panel per case against the shared
// reference grid and returns the drawing context, ready for SavePNG or
// EncodePNG.
//
// All matrices are validated and applied before any pixel is touched, so
// an invalid matrix yields an error and no partial figure. Identity
// cases render the reference grid alone, solid, with no overlay.
func (r *Renderer) Figure(ref gridviz.Grid, cases []gridviz.Case) (*gg.Context, error) {
	if len(cases) == 0 {
		return nil, ErrNoCases
	}
	o := r.opts

	deformed := make([]*gridviz.Grid, len(cases))
	for i, c := range cases {
		if c.Matrix.IsIdentity() {
			continue
		}
		g, err := c.Matrix.Transform(ref)
		if err != nil {
			return nil, fmt.Errorf("render: case %q: %w", c.Name, err)
		}
		deformed[i] = &g
	}

	dc := gg.NewContext(o.width, o.height)
	dc.ClearWithColor(o.background)

	var face text.Face
	if o.titles {
		f, err := defaultFace(o.titleSize)
		if err != nil {
			gridviz.Logger().Warn("titles disabled, font unavailable", "err", err)
		} else {
			face = f
		}
	}

	rows := (len(cases) + o.cols - 1) / o.cols
	cellW := float64(o.width) / float64(o.cols)
	cellH := float64(o.height) / float64(rows)
	for i, c := range cases {
		cell := rect{
			x: float64(i%o.cols) * cellW,
			y: float64(i/o.cols) * cellH,
			w: cellW,
			h: cellH,
		}
		r.panel(dc, face, cell, ref, deformed[i], c.Name)
	}

	gridviz.Logger().Info("figure rendered",
		"cases", len(cases), "width", o.width, "height", o.height)
	return dc, nil
}

// rect is a pixel-space rectangle.
type rect struct {
	x, y, w, h float64
}

// viewport maps world coordinates into a pixel rectangle with equal axis
// scaling and the Y axis flipped (world Y up, image Y down).
type viewport struct {
	scale      float64
	offX, offY float64
}

func fitViewport(lo, hi gridviz.Point, area rect) viewport {
	spanX := hi.X - lo.X
	spanY := hi.Y - lo.Y
	// A singular matrix can collapse the grid onto a line; keep the
	// scale finite.
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}
	scale := math.Min(area.w/spanX, area.h/spanY)
	cx := (lo.X + hi.X) / 2
	cy := (lo.Y + hi.Y) / 2
	return viewport{
		scale: scale,
		offX:  area.x + area.w/2 - cx*scale,
		offY:  area.y + area.h/2 + cy*scale,
	}
}

func (v viewport) apply(p gridviz.Point) (x, y float64) {
	return p.X*v.scale + v.offX, v.offY - p.Y*v.scale
}

func (r *Renderer) panel(dc *gg.Context, face text.Face, cell rect, ref gridviz.Grid, deformed *gridviz.Grid, title string) {
	o := r.opts
	titleH := 0.0
	if o.titles && face != nil {
		titleH = o.titleSize + 8
	}
	area := rect{
		x: cell.x + o.margin,
		y: cell.y + o.margin + titleH,
		w: cell.w - 2*o.margin,
		h: cell.h - 2*o.margin - titleH,
	}

	lo, hi := ref.Extent()
	if deformed != nil {
		dlo, dhi := deformed.Extent()
		lo.X = math.Min(lo.X, dlo.X)
		lo.Y = math.Min(lo.Y, dlo.Y)
		hi.X = math.Max(hi.X, dhi.X)
		hi.Y = math.Max(hi.Y, dhi.Y)
	}
	// Pad the extent so bold borders and corner dots stay inside the
	// panel.
	padX := 0.05 * (hi.X - lo.X)
	padY := 0.05 * (hi.Y - lo.Y)
	vp := fitViewport(
		gridviz.Pt(lo.X-padX, lo.Y-padY),
		gridviz.Pt(hi.X+padX, hi.Y+padY),
		area,
	)
	gridviz.Logger().Debug("panel",
		"title", title, "scale", vp.scale,
		"extent_lo", lo, "extent_hi", hi)

	if deformed == nil {
		r.drawGrid(dc, ref, vp, o.refColor, false)
	} else {
		r.drawGrid(dc, ref, vp, o.refColor, true)
		r.drawGrid(dc, *deformed, vp, o.transColor, false)
	}

	if titleH > 0 {
		dc.SetFont(face)
		dc.SetColor(o.refColor.Color())
		dc.DrawStringAnchored(title, cell.x+cell.w/2, cell.y+o.margin+o.titleSize, 0.5, 0)
	}
}

// drawGrid strokes one grid: interior lines thin and dimmed, the outer
// border bolder and in full color, matching the reference figure style.
func (r *Renderer) drawGrid(dc *gg.Context, g gridviz.Grid, vp viewport, col gg.RGBA, dashed bool) {
	o := r.opts
	if dashed {
		dc.SetDash(5, 4)
	} else {
		dc.ClearDash()
	}

	dc.SetColor(DimColor(col, 0.5).Color())
	dc.SetLineWidth(o.lineWidth)
	strokeInterior(dc, vp, g.Horizontal)
	strokeInterior(dc, vp, g.Vertical)

	dc.SetColor(col.Color())
	dc.SetLineWidth(1.5 * o.lineWidth)
	for _, seg := range borderSegments(g) {
		strokeSegment(dc, vp, seg)
	}

	dc.ClearDash()
	if o.markers {
		for _, p := range g.Corners() {
			x, y := vp.apply(p)
			dc.DrawCircle(x, y, 2.5*o.lineWidth)
			_ = dc.Fill()
		}
	}
}

func strokeInterior(dc *gg.Context, vp viewport, segs []gridviz.Segment) {
	for i := 1; i < len(segs)-1; i++ {
		strokeSegment(dc, vp, segs[i])
	}
}

func borderSegments(g gridviz.Grid) []gridviz.Segment {
	return []gridviz.Segment{
		g.Horizontal[0],
		g.Horizontal[len(g.Horizontal)-1],
		g.Vertical[0],
		g.Vertical[len(g.Vertical)-1],
	}
}

func strokeSegment(dc *gg.Context, vp viewport, seg gridviz.Segment) {
	if len(seg) == 0 {
		return
	}
	x, y := vp.apply(seg[0])
	dc.MoveTo(x, y)
	for _, p := range seg[1:] {
		x, y = vp.apply(p)
		dc.LineTo(x, y)
	}
	_ = dc.Stroke()
}
