package render

import "github.com/gogpu/gg"

// Option configures a Renderer during creation.
// Use functional options to customize rendering behavior.
//
// Example:
//
//	// Default styling
//	r := render.New()
//
//	// Custom figure size and colors
//	r := render.New(
//		render.WithSize(800, 400),
//		render.WithColors(gg.Hex("333"), gg.Hex("d62728")),
//	)
type Option func(*options)

// options holds the resolved rendering configuration.
type options struct {
	width, height int
	cols          int
	margin        float64
	lineWidth     float64
	titleSize     float64
	refColor      gg.RGBA
	transColor    gg.RGBA
	background    gg.RGBA
	markers       bool
	titles        bool
}

// defaultOptions returns the default rendering configuration: a 1400x600
// figure with four panels per row, black reference grid, red deformed
// grid, corner markers and titles enabled.
func defaultOptions() options {
	return options{
		width:      1400,
		height:     600,
		cols:       4,
		margin:     14,
		lineWidth:  1,
		titleSize:  13,
		refColor:   gg.RGB(0, 0, 0),
		transColor: gg.Hex("d62728"),
		background: gg.RGB(1, 1, 1),
		markers:    true,
		titles:     true,
	}
}

// WithSize sets the pixel dimensions of the whole figure.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithColumns sets how many panels are laid out per row.
func WithColumns(cols int) Option {
	return func(o *options) {
		o.cols = cols
	}
}

// WithMargin sets the padding around each panel in pixels.
func WithMargin(margin float64) Option {
	return func(o *options) {
		o.margin = margin
	}
}

// WithLineWidth sets the stroke width for interior gridlines. Outer
// border lines are drawn at 1.5x this width.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		o.lineWidth = w
	}
}

// WithColors sets the colors of the reference and the deformed grid.
func WithColors(ref, deformed gg.RGBA) Option {
	return func(o *options) {
		o.refColor = ref
		o.transColor = deformed
	}
}

// WithBackground sets the figure background color.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithCornerMarkers toggles the filled dots at the four domain corners.
func WithCornerMarkers(on bool) Option {
	return func(o *options) {
		o.markers = on
	}
}

// WithTitles toggles the panel titles.
func WithTitles(on bool) Option {
	return func(o *options) {
		o.titles = on
	}
}
