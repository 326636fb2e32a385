package render

import "github.com/gogpu/gg"

// DimColor blends a color toward white. factor 0 returns the original
// color, factor 1 returns white; values outside [0, 1] are clamped.
// Alpha is preserved.
func DimColor(c gg.RGBA, factor float64) gg.RGBA {
	if factor < 0 {
		factor = 0
	} else if factor > 1 {
		factor = 1
	}
	out := c.Lerp(gg.RGB(1, 1, 1), factor)
	out.A = c.A
	return out
}
