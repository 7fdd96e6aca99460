package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions for the viewer chrome
var (
	RgbBackground = tcell.NewRGBColor(10, 12, 28)    // Night sky
	RgbHudText    = tcell.NewRGBColor(230, 230, 230) // Near white
	RgbHudBg      = tcell.NewRGBColor(30, 34, 60)    // Slate
	RgbHudAlert   = tcell.NewRGBColor(255, 80, 80)   // Cap reached
	RgbGlyphDark  = tcell.NewRGBColor(0, 0, 0)       // Glyph over a filled body
)

var background, _ = colorful.Hex("#0a0c1c")

// ToTcell converts a palette color to a terminal color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Fade blends c toward the background by 1-alpha
func Fade(c colorful.Color, alpha float64) tcell.Color {
	switch {
	case alpha <= 0:
		return RgbBackground
	case alpha >= 1:
		return ToTcell(c)
	}
	return ToTcell(background.BlendLab(c, alpha))
}
