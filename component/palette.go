package component

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Named colors shared by species and particle palettes
var (
	ColorBlack          = colorful.Color{R: 0, G: 0, B: 0}
	ColorWhite          = colorful.Color{R: 1, G: 1, B: 1}
	ColorRed            = colorful.Color{R: 1, G: 0, B: 0}
	ColorGreen          = colorful.Color{R: 0, G: 0.5, B: 0}
	ColorBlue           = colorful.Color{R: 0, G: 0, B: 1}
	ColorYellow         = colorful.Color{R: 1, G: 1, B: 0}
	ColorGray           = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	ColorPurple         = colorful.Color{R: 0.5, G: 0, B: 0.5}
	ColorGold           = colorful.Color{R: 1, G: 0.843, B: 0}
	ColorSilver         = colorful.Color{R: 0.753, G: 0.753, B: 0.753}
	ColorIndigo         = colorful.Color{R: 0.294, G: 0, B: 0.51}
	ColorDeepPink       = colorful.Color{R: 1, G: 0.078, B: 0.576}
	ColorCornflowerBlue = colorful.Color{R: 0.392, G: 0.584, B: 0.929}
	ColorOrange         = colorful.Color{R: 1, G: 0.647, B: 0}
	ColorBrown          = colorful.Color{R: 0.647, G: 0.165, B: 0.165}
	ColorCyan           = colorful.Color{R: 0, G: 1, B: 1}
)

// Palette is an ordered set of particle colors for bond and unbond bursts
type Palette []colorful.Color

// At returns the color for index i, wrapping around
func (p Palette) At(i int) colorful.Color {
	if len(p) == 0 {
		return ColorWhite
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

// Burst palettes per product, gold and silver sparks trail every bond
var (
	paletteNanoBot = Palette{ColorWhite, ColorYellow, ColorCornflowerBlue, ColorDeepPink, ColorIndigo, ColorGold, ColorSilver}
	paletteCFC1    = Palette{ColorWhite, ColorGray, ColorPurple, ColorPurple, ColorGreen, ColorGreen, ColorGold, ColorSilver}
	paletteCFC2    = Palette{ColorWhite, ColorGray, ColorPurple, ColorGreen, ColorGreen, ColorGreen, ColorGold, ColorSilver}
	paletteNO      = Palette{ColorWhite, ColorRed, ColorBlue, ColorGold, ColorSilver}
	paletteOH      = Palette{ColorWhite, ColorRed, ColorYellow, ColorGold, ColorSilver}
	paletteO2      = Palette{ColorWhite, ColorRed, ColorRed, ColorGold, ColorSilver}
	paletteN2      = Palette{ColorWhite, ColorBlue, ColorBlue, ColorGold, ColorSilver}
	paletteCH2     = Palette{ColorWhite, ColorGray, ColorYellow, ColorYellow, ColorGold, ColorSilver}
	paletteCH4     = Palette{ColorWhite, ColorGray, ColorYellow, ColorYellow, ColorYellow, ColorYellow, ColorGold, ColorSilver}
	paletteHH      = Palette{ColorWhite, ColorYellow, ColorYellow, ColorGold, ColorSilver}
	paletteH2O     = Palette{ColorWhite, ColorRed, ColorRed, ColorYellow, ColorGold, ColorSilver}
	paletteO3      = Palette{ColorWhite, ColorRed, ColorRed, ColorRed, ColorGold, ColorSilver}
	paletteCO2     = Palette{ColorWhite, ColorRed, ColorGray, ColorGray, ColorGold, ColorSilver}
	paletteN2O     = Palette{ColorWhite, ColorRed, ColorBlue, ColorBlue, ColorGold, ColorSilver}
	paletteAtom    = Palette{ColorWhite, ColorGray, ColorGold, ColorSilver}
)
