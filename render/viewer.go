package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/free-radicals/component"
	"github.com/lixenwraith/free-radicals/engine"
	"github.com/lixenwraith/free-radicals/parameter"
	"github.com/lixenwraith/free-radicals/vmath"
)

const (
	particleRune = '∙'
	fillRune     = ' '
	hudRows      = 1
)

// Viewer draws the world onto a terminal screen, one HUD line at the bottom
type Viewer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewViewer creates a viewer over screen
func NewViewer(screen tcell.Screen) *Viewer {
	v := &Viewer{screen: screen}
	v.Resize()
	return v
}

// Resize re-reads the screen dimensions
func (v *Viewer) Resize() {
	v.width, v.height = v.screen.Size()
}

// field returns the drawable area in cells
func (v *Viewer) field() (int, int) {
	return v.width, max(v.height-hudRows, 0)
}

// WorldToCell maps a world position to a screen cell, ok is false off-field
func (v *Viewer) WorldToCell(w *engine.World, p vmath.Vec2) (x, y int, ok bool) {
	cols, rows := v.field()
	dims := w.Dimensions()
	if cols == 0 || rows == 0 || dims.X <= 0 || dims.Y <= 0 {
		return 0, 0, false
	}
	if p.X < 0 || p.Y < 0 || p.X >= dims.X || p.Y >= dims.Y {
		return 0, 0, false
	}
	return int(p.X / dims.X * float64(cols)), int(p.Y / dims.Y * float64(rows)), true
}

// Draw renders particles, actors and the HUD then shows the frame
func (v *Viewer) Draw(w *engine.World) {
	base := tcell.StyleDefault.Background(RgbBackground)
	v.screen.SetStyle(base)
	v.screen.Clear()

	v.drawParticles(w, base)
	w.EachActive(func(a *engine.Actor) {
		v.drawActor(w, a, base)
	})
	v.drawHud(w)

	v.screen.Show()
}

func (v *Viewer) drawParticles(w *engine.World, base tcell.Style) {
	for _, fx := range w.Effects() {
		visitor, ok := fx.(engine.EffectVisitor)
		if !ok || !fx.Active() {
			continue
		}
		visitor.Visit(func(p engine.EffectParticle) {
			x, y, ok := v.WorldToCell(w, p.Position)
			if !ok {
				return
			}
			v.screen.SetContent(x, y, particleRune, nil, base.Foreground(Fade(p.Color, p.Alpha)))
		})
	}
}

// drawActor fills bodies wider than a cell and stamps the species glyph at the center
func (v *Viewer) drawActor(w *engine.World, a *engine.Actor, base tcell.Style) {
	cx, cy, ok := v.WorldToCell(w, a.Position)
	if !ok {
		return
	}
	p := a.Profile()
	color := ToTcell(p.Color)

	cols, rows := v.field()
	dims := w.Dimensions()
	rx := a.Radius / dims.X * float64(cols)
	ry := a.Radius / dims.Y * float64(rows)

	if rx < 1 && ry < 1 {
		v.screen.SetContent(cx, cy, p.Symbol, nil, base.Foreground(color).Bold(true))
		return
	}

	fill := base.Background(color)
	ix, iy := int(rx), int(ry)
	for dy := -iy; dy <= iy; dy++ {
		for dx := -ix; dx <= ix; dx++ {
			nx, ny := float64(dx)/max(rx, 1), float64(dy)/max(ry, 1)
			if nx*nx+ny*ny > 1 {
				continue
			}
			x, y := cx+dx, cy+dy
			if x < 0 || y < 0 || x >= cols || y >= rows {
				continue
			}
			v.screen.SetContent(x, y, fillRune, nil, fill)
		}
	}
	v.screen.SetContent(cx, cy, p.Symbol, nil, fill.Foreground(RgbGlyphDark).Bold(true))
}

// HudLine formats the census summary shown under the field
func HudLine(w *engine.World) string {
	c := w.Census()
	line := fmt.Sprintf(" F%-6d radicals %d/%d  greenhouse %d/%d  O3 %d  total %d",
		w.Frame(), c.FreeRadicals, parameter.FreeRadicalCap,
		c.GreenhouseGases, parameter.GreenhouseGasCap, c.Ozone(), c.Total)
	for _, p := range w.Players() {
		if p != nil && p.Playing {
			line += fmt.Sprintf("  P%d %3.0f", p.Index+1, p.Life)
		}
	}
	return line
}

func (v *Viewer) drawHud(w *engine.World) {
	if v.height < hudRows {
		return
	}
	y := v.height - hudRows
	style := tcell.StyleDefault.Background(RgbHudBg).Foreground(RgbHudText)
	c := w.Census()
	if c.FreeRadicals >= parameter.FreeRadicalCap || c.GreenhouseGases >= parameter.GreenhouseGasCap {
		style = style.Foreground(RgbHudAlert)
	}

	x := 0
	for _, r := range HudLine(w) {
		if x >= v.width {
			break
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < v.width; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}
}

// Glyph returns the rune drawn for species s
func Glyph(s component.Species) rune {
	if p := component.Lookup(s); p != nil {
		return p.Symbol
	}
	return '?'
}
