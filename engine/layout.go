package engine

import (
	"github.com/lixenwraith/free-radicals/component"
)

// placement is an emitter position in reference units
type placement struct {
	species component.Species
	x, y    float64
}

const (
	layoutStep = 250.0
	layoutSpan = 2000.0
)

// row places emitters along y from x=0 to layoutSpan, skipping listed x values
func row(s component.Species, y float64, skip ...float64) []placement {
	var out []placement
	for x := 0.0; x <= layoutSpan; x += layoutStep {
		if !contains(skip, x) {
			out = append(out, placement{s, x, y})
		}
	}
	return out
}

// column places emitters along x from y=0 to maxY, skipping listed y values
func column(s component.Species, x, maxY float64, skip ...float64) []placement {
	var out []placement
	for y := 0.0; y <= maxY; y += layoutStep {
		if !contains(skip, y) {
			out = append(out, placement{s, x, y})
		}
	}
	return out
}

func contains(list []float64, v float64) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// emitterLayout is the opening arrangement of poles and repel points
var emitterLayout = func() []placement {
	var l []placement

	// Poles
	l = append(l, row(component.SpeciesNorth, -7000, 2000)...)
	l = append(l,
		placement{component.SpeciesNorth, 2000, -1000},
		placement{component.SpeciesSouth, 500, 1900},
		placement{component.SpeciesSouth, 1000, 2000},
		placement{component.SpeciesSouth, 1500, 1900},
		placement{component.SpeciesWest, -500, 500},
		placement{component.SpeciesEast, 2420, 500},
	)

	// One: outer frame
	l = append(l, row(component.SpeciesRepelOne, -200)...)
	l = append(l, row(component.SpeciesRepelOne, 2000)...)
	l = append(l, column(component.SpeciesRepelOne, -200, 1250)...)
	l = append(l, column(component.SpeciesRepelOne, 2120, 1250)...)

	// Two: wider frame
	l = append(l, row(component.SpeciesRepelTwo, -200)...)
	l = append(l, row(component.SpeciesRepelTwo, 2200)...)
	l = append(l, column(component.SpeciesRepelTwo, -200, layoutSpan)...)
	l = append(l, column(component.SpeciesRepelTwo, 2120, layoutSpan)...)

	// Three: wider frame with side gaps
	l = append(l, row(component.SpeciesRepelThree, -200)...)
	l = append(l, row(component.SpeciesRepelThree, 2200)...)
	l = append(l, column(component.SpeciesRepelThree, -200, layoutSpan, 500, 750)...)
	l = append(l, column(component.SpeciesRepelThree, 2120, layoutSpan, 500, 750)...)

	// Four: outer side posts
	for _, y := range []float64{250, 500, 750} {
		l = append(l,
			placement{component.SpeciesRepelFour, -300, y},
			placement{component.SpeciesRepelFour, 2220, y},
		)
	}

	// Five: floor posts
	for _, x := range []float64{250, 750, 1250, 1750} {
		l = append(l, placement{component.SpeciesRepelFive, x, 1750})
	}

	// Six: ceiling with gaps
	l = append(l, row(component.SpeciesRepelSix, -200, 500, 1500)...)

	// Seven: lower band with a center gap
	l = append(l, row(component.SpeciesRepelSeven, 1400, 1000)...)

	return l
}()
