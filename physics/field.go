package physics

import (
	"github.com/lixenwraith/free-radicals/component"
	"github.com/lixenwraith/free-radicals/engine"
	"github.com/lixenwraith/free-radicals/parameter"
	"github.com/lixenwraith/free-radicals/vmath"
)

// FieldMatrix holds signed field coefficients indexed [source][target]
// Positive pushes the target away from the source, negative pulls it in
type FieldMatrix [component.SpeciesCount][component.SpeciesCount]float64

// NewFieldMatrix builds the default species field table
func NewFieldMatrix() *FieldMatrix {
	m := &FieldMatrix{}

	for _, target := range component.AllSpecies() {
		if target.Is(component.CatEmitter) {
			continue
		}

		// Oxygen nudges everything outward
		m[component.SpeciesOxygen][target] += parameter.FieldDefault

		for _, h := range []component.Species{
			component.SpeciesFluorine,
			component.SpeciesChlorine,
			component.SpeciesBromine,
		} {
			m[h][target] += parameter.FieldDefault
		}

		for _, e := range component.AllSpecies() {
			if e.Is(component.CatEmitter) {
				m[e][target] += parameter.FieldDefault
			}
		}
	}

	// Oxygen draws in its bonding partners
	for _, target := range []component.Species{
		component.SpeciesNitrogenTwo,
		component.SpeciesNitrogen,
		component.SpeciesOxygen,
		component.SpeciesOxygenTwo,
		component.SpeciesHydrogen,
	} {
		m[component.SpeciesOxygen][target] -= parameter.FieldStrong
	}

	m[component.SpeciesHydrogen][component.SpeciesHydrogen] -= parameter.FieldDefault
	m[component.SpeciesHydrogen][component.SpeciesHydroxyl] -= parameter.FieldDefault

	return m
}

// Coefficient returns the field strength source exerts on target
func (m *FieldMatrix) Coefficient(source, target component.Species) float64 {
	if !source.Valid() || !target.Valid() {
		return 0
	}
	return m[source][target]
}

// Apply implements engine.Field over the world's committed actors
func (m *FieldMatrix) Apply(w *engine.World, source *engine.Actor) {
	ApplyField(m, source, w.Actors())
}

// ApplyField nudges every active movable target within source's collision radius
// Not scaled by dt, the nudge is per frame
func ApplyField(m *FieldMatrix, source *engine.Actor, actors []*engine.Actor) {
	if !source.Active() {
		return
	}
	row := &m[source.Species]

	for _, target := range actors {
		if target == source || !target.Active() || !target.Movable() {
			continue
		}
		k := row[target.Species]
		if k == 0 {
			continue
		}

		offset := vmath.V2Sub(target.Position, source.Position)
		if vmath.V2Mag(offset) > source.CollisionRadius {
			continue
		}
		target.Velocity = vmath.V2Add(target.Velocity, vmath.V2Scale(offset, k))
	}
}
