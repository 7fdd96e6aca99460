package reaction

import (
	"github.com/lixenwraith/free-radicals/component"
	"github.com/lixenwraith/free-radicals/engine"
	"github.com/lixenwraith/free-radicals/parameter"
	"github.com/lixenwraith/free-radicals/vmath"
)

// Fragment is one component released by an unbond
type Fragment struct {
	Species component.Species
	Offset  float64 // X offset from the composite, reference units
	Factor  float64 // Velocity and direction multiplier
}

var (
	slow = parameter.UnbondSlowFactor
	fast = parameter.UnbondFastFactor
)

// decompositions lists each composite's fragments, first fragment stays in place
var decompositions = map[component.Species][]Fragment{
	component.SpeciesOxygenTwo: {
		{component.SpeciesOxygen, 0, slow},
		{component.SpeciesOxygen, parameter.UnbondOffsetO2, fast},
	},
	component.SpeciesDeuterium: {
		{component.SpeciesHydrogen, 0, slow},
		{component.SpeciesHydrogen, parameter.UnbondOffsetHH, fast},
	},
	component.SpeciesNitrogenTwo: {
		{component.SpeciesNitrogen, 0, slow},
		{component.SpeciesNitrogen, parameter.UnbondOffsetN2, fast},
	},
	component.SpeciesOzone: {
		{component.SpeciesOxygenTwo, 0, slow},
		{component.SpeciesOxygen, parameter.UnbondOffsetO3, slow},
	},
	component.SpeciesCarbonDioxide: {
		{component.SpeciesOxygenTwo, 0, slow},
		{component.SpeciesCarbon, parameter.UnbondOffsetCO2, fast},
	},
	component.SpeciesHydroxyl: {
		{component.SpeciesOxygen, 0, slow},
		{component.SpeciesHydrogen, parameter.UnbondOffsetOH, fast},
	},
	component.SpeciesNitricOxide: {
		{component.SpeciesOxygen, 0, slow},
		{component.SpeciesNitrogen, parameter.UnbondOffsetNO, fast},
	},
	component.SpeciesWater: {
		{component.SpeciesOxygen, 0, slow},
		{component.SpeciesDeuterium, parameter.UnbondOffsetH2O, fast},
	},
	component.SpeciesMethylene: {
		{component.SpeciesCarbon, 0, slow},
		{component.SpeciesDeuterium, parameter.UnbondOffsetCH2, fast},
	},
	component.SpeciesMethane: {
		{component.SpeciesCarbon, 0, slow},
		{component.SpeciesDeuterium, parameter.UnbondOffsetCH4Near, 1},
		{component.SpeciesDeuterium, parameter.UnbondOffsetCH4Far, fast},
	},
	component.SpeciesNitrousOxide: {
		{component.SpeciesOxygen, 0, slow},
		{component.SpeciesNitrogenTwo, parameter.UnbondOffsetN2O, fast},
	},
}

// Fragments returns the decomposition of s, nil when s cannot be split
func Fragments(s component.Species) []Fragment {
	return decompositions[s]
}

// Unbond splits a live composite into its fragments and kills it
// Returns false when the actor is dead or has no decomposition
func Unbond(w *engine.World, a *engine.Actor) bool {
	if a == nil {
		panic("reaction: unbond nil actor")
	}
	parts := decompositions[a.Species]
	if a.Dead || len(parts) == 0 {
		return false
	}

	a.Die(a)
	for _, f := range parts {
		pos := vmath.V2Add(a.Position, vmath.V2(f.Offset*w.ResScale(), 0))
		w.SpawnProduct(f.Species, pos, vmath.V2Scale(a.Velocity, f.Factor), vmath.V2Scale(a.Direction, f.Factor))
	}
	w.AddEffect(burst(w, a.Species, a.Position, a.Direction))
	w.PlayCue(parameter.CueUnbond)
	return true
}
