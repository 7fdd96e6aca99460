package engine

import (
	"github.com/lixenwraith/free-radicals/component"
)

// Census is the population snapshot used to throttle timed spawns
// Always rebuilt from a full scan, never updated incrementally
type Census struct {
	Counts [component.SpeciesCount]int

	FreeRadicals    int // CFC1 + CFC2 + OH + NO
	GreenhouseGases int // N2O + CH4 + H2O + CO2, ozone tracked apart
	Atoms           int
	JointMolecules  int
	Total           int
}

// Count returns the number of live actors of species s
func (c *Census) Count(s component.Species) int {
	if s >= component.SpeciesCount {
		return 0
	}
	return c.Counts[s]
}

// Ozone returns the live ozone count
func (c *Census) Ozone() int {
	return c.Counts[component.SpeciesOzone]
}

// Recount rebuilds the census from the given actor sets, dead actors excluded
func (c *Census) Recount(sets ...[]*Actor) {
	*c = Census{}
	for _, set := range sets {
		for _, a := range set {
			if a.Dead {
				continue
			}
			c.Counts[a.Species]++
			c.Total++
		}
	}

	c.FreeRadicals = c.Counts[component.SpeciesCFC1] +
		c.Counts[component.SpeciesCFC2] +
		c.Counts[component.SpeciesHydroxyl] +
		c.Counts[component.SpeciesNitricOxide]

	c.GreenhouseGases = c.Counts[component.SpeciesNitrousOxide] +
		c.Counts[component.SpeciesMethane] +
		c.Counts[component.SpeciesWater] +
		c.Counts[component.SpeciesCarbonDioxide]

	for s := component.SpeciesNone + 1; s < component.SpeciesCount; s++ {
		switch {
		case s.Is(component.CatAtom):
			c.Atoms += c.Counts[s]
		case s.Is(component.CatJoint):
			c.JointMolecules += c.Counts[s]
		}
	}
}
