package component

// Species identifies the concrete actor variant
// Closed set: behavior is dispatched by table lookup on this tag
type Species uint8

const (
	SpeciesNone Species = iota

	// Atoms
	SpeciesHydrogen
	SpeciesCarbon
	SpeciesNitrogen
	SpeciesOxygen
	SpeciesFluorine
	SpeciesChlorine
	SpeciesBromine

	// Joint molecules
	SpeciesOxygenTwo
	SpeciesNitrogenTwo
	SpeciesDeuterium
	SpeciesMethylene

	// Greenhouse gases
	SpeciesOzone
	SpeciesWater
	SpeciesNitrousOxide
	SpeciesCarbonDioxide
	SpeciesMethane

	// Free radicals
	SpeciesNitricOxide
	SpeciesCFC1
	SpeciesCFC2
	SpeciesHydroxyl

	// Poles
	SpeciesNorth
	SpeciesSouth
	SpeciesWest
	SpeciesEast

	// Repel points
	SpeciesRepelOne
	SpeciesRepelTwo
	SpeciesRepelThree
	SpeciesRepelFour
	SpeciesRepelFive
	SpeciesRepelSix
	SpeciesRepelSeven

	// Player
	SpeciesNanoBot

	SpeciesCount
)

// String returns the display name of the species
func (s Species) String() string {
	if s >= SpeciesCount {
		return "Unknown"
	}
	return profiles[s].Name
}

// Is reports whether the species belongs to any category in c
func (s Species) Is(c Category) bool {
	if s >= SpeciesCount {
		return false
	}
	return profiles[s].Category.Any(c)
}

// Valid reports whether s is a concrete species
func (s Species) Valid() bool {
	return s > SpeciesNone && s < SpeciesCount
}

// AllSpecies returns every concrete species in declaration order
func AllSpecies() []Species {
	out := make([]Species, 0, SpeciesCount-1)
	for s := SpeciesNone + 1; s < SpeciesCount; s++ {
		out = append(out, s)
	}
	return out
}

// SpeciesByName resolves a display name, used by the spectator protocol and config
func SpeciesByName(name string) (Species, bool) {
	for s := SpeciesNone + 1; s < SpeciesCount; s++ {
		if profiles[s].Name == name {
			return s, true
		}
	}
	return SpeciesNone, false
}
