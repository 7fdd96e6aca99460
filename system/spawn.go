package system

import (
	"github.com/lixenwraith/free-radicals/component"
	"github.com/lixenwraith/free-radicals/engine"
	"github.com/lixenwraith/free-radicals/parameter"
)

// menuEntry is one choice of a timed arrival menu, position in reference units
type menuEntry struct {
	species component.Species
	x, y    float64
}

// freeRadicalMenu arrives below the playfield in two columns
var freeRadicalMenu = []menuEntry{
	{component.SpeciesNitricOxide, parameter.SpawnColumnLeft, parameter.SpawnRowFirst},
	{component.SpeciesCFC1, parameter.SpawnColumnLeft, parameter.SpawnRowSecond},
	{component.SpeciesCFC2, parameter.SpawnColumnLeft, parameter.SpawnRowThird},
	{component.SpeciesHydroxyl, parameter.SpawnColumnLeft, parameter.SpawnRowFourth},
	{component.SpeciesOzone, parameter.SpawnColumnLeft, parameter.SpawnRowFourth},
	{component.SpeciesNitricOxide, parameter.SpawnColumnRight, parameter.SpawnRowFirst},
	{component.SpeciesCFC1, parameter.SpawnColumnRight, parameter.SpawnRowSecond},
	{component.SpeciesCFC2, parameter.SpawnColumnRight, parameter.SpawnRowThird},
	{component.SpeciesHydroxyl, parameter.SpawnColumnRight, parameter.SpawnRowFourth},
	{component.SpeciesOzone, parameter.SpawnColumnRight, parameter.SpawnRowFourth},
}

// greenhouseMenu arrives in the left column only
var greenhouseMenu = []menuEntry{
	{component.SpeciesWater, parameter.SpawnColumnLeft, parameter.SpawnRowWater},
	{component.SpeciesCarbonDioxide, parameter.SpawnColumnLeft, parameter.SpawnRowFirst},
	{component.SpeciesNitrousOxide, parameter.SpawnColumnLeft, parameter.SpawnRowSecond},
	{component.SpeciesMethane, parameter.SpawnColumnLeft, parameter.SpawnRowThird},
	{component.SpeciesOzone, parameter.SpawnColumnLeft, parameter.SpawnRowFourth},
}

// SpawnSystem runs the two arrival timers
type SpawnSystem struct {
	world *engine.World
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(world *engine.World) engine.System {
	return &SpawnSystem{world: world}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// Update counts both timers down and draws from a menu when one lapses
func (s *SpawnSystem) Update(dt float64) {
	timers := s.world.Timers()
	census := s.world.Census()

	if lapse(&timers.FreeRadicals, dt, parameter.FreeRadicalsDelay) {
		s.arrive(freeRadicalMenu, census.FreeRadicals, parameter.FreeRadicalCap)
	}
	if lapse(&timers.GreenhouseGases, dt, parameter.GreenhouseGasesDelay) {
		s.arrive(greenhouseMenu, census.GreenhouseGases, parameter.GreenhouseGasCap)
	}
}

// lapse counts timer down and rearms it with delay once it reaches zero
func lapse(timer *float64, dt, delay float64) bool {
	if *timer > 0 {
		*timer = max(*timer-dt, 0)
	}
	if *timer <= 0 {
		*timer = delay
		return true
	}
	return false
}

// arrive spawns one uniformly drawn menu entry unless the population is at cap
// The cap check precedes the draw so a capped menu consumes no randomness
func (s *SpawnSystem) arrive(menu []menuEntry, population, limit int) *engine.Actor {
	if population >= limit {
		return nil
	}
	e := menu[s.world.RNG().Intn(len(menu))]
	return s.world.SpawnAt(e.species, s.world.Scaled(e.x, e.y))
}
