package engine

import (
	"log"
	"math"

	"github.com/lixenwraith/free-radicals/component"
	"github.com/lixenwraith/free-radicals/parameter"
	"github.com/lixenwraith/free-radicals/vmath"
)

// Spawn adds actor to the world, optionally relocating it to a free point
// Returns false only when the spawn-point search exhausted its attempts
// Spawns during Update are staged and become visible to iteration after collect
func (w *World) Spawn(actor *Actor, findSpawnPoint bool) bool {
	if actor == nil {
		panic("engine: spawn nil actor")
	}

	ok := true
	if findSpawnPoint {
		actor.Position, ok = w.FindSpawnPoint(actor)
	}

	w.nextID++
	actor.ID = w.nextID
	actor.Dead = false

	if w.updating {
		w.staged = append(w.staged, actor)
	} else {
		w.actors = append(w.actors, actor)
	}
	return ok
}

// SpawnAt constructs an actor of species s at pos, position in world units
func (w *World) SpawnAt(s component.Species, pos vmath.Vec2) *Actor {
	a := NewActor(s, w.resScale)
	a.Position = pos
	w.Spawn(a, false)
	return a
}

// SpawnProduct constructs a reaction product with the given kinematics
func (w *World) SpawnProduct(s component.Species, pos, vel, dir vmath.Vec2) *Actor {
	a := NewActor(s, w.resScale)
	a.Position = pos
	a.Velocity = vel
	a.Direction = dir
	w.Spawn(a, false)
	return a
}

// FindSpawnPoint samples the safe rectangle for a point where actor overlaps no live actor
// Non-collidable actors accept the first sample. After SpawnPointMaxAttempts the last
// sample is returned with false.
func (w *World) FindSpawnPoint(actor *Actor) (vmath.Vec2, bool) {
	if actor == nil {
		panic("engine: spawn point for nil actor")
	}

	radius := actor.SpawnRadius()
	safe := w.SafeArea()
	spawnMin := vmath.V2(safe.X+radius, safe.Y+radius)
	spawnDims := vmath.V2(
		math.Max(0, math.Floor(safe.Width-radius*2)),
		math.Max(0, math.Floor(safe.Height-radius*2)),
	)

	var p vmath.Vec2
	for attempt := 0; attempt < parameter.SpawnPointMaxAttempts; attempt++ {
		p = vmath.V2(
			spawnMin.X+w.rng.Float64()*spawnDims.X,
			spawnMin.Y+w.rng.Float64()*spawnDims.Y,
		)

		if !actor.Collidable {
			return p, true
		}

		if !w.overlapsAny(actor, p, radius) {
			return p, true
		}
	}

	log.Printf("spawn: no free point for %s after %d attempts", actor.Species, parameter.SpawnPointMaxAttempts)
	return p, false
}

func (w *World) overlapsAny(actor *Actor, p vmath.Vec2, radius float64) bool {
	for _, set := range [][]*Actor{w.actors, w.staged} {
		for _, other := range set {
			if other == actor || other.Dead {
				continue
			}
			if other.IsPlayer() && !other.Playing {
				continue
			}
			if vmath.CircleCircleIntersect(p, radius, other.Position, other.Radius) {
				return true
			}
		}
	}
	return false
}

// SpeciesBatch is a count of one species for batch spawning
type SpeciesBatch struct {
	Species component.Species
	Count   int
}

// SpawnBatch spawns each batch in order at searched points, returns how many found a free point
func (w *World) SpawnBatch(batches ...SpeciesBatch) int {
	placed := 0
	for _, b := range batches {
		for i := 0; i < b.Count; i++ {
			if w.Spawn(NewActor(b.Species, w.resScale), true) {
				placed++
			}
		}
	}
	return placed
}

// SpawnAtoms spawns the given number of each atom
func (w *World) SpawnAtoms(h, c, n, o, f, cl, br int) int {
	return w.SpawnBatch(
		SpeciesBatch{component.SpeciesHydrogen, h},
		SpeciesBatch{component.SpeciesCarbon, c},
		SpeciesBatch{component.SpeciesNitrogen, n},
		SpeciesBatch{component.SpeciesOxygen, o},
		SpeciesBatch{component.SpeciesFluorine, f},
		SpeciesBatch{component.SpeciesChlorine, cl},
		SpeciesBatch{component.SpeciesBromine, br},
	)
}

// SpawnJointMolecules spawns the given number of each joint molecule
func (w *World) SpawnJointMolecules(o2, n2, hh, ch2 int) int {
	return w.SpawnBatch(
		SpeciesBatch{component.SpeciesOxygenTwo, o2},
		SpeciesBatch{component.SpeciesNitrogenTwo, n2},
		SpeciesBatch{component.SpeciesDeuterium, hh},
		SpeciesBatch{component.SpeciesMethylene, ch2},
	)
}

// SpawnGreenhouseGases spawns the given number of each greenhouse gas
func (w *World) SpawnGreenhouseGases(o3, h2o, n2o, co2, ch4 int) int {
	return w.SpawnBatch(
		SpeciesBatch{component.SpeciesOzone, o3},
		SpeciesBatch{component.SpeciesWater, h2o},
		SpeciesBatch{component.SpeciesNitrousOxide, n2o},
		SpeciesBatch{component.SpeciesCarbonDioxide, co2},
		SpeciesBatch{component.SpeciesMethane, ch4},
	)
}

// SpawnFreeRadicals spawns the given number of each free radical
func (w *World) SpawnFreeRadicals(no, cfc1, cfc2, oh int) int {
	return w.SpawnBatch(
		SpeciesBatch{component.SpeciesNitricOxide, no},
		SpeciesBatch{component.SpeciesCFC1, cfc1},
		SpeciesBatch{component.SpeciesCFC2, cfc2},
		SpeciesBatch{component.SpeciesHydroxyl, oh},
	)
}

// StartNewGame resets the world to the opening layout
func (w *World) StartNewGame() {
	w.actors = w.actors[:0]
	w.staged = w.staged[:0]
	w.effects = w.effects[:0]
	w.halfReactions.Clear()
	w.applyResolution()

	for i := range w.players {
		p := NewActor(component.SpeciesNanoBot, w.resScale)
		p.Index = i
		w.players[i] = p
		w.Spawn(p, false)
	}

	for _, pl := range emitterLayout {
		w.SpawnAt(pl.species, w.Scaled(pl.x, pl.y))
	}

	w.SpawnGreenhouseGases(parameter.InitialOzone, 0, 0, 0, 0)

	w.timers = SpawnTimers{
		FreeRadicals:    parameter.FreeRadicalsInitialDelay,
		GreenhouseGases: parameter.GreenhouseInitialDelay,
	}

	center := vmath.V2Scale(w.dimensions, 0.5)
	w.focal = center
	w.focalTarget = center
	w.Recount()
}

// JoinPlayer brings player slot i into play at a free point
func (w *World) JoinPlayer(i int) bool {
	if i < 0 || i >= len(w.players) || w.players[i] == nil {
		return false
	}
	p := w.players[i]
	p.Playing = true
	p.Collidable = true
	p.Life = parameter.PlayerLife
	p.Velocity = vmath.Vec2{}
	pos, ok := w.FindSpawnPoint(p)
	p.Position = pos
	return ok
}
