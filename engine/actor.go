package engine

import (
	"math"

	"github.com/lixenwraith/free-radicals/component"
	"github.com/lixenwraith/free-radicals/parameter"
	"github.com/lixenwraith/free-radicals/vmath"
)

// Actor is a circular simulated body, the species tag selects its behavior
type Actor struct {
	ID      uint64
	Species component.Species

	Position  vmath.Vec2
	Velocity  vmath.Vec2
	Direction vmath.Vec2
	Rotation  float64

	Mass            float64
	Radius          float64
	CollisionRadius float64

	Dead              bool
	CollidedThisFrame bool
	Collidable        bool

	// Player state, unused by other species
	Index          int
	Life           float64
	Playing        bool
	NegativeCharge bool

	profile *component.Profile
}

// NewActor constructs an actor of the given species with constants scaled by resScale
func NewActor(species component.Species, resScale float64) *Actor {
	p := component.Lookup(species)
	if p == nil || !species.Valid() {
		panic("engine: invalid species")
	}

	radius := p.Radius
	if p.ScaleWithResolution {
		radius *= resScale
	}
	// Outline polygon may extend past the nominal radius
	if r := vmath.PolygonRadius(vmath.CirclePolygon(vmath.Vec2{}, radius, parameter.PolygonSegments)); r > radius {
		radius = r
	}

	a := &Actor{
		Species:         species,
		Radius:          radius,
		CollisionRadius: radius * p.CollisionRadiusMult,
		Mass:            radius * p.MassRadiusRatio,
		Collidable:      p.Collidable,
		profile:         p,
	}

	if species == component.SpeciesNanoBot {
		a.Life = parameter.PlayerLife
		// Players enter the simulation on join
		a.Collidable = false
	}
	return a
}

// Profile returns the species constants
func (a *Actor) Profile() *component.Profile {
	return a.profile
}

// IsPlayer reports whether the actor is a player agent
func (a *Actor) IsPlayer() bool {
	return a.Species == component.SpeciesNanoBot
}

// Active reports whether the actor participates in the simulation this frame
func (a *Actor) Active() bool {
	if a.Dead {
		return false
	}
	if a.IsPlayer() {
		return a.Playing
	}
	return true
}

// Movable reports whether impulses and fields may change the actor's velocity
func (a *Actor) Movable() bool {
	return a.Mass > 0 && !a.Species.Is(component.CatEmitter)
}

// Update integrates cosmetic spin and drag, then emits this actor's field into w
// w may be nil for a standalone step without fields
func (a *Actor) Update(w *World, dt float64) {
	if !a.Active() {
		return
	}

	if a.Movable() {
		if a.profile.SpinScalar != 0 {
			a.Rotation += vmath.V2MagSq(a.Velocity) / a.Mass * dt * a.profile.SpinScalar
		}
		a.Velocity = vmath.V2Sub(a.Velocity, vmath.V2Scale(a.Velocity, dt*a.profile.DragPerSecond))
	} else {
		a.Velocity = vmath.Vec2{}
	}

	if w != nil && w.field != nil {
		w.field.Apply(w, a)
	}

	a.step(w, dt)
}

// step is the per-species hook ordered after fields, no species needs it yet
func (a *Actor) step(w *World, dt float64) {}

// Touch decides whether contact with other is meaningful, possibly reacting through w
// Without a world or reactor every touch is a plain elastic contact
func (a *Actor) Touch(w *World, other *Actor) bool {
	if other == nil {
		panic("engine: touch with nil actor")
	}
	if w == nil || w.reactor == nil {
		return true
	}
	return w.reactor.Touch(w, a, other)
}

// Damage applies damage from source, only playing players accept it
func (a *Actor) Damage(source *Actor, amount float64) bool {
	if !a.IsPlayer() || !a.Playing || a.Dead {
		return false
	}
	a.Life -= amount
	if a.Life <= 0 {
		a.Life = 0
		a.Die(source)
	}
	return true
}

// Die marks the actor dead, removal is deferred to collect
// Players leave play instead and keep their slot
func (a *Actor) Die(source *Actor) {
	if a.IsPlayer() {
		a.Playing = false
		a.Collidable = false
		a.Velocity = vmath.Vec2{}
		return
	}
	a.Dead = true
}

// Speed returns the velocity magnitude
func (a *Actor) Speed() float64 {
	return vmath.V2Mag(a.Velocity)
}

// KineticEnergy returns 0.5*m*|v|^2, zero for immovable actors
func (a *Actor) KineticEnergy() float64 {
	if a.Mass <= 0 {
		return 0
	}
	return 0.5 * a.Mass * vmath.V2MagSq(a.Velocity)
}

// SpawnRadius returns the inflated, ceiled radius used by spawn-point search
func (a *Actor) SpawnRadius() float64 {
	fudge := parameter.SpawnFudgeDefault
	if a.IsPlayer() {
		fudge = parameter.SpawnFudgePlayer
	}
	return math.Ceil(a.Radius * fudge)
}
