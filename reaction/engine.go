package reaction

import (
	"github.com/lixenwraith/free-radicals/component"
	"github.com/lixenwraith/free-radicals/engine"
	"github.com/lixenwraith/free-radicals/parameter"
	"github.com/lixenwraith/free-radicals/vmath"
)

// Engine resolves touches against a rule table, it implements engine.Reactor
type Engine struct {
	table *Table
}

// NewEngine creates a reaction engine over table, nil selects DefaultTable
func NewEngine(table *Table) *Engine {
	if table == nil {
		table = DefaultTable()
	}
	return &Engine{table: table}
}

// Table returns the active rule table
func (e *Engine) Table() *Table {
	return e.table
}

// Touch decides whether self touching other is meaningful and performs any reaction
// A touch involving a dead actor is accepted without reacting so a pair
// consumed earlier in the handshake still gets its collision response
func (e *Engine) Touch(w *engine.World, self, other *engine.Actor) bool {
	if self.Dead || other.Dead {
		return true
	}

	rule := e.table.Lookup(self.Species, other.Species)
	if rule.Kind == Reject {
		return false
	}

	if cue := self.Profile().TouchCue; cue != "" {
		w.PlayCue(cue)
	}

	switch rule.Kind {
	case Pair:
		e.pair(w, self, other, rule.Product)
	case Bond:
		e.bond(w, self, other, rule.Product)
	case Harm:
		e.harm(w, self, other)
	}
	return true
}

// pair advances the world counter for self's species and bonds on threshold
func (e *Engine) pair(w *engine.World, self, other *engine.Actor, product component.Species) {
	if self.Species == component.SpeciesHydrogen {
		spark(w, self, other)
	}

	counters := w.HalfReactions()
	if counters.Add(self.Species) < parameter.HalfReactionThreshold {
		return
	}
	e.bond(w, self, other, product)
	counters.Reset(self.Species)
}

// bond kills both reactants and spawns product at their averaged kinematics
func (e *Engine) bond(w *engine.World, a, b *engine.Actor, product component.Species) *engine.Actor {
	a.Die(a)
	b.Die(b)

	pos := vmath.V2Mid(a.Position, b.Position)
	vel := vmath.V2Mid(a.Velocity, b.Velocity)
	dir := vmath.V2Mid(a.Direction, b.Direction)

	p := w.SpawnProduct(product, pos, vel, dir)
	w.AddEffect(burst(w, product, pos, dir))
	w.PlayCue(parameter.CueBond)
	return p
}

// harm damages a player by the halogen's mass times closing speed
func (e *Engine) harm(w *engine.World, self, player *engine.Actor) {
	if player.NegativeCharge {
		return
	}
	n := vmath.V2Normalize(vmath.V2Sub(self.Position, player.Position))
	ramming := vmath.V2Dot(n, player.Velocity) - vmath.V2Dot(n, self.Velocity)
	if ramming <= 0 {
		return
	}
	if player.Damage(self, self.Mass*ramming*parameter.DamageScalar) {
		w.PlayCue(parameter.CuePlayerHit)
	}
}

// burst describes the cosmetic effect for a bond or unbond of s
func burst(w *engine.World, s component.Species, origin, dir vmath.Vec2) engine.EffectSpec {
	spec := engine.EffectSpec{
		Origin:    origin,
		Direction: dir,
		Count:     parameter.BondParticleCount,
		MinSpeed:  parameter.BondMinSpeed * w.ResScale(),
		MaxSpeed:  parameter.BondMaxSpeed * w.ResScale(),
		Lifetime:  parameter.BondLifetime,
		FadeRate:  parameter.BondFadeRate,
		Palette:   component.Lookup(s).Palette,
	}
	if s == component.SpeciesDeuterium {
		spec.Count = parameter.HydrogenParticleCount
		spec.MinSpeed = parameter.HydrogenMinSpeed * w.ResScale()
		spec.MaxSpeed = parameter.HydrogenMaxSpeed * w.ResScale()
	}
	return spec
}

// spark is the small flash of two hydrogens meeting
func spark(w *engine.World, a, b *engine.Actor) {
	w.AddEffect(engine.EffectSpec{
		Origin:    vmath.V2Mid(a.Position, b.Position),
		Direction: vmath.V2Mid(a.Direction, b.Direction),
		Count:     parameter.SparkParticleCount,
		MinSpeed:  parameter.HydrogenMinSpeed * w.ResScale(),
		MaxSpeed:  parameter.HydrogenMaxSpeed * w.ResScale(),
		Lifetime:  parameter.SparkLifetime,
		FadeRate:  parameter.BondFadeRate,
		Palette:   component.Palette{component.ColorYellow},
	})
}
