package engine

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/free-radicals/component"
	"github.com/lixenwraith/free-radicals/vmath"
)

// CuePlayer plays named audio cues, fire and forget
type CuePlayer interface {
	PlayCue(name string)
}

// NopCues discards every cue
type NopCues struct{}

func (NopCues) PlayCue(string) {}

// RNG is the random source consumed by spawn search and spawn menus
type RNG interface {
	Float64() float64
	Intn(n int) int
}

// EffectSpec describes a cosmetic particle burst
type EffectSpec struct {
	Origin    vmath.Vec2
	Direction vmath.Vec2
	Count     int
	MinSpeed  float64
	MaxSpeed  float64
	Lifetime  float64
	FadeRate  float64
	Palette   component.Palette
}

// Effect is a cosmetic object updated every frame until it reports inactive
type Effect interface {
	Update(dt float64)
	Active() bool
}

// EffectParticle is a read-only view of one particle for renderers
type EffectParticle struct {
	Position vmath.Vec2
	Color    colorful.Color
	Alpha    float64
}

// EffectVisitor is implemented by effects that expose their particles
type EffectVisitor interface {
	Visit(fn func(p EffectParticle))
}

// EffectFactory builds an effect from a spec
type EffectFactory func(spec EffectSpec) Effect

// Reactor decides touch outcomes and performs reactions
// Returns true when the touch is meaningful and collision response should occur
type Reactor interface {
	Touch(w *World, self, other *Actor) bool
}

// Field applies a source actor's soft long-range force to its neighbours
type Field interface {
	Apply(w *World, source *Actor)
}
