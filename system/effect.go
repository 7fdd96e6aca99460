package system

import (
	"github.com/lixenwraith/free-radicals/engine"
	"github.com/lixenwraith/free-radicals/parameter"
)

// EffectSystem advances cosmetic effects, expired ones are dropped at collect
type EffectSystem struct {
	world *engine.World
}

// NewEffectSystem creates a new effect system
func NewEffectSystem(world *engine.World) engine.System {
	return &EffectSystem{world: world}
}

// Priority returns the system's priority
func (s *EffectSystem) Priority() int {
	return parameter.PriorityEffect
}

// Update steps every live effect
func (s *EffectSystem) Update(dt float64) {
	for _, e := range s.world.Effects() {
		if e.Active() {
			e.Update(dt)
		}
	}
}
