package system

import (
	"github.com/lixenwraith/free-radicals/engine"
	"github.com/lixenwraith/free-radicals/parameter"
)

// ActorSystem runs per-actor integration and field emission
type ActorSystem struct {
	world *engine.World
}

// NewActorSystem creates a new actor system
func NewActorSystem(world *engine.World) engine.System {
	return &ActorSystem{world: world}
}

// Priority returns the system's priority
func (s *ActorSystem) Priority() int {
	return parameter.PriorityActor
}

// Update steps every committed actor, spawns from this frame stay staged
func (s *ActorSystem) Update(dt float64) {
	for _, a := range s.world.Actors() {
		a.Update(s.world, dt)
	}
}
