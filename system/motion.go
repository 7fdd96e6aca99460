package system

import (
	"github.com/lixenwraith/free-radicals/engine"
	"github.com/lixenwraith/free-radicals/parameter"
	"github.com/lixenwraith/free-radicals/physics"
)

// MotionSystem integrates positions and resolves hard collisions
type MotionSystem struct {
	world *engine.World

	// Reused across frames
	contacts []physics.Contact
}

// NewMotionSystem creates a new motion system
func NewMotionSystem(world *engine.World) engine.System {
	return &MotionSystem{
		world:    world,
		contacts: make([]physics.Contact, 0, 16),
	}
}

// Priority returns the system's priority
func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

// Update clears last frame's contact flags and moves every actor once
func (s *MotionSystem) Update(dt float64) {
	actors := s.world.Actors()
	physics.ClearContacts(actors)
	s.contacts = physics.MoveActors(s.world, actors, dt, s.contacts)
}
