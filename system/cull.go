package system

import (
	"github.com/lixenwraith/free-radicals/engine"
	"github.com/lixenwraith/free-radicals/parameter"
)

// CullSystem removes dead actors and expired effects
// It runs last in the frame so every other system sees dead actors first
type CullSystem struct {
	world *engine.World
}

// NewCullSystem creates a new cull system
func NewCullSystem(world *engine.World) engine.System {
	return &CullSystem{world: world}
}

// Priority returns the system's priority (highest value = runs last)
func (s *CullSystem) Priority() int {
	return parameter.PriorityCleanup
}

// Update purges the dead and commits staged spawns
func (s *CullSystem) Update(dt float64) {
	s.world.Collect()
}
