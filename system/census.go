package system

import (
	"github.com/lixenwraith/free-radicals/engine"
	"github.com/lixenwraith/free-radicals/parameter"
)

// CensusSystem rebuilds population counts from a full scan every frame
type CensusSystem struct {
	world *engine.World
}

// NewCensusSystem creates a new census system
func NewCensusSystem(world *engine.World) engine.System {
	return &CensusSystem{world: world}
}

// Priority returns the system's priority
func (s *CensusSystem) Priority() int {
	return parameter.PriorityCensus
}

// Update recounts committed and staged actors
func (s *CensusSystem) Update(dt float64) {
	s.world.Recount()
}
