package system

import (
	"math"

	"github.com/lixenwraith/free-radicals/engine"
	"github.com/lixenwraith/free-radicals/parameter"
	"github.com/lixenwraith/free-radicals/vmath"
)

// FocalSystem tracks the centroid of playing players and eases the focal point toward it
type FocalSystem struct {
	world *engine.World
}

// NewFocalSystem creates a new focal system
func NewFocalSystem(world *engine.World) engine.System {
	return &FocalSystem{world: world}
}

// Priority returns the system's priority
func (s *FocalSystem) Priority() int {
	return parameter.PriorityFocal
}

// Update retargets on the player centroid, the target holds when nobody plays
func (s *FocalSystem) Update(dt float64) {
	var sum vmath.Vec2
	playing := 0
	for _, p := range s.world.Players() {
		if p != nil && p.Active() {
			sum = vmath.V2Add(sum, p.Position)
			playing++
		}
	}
	if playing > 0 {
		s.world.SetFocalTarget(vmath.V2Scale(sum, 1/float64(playing)))
	}

	t := math.Min(1, parameter.FocalEaseRate*dt)
	s.world.SetFocalPoint(vmath.V2Lerp(s.world.FocalPoint(), s.world.FocalTarget(), t))
}
