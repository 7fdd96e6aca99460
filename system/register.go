package system

import (
	"github.com/lixenwraith/free-radicals/engine"
	"github.com/lixenwraith/free-radicals/physics"
	"github.com/lixenwraith/free-radicals/reaction"
)

// Register installs the default frame pipeline on world
func Register(world *engine.World) {
	world.AddSystem(NewActorSystem(world))
	world.AddSystem(NewMotionSystem(world))
	world.AddSystem(NewEffectSystem(world))
	world.AddSystem(NewFocalSystem(world))
	world.AddSystem(NewSpawnSystem(world))
	world.AddSystem(NewCensusSystem(world))
	world.AddSystem(NewCullSystem(world))
}

// NewWorld creates a world with the default chemistry, field table and pipeline
// Reactor and Field in cfg override the defaults when set
func NewWorld(cfg engine.WorldConfig) *engine.World {
	if cfg.Reactor == nil {
		cfg.Reactor = reaction.NewEngine(nil)
	}
	if cfg.Field == nil {
		cfg.Field = physics.NewFieldMatrix()
	}
	w := engine.NewWorld(cfg)
	Register(w)
	return w
}
