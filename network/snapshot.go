package network

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/free-radicals/component"
	"github.com/lixenwraith/free-radicals/engine"
)

// ActorState is the wire view of one live actor
type ActorState struct {
	ID      uint64  `msgpack:"id"`
	Species string  `msgpack:"s"`
	X       float64 `msgpack:"x"`
	Y       float64 `msgpack:"y"`
	VX      float64 `msgpack:"vx"`
	VY      float64 `msgpack:"vy"`
	Radius  float64 `msgpack:"r"`
	Life    float64 `msgpack:"life,omitempty"`
	Playing bool    `msgpack:"play,omitempty"`
}

// ParticleState is the wire view of one effect particle
type ParticleState struct {
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Color string  `msgpack:"c"`
	Alpha float64 `msgpack:"a"`
}

// CensusState carries per-species counts and group totals
type CensusState struct {
	Species         map[string]int `msgpack:"species"`
	FreeRadicals    int            `msgpack:"fr"`
	GreenhouseGases int            `msgpack:"gg"`
	Ozone           int            `msgpack:"o3"`
	Total           int            `msgpack:"total"`
}

// Snapshot is an immutable copy of the world for spectators
type Snapshot struct {
	Frame     int64            `msgpack:"frame"`
	Width     float64          `msgpack:"w"`
	Height    float64          `msgpack:"h"`
	FocalX    float64          `msgpack:"fx"`
	FocalY    float64          `msgpack:"fy"`
	Actors    []ActorState     `msgpack:"actors"`
	Effects   int              `msgpack:"effects"`
	Particles []ParticleState  `msgpack:"particles,omitempty"`
	Census    CensusState      `msgpack:"census"`
	Counters  map[string]int64 `msgpack:"counters,omitempty"`
}

// Capture copies the committed, live state of w
// Must run on the simulation goroutine between frames
func Capture(w *engine.World) *Snapshot {
	dims := w.Dimensions()
	focal := w.FocalPoint()
	s := &Snapshot{
		Frame:   w.Frame(),
		Width:   dims.X,
		Height:  dims.Y,
		FocalX:  focal.X,
		FocalY:  focal.Y,
		Actors:  make([]ActorState, 0, len(w.Actors())),
		Effects: len(w.Effects()),
	}

	w.EachActive(func(a *engine.Actor) {
		st := ActorState{
			ID:      a.ID,
			Species: a.Species.String(),
			X:       a.Position.X,
			Y:       a.Position.Y,
			VX:      a.Velocity.X,
			VY:      a.Velocity.Y,
			Radius:  a.Radius,
		}
		if a.IsPlayer() {
			st.Life = a.Life
			st.Playing = a.Playing
		}
		s.Actors = append(s.Actors, st)
	})

	for _, fx := range w.Effects() {
		v, ok := fx.(engine.EffectVisitor)
		if !ok || !fx.Active() {
			continue
		}
		v.Visit(func(p engine.EffectParticle) {
			s.Particles = append(s.Particles, ParticleState{
				X:     p.Position.X,
				Y:     p.Position.Y,
				Color: p.Color.Hex(),
				Alpha: p.Alpha,
			})
		})
	}

	c := w.Census()
	s.Census = CensusState{
		Species:         make(map[string]int),
		FreeRadicals:    c.FreeRadicals,
		GreenhouseGases: c.GreenhouseGases,
		Ozone:           c.Ozone(),
		Total:           c.Total,
	}
	for sp, n := range c.Counts {
		if n > 0 {
			s.Census.Species[component.Species(sp).String()] = n
		}
	}
	return s
}

// Encode serializes the snapshot as msgpack
func (s *Snapshot) Encode() ([]byte, error) {
	return msgpack.Marshal(s)
}

// DecodeSnapshot parses a msgpack snapshot frame
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
