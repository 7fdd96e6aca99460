package engine

import (
	"github.com/lixenwraith/free-radicals/component"
	"github.com/lixenwraith/free-radicals/vmath"
)

// CueRecorder collects played cue names, for tests and headless runs
type CueRecorder struct {
	Played []string
}

func (r *CueRecorder) PlayCue(name string) {
	r.Played = append(r.Played, name)
}

// Count returns how many times name was played
func (r *CueRecorder) Count(name string) int {
	n := 0
	for _, p := range r.Played {
		if p == name {
			n++
		}
	}
	return n
}

// SequenceRNG replays fixed values, cycling when exhausted
type SequenceRNG struct {
	Floats []float64
	Ints   []int
	fi, ii int
}

func (s *SequenceRNG) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

func (s *SequenceRNG) Intn(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	return v % n
}

// CountingEffect is a minimal effect that expires after a fixed number of updates
type CountingEffect struct {
	Spec    EffectSpec
	Updates int
	Expiry  int
}

func (e *CountingEffect) Update(dt float64) { e.Updates++ }

func (e *CountingEffect) Active() bool { return e.Expiry <= 0 || e.Updates < e.Expiry }

// NewTestWorld creates an empty world at reference resolution with recorded cues
// and counting effects that expire after one update
func NewTestWorld(seed uint64) (*World, *CueRecorder) {
	cues := &CueRecorder{}
	w := NewWorld(WorldConfig{
		Resolution: Res1920x1200,
		Seed:       seed,
		Cues:       cues,
		Effects: func(spec EffectSpec) Effect {
			return &CountingEffect{Spec: spec, Expiry: 1}
		},
	})
	return w, cues
}

// PlaceActor spawns species s at (x, y) with velocity v without spawn search
func PlaceActor(w *World, s component.Species, x, y float64, v vmath.Vec2) *Actor {
	a := w.SpawnAt(s, vmath.V2(x, y))
	a.Velocity = v
	return a
}
