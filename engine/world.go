package engine

import (
	"github.com/lixenwraith/free-radicals/component"
	"github.com/lixenwraith/free-radicals/parameter"
	"github.com/lixenwraith/free-radicals/vmath"
)

// WorldConfig carries construction-time options, zero values select defaults
type WorldConfig struct {
	Resolution Resolution
	Seed       uint64
	RNG        RNG
	Cues       CuePlayer
	Effects    EffectFactory
	Reactor    Reactor
	Field      Field
}

// SpawnTimers holds the countdowns for timed arrivals, in seconds
type SpawnTimers struct {
	FreeRadicals    float64
	GreenhouseGases float64
}

// World owns every actor and effect and drives the frame pipeline
// Single-threaded: all mutation happens inside Update or between frames
type World struct {
	actors  []*Actor
	staged  []*Actor
	effects []Effect
	systems []System
	players [parameter.PlayerCount]*Actor

	census        Census
	halfReactions HalfReactions
	timers        SpawnTimers

	resolution Resolution
	resScale   float64
	dimensions vmath.Vec2

	focal       vmath.Vec2
	focalTarget vmath.Vec2

	rng     RNG
	cues    CuePlayer
	effectF EffectFactory
	reactor Reactor
	field   Field

	nextID   uint64
	frame    int64
	updating bool
}

// NewWorld creates an empty world, call StartNewGame to populate it
func NewWorld(cfg WorldConfig) *World {
	w := &World{
		resolution: cfg.Resolution,
		rng:        cfg.RNG,
		cues:       cfg.Cues,
		effectF:    cfg.Effects,
		reactor:    cfg.Reactor,
		field:      cfg.Field,
	}
	if w.rng == nil {
		w.rng = vmath.NewFastRand(cfg.Seed)
	}
	if w.cues == nil {
		w.cues = NopCues{}
	}
	w.applyResolution()
	return w
}

func (w *World) applyResolution() {
	w.resScale = w.resolution.Scale()
	w.dimensions = vmath.V2(parameter.WorldWidth*w.resScale, parameter.WorldHeight*w.resScale)
}

// SetReactor installs the touch/reaction handler
func (w *World) SetReactor(r Reactor) {
	w.reactor = r
}

// SetField installs the field-force handler applied during actor updates
func (w *World) SetField(f Field) {
	w.field = f
}

// SetEffectFactory installs the particle effect constructor
func (w *World) SetEffectFactory(f EffectFactory) {
	w.effectF = f
}

// SetCues installs the audio cue sink, nil silences cues
func (w *World) SetCues(c CuePlayer) {
	if c == nil {
		c = NopCues{}
	}
	w.cues = c
}

// SetResolution changes the preset, takes effect on the next StartNewGame
func (w *World) SetResolution(r Resolution) {
	w.resolution = r
}

// Update advances the simulation by dt seconds through the registered systems
func (w *World) Update(dt float64) {
	w.updating = true
	w.frame++
	for _, s := range w.systems {
		s.Update(dt)
	}
	w.updating = false
}

// Collect purges dead actors and inactive effects, then commits staged spawns
func (w *World) Collect() {
	live := w.actors[:0]
	for _, a := range w.actors {
		if a.Dead {
			continue
		}
		live = append(live, a)
	}
	// Clear the tail so purged actors can be released
	for i := len(live); i < len(w.actors); i++ {
		w.actors[i] = nil
	}
	w.actors = live

	for _, a := range w.staged {
		if !a.Dead {
			w.actors = append(w.actors, a)
		}
	}
	w.staged = w.staged[:0]

	activeEffects := w.effects[:0]
	for _, e := range w.effects {
		if e.Active() {
			activeEffects = append(activeEffects, e)
		}
	}
	for i := len(activeEffects); i < len(w.effects); i++ {
		w.effects[i] = nil
	}
	w.effects = activeEffects
}

// Recount rebuilds the census from committed and staged actors
func (w *World) Recount() {
	w.census.Recount(w.actors, w.staged)
}

// AddEffect builds and registers a cosmetic effect, no-op without a factory
func (w *World) AddEffect(spec EffectSpec) {
	if w.effectF == nil {
		return
	}
	if e := w.effectF(spec); e != nil {
		w.effects = append(w.effects, e)
	}
}

// PlayCue forwards a cue name to the audio sink
func (w *World) PlayCue(name string) {
	if name == "" {
		return
	}
	w.cues.PlayCue(name)
}

// Actors returns the committed actor set in insertion order, callers must not retain it across frames
func (w *World) Actors() []*Actor { return w.actors }

// Staged returns actors spawned this frame, committed at collect
func (w *World) Staged() []*Actor { return w.staged }

// Effects returns the live effect set
func (w *World) Effects() []Effect { return w.effects }

// Census returns the population snapshot from the last recount
func (w *World) Census() *Census { return &w.census }

// HalfReactions returns the same-species bond counters
func (w *World) HalfReactions() *HalfReactions { return &w.halfReactions }

// Timers returns the spawn countdowns
func (w *World) Timers() *SpawnTimers { return &w.timers }

// ResScale returns the active resolution multiplier
func (w *World) ResScale() float64 { return w.resScale }

// Resolution returns the active preset
func (w *World) Resolution() Resolution { return w.resolution }

// Dimensions returns the world extent
func (w *World) Dimensions() vmath.Vec2 { return w.dimensions }

// RNG returns the shared random source
func (w *World) RNG() RNG { return w.rng }

// Touch runs the symmetric touch handshake step for self against other
func (w *World) Touch(self, other *Actor) bool {
	return self.Touch(w, other)
}

// Cues returns the audio cue sink
func (w *World) Cues() CuePlayer { return w.cues }

// Frame returns the number of completed Update calls
func (w *World) Frame() int64 { return w.frame }

// Players returns the fixed player slots
func (w *World) Players() []*Actor { return w.players[:] }

// FocalPoint returns the eased camera/atmosphere focus
func (w *World) FocalPoint() vmath.Vec2 { return w.focal }

// FocalTarget returns the point the focus eases toward
func (w *World) FocalTarget() vmath.Vec2 { return w.focalTarget }

// SetFocalTarget sets the point the focus eases toward
func (w *World) SetFocalTarget(p vmath.Vec2) { w.focalTarget = p }

// SetFocalPoint moves the focus directly
func (w *World) SetFocalPoint(p vmath.Vec2) { w.focal = p }

// SafeArea returns the rectangle spawn search samples from
func (w *World) SafeArea() vmath.Rect {
	return vmath.Rect{
		X:      w.dimensions.X * parameter.SafeAreaMargin,
		Y:      w.dimensions.Y * parameter.SafeAreaMargin,
		Width:  w.dimensions.X * parameter.SafeAreaExtent,
		Height: w.dimensions.Y * parameter.SafeAreaExtent,
	}
}

// Scaled converts reference-resolution coordinates to world coordinates
func (w *World) Scaled(x, y float64) vmath.Vec2 {
	return vmath.V2(x*w.resScale, y*w.resScale)
}

// EachActive calls fn for every committed actor that is active
func (w *World) EachActive(fn func(a *Actor)) {
	for _, a := range w.actors {
		if a.Active() {
			fn(a)
		}
	}
}

// CountSpecies scans committed and staged actors for live members of s
func (w *World) CountSpecies(s component.Species) int {
	n := 0
	for _, set := range [][]*Actor{w.actors, w.staged} {
		for _, a := range set {
			if !a.Dead && a.Species == s {
				n++
			}
		}
	}
	return n
}
