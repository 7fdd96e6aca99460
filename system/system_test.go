package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/free-radicals/component"
	"github.com/lixenwraith/free-radicals/engine"
	"github.com/lixenwraith/free-radicals/parameter"
	"github.com/lixenwraith/free-radicals/vmath"
)

const frame = 1.0 / 60

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// newTestWorld builds a wired world whose effects never expire and whose timers are parked
func newTestWorld(rng engine.RNG) *engine.World {
	w := NewWorld(engine.WorldConfig{
		Resolution: engine.Res1920x1200,
		Seed:       7,
		RNG:        rng,
		Effects: func(spec engine.EffectSpec) engine.Effect {
			return &engine.CountingEffect{Spec: spec}
		},
	})
	w.Timers().FreeRadicals = 1000
	w.Timers().GreenhouseGases = 1000
	return w
}

// probeSystem records actor state between census and cull
type probeSystem struct {
	world     *engine.World
	deadSeen  int
	stagedLen int
}

func (p *probeSystem) Priority() int { return parameter.PriorityCensus + 1 }

func (p *probeSystem) Update(dt float64) {
	for _, a := range p.world.Actors() {
		if a.Dead {
			p.deadSeen++
		}
	}
	p.stagedLen = len(p.world.Staged())
}

// TestRegisterOrder verifies the default pipeline runs in priority order
func TestRegisterOrder(t *testing.T) {
	w := newTestWorld(nil)
	systems := w.Systems()
	if len(systems) != 7 {
		t.Fatalf("Expected 7 systems, got %d", len(systems))
	}
	for i := 1; i < len(systems); i++ {
		if systems[i-1].Priority() > systems[i].Priority() {
			t.Errorf("Expected ascending priorities, got %d before %d", systems[i-1].Priority(), systems[i].Priority())
		}
	}
	if _, ok := systems[len(systems)-1].(*CullSystem); !ok {
		t.Error("Expected cull system last")
	}
}

// TestOxygenPairBondsInOneUpdate verifies two colliding oxygen atoms become O2 within a single frame
func TestOxygenPairBondsInOneUpdate(t *testing.T) {
	w := newTestWorld(nil)
	probe := &probeSystem{world: w}
	w.AddSystem(probe)

	engine.PlaceActor(w, component.SpeciesOxygen, 500, 500, vmath.V2(600, 0))
	engine.PlaceActor(w, component.SpeciesOxygen, 535, 500, vmath.V2(-600, 0))

	w.Update(frame)

	actors := w.Actors()
	if len(actors) != 1 {
		t.Fatalf("Expected 1 actor after collect, got %d", len(actors))
	}
	o2 := actors[0]
	if o2.Species != component.SpeciesOxygenTwo {
		t.Fatalf("Expected O2, got %s", o2.Species)
	}
	if !near(o2.Position.X, 517.5) || !near(o2.Position.Y, 500) {
		t.Errorf("Expected O2 at (517.5, 500), got (%f, %f)", o2.Position.X, o2.Position.Y)
	}
	if w.Census().Count(component.SpeciesOxygenTwo) != 1 || w.Census().Count(component.SpeciesOxygen) != 0 {
		t.Errorf("Expected census O2=1 O=0, got O2=%d O=%d",
			w.Census().Count(component.SpeciesOxygenTwo), w.Census().Count(component.SpeciesOxygen))
	}
	if w.HalfReactions().Get(component.SpeciesOxygen) != 0 {
		t.Errorf("Expected counter reset, got %d", w.HalfReactions().Get(component.SpeciesOxygen))
	}
	if len(w.Effects()) != 1 {
		t.Errorf("Expected one bond effect, got %d", len(w.Effects()))
	}

	// Removal is deferred to collect
	if probe.deadSeen != 2 {
		t.Errorf("Expected 2 dead reactants visible before collect, got %d", probe.deadSeen)
	}
	if probe.stagedLen != 1 {
		t.Errorf("Expected product staged before collect, got %d", probe.stagedLen)
	}
}

// TestOxygenHydrogenBondsWithEffect verifies O+H produces OH and a particle effect through the pipeline
func TestOxygenHydrogenBondsWithEffect(t *testing.T) {
	w := newTestWorld(nil)
	engine.PlaceActor(w, component.SpeciesHydrogen, 500, 500, vmath.V2(600, 0))
	engine.PlaceActor(w, component.SpeciesOxygen, 524, 500, vmath.V2(-600, 0))

	w.Update(frame)

	if w.Census().Count(component.SpeciesHydroxyl) != 1 {
		t.Fatalf("Expected one OH, got %d", w.Census().Count(component.SpeciesHydroxyl))
	}
	if len(w.Effects()) != 1 {
		t.Fatalf("Expected one effect, got %d", len(w.Effects()))
	}
	fx := w.Effects()[0].(*engine.CountingEffect)
	if fx.Updates != 1 {
		t.Errorf("Expected effect updated once in its first frame, got %d", fx.Updates)
	}
}

// TestSpawnSystemFreeRadical verifies a lapsed timer spawns the drawn menu entry and rearms
func TestSpawnSystemFreeRadical(t *testing.T) {
	w := newTestWorld(&engine.SequenceRNG{Ints: []int{3}})
	w.Timers().FreeRadicals = 0.01

	w.Update(frame)

	if w.Timers().FreeRadicals != parameter.FreeRadicalsDelay {
		t.Errorf("Expected timer rearmed to %f, got %f", parameter.FreeRadicalsDelay, w.Timers().FreeRadicals)
	}
	actors := w.Actors()
	if len(actors) != 1 || actors[0].Species != component.SpeciesHydroxyl {
		t.Fatalf("Expected one OH arrival, got %d actors", len(actors))
	}
	if actors[0].Position != vmath.V2(950, 1650) {
		t.Errorf("Expected OH at (950, 1650), got (%f, %f)", actors[0].Position.X, actors[0].Position.Y)
	}
	if w.Census().FreeRadicals != 1 {
		t.Errorf("Expected census to include the arrival, got %d", w.Census().FreeRadicals)
	}
}

// TestSpawnSystemCap verifies no arrival once the population ceiling is reached
func TestSpawnSystemCap(t *testing.T) {
	rng := &engine.SequenceRNG{Ints: []int{0}}
	w := newTestWorld(rng)
	for i := 0; i < parameter.FreeRadicalCap; i++ {
		engine.PlaceActor(w, component.SpeciesNitricOxide, 100+float64(i)*100, 100, vmath.Vec2{})
	}
	w.Recount()
	w.Timers().FreeRadicals = 0.01

	w.Update(frame)

	if got := w.CountSpecies(component.SpeciesNitricOxide); got != parameter.FreeRadicalCap {
		t.Errorf("Expected population to stay at %d, got %d", parameter.FreeRadicalCap, got)
	}
	if w.Timers().FreeRadicals != parameter.FreeRadicalsDelay {
		t.Error("Expected timer rearmed without a spawn")
	}
}

// TestSpawnSystemScaled verifies arrival positions follow the resolution scale
func TestSpawnSystemScaled(t *testing.T) {
	w := NewWorld(engine.WorldConfig{
		Resolution: engine.Res1440x900,
		RNG:        &engine.SequenceRNG{Ints: []int{0}},
	})
	w.Timers().FreeRadicals = 1000
	w.Timers().GreenhouseGases = 0.01

	w.Update(frame)

	actors := w.Actors()
	if len(actors) != 1 || actors[0].Species != component.SpeciesWater {
		t.Fatalf("Expected one water arrival, got %d actors", len(actors))
	}
	if !near(actors[0].Position.X, 950*0.75) || !near(actors[0].Position.Y, 1450*0.75) {
		t.Errorf("Expected scaled position, got (%f, %f)", actors[0].Position.X, actors[0].Position.Y)
	}
}

// TestFocalTracksPlayers verifies the target is the playing centroid and the focus eases toward it
func TestFocalTracksPlayers(t *testing.T) {
	w := newTestWorld(nil)
	w.StartNewGame()
	w.Timers().FreeRadicals = 1000
	w.Timers().GreenhouseGases = 1000

	players := w.Players()
	for i := 0; i < 2; i++ {
		players[i].Playing = true
	}
	players[0].Position = vmath.V2(100, 100)
	players[1].Position = vmath.V2(300, 100)
	start := w.FocalPoint()

	w.Update(frame)

	// Fields may nudge players within the frame
	target := w.FocalTarget()
	if vmath.V2Dist(target, vmath.V2(200, 100)) > 5 {
		t.Errorf("Expected target near (200, 100), got (%f, %f)", target.X, target.Y)
	}
	if vmath.V2Dist(w.FocalPoint(), target) >= vmath.V2Dist(start, target) {
		t.Error("Expected focal point to move toward target")
	}
}

// TestCensusMatchesScan verifies the frame census equals a fresh scan
func TestCensusMatchesScan(t *testing.T) {
	w := newTestWorld(nil)
	w.StartNewGame()
	w.SpawnAtoms(3, 2, 2, 4, 1, 1, 1)

	for i := 0; i < 10; i++ {
		w.Update(frame)
	}

	var scan [component.SpeciesCount]int
	for _, a := range w.Actors() {
		if !a.Dead {
			scan[a.Species]++
		}
	}
	for _, s := range component.AllSpecies() {
		if got := w.Census().Count(s); got != scan[s] {
			t.Errorf("%s: expected %d, got %d", s, scan[s], got)
		}
	}
}

// TestEmittersNeverMove verifies poles and repel points hold position through frames
func TestEmittersNeverMove(t *testing.T) {
	w := newTestWorld(nil)
	w.StartNewGame()

	before := map[*engine.Actor]vmath.Vec2{}
	for _, a := range w.Actors() {
		if a.Species.Is(component.CatEmitter) {
			before[a] = a.Position
		}
	}
	for i := 0; i < 30; i++ {
		w.Update(frame)
	}
	for a, p := range before {
		if a.Position != p {
			t.Errorf("Expected %s to stay at (%f, %f), got (%f, %f)", a.Species, p.X, p.Y, a.Position.X, a.Position.Y)
		}
	}
}
