package engine

import (
	"testing"

	"github.com/lixenwraith/free-radicals/component"
	"github.com/lixenwraith/free-radicals/vmath"
)

// TestFindSpawnPointNoOverlap verifies every searched point is free and inside the safe area
func TestFindSpawnPointNoOverlap(t *testing.T) {
	w, _ := NewTestWorld(99)

	for i := 0; i < 40; i++ {
		a := NewActor(component.SpeciesOxygen, w.ResScale())
		if !w.Spawn(a, true) {
			t.Fatalf("Expected spawn %d to find a free point", i)
		}

		safe := w.SafeArea()
		r := a.SpawnRadius()
		if a.Position.X < safe.X+r || a.Position.X > safe.X+safe.Width-r ||
			a.Position.Y < safe.Y+r || a.Position.Y > safe.Y+safe.Height-r {
			t.Errorf("Spawn %d outside inset safe area: (%f, %f)", i, a.Position.X, a.Position.Y)
		}
	}

	// Each arrival's inflated radius stays clear of everything placed before it
	actors := w.Actors()
	for i := 0; i < len(actors); i++ {
		for j := i + 1; j < len(actors); j++ {
			if vmath.CircleCircleIntersect(actors[j].Position, actors[j].SpawnRadius(), actors[i].Position, actors[i].Radius) {
				t.Errorf("Spawn %d inflated radius overlaps actor %d", j, i)
			}
		}
	}
}

// TestFindSpawnPointInflatedOzone verifies large molecules keep their inflated clearance
func TestFindSpawnPointInflatedOzone(t *testing.T) {
	w, _ := NewTestWorld(99)

	for i := 0; i < 60; i++ {
		w.Spawn(NewActor(component.SpeciesOzone, w.ResScale()), true)
	}

	actors := w.Actors()
	for i := 0; i < len(actors); i++ {
		for j := i + 1; j < len(actors); j++ {
			if vmath.CircleCircleIntersect(actors[j].Position, actors[j].SpawnRadius(), actors[i].Position, actors[i].Radius) {
				t.Errorf("Ozone %d inflated radius overlaps ozone %d", j, i)
			}
		}
	}
}

// TestFindSpawnPointNonCollidable verifies the first sample is accepted
func TestFindSpawnPointNonCollidable(t *testing.T) {
	rng := &SequenceRNG{Floats: []float64{0.5}}
	w := NewWorld(WorldConfig{RNG: rng})

	blocker := w.SpawnAt(component.SpeciesOxygen, vmath.Vec2{})
	blocker.Radius = 10000

	a := NewActor(component.SpeciesOxygen, 1.0)
	a.Collidable = false
	p, ok := w.FindSpawnPoint(a)
	if !ok {
		t.Fatal("Expected non-collidable actor to accept the first sample")
	}
	if rng.fi != 2 {
		t.Errorf("Expected exactly one sample (2 draws), got %d draws", rng.fi)
	}
	if !w.SafeArea().Contains(p) {
		t.Errorf("Expected point inside safe area, got (%f, %f)", p.X, p.Y)
	}
}

// TestFindSpawnPointExhausted verifies the bounded search reports failure
func TestFindSpawnPointExhausted(t *testing.T) {
	w, _ := NewTestWorld(5)
	blocker := w.SpawnAt(component.SpeciesSouth, w.Scaled(960, 600))
	blocker.Radius = 10000

	a := NewActor(component.SpeciesOxygen, 1.0)
	if _, ok := w.FindSpawnPoint(a); ok {
		t.Error("Expected search to fail when the safe area is covered")
	}
	if w.Spawn(a, true) {
		t.Error("Expected spawn to report failed search")
	}
	if len(w.Actors()) != 2 {
		t.Errorf("Expected actor to be added despite failed search, got %d actors", len(w.Actors()))
	}
}

// TestFindSpawnPointIgnoresDead verifies dead actors do not block
func TestFindSpawnPointIgnoresDead(t *testing.T) {
	w, _ := NewTestWorld(5)
	blocker := w.SpawnAt(component.SpeciesSouth, w.Scaled(960, 600))
	blocker.Radius = 10000
	blocker.Die(nil)

	if _, ok := w.FindSpawnPoint(NewActor(component.SpeciesOxygen, 1.0)); !ok {
		t.Error("Expected dead blocker to be ignored")
	}
}

// TestFindSpawnPointNilPanics verifies the nil precondition
func TestFindSpawnPointNilPanics(t *testing.T) {
	w, _ := NewTestWorld(1)
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on nil actor")
		}
	}()
	w.FindSpawnPoint(nil)
}

// TestSpawnBatchOrder verifies batches spawn in argument order
func TestSpawnBatchOrder(t *testing.T) {
	w, _ := NewTestWorld(3)
	w.SpawnFreeRadicals(1, 1, 1, 1)

	expected := []component.Species{
		component.SpeciesNitricOxide,
		component.SpeciesCFC1,
		component.SpeciesCFC2,
		component.SpeciesHydroxyl,
	}
	actors := w.Actors()
	if len(actors) != len(expected) {
		t.Fatalf("Expected %d actors, got %d", len(expected), len(actors))
	}
	for i, s := range expected {
		if actors[i].Species != s {
			t.Errorf("Expected %s at %d, got %s", s, i, actors[i].Species)
		}
	}
}

// TestSpawnAssignsIdentity verifies ids are unique and increasing
func TestSpawnAssignsIdentity(t *testing.T) {
	w, _ := NewTestWorld(3)
	a := w.SpawnAt(component.SpeciesCarbon, vmath.V2(1, 1))
	b := w.SpawnAt(component.SpeciesCarbon, vmath.V2(2, 2))
	if a.ID == 0 || b.ID <= a.ID {
		t.Errorf("Expected increasing ids, got %d and %d", a.ID, b.ID)
	}
}
