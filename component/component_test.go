package component

import (
	"testing"
)

// TestEverySpeciesHasProfile verifies the profile table has no gaps
func TestEverySpeciesHasProfile(t *testing.T) {
	for _, s := range AllSpecies() {
		p := Lookup(s)
		if p == nil {
			t.Fatalf("Expected profile for species %d", s)
		}
		if p.Name == "" {
			t.Errorf("Expected name for species %d", s)
		}
		if p.Radius <= 0 {
			t.Errorf("Expected positive radius for %s, got %f", p.Name, p.Radius)
		}
		if p.Category == CatNone {
			t.Errorf("Expected category for %s", p.Name)
		}
	}
}

// TestSpeciesCategories spot-checks category membership
func TestSpeciesCategories(t *testing.T) {
	tests := []struct {
		species Species
		cat     Category
		expect  bool
	}{
		{SpeciesOxygen, CatAtom, true},
		{SpeciesOxygenTwo, CatJoint, true},
		{SpeciesOzone, CatGreenhouse, true},
		{SpeciesHydroxyl, CatFreeRadical, true},
		{SpeciesSouth, CatEmitter, true},
		{SpeciesRepelFive, CatEmitter, true},
		{SpeciesNanoBot, CatPlayer, true},
		{SpeciesChlorine, CatHalogen, true},
		{SpeciesOxygen, CatMolecule, false},
		{SpeciesMethane, CatMolecule, true},
	}

	for _, tt := range tests {
		if got := tt.species.Is(tt.cat); got != tt.expect {
			t.Errorf("%s.Is(%d): expected %v, got %v", tt.species, tt.cat, tt.expect, got)
		}
	}
}

// TestEmittersAreImmovable verifies poles and repel points carry no mass
func TestEmittersAreImmovable(t *testing.T) {
	for _, s := range AllSpecies() {
		if s.Is(CatEmitter) && Lookup(s).MassRadiusRatio != 0 {
			t.Errorf("Expected %s to be immovable", s)
		}
	}
}

// TestSpeciesByName verifies name round trip
func TestSpeciesByName(t *testing.T) {
	for _, s := range AllSpecies() {
		got, ok := SpeciesByName(s.String())
		if !ok || got != s {
			t.Errorf("Expected %s to resolve to %d, got %d", s, s, got)
		}
	}

	if _, ok := SpeciesByName("Unobtainium"); ok {
		t.Error("Expected unknown name to fail")
	}
}

// TestPaletteWraps verifies palette indexing wraps around
func TestPaletteWraps(t *testing.T) {
	p := Palette{ColorRed, ColorBlue}
	if p.At(3) != ColorBlue {
		t.Error("Expected index 3 to wrap to second color")
	}
	var empty Palette
	if empty.At(0) != ColorWhite {
		t.Error("Expected empty palette to fall back to white")
	}
}
