package reaction

import (
	"github.com/lixenwraith/free-radicals/component"
)

// Kind selects how a touch between two species is handled
type Kind uint8

const (
	// Reject makes the touch meaningless, no collision response
	Reject Kind = iota
	// Accept allows collision response without a reaction
	Accept
	// Pair advances the same-species half-reaction counter
	Pair
	// Bond consumes both reactants into Product immediately
	Bond
	// Harm damages a player target
	Harm
)

var kindNames = [...]string{"reject", "accept", "pair", "bond", "harm"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Rule is the outcome of self touching other
type Rule struct {
	Kind    Kind
	Product component.Species
}

// Table maps (self, other) species to a rule, zero value rejects every touch
type Table [component.SpeciesCount][component.SpeciesCount]Rule

// Lookup returns the rule for self touching other
func (t *Table) Lookup(self, other component.Species) Rule {
	if !self.Valid() || !other.Valid() {
		return Rule{}
	}
	return t[self][other]
}

// Set installs rule for self touching other
func (t *Table) Set(self, other component.Species, r Rule) {
	t[self][other] = r
}

// SetSymmetric installs rule in both directions
func (t *Table) SetSymmetric(a, b component.Species, r Rule) {
	t[a][b] = r
	t[b][a] = r
}

// DefaultTable builds the chemistry of the atmosphere
func DefaultTable() *Table {
	t := &Table{}
	all := component.AllSpecies()

	for _, s := range all {
		// Emitters and players take any contact
		if s.Is(component.CatEmitter | component.CatPlayer) {
			for _, o := range all {
				t.Set(s, o, Rule{Kind: Accept})
			}
			continue
		}

		// Everything bounces off the south poles, repel point five and players
		t.Set(s, component.SpeciesSouth, Rule{Kind: Accept})
		t.Set(s, component.SpeciesRepelFive, Rule{Kind: Accept})
		t.Set(s, component.SpeciesNanoBot, Rule{Kind: Accept})
	}

	// Hydrogen is indifferent, it bounces off anything
	for _, o := range all {
		t.Set(component.SpeciesHydrogen, o, Rule{Kind: Accept})
	}

	// Halogens burn unshielded players
	for _, h := range []component.Species{
		component.SpeciesFluorine,
		component.SpeciesChlorine,
		component.SpeciesBromine,
	} {
		t.Set(h, component.SpeciesNanoBot, Rule{Kind: Harm})
	}

	t.Set(component.SpeciesOxygen, component.SpeciesOxygen, Rule{Kind: Pair, Product: component.SpeciesOxygenTwo})
	t.Set(component.SpeciesHydrogen, component.SpeciesHydrogen, Rule{Kind: Pair, Product: component.SpeciesDeuterium})
	t.Set(component.SpeciesNitrogen, component.SpeciesNitrogen, Rule{Kind: Pair, Product: component.SpeciesNitrogenTwo})

	bonds := []struct {
		a, b, product component.Species
	}{
		{component.SpeciesOxygen, component.SpeciesOxygenTwo, component.SpeciesOzone},
		{component.SpeciesOxygen, component.SpeciesHydrogen, component.SpeciesHydroxyl},
		{component.SpeciesOxygen, component.SpeciesDeuterium, component.SpeciesWater},
		{component.SpeciesOxygen, component.SpeciesNitrogen, component.SpeciesNitricOxide},
		{component.SpeciesOxygen, component.SpeciesNitrogenTwo, component.SpeciesNitrousOxide},
		{component.SpeciesCarbon, component.SpeciesOxygenTwo, component.SpeciesCarbonDioxide},
		{component.SpeciesCarbon, component.SpeciesDeuterium, component.SpeciesMethylene},
		{component.SpeciesMethylene, component.SpeciesDeuterium, component.SpeciesMethane},
	}
	for _, b := range bonds {
		t.SetSymmetric(b.a, b.b, Rule{Kind: Bond, Product: b.product})
	}

	return t
}
