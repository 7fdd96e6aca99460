package engine

import (
	"github.com/lixenwraith/free-radicals/component"
)

// HalfReactions counts same-species touches toward a pairwise bond
// One world-global counter per species: a touch between any two oxygen atoms
// advances the same counter, pairing is not tracked
type HalfReactions struct {
	counts [component.SpeciesCount]int
}

// Add increments the counter for s and returns the new value
func (h *HalfReactions) Add(s component.Species) int {
	h.counts[s]++
	return h.counts[s]
}

// Get returns the current counter for s
func (h *HalfReactions) Get(s component.Species) int {
	return h.counts[s]
}

// Reset zeroes the counter for s
func (h *HalfReactions) Reset(s component.Species) {
	h.counts[s] = 0
}

// Clear zeroes every counter
func (h *HalfReactions) Clear() {
	h.counts = [component.SpeciesCount]int{}
}
