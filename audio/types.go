package audio

import (
	"errors"

	"github.com/lixenwraith/free-radicals/parameter"
)

// Cue identifies a synthesized sound effect
type Cue int

const (
	CueTouch     Cue = iota // Hydrogen bump
	CueBond                 // Two reactants joined
	CueUnbond               // Composite split
	CuePlayerHit            // Halogen burn on a player
	cueCount
)

var cueNames = [cueCount]string{
	CueTouch:     parameter.CueTouch,
	CueBond:      parameter.CueBond,
	CueUnbond:    parameter.CueUnbond,
	CuePlayerHit: parameter.CuePlayerHit,
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// CueByName resolves a simulation cue name
func CueByName(name string) (Cue, bool) {
	for c := Cue(0); c < cueCount; c++ {
		if cueNames[c] == name {
			return c, true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrAudioUnavailable = errors.New("audio output unavailable")
)
