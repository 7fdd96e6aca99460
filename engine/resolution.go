package engine

import (
	"errors"
	"fmt"
)

// Resolution selects the display-size preset that scales world constants
type Resolution uint8

const (
	Res1920x1200 Resolution = iota
	Res1680x1050
	Res1440x900
	Res1280x800
	resolutionCount
)

var ErrUnknownResolution = errors.New("unknown resolution")

var resolutionScale = [resolutionCount]float64{1.0, 0.875, 0.75, 0.66666}

var resolutionNames = [resolutionCount]string{"1920x1200", "1680x1050", "1440x900", "1280x800"}

// Scale returns the multiplier applied to sizes, positions and effect speeds
func (r Resolution) Scale() float64 {
	if r >= resolutionCount {
		return 1.0
	}
	return resolutionScale[r]
}

func (r Resolution) String() string {
	if r >= resolutionCount {
		return "unknown"
	}
	return resolutionNames[r]
}

// ParseResolution maps "WIDTHxHEIGHT" to a preset
func ParseResolution(s string) (Resolution, error) {
	for i, name := range resolutionNames {
		if name == s {
			return Resolution(i), nil
		}
	}
	return Res1920x1200, fmt.Errorf("%w: %q", ErrUnknownResolution, s)
}
