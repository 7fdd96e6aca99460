package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// Config holds cue player settings
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	MaxVoices    int
	CueVolumes   map[Cue]float64
}

// DefaultConfig returns the default audio configuration
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		MaxVoices:    8,
		CueVolumes: map[Cue]float64{
			CueTouch:     0.4,
			CueBond:      0.8,
			CueUnbond:    0.8,
			CuePlayerHit: 1.0,
		},
	}
}

// LoadConfig loads audio configuration from environment variables over defaults
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("FREE_RADICALS_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv("FREE_RADICALS_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Per-cue volumes as JSON keyed by cue name
	if cueVols := os.Getenv("FREE_RADICALS_CUE_VOLUMES"); cueVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(cueVols), &volumes); err == nil {
			for name, v := range volumes {
				if c, ok := CueByName(name); ok {
					cfg.CueVolumes[c] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("FREE_RADICALS_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
