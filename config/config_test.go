package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/lixenwraith/free-radicals/engine"
)

var envKeys = []string{
	"FREE_RADICALS_RESOLUTION",
	"FREE_RADICALS_SEED",
	"FREE_RADICALS_TICK_RATE",
	"FREE_RADICALS_DEBUG",
	"FREE_RADICALS_SPECTATE_ADDR",
	"FREE_RADICALS_AUDIO_ENABLED",
}

func clearEnv() {
	for _, k := range envKeys {
		os.Unsetenv(k)
	}
}

// TestLoadDefaults verifies defaults survive empty env and args
func TestLoadDefaults(t *testing.T) {
	clearEnv()
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Expected defaults to load, got %v", err)
	}
	if cfg.Resolution != engine.Res1920x1200 {
		t.Errorf("Expected 1920x1200, got %s", cfg.Resolution)
	}
	if cfg.TickRate != 60 || cfg.FrameDelta() != 1.0/60 {
		t.Errorf("Expected 60 Hz, got %d", cfg.TickRate)
	}
	if cfg.Network.Enabled() {
		t.Error("Expected spectator disabled by default")
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected audio enabled by default")
	}
}

// TestLoadPrecedence verifies flags override environment which overrides defaults
func TestLoadPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		args     []string
		res      engine.Resolution
		seed     uint64
		tick     int
		spectate string
	}{
		{
			name: "env only",
			env:  map[string]string{"FREE_RADICALS_RESOLUTION": "1440x900", "FREE_RADICALS_SEED": "9"},
			res:  engine.Res1440x900, seed: 9, tick: 60,
		},
		{
			name: "flag wins",
			env:  map[string]string{"FREE_RADICALS_RESOLUTION": "1440x900", "FREE_RADICALS_TICK_RATE": "30"},
			args: []string{"-res", "1280x800", "-seed", "3"},
			res:  engine.Res1280x800, seed: 3, tick: 30,
		},
		{
			name: "spectate",
			env:  map[string]string{"FREE_RADICALS_SPECTATE_ADDR": ":9000", "FREE_RADICALS_SEED": "1"},
			args: []string{"-spectate", ":9100"},
			res:  engine.Res1920x1200, seed: 1, tick: 60, spectate: ":9100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv()
			for k, v := range tt.env {
				os.Setenv(k, v)
			}
			defer clearEnv()

			cfg, err := Load(tt.args)
			if err != nil {
				t.Fatalf("Expected load to succeed, got %v", err)
			}
			if cfg.Resolution != tt.res {
				t.Errorf("Expected resolution %s, got %s", tt.res, cfg.Resolution)
			}
			if cfg.Seed != tt.seed {
				t.Errorf("Expected seed %d, got %d", tt.seed, cfg.Seed)
			}
			if cfg.TickRate != tt.tick {
				t.Errorf("Expected tick %d, got %d", tt.tick, cfg.TickRate)
			}
			if cfg.Network.Address != tt.spectate {
				t.Errorf("Expected spectate %q, got %q", tt.spectate, cfg.Network.Address)
			}
		})
	}
}

// TestLoadErrors verifies bad input is reported rather than ignored
func TestLoadErrors(t *testing.T) {
	clearEnv()
	defer clearEnv()

	os.Setenv("FREE_RADICALS_RESOLUTION", "800x600")
	if _, err := Load(nil); !errors.Is(err, engine.ErrUnknownResolution) {
		t.Errorf("Expected ErrUnknownResolution, got %v", err)
	}
	clearEnv()

	if _, err := Load([]string{"-tick", "0"}); err == nil {
		t.Error("Expected zero tick rate rejected")
	}
	if _, err := Load([]string{"-players", "5"}); err == nil {
		t.Error("Expected five players rejected")
	}
	if _, err := Load([]string{"-bogus"}); err == nil {
		t.Error("Expected unknown flag rejected")
	}
}

// TestMuteFlag verifies the mute flag disables audio over the environment
func TestMuteFlag(t *testing.T) {
	clearEnv()
	os.Setenv("FREE_RADICALS_AUDIO_ENABLED", "true")
	defer clearEnv()

	cfg, err := Load([]string{"-mute"})
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled by -mute")
	}
}

// TestFrameInterval verifies wall time per frame
func TestFrameInterval(t *testing.T) {
	cfg := Default()
	cfg.TickRate = 50
	if cfg.FrameInterval() != 20*time.Millisecond {
		t.Errorf("Expected 20ms, got %v", cfg.FrameInterval())
	}
}
