package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/free-radicals/audio"
	"github.com/lixenwraith/free-radicals/engine"
	"github.com/lixenwraith/free-radicals/network"
)

// Config is the resolved runtime configuration
// Precedence: defaults, then FREE_RADICALS_* environment, then flags
type Config struct {
	Resolution engine.Resolution
	Seed       uint64
	TickRate   int // Simulation frames per second
	Players    int // Players joined at start
	Debug      bool

	Audio   *audio.Config
	Network *network.Config
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Resolution: engine.Res1920x1200,
		Seed:       uint64(time.Now().UnixNano()),
		TickRate:   60,
		Players:    1,
		Audio:      audio.DefaultConfig(),
		Network:    network.DefaultConfig(),
	}
}

// FrameInterval returns the wall time of one simulation frame
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// FrameDelta returns the simulated seconds per frame
func (c *Config) FrameDelta() float64 {
	return 1.0 / float64(c.TickRate)
}

// Validate checks ranges after all layers are applied
func (c *Config) Validate() error {
	if c.TickRate < 1 || c.TickRate > 240 {
		return fmt.Errorf("tick rate %d out of range [1, 240]", c.TickRate)
	}
	if c.Players < 0 || c.Players > 4 {
		return fmt.Errorf("players %d out of range [0, 4]", c.Players)
	}
	return nil
}

// ApplyEnv overlays environment variables, unparsable values are reported
func (c *Config) ApplyEnv() error {
	c.Audio = audio.LoadConfig()

	if v := os.Getenv("FREE_RADICALS_RESOLUTION"); v != "" {
		r, err := engine.ParseResolution(v)
		if err != nil {
			return err
		}
		c.Resolution = r
	}
	if v := os.Getenv("FREE_RADICALS_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("FREE_RADICALS_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("FREE_RADICALS_TICK_RATE"); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FREE_RADICALS_TICK_RATE: %w", err)
		}
		c.TickRate = rate
	}
	if v := os.Getenv("FREE_RADICALS_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Debug = debug
		}
	}
	if v := os.Getenv("FREE_RADICALS_SPECTATE_ADDR"); v != "" {
		c.Network.Address = v
	}
	return nil
}

// ApplyFlags parses args over the current values, unset flags keep them
func (c *Config) ApplyFlags(args []string) error {
	fs := flag.NewFlagSet("free-radicals", flag.ContinueOnError)

	res := fs.String("res", c.Resolution.String(), "Resolution preset: 1920x1200, 1680x1050, 1440x900, 1280x800")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Random seed")
	fs.IntVar(&c.TickRate, "tick", c.TickRate, "Simulation frames per second")
	fs.IntVar(&c.Players, "players", c.Players, "Players joined at start (0-4)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Write logs to the logs directory")
	mute := fs.Bool("mute", !c.Audio.Enabled, "Disable audio")
	fs.StringVar(&c.Network.Address, "spectate", c.Network.Address, "Spectator websocket listen address, empty disables")

	if err := fs.Parse(args); err != nil {
		return err
	}

	r, err := engine.ParseResolution(*res)
	if err != nil {
		return err
	}
	c.Resolution = r
	c.Audio.Enabled = !*mute
	return nil
}

// Load resolves defaults, environment and args into a validated config
func Load(args []string) (*Config, error) {
	c := Default()
	if err := c.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := c.ApplyFlags(args); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// WorldConfig returns the engine settings derived from c
func (c *Config) WorldConfig() engine.WorldConfig {
	return engine.WorldConfig{
		Resolution: c.Resolution,
		Seed:       c.Seed,
	}
}
