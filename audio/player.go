package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// CuePlayer synthesizes simulation cues onto the speaker, it implements engine.CuePlayer
type CuePlayer struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
}

// NewCuePlayer creates a player, nil cfg selects DefaultConfig
func NewCuePlayer(cfg *Config) *CuePlayer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &CuePlayer{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Config returns the active configuration
func (p *CuePlayer) Config() *Config {
	return p.cfg
}

// Init opens the speaker, a disabled player stays silent and returns nil
func (p *CuePlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	log.Printf("audio: speaker at %d Hz", p.cfg.SampleRate)
	return nil
}

// Initialized reports whether output is live
func (p *CuePlayer) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// PlayCue queues the named cue, unknown names and an idle speaker are ignored
func (p *CuePlayer) PlayCue(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	c, ok := CueByName(name)
	if !ok {
		return
	}
	s := CreateCue(p.cfg, c)
	if s == nil {
		return
	}

	speaker.Lock()
	if p.mixer.Len() < p.cfg.MaxVoices {
		p.mixer.Add(s)
	}
	speaker.Unlock()
}

// Close silences output
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
