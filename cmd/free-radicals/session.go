package main

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/free-radicals/config"
	"github.com/lixenwraith/free-radicals/engine"
	"github.com/lixenwraith/free-radicals/network"
	"github.com/lixenwraith/free-radicals/particle"
	"github.com/lixenwraith/free-radicals/reaction"
	"github.com/lixenwraith/free-radicals/render"
	"github.com/lixenwraith/free-radicals/status"
	"github.com/lixenwraith/free-radicals/system"
	"github.com/lixenwraith/free-radicals/vmath"
)

// nudge is the velocity change applied to player one per arrow key, reference units per second
const nudge = 40.0

// Session owns the world and the host-side outputs driven from the frame loop
type Session struct {
	cfg       *config.Config
	world     *engine.World
	viewer    *render.Viewer
	spectator *network.Spectator
	stats     *status.Registry
	paused    bool
}

// NewSession builds a populated world with the configured players joined
func NewSession(cfg *config.Config, screen tcell.Screen, cues engine.CuePlayer) *Session {
	stats := status.NewRegistry()
	wc := cfg.WorldConfig()
	wc.Cues = status.CountCues(stats, cues)
	w := system.NewWorld(wc)
	w.SetEffectFactory(particle.New(w.RNG()))

	s := &Session{
		cfg:    cfg,
		world:  w,
		viewer: render.NewViewer(screen),
		stats:  stats,
	}
	if cfg.Network.Enabled() {
		s.spectator = network.NewSpectator(cfg.Network)
	}
	s.newGame()
	return s
}

func (s *Session) newGame() {
	s.world.StartNewGame()
	for i := 0; i < s.cfg.Players; i++ {
		s.world.JoinPlayer(i)
	}
	log.Printf("session: new game, seed %d, %s, %d players", s.cfg.Seed, s.cfg.Resolution, s.cfg.Players)
}

// Serve runs the spectator server until ctx ends, no-op when disabled
func (s *Session) Serve(ctx context.Context) {
	if s.spectator == nil {
		return
	}
	go func() {
		if err := s.spectator.ListenAndServe(ctx); err != nil {
			log.Printf("session: spectator server: %v", err)
		}
	}()
}

// Step advances one frame, publishes a snapshot on stride and draws
func (s *Session) Step() {
	if !s.paused {
		start := time.Now()
		s.world.Update(s.cfg.FrameDelta())
		s.stats.Gauges.Get("frame.ms").Set(float64(time.Since(start).Microseconds()) / 1000)
		s.stats.Counters.Get("frames").Add(1)
	}

	if s.spectator != nil && s.world.Frame()%int64(max(s.cfg.Network.FrameStride, 1)) == 0 {
		snap := network.Capture(s.world)
		snap.Counters = s.stats.Counts()
		if _, err := s.spectator.Broadcast(snap); err != nil {
			log.Printf("session: broadcast: %v", err)
		}
		s.stats.Gauges.Get("spectators").Set(float64(s.spectator.ClientCount()))
	}

	s.viewer.Draw(s.world)
}

// HandleEvent applies a terminal event, returns false to quit
func (s *Session) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.viewer.Resize()
	case *tcell.EventKey:
		return s.handleKey(ev)
	}
	return true
}

func (s *Session) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		s.push(vmath.V2(0, -nudge))
	case tcell.KeyDown:
		s.push(vmath.V2(0, nudge))
	case tcell.KeyLeft:
		s.push(vmath.V2(-nudge, 0))
	case tcell.KeyRight:
		s.push(vmath.V2(nudge, 0))
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			return false
		case 'p':
			s.paused = !s.paused
		case 'n':
			s.newGame()
		case 'u':
			s.unbondNearest()
		case 'x':
			s.toggleCharge()
		case '1', '2', '3', '4':
			s.world.JoinPlayer(int(r - '1'))
		}
	}
	return true
}

// leader returns the first playing player, nil when nobody plays
func (s *Session) leader() *engine.Actor {
	for _, p := range s.world.Players() {
		if p != nil && p.Playing {
			return p
		}
	}
	return nil
}

func (s *Session) push(dv vmath.Vec2) {
	if p := s.leader(); p != nil {
		p.Velocity = vmath.V2Add(p.Velocity, vmath.V2Scale(dv, s.world.ResScale()))
	}
}

func (s *Session) toggleCharge() {
	if p := s.leader(); p != nil {
		p.NegativeCharge = !p.NegativeCharge
	}
}

// unbondNearest splits the composite closest to the leader, or to the focal point without one
func (s *Session) unbondNearest() bool {
	origin := s.world.FocalPoint()
	if p := s.leader(); p != nil {
		origin = p.Position
	}

	var target *engine.Actor
	best := 0.0
	s.world.EachActive(func(a *engine.Actor) {
		if len(reaction.Fragments(a.Species)) == 0 {
			return
		}
		if d := vmath.V2Dist(origin, a.Position); target == nil || d < best {
			target, best = a, d
		}
	})
	if target == nil {
		return false
	}
	return reaction.Unbond(s.world, target)
}

// Close stops the spectator hub
func (s *Session) Close() {
	if s.spectator != nil {
		s.spectator.Close()
	}
}
