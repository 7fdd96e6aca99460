package status

import (
	"sync/atomic"

	"github.com/lixenwraith/free-radicals/engine"
)

// Registry holds host-side counters and gauges
// Written by the frame loop, read by the spectator hub and tests
type Registry struct {
	Counters *Metrics[atomic.Int64]
	Gauges   *Metrics[Gauge]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: newMetrics[atomic.Int64](),
		Gauges:   newMetrics[Gauge](),
	}
}

// Counts copies every counter, nil when none exist
func (r *Registry) Counts() map[string]int64 {
	if r.Counters.Len() == 0 {
		return nil
	}
	out := make(map[string]int64, r.Counters.Len())
	r.Counters.Range(func(name string, c *atomic.Int64) {
		out[name] = c.Load()
	})
	return out
}

// CueCounter counts each cue as "cue.<name>" and forwards it
type CueCounter struct {
	reg  *Registry
	next engine.CuePlayer
}

// CountCues wraps next, nil next discards after counting
func CountCues(reg *Registry, next engine.CuePlayer) *CueCounter {
	if next == nil {
		next = engine.NopCues{}
	}
	return &CueCounter{reg: reg, next: next}
}

func (c *CueCounter) PlayCue(name string) {
	c.reg.Counters.Get("cue." + name).Add(1)
	c.next.PlayCue(name)
}
