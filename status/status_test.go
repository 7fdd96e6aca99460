package status

import (
	"sync"
	"testing"

	"github.com/lixenwraith/free-radicals/engine"
	"github.com/lixenwraith/free-radicals/parameter"
)

// TestMetricsGetCaches verifies the same pointer is returned per name
func TestMetricsGetCaches(t *testing.T) {
	r := NewRegistry()
	a := r.Counters.Get("frames")
	b := r.Counters.Get("frames")
	if a != b {
		t.Error("Expected cached pointer")
	}
	if r.Counters.Len() != 1 {
		t.Errorf("Expected 1 counter, got %d", r.Counters.Len())
	}
}

// TestMetricsConcurrentGet verifies concurrent creation yields one value
func TestMetricsConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Counters.Get("hits").Add(1)
		}()
	}
	wg.Wait()
	if got := r.Counters.Get("hits").Load(); got != 50 {
		t.Errorf("Expected 50, got %d", got)
	}
}

// TestGauge verifies float storage
func TestGauge(t *testing.T) {
	r := NewRegistry()
	g := r.Gauges.Get("frame.ms")
	g.Set(16.5)
	if g.Get() != 16.5 {
		t.Errorf("Expected 16.5, got %f", g.Get())
	}
}

// TestCueCounter verifies cues are counted and forwarded
func TestCueCounter(t *testing.T) {
	r := NewRegistry()
	rec := &engine.CueRecorder{}
	c := CountCues(r, rec)

	c.PlayCue(parameter.CueBond)
	c.PlayCue(parameter.CueBond)
	c.PlayCue(parameter.CueUnbond)

	counts := r.Counts()
	if counts["cue."+parameter.CueBond] != 2 || counts["cue."+parameter.CueUnbond] != 1 {
		t.Errorf("Expected bond=2 unbond=1, got %v", counts)
	}
	if len(rec.Played) != 3 {
		t.Errorf("Expected 3 forwarded cues, got %d", len(rec.Played))
	}
	if NewRegistry().Counts() != nil {
		t.Error("Expected nil counts for empty registry")
	}
}
