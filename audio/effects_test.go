package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/free-radicals/parameter"
)

// drain streams s to completion and returns the sample count
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total <= limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatalf("Expected stream to end within %d samples, got more", limit)
	return total
}

// TestCueByName verifies every simulation cue name resolves
func TestCueByName(t *testing.T) {
	names := map[string]Cue{
		parameter.CueTouch:     CueTouch,
		parameter.CueBond:      CueBond,
		parameter.CueUnbond:    CueUnbond,
		parameter.CuePlayerHit: CuePlayerHit,
	}
	for name, expected := range names {
		c, ok := CueByName(name)
		if !ok || c != expected {
			t.Errorf("Expected %s to resolve to %d, got %d (%v)", name, expected, c, ok)
		}
		if c.String() != name {
			t.Errorf("Expected String %s, got %s", name, c.String())
		}
	}
	if _, ok := CueByName("explosion"); ok {
		t.Error("Expected unknown cue to miss")
	}
}

// TestCueStreamsTerminate verifies each cue is finite and of the expected length
func TestCueStreamsTerminate(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	expected := map[Cue]int{
		CueTouch:     rate.N(touchDuration),
		CueBond:      2 * rate.N(bondNoteDuration),
		CueUnbond:    2 * rate.N(unbondNoteDuration),
		CuePlayerHit: rate.N(hitDuration),
	}
	for c, want := range expected {
		s := CreateCue(cfg, c)
		if s == nil {
			t.Fatalf("Expected streamer for %s", c)
		}
		if got := drain(t, s, want*2); got != want {
			t.Errorf("%s: expected %d samples, got %d", c, want, got)
		}
	}
	if CreateCue(cfg, cueCount) != nil {
		t.Error("Expected nil streamer for unknown cue")
	}
}

// TestEnvelopeShape verifies samples stay bounded and the tail fades out
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := note(100, 100e6, 10e6, 50e6, WaveSquare, rate) // 100 ms, 10 ms attack, 50 ms release

	buf := make([][2]float64, 200)
	n, _ := s.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	for i := 0; i < n; i++ {
		if buf[i][0] > 1 || buf[i][0] < -1 {
			t.Fatalf("Expected sample in [-1, 1], got %f at %d", buf[i][0], i)
		}
	}
	if v := buf[99][0]; v > 0.05 || v < -0.05 {
		t.Errorf("Expected faded tail, got %f", v)
	}
}

// TestMutedCueIsSilent verifies zero volume produces silence
func TestMutedCueIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0

	buf := make([][2]float64, 256)
	n, _ := CreateCue(cfg, CuePlayerHit).Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("Expected silence, got %v at %d", buf[i], i)
		}
	}
}
