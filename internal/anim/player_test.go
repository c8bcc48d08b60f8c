package anim

import "testing"

func TestAdvanceIdleIsNoOp(t *testing.T) {
	p := New(PyramidTickDelay, 2023)
	pos, p2 := p.Advance(1950)
	if pos != 1950 {
		t.Errorf("pos = %d, want 1950", pos)
	}
	if p2.Playing() {
		t.Error("idle player became playing")
	}
}

func TestToggle(t *testing.T) {
	p := New(PyramidTickDelay, 2023)
	p = p.Toggle()
	if !p.Playing() {
		t.Fatal("Toggle: still idle")
	}
	p = p.Toggle()
	if p.Playing() {
		t.Fatal("Toggle twice: still playing")
	}
}

func TestAdvanceStopsAtBound(t *testing.T) {
	p := New(PyramidTickDelay, 2023).Toggle()

	pos := 1950
	ticks := 0
	for p.Playing() {
		pos, p = p.Advance(pos)
		ticks++
		if ticks > 1000 {
			t.Fatal("player never reached bound")
		}
	}
	if pos != 2023 {
		t.Errorf("final pos = %d, want 2023", pos)
	}
	// 1950 → 2023 is exactly 73 steps; the bound-reaching tick both
	// advances and transitions to idle.
	if ticks != 73 {
		t.Errorf("ticks = %d, want 73", ticks)
	}
}

func TestAdvanceAtBound(t *testing.T) {
	p := New(MedianTickDelay, 2100).Toggle()
	pos, p2 := p.Advance(2100)
	if pos != 2100 {
		t.Errorf("pos = %d, want 2100 (no advance past bound)", pos)
	}
	if p2.Playing() {
		t.Error("player at bound stayed playing")
	}
}

func TestStop(t *testing.T) {
	p := New(PyramidTickDelay, 2023).Toggle().Stop()
	if p.Playing() {
		t.Error("Stop: still playing")
	}
	// Stopping an idle player is also fine.
	if p.Stop().Playing() {
		t.Error("Stop on idle: playing")
	}
}

func TestLabel(t *testing.T) {
	p := New(PyramidTickDelay, 2023)
	if got := p.Label(); got != "Play" {
		t.Errorf("idle label = %q, want Play", got)
	}
	if got := p.Toggle().Label(); got != "Pause" {
		t.Errorf("playing label = %q, want Pause", got)
	}
}
