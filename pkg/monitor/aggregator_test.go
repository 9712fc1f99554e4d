package monitor

import (
	"testing"
	"time"
)

func TestAggregator_EdgeTriggeredCounting(t *testing.T) {
	agg := NewAggregator()
	now := time.Now()

	// Held true for three ticks: exactly one increment
	for i := 0; i < 3; i++ {
		agg.Apply(Observation{Phone: true}, "s", now)
	}
	if got := agg.Counts()[KindPhoneDetected]; got != 1 {
		t.Errorf("count while held: got %d, want 1", got)
	}

	// Drop and raise again: second increment
	agg.Apply(Observation{}, "s", now)
	agg.Apply(Observation{Phone: true}, "s", now)
	if got := agg.Counts()[KindPhoneDetected]; got != 2 {
		t.Errorf("count after re-raise: got %d, want 2", got)
	}
}

func TestAggregator_CountEqualsRisingEdges(t *testing.T) {
	// Arbitrary boolean sequence: the count must equal the number of
	// false→true edges, independent of run lengths.
	seq := []bool{false, true, true, false, false, true, false, true, true, true, false, true}

	agg := NewAggregator()
	now := time.Now()

	edges := 0
	prev := false
	for _, v := range seq {
		if v && !prev {
			edges++
		}
		prev = v
		agg.Apply(Observation{FaceAbsent: v}, "s", now)
	}

	if got := agg.Counts()[KindFaceAbsent]; got != edges {
		t.Errorf("count: got %d, want %d rising edges", got, edges)
	}
}

func TestAggregator_TransitionsOnBothEdges(t *testing.T) {
	agg := NewAggregator()
	now := time.Now()

	up := agg.Apply(Observation{Notes: true}, "sess", now)
	if len(up) != 1 {
		t.Fatalf("rising edge transitions: got %d, want 1", len(up))
	}
	if up[0].Kind != KindNotesDetected || !up[0].Active || up[0].Count != 1 {
		t.Errorf("rising transition: got %+v", up[0])
	}
	if up[0].Session != "sess" {
		t.Errorf("transition session: got %q, want %q", up[0].Session, "sess")
	}
	if up[0].ID == "" {
		t.Error("transition ID should be set")
	}

	down := agg.Apply(Observation{}, "sess", now)
	if len(down) != 1 {
		t.Fatalf("falling edge transitions: got %d, want 1", len(down))
	}
	if down[0].Active {
		t.Error("falling transition should be inactive")
	}
	if down[0].Count != 1 {
		t.Errorf("falling transition count: got %d, want 1 (no change)", down[0].Count)
	}
}

func TestAggregator_NoTransitionWhenUnchanged(t *testing.T) {
	agg := NewAggregator()
	now := time.Now()

	agg.Apply(Observation{Drowsy: true}, "s", now)
	if trs := agg.Apply(Observation{Drowsy: true}, "s", now); len(trs) != 0 {
		t.Errorf("unchanged tick transitions: got %d, want 0", len(trs))
	}
	if trs := agg.Apply(Observation{Drowsy: false}, "s", now); len(trs) != 1 {
		t.Errorf("falling tick transitions: got %d, want 1", len(trs))
	}
	if trs := agg.Apply(Observation{}, "s", now); len(trs) != 0 {
		t.Errorf("quiet tick transitions: got %d, want 0", len(trs))
	}
}

func TestAggregator_IndependentKinds(t *testing.T) {
	agg := NewAggregator()
	now := time.Now()

	trs := agg.Apply(Observation{Phone: true, FaceAbsent: true, FocusLost: true}, "s", now)
	if len(trs) != 3 {
		t.Fatalf("simultaneous edges: got %d transitions, want 3", len(trs))
	}
	if agg.Total() != 3 {
		t.Errorf("Total: got %d, want 3", agg.Total())
	}
}

func TestAggregator_ResetIdempotent(t *testing.T) {
	agg := NewAggregator()
	now := time.Now()

	agg.Apply(Observation{Phone: true, Notes: true}, "s", now)
	agg.Reset()
	first := agg.Counts()
	firstActive := agg.Active()

	agg.Reset()
	second := agg.Counts()
	secondActive := agg.Active()

	for _, kind := range Kinds() {
		if first[kind] != 0 || second[kind] != 0 {
			t.Errorf("%s count after reset: got %d/%d, want 0", kind, first[kind], second[kind])
		}
		if firstActive[kind] || secondActive[kind] {
			t.Errorf("%s active after reset: got %v/%v, want false", kind, firstActive[kind], secondActive[kind])
		}
	}
	if agg.Total() != 0 {
		t.Errorf("Total after reset: got %d, want 0", agg.Total())
	}
}

func TestAggregator_CopiesAreDetached(t *testing.T) {
	agg := NewAggregator()
	counts := agg.Counts()
	counts[KindPhoneDetected] = 99

	if agg.Counts()[KindPhoneDetected] != 0 {
		t.Error("mutating a Counts() copy leaked into the aggregator")
	}
}
