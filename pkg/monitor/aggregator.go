package monitor

import (
	"time"

	"github.com/google/uuid"
)

// Observation is the fused classifier output of one tick: one boolean
// per violation kind.
type Observation struct {
	FocusLost     bool
	FaceAbsent    bool
	MultipleFaces bool
	Phone         bool
	Notes         bool
	Drowsy        bool
}

// active returns the observation's value for one kind.
func (o Observation) active(kind Kind) bool {
	switch kind {
	case KindFocusLost:
		return o.FocusLost
	case KindFaceAbsent:
		return o.FaceAbsent
	case KindMultipleFaces:
		return o.MultipleFaces
	case KindPhoneDetected:
		return o.Phone
	case KindNotesDetected:
		return o.Notes
	case KindDrowsiness:
		return o.Drowsy
	default:
		return false
	}
}

// Aggregator is the single stateful fusion point. It holds per-kind
// active/count state and converts classifier outputs into
// edge-triggered counter increments.
//
// Not goroutine-safe on its own: the Monitor owns it and serializes
// all access.
type Aggregator struct {
	active map[Kind]bool
	counts map[Kind]int
}

// NewAggregator creates an aggregator with all kinds inactive.
func NewAggregator() *Aggregator {
	a := &Aggregator{
		active: make(map[Kind]bool, len(Kinds())),
		counts: make(map[Kind]int, len(Kinds())),
	}
	for _, kind := range Kinds() {
		a.active[kind] = false
		a.counts[kind] = 0
	}
	return a
}

// Apply folds one tick's observation into the per-kind state and
// returns the edge transitions it produced. A count increases by
// exactly one per false→true edge, never per tick while held true.
func (a *Aggregator) Apply(o Observation, session string, now time.Time) []Transition {
	var transitions []Transition

	for _, kind := range Kinds() {
		newActive := o.active(kind)
		oldActive := a.active[kind]

		if newActive == oldActive {
			continue
		}

		if newActive {
			a.counts[kind]++
		}
		a.active[kind] = newActive

		transitions = append(transitions, Transition{
			ID:        uuid.NewString(),
			Session:   session,
			Kind:      kind,
			Active:    newActive,
			Count:     a.counts[kind],
			Timestamp: now,
		})
	}

	return transitions
}

// Total returns the sum of all counts.
func (a *Aggregator) Total() int {
	total := 0
	for _, c := range a.counts {
		total += c
	}
	return total
}

// Counts returns a copy of the per-kind counts.
func (a *Aggregator) Counts() map[Kind]int {
	counts := make(map[Kind]int, len(a.counts))
	for kind, c := range a.counts {
		counts[kind] = c
	}
	return counts
}

// Active returns a copy of the per-kind active flags.
func (a *Aggregator) Active() map[Kind]bool {
	active := make(map[Kind]bool, len(a.active))
	for kind, v := range a.active {
		active[kind] = v
	}
	return active
}

// Reset zeroes all counts and clears all active flags.
func (a *Aggregator) Reset() {
	for _, kind := range Kinds() {
		a.active[kind] = false
		a.counts[kind] = 0
	}
}

// Snapshot is a read-only, point-in-time view of the violation state.
type Snapshot struct {
	Session   string        `json:"session"`
	Tick      uint64        `json:"tick"`
	Counts    map[Kind]int  `json:"counts"`
	Active    map[Kind]bool `json:"active"`
	Total     int           `json:"total"`
	Severity  Severity      `json:"severity"`
	Timestamp time.Time     `json:"timestamp"`
}
