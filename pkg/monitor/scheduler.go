package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/examwatch/go-proctor/internal/log"
	"github.com/examwatch/go-proctor/pkg/detect"
)

// State is the scheduler lifecycle state.
type State int

const (
	// StateIdle means no session is running.
	StateIdle State = iota
	// StateRunning means ticks are being scheduled.
	StateRunning
)

// String returns the state name.
func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

// Monitor drives periodic classification ticks over a detection
// source and owns all mutable violation state.
//
// Ticks are strictly serialized: the scheduling loop runs them one at
// a time and an overdue tick is skipped, never overlapped. Observers
// only ever see immutable snapshots and transition values.
type Monitor struct {
	config Config
	source detect.Source

	// OnTransition fires for every edge transition. Set before Start.
	OnTransition func(Transition)

	// OnSnapshot fires with the full six-kind snapshot after every
	// tick, changed or not. Set before Start.
	OnSnapshot func(Snapshot)

	metrics *Metrics

	// mu guards lifecycle fields and the aggregator.
	mu      sync.Mutex
	state   State
	session string
	tick    uint64
	cancel  context.CancelFunc
	done    chan struct{}

	agg *Aggregator

	// tickMu is held for the whole of one tick's classification and
	// mutation; Reset refuses to run while it is held.
	tickMu sync.Mutex
	focus  *FocusTracker
	drowsy *DrowsinessTracker
}

// New creates a monitor over the given source.
// The configuration is validated here; invalid values never reach a
// running session.
func New(cfg Config, source detect.Source) (*Monitor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Monitor{
		config: cfg,
		source: source,
		agg:    NewAggregator(),
		focus:  NewFocusTracker(cfg),
		drowsy: NewDrowsinessTracker(cfg, nil),
	}, nil
}

// SetEAR replaces the eye-aspect-ratio function used by the
// drowsiness tracker. Must be called before Start.
func (m *Monitor) SetEAR(ear EARFunc) {
	m.drowsy = NewDrowsinessTracker(m.config, ear)
}

// SetMetrics attaches a metrics collector. Must be called before Start.
func (m *Monitor) SetMetrics(metrics *Metrics) {
	m.metrics = metrics
}

// Config returns the session configuration.
func (m *Monitor) Config() Config {
	return m.config
}

// State returns the current lifecycle state.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Session returns the current session ID, or "" when idle.
func (m *Monitor) Session() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateRunning {
		return ""
	}
	return m.session
}

// Start begins a monitoring session. It fails when already running or
// when the detection source is not ready.
func (m *Monitor) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateRunning {
		return ErrAlreadyRunning
	}
	if m.source == nil || !m.source.Ready() {
		return ErrSourceNotReady
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})
	m.session = uuid.NewString()
	m.state = StateRunning

	log.Info("monitoring started",
		"session", m.session,
		"interval", m.config.TickInterval)

	go m.run(ctx, m.session)
	return nil
}

// Stop ends the session. Scheduling stops immediately; an in-flight
// tick is allowed to finish and its result is discarded. Stop returns
// once the scheduling loop has exited.
func (m *Monitor) Stop() error {
	m.mu.Lock()
	if m.state != StateRunning {
		m.mu.Unlock()
		return ErrNotRunning
	}
	cancel := m.cancel
	done := m.done
	session := m.session
	m.mu.Unlock()

	cancel()
	<-done

	m.mu.Lock()
	m.state = StateIdle
	m.cancel = nil
	m.done = nil
	m.mu.Unlock()

	log.Info("monitoring stopped", "session", session)
	return nil
}

// Reset zeroes all counts, clears all active flags and zeroes the
// tracker counters. It is rejected with ErrTickInFlight while a tick
// is being processed; it is never interleaved with one.
func (m *Monitor) Reset() error {
	if !m.tickMu.TryLock() {
		return ErrTickInFlight
	}
	defer m.tickMu.Unlock()

	m.focus.Reset()
	m.drowsy.Reset()

	m.mu.Lock()
	m.agg.Reset()
	m.tick = 0
	m.mu.Unlock()

	log.Info("monitoring state reset")
	return nil
}

// Snapshot returns a read-only, point-in-time view of the violation
// state.
func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked(time.Now())
}

// snapshotLocked builds a snapshot. Caller holds m.mu.
func (m *Monitor) snapshotLocked(now time.Time) Snapshot {
	total := m.agg.Total()
	return Snapshot{
		Session:   m.session,
		Tick:      m.tick,
		Counts:    m.agg.Counts(),
		Active:    m.agg.Active(),
		Total:     total,
		Severity:  ClassifySeverity(total),
		Timestamp: now,
	}
}

// run is the scheduling loop. Exactly one runs per session.
func (m *Monitor) run(ctx context.Context, session string) {
	defer close(m.done)

	ticker := time.NewTicker(m.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// time.Ticker drops missed ticks, so a slow tick is
			// followed by a skip, never by two ticks back to back.
			m.runTick(ctx, session)
		}
	}
}

// runTick executes one classification tick: sample the detectors,
// run the classifiers and trackers, fold the result into the
// aggregator, then notify observers.
func (m *Monitor) runTick(ctx context.Context, session string) {
	m.tickMu.Lock()
	defer m.tickMu.Unlock()

	if !m.source.Ready() {
		// Detector not ready: skip the whole tick, retry next interval.
		log.Debug("tick skipped, source not ready", "session", session)
		m.metrics.ObserveSkip()
		return
	}

	started := time.Now()

	faces, err := m.source.DetectFaces(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		// Degrade to empty so the object signal still updates.
		log.Warn("face detection failed", "session", session, "error", err)
		m.metrics.ObserveDetectorFailure("face")
		faces = nil
	}

	objects, err := m.source.DetectObjects(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Warn("object detection failed", "session", session, "error", err)
		m.metrics.ObserveDetectorFailure("object")
		objects = nil
	}

	// Session stopped while detecting: discard the result before any
	// state mutation.
	if ctx.Err() != nil {
		return
	}

	width, height := m.source.FrameSize()
	if width <= 0 || height <= 0 {
		width, height = m.config.FrameWidth, m.config.FrameHeight
	}

	presence := ClassifyPresence(faces)
	objFlags := ClassifyObjects(objects)
	primary := detect.SelectPrimary(faces)

	obs := Observation{
		FocusLost:     m.focus.Update(primary, width, height),
		FaceAbsent:    presence.FaceAbsent,
		MultipleFaces: presence.MultipleFaces,
		Phone:         objFlags.Phone,
		Notes:         objFlags.Notes,
		Drowsy:        m.drowsy.Update(primary),
	}

	now := time.Now()

	m.mu.Lock()
	m.tick++
	transitions := m.agg.Apply(obs, session, now)
	snap := m.snapshotLocked(now)
	m.mu.Unlock()

	m.metrics.ObserveTick(time.Since(started))

	for _, tr := range transitions {
		log.Info("violation transition",
			"session", session,
			"kind", tr.Kind,
			"active", tr.Active,
			"count", tr.Count)
		m.metrics.ObserveTransition(tr)
		if m.OnTransition != nil {
			m.OnTransition(tr)
		}
	}

	m.metrics.ObserveSnapshot(snap)
	if m.OnSnapshot != nil {
		m.OnSnapshot(snap)
	}
}
