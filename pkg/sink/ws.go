// Package sink forwards violation events to a remote collector over
// WebSocket.
package sink

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"github.com/examwatch/go-proctor/internal/log"
	"github.com/examwatch/go-proctor/pkg/monitor"
)

const (
	defaultQueueSize      = 256
	defaultReconnectDelay = 5 * time.Second
	writeTimeout          = 10 * time.Second
	pingPeriod            = 30 * time.Second
)

// Config holds sink configuration.
type Config struct {
	// URL is the collector's websocket endpoint (ws:// or wss://).
	URL string

	// ReconnectDelay is the wait between connection attempts.
	ReconnectDelay time.Duration

	// QueueSize bounds the outbound buffer. Events beyond it are
	// dropped rather than blocking the engine.
	QueueSize int
}

// WSSink is a fire-and-forget event forwarder. Publish never blocks
// the caller; delivery is best effort with automatic reconnection.
type WSSink struct {
	cfg   Config
	queue chan monitor.Transition
}

// New creates a sink. Call Run to start delivering.
func New(cfg Config) *WSSink {
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = defaultReconnectDelay
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	return &WSSink{
		cfg:   cfg,
		queue: make(chan monitor.Transition, cfg.QueueSize),
	}
}

// Publish enqueues one event for delivery. Full queue drops the event.
func (s *WSSink) Publish(tr monitor.Transition) {
	select {
	case s.queue <- tr:
	default:
		log.Warn("sink queue full, dropping event", "kind", tr.Kind)
	}
}

// Run delivers queued events until the context is cancelled.
// It reconnects with a fixed delay after any connection failure.
func (s *WSSink) Run(ctx context.Context) {
	for {
		if err := s.connectAndDeliver(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Warn("sink connection lost", "url", s.cfg.URL, "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.cfg.ReconnectDelay):
		}
	}
}

// connectAndDeliver dials the collector and streams events until the
// connection breaks or the context ends.
func (s *WSSink) connectAndDeliver(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}

	conn, _, err := dialer.DialContext(ctx, s.cfg.URL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	log.Info("sink connected", "url", s.cfg.URL)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return ctx.Err()

		case tr := <-s.queue:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(tr); err != nil {
				// Re-queue so the event survives the reconnect
				s.Publish(tr)
				return err
			}

		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		}
	}
}
