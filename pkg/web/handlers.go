package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/examwatch/go-proctor/pkg/hub"
	"github.com/examwatch/go-proctor/pkg/monitor"
)

// handleSnapshot returns the current violation state.
func (s *Server) handleSnapshot(c *fiber.Ctx) error {
	return c.JSON(s.mon.Snapshot())
}

// handleEvents returns the recent transition events, oldest first.
func (s *Server) handleEvents(c *fiber.Ctx) error {
	s.eventsMu.RLock()
	defer s.eventsMu.RUnlock()
	return c.JSON(s.events)
}

// handleConfig returns the session configuration.
func (s *Server) handleConfig(c *fiber.Ctx) error {
	cfg := s.mon.Config()
	return c.JSON(fiber.Map{
		"focus_lost_frames":    cfg.FocusLostFrames,
		"drowsiness_frames":    cfg.DrowsinessFrames,
		"focus_drift_fraction": cfg.FocusDriftFraction,
		"ear_threshold":        cfg.EARThreshold,
		"tick_interval_ms":     cfg.TickInterval.Milliseconds(),
	})
}

// handleStart starts the monitoring session.
func (s *Server) handleStart(c *fiber.Ctx) error {
	if err := s.mon.Start(); err != nil {
		return lifecycleError(c, err)
	}
	return c.JSON(fiber.Map{"state": s.mon.State().String(), "session": s.mon.Session()})
}

// handleStop stops the monitoring session.
func (s *Server) handleStop(c *fiber.Ctx) error {
	if err := s.mon.Stop(); err != nil {
		return lifecycleError(c, err)
	}
	return c.JSON(fiber.Map{"state": s.mon.State().String()})
}

// handleReset zeroes the violation state.
func (s *Server) handleReset(c *fiber.Ctx) error {
	if err := s.mon.Reset(); err != nil {
		return lifecycleError(c, err)
	}
	return c.JSON(s.mon.Snapshot())
}

// lifecycleError maps engine lifecycle errors to HTTP status codes.
// Misuse (wrong state, reset mid-tick) is a conflict, not a crash.
func lifecycleError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, monitor.ErrAlreadyRunning),
		errors.Is(err, monitor.ErrNotRunning),
		errors.Is(err, monitor.ErrTickInFlight):
		status = fiber.StatusConflict
	case errors.Is(err, monitor.ErrSourceNotReady):
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// handleEventsWS streams transition events to a dashboard client.
func (s *Server) handleEventsWS(c *websocket.Conn) {
	client := hub.NewClient(s.eventHub, c)
	client.Run()
}

// handleStatusWS streams per-tick snapshots to a dashboard client.
func (s *Server) handleStatusWS(c *websocket.Conn) {
	client := hub.NewClient(s.statusHub, c)
	client.Run()
}
