// Package web provides a real-time dashboard and control API for a
// monitoring session.
package web

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/examwatch/go-proctor/internal/log"
	"github.com/examwatch/go-proctor/pkg/hub"
	"github.com/examwatch/go-proctor/pkg/monitor"
)

// maxEvents is how many recent transitions the dashboard can fetch.
const maxEvents = 500

// Server is the dashboard/control server. It observes the monitor
// through its callbacks and never touches engine state directly.
type Server struct {
	app  *fiber.App
	port string

	mon *monitor.Monitor

	// Recent transition events
	events   []monitor.Transition
	eventsMu sync.RWMutex

	// Latest snapshot (one per tick)
	snapshot   monitor.Snapshot
	snapshotMu sync.RWMutex

	// Hubs for websocket broadcast
	eventHub  *hub.Hub
	statusHub *hub.Hub
}

// NewServer creates a dashboard server over a monitor. It installs
// itself as the monitor's observer, so construct it before Start.
func NewServer(port string, mon *monitor.Monitor, metrics *monitor.Metrics) *Server {
	s := &Server{
		port:      port,
		mon:       mon,
		events:    make([]monitor.Transition, 0, maxEvents),
		eventHub:  hub.New("events"),
		statusHub: hub.New("status"),
	}

	mon.OnTransition = s.publishTransition
	mon.OnSnapshot = s.publishSnapshot

	app := fiber.New(fiber.Config{
		AppName:               "Proctor Dashboard",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/snapshot", s.handleSnapshot)
	api.Get("/events", s.handleEvents)
	api.Get("/config", s.handleConfig)
	api.Post("/start", s.handleStart)
	api.Post("/stop", s.handleStop)
	api.Post("/reset", s.handleReset)

	if metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	}

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/events", websocket.New(s.handleEventsWS))
	app.Get("/ws/status", websocket.New(s.handleStatusWS))

	s.app = app
	return s
}

// Start starts the web server and blocks.
func (s *Server) Start() error {
	go s.eventHub.Run()
	go s.statusHub.Run()

	log.Info("dashboard listening", "port", s.port)
	return s.app.Listen(":" + s.port)
}

// StartAsync starts the web server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			log.Error("web server failed", "error", err)
		}
	}()
}

// Shutdown gracefully stops the web server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// publishTransition records and broadcasts one edge event.
func (s *Server) publishTransition(tr monitor.Transition) {
	s.eventsMu.Lock()
	s.events = append(s.events, tr)
	if len(s.events) > maxEvents {
		s.events = s.events[1:]
	}
	s.eventsMu.Unlock()

	s.eventHub.BroadcastJSON(tr)
}

// publishSnapshot records and broadcasts the per-tick snapshot.
func (s *Server) publishSnapshot(snap monitor.Snapshot) {
	s.snapshotMu.Lock()
	s.snapshot = snap
	s.snapshotMu.Unlock()

	s.statusHub.BroadcastJSON(snap)
}
