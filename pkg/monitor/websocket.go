package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"digital.vasic.softassert/pkg/collector"
	"digital.vasic.softassert/pkg/config"
)

const (
	sendBuffer   = 32
	writeTimeout = 5 * time.Second
)

// Server streams failures recorded in a collector to WebSocket
// clients on /ws and serves the dashboard as JSON on /dashboard.
type Server struct {
	mu        sync.RWMutex
	collector *collector.Collector
	dashboard *DashboardData
	upgrader  websocket.Upgrader
	clients   map[*client]struct{}
	addr      string
	bound     net.Addr
	server    *http.Server
	attach    sync.Once
	stopped   chan struct{}
	stopOnce  sync.Once
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewServer creates a monitor for c. A nil dashboard is built from
// the failures c already holds.
func NewServer(addr string, c *collector.Collector, dashboard *DashboardData) *Server {
	if dashboard == nil {
		dashboard = BuildDashboardData("live", c)
	}
	return &Server{
		addr:      addr,
		collector: c,
		dashboard: dashboard,
		clients:   make(map[*client]struct{}),
		stopped:   make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// FromConfig creates a monitor listening on cfg.Addr.
func FromConfig(cfg config.Monitor, c *collector.Collector) (*Server, error) {
	if cfg.Addr == "" {
		return nil, errors.New("monitor address is not configured")
	}
	return NewServer(cfg.Addr, c, nil), nil
}

// Dashboard returns the live dashboard.
func (s *Server) Dashboard() *DashboardData {
	return s.dashboard
}

// Handler attaches the server to its collector and returns the
// HTTP handler serving /ws, /dashboard and /health.
func (s *Server) Handler() http.Handler {
	s.attach.Do(func() {
		s.collector.OnFailure(s.onFailure)
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/dashboard", s.handleDashboard)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Start listens on the configured address and serves until ctx is
// done or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	ln, err := s.listen()
	if err != nil {
		return err
	}
	return s.serve(ctx, ln, s.Handler())
}

// Listen binds the configured address and serves in the background
// until ctx is done or Stop is called. Failures recorded after Listen
// returns reach the dashboard.
func (s *Server) Listen(ctx context.Context) (net.Addr, error) {
	ln, err := s.listen()
	if err != nil {
		return nil, err
	}
	h := s.Handler()
	go func() { _ = s.serve(ctx, ln, h) }()
	return ln.Addr(), nil
}

func (s *Server) listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return nil, fmt.Errorf("monitor server: %w", err)
	}
	s.mu.Lock()
	s.bound = ln.Addr()
	s.mu.Unlock()
	return ln, nil
}

func (s *Server) serve(ctx context.Context, ln net.Listener, h http.Handler) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Lock()
	select {
	case <-s.stopped:
		s.mu.Unlock()
		_ = ln.Close()
		return nil
	default:
	}
	s.server = srv
	s.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			_ = srv.Close()
		case <-s.stopped:
		}
	}()

	if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("monitor server: %w", err)
	}
	return nil
}

// Stop shuts the server down and disconnects every client. A server
// stopped before it starts never serves.
func (s *Server) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopped) })

	s.mu.Lock()
	srv := s.server
	for c := range s.clients {
		_ = c.conn.Close()
		delete(s.clients, c)
	}
	s.mu.Unlock()

	if srv != nil {
		return srv.Shutdown(ctx)
	}
	return nil
}

// Finish marks the run passed or failed and pushes the final
// dashboard to every client.
func (s *Server) Finish(passed bool) {
	status := StatusFailed
	if passed {
		status = StatusPassed
	}
	s.dashboard.SetStatus(status)
	data, err := json.Marshal(Event{
		Type:      EventStatus,
		Dashboard: s.dashboard.Snapshot(),
		Timestamp: time.Now(),
	})
	if err != nil {
		return
	}
	s.broadcast(data)
}

// Addr returns the address the server is bound to, or the
// configured address before it starts.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.bound != nil {
		return s.bound.String()
	}
	return s.addr
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) onFailure(f collector.Failure) {
	s.dashboard.UpdateFromFailure(f)
	data, err := json.Marshal(Event{
		Type:      EventFailure,
		Failure:   &f,
		Timestamp: time.Now(),
	})
	if err != nil {
		return
	}
	s.broadcast(data)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()

	// Failures recorded from here on queue behind the snapshot.
	snap, err := json.Marshal(Event{
		Type:      EventSnapshot,
		Dashboard: s.dashboard.Snapshot(),
		Timestamp: time.Now(),
	})
	if err == nil {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		err = conn.WriteMessage(websocket.TextMessage, snap)
	}
	if err != nil {
		s.remove(c)
		return
	}

	done := make(chan struct{})
	go s.writeLoop(c, done)

	// Reads only detect the client going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	close(done)
	s.remove(c)
}

func (s *Server) writeLoop(c *client, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				_ = c.conn.Close()
				return
			}
		}
	}
}

func (s *Server) remove(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()
	_ = c.conn.Close()
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.dashboard.Snapshot())
}

func (s *Server) broadcast(data []byte) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			// Client too slow, skip
		}
	}
}
