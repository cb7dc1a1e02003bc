// Package statusserver exposes a solve's live status and Prometheus metrics
// over HTTP. It is optional ambient infrastructure: cmd/swarmsim starts one
// only when given a listen address, and no library package imports it.
package statusserver

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/swarmsim/internal/metrics"
	"github.com/katalvlaran/swarmsim/internal/telemetry"
)

// Status is the last-known state of a Router.Solve run, as last handed to
// SetStatus by the caller.
type Status struct {
	RunID           string `json:"run_id"`
	Stages          int    `json:"stages"`
	BinPhaseError   string `json:"bin_phase_error,omitempty"`
	RobotPhaseError string `json:"robot_phase_error,omitempty"`
	Done            bool   `json:"done"`
}

// Server serves GET /status (JSON snapshot of the last Status set) and
// GET /metrics (the Prometheus registry backing m).
type Server struct {
	addr string
	m    *metrics.Metrics

	mu     sync.RWMutex
	status Status
}

// New builds a Server listening on addr. m may be nil, in which case no
// /metrics route is registered and only /status is served.
func New(addr string, m *metrics.Metrics) *Server {
	return &Server{addr: addr, m: m}
}

// SetStatus replaces the status snapshot /status reports.
func (s *Server) SetStatus(st Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = st
}

// Serve blocks, serving /status and /metrics until the listener fails.
func (s *Server) Serve() error {
	telemetry.Named("statusserver").Info("listening", "addr", s.addr)
	return http.ListenAndServe(s.addr, s.router())
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/status", s.serveStatus).Methods(http.MethodGet)
	if s.m != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.m.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
	return r
}

func (s *Server) serveStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	st := s.status
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(st); err != nil {
		telemetry.Named("statusserver").Error("encode status failed", "error", err)
	}
}
