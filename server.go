package mmmratp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Server exposes the current snapshot and a health endpoint over HTTP for
// the display layer and for monitoring.
type Server struct {
	store *SnapshotStore
	srv   *http.Server
}

// NewServer creates a server reading from store and listening on port.
func NewServer(store *SnapshotStore, port int) *Server {
	s := &Server{store: store}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/timetables", s.handleTimetables)
	mux.HandleFunc("/api/traffic", s.handleTraffic)
	mux.HandleFunc("/api/snapshot", s.handleSnapshot)

	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Start begins serving in the background.
func (s *Server) Start() {
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", s.srv.Addr)
}

// Shutdown drains in-flight requests, then stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleTimetables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.store.Current().Timetables)
}

func (s *Server) handleTraffic(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.store.Current().Traffic)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.store.Current())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
