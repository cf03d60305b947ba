package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/urban-mobility-tools/bikeflow/config"
	"github.com/urban-mobility-tools/bikeflow/dashboard"
	"github.com/urban-mobility-tools/bikeflow/feed"
	"github.com/urban-mobility-tools/bikeflow/projection"
)

// Server serves rendered marker snapshots for one loaded dataset session.
//
// mu is the host event loop of the dashboard: requests arrive concurrently
// from the HTTP stack, but event application, cache-key computation and
// snapshot capture must not interleave, and the Mercator viewport may only
// be touched under it.
type Server struct {
	mu    sync.Mutex
	orch  *dashboard.Orchestrator
	merc  *projection.Mercator
	idx   *feed.Index
	cache *renderCache
}

// New builds a server around an orchestrator and its mercator projector.
func New(orch *dashboard.Orchestrator, merc *projection.Mercator, idx *feed.Index) *Server {
	return &Server{orch: orch, merc: merc, idx: idx, cache: newRenderCache()}
}

// Router assembles the chi handler tree.
func (s *Server) Router(allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Get("/api/health", s.handleHealth)
	r.Get("/api/markers.json", s.handleMarkersJSON)
	r.Get("/api/markers.geojson", s.handleMarkersGeoJSON)
	return r
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully.
func Start(s *Server, cfg config.ServerConfig) {
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(cfg.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	go func() {
		log.Printf("bikeflow server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
