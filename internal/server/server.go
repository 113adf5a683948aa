// Package server exposes the alert pipeline over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/advisory"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/alert"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/config"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/fetchers"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/reports"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/snapshot"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/storage"
)

// Server wires the alert pipeline behind the HTTP routes.
type Server struct {
	cfg          *config.Config
	fetcher      *fetchers.Fetcher
	orchestrator *alert.Orchestrator
	persister    *reports.Persister
	store        storage.Store
	log          zerolog.Logger
}

// New assembles the full pipeline from configuration.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Server, error) {
	fetcher := fetchers.NewFetcher(cfg, log)
	assembler := snapshot.NewAssembler(fetcher, log)
	generator := advisory.NewGenerator(cfg, log)

	s := &Server{
		cfg:          cfg,
		fetcher:      fetcher,
		orchestrator: alert.NewOrchestrator(assembler, generator, log),
		log:          log.With().Str("component", "server").Logger(),
	}

	if cfg.SaveBulletins {
		store, err := storage.NewStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		s.store = store
		s.persister = reports.NewPersister(store, log)
	}
	return s, nil
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(90 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Get("/alert", s.handleAlert)

	// Per-domain probes for debugging and dashboards.
	r.Get("/space-weather", s.handleSpaceWeather)
	r.Get("/earthquakes", s.handleEarthquakes)
	r.Get("/wildfires", s.handleWildfires)
	r.Get("/volcanoes", s.handleVolcanoes)
	r.Get("/disasters", s.handleDisasters)
	r.Get("/weather", s.handleWeather)
	r.Get("/air-quality", s.handleAirQuality)
	r.Get("/pollen", s.handlePollen)
	r.Get("/flood", s.handleFlood)
	r.Get("/marine", s.handleMarine)

	if s.store != nil {
		r.Get("/bulletins", s.handleListBulletins)
		r.Get("/bulletins/*", s.handleGetBulletin)
	}
	return r
}

// requestLogger emits one structured line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}

// Close releases the bulletin store if one is configured.
func (s *Server) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
