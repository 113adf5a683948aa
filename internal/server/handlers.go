package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/alert"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/config"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/models"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/snapshot"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/storage"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"version":   config.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleAlert runs the full pipeline. Query parameters: lat, lon, profile,
// lang, question, domains (comma-separated), radius_km overrides and
// include_snapshot.
func (s *Server) handleAlert(w http.ResponseWriter, r *http.Request) {
	coord, err := s.coordinate(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := alert.Request{
		Coordinate:      coord,
		Profile:         r.URL.Query().Get("profile"),
		Language:        r.URL.Query().Get("lang"),
		Question:        r.URL.Query().Get("question"),
		Domains:         parseDomains(r.URL.Query().Get("domains")),
		Radii:           parseRadii(r),
		IncludeSnapshot: r.URL.Query().Get("include_snapshot") == "true",
	}
	if req.Language == "" {
		req.Language = s.cfg.DefaultLanguage
	}

	result, err := s.orchestrator.BuildAlert(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.persister != nil {
		if err := s.persister.Save(r.Context(), result); err != nil {
			s.log.Error().Err(err).Msg("failed to persist bulletin")
		}
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSpaceWeather(w http.ResponseWriter, r *http.Request) {
	s.probe(w, r, func(coord models.Coordinate) interface{} {
		return s.fetcher.FetchSpaceWeather(r.Context(), coord)
	})
}

func (s *Server) handleEarthquakes(w http.ResponseWriter, r *http.Request) {
	s.probe(w, r, func(coord models.Coordinate) interface{} {
		return s.fetcher.FetchSeismic(r.Context(), coord, radiusParam(r, snapshot.DefaultSeismicRadiusKm))
	})
}

func (s *Server) handleWildfires(w http.ResponseWriter, r *http.Request) {
	s.probe(w, r, func(coord models.Coordinate) interface{} {
		return s.fetcher.FetchWildfires(r.Context(), coord, radiusParam(r, snapshot.DefaultWildfireRadiusKm))
	})
}

func (s *Server) handleVolcanoes(w http.ResponseWriter, r *http.Request) {
	s.probe(w, r, func(coord models.Coordinate) interface{} {
		return s.fetcher.FetchVolcanic(r.Context(), coord, radiusParam(r, snapshot.DefaultVolcanicRadiusKm))
	})
}

func (s *Server) handleDisasters(w http.ResponseWriter, r *http.Request) {
	s.probe(w, r, func(coord models.Coordinate) interface{} {
		return s.fetcher.FetchDisasterAlerts(r.Context(), coord, radiusParam(r, snapshot.DefaultDisasterRadiusKm))
	})
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	s.probe(w, r, func(coord models.Coordinate) interface{} {
		return s.fetcher.FetchWeather(r.Context(), coord)
	})
}

func (s *Server) handleAirQuality(w http.ResponseWriter, r *http.Request) {
	s.probe(w, r, func(coord models.Coordinate) interface{} {
		return s.fetcher.FetchAirQuality(r.Context(), coord)
	})
}

func (s *Server) handlePollen(w http.ResponseWriter, r *http.Request) {
	s.probe(w, r, func(coord models.Coordinate) interface{} {
		return s.fetcher.FetchPollen(r.Context(), coord)
	})
}

func (s *Server) handleFlood(w http.ResponseWriter, r *http.Request) {
	s.probe(w, r, func(coord models.Coordinate) interface{} {
		return s.fetcher.FetchFlood(r.Context(), coord)
	})
}

func (s *Server) handleMarine(w http.ResponseWriter, r *http.Request) {
	s.probe(w, r, func(coord models.Coordinate) interface{} {
		return s.fetcher.FetchMarine(r.Context(), coord)
	})
}

// probe validates the coordinate and serves one domain's raw result.
func (s *Server) probe(w http.ResponseWriter, r *http.Request, fetch func(models.Coordinate) interface{}) {
	coord, err := s.coordinate(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, fetch(coord))
}

func (s *Server) handleListBulletins(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	paths, err := s.store.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list bulletins")
		s.log.Error().Err(err).Msg("bulletin listing failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"bulletins": paths})
}

func (s *Server) handleGetBulletin(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")
	if path == "" || strings.Contains(path, "..") {
		writeError(w, http.StatusBadRequest, "invalid bulletin path")
		return
	}
	data, err := s.store.Get(r.Context(), path)
	if err != nil {
		writeError(w, http.StatusNotFound, "bulletin not found")
		return
	}
	w.Header().Set("Content-Type", storage.ContentType(path))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// coordinate reads lat/lon from the query, falling back to the configured
// defaults when both are absent.
func (s *Server) coordinate(r *http.Request) (models.Coordinate, error) {
	q := r.URL.Query()
	coord := models.Coordinate{Lat: s.cfg.DefaultLat, Lon: s.cfg.DefaultLon}

	if v := q.Get("lat"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return models.Coordinate{}, errInvalidParam("lat", v)
		}
		coord.Lat = lat
	}
	if v := q.Get("lon"); v != "" {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return models.Coordinate{}, errInvalidParam("lon", v)
		}
		coord.Lon = lon
	}
	if err := coord.Validate(); err != nil {
		return models.Coordinate{}, err
	}
	return coord, nil
}

func parseDomains(raw string) []models.Domain {
	if raw == "" {
		return nil
	}
	known := make(map[models.Domain]bool)
	for _, d := range models.AllDomains() {
		known[d] = true
	}
	var domains []models.Domain
	for _, part := range strings.Split(raw, ",") {
		d := models.Domain(strings.TrimSpace(part))
		if known[d] {
			domains = append(domains, d)
		}
	}
	return domains
}

func parseRadii(r *http.Request) snapshot.Radii {
	return snapshot.Radii{
		SeismicKm:  floatParam(r, "seismic_radius_km"),
		WildfireKm: floatParam(r, "wildfire_radius_km"),
		VolcanicKm: floatParam(r, "volcanic_radius_km"),
		DisasterKm: floatParam(r, "disaster_radius_km"),
	}
}

func floatParam(r *http.Request, name string) float64 {
	v, err := strconv.ParseFloat(r.URL.Query().Get(name), 64)
	if err != nil {
		return 0
	}
	return v
}

func radiusParam(r *http.Request, fallback float64) float64 {
	if v := floatParam(r, "radius_km"); v > 0 {
		return v
	}
	return fallback
}

type paramError struct {
	name, value string
}

func errInvalidParam(name, value string) error {
	return paramError{name: name, value: value}
}

func (e paramError) Error() string {
	return "invalid " + e.name + " value " + strconv.Quote(e.value)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
