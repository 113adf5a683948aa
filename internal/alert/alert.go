// Package alert is the composition point of the service: it assembles a
// snapshot, scores it and generates the advisory, and merges everything
// into the externally visible alert. The only caller-visible error is an
// out-of-range coordinate; every external failure degrades the output.
package alert

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/advisory"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/locale"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/models"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/risk"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/snapshot"
)

// Request carries the caller's parameters for one alert.
type Request struct {
	Coordinate models.Coordinate
	Profile    string
	Language   string
	Question   string
	// Domains restricts the snapshot; empty means all.
	Domains []models.Domain
	Radii   snapshot.Radii
	// IncludeSnapshot attaches the full per-domain data to the response.
	IncludeSnapshot bool
}

// Generator produces the advisory for a completed snapshot.
type Generator interface {
	Generate(ctx context.Context, snap *models.Snapshot, profile, lang, question string) models.Advisory
}

// Orchestrator wires the assembler, risk engine and advisory generator.
type Orchestrator struct {
	assembler *snapshot.Assembler
	generator Generator
	log       zerolog.Logger
}

// NewOrchestrator creates the alert pipeline over its collaborators.
func NewOrchestrator(assembler *snapshot.Assembler, generator Generator, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		assembler: assembler,
		generator: generator,
		log:       log.With().Str("component", "alert").Logger(),
	}
}

// BuildAlert runs the full pipeline: validate, assemble, then score and
// generate off the completed snapshot. Scoring and generation only need
// the snapshot, so they run concurrently. Total over external failures:
// with every provider down the result is a degraded alert, not an error.
func (o *Orchestrator) BuildAlert(ctx context.Context, req Request) (*models.Alert, error) {
	if err := req.Coordinate.Validate(); err != nil {
		return nil, err
	}
	profile := req.Profile
	if profile == "" {
		profile = advisory.DefaultProfile
	}
	lang := locale.Normalize(req.Language)

	start := time.Now()
	snap := o.assembler.Assemble(ctx, req.Coordinate, req.Radii, req.Domains)

	var wg sync.WaitGroup
	var assessment models.RiskAssessment
	var adv models.Advisory
	wg.Add(2)
	go func() {
		defer wg.Done()
		assessment = risk.Score(snap)
	}()
	go func() {
		defer wg.Done()
		adv = o.generator.Generate(ctx, snap, profile, lang, req.Question)
	}()
	wg.Wait()

	result := &models.Alert{
		Timestamp: snap.CapturedAt,
		Location:  req.Coordinate,
		Profile:   profile,
		Language:  lang,
		Risk:      assessment,
		Advisory:  adv,
		Summary:   summarize(snap),
	}
	if req.IncludeSnapshot {
		result.Snapshot = snap
	}

	o.log.Info().
		Float64("lat", req.Coordinate.Lat).
		Float64("lon", req.Coordinate.Lon).
		Str("severity", assessment.Severity.String()).
		Int("score", assessment.Score).
		Str("provenance", adv.Provenance).
		Dur("elapsed", time.Since(start)).
		Msg("alert built")
	return result, nil
}

// summarize extracts the headline figures from the snapshot.
func summarize(snap *models.Snapshot) models.Summary {
	s := models.Summary{}
	if sw := snap.SpaceWeather; sw.Available() {
		s.KpIndex = sw.KpIndex
		s.XrayClass = sw.XrayClass
		s.AuroraProbability = sw.AuroraProbability
	}
	if se := snap.Seismic; se.Available() {
		s.EarthquakesNearby = se.Count
	}
	if wf := snap.Wildfire; wf.Available() {
		s.WildfiresNearby = wf.Count
	}
	if aq := snap.AirQuality; aq.Available() {
		s.AirQualityAQI = aq.EuropeanAQI
		s.UVIndex = aq.UVIndex
	}
	if fl := snap.Flood; fl.Available() {
		s.FloodRisk = fl.RiskCategory
	}
	if w := snap.Weather; w.Available() {
		s.Temperature = w.Temperature
		s.Weather = w.Condition
	}
	return s
}
