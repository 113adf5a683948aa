// Package snapshot assembles the per-request aggregate of all hazard
// domains. Requested domains are fetched concurrently; a panicking or
// failing adapter degrades its own domain only.
package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/models"
)

// Default search radii in kilometers per proximity-filtered domain.
const (
	DefaultSeismicRadiusKm  = 500
	DefaultWildfireRadiusKm = 100
	DefaultVolcanicRadiusKm = 300
	DefaultDisasterRadiusKm = 1000
)

const reasonNotRequested = "domain not requested"

// Sources is the set of per-domain adapters the assembler fans out to.
// *fetchers.Fetcher satisfies it; tests substitute doubles.
type Sources interface {
	FetchSpaceWeather(ctx context.Context, coord models.Coordinate) models.SpaceWeatherResult
	FetchSeismic(ctx context.Context, coord models.Coordinate, radiusKm float64) models.SeismicResult
	FetchWildfires(ctx context.Context, coord models.Coordinate, radiusKm float64) models.WildfireResult
	FetchVolcanic(ctx context.Context, coord models.Coordinate, radiusKm float64) models.VolcanicResult
	FetchDisasterAlerts(ctx context.Context, coord models.Coordinate, radiusKm float64) models.DisasterAlertsResult
	FetchWeather(ctx context.Context, coord models.Coordinate) models.WeatherResult
	FetchAirQuality(ctx context.Context, coord models.Coordinate) models.AirQualityResult
	FetchPollen(ctx context.Context, coord models.Coordinate) models.PollenResult
	FetchFlood(ctx context.Context, coord models.Coordinate) models.FloodResult
	FetchMarine(ctx context.Context, coord models.Coordinate) models.MarineResult
}

// Radii overrides the default search radii. Zero fields keep the default.
type Radii struct {
	SeismicKm  float64
	WildfireKm float64
	VolcanicKm float64
	DisasterKm float64
}

func (r Radii) withDefaults() Radii {
	if r.SeismicKm <= 0 {
		r.SeismicKm = DefaultSeismicRadiusKm
	}
	if r.WildfireKm <= 0 {
		r.WildfireKm = DefaultWildfireRadiusKm
	}
	if r.VolcanicKm <= 0 {
		r.VolcanicKm = DefaultVolcanicRadiusKm
	}
	if r.DisasterKm <= 0 {
		r.DisasterKm = DefaultDisasterRadiusKm
	}
	return r
}

// Assembler fans requests out to the source adapters and collects a
// complete snapshot. Safe for concurrent use.
type Assembler struct {
	sources Sources
	log     zerolog.Logger
}

// NewAssembler creates an assembler over the given source adapters.
func NewAssembler(sources Sources, log zerolog.Logger) *Assembler {
	return &Assembler{
		sources: sources,
		log:     log.With().Str("component", "snapshot").Logger(),
	}
}

// Assemble fetches the requested domains concurrently and returns a
// snapshot with every domain field populated: requested domains carry
// the adapter outcome, unrequested ones an unavailable marker. Assemble
// itself never fails; per-domain failures live in the status headers.
func (a *Assembler) Assemble(ctx context.Context, coord models.Coordinate, radii Radii, requested []models.Domain) *models.Snapshot {
	if len(requested) == 0 {
		requested = models.AllDomains()
	}
	radii = radii.withDefaults()

	snap := &models.Snapshot{
		Location:   coord,
		CapturedAt: time.Now().UTC(),
		Requested:  requested,
	}
	a.markUnrequested(snap, requested)

	var wg sync.WaitGroup
	var mu sync.Mutex
	start := time.Now()

	for _, domain := range requested {
		fetch, ok := a.fetchFunc(domain, coord, radii)
		if !ok {
			continue
		}
		wg.Add(1)
		go func(domain models.Domain) {
			defer wg.Done()
			result := a.safeFetch(ctx, domain, fetch)
			mu.Lock()
			defer mu.Unlock()
			result(snap)
		}(domain)
	}
	wg.Wait()

	a.log.Debug().
		Int("domains", len(requested)).
		Dur("elapsed", time.Since(start)).
		Msg("snapshot assembled")
	return snap
}

// applyFunc writes one domain result into the snapshot under the mutex.
type applyFunc func(*models.Snapshot)

// fetchFunc binds a domain to its adapter call. The returned closure runs
// the fetch and yields the apply step for the collected result.
func (a *Assembler) fetchFunc(domain models.Domain, coord models.Coordinate, radii Radii) (func(ctx context.Context) applyFunc, bool) {
	switch domain {
	case models.DomainSpaceWeather:
		return func(ctx context.Context) applyFunc {
			r := a.sources.FetchSpaceWeather(ctx, coord)
			return func(s *models.Snapshot) { s.SpaceWeather = r }
		}, true
	case models.DomainSeismic:
		return func(ctx context.Context) applyFunc {
			r := a.sources.FetchSeismic(ctx, coord, radii.SeismicKm)
			return func(s *models.Snapshot) { s.Seismic = r }
		}, true
	case models.DomainWildfire:
		return func(ctx context.Context) applyFunc {
			r := a.sources.FetchWildfires(ctx, coord, radii.WildfireKm)
			return func(s *models.Snapshot) { s.Wildfire = r }
		}, true
	case models.DomainVolcanic:
		return func(ctx context.Context) applyFunc {
			r := a.sources.FetchVolcanic(ctx, coord, radii.VolcanicKm)
			return func(s *models.Snapshot) { s.Volcanic = r }
		}, true
	case models.DomainDisasterAlerts:
		return func(ctx context.Context) applyFunc {
			r := a.sources.FetchDisasterAlerts(ctx, coord, radii.DisasterKm)
			return func(s *models.Snapshot) { s.DisasterAlerts = r }
		}, true
	case models.DomainWeather:
		return func(ctx context.Context) applyFunc {
			r := a.sources.FetchWeather(ctx, coord)
			return func(s *models.Snapshot) { s.Weather = r }
		}, true
	case models.DomainAirQuality:
		return func(ctx context.Context) applyFunc {
			r := a.sources.FetchAirQuality(ctx, coord)
			return func(s *models.Snapshot) { s.AirQuality = r }
		}, true
	case models.DomainPollen:
		return func(ctx context.Context) applyFunc {
			r := a.sources.FetchPollen(ctx, coord)
			return func(s *models.Snapshot) { s.Pollen = r }
		}, true
	case models.DomainFlood:
		return func(ctx context.Context) applyFunc {
			r := a.sources.FetchFlood(ctx, coord)
			return func(s *models.Snapshot) { s.Flood = r }
		}, true
	case models.DomainMarine:
		return func(ctx context.Context) applyFunc {
			r := a.sources.FetchMarine(ctx, coord)
			return func(s *models.Snapshot) { s.Marine = r }
		}, true
	default:
		a.log.Warn().Str("domain", string(domain)).Msg("unknown domain requested")
		return nil, false
	}
}

// safeFetch runs one adapter call with a panic guard. A panicking adapter
// degrades its own domain to an error result instead of taking down the
// whole snapshot.
func (a *Assembler) safeFetch(ctx context.Context, domain models.Domain, fetch func(ctx context.Context) applyFunc) (apply applyFunc) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error().Str("domain", string(domain)).Interface("panic", r).Msg("adapter panicked")
			hdr := models.Errorf("adapter panicked: %v", r)
			apply = errorApply(domain, hdr)
		}
	}()
	return fetch(ctx)
}

// errorApply builds the apply step that stamps an error header onto the
// panicking domain's field.
func errorApply(domain models.Domain, hdr models.Result) applyFunc {
	return func(s *models.Snapshot) {
		switch domain {
		case models.DomainSpaceWeather:
			s.SpaceWeather = models.SpaceWeatherResult{Result: hdr}
		case models.DomainSeismic:
			s.Seismic = models.SeismicResult{Result: hdr}
		case models.DomainWildfire:
			s.Wildfire = models.WildfireResult{Result: hdr}
		case models.DomainVolcanic:
			s.Volcanic = models.VolcanicResult{Result: hdr}
		case models.DomainDisasterAlerts:
			s.DisasterAlerts = models.DisasterAlertsResult{Result: hdr}
		case models.DomainWeather:
			s.Weather = models.WeatherResult{Result: hdr}
		case models.DomainAirQuality:
			s.AirQuality = models.AirQualityResult{Result: hdr}
		case models.DomainPollen:
			s.Pollen = models.PollenResult{Result: hdr}
		case models.DomainFlood:
			s.Flood = models.FloodResult{Result: hdr}
		case models.DomainMarine:
			s.Marine = models.MarineResult{Result: hdr}
		}
	}
}

// markUnrequested stamps the unavailable marker on every domain the caller
// did not ask for, so consumers never see a zero-valued status.
func (a *Assembler) markUnrequested(snap *models.Snapshot, requested []models.Domain) {
	asked := make(map[models.Domain]bool, len(requested))
	for _, d := range requested {
		asked[d] = true
	}
	hdr := models.Unavailable(reasonNotRequested)
	for _, d := range models.AllDomains() {
		if !asked[d] {
			errorApply(d, hdr)(snap)
		}
	}
}
