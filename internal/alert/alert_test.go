package alert

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/models"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/risk"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/snapshot"
)

// stormSources serves a single extreme geomagnetic reading with every
// other provider down.
type stormSources struct{ downSources }

func (s stormSources) FetchSpaceWeather(ctx context.Context, coord models.Coordinate) models.SpaceWeatherResult {
	return models.SpaceWeatherResult{
		Result:  models.OK(),
		KpIndex: models.Float(8.0),
		KpLevel: "Extreme Storm (G4-G5)",
	}
}

// downSources fails every domain.
type downSources struct{}

func (downSources) FetchSpaceWeather(ctx context.Context, coord models.Coordinate) models.SpaceWeatherResult {
	return models.SpaceWeatherResult{Result: models.Errorf("provider down")}
}
func (downSources) FetchSeismic(ctx context.Context, coord models.Coordinate, radiusKm float64) models.SeismicResult {
	return models.SeismicResult{Result: models.Errorf("provider down")}
}
func (downSources) FetchWildfires(ctx context.Context, coord models.Coordinate, radiusKm float64) models.WildfireResult {
	return models.WildfireResult{Result: models.Errorf("provider down")}
}
func (downSources) FetchVolcanic(ctx context.Context, coord models.Coordinate, radiusKm float64) models.VolcanicResult {
	return models.VolcanicResult{Result: models.Errorf("provider down")}
}
func (downSources) FetchDisasterAlerts(ctx context.Context, coord models.Coordinate, radiusKm float64) models.DisasterAlertsResult {
	return models.DisasterAlertsResult{Result: models.Errorf("provider down")}
}
func (downSources) FetchWeather(ctx context.Context, coord models.Coordinate) models.WeatherResult {
	return models.WeatherResult{Result: models.Errorf("provider down")}
}
func (downSources) FetchAirQuality(ctx context.Context, coord models.Coordinate) models.AirQualityResult {
	return models.AirQualityResult{Result: models.Errorf("provider down")}
}
func (downSources) FetchPollen(ctx context.Context, coord models.Coordinate) models.PollenResult {
	return models.PollenResult{Result: models.Errorf("provider down")}
}
func (downSources) FetchFlood(ctx context.Context, coord models.Coordinate) models.FloodResult {
	return models.FloodResult{Result: models.Errorf("provider down")}
}
func (downSources) FetchMarine(ctx context.Context, coord models.Coordinate) models.MarineResult {
	return models.MarineResult{Result: models.Errorf("provider down")}
}

// stubGenerator is a deterministic advisory double.
type stubGenerator struct{}

func (stubGenerator) Generate(ctx context.Context, snap *models.Snapshot, profile, lang, question string) models.Advisory {
	return models.Advisory{
		Text:       "Stay informed and follow official guidance.",
		Language:   lang,
		Profile:    profile,
		Provenance: models.ProvenanceRuleBased,
	}
}

var zurich = models.Coordinate{Lat: 47.3769, Lon: 8.5417}

func newOrchestrator(sources snapshot.Sources) *Orchestrator {
	assembler := snapshot.NewAssembler(sources, zerolog.Nop())
	return NewOrchestrator(assembler, stubGenerator{}, zerolog.Nop())
}

func TestBuildAlertInvalidCoordinate(t *testing.T) {
	o := newOrchestrator(downSources{})

	tests := []struct {
		name  string
		coord models.Coordinate
	}{
		{"latitude too high", models.Coordinate{Lat: 91, Lon: 0}},
		{"latitude too low", models.Coordinate{Lat: -91, Lon: 0}},
		{"longitude too high", models.Coordinate{Lat: 0, Lon: 181}},
		{"longitude too low", models.Coordinate{Lat: 0, Lon: -181}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := o.BuildAlert(context.Background(), Request{Coordinate: tt.coord})
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), "out of range") {
				t.Errorf("unexpected error %v", err)
			}
		})
	}
}

func TestBuildAlertExtremeStorm(t *testing.T) {
	o := newOrchestrator(stormSources{})

	result, err := o.BuildAlert(context.Background(), Request{Coordinate: zurich, IncludeSnapshot: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Risk.Severity < models.SeverityHigh {
		t.Errorf("Kp 8.0 must score at least High, got %s", result.Risk.Severity)
	}
	stormFactors := 0
	for _, f := range result.Risk.Factors {
		if strings.Contains(strings.ToLower(f.Label), "storm") {
			stormFactors++
		}
	}
	if stormFactors != 1 {
		t.Errorf("expected exactly one storm factor, got %d", stormFactors)
	}

	// Scoring the same snapshot again must be byte-for-byte identical.
	again := risk.Score(result.Snapshot)
	if !reflect.DeepEqual(result.Risk, again) {
		t.Error("risk scoring is not idempotent")
	}
}

func TestBuildAlertTotalOverFailures(t *testing.T) {
	o := newOrchestrator(downSources{})

	result, err := o.BuildAlert(context.Background(), Request{Coordinate: zurich})
	if err != nil {
		t.Fatalf("all providers down must degrade, not fail: %v", err)
	}
	if result.Risk.Severity != models.SeverityLow || result.Risk.Score != 0 {
		t.Errorf("expected Low/0 with no data, got %s/%d", result.Risk.Severity, result.Risk.Score)
	}
	if len(result.Risk.Factors) != 0 {
		t.Errorf("expected no factors, got %v", result.Risk.Factors)
	}
	if result.Advisory.Text == "" {
		t.Error("advisory must never be empty")
	}
	if result.Snapshot != nil {
		t.Error("snapshot must be omitted unless requested")
	}
}

func TestBuildAlertDefaults(t *testing.T) {
	o := newOrchestrator(stormSources{})

	result, err := o.BuildAlert(context.Background(), Request{
		Coordinate: zurich,
		Language:   "klingon",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Profile != "General Public" {
		t.Errorf("expected default profile, got %q", result.Profile)
	}
	if result.Language != "en" {
		t.Errorf("unrecognized language must coerce to en, got %q", result.Language)
	}
}

func TestBuildAlertSummary(t *testing.T) {
	o := newOrchestrator(stormSources{})

	result, err := o.BuildAlert(context.Background(), Request{Coordinate: zurich})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Summary.KpIndex == nil || *result.Summary.KpIndex != 8.0 {
		t.Errorf("expected Kp in the summary, got %v", result.Summary.KpIndex)
	}
	if result.Summary.AirQualityAQI != nil {
		t.Error("failed domains must not leak values into the summary")
	}
}
