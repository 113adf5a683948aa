package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Severity is the ordinal hazard level produced by the risk engine.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityLowMedium
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// String returns the display name of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "Low"
	case SeverityLowMedium:
		return "Low-Medium"
	case SeverityMedium:
		return "Medium"
	case SeverityHigh:
		return "High"
	case SeverityCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// MarshalJSON renders the severity as its display name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses a severity from its display name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "Low":
		*s = SeverityLow
	case "Low-Medium":
		*s = SeverityLowMedium
	case "Medium":
		*s = SeverityMedium
	case "High":
		*s = SeverityHigh
	case "Critical":
		*s = SeverityCritical
	default:
		return fmt.Errorf("unknown severity %q", name)
	}
	return nil
}

// RiskFactor is one triggered hazard with its triggering value.
type RiskFactor struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// RiskAssessment is the risk engine output for one snapshot.
type RiskAssessment struct {
	Severity Severity     `json:"severity"`
	Score    int          `json:"score"`
	Factors  []RiskFactor `json:"factors"`
}

// Advisory is the generated natural-language recommendation.
type Advisory struct {
	Text        string    `json:"text"`
	Language    string    `json:"language"`
	Profile     string    `json:"profile"`
	Provenance  string    `json:"provenance"` // remote endpoint name or "rule-based"
	GeneratedAt time.Time `json:"generated_at"`
}

// ProvenanceRuleBased marks advisories produced by the local fallback
// generator rather than a remote model endpoint.
const ProvenanceRuleBased = "rule-based"

// Summary is the compact headline block of an alert response.
type Summary struct {
	KpIndex           *float64 `json:"kp_index,omitempty"`
	XrayClass         string   `json:"xray_class,omitempty"`
	AuroraProbability *float64 `json:"aurora_probability,omitempty"`
	EarthquakesNearby int      `json:"earthquakes_nearby"`
	WildfiresNearby   int      `json:"wildfires_nearby"`
	AirQualityAQI     *float64 `json:"air_quality_aqi,omitempty"`
	UVIndex           *float64 `json:"uv_index,omitempty"`
	FloodRisk         string   `json:"flood_risk,omitempty"`
	Temperature       *float64 `json:"temperature,omitempty"`
	Weather           string   `json:"weather,omitempty"`
}

// Alert is the externally visible response assembled by the orchestrator.
type Alert struct {
	Timestamp time.Time      `json:"timestamp"`
	Location  Coordinate     `json:"location"`
	Profile   string         `json:"profile"`
	Language  string         `json:"language"`
	Risk      RiskAssessment `json:"risk"`
	Advisory  Advisory       `json:"advisory"`
	Summary   Summary        `json:"summary"`
	Snapshot  *Snapshot      `json:"snapshot,omitempty"`
}
