// Package risk converts an environmental snapshot into a severity level and
// an ordered list of triggered risk factors. Scoring is a pure function of
// the snapshot: no clock, no configuration, no hidden state.
package risk

import (
	"fmt"
	"strings"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/models"
)

// Score breakpoints mapping the accumulated total to a severity level.
const (
	criticalThreshold  = 8
	highThreshold      = 5
	mediumThreshold    = 3
	lowMediumThreshold = 1
)

// Score evaluates every domain's threshold ladder in a fixed order
// (geomagnetic index, X-ray class, seismic, wildfire, disaster alerts,
// air quality, UV, flood) and maps the accumulated total to a severity.
// Only the single highest matching step per domain contributes. Domains
// with status other than ok contribute nothing: absence of data is not
// absence of hazard, but scoring covers only what is known.
func Score(snap *models.Snapshot) models.RiskAssessment {
	total := 0
	factors := []models.RiskFactor{}

	add := func(delta int, label, value string) {
		total += delta
		factors = append(factors, models.RiskFactor{Label: label, Value: value})
	}

	// Geomagnetic storm ladder: +5 / +3 / +2 at Kp >= 8 / 7 / 5. The
	// extreme step alone must reach the High breakpoint.
	if sw := snap.SpaceWeather; sw.Available() && sw.KpIndex != nil {
		kp := *sw.KpIndex
		switch {
		case kp >= 8:
			add(5, "Extreme geomagnetic storm", fmt.Sprintf("Kp=%.1f", kp))
		case kp >= 7:
			add(3, "Severe geomagnetic storm", fmt.Sprintf("Kp=%.1f", kp))
		case kp >= 5:
			add(2, "Geomagnetic storm", fmt.Sprintf("Kp=%.1f", kp))
		}
	}

	// Solar flare ladder keyed on the leading class letter.
	if sw := snap.SpaceWeather; sw.Available() && sw.XrayClass != "" {
		switch {
		case strings.HasPrefix(sw.XrayClass, "X"):
			add(3, "X-class solar flare", sw.XrayClass)
		case strings.HasPrefix(sw.XrayClass, "M"):
			add(2, "M-class solar flare", sw.XrayClass)
		}
	}

	// Seismic ladder contributes only when quakes were actually found.
	if se := snap.Seismic; se.Available() && se.Count > 0 && se.MaxMagnitude != nil {
		mag := *se.MaxMagnitude
		switch {
		case mag >= 6:
			add(4, "Major earthquake nearby", fmt.Sprintf("M%.1f", mag))
		case mag >= 5:
			add(3, "Significant earthquake nearby", fmt.Sprintf("M%.1f", mag))
		case mag >= 4:
			add(2, "Moderate earthquake nearby", fmt.Sprintf("M%.1f", mag))
		}
	}

	// Wildfire count; zero fires is a meaningful neutral value.
	if wf := snap.Wildfire; wf.Available() {
		switch {
		case wf.Count > 5:
			add(4, "Multiple wildfires nearby", fmt.Sprintf("%d active fires", wf.Count))
		case wf.Count > 0:
			add(2, "Wildfire activity nearby", fmt.Sprintf("%d active fire(s)", wf.Count))
		}
	}

	// GDACS color-coded disaster alerts; Red dominates Orange.
	if da := snap.DisasterAlerts; da.Available() {
		switch {
		case da.RedCount > 0:
			add(3, "Red disaster alert in region", fmt.Sprintf("%d red alert(s)", da.RedCount))
		case da.OrangeCount > 0:
			add(1, "Orange disaster alert in region", fmt.Sprintf("%d orange alert(s)", da.OrangeCount))
		}
	}

	// EU AQI ladder.
	if aq := snap.AirQuality; aq.Available() && aq.EuropeanAQI != nil {
		aqi := *aq.EuropeanAQI
		switch {
		case aqi > 100:
			add(3, "Hazardous air quality", fmt.Sprintf("AQI %.0f", aqi))
		case aqi > 80:
			add(2, "Very poor air quality", fmt.Sprintf("AQI %.0f", aqi))
		case aqi > 60:
			add(1, "Poor air quality", fmt.Sprintf("AQI %.0f", aqi))
		}
	}

	// UV ladder.
	if aq := snap.AirQuality; aq.Available() && aq.UVIndex != nil {
		uv := *aq.UVIndex
		switch {
		case uv >= 11:
			add(2, "Extreme UV", fmt.Sprintf("UV %.1f", uv))
		case uv >= 8:
			add(1, "Very high UV", fmt.Sprintf("UV %.1f", uv))
		}
	}

	// Flood risk category derived from discharge ratios at the adapter.
	if fl := snap.Flood; fl.Available() {
		switch fl.RiskCategory {
		case "High":
			add(3, "High flood risk", fl.RiskCategory)
		case "Moderate":
			add(2, "Moderate flood risk", fl.RiskCategory)
		}
	}

	return models.RiskAssessment{
		Severity: severityFor(total),
		Score:    total,
		Factors:  factors,
	}
}

func severityFor(score int) models.Severity {
	switch {
	case score >= criticalThreshold:
		return models.SeverityCritical
	case score >= highThreshold:
		return models.SeverityHigh
	case score >= mediumThreshold:
		return models.SeverityMedium
	case score >= lowMediumThreshold:
		return models.SeverityLowMedium
	default:
		return models.SeverityLow
	}
}
