// Package reports renders alerts into human-readable bulletins: a
// Markdown body plus the HTML rendering that gets persisted next to it.
package reports

import (
	"fmt"
	"strings"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/models"
)

// RenderMarkdown composes the bulletin body for one alert.
func RenderMarkdown(alert *models.Alert) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Environmental Bulletin\n\n")
	fmt.Fprintf(&b, "**Generated:** %s  \n", alert.Timestamp.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "**Location:** %.4f, %.4f  \n", alert.Location.Lat, alert.Location.Lon)
	fmt.Fprintf(&b, "**Profile:** %s\n\n", alert.Profile)

	fmt.Fprintf(&b, "## Risk: %s\n\n", alert.Risk.Severity)
	if len(alert.Risk.Factors) == 0 {
		b.WriteString("No hazard factors triggered.\n\n")
	} else {
		for _, f := range alert.Risk.Factors {
			fmt.Fprintf(&b, "- **%s** (%s)\n", f.Label, f.Value)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Advisory\n\n")
	fmt.Fprintf(&b, "%s\n\n", alert.Advisory.Text)
	fmt.Fprintf(&b, "*Source: %s*\n\n", alert.Advisory.Provenance)

	b.WriteString("## Conditions at a Glance\n\n")
	writeSummary(&b, alert.Summary)

	if alert.Snapshot != nil {
		writeSnapshotDetail(&b, alert.Snapshot)
	}
	return b.String()
}

func writeSummary(b *strings.Builder, s models.Summary) {
	b.WriteString("| Indicator | Value |\n|---|---|\n")
	if s.Weather != "" {
		fmt.Fprintf(b, "| Weather | %s |\n", s.Weather)
	}
	if s.Temperature != nil {
		fmt.Fprintf(b, "| Temperature | %.1f°C |\n", *s.Temperature)
	}
	if s.KpIndex != nil {
		fmt.Fprintf(b, "| Kp index | %.1f |\n", *s.KpIndex)
	}
	if s.XrayClass != "" {
		fmt.Fprintf(b, "| Solar flare class | %s |\n", s.XrayClass)
	}
	if s.AuroraProbability != nil {
		fmt.Fprintf(b, "| Aurora probability | %.0f%% |\n", *s.AuroraProbability)
	}
	fmt.Fprintf(b, "| Earthquakes nearby | %d |\n", s.EarthquakesNearby)
	fmt.Fprintf(b, "| Wildfires nearby | %d |\n", s.WildfiresNearby)
	if s.AirQualityAQI != nil {
		fmt.Fprintf(b, "| European AQI | %.0f |\n", *s.AirQualityAQI)
	}
	if s.UVIndex != nil {
		fmt.Fprintf(b, "| UV index | %.1f |\n", *s.UVIndex)
	}
	if s.FloodRisk != "" {
		fmt.Fprintf(b, "| Flood risk | %s |\n", s.FloodRisk)
	}
	b.WriteString("\n")
}

// writeSnapshotDetail appends the per-domain detail sections. Domains
// without data state why instead of disappearing.
func writeSnapshotDetail(b *strings.Builder, snap *models.Snapshot) {
	b.WriteString("## Domain Detail\n\n")

	writeDomainHeader(b, "Space Weather", snap.SpaceWeather.Result)
	if sw := snap.SpaceWeather; sw.Available() {
		if sw.KpLevel != "" {
			fmt.Fprintf(b, "- Geomagnetic activity: %s\n", sw.KpLevel)
		}
		if sw.ProtonLevel != "" {
			fmt.Fprintf(b, "- Proton radiation: %s\n", sw.ProtonLevel)
		}
		if sw.SolarWindSpeed != nil {
			fmt.Fprintf(b, "- Solar wind: %.0f km/s\n", *sw.SolarWindSpeed)
		}
		if sw.AuroraVisibility != "" {
			fmt.Fprintf(b, "- Aurora outlook: %s\n", sw.AuroraVisibility)
		}
		b.WriteString("\n")
	}

	writeDomainHeader(b, "Seismic Activity", snap.Seismic.Result)
	if se := snap.Seismic; se.Available() && len(se.Quakes) > 0 {
		for _, q := range se.Quakes {
			fmt.Fprintf(b, "- M%.1f %s (%.0f km away)\n", q.Magnitude, q.Place, q.DistanceKm)
		}
		b.WriteString("\n")
	}

	writeDomainHeader(b, "Wildfires", snap.Wildfire.Result)
	writeEvents(b, snap.Wildfire.Events)
	writeDomainHeader(b, "Volcanic Activity", snap.Volcanic.Result)
	writeEvents(b, snap.Volcanic.Events)

	writeDomainHeader(b, "Disaster Alerts", snap.DisasterAlerts.Result)
	if da := snap.DisasterAlerts; da.Available() && len(da.Alerts) > 0 {
		for _, a := range da.Alerts {
			fmt.Fprintf(b, "- [%s] %s\n", a.Level, a.Title)
		}
		b.WriteString("\n")
	}

	writeDomainHeader(b, "Pollen", snap.Pollen.Result)
	if p := snap.Pollen; p.Available() && len(p.Readings) > 0 {
		for _, r := range p.Readings {
			fmt.Fprintf(b, "- %s: %s\n", r.Species, r.Level)
		}
		b.WriteString("\n")
	}

	writeDomainHeader(b, "Marine Conditions", snap.Marine.Result)
	if m := snap.Marine; m.Available() && m.SeaState != "" {
		fmt.Fprintf(b, "- Sea state: %s\n\n", m.SeaState)
	}
}

func writeDomainHeader(b *strings.Builder, title string, hdr models.Result) {
	fmt.Fprintf(b, "### %s\n\n", title)
	if !hdr.Available() {
		fmt.Fprintf(b, "_No data: %s_\n\n", hdr.Reason)
	}
}

func writeEvents(b *strings.Builder, events []models.NaturalEvent) {
	if len(events) == 0 {
		return
	}
	for _, e := range events {
		fmt.Fprintf(b, "- %s (%.0f km away)\n", e.Title, e.DistanceKm)
	}
	b.WriteString("\n")
}
