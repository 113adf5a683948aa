package advisory

import (
	"fmt"
	"strings"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/models"
)

const notAvailable = "not available"

// buildPrompt renders the structured conditions block for the remote
// endpoints. Every domain is enumerated; absent values are marked "not
// available" rather than omitted, so the model never mistakes missing
// data for a zero reading.
func buildPrompt(snap *models.Snapshot, profile, lang, question string) string {
	var b strings.Builder

	b.WriteString("You are an environmental safety assistant. Current conditions for the user's location:\n\n")

	b.WriteString("SPACE WEATHER:\n")
	sw := snap.SpaceWeather
	writeValue(&b, "Planetary Kp index", floatValue(sw.KpIndex, "%.2f"), sw.Available())
	writeValue(&b, "Geomagnetic activity", sw.KpLevel, sw.Available())
	writeValue(&b, "Solar X-ray flare class", sw.XrayClass, sw.Available())
	writeValue(&b, "Proton radiation level", sw.ProtonLevel, sw.Available())
	writeValue(&b, "Solar wind speed (km/s)", floatValue(sw.SolarWindSpeed, "%.0f"), sw.Available())
	writeValue(&b, "Aurora probability (%)", floatValue(sw.AuroraProbability, "%.0f"), sw.Available())

	b.WriteString("\nNATURAL HAZARDS:\n")
	se := snap.Seismic
	writeValue(&b, "Earthquakes nearby (count)", fmt.Sprintf("%d", se.Count), se.Available())
	writeValue(&b, "Strongest nearby earthquake (magnitude)", floatValue(se.MaxMagnitude, "%.1f"), se.Available())
	writeValue(&b, "Active wildfires nearby (count)", fmt.Sprintf("%d", snap.Wildfire.Count), snap.Wildfire.Available())
	writeValue(&b, "Active volcanic events nearby (count)", fmt.Sprintf("%d", snap.Volcanic.Count), snap.Volcanic.Available())
	da := snap.DisasterAlerts
	writeValue(&b, "Regional disaster alerts (red/orange)", fmt.Sprintf("%d/%d", da.RedCount, da.OrangeCount), da.Available())

	b.WriteString("\nATMOSPHERE:\n")
	w := snap.Weather
	writeValue(&b, "Weather", w.Condition, w.Available())
	writeValue(&b, "Temperature (°C)", floatValue(w.Temperature, "%.1f"), w.Available())
	writeValue(&b, "Wind speed (km/h)", floatValue(w.WindSpeed, "%.1f"), w.Available())
	aq := snap.AirQuality
	writeValue(&b, "European AQI", floatValue(aq.EuropeanAQI, "%.0f"), aq.Available())
	writeValue(&b, "Air quality category", aq.Category, aq.Available())
	writeValue(&b, "UV index", floatValue(aq.UVIndex, "%.1f"), aq.Available())
	writeValue(&b, "High pollen species", strings.Join(snap.Pollen.HighPollen, ", "), snap.Pollen.Available())
	writeValue(&b, "Flood risk", snap.Flood.RiskCategory, snap.Flood.Available())
	writeValue(&b, "Sea state", snap.Marine.SeaState, snap.Marine.Available())

	fmt.Fprintf(&b, "\nThe user's profile is: %s. Tailor the relevance of your advice to this profile.\n", profile)
	fmt.Fprintf(&b, "Respond in language: %s.\n", lang)

	if question != "" {
		fmt.Fprintf(&b, "\nThe user asks: %q\nAnswer the question directly using the data above.\n", question)
	} else {
		b.WriteString("\nGive a short, friendly recommendation (3-5 sentences) for the user's day based on the data above. Mention only what matters.\n")
	}
	return b.String()
}

// writeValue appends one labeled line, substituting the not-available
// marker for empty values or unavailable domains.
func writeValue(b *strings.Builder, label, value string, available bool) {
	if !available || value == "" {
		value = notAvailable
	}
	fmt.Fprintf(b, "- %s: %s\n", label, value)
}

func floatValue(v *float64, format string) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf(format, *v)
}
