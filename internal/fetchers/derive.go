package fetchers

import "fmt"

// Derived category labels, computed once at the adapter boundary so the
// rest of the system never re-derives provider semantics.

// kpLevel maps a planetary K-index to the NOAA G-scale storm label.
func kpLevel(kp float64) string {
	switch {
	case kp >= 8:
		return "Extreme Storm (G4-G5)"
	case kp >= 7:
		return "Severe Storm (G3)"
	case kp >= 6:
		return "Strong Storm (G2)"
	case kp >= 5:
		return "Moderate Storm (G1)"
	case kp >= 4:
		return "Active"
	default:
		return "Quiet"
	}
}

// flareClass converts a GOES X-ray flux in W/m² to the letter flare class.
func flareClass(flux float64) string {
	switch {
	case flux >= 1e-4:
		return fmt.Sprintf("X%d", int(flux/1e-4))
	case flux >= 1e-5:
		return fmt.Sprintf("M%d", int(flux/1e-5))
	case flux >= 1e-6:
		return fmt.Sprintf("C%d", int(flux/1e-6))
	case flux >= 1e-7:
		return fmt.Sprintf("B%d", int(flux/1e-7))
	default:
		return "A"
	}
}

// protonLevel maps >=10 MeV proton flux to the NOAA S-scale.
func protonLevel(flux float64) string {
	switch {
	case flux >= 100000:
		return "S5 - Extreme"
	case flux >= 10000:
		return "S4 - Severe"
	case flux >= 1000:
		return "S3 - Strong"
	case flux >= 100:
		return "S2 - Moderate"
	case flux >= 10:
		return "S1 - Minor"
	default:
		return "S0 - None"
	}
}

// auroraVisibility labels an OVATION probability percentage.
func auroraVisibility(prob float64) string {
	switch {
	case prob >= 50:
		return "Excellent - Aurora likely visible"
	case prob >= 30:
		return "Good - Aurora possible"
	case prob >= 10:
		return "Fair - Aurora might be visible on horizon"
	default:
		return "Low - Aurora unlikely"
	}
}

// aqiCategory labels a European AQI value.
func aqiCategory(aqi float64) string {
	switch {
	case aqi <= 20:
		return "Good"
	case aqi <= 40:
		return "Fair"
	case aqi <= 60:
		return "Moderate"
	case aqi <= 80:
		return "Poor"
	case aqi <= 100:
		return "Very Poor"
	default:
		return "Hazardous"
	}
}

// uvCategory labels a UV index per the WHO scale.
func uvCategory(uv float64) string {
	switch {
	case uv <= 2:
		return "Low"
	case uv <= 5:
		return "Moderate"
	case uv <= 7:
		return "High"
	case uv <= 10:
		return "Very High"
	default:
		return "Extreme"
	}
}

// pollenLevel labels a pollen concentration in grains/m³.
func pollenLevel(v float64) string {
	switch {
	case v < 10:
		return "Low"
	case v < 50:
		return "Moderate"
	case v < 100:
		return "High"
	default:
		return "Very High"
	}
}

// floodCategory derives the flood risk from forecast vs. mean discharge.
func floodCategory(maxDischarge, meanDischarge float64) string {
	if meanDischarge <= 0 {
		return "None"
	}
	switch {
	case maxDischarge > meanDischarge*3:
		return "High"
	case maxDischarge > meanDischarge*2:
		return "Moderate"
	case maxDischarge > meanDischarge*1.5:
		return "Low"
	default:
		return "None"
	}
}

// seaState labels significant wave height in meters.
func seaState(waveHeight float64) string {
	switch {
	case waveHeight > 6:
		return "Very Rough - Dangerous"
	case waveHeight > 4:
		return "Rough"
	case waveHeight > 2.5:
		return "Moderate to Rough"
	case waveHeight > 1:
		return "Slight to Moderate"
	default:
		return "Calm"
	}
}

// weatherCondition maps a WMO weather code to a display label.
func weatherCondition(code int) string {
	codes := map[int]string{
		0: "Clear sky", 1: "Mainly clear", 2: "Partly cloudy", 3: "Overcast",
		45: "Fog", 48: "Depositing rime fog",
		51: "Light drizzle", 53: "Moderate drizzle", 55: "Dense drizzle",
		61: "Slight rain", 63: "Moderate rain", 65: "Heavy rain",
		71: "Slight snow", 73: "Moderate snow", 75: "Heavy snow",
		77: "Snow grains", 80: "Slight rain showers", 81: "Moderate rain showers",
		82: "Violent rain showers", 85: "Slight snow showers", 86: "Heavy snow showers",
		95: "Thunderstorm", 96: "Thunderstorm with slight hail", 99: "Thunderstorm with heavy hail",
	}
	if label, ok := codes[code]; ok {
		return label
	}
	return "Unknown"
}
