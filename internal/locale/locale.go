// Package locale provides the per-language string table used by the
// advisory generator. Lookups never fail: missing keys fall back to the
// default language, and as a last resort the key itself is returned.
package locale

import (
	"fmt"
	"strings"
)

// DefaultLanguage is the fallback language for unrecognized tags and
// untranslated keys.
const DefaultLanguage = "en"

// Supported returns the recognized language tags.
func Supported() []string {
	return []string{"en", "de", "fr", "it"}
}

// Normalize coerces a caller-supplied language tag to a supported one.
// Region subtags are stripped ("de-CH" → "de"); anything unrecognized
// silently becomes the default language.
func Normalize(lang string) string {
	base := strings.ToLower(strings.TrimSpace(lang))
	if idx := strings.IndexAny(base, "-_"); idx > 0 {
		base = base[:idx]
	}
	for _, s := range Supported() {
		if base == s {
			return s
		}
	}
	return DefaultLanguage
}

// Lookup resolves a semantic key for a language. Resolution order:
// requested language, default language, the key itself verbatim.
func Lookup(lang, key string) string {
	if table, ok := tables[Normalize(lang)]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := tables[DefaultLanguage][key]; ok {
		return s
	}
	return key
}

// Lookupf resolves a key and applies fmt substitution to the result.
func Lookupf(lang, key string, args ...interface{}) string {
	return fmt.Sprintf(Lookup(lang, key), args...)
}

var tables = map[string]map[string]string{
	"en": {
		"greeting":              "Hello! Here is your environmental briefing.",
		"conditions_weather":    "Current weather: %s, %.1f°C.",
		"conditions_unavailable": "Current weather data is not available.",

		"warn_wildfire":    "Wildfire activity nearby: %d active fire(s). Stay clear of affected areas and follow local guidance.",
		"warn_seismic":     "Seismic activity nearby: magnitude %.1f earthquake registered. Review your emergency plan.",
		"warn_storm":       "Severe geomagnetic storm in progress (Kp=%.1f). GPS and radio reception may be unreliable.",
		"warn_air_quality": "Air quality is %s (AQI %.0f). Limit outdoor exertion.",
		"warn_uv":          "UV index is very high (%.1f). Use sun protection and avoid the midday sun.",
		"warn_flood":       "Flood risk is %s. Avoid riverbanks and low-lying areas.",

		"tip_aurora":           "Aurora may be visible tonight (Kp=%.1f). Find a dark spot away from city lights.",
		"tip_air_quality_good": "Air quality is good — a fine time for outdoor activities.",
		"tip_pollen_low":       "Pollen levels are low.",
		"tip_sea_calm":         "Sea state is calm — good conditions on the water.",
		"tip_humidifier":       "Heating season tends to dry indoor air — a humidifier can help.",
		"tip_dehumidifier":     "Humid season — a dehumidifier keeps indoor air comfortable.",

		"enjoy_day": "No environmental concerns right now — enjoy your day!",

		"greeting_aviation":    "Aviation briefing for your area.",
		"greeting_aurora":      "Aurora watch briefing.",
		"greeting_respiratory": "Air quality briefing for sensitive groups.",
		"greeting_outdoor":     "Outdoor activity briefing.",
		"greeting_marine":      "Marine conditions briefing.",

		"profile_aviation_storm":   "Geomagnetic storm in progress (Kp=%.1f): HF radio degradation likely.",
		"profile_aviation_flare":   "Solar flare %s active: radio blackouts possible on sunlit routes.",
		"aurora_outlook_excellent": "Excellent aurora conditions: Kp=%.1f, probability %.0f%%. Visible at mid-latitudes, get away from city lights.",
		"aurora_outlook_good":      "Good aurora conditions: Kp=%.1f, probability %.0f%%. Best viewing after midnight.",
		"aurora_outlook_low":       "Low aurora activity: Kp=%.1f, probability %.0f%%.",
		"profile_pollen_alert":     "High pollen: %s.",
		"profile_marine_sea":       "Sea conditions: %s, wave height %.1f m.",
		"profile_marine_state":     "Sea conditions: %s.",
		"profile_marine_gps":       "GPS accuracy may be affected (Kp=%.1f).",

		"answer_exercise_good": "Conditions look good for outdoor exercise (AQI %.0f, UV %.1f). Morning hours are best.",
		"answer_exercise_bad":  "Outdoor exercise is not ideal right now (AQI %.0f, UV %.1f). Consider training indoors.",
		"answer_uv":            "Current UV index is %.1f. %s",
		"uv_protect_low":       "No special protection needed.",
		"uv_protect_moderate":  "Wear sunglasses and use SPF 30+.",
		"uv_protect_high":      "Reduce sun exposure between 10am and 4pm, wear a hat and sunscreen.",
		"uv_protect_extreme":   "Avoid sun exposure, stay indoors if possible.",
		"answer_aurora_yes":    "Good aurora chances: Kp=%.1f, probability %.0f%%. Look north after midnight.",
		"answer_aurora_no":     "Aurora is unlikely right now (Kp=%.1f). You need Kp %d or higher.",
		"answer_air_quality":   "Air quality is currently %s (EU AQI %.0f).",
		"answer_unavailable":   "That information is not available right now.",
	},
	"de": {
		"greeting":              "Hallo! Hier ist Ihr Umwelt-Briefing.",
		"conditions_weather":    "Aktuelles Wetter: %s, %.1f°C.",
		"conditions_unavailable": "Aktuelle Wetterdaten sind nicht verfügbar.",

		"warn_wildfire":    "Waldbrände in der Nähe: %d aktive(r) Brand/Brände. Meiden Sie betroffene Gebiete und folgen Sie den lokalen Anweisungen.",
		"warn_seismic":     "Seismische Aktivität in der Nähe: Erdbeben der Stärke %.1f registriert. Überprüfen Sie Ihren Notfallplan.",
		"warn_storm":       "Schwerer geomagnetischer Sturm im Gange (Kp=%.1f). GPS und Funkempfang können gestört sein.",
		"warn_air_quality": "Die Luftqualität ist %s (AQI %.0f). Anstrengung im Freien einschränken.",
		"warn_uv":          "Der UV-Index ist sehr hoch (%.1f). Sonnenschutz verwenden und Mittagssonne meiden.",
		"warn_flood":       "Das Hochwasserrisiko ist %s. Flussufer und tief liegende Gebiete meiden.",

		"tip_aurora":           "Heute Nacht könnten Polarlichter sichtbar sein (Kp=%.1f). Suchen Sie einen dunklen Ort abseits der Stadtlichter.",
		"tip_air_quality_good": "Die Luftqualität ist gut — ideal für Aktivitäten im Freien.",
		"tip_pollen_low":       "Die Pollenbelastung ist niedrig.",
		"tip_sea_calm":         "Die See ist ruhig — gute Bedingungen auf dem Wasser.",
		"tip_humidifier":       "In der Heizsaison ist die Raumluft oft trocken — ein Luftbefeuchter kann helfen.",
		"tip_dehumidifier":     "Feuchte Jahreszeit — ein Luftentfeuchter hält die Raumluft angenehm.",

		"enjoy_day": "Derzeit keine Umweltbedenken — geniessen Sie Ihren Tag!",

		"greeting_aviation":    "Luftfahrt-Briefing für Ihre Region.",
		"greeting_aurora":      "Polarlicht-Briefing.",
		"greeting_respiratory": "Luftqualitäts-Briefing für empfindliche Gruppen.",
		"greeting_outdoor":     "Briefing für Aktivitäten im Freien.",
		"greeting_marine":      "Briefing zu den Seebedingungen.",

		"profile_aviation_storm":   "Geomagnetischer Sturm im Gange (Kp=%.1f): HF-Funkstörungen wahrscheinlich.",
		"profile_aviation_flare":   "Sonneneruption %s aktiv: Funkausfälle auf sonnenbeschienenen Routen möglich.",
		"aurora_outlook_excellent": "Hervorragende Polarlicht-Bedingungen: Kp=%.1f, Wahrscheinlichkeit %.0f%%. In mittleren Breiten sichtbar, Stadtlichter meiden.",
		"aurora_outlook_good":      "Gute Polarlicht-Bedingungen: Kp=%.1f, Wahrscheinlichkeit %.0f%%. Beste Sicht nach Mitternacht.",
		"aurora_outlook_low":       "Geringe Polarlicht-Aktivität: Kp=%.1f, Wahrscheinlichkeit %.0f%%.",
		"profile_pollen_alert":     "Hohe Pollenbelastung: %s.",
		"profile_marine_sea":       "Seebedingungen: %s, Wellenhöhe %.1f m.",
		"profile_marine_state":     "Seebedingungen: %s.",
		"profile_marine_gps":       "Die GPS-Genauigkeit kann beeinträchtigt sein (Kp=%.1f).",

		"answer_exercise_good": "Gute Bedingungen für Sport im Freien (AQI %.0f, UV %.1f). Die Morgenstunden sind am besten.",
		"answer_exercise_bad":  "Sport im Freien ist derzeit nicht ideal (AQI %.0f, UV %.1f). Trainieren Sie besser drinnen.",
		"answer_uv":            "Der aktuelle UV-Index beträgt %.1f. %s",
		"uv_protect_low":       "Kein besonderer Schutz nötig.",
		"uv_protect_moderate":  "Sonnenbrille tragen und LSF 30+ verwenden.",
		"uv_protect_high":      "Sonne zwischen 10 und 16 Uhr meiden, Hut und Sonnencreme verwenden.",
		"uv_protect_extreme":   "Sonne meiden, möglichst drinnen bleiben.",
		"answer_aurora_yes":    "Gute Polarlicht-Chancen: Kp=%.1f, Wahrscheinlichkeit %.0f%%. Nach Mitternacht Richtung Norden schauen.",
		"answer_aurora_no":     "Polarlichter sind derzeit unwahrscheinlich (Kp=%.1f). Es braucht Kp %d oder höher.",
		"answer_air_quality":   "Die Luftqualität ist derzeit %s (EU-AQI %.0f).",
		"answer_unavailable":   "Diese Information ist derzeit nicht verfügbar.",
	},
	"fr": {
		"greeting":              "Bonjour ! Voici votre bulletin environnemental.",
		"conditions_weather":    "Météo actuelle : %s, %.1f°C.",
		"conditions_unavailable": "Les données météo actuelles ne sont pas disponibles.",

		"warn_wildfire":    "Incendies à proximité : %d feu(x) actif(s). Évitez les zones touchées et suivez les consignes locales.",
		"warn_seismic":     "Activité sismique à proximité : séisme de magnitude %.1f enregistré. Vérifiez votre plan d'urgence.",
		"warn_storm":       "Forte tempête géomagnétique en cours (Kp=%.1f). Le GPS et la radio peuvent être perturbés.",
		"warn_air_quality": "La qualité de l'air est %s (AQI %.0f). Limitez les efforts en extérieur.",
		"warn_uv":          "L'indice UV est très élevé (%.1f). Protégez-vous du soleil et évitez la mi-journée.",
		"warn_flood":       "Le risque d'inondation est %s. Évitez les berges et les zones basses.",

		"tip_aurora":           "Des aurores pourraient être visibles cette nuit (Kp=%.1f). Trouvez un endroit sombre loin des lumières.",
		"tip_air_quality_good": "La qualité de l'air est bonne — un bon moment pour les activités en plein air.",
		"tip_pollen_low":       "Les niveaux de pollen sont bas.",
		"tip_sea_calm":         "La mer est calme — bonnes conditions sur l'eau.",

		"enjoy_day": "Aucune préoccupation environnementale pour le moment — profitez de votre journée !",

		"answer_exercise_good": "Les conditions sont bonnes pour l'exercice en extérieur (AQI %.0f, UV %.1f). Les heures matinales sont idéales.",
		"answer_exercise_bad":  "L'exercice en extérieur n'est pas idéal actuellement (AQI %.0f, UV %.1f). Préférez l'intérieur.",
		"answer_uv":            "L'indice UV actuel est de %.1f. %s",
		"uv_protect_low":       "Aucune protection particulière nécessaire.",
		"uv_protect_moderate":  "Portez des lunettes de soleil et un SPF 30+.",
		"uv_protect_high":      "Réduisez l'exposition entre 10h et 16h, portez un chapeau et de la crème solaire.",
		"uv_protect_extreme":   "Évitez le soleil, restez à l'intérieur si possible.",
		"answer_aurora_yes":    "Bonnes chances d'aurores : Kp=%.1f, probabilité %.0f%%. Regardez vers le nord après minuit.",
		"answer_aurora_no":     "Les aurores sont peu probables actuellement (Kp=%.1f). Il faut un Kp de %d ou plus.",
		"answer_air_quality":   "La qualité de l'air est actuellement %s (AQI européen %.0f).",
		"answer_unavailable":   "Cette information n'est pas disponible pour le moment.",
	},
	"it": {
		"greeting":              "Ciao! Ecco il tuo bollettino ambientale.",
		"conditions_weather":    "Meteo attuale: %s, %.1f°C.",
		"conditions_unavailable": "I dati meteo attuali non sono disponibili.",

		"warn_wildfire":    "Incendi nelle vicinanze: %d incendio/i attivo/i. Evitare le zone colpite e seguire le indicazioni locali.",
		"warn_seismic":     "Attività sismica nelle vicinanze: registrato un terremoto di magnitudo %.1f. Controlla il tuo piano di emergenza.",
		"warn_storm":       "Forte tempesta geomagnetica in corso (Kp=%.1f). GPS e radio potrebbero essere inaffidabili.",
		"warn_air_quality": "La qualità dell'aria è %s (AQI %.0f). Limitare gli sforzi all'aperto.",
		"warn_uv":          "L'indice UV è molto alto (%.1f). Usare protezione solare ed evitare il sole di mezzogiorno.",
		"warn_flood":       "Il rischio di alluvione è %s. Evitare argini e zone basse.",

		"tip_aurora":           "Stanotte potrebbe essere visibile l'aurora (Kp=%.1f). Cerca un luogo buio lontano dalle luci della città.",
		"tip_air_quality_good": "La qualità dell'aria è buona — un buon momento per le attività all'aperto.",
		"tip_pollen_low":       "I livelli di polline sono bassi.",

		"enjoy_day": "Nessuna preoccupazione ambientale al momento — goditi la giornata!",

		"answer_exercise_good": "Le condizioni sono buone per l'esercizio all'aperto (AQI %.0f, UV %.1f). Le ore del mattino sono le migliori.",
		"answer_exercise_bad":  "L'esercizio all'aperto non è l'ideale al momento (AQI %.0f, UV %.1f). Meglio allenarsi al chiuso.",
		"answer_uv":            "L'indice UV attuale è %.1f. %s",
		"uv_protect_low":       "Nessuna protezione particolare necessaria.",
		"uv_protect_moderate":  "Indossare occhiali da sole e SPF 30+.",
		"uv_protect_high":      "Ridurre l'esposizione tra le 10 e le 16, indossare cappello e crema solare.",
		"uv_protect_extreme":   "Evitare il sole, restare al chiuso se possibile.",
		"answer_aurora_yes":    "Buone probabilità di aurora: Kp=%.1f, probabilità %.0f%%. Guarda verso nord dopo mezzanotte.",
		"answer_aurora_no":     "L'aurora è improbabile al momento (Kp=%.1f). Serve un Kp di %d o superiore.",
		"answer_air_quality":   "La qualità dell'aria è attualmente %s (AQI europeo %.0f).",
		"answer_unavailable":   "Questa informazione non è disponibile al momento.",
	},
}
