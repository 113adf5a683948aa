package advisory

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/locale"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/models"
)

const maxTips = 3

// ruleBased is the deterministic fallback compositor. It answers known
// question intents with a data-substituted sentence, or composes the
// default briefing: greeting and conditions first, then the profile's
// emphasis lines, then warnings, then up to three tips, and a closing
// remark when no warning fired. Every phrase comes from the localization
// table. ruleBased always returns text.
func ruleBased(snap *models.Snapshot, profile, lang, question string) string {
	if question != "" {
		if answer, ok := answerQuestion(snap, lang, question); ok {
			return answer
		}
	}
	return defaultBriefing(snap, profile, lang)
}

// questionIntent groups the keyword triggers for one canned answer.
// Keywords cover all supported languages; matching is substring-based on
// the lowercased question.
type questionIntent struct {
	name     string
	keywords []string
}

var intents = []questionIntent{
	{"exercise", []string{"exercise", "workout", "run", "jog", "sport", "training", "laufen", "joggen", "courir", "correre", "allenamento"}},
	{"uv", []string{"uv", "sunburn", "sunscreen", "sonnenbrand", "sonnencreme", "soleil", "crème solaire", "scottatura", "solare"}},
	{"aurora", []string{"aurora", "northern lights", "polarlicht", "nordlicht", "aurore", "boreal"}},
	{"air", []string{"air quality", "air pollution", "luftqualität", "qualité de l'air", "qualità dell'aria", "smog", "breathe", "atmen"}},
}

// answerQuestion matches the question against the known intents and
// builds the canned answer. Unmatched questions fall through to the
// default briefing.
func answerQuestion(snap *models.Snapshot, lang, question string) (string, bool) {
	q := strings.ToLower(question)
	for _, intent := range intents {
		for _, kw := range intent.keywords {
			if containsWord(q, kw) {
				return answerIntent(snap, lang, intent.name), true
			}
		}
	}
	return "", false
}

// containsWord reports whether kw occurs in q on word boundaries, so
// short triggers like "run" or "uv" do not fire inside unrelated words
// ("brunch", "Louvre").
func containsWord(q, kw string) bool {
	for offset := 0; ; {
		i := strings.Index(q[offset:], kw)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(kw)
		if !letterBefore(q, start) && !letterAfter(q, end) {
			return true
		}
		offset = start + 1
	}
}

func letterBefore(s string, idx int) bool {
	if idx == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:idx])
	return unicode.IsLetter(r)
}

func letterAfter(s string, idx int) bool {
	if idx >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[idx:])
	return unicode.IsLetter(r)
}

func answerIntent(snap *models.Snapshot, lang, name string) string {
	aq := snap.AirQuality
	sw := snap.SpaceWeather

	switch name {
	case "exercise":
		if !aq.Available() || aq.EuropeanAQI == nil || aq.UVIndex == nil {
			return locale.Lookup(lang, "answer_unavailable")
		}
		if *aq.EuropeanAQI <= 60 && *aq.UVIndex < 8 {
			return locale.Lookupf(lang, "answer_exercise_good", *aq.EuropeanAQI, *aq.UVIndex)
		}
		return locale.Lookupf(lang, "answer_exercise_bad", *aq.EuropeanAQI, *aq.UVIndex)

	case "uv":
		if !aq.Available() || aq.UVIndex == nil {
			return locale.Lookup(lang, "answer_unavailable")
		}
		uv := *aq.UVIndex
		var protect string
		switch {
		case uv <= 2:
			protect = locale.Lookup(lang, "uv_protect_low")
		case uv <= 5:
			protect = locale.Lookup(lang, "uv_protect_moderate")
		case uv <= 10:
			protect = locale.Lookup(lang, "uv_protect_high")
		default:
			protect = locale.Lookup(lang, "uv_protect_extreme")
		}
		return locale.Lookupf(lang, "answer_uv", uv, protect)

	case "aurora":
		if !sw.Available() || sw.KpIndex == nil {
			return locale.Lookup(lang, "answer_unavailable")
		}
		kp := *sw.KpIndex
		if kp >= AuroraVisibleKp {
			prob := 0.0
			if sw.AuroraProbability != nil {
				prob = *sw.AuroraProbability
			}
			return locale.Lookupf(lang, "answer_aurora_yes", kp, prob)
		}
		return locale.Lookupf(lang, "answer_aurora_no", kp, int(AuroraVisibleKp))

	case "air":
		if !aq.Available() || aq.EuropeanAQI == nil {
			return locale.Lookup(lang, "answer_unavailable")
		}
		return locale.Lookupf(lang, "answer_air_quality", aq.Category, *aq.EuropeanAQI)
	}
	return locale.Lookup(lang, "answer_unavailable")
}

// profileKey maps the free-form persona tag to a template family.
// Unknown profiles get the general-public template.
func profileKey(profile string) string {
	p := strings.ToLower(profile)
	switch {
	case strings.Contains(p, "pilot") || strings.Contains(p, "aviation"):
		return "aviation"
	case strings.Contains(p, "aurora") || strings.Contains(p, "northern lights"):
		return "aurora"
	case strings.Contains(p, "asthma") || strings.Contains(p, "respiratory") || strings.Contains(p, "allergy"):
		return "respiratory"
	case strings.Contains(p, "outdoor") || strings.Contains(p, "sport") || strings.Contains(p, "hiking"):
		return "outdoor"
	case strings.Contains(p, "marine") || strings.Contains(p, "sailing") || strings.Contains(p, "boat"):
		return "marine"
	default:
		return "general"
	}
}

// defaultBriefing composes the proactive multi-part message for one
// persona.
func defaultBriefing(snap *models.Snapshot, profile, lang string) string {
	pk := profileKey(profile)
	var parts []string

	if pk == "general" {
		parts = append(parts, locale.Lookup(lang, "greeting"))
	} else {
		parts = append(parts, locale.Lookup(lang, "greeting_"+pk))
	}
	if w := snap.Weather; w.Available() && w.Temperature != nil && w.Condition != "" {
		parts = append(parts, locale.Lookupf(lang, "conditions_weather", w.Condition, *w.Temperature))
	} else {
		parts = append(parts, locale.Lookup(lang, "conditions_unavailable"))
	}
	parts = append(parts, profileEmphasis(snap, pk, lang)...)

	warnings := buildWarnings(snap, lang)
	parts = append(parts, warnings...)
	parts = append(parts, buildTips(snap, lang)...)
	if len(warnings) == 0 {
		parts = append(parts, locale.Lookup(lang, "enjoy_day"))
	}
	return strings.Join(parts, " ")
}

// profileEmphasis front-loads the readings this persona cares about most.
func profileEmphasis(snap *models.Snapshot, pk, lang string) []string {
	var lines []string
	sw := snap.SpaceWeather
	aq := snap.AirQuality

	switch pk {
	case "aviation":
		if sw.Available() && sw.KpIndex != nil && *sw.KpIndex >= AuroraVisibleKp {
			lines = append(lines, locale.Lookupf(lang, "profile_aviation_storm", *sw.KpIndex))
		}
		if sw.Available() && (strings.HasPrefix(sw.XrayClass, "X") || strings.HasPrefix(sw.XrayClass, "M")) {
			lines = append(lines, locale.Lookupf(lang, "profile_aviation_flare", sw.XrayClass))
		}
	case "aurora":
		if sw.Available() && sw.KpIndex != nil {
			kp := *sw.KpIndex
			prob := 0.0
			if sw.AuroraProbability != nil {
				prob = *sw.AuroraProbability
			}
			switch {
			case kp >= 7:
				lines = append(lines, locale.Lookupf(lang, "aurora_outlook_excellent", kp, prob))
			case kp >= AuroraVisibleKp:
				lines = append(lines, locale.Lookupf(lang, "aurora_outlook_good", kp, prob))
			default:
				lines = append(lines, locale.Lookupf(lang, "aurora_outlook_low", kp, prob))
			}
		}
	case "respiratory":
		if aq.Available() && aq.EuropeanAQI != nil {
			lines = append(lines, locale.Lookupf(lang, "answer_air_quality", aq.Category, *aq.EuropeanAQI))
		}
		if p := snap.Pollen; p.Available() && len(p.HighPollen) > 0 {
			lines = append(lines, locale.Lookupf(lang, "profile_pollen_alert", strings.Join(p.HighPollen, ", ")))
		}
	case "outdoor":
		if aq.Available() && aq.EuropeanAQI != nil && aq.UVIndex != nil {
			if *aq.EuropeanAQI <= 60 && *aq.UVIndex < 8 {
				lines = append(lines, locale.Lookupf(lang, "answer_exercise_good", *aq.EuropeanAQI, *aq.UVIndex))
			} else {
				lines = append(lines, locale.Lookupf(lang, "answer_exercise_bad", *aq.EuropeanAQI, *aq.UVIndex))
			}
		}
	case "marine":
		if m := snap.Marine; m.Available() && m.SeaState != "" {
			if m.WaveHeight != nil {
				lines = append(lines, locale.Lookupf(lang, "profile_marine_sea", m.SeaState, *m.WaveHeight))
			} else {
				lines = append(lines, locale.Lookupf(lang, "profile_marine_state", m.SeaState))
			}
		}
		if sw.Available() && sw.KpIndex != nil && *sw.KpIndex >= AuroraVisibleKp {
			lines = append(lines, locale.Lookupf(lang, "profile_marine_gps", *sw.KpIndex))
		}
	}
	return lines
}

// buildWarnings collects triggered hazard warnings in a fixed order.
func buildWarnings(snap *models.Snapshot, lang string) []string {
	var warnings []string

	if wf := snap.Wildfire; wf.Available() && wf.Count > 0 {
		warnings = append(warnings, locale.Lookupf(lang, "warn_wildfire", wf.Count))
	}
	if se := snap.Seismic; se.Available() && se.Count > 0 && se.MaxMagnitude != nil && *se.MaxMagnitude >= 4 {
		warnings = append(warnings, locale.Lookupf(lang, "warn_seismic", *se.MaxMagnitude))
	}
	if sw := snap.SpaceWeather; sw.Available() && sw.KpIndex != nil && *sw.KpIndex >= 7 {
		warnings = append(warnings, locale.Lookupf(lang, "warn_storm", *sw.KpIndex))
	}
	if aq := snap.AirQuality; aq.Available() && aq.EuropeanAQI != nil && *aq.EuropeanAQI > 60 {
		warnings = append(warnings, locale.Lookupf(lang, "warn_air_quality", aq.Category, *aq.EuropeanAQI))
	}
	if aq := snap.AirQuality; aq.Available() && aq.UVIndex != nil && *aq.UVIndex >= 8 {
		warnings = append(warnings, locale.Lookupf(lang, "warn_uv", *aq.UVIndex))
	}
	if fl := snap.Flood; fl.Available() && (fl.RiskCategory == "High" || fl.RiskCategory == "Moderate") {
		warnings = append(warnings, locale.Lookupf(lang, "warn_flood", fl.RiskCategory))
	}
	return warnings
}

// buildTips collects up to three positive or neutral remarks.
func buildTips(snap *models.Snapshot, lang string) []string {
	var tips []string
	add := func(tip string) {
		if len(tips) < maxTips {
			tips = append(tips, tip)
		}
	}

	if sw := snap.SpaceWeather; sw.Available() && sw.KpIndex != nil && *sw.KpIndex >= AuroraVisibleKp && *sw.KpIndex < 7 {
		add(locale.Lookupf(lang, "tip_aurora", *sw.KpIndex))
	}
	if aq := snap.AirQuality; aq.Available() && aq.EuropeanAQI != nil && *aq.EuropeanAQI <= 20 {
		add(locale.Lookup(lang, "tip_air_quality_good"))
	}
	if p := snap.Pollen; p.Available() && len(p.Readings) > 0 && len(p.HighPollen) == 0 {
		add(locale.Lookup(lang, "tip_pollen_low"))
	}
	if m := snap.Marine; m.Available() && m.SeaState == "Calm" {
		add(locale.Lookup(lang, "tip_sea_calm"))
	}

	// Seasonal indoor-air advice keyed on the snapshot's capture month.
	switch snap.CapturedAt.Month() {
	case time.November, time.December, time.January, time.February:
		add(locale.Lookup(lang, "tip_humidifier"))
	case time.June, time.July, time.August:
		add(locale.Lookup(lang, "tip_dehumidifier"))
	}
	return tips
}
