package locale

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"en", "en"},
		{"de", "de"},
		{"DE", "de"},
		{"de-CH", "de"},
		{"fr_FR", "fr"},
		{"it", "it"},
		{"xx-unknown", "en"},
		{"", "en"},
		{"  en ", "en"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestLookupFallsBackToDefaultLanguage(t *testing.T) {
	got := Lookup("xx-unknown", "enjoy_day")
	if got == "" {
		t.Fatal("Lookup returned empty string")
	}
	if got != Lookup("en", "enjoy_day") {
		t.Errorf("expected default-language string, got %q", got)
	}
}

func TestLookupUnknownKeyReturnsKey(t *testing.T) {
	if got := Lookup("en", "no_such_key"); got != "no_such_key" {
		t.Errorf("expected key echoed back, got %q", got)
	}
}

func TestLookupPartialTranslationFallsBack(t *testing.T) {
	// Italian has no sea-state tip; the English entry must be served.
	got := Lookup("it", "tip_sea_calm")
	if got != Lookup("en", "tip_sea_calm") {
		t.Errorf("expected English fallback for untranslated key, got %q", got)
	}
}

func TestLookupTranslations(t *testing.T) {
	for _, lang := range Supported() {
		greeting := Lookup(lang, "greeting")
		if greeting == "" || greeting == "greeting" {
			t.Errorf("language %s has no greeting", lang)
		}
	}
	if Lookup("de", "greeting") == Lookup("en", "greeting") {
		t.Error("German greeting should differ from English")
	}
}

func TestWarningKeysCompleteInAllLanguages(t *testing.T) {
	keys := []string{
		"warn_wildfire", "warn_seismic", "warn_storm",
		"warn_air_quality", "warn_uv", "warn_flood",
		"greeting", "enjoy_day",
	}
	for _, lang := range Supported() {
		table := tables[lang]
		for _, key := range keys {
			if _, ok := table[key]; !ok {
				t.Errorf("language %s missing key %s", lang, key)
			}
		}
	}
}

func TestLookupf(t *testing.T) {
	got := Lookupf("en", "warn_seismic", 5.5)
	if !strings.Contains(got, "5.5") {
		t.Errorf("expected substituted magnitude in %q", got)
	}
}
