package config

import (
	"context"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// No env vars set: everything should come from defaults.
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default Port '8080', got %q", cfg.Port)
	}
	if cfg.DefaultLat != 47.3769 || cfg.DefaultLon != 8.5417 {
		t.Errorf("expected Zurich default coordinate, got (%f, %f)", cfg.DefaultLat, cfg.DefaultLon)
	}
	if cfg.DefaultLanguage != "en" {
		t.Errorf("expected default language 'en', got %q", cfg.DefaultLanguage)
	}
	if cfg.RemoteTimeout != 20*time.Second {
		t.Errorf("expected RemoteTimeout 20s, got %v", cfg.RemoteTimeout)
	}
	if cfg.MinAdvisoryLength != 40 {
		t.Errorf("expected MinAdvisoryLength 40, got %d", cfg.MinAdvisoryLength)
	}
	if cfg.NOAAKpIndexURL == "" || cfg.USGSQuakesURL == "" || cfg.GDACSFeedURL == "" {
		t.Error("expected source URL defaults to be populated")
	}
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4.1")
	t.Setenv("DEFAULT_LANGUAGE", "de")
	t.Setenv("REMOTE_TIMEOUT", "5s")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("expected Port '9000', got %q", cfg.Port)
	}
	if cfg.OpenAIModel != "gpt-4.1" {
		t.Errorf("expected OpenAIModel 'gpt-4.1', got %q", cfg.OpenAIModel)
	}
	if cfg.DefaultLanguage != "de" {
		t.Errorf("expected DefaultLanguage 'de', got %q", cfg.DefaultLanguage)
	}
	if cfg.RemoteTimeout != 5*time.Second {
		t.Errorf("expected RemoteTimeout 5s, got %v", cfg.RemoteTimeout)
	}
}

func TestRemoteEndpointsOrdering(t *testing.T) {
	tests := []struct {
		name      string
		openaiKey string
		hfKey     string
		expected  []string
	}{
		{
			name:     "no credentials means empty cascade",
			expected: nil,
		},
		{
			name:      "openai only",
			openaiKey: "sk-test",
			expected:  []string{"openai/gpt-4o-mini"},
		},
		{
			name:     "hf only",
			hfKey:    "hf-test",
			expected: []string{"hf-inference"},
		},
		{
			name:      "chat endpoint first, plain second",
			openaiKey: "sk-test",
			hfKey:     "hf-test",
			expected:  []string{"openai/gpt-4o-mini", "hf-inference"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				OpenAIAPIKey:   tt.openaiKey,
				OpenAIModel:    "gpt-4o-mini",
				HFAPIKey:       tt.hfKey,
				HFInferenceURL: "https://example.com/generate",
			}
			endpoints := cfg.RemoteEndpoints()
			if len(endpoints) != len(tt.expected) {
				t.Fatalf("expected %d endpoints, got %d", len(tt.expected), len(endpoints))
			}
			for i, name := range tt.expected {
				if endpoints[i].Name != name {
					t.Errorf("endpoint %d: expected %q, got %q", i, name, endpoints[i].Name)
				}
			}
		})
	}
}

func TestRemoteEndpointFormats(t *testing.T) {
	cfg := &Config{
		OpenAIAPIKey:   "sk-test",
		OpenAIModel:    "gpt-4o-mini",
		HFAPIKey:       "hf-test",
		HFInferenceURL: "https://example.com/generate",
	}
	endpoints := cfg.RemoteEndpoints()
	if endpoints[0].Format != FormatChat {
		t.Errorf("expected chat format for first endpoint, got %s", endpoints[0].Format)
	}
	if endpoints[1].Format != FormatPlain {
		t.Errorf("expected plain format for second endpoint, got %s", endpoints[1].Format)
	}
	if endpoints[1].URL != "https://example.com/generate" {
		t.Errorf("unexpected plain endpoint URL %q", endpoints[1].URL)
	}
}
