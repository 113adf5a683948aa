package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the environmental alert service.
// Credentials are plain values here: an absent key flips the owning
// adapter or generation endpoint to unavailable, it is never looked up
// from the environment at request time.
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8080"`

	// Provider credentials
	NASAAPIKey      string `env:"NASA_API_KEY,default=DEMO_KEY"`
	OpenMeteoAPIKey string `env:"OPEN_METEO_API_KEY"`

	// Remote generation endpoints (both optional; with neither key set the
	// advisory generator runs rule-based only)
	OpenAIAPIKey   string `env:"OPENAI_API_KEY"`
	OpenAIModel    string `env:"OPENAI_MODEL,default=gpt-4o-mini"`
	HFAPIKey       string `env:"HF_API_KEY"`
	HFInferenceURL string `env:"HF_INFERENCE_URL,default=https://api-inference.huggingface.co/models/swiss-ai/Apertus-8B-Instruct-2509"`

	// Space weather source URLs (NOAA SWPC)
	NOAAKpIndexURL   string `env:"NOAA_KP_INDEX_URL,default=https://services.swpc.noaa.gov/products/noaa-planetary-k-index.json"`
	NOAAXrayURL      string `env:"NOAA_XRAY_URL,default=https://services.swpc.noaa.gov/json/goes/primary/xrays-6-hour.json"`
	NOAAProtonURL    string `env:"NOAA_PROTON_URL,default=https://services.swpc.noaa.gov/json/goes/primary/integral-protons-6-hour.json"`
	NOAAAuroraURL    string `env:"NOAA_AURORA_URL,default=https://services.swpc.noaa.gov/json/ovation_aurora_latest.json"`
	NOAASolarWindURL string `env:"NOAA_SOLAR_WIND_URL,default=https://services.swpc.noaa.gov/products/solar-wind/plasma-2-hour.json"`

	// Hazard source URLs
	USGSQuakesURL  string `env:"USGS_QUAKES_URL,default=https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/2.5_day.geojson"`
	EONETEventsURL string `env:"EONET_EVENTS_URL,default=https://eonet.gsfc.nasa.gov/api/v3/events"`
	GDACSFeedURL   string `env:"GDACS_FEED_URL,default=https://www.gdacs.org/xml/rss.xml"`

	// Open-Meteo source URLs
	OpenMeteoWeatherURL    string `env:"OPEN_METEO_WEATHER_URL,default=https://api.open-meteo.com/v1/forecast"`
	OpenMeteoAirQualityURL string `env:"OPEN_METEO_AIR_QUALITY_URL,default=https://air-quality-api.open-meteo.com/v1/air-quality"`
	OpenMeteoFloodURL      string `env:"OPEN_METEO_FLOOD_URL,default=https://flood-api.open-meteo.com/v1/flood"`
	OpenMeteoMarineURL     string `env:"OPEN_METEO_MARINE_URL,default=https://marine-api.open-meteo.com/v1/marine"`

	// Alert defaults (Zurich)
	DefaultLat      float64 `env:"DEFAULT_LAT,default=47.3769"`
	DefaultLon      float64 `env:"DEFAULT_LON,default=8.5417"`
	DefaultLanguage string  `env:"DEFAULT_LANGUAGE,default=en"`

	// Remote generation cascade
	RemoteTimeout     time.Duration `env:"REMOTE_TIMEOUT,default=20s"`
	MinAdvisoryLength int           `env:"MIN_ADVISORY_LENGTH,default=40"`

	// Bulletin storage
	SaveBulletins     bool   `env:"SAVE_BULLETINS,default=false"`
	LocalBulletinsDir string `env:"LOCAL_BULLETINS_DIR,default=./bulletins"`
	GCSBucket         string `env:"GCS_BUCKET"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
}

// Load loads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}

// EndpointFormat declares how a remote generation endpoint's response is
// decoded. The decoder is selected by configuration, never by probing the
// payload at runtime.
type EndpointFormat string

const (
	FormatChat  EndpointFormat = "chat"  // chat-completion style (choices/message)
	FormatPlain EndpointFormat = "plain" // plain generation style (generated_text)
)

// RemoteEndpoint describes one entry of the generation cascade.
type RemoteEndpoint struct {
	Name   string
	Format EndpointFormat
	URL    string
	Model  string
	APIKey string
}

// RemoteEndpoints assembles the ordered generation cascade from configured
// credentials: primary chat-completion endpoint first, then the plain
// inference fallback. Endpoints without a key are omitted entirely.
func (c *Config) RemoteEndpoints() []RemoteEndpoint {
	var endpoints []RemoteEndpoint
	if c.OpenAIAPIKey != "" {
		endpoints = append(endpoints, RemoteEndpoint{
			Name:   "openai/" + c.OpenAIModel,
			Format: FormatChat,
			Model:  c.OpenAIModel,
			APIKey: c.OpenAIAPIKey,
		})
	}
	if c.HFAPIKey != "" {
		endpoints = append(endpoints, RemoteEndpoint{
			Name:   "hf-inference",
			Format: FormatPlain,
			URL:    c.HFInferenceURL,
			APIKey: c.HFAPIKey,
		})
	}
	return endpoints
}
