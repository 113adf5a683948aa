package fetchers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/config"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/models"
)

var zurich = models.Coordinate{Lat: 47.3769, Lon: 8.5417}

func newTestFetcher(cfg *config.Config) *Fetcher {
	return NewFetcher(cfg, zerolog.Nop())
}

func jsonServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func errorServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchSpaceWeather(t *testing.T) {
	kpSrv := jsonServer(t, `[["time_tag","Kp","a_running","station_count"],["2026-03-14 00:00:00","2.33","9","8"],["2026-03-14 03:00:00","5.67","30","8"]]`)
	xraySrv := jsonServer(t, `[{"time_tag":"2026-03-14T03:00:00Z","flux":3.2e-6,"energy":"0.05-0.4nm"},{"time_tag":"2026-03-14T03:00:00Z","flux":4.5e-5,"energy":"0.1-0.8nm"}]`)
	protonSrv := jsonServer(t, `[{"time_tag":"2026-03-14T03:00:00Z","flux":0.5,"energy":">=100 MeV"},{"time_tag":"2026-03-14T03:00:00Z","flux":120,"energy":">=10 MeV"}]`)
	windSrv := jsonServer(t, `[["time_tag","density","speed","temperature"],["2026-03-14 03:00:00","4.2","512.3","95000"],["2026-03-14 03:01:00",null,null,null]]`)
	auroraSrv := jsonServer(t, `{"coordinates":[[8,47,3],[9,48,12],[350,60,55]]}`)

	cfg := &config.Config{
		NOAAKpIndexURL:   kpSrv.URL,
		NOAAXrayURL:      xraySrv.URL,
		NOAAProtonURL:    protonSrv.URL,
		NOAASolarWindURL: windSrv.URL,
		NOAAAuroraURL:    auroraSrv.URL,
	}
	result := newTestFetcher(cfg).FetchSpaceWeather(context.Background(), zurich)

	if !result.Available() {
		t.Fatalf("expected ok result, got %s: %s", result.Status, result.Reason)
	}
	if result.KpIndex == nil || *result.KpIndex != 5.67 {
		t.Errorf("expected latest Kp 5.67, got %v", result.KpIndex)
	}
	if result.KpLevel != "Moderate Storm (G1)" {
		t.Errorf("unexpected Kp level %q", result.KpLevel)
	}
	if result.XrayFlux == nil || *result.XrayFlux != 4.5e-5 {
		t.Errorf("expected long-channel flux 4.5e-5, got %v", result.XrayFlux)
	}
	if result.XrayClass != "M4" {
		t.Errorf("expected flare class M4, got %q", result.XrayClass)
	}
	if result.ProtonFlux == nil || *result.ProtonFlux != 120 {
		t.Errorf("expected >=10 MeV proton flux 120, got %v", result.ProtonFlux)
	}
	if result.ProtonLevel != "S2 - Moderate" {
		t.Errorf("unexpected proton level %q", result.ProtonLevel)
	}
	if result.SolarWindSpeed == nil || *result.SolarWindSpeed != 512.3 {
		t.Errorf("expected solar wind 512.3 (skipping null rows), got %v", result.SolarWindSpeed)
	}
	// Nearest grid point to Zurich is [8, 47] with probability 3.
	if result.AuroraProbability == nil || *result.AuroraProbability != 3 {
		t.Errorf("expected aurora probability 3, got %v", result.AuroraProbability)
	}
}

func TestFetchSpaceWeatherPartialFailure(t *testing.T) {
	kpSrv := jsonServer(t, `[["time_tag","Kp"],["2026-03-14 00:00:00","1.33"]]`)
	down := errorServer(t, http.StatusInternalServerError)

	cfg := &config.Config{
		NOAAKpIndexURL:   kpSrv.URL,
		NOAAXrayURL:      down.URL,
		NOAAProtonURL:    down.URL,
		NOAASolarWindURL: down.URL,
		NOAAAuroraURL:    down.URL,
	}
	result := newTestFetcher(cfg).FetchSpaceWeather(context.Background(), zurich)

	if !result.Available() {
		t.Fatalf("Kp alone should make the result ok, got %s: %s", result.Status, result.Reason)
	}
	if result.KpIndex == nil || *result.KpIndex != 1.33 {
		t.Errorf("expected Kp 1.33, got %v", result.KpIndex)
	}
	if result.XrayFlux != nil {
		t.Errorf("expected nil X-ray flux when the feed is down, got %v", *result.XrayFlux)
	}
}

func TestFetchSpaceWeatherAllDown(t *testing.T) {
	down := errorServer(t, http.StatusServiceUnavailable)
	cfg := &config.Config{
		NOAAKpIndexURL:   down.URL,
		NOAAXrayURL:      down.URL,
		NOAAProtonURL:    down.URL,
		NOAASolarWindURL: down.URL,
		NOAAAuroraURL:    down.URL,
	}
	result := newTestFetcher(cfg).FetchSpaceWeather(context.Background(), zurich)

	if result.Status != models.StatusError {
		t.Fatalf("expected error status, got %s", result.Status)
	}
	if result.Reason == "" {
		t.Error("expected a reason naming the failed feeds")
	}
}

func TestFetchSeismic(t *testing.T) {
	// One quake ~0km from Zurich, one ~300km (Milan), one on the far side
	// of the planet, one with a null magnitude.
	feed := `{"features":[
		{"properties":{"mag":4.1,"place":"near Zurich","time":1770000000000,"tsunami":0},"geometry":{"coordinates":[8.54,47.38,10.0]}},
		{"properties":{"mag":5.6,"place":"near Milan","time":1770000100000,"tsunami":0},"geometry":{"coordinates":[9.19,45.46,8.2]}},
		{"properties":{"mag":7.2,"place":"Fiji","time":1770000200000,"tsunami":1},"geometry":{"coordinates":[178.0,-18.0,500.0]}},
		{"properties":{"mag":null,"place":"unknown","time":1770000300000,"tsunami":0},"geometry":{"coordinates":[8.5,47.4,5.0]}}
	]}`
	srv := jsonServer(t, feed)
	cfg := &config.Config{USGSQuakesURL: srv.URL}

	result := newTestFetcher(cfg).FetchSeismic(context.Background(), zurich, 500)

	if !result.Available() {
		t.Fatalf("expected ok result, got %s: %s", result.Status, result.Reason)
	}
	if result.Count != 2 {
		t.Fatalf("expected 2 quakes within 500km, got %d", result.Count)
	}
	if result.MaxMagnitude == nil || *result.MaxMagnitude != 5.6 {
		t.Errorf("expected max magnitude 5.6, got %v", result.MaxMagnitude)
	}
	if result.Quakes[0].Place != "near Zurich" {
		t.Errorf("expected nearest quake first, got %q", result.Quakes[0].Place)
	}
	if result.Quakes[0].DepthKm != 10.0 {
		t.Errorf("expected depth 10.0, got %v", result.Quakes[0].DepthKm)
	}
}

func TestFetchSeismicEmptyFeed(t *testing.T) {
	srv := jsonServer(t, `{"features":[]}`)
	cfg := &config.Config{USGSQuakesURL: srv.URL}

	result := newTestFetcher(cfg).FetchSeismic(context.Background(), zurich, 500)

	if !result.Available() {
		t.Fatalf("an empty feed is still a successful fetch, got %s", result.Status)
	}
	if result.Count != 0 || result.MaxMagnitude != nil {
		t.Errorf("expected zero quakes and nil max magnitude, got %d / %v", result.Count, result.MaxMagnitude)
	}
}

func TestFetchWildfires(t *testing.T) {
	events := `{"events":[
		{"id":"EONET_1","title":"Forest fire near Baden","categories":[{"id":"wildfires","title":"Wildfires"}],
		 "geometry":[{"date":"2026-03-13T12:00:00Z","coordinates":[8.30,47.47]}]},
		{"id":"EONET_2","title":"Fire in Portugal","categories":[{"id":"wildfires","title":"Wildfires"}],
		 "geometry":[{"date":"2026-03-13T12:00:00Z","coordinates":[-8.0,39.5]}]},
		{"id":"EONET_3","title":"No geometry","categories":[{"id":"wildfires","title":"Wildfires"}],"geometry":[]}
	]}`
	srv := jsonServer(t, events)
	cfg := &config.Config{EONETEventsURL: srv.URL}

	result := newTestFetcher(cfg).FetchWildfires(context.Background(), zurich, 100)

	if !result.Available() {
		t.Fatalf("expected ok result, got %s: %s", result.Status, result.Reason)
	}
	if result.Count != 1 {
		t.Fatalf("expected 1 fire within 100km, got %d", result.Count)
	}
	if result.Events[0].ID != "EONET_1" {
		t.Errorf("expected EONET_1, got %q", result.Events[0].ID)
	}
	if result.Events[0].Category != "Wildfires" {
		t.Errorf("unexpected category %q", result.Events[0].Category)
	}
}

func TestFetchDisasterAlerts(t *testing.T) {
	feed := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:gdacs="http://www.gdacs.org" xmlns:georss="http://www.georss.org/georss">
<channel><title>GDACS</title>
<item>
  <title>Red flood alert in Switzerland</title>
  <link>https://www.gdacs.org/report.aspx?eventid=1</link>
  <pubDate>Fri, 13 Mar 2026 09:00:00 GMT</pubDate>
  <georss:point>47.0 8.3</georss:point>
  <gdacs:alertlevel>Red</gdacs:alertlevel>
  <gdacs:eventtype>FL</gdacs:eventtype>
</item>
<item>
  <title>Orange earthquake alert in Italy</title>
  <link>https://www.gdacs.org/report.aspx?eventid=2</link>
  <pubDate>Fri, 13 Mar 2026 10:00:00 GMT</pubDate>
  <georss:point>42.5 13.2</georss:point>
  <gdacs:alertlevel>Orange</gdacs:alertlevel>
  <gdacs:eventtype>EQ</gdacs:eventtype>
</item>
<item>
  <title>Green cyclone alert in the Pacific</title>
  <georss:point>-15.0 170.0</georss:point>
  <gdacs:alertlevel>Green</gdacs:alertlevel>
  <gdacs:eventtype>TC</gdacs:eventtype>
</item>
<item>
  <title>Alert without a position</title>
  <gdacs:alertlevel>Red</gdacs:alertlevel>
</item>
</channel></rss>`
	srv := jsonServer(t, feed)
	cfg := &config.Config{GDACSFeedURL: srv.URL}

	result := newTestFetcher(cfg).FetchDisasterAlerts(context.Background(), zurich, 1000)

	if !result.Available() {
		t.Fatalf("expected ok result, got %s: %s", result.Status, result.Reason)
	}
	if len(result.Alerts) != 2 {
		t.Fatalf("expected 2 alerts within 1000km, got %d", len(result.Alerts))
	}
	if result.RedCount != 1 || result.OrangeCount != 1 {
		t.Errorf("expected 1 red and 1 orange, got %d / %d", result.RedCount, result.OrangeCount)
	}
	if result.Alerts[0].EventType != "FL" {
		t.Errorf("unexpected event type %q", result.Alerts[0].EventType)
	}
	if result.Alerts[0].Published.IsZero() {
		t.Error("expected a parsed publish time")
	}
}

func TestFetchWeather(t *testing.T) {
	body := `{"current":{"time":"2026-03-14T10:00","temperature_2m":12.4,"apparent_temperature":10.1,
		"relative_humidity_2m":68,"precipitation":0,"weather_code":2,"cloud_cover":40,
		"wind_speed_10m":14.2,"wind_gusts_10m":28.5,"pressure_msl":1018.3}}`
	srv := jsonServer(t, body)
	cfg := &config.Config{OpenMeteoWeatherURL: srv.URL}

	result := newTestFetcher(cfg).FetchWeather(context.Background(), zurich)

	if !result.Available() {
		t.Fatalf("expected ok result, got %s: %s", result.Status, result.Reason)
	}
	if result.Temperature == nil || *result.Temperature != 12.4 {
		t.Errorf("expected temperature 12.4, got %v", result.Temperature)
	}
	if result.Condition != "Partly cloudy" {
		t.Errorf("expected condition for WMO code 2, got %q", result.Condition)
	}
}

func TestFetchAirQuality(t *testing.T) {
	body := `{"current":{"time":"2026-03-14T10:00","european_aqi":72,"pm2_5":24.1,"pm10":38.0,
		"nitrogen_dioxide":31.2,"ozone":55.0,"uv_index":8.5}}`
	srv := jsonServer(t, body)
	cfg := &config.Config{OpenMeteoAirQualityURL: srv.URL}

	result := newTestFetcher(cfg).FetchAirQuality(context.Background(), zurich)

	if !result.Available() {
		t.Fatalf("expected ok result, got %s: %s", result.Status, result.Reason)
	}
	if result.Category != "Poor" {
		t.Errorf("expected category Poor for AQI 72, got %q", result.Category)
	}
	if result.UVCategory != "Very High" {
		t.Errorf("expected Very High for UV 8.5, got %q", result.UVCategory)
	}
}

func TestFetchPollen(t *testing.T) {
	body := `{"current":{"time":"2026-03-14T10:00","grass_pollen":120,"birch_pollen":8,"alder_pollen":null,
		"mugwort_pollen":null,"olive_pollen":null,"ragweed_pollen":55}}`
	srv := jsonServer(t, body)
	cfg := &config.Config{OpenMeteoAirQualityURL: srv.URL}

	result := newTestFetcher(cfg).FetchPollen(context.Background(), zurich)

	if !result.Available() {
		t.Fatalf("expected ok result, got %s: %s", result.Status, result.Reason)
	}
	if len(result.Readings) != 3 {
		t.Fatalf("expected 3 readings, got %d", len(result.Readings))
	}
	// Grass at 120 is Very High and ragweed at 55 is High; birch at 8 is Low.
	if len(result.HighPollen) != 2 || result.HighPollen[0] != "grass" || result.HighPollen[1] != "ragweed" {
		t.Errorf("expected grass and ragweed as high species, got %v", result.HighPollen)
	}
}

func TestFetchPollenNoData(t *testing.T) {
	body := `{"current":{"time":"2026-03-14T10:00","grass_pollen":null,"birch_pollen":null,"alder_pollen":null,
		"mugwort_pollen":null,"olive_pollen":null,"ragweed_pollen":null}}`
	srv := jsonServer(t, body)
	cfg := &config.Config{OpenMeteoAirQualityURL: srv.URL}

	result := newTestFetcher(cfg).FetchPollen(context.Background(), zurich)

	if result.Status != models.StatusUnavailable {
		t.Fatalf("expected unavailable for all-null pollen, got %s", result.Status)
	}
}

func TestFetchFlood(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantStatus   models.Status
		wantCategory string
	}{
		{
			name:         "steady discharge",
			body:         `{"daily":{"time":["2026-03-14"],"river_discharge":[10.0,10.5,11.0,10.2,10.8,10.1,10.4]}}`,
			wantStatus:   models.StatusOK,
			wantCategory: "None",
		},
		{
			name:         "peak triple of mean",
			body:         `{"daily":{"time":["2026-03-14"],"river_discharge":[10.0,10.0,10.0,10.0,10.0,10.0,200.0]}}`,
			wantStatus:   models.StatusOK,
			wantCategory: "High",
		},
		{
			name:       "no river",
			body:       `{"daily":{"time":["2026-03-14"],"river_discharge":[null,null,null,null,null,null,null]}}`,
			wantStatus: models.StatusUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := jsonServer(t, tt.body)
			cfg := &config.Config{OpenMeteoFloodURL: srv.URL}

			result := newTestFetcher(cfg).FetchFlood(context.Background(), zurich)

			if result.Status != tt.wantStatus {
				t.Fatalf("expected status %s, got %s: %s", tt.wantStatus, result.Status, result.Reason)
			}
			if result.RiskCategory != tt.wantCategory {
				t.Errorf("expected category %q, got %q", tt.wantCategory, result.RiskCategory)
			}
		})
	}
}

func TestFetchMarine(t *testing.T) {
	body := `{"current":{"time":"2026-03-14T10:00","wave_height":3.1,"wave_direction":240,
		"wave_period":8.2,"swell_wave_height":2.4}}`
	srv := jsonServer(t, body)
	cfg := &config.Config{OpenMeteoMarineURL: srv.URL}

	result := newTestFetcher(cfg).FetchMarine(context.Background(), zurich)

	if !result.Available() {
		t.Fatalf("expected ok result, got %s: %s", result.Status, result.Reason)
	}
	if result.SeaState != "Moderate to Rough" {
		t.Errorf("unexpected sea state %q", result.SeaState)
	}
}

func TestFetchMarineInland(t *testing.T) {
	srv := jsonServer(t, `{"current":{"time":"2026-03-14T10:00","wave_height":null}}`)
	cfg := &config.Config{OpenMeteoMarineURL: srv.URL}

	result := newTestFetcher(cfg).FetchMarine(context.Background(), zurich)

	if result.Status != models.StatusUnavailable {
		t.Fatalf("expected unavailable for an inland coordinate, got %s", result.Status)
	}
	if result.Reason == "" {
		t.Error("expected a reason explaining the missing wave data")
	}
}

func TestFetchWeatherServerError(t *testing.T) {
	srv := errorServer(t, http.StatusBadGateway)
	cfg := &config.Config{OpenMeteoWeatherURL: srv.URL}

	result := newTestFetcher(cfg).FetchWeather(context.Background(), zurich)

	if result.Status != models.StatusError {
		t.Fatalf("expected error status, got %s", result.Status)
	}
}
