package fetchers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/models"
)

// openMeteoRequest prepares a request with the shared Open-Meteo params.
// The commercial API key is attached when configured; the free tier works
// without one.
func (f *Fetcher) openMeteoRequest(ctx context.Context, coord models.Coordinate, current string) *resty.Request {
	req := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"latitude":  fmt.Sprintf("%.4f", coord.Lat),
			"longitude": fmt.Sprintf("%.4f", coord.Lon),
			"current":   current,
			"timezone":  "auto",
		})
	if f.cfg.OpenMeteoAPIKey != "" {
		req.SetQueryParam("apikey", f.cfg.OpenMeteoAPIKey)
	}
	return req
}

// FetchWeather reads current surface conditions.
func (f *Fetcher) FetchWeather(ctx context.Context, coord models.Coordinate) models.WeatherResult {
	resp, err := f.openMeteoRequest(ctx, coord,
		"temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,weather_code,cloud_cover,wind_speed_10m,wind_gusts_10m,pressure_msl").
		Get(f.cfg.OpenMeteoWeatherURL)
	if err != nil {
		return models.WeatherResult{Result: models.Errorf("failed to fetch weather: %v", err)}
	}
	if resp.StatusCode() != 200 {
		return models.WeatherResult{Result: models.Errorf("weather API returned status %d", resp.StatusCode())}
	}

	var payload models.OpenMeteoWeather
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return models.WeatherResult{Result: models.Errorf("failed to parse weather response: %v", err)}
	}

	cur := payload.Current
	result := models.WeatherResult{
		Result:        models.OK(),
		Temperature:   cur.Temperature,
		FeelsLike:     cur.FeelsLike,
		Humidity:      cur.Humidity,
		Precipitation: cur.Precipitation,
		WindSpeed:     cur.WindSpeed,
		WindGusts:     cur.WindGusts,
		CloudCover:    cur.CloudCover,
		PressureMSL:   cur.PressureMSL,
	}
	if cur.WeatherCode != nil {
		result.Condition = weatherCondition(*cur.WeatherCode)
	}
	return result
}

// FetchAirQuality reads the EU AQI, main pollutants and the UV index.
func (f *Fetcher) FetchAirQuality(ctx context.Context, coord models.Coordinate) models.AirQualityResult {
	resp, err := f.openMeteoRequest(ctx, coord,
		"european_aqi,pm10,pm2_5,nitrogen_dioxide,ozone,uv_index").
		Get(f.cfg.OpenMeteoAirQualityURL)
	if err != nil {
		return models.AirQualityResult{Result: models.Errorf("failed to fetch air quality: %v", err)}
	}
	if resp.StatusCode() != 200 {
		return models.AirQualityResult{Result: models.Errorf("air quality API returned status %d", resp.StatusCode())}
	}

	var payload models.OpenMeteoAirQuality
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return models.AirQualityResult{Result: models.Errorf("failed to parse air quality response: %v", err)}
	}

	cur := payload.Current
	result := models.AirQualityResult{
		Result:      models.OK(),
		EuropeanAQI: cur.EuropeanAQI,
		PM25:        cur.PM25,
		PM10:        cur.PM10,
		NO2:         cur.NO2,
		Ozone:       cur.Ozone,
		UVIndex:     cur.UVIndex,
	}
	if cur.EuropeanAQI != nil {
		result.Category = aqiCategory(*cur.EuropeanAQI)
	}
	if cur.UVIndex != nil {
		result.UVCategory = uvCategory(*cur.UVIndex)
	}
	return result
}

// FetchPollen reads per-species pollen concentrations. Coverage is Europe
// only; a response without any reading degrades to unavailable rather
// than error, since the provider is up but has nothing for the location.
func (f *Fetcher) FetchPollen(ctx context.Context, coord models.Coordinate) models.PollenResult {
	resp, err := f.openMeteoRequest(ctx, coord,
		"alder_pollen,birch_pollen,grass_pollen,mugwort_pollen,olive_pollen,ragweed_pollen").
		Get(f.cfg.OpenMeteoAirQualityURL)
	if err != nil {
		return models.PollenResult{Result: models.Errorf("failed to fetch pollen: %v", err)}
	}
	if resp.StatusCode() != 200 {
		return models.PollenResult{Result: models.Errorf("pollen API returned status %d", resp.StatusCode())}
	}

	var payload models.OpenMeteoAirQuality
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return models.PollenResult{Result: models.Errorf("failed to parse pollen response: %v", err)}
	}

	species := []struct {
		name  string
		value *float64
	}{
		{"grass", payload.Current.GrassPollen},
		{"birch", payload.Current.BirchPollen},
		{"alder", payload.Current.AlderPollen},
		{"mugwort", payload.Current.MugwortPollen},
		{"olive", payload.Current.OlivePollen},
		{"ragweed", payload.Current.RagweedPollen},
	}

	result := models.PollenResult{Result: models.OK()}
	anyReading := false
	for _, s := range species {
		if s.value == nil {
			continue
		}
		anyReading = true
		level := pollenLevel(*s.value)
		result.Readings = append(result.Readings, models.PollenReading{
			Species: s.name,
			Value:   s.value,
			Level:   level,
		})
		if level == "High" || level == "Very High" {
			result.HighPollen = append(result.HighPollen, s.name)
		}
	}
	if !anyReading {
		return models.PollenResult{Result: models.Unavailable("no pollen data for this location (Europe only, seasonal)")}
	}
	return result
}

// FetchFlood reads the 7-day river discharge forecast and derives the
// flood risk from forecast peaks vs. the forecast mean. Locations without
// a modeled river degrade to unavailable.
func (f *Fetcher) FetchFlood(ctx context.Context, coord models.Coordinate) models.FloodResult {
	req := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"latitude":      fmt.Sprintf("%.4f", coord.Lat),
			"longitude":     fmt.Sprintf("%.4f", coord.Lon),
			"daily":         "river_discharge",
			"forecast_days": "7",
		})
	if f.cfg.OpenMeteoAPIKey != "" {
		req.SetQueryParam("apikey", f.cfg.OpenMeteoAPIKey)
	}
	resp, err := req.Get(f.cfg.OpenMeteoFloodURL)
	if err != nil {
		return models.FloodResult{Result: models.Errorf("failed to fetch flood forecast: %v", err)}
	}
	if resp.StatusCode() != 200 {
		return models.FloodResult{Result: models.Errorf("flood API returned status %d", resp.StatusCode())}
	}

	var payload models.OpenMeteoFlood
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return models.FloodResult{Result: models.Errorf("failed to parse flood response: %v", err)}
	}

	var valid []float64
	for _, d := range payload.Daily.RiverDischarge {
		if d != nil {
			valid = append(valid, *d)
		}
	}
	if len(valid) == 0 {
		return models.FloodResult{Result: models.Unavailable("no modeled river at this location")}
	}

	maxD, sum := valid[0], 0.0
	for _, v := range valid {
		if v > maxD {
			maxD = v
		}
		sum += v
	}
	mean := sum / float64(len(valid))

	return models.FloodResult{
		Result:           models.OK(),
		CurrentDischarge: &valid[0],
		MaxDischarge:     &maxD,
		MeanDischarge:    &mean,
		RiskCategory:     floodCategory(maxD, mean),
	}
}

// FetchMarine reads current wave and swell state. Inland coordinates have
// no wave data and degrade to unavailable.
func (f *Fetcher) FetchMarine(ctx context.Context, coord models.Coordinate) models.MarineResult {
	resp, err := f.openMeteoRequest(ctx, coord,
		"wave_height,wave_direction,wave_period,swell_wave_height").
		Get(f.cfg.OpenMeteoMarineURL)
	if err != nil {
		return models.MarineResult{Result: models.Errorf("failed to fetch marine conditions: %v", err)}
	}
	if resp.StatusCode() != 200 {
		return models.MarineResult{Result: models.Errorf("marine API returned status %d", resp.StatusCode())}
	}

	var payload models.OpenMeteoMarine
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return models.MarineResult{Result: models.Errorf("failed to parse marine response: %v", err)}
	}

	cur := payload.Current
	if cur.WaveHeight == nil {
		return models.MarineResult{Result: models.Unavailable("location not near a coast")}
	}
	return models.MarineResult{
		Result:        models.OK(),
		WaveHeight:    cur.WaveHeight,
		WaveDirection: cur.WaveDirection,
		WavePeriod:    cur.WavePeriod,
		SwellHeight:   cur.SwellHeight,
		SeaState:      seaState(*cur.WaveHeight),
	}
}
