package models

// Provider payload shapes, decoded once at the adapter boundary.
// The rest of the system only ever sees the per-domain Result types.

// GOESXrayEntry is one reading from the NOAA GOES X-ray flux feed.
type GOESXrayEntry struct {
	TimeTag string  `json:"time_tag"`
	Flux    float64 `json:"flux"`
	Energy  string  `json:"energy"`
}

// GOESProtonEntry is one reading from the NOAA GOES integral proton feed.
type GOESProtonEntry struct {
	TimeTag string  `json:"time_tag"`
	Flux    float64 `json:"flux"`
	Energy  string  `json:"energy"`
}

// OvationAurora is the NOAA OVATION aurora probability grid.
type OvationAurora struct {
	ForecastTime    string       `json:"Forecast Time"`
	ObservationTime string       `json:"Observation Time"`
	Coordinates     [][3]float64 `json:"coordinates"` // [lon, lat, probability]
}

// USGSFeatureCollection is the USGS earthquake GeoJSON feed.
type USGSFeatureCollection struct {
	Features []USGSFeature `json:"features"`
}

// USGSFeature is one earthquake feature.
type USGSFeature struct {
	Properties struct {
		Mag     *float64 `json:"mag"`
		Place   string   `json:"place"`
		Time    int64    `json:"time"` // epoch millis
		Tsunami int      `json:"tsunami"`
		Alert   string   `json:"alert"`
	} `json:"properties"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"` // [lon, lat, depth]
	} `json:"geometry"`
}

// EONETEvents is the NASA EONET open events response.
type EONETEvents struct {
	Events []EONETEvent `json:"events"`
}

// EONETEvent is one EONET natural event.
type EONETEvent struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Categories []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"categories"`
	Geometry []struct {
		Date        string    `json:"date"`
		Coordinates []float64 `json:"coordinates"` // [lon, lat]
	} `json:"geometry"`
}

// OpenMeteoWeather is the Open-Meteo current weather response.
type OpenMeteoWeather struct {
	Current struct {
		Time           string   `json:"time"`
		Temperature    *float64 `json:"temperature_2m"`
		FeelsLike      *float64 `json:"apparent_temperature"`
		Humidity       *float64 `json:"relative_humidity_2m"`
		Precipitation  *float64 `json:"precipitation"`
		WeatherCode    *int     `json:"weather_code"`
		CloudCover     *float64 `json:"cloud_cover"`
		WindSpeed      *float64 `json:"wind_speed_10m"`
		WindGusts      *float64 `json:"wind_gusts_10m"`
		PressureMSL    *float64 `json:"pressure_msl"`
	} `json:"current"`
}

// OpenMeteoAirQuality is the Open-Meteo current air quality response.
type OpenMeteoAirQuality struct {
	Current struct {
		Time          string   `json:"time"`
		EuropeanAQI   *float64 `json:"european_aqi"`
		PM25          *float64 `json:"pm2_5"`
		PM10          *float64 `json:"pm10"`
		NO2           *float64 `json:"nitrogen_dioxide"`
		Ozone         *float64 `json:"ozone"`
		UVIndex       *float64 `json:"uv_index"`
		GrassPollen   *float64 `json:"grass_pollen"`
		BirchPollen   *float64 `json:"birch_pollen"`
		AlderPollen   *float64 `json:"alder_pollen"`
		MugwortPollen *float64 `json:"mugwort_pollen"`
		OlivePollen   *float64 `json:"olive_pollen"`
		RagweedPollen *float64 `json:"ragweed_pollen"`
	} `json:"current"`
}

// OpenMeteoFlood is the Open-Meteo flood API response.
type OpenMeteoFlood struct {
	Daily struct {
		Time           []string   `json:"time"`
		RiverDischarge []*float64 `json:"river_discharge"`
	} `json:"daily"`
}

// OpenMeteoMarine is the Open-Meteo marine API response.
type OpenMeteoMarine struct {
	Current struct {
		Time          string   `json:"time"`
		WaveHeight    *float64 `json:"wave_height"`
		WaveDirection *float64 `json:"wave_direction"`
		WavePeriod    *float64 `json:"wave_period"`
		SwellHeight   *float64 `json:"swell_wave_height"`
	} `json:"current"`
}
