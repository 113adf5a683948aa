package models

import (
	"fmt"
	"time"
)

// Domain identifies one category of environmental or hazard data.
type Domain string

const (
	DomainSpaceWeather   Domain = "space_weather"
	DomainSeismic        Domain = "seismic"
	DomainWildfire       Domain = "wildfire"
	DomainVolcanic       Domain = "volcanic"
	DomainDisasterAlerts Domain = "disaster_alerts"
	DomainWeather        Domain = "weather"
	DomainAirQuality     Domain = "air_quality"
	DomainPollen         Domain = "pollen"
	DomainFlood          Domain = "flood"
	DomainMarine         Domain = "marine"
)

// AllDomains returns every known domain in fixed evaluation order.
func AllDomains() []Domain {
	return []Domain{
		DomainSpaceWeather,
		DomainSeismic,
		DomainWildfire,
		DomainVolcanic,
		DomainDisasterAlerts,
		DomainWeather,
		DomainAirQuality,
		DomainPollen,
		DomainFlood,
		DomainMarine,
	}
}

// Status tags the outcome of a single source adapter call.
type Status string

const (
	StatusOK          Status = "ok"
	StatusError       Status = "error"
	StatusUnavailable Status = "unavailable"
)

// Result is the common header embedded in every per-domain result.
type Result struct {
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// OK returns a successful result header.
func OK() Result {
	return Result{Status: StatusOK}
}

// Errorf returns an error result header with a formatted reason.
func Errorf(format string, args ...interface{}) Result {
	return Result{Status: StatusError, Reason: fmt.Sprintf(format, args...)}
}

// Unavailable returns a result header for a domain that cannot be served,
// e.g. a key-gated provider with no credential configured.
func Unavailable(reason string) Result {
	return Result{Status: StatusUnavailable, Reason: reason}
}

// Available reports whether the adapter produced usable data.
func (r Result) Available() bool {
	return r.Status == StatusOK
}

// Coordinate is a latitude/longitude pair in degrees, passed by value.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Validate checks the coordinate against the valid geographic range.
// This is the only input error the alert pipeline surfaces to callers.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %.4f out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %.4f out of range [-180, 180]", c.Lon)
	}
	return nil
}

// SpaceWeatherResult carries geomagnetic and solar activity indices.
type SpaceWeatherResult struct {
	Result
	KpIndex           *float64 `json:"kp_index,omitempty"`
	KpLevel           string   `json:"kp_level,omitempty"`
	XrayFlux          *float64 `json:"xray_flux,omitempty"`
	XrayClass         string   `json:"xray_class,omitempty"`
	ProtonFlux        *float64 `json:"proton_flux,omitempty"`
	ProtonLevel       string   `json:"proton_level,omitempty"`
	SolarWindSpeed    *float64 `json:"solar_wind_speed,omitempty"`
	AuroraProbability *float64 `json:"aurora_probability,omitempty"`
	AuroraVisibility  string   `json:"aurora_visibility,omitempty"`
}

// Earthquake is one seismic event within the search radius.
type Earthquake struct {
	Magnitude  float64   `json:"magnitude"`
	Place      string    `json:"place"`
	Time       time.Time `json:"time"`
	DepthKm    float64   `json:"depth_km"`
	DistanceKm float64   `json:"distance_km"`
	Tsunami    bool      `json:"tsunami"`
}

// SeismicResult summarizes earthquakes near the requested coordinate.
type SeismicResult struct {
	Result
	Count        int          `json:"count"`
	MaxMagnitude *float64     `json:"max_magnitude,omitempty"`
	Quakes       []Earthquake `json:"earthquakes,omitempty"`
}

// NaturalEvent is one open EONET event (wildfire, volcano, ...).
type NaturalEvent struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Category   string     `json:"category"`
	Date       time.Time  `json:"date"`
	Location   Coordinate `json:"location"`
	DistanceKm float64    `json:"distance_km"`
}

// WildfireResult summarizes active wildfires near the coordinate.
// A zero count is meaningful (no fires), unlike the pointer fields elsewhere.
type WildfireResult struct {
	Result
	Count  int            `json:"count"`
	Events []NaturalEvent `json:"events,omitempty"`
}

// VolcanicResult summarizes active volcanic events near the coordinate.
type VolcanicResult struct {
	Result
	Count  int            `json:"count"`
	Events []NaturalEvent `json:"events,omitempty"`
}

// DisasterAlert is one GDACS episode with its color-coded level.
type DisasterAlert struct {
	Title     string    `json:"title"`
	EventType string    `json:"event_type,omitempty"`
	Level     string    `json:"level"` // Red, Orange or Green
	Published time.Time `json:"published"`
	Link      string    `json:"link,omitempty"`
}

// DisasterAlertsResult summarizes humanitarian disaster alerts in range.
type DisasterAlertsResult struct {
	Result
	Alerts      []DisasterAlert `json:"alerts,omitempty"`
	RedCount    int             `json:"red_count"`
	OrangeCount int             `json:"orange_count"`
}

// WeatherResult carries current surface conditions.
type WeatherResult struct {
	Result
	Temperature   *float64 `json:"temperature,omitempty"`
	FeelsLike     *float64 `json:"feels_like,omitempty"`
	Humidity      *float64 `json:"humidity,omitempty"`
	Precipitation *float64 `json:"precipitation,omitempty"`
	WindSpeed     *float64 `json:"wind_speed,omitempty"`
	WindGusts     *float64 `json:"wind_gusts,omitempty"`
	CloudCover    *float64 `json:"cloud_cover,omitempty"`
	PressureMSL   *float64 `json:"pressure_msl,omitempty"`
	Condition     string   `json:"condition,omitempty"`
}

// AirQualityResult carries the EU AQI, main pollutants and the UV index.
type AirQualityResult struct {
	Result
	EuropeanAQI *float64 `json:"european_aqi,omitempty"`
	Category    string   `json:"category,omitempty"`
	PM25        *float64 `json:"pm2_5,omitempty"`
	PM10        *float64 `json:"pm10,omitempty"`
	NO2         *float64 `json:"no2,omitempty"`
	Ozone       *float64 `json:"o3,omitempty"`
	UVIndex     *float64 `json:"uv_index,omitempty"`
	UVCategory  string   `json:"uv_category,omitempty"`
}

// PollenReading is the concentration and derived level for one species.
type PollenReading struct {
	Species string   `json:"species"`
	Value   *float64 `json:"value,omitempty"`
	Level   string   `json:"level"`
}

// PollenResult carries per-species pollen readings (Europe only).
type PollenResult struct {
	Result
	Readings   []PollenReading `json:"readings,omitempty"`
	HighPollen []string        `json:"high_pollen,omitempty"`
}

// FloodResult carries river discharge figures and the derived risk category.
type FloodResult struct {
	Result
	CurrentDischarge *float64 `json:"current_discharge,omitempty"`
	MaxDischarge     *float64 `json:"max_discharge,omitempty"`
	MeanDischarge    *float64 `json:"mean_discharge,omitempty"`
	RiskCategory     string   `json:"risk_category,omitempty"` // None, Low, Moderate, High
}

// MarineResult carries wave and swell state for coastal coordinates.
type MarineResult struct {
	Result
	WaveHeight    *float64 `json:"wave_height,omitempty"`
	WaveDirection *float64 `json:"wave_direction,omitempty"`
	WavePeriod    *float64 `json:"wave_period,omitempty"`
	SwellHeight   *float64 `json:"swell_height,omitempty"`
	SeaState      string   `json:"sea_state,omitempty"`
}

// Snapshot is the canonical per-request aggregate of all domain results.
// The assembler populates every field: requested domains carry the adapter
// outcome, unrequested ones carry an unavailable marker. Consumers never
// need to nil-check a domain.
type Snapshot struct {
	Location   Coordinate `json:"location"`
	CapturedAt time.Time  `json:"captured_at"`
	Requested  []Domain   `json:"requested"`

	SpaceWeather   SpaceWeatherResult   `json:"space_weather"`
	Seismic        SeismicResult        `json:"seismic"`
	Wildfire       WildfireResult       `json:"wildfire"`
	Volcanic       VolcanicResult       `json:"volcanic"`
	DisasterAlerts DisasterAlertsResult `json:"disaster_alerts"`
	Weather        WeatherResult        `json:"weather"`
	AirQuality     AirQualityResult     `json:"air_quality"`
	Pollen         PollenResult         `json:"pollen"`
	Flood          FloodResult          `json:"flood"`
	Marine         MarineResult         `json:"marine"`
}

// Float returns a pointer to v. Convenience for optional scalar fields.
func Float(v float64) *float64 {
	return &v
}
