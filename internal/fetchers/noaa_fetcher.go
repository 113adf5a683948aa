package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/models"
)

// FetchSpaceWeather gathers geomagnetic and solar activity from the NOAA
// SWPC feeds: planetary Kp, GOES X-ray and proton flux, solar wind speed
// and the OVATION aurora grid. Each sub-feed is best-effort; the result is
// ok when at least the Kp or X-ray feed could be decoded.
func (f *Fetcher) FetchSpaceWeather(ctx context.Context, coord models.Coordinate) models.SpaceWeatherResult {
	result := models.SpaceWeatherResult{}
	var failures []string

	if kp, err := f.fetchKpIndex(ctx); err != nil {
		failures = append(failures, fmt.Sprintf("kp: %v", err))
	} else {
		result.KpIndex = kp
		result.KpLevel = kpLevel(*kp)
	}

	if flux, err := f.fetchXrayFlux(ctx); err != nil {
		failures = append(failures, fmt.Sprintf("xray: %v", err))
	} else {
		result.XrayFlux = flux
		result.XrayClass = flareClass(*flux)
	}

	if flux, err := f.fetchProtonFlux(ctx); err != nil {
		failures = append(failures, fmt.Sprintf("protons: %v", err))
	} else {
		result.ProtonFlux = flux
		result.ProtonLevel = protonLevel(*flux)
	}

	if speed, err := f.fetchSolarWindSpeed(ctx); err != nil {
		failures = append(failures, fmt.Sprintf("solar wind: %v", err))
	} else {
		result.SolarWindSpeed = speed
	}

	if prob, err := f.fetchAuroraProbability(ctx, coord); err != nil {
		failures = append(failures, fmt.Sprintf("aurora: %v", err))
	} else {
		result.AuroraProbability = prob
		result.AuroraVisibility = auroraVisibility(*prob)
	}

	if result.KpIndex == nil && result.XrayFlux == nil {
		result.Result = models.Errorf("space weather feeds unavailable: %s", strings.Join(failures, "; "))
		return result
	}

	if len(failures) > 0 {
		f.log.Warn().Strs("failures", failures).Msg("partial space weather fetch")
	}
	result.Result = models.OK()
	return result
}

// fetchKpIndex reads the latest planetary Kp from the NOAA tabular feed.
// The endpoint returns an array of rows with a header row:
// [["time_tag","Kp","a_running","station_count"], ["2026-03-14 00:00:00","1.33",...], ...]
func (f *Fetcher) fetchKpIndex(ctx context.Context) (*float64, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(f.cfg.NOAAKpIndexURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch NOAA Kp index: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("NOAA Kp index API returned status %d", resp.StatusCode())
	}

	var rows [][]string
	if err := json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("failed to parse NOAA Kp index response: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("NOAA Kp index response has no data rows")
	}

	latest := rows[len(rows)-1]
	if len(latest) < 2 {
		return nil, fmt.Errorf("NOAA Kp index row too short")
	}
	kp, err := strconv.ParseFloat(latest[1], 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Kp value %q: %w", latest[1], err)
	}
	return &kp, nil
}

// fetchXrayFlux reads the latest long-channel (0.1-0.8nm) GOES X-ray flux.
func (f *Fetcher) fetchXrayFlux(ctx context.Context) (*float64, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(f.cfg.NOAAXrayURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch GOES X-ray flux: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("GOES X-ray API returned status %d", resp.StatusCode())
	}

	var entries []models.GOESXrayEntry
	if err := json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("failed to parse GOES X-ray response: %w", err)
	}

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e.Flux > 0 && (e.Energy == "" || e.Energy == "0.1-0.8nm") {
			return &e.Flux, nil
		}
	}
	return nil, fmt.Errorf("no usable X-ray flux entry")
}

// fetchProtonFlux reads the latest >=10 MeV integral proton flux.
func (f *Fetcher) fetchProtonFlux(ctx context.Context) (*float64, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(f.cfg.NOAAProtonURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch GOES proton flux: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("GOES proton API returned status %d", resp.StatusCode())
	}

	var entries []models.GOESProtonEntry
	if err := json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("failed to parse GOES proton response: %w", err)
	}

	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Energy == ">=10 MeV" {
			return &entries[i].Flux, nil
		}
	}
	return nil, fmt.Errorf("no >=10 MeV proton entry")
}

// fetchSolarWindSpeed reads the latest plasma speed from the tabular feed:
// [["time_tag","density","speed","temperature"], ...]
func (f *Fetcher) fetchSolarWindSpeed(ctx context.Context) (*float64, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(f.cfg.NOAASolarWindURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch solar wind plasma: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("solar wind API returned status %d", resp.StatusCode())
	}

	var rows [][]*string
	if err := json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("failed to parse solar wind response: %w", err)
	}

	// Walk backwards past null readings.
	for i := len(rows) - 1; i >= 1; i-- {
		row := rows[i]
		if len(row) >= 3 && row[2] != nil {
			speed, err := strconv.ParseFloat(*row[2], 64)
			if err != nil {
				continue
			}
			return &speed, nil
		}
	}
	return nil, fmt.Errorf("no usable solar wind reading")
}

// fetchAuroraProbability finds the OVATION grid point closest to the
// coordinate. The grid stores [lon, lat, probability] with lon in [0, 360).
func (f *Fetcher) fetchAuroraProbability(ctx context.Context, coord models.Coordinate) (*float64, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(f.cfg.NOAAAuroraURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch OVATION aurora grid: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("OVATION API returned status %d", resp.StatusCode())
	}

	var grid models.OvationAurora
	if err := json.Unmarshal(resp.Body(), &grid); err != nil {
		return nil, fmt.Errorf("failed to parse OVATION response: %w", err)
	}
	if len(grid.Coordinates) == 0 {
		return nil, fmt.Errorf("OVATION grid is empty")
	}

	lonCheck := coord.Lon
	if lonCheck < 0 {
		lonCheck += 360
	}

	var best float64
	minDist := -1.0
	for _, point := range grid.Coordinates {
		pLon, pLat, prob := point[0], point[1], point[2]
		dist := abs(pLat-coord.Lat) + abs(pLon-lonCheck)
		if minDist < 0 || dist < minDist {
			minDist = dist
			best = prob
		}
	}
	return &best, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
