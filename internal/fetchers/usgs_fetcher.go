package fetchers

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/geo"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/models"
)

// maxQuakesReturned caps the per-snapshot earthquake list.
const maxQuakesReturned = 20

// FetchSeismic reads the USGS day feed and keeps earthquakes within the
// search radius, sorted by distance, with the maximum magnitude derived.
func (f *Fetcher) FetchSeismic(ctx context.Context, coord models.Coordinate, radiusKm float64) models.SeismicResult {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(f.cfg.USGSQuakesURL)
	if err != nil {
		return models.SeismicResult{Result: models.Errorf("failed to fetch USGS feed: %v", err)}
	}
	if resp.StatusCode() != 200 {
		return models.SeismicResult{Result: models.Errorf("USGS feed returned status %d", resp.StatusCode())}
	}

	var feed models.USGSFeatureCollection
	if err := json.Unmarshal(resp.Body(), &feed); err != nil {
		return models.SeismicResult{Result: models.Errorf("failed to parse USGS feed: %v", err)}
	}

	var quakes []models.Earthquake
	for _, feature := range feed.Features {
		if feature.Properties.Mag == nil || len(feature.Geometry.Coordinates) < 2 {
			continue
		}
		eqCoord := models.Coordinate{
			Lat: feature.Geometry.Coordinates[1],
			Lon: feature.Geometry.Coordinates[0],
		}
		dist := geo.Distance(coord, eqCoord)
		if dist > radiusKm {
			continue
		}
		depth := 0.0
		if len(feature.Geometry.Coordinates) > 2 {
			depth = feature.Geometry.Coordinates[2]
		}
		quakes = append(quakes, models.Earthquake{
			Magnitude:  *feature.Properties.Mag,
			Place:      feature.Properties.Place,
			Time:       time.UnixMilli(feature.Properties.Time).UTC(),
			DepthKm:    depth,
			DistanceKm: round1(dist),
			Tsunami:    feature.Properties.Tsunami == 1,
		})
	}

	sort.Slice(quakes, func(i, j int) bool {
		return quakes[i].DistanceKm < quakes[j].DistanceKm
	})

	result := models.SeismicResult{
		Result: models.OK(),
		Count:  len(quakes),
	}
	for _, q := range quakes {
		if result.MaxMagnitude == nil || q.Magnitude > *result.MaxMagnitude {
			mag := q.Magnitude
			result.MaxMagnitude = &mag
		}
	}
	if len(quakes) > maxQuakesReturned {
		quakes = quakes[:maxQuakesReturned]
	}
	result.Quakes = quakes
	return result
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
