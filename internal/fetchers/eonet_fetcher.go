package fetchers

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/geo"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/models"
)

// FetchWildfires lists open EONET wildfire events within the radius.
func (f *Fetcher) FetchWildfires(ctx context.Context, coord models.Coordinate, radiusKm float64) models.WildfireResult {
	events, hdr := f.fetchEONETEvents(ctx, coord, radiusKm, "wildfires")
	return models.WildfireResult{Result: hdr, Count: len(events), Events: events}
}

// FetchVolcanic lists open EONET volcano events within the radius.
func (f *Fetcher) FetchVolcanic(ctx context.Context, coord models.Coordinate, radiusKm float64) models.VolcanicResult {
	events, hdr := f.fetchEONETEvents(ctx, coord, radiusKm, "volcanoes")
	return models.VolcanicResult{Result: hdr, Count: len(events), Events: events}
}

// fetchEONETEvents queries NASA EONET for open events of one category and
// filters them by great-circle distance. The last geometry entry is the
// event's most recent position.
func (f *Fetcher) fetchEONETEvents(ctx context.Context, coord models.Coordinate, radiusKm float64, category string) ([]models.NaturalEvent, models.Result) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"status":   "open",
			"category": category,
			"limit":    "100",
		}).
		Get(f.cfg.EONETEventsURL)
	if err != nil {
		return nil, models.Errorf("failed to fetch EONET events: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, models.Errorf("EONET API returned status %d", resp.StatusCode())
	}

	var payload models.EONETEvents
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, models.Errorf("failed to parse EONET response: %v", err)
	}

	var nearby []models.NaturalEvent
	for _, event := range payload.Events {
		if len(event.Geometry) == 0 {
			continue
		}
		latest := event.Geometry[len(event.Geometry)-1]
		if len(latest.Coordinates) < 2 {
			continue
		}
		loc := models.Coordinate{Lat: latest.Coordinates[1], Lon: latest.Coordinates[0]}
		dist := geo.Distance(coord, loc)
		if dist > radiusKm {
			continue
		}

		categoryTitle := ""
		if len(event.Categories) > 0 {
			categoryTitle = event.Categories[0].Title
		}
		date, _ := time.Parse(time.RFC3339, latest.Date)

		nearby = append(nearby, models.NaturalEvent{
			ID:         event.ID,
			Title:      event.Title,
			Category:   categoryTitle,
			Date:       date,
			Location:   loc,
			DistanceKm: round1(dist),
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	return nearby, models.OK()
}
