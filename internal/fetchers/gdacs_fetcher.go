package fetchers

import (
	"context"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/geo"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/models"
)

// FetchDisasterAlerts reads the GDACS RSS feed and keeps the color-coded
// disaster episodes within the search radius. GDACS levels are Green,
// Orange and Red; only Orange and Red matter to the risk engine, but all
// in-range episodes are reported.
func (f *Fetcher) FetchDisasterAlerts(ctx context.Context, coord models.Coordinate, radiusKm float64) models.DisasterAlertsResult {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(f.cfg.GDACSFeedURL)
	if err != nil {
		return models.DisasterAlertsResult{Result: models.Errorf("failed to fetch GDACS feed: %v", err)}
	}
	if resp.StatusCode() != 200 {
		return models.DisasterAlertsResult{Result: models.Errorf("GDACS feed returned status %d", resp.StatusCode())}
	}

	feed, err := f.parser.ParseString(string(resp.Body()))
	if err != nil {
		return models.DisasterAlertsResult{Result: models.Errorf("failed to parse GDACS feed: %v", err)}
	}

	result := models.DisasterAlertsResult{Result: models.OK()}
	for _, item := range feed.Items {
		loc, ok := itemPoint(item)
		if !ok {
			continue
		}
		if geo.Distance(coord, loc) > radiusKm {
			continue
		}

		alert := models.DisasterAlert{
			Title:     item.Title,
			Level:     itemExtension(item, "gdacs", "alertlevel"),
			EventType: itemExtension(item, "gdacs", "eventtype"),
			Link:      item.Link,
		}
		if item.PublishedParsed != nil {
			alert.Published = *item.PublishedParsed
		}

		switch strings.ToLower(alert.Level) {
		case "red":
			result.RedCount++
		case "orange":
			result.OrangeCount++
		}
		result.Alerts = append(result.Alerts, alert)
	}
	return result
}

// itemPoint extracts the georss:point ("lat lon") of a feed item.
func itemPoint(item *gofeed.Item) (models.Coordinate, bool) {
	raw := itemExtension(item, "georss", "point")
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return models.Coordinate{}, false
	}
	lat, err1 := strconv.ParseFloat(fields[0], 64)
	lon, err2 := strconv.ParseFloat(fields[1], 64)
	if err1 != nil || err2 != nil {
		return models.Coordinate{}, false
	}
	return models.Coordinate{Lat: lat, Lon: lon}, true
}

// itemExtension reads the first value of a namespaced RSS extension.
func itemExtension(item *gofeed.Item, namespace, name string) string {
	if ns, ok := item.Extensions[namespace]; ok {
		if values, ok := ns[name]; ok && len(values) > 0 {
			return values[0].Value
		}
	}
	return ""
}
