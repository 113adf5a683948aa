// Package fetchers contains the source adapters: one best-effort fetch per
// hazard domain, each decoding its provider's payload exactly once at this
// boundary. Adapters never return errors; every failure is folded into the
// status header of the per-domain result.
package fetchers

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/config"
)

const userAgent = "space-ai-alert/6.0 (https://github.com/dominikjosefbell/space-ai-alert-mvp)"

// Fetcher bundles the source adapters for every hazard domain behind one
// shared HTTP client. A single instance is safe for concurrent use.
type Fetcher struct {
	client *resty.Client
	parser *gofeed.Parser
	cfg    *config.Config
	log    zerolog.Logger
}

// NewFetcher creates a fetcher with a shared resty client. Retries stay
// disabled: each adapter gets a single best-effort attempt per request,
// failures degrade the owning domain only.
func NewFetcher(cfg *config.Config, log zerolog.Logger) *Fetcher {
	client := resty.New().
		SetTimeout(15 * time.Second).
		SetHeader("User-Agent", userAgent)

	return &Fetcher{
		client: client,
		parser: gofeed.NewParser(),
		cfg:    cfg,
		log:    log.With().Str("component", "fetchers").Logger(),
	}
}
