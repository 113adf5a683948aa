package reports

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/models"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/storage"
)

// Persister writes the bulletin artifacts (Markdown body, HTML rendering,
// raw alert JSON) for one alert into the configured store.
type Persister struct {
	store storage.Store
	html  *HTMLRenderer
	log   zerolog.Logger
}

// NewPersister creates a persister over the given store.
func NewPersister(store storage.Store, log zerolog.Logger) *Persister {
	return &Persister{
		store: store,
		html:  NewHTMLRenderer(),
		log:   log.With().Str("component", "reports").Logger(),
	}
}

// Save persists all three artifacts under the alert's bulletin folder.
func (p *Persister) Save(ctx context.Context, alert *models.Alert) error {
	markdown := RenderMarkdown(alert)
	if err := p.store.Put(ctx, []byte(markdown), "bulletin.md", alert.Timestamp); err != nil {
		return fmt.Errorf("failed to store bulletin markdown: %w", err)
	}

	page, err := p.html.Render(alert)
	if err != nil {
		return err
	}
	if err := p.store.Put(ctx, page, "bulletin.html", alert.Timestamp); err != nil {
		return fmt.Errorf("failed to store bulletin html: %w", err)
	}

	raw, err := json.MarshalIndent(alert, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}
	if err := p.store.Put(ctx, raw, "alert.json", alert.Timestamp); err != nil {
		return fmt.Errorf("failed to store alert json: %w", err)
	}

	p.log.Info().
		Str("folder", storage.BulletinFolderPath(alert.Timestamp)).
		Str("severity", alert.Risk.Severity.String()).
		Msg("bulletin persisted")
	return nil
}
