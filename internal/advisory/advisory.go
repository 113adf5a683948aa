// Package advisory produces the natural-language recommendation for an
// environmental snapshot. Remote model endpoints are tried first in a
// fixed order; the deterministic rule-based generator guarantees that
// some appropriate text is always returned.
package advisory

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/config"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/locale"
	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/models"
)

// AuroraVisibleKp is the planetary K-index from which aurora sighting
// advice is given. Configurable constant, frozen at 5.
const AuroraVisibleKp = 5.0

// DefaultProfile is used when the caller supplies no persona tag.
const DefaultProfile = "General Public"

// Remote issues one generation request against one endpoint. Implemented
// by the HTTP client; tests substitute doubles.
type Remote interface {
	Generate(ctx context.Context, endpoint config.RemoteEndpoint, prompt string) (string, error)
}

// Generator runs the remote cascade and falls back to the rule-based
// compositor. Safe for concurrent use.
type Generator struct {
	endpoints []config.RemoteEndpoint
	remote    Remote
	timeout   time.Duration
	minLength int
	log       zerolog.Logger
}

// NewGenerator creates a generator over the configured endpoint cascade.
func NewGenerator(cfg *config.Config, log zerolog.Logger) *Generator {
	return &Generator{
		endpoints: cfg.RemoteEndpoints(),
		remote:    newRemoteClient(),
		timeout:   cfg.RemoteTimeout,
		minLength: cfg.MinAdvisoryLength,
		log:       log.With().Str("component", "advisory").Logger(),
	}
}

// Generate produces an advisory for the snapshot. Each configured remote
// endpoint gets exactly one attempt with a bounded timeout; the first
// usable response wins and carries the endpoint name as provenance. When
// every endpoint fails, or none is configured, the rule-based generator
// answers instead. Generate never fails.
func (g *Generator) Generate(ctx context.Context, snap *models.Snapshot, profile, lang, question string) models.Advisory {
	if profile == "" {
		profile = DefaultProfile
	}
	lang = locale.Normalize(lang)

	prompt := buildPrompt(snap, profile, lang, question)
	for _, endpoint := range g.endpoints {
		text, err := g.attempt(ctx, endpoint, prompt)
		if err != nil {
			g.log.Warn().Str("endpoint", endpoint.Name).Err(err).Msg("generation attempt failed")
			continue
		}
		return models.Advisory{
			Text:        text,
			Language:    lang,
			Profile:     profile,
			Provenance:  endpoint.Name,
			GeneratedAt: time.Now().UTC(),
		}
	}

	return models.Advisory{
		Text:        ruleBased(snap, profile, lang, question),
		Language:    lang,
		Profile:     profile,
		Provenance:  models.ProvenanceRuleBased,
		GeneratedAt: time.Now().UTC(),
	}
}

// attempt issues a single request against one endpoint. No retries: a
// failed endpoint is skipped for the remainder of the request.
func (g *Generator) attempt(ctx context.Context, endpoint config.RemoteEndpoint, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.remote.Generate(ctx, endpoint, prompt)
	if err != nil {
		return "", err
	}
	if len(text) < g.minLength {
		return "", errTooShort{got: len(text), min: g.minLength}
	}
	return text, nil
}

type errTooShort struct {
	got, min int
}

func (e errTooShort) Error() string {
	return fmt.Sprintf("generated text too short: %d chars, need %d", e.got, e.min)
}
