package styling

import (
	"context"
	"fmt"
	"strings"

	"github.com/stylehaulhq/stylehaul-backend/pkg/backoff"
	"github.com/stylehaulhq/stylehaul-backend/pkg/config"
	pkgerrors "github.com/stylehaulhq/stylehaul-backend/pkg/errors"
	"github.com/stylehaulhq/stylehaul-backend/pkg/logger"
)

const (
	stylistSystemPrompt = "You are a professional fashion stylist. Answer with JSON only, no commentary."

	queryPromptTemplate = `Plan product search queries for this shopper:
- gender: %s
- body type: %s
- style vibe: %s
- budget: %s
- shopping for: %s
- color preference: %s
- favorite brands: %s

Respond with a JSON array of 4-6 short product search strings, e.g.
["silk blouse", "wide leg trousers"].`

	outfitPromptTemplate = `Design exactly 6 complete outfits for this shopper:
- gender: %s
- body type: %s
- style vibe: %s
- budget: %s
- shopping for: %s
- color preference: %s
- favorite brands: %s

Each outfit has exactly 4 items: 1-2 main structural pieces (isMain true),
exactly 1 pair of shoes, and accessories for the rest (isMain false).
Categories: top, bottom, dress, outerwear, blazer, shoes, bag, jewelry,
accessories, denim.

Respond with JSON only:
{"outfits":[{"name":"...","occasion":"...","stylistBlurb":"2-3 sentences",
"items":[{"category":"top","searchQuery":"...","reasoning":"...","isMain":true}]}]}`

	explainPromptTemplate = `In at most 15 words, tell a shopper with a %q style vibe why %q%s suits them. Plain text, no quotes.`
)

// Planner asks the reasoning service for outfit structures and search queries.
type Planner struct {
	reasoning Completer
	logg      *logger.Logger
	cfg       config.StylingConfig
	maxTokens int
}

// NewPlanner builds a planner on top of the reasoning client.
func NewPlanner(reasoning Completer, logg *logger.Logger, cfg config.StylingConfig, maxTokens int) *Planner {
	return &Planner{
		reasoning: reasoning,
		logg:      logg,
		cfg:       cfg,
		maxTokens: maxTokens,
	}
}

// PlanSearchQueries asks for 4-6 search strings and truncates to the
// configured maximum. The precise failure cause is logged, never surfaced.
func (p *Planner) PlanSearchQueries(ctx context.Context, profile StyleProfile) ([]string, error) {
	prompt := fmt.Sprintf(queryPromptTemplate,
		profile.Gender, profile.BodyType, profile.StyleVibe, profile.Budget,
		profile.ShoppingFor, profile.Colors, strings.Join(profile.FavoriteBrands, ", "))

	raw, err := backoff.Run(ctx, p.logg, "plan_search_queries", p.cfg.RetryAttempts, p.cfg.RetryBaseDelay,
		func(ctx context.Context) (string, error) {
			return p.reasoning.Complete(ctx, stylistSystemPrompt, prompt, p.maxTokens)
		})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePlanning, err, "planning search queries")
	}

	var queries []string
	if err := decodeArray(raw, &queries); err != nil {
		p.logg.Error(ctx, "search query response did not parse", err)
		return nil, pkgerrors.Wrap(pkgerrors.CodePlanning, err, "parsing search queries")
	}

	cleaned := make([]string, 0, len(queries))
	for _, q := range queries {
		if trimmed := strings.TrimSpace(q); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodePlanning, "no usable search queries returned")
	}
	if limit := p.cfg.MaxQueries; limit > 0 && len(cleaned) > limit {
		cleaned = cleaned[:limit]
	}

	return cleaned, nil
}

// PlanOutfits asks for six structured outfits. Missing stylist blurbs are
// backfilled with a templated one-liner; outfits with no items are dropped
// with a warning rather than failing the plan.
func (p *Planner) PlanOutfits(ctx context.Context, profile StyleProfile) ([]PlannedOutfit, error) {
	prompt := fmt.Sprintf(outfitPromptTemplate,
		profile.Gender, profile.BodyType, profile.StyleVibe, profile.Budget,
		profile.ShoppingFor, profile.Colors, strings.Join(profile.FavoriteBrands, ", "))

	raw, err := backoff.Run(ctx, p.logg, "plan_outfits", p.cfg.RetryAttempts, p.cfg.RetryBaseDelay,
		func(ctx context.Context) (string, error) {
			return p.reasoning.Complete(ctx, stylistSystemPrompt, prompt, p.maxTokens)
		})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePlanning, err, "planning outfits")
	}

	var decoded struct {
		Outfits []PlannedOutfit `json:"outfits"`
	}
	if err := decodeObject(raw, &decoded); err != nil {
		p.logg.Error(ctx, "outfit plan response did not parse", err)
		return nil, pkgerrors.Wrap(pkgerrors.CodePlanning, err, "parsing outfit plan")
	}
	if len(decoded.Outfits) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodePlanning, "outfit plan contained no outfits")
	}

	outfits := make([]PlannedOutfit, 0, len(decoded.Outfits))
	for _, outfit := range decoded.Outfits {
		if len(outfit.Items) == 0 {
			p.logg.Warn(p.logg.WithField(ctx, "outfit", outfit.Name), "dropping planned outfit with no items")
			continue
		}
		if strings.TrimSpace(outfit.StylistBlurb) == "" {
			outfit.StylistBlurb = fmt.Sprintf("The %s look pulls together effortlessly for %s.", outfit.Name, outfit.Occasion)
		}
		outfits = append(outfits, outfit)
	}
	if len(outfits) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodePlanning, "outfit plan contained no usable outfits")
	}

	return outfits, nil
}

// ExplainProductChoice returns a short rationale for one product. It never
// fails: any upstream error falls back to a templated line so a single bad
// reasoning call cannot abort the pipeline.
func (p *Planner) ExplainProductChoice(ctx context.Context, productName, brand string, profile StyleProfile) string {
	brandSuffix := ""
	if strings.TrimSpace(brand) != "" {
		brandSuffix = " by " + brand
	}
	prompt := fmt.Sprintf(explainPromptTemplate, profile.StyleVibe, productName, brandSuffix)

	raw, err := p.reasoning.Complete(ctx, stylistSystemPrompt, prompt, 64)
	if err != nil {
		p.logg.Warn(p.logg.WithField(ctx, "product", productName), "product explanation failed, using fallback")
		return p.fallbackExplanation(profile)
	}

	explanation := strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), `"`))
	if explanation == "" {
		return p.fallbackExplanation(profile)
	}
	return explanation
}

func (p *Planner) fallbackExplanation(profile StyleProfile) string {
	vibe := strings.TrimSpace(profile.StyleVibe)
	if vibe == "" {
		vibe = "personal"
	}
	return fmt.Sprintf("Handpicked to complement your %s style.", vibe)
}
