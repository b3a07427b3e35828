// Package styling turns a quiz profile into planned, resolved outfit
// recommendations.
package styling

import (
	"context"

	"github.com/stylehaulhq/stylehaul-backend/pkg/enums"
	"github.com/stylehaulhq/stylehaul-backend/pkg/search"
)

// StyleProfile is the immutable quiz input to planning. It is never persisted
// structurally, only as an opaque quiz blob on the session.
type StyleProfile struct {
	Gender         string           `json:"gender"`
	BodyType       string           `json:"bodyType"`
	StyleVibe      string           `json:"styleVibe"`
	Budget         enums.BudgetTier `json:"budget"`
	ShoppingFor    string           `json:"shoppingFor"`
	Colors         enums.ColorMood  `json:"colorPreferences"`
	FavoriteBrands []string         `json:"favoriteBrands"`
}

// PlannedItem is one slot the reasoning service proposes for an outfit.
type PlannedItem struct {
	Category    enums.ApparelCategory `json:"category"`
	SearchQuery string                `json:"searchQuery"`
	Reasoning   string                `json:"reasoning"`
	IsMain      bool                  `json:"isMain"`
}

// PlannedOutfit is an outfit structure before product resolution.
type PlannedOutfit struct {
	Name         string        `json:"name"`
	Occasion     string        `json:"occasion"`
	StylistBlurb string        `json:"stylistBlurb"`
	Items        []PlannedItem `json:"items"`
}

// ResolvedProduct is a search listing tagged with its originating query, an
// inferred category and (for the haul flow) a short rationale.
type ResolvedProduct struct {
	ExternalID  string
	Name        string
	Brand       string
	ImageURL    string
	Price       float64
	Currency    string
	BuyLink     string
	Query       string
	Category    enums.ApparelCategory
	Explanation string
}

// Completer is the reasoning-service surface the planner consumes.
type Completer interface {
	Complete(ctx context.Context, system, user string, maxTokens int) (string, error)
}

// Searcher is the product-search surface the resolver consumes.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]search.Result, error)
}
