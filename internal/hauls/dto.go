// Package hauls persists and reconstructs styling sessions, outfits and
// their products.
package hauls

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dbtypes "github.com/stylehaulhq/stylehaul-backend/pkg/db/types"
	"github.com/stylehaulhq/stylehaul-backend/pkg/enums"
)

// ProductIdea is the external listing payload inside an outfit idea.
type ProductIdea struct {
	ExternalID string  `json:"externalId" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Brand      string  `json:"brand"`
	ImageURL   string  `json:"imageUrl"`
	Price      float64 `json:"price" validate:"gte=0"`
	Currency   string  `json:"currency"`
	BuyLink    string  `json:"buyLink"`
}

// OutfitItemIdea is one slot of an outfit idea, with its main product and
// alternate variants.
type OutfitItemIdea struct {
	Category  enums.ApparelCategory `json:"category"`
	Reasoning string                `json:"reasoning"`
	IsMain    bool                  `json:"isMain"`
	Product   ProductIdea           `json:"product" validate:"required"`
	Variants  []ProductIdea         `json:"variants"`
}

// OutfitIdea is the nested outfit shape submitted for persistence.
type OutfitIdea struct {
	Name         string           `json:"name" validate:"required"`
	Occasion     string           `json:"occasion"`
	StylistBlurb string           `json:"stylistBlurb"`
	Items        []OutfitItemIdea `json:"items" validate:"required,min=1,dive"`
}

// ProductView is a persisted product as returned to readers.
type ProductView struct {
	ID         uuid.UUID       `json:"id"`
	ExternalID string          `json:"externalId"`
	Name       string          `json:"name"`
	Brand      *string         `json:"brand,omitempty"`
	ImageURL   string          `json:"imageUrl"`
	Price      decimal.Decimal `json:"price"`
	Currency   enums.Currency  `json:"currency"`
	BuyLink    string          `json:"buyLink"`
}

// ItemView is a reconstructed outfit item with its main product and ordered
// variants.
type ItemView struct {
	ID        uuid.UUID             `json:"id"`
	Category  enums.ApparelCategory `json:"category"`
	Reasoning string                `json:"reasoning"`
	IsMain    bool                  `json:"isMain"`
	Position  int                   `json:"position"`
	Product   ProductView           `json:"product"`
	Variants  []ProductView         `json:"variants"`
}

// PriceRange spans all main and variant prices of an outfit.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// OutfitView is a reconstructed outfit.
type OutfitView struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Occasion     string          `json:"occasion"`
	StylistBlurb string          `json:"stylistBlurb"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	PriceRange   *PriceRange     `json:"priceRange,omitempty"`
	ShareToken   string          `json:"shareToken"`
	Items        []ItemView      `json:"items"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Haul is one reconstructed styling session: ordered outfits plus a
// flattened product list for legacy consumers.
type Haul struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uuid.UUID     `json:"userId"`
	QuizData      dbtypes.JSONB `json:"quizData,omitempty"`
	SearchQueries []string      `json:"searchQueries"`
	Outfits       []OutfitView  `json:"outfits"`
	Products      []ProductView `json:"products"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// SaveResult reports what a persistence call created.
type SaveResult struct {
	SessionID uuid.UUID   `json:"sessionId"`
	OutfitIDs []uuid.UUID `json:"outfitIds"`
}

// GenerateResult is the outcome of one haul generation.
type GenerateResult struct {
	HaulID   uuid.UUID         `json:"haulId"`
	Queries  []string          `json:"queries"`
	Products []ResolvedListing `json:"products"`
}

// ResolvedListing is a generation-time product before persistence.
type ResolvedListing struct {
	ExternalID  string                `json:"externalId"`
	Name        string                `json:"name"`
	Brand       string                `json:"brand,omitempty"`
	ImageURL    string                `json:"imageUrl"`
	Price       float64               `json:"price"`
	Currency    string                `json:"currency"`
	BuyLink     string                `json:"buyLink"`
	Query       string                `json:"query"`
	Category    enums.ApparelCategory `json:"category"`
	Explanation string                `json:"explanation,omitempty"`
}
