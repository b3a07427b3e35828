package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Outfit is a single cohesive look. It is owned by a user through its session
// link but remains independently shareable via the share token.
type Outfit struct {
	ID           uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string           `gorm:"column:name;not null"`
	Occasion     string           `gorm:"column:occasion;not null"`
	StylistBlurb string           `gorm:"column:stylist_blurb;not null"`
	TotalPrice   decimal.Decimal  `gorm:"column:total_price;type:numeric(12,2);not null"`
	PriceMin     *decimal.Decimal `gorm:"column:price_min;type:numeric(12,2)"`
	PriceMax     *decimal.Decimal `gorm:"column:price_max;type:numeric(12,2)"`
	ShareToken   string           `gorm:"column:share_token;not null;uniqueIndex:outfits_share_token_key"`
	Items        []OutfitItem     `gorm:"foreignKey:OutfitID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
