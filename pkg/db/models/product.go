package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stylehaulhq/stylehaul-backend/pkg/enums"
)

// Product is an externally sourced listing. Identity is the search service's
// external id, never the surrogate key; re-inserting a known external id must
// update in place, not duplicate.
type Product struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ExternalID string          `gorm:"column:external_id;not null;uniqueIndex:products_external_id_key"`
	Name       string          `gorm:"column:name;not null"`
	Brand      *string         `gorm:"column:brand"`
	ImageURL   string          `gorm:"column:image_url;not null"`
	Price      decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	Currency   enums.Currency  `gorm:"column:currency;not null;default:USD"`
	BuyLink    string          `gorm:"column:buy_link;not null"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
