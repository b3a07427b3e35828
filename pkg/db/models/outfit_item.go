package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/stylehaulhq/stylehaul-backend/pkg/enums"
)

// OutfitItem is one slot in an outfit. ProductID is nullable only transiently
// while resolution is in flight; persisted rows always reference a product.
type OutfitItem struct {
	ID        uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OutfitID  uuid.UUID             `gorm:"column:outfit_id;type:uuid;not null;index:outfit_items_outfit_id_idx"`
	ProductID *uuid.UUID            `gorm:"column:product_id;type:uuid"`
	Category  enums.ApparelCategory `gorm:"column:category;not null"`
	Reasoning string                `gorm:"column:reasoning;not null"`
	IsMain    bool                  `gorm:"column:is_main;not null;default:false"`
	Position  int                   `gorm:"column:position;not null"`
	Product   *Product              `gorm:"foreignKey:ProductID"`
	Variants  []ProductVariant      `gorm:"foreignKey:OutfitItemID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time             `gorm:"column:created_at;autoCreateTime"`
}
