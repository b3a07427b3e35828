package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductVariant links an outfit item to an alternate product.
type ProductVariant struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OutfitItemID uuid.UUID `gorm:"column:outfit_item_id;type:uuid;not null;index:product_variants_outfit_item_id_idx"`
	ProductID    uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	Position     int       `gorm:"column:position;not null"`
	Product      *Product  `gorm:"foreignKey:ProductID"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}
