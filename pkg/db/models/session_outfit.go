package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionOutfit orders outfits within a session. Pure join row; it cascades
// with its session while the outfit itself survives.
type SessionOutfit struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SessionID uuid.UUID `gorm:"column:session_id;type:uuid;not null;index:session_outfits_session_id_idx;uniqueIndex:session_outfits_session_outfit_key"`
	OutfitID  uuid.UUID `gorm:"column:outfit_id;type:uuid;not null;uniqueIndex:session_outfits_session_outfit_key"`
	Position  int       `gorm:"column:position;not null"`
	Outfit    *Outfit   `gorm:"foreignKey:OutfitID"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
