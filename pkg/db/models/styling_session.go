package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	dbtypes "github.com/stylehaulhq/stylehaul-backend/pkg/db/types"
)

// StylingSession is one quiz-to-results unit ("haul"). Outfits attach through
// the session_outfits join so a share link outlives session deletion.
type StylingSession struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID        uuid.UUID      `gorm:"column:user_id;type:uuid;not null;index:styling_sessions_user_id_idx"`
	QuizData      dbtypes.JSONB  `gorm:"column:quiz_data;type:jsonb"`
	SearchQueries pq.StringArray `gorm:"column:search_queries;type:text[]"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
