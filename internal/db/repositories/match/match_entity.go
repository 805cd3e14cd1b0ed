package match

import (
	"time"
)

// Match statuses.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusDeclined  = "declined"
	StatusCompleted = "completed"
)

// Match links two users through the pair of listings they swiped on each
// other. The pair is unordered: at most one row exists per listing pair no
// matter which side's swipe arrived last, so the A/B assignment only records
// who triggered creation.
type Match struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	UserAID    uint `gorm:"column:user_a_id;not null;index" json:"user_a_id"`
	ListingAID uint `gorm:"column:listing_a_id;not null;index" json:"listing_a_id"`
	UserBID    uint `gorm:"column:user_b_id;not null;index" json:"user_b_id"`
	ListingBID uint `gorm:"column:listing_b_id;not null;index" json:"listing_b_id"`

	Status string `gorm:"column:status;type:varchar(16);not null;default:'pending'" json:"status"`
}

func (Match) TableName() string {
	return "matches"
}
