package user

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Nickname string `gorm:"column:nickname;type:varchar(64);not null;uniqueIndex" json:"nickname"`

	// Cached aggregates. KarmaPoints always equals the sum of the user's
	// karma_entries rows; TrustTier is derived from KarmaPoints.
	KarmaPoints int    `gorm:"column:karma_points;type:int;not null;default:0" json:"karma_points"`
	TrustTier   string `gorm:"column:trust_tier;type:varchar(16);not null;default:'bronze'" json:"trust_tier"`
}

func (User) TableName() string {
	return "users"
}
