package karma

import (
	"time"
)

// KarmaEntry is one row of the append-only reputation ledger. Rows are never
// updated or deleted; the per-user sum of Points must always equal the
// cached users.karma_points value.
type KarmaEntry struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`

	UserID      uint   `gorm:"column:user_id;not null;index" json:"user_id"`
	Action      string `gorm:"column:action;type:varchar(32);not null" json:"action"`
	Points      int    `gorm:"column:points;type:int;not null" json:"points"`
	Description string `gorm:"column:description;type:varchar(255)" json:"description"`
}

func (KarmaEntry) TableName() string {
	return "karma_entries"
}
