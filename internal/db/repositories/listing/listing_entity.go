package listing

import (
	"time"
)

type Listing struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	UserID   uint   `gorm:"column:user_id;not null;index" json:"user_id"`
	Title    string `gorm:"column:title;type:varchar(255);not null" json:"title"`
	IsActive bool   `gorm:"column:is_active;not null;default:true" json:"is_active"`
}

func (Listing) TableName() string {
	return "listings"
}
