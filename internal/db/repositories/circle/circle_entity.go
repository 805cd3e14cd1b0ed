package circle

import (
	"time"
)

// SwapCircle is a capacity-bounded in-person swap event. IsFull is derived
// from the RSVP count and kept consistent inside the RSVP transactions;
// IsPast is flipped by scheduling/admin logic outside this core.
type SwapCircle struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Title    string `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Capacity int    `gorm:"column:capacity;type:int;not null" json:"capacity"`
	IsFull   bool   `gorm:"column:is_full;not null;default:false" json:"is_full"`
	IsPast   bool   `gorm:"column:is_past;not null;default:false" json:"is_past"`
}

func (SwapCircle) TableName() string {
	return "swap_circles"
}

// CircleRSVP — existence of a row means the user occupies one capacity slot.
type CircleRSVP struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	UserID   uint `gorm:"column:user_id;not null;uniqueIndex:idx_circle_attendee,priority:1" json:"user_id"`
	CircleID uint `gorm:"column:circle_id;not null;uniqueIndex:idx_circle_attendee,priority:2" json:"circle_id"`
}

func (CircleRSVP) TableName() string {
	return "circle_rsvps"
}
