package swipe

import (
	"time"
)

// Swipe directions. RIGHT and SUPER both express interest and can form a
// match; LEFT is a pass and never triggers matching.
const (
	DirectionLeft  = "LEFT"
	DirectionRight = "RIGHT"
	DirectionSuper = "SUPER"
)

// IsInterested reports whether a direction counts toward matching.
func IsInterested(direction string) bool {
	return direction == DirectionRight || direction == DirectionSuper
}

// ValidDirection reports whether direction is one of the known values.
func ValidDirection(direction string) bool {
	return direction == DirectionLeft || IsInterested(direction)
}

// Swipe holds the single current preference of one user on one listing.
// Re-swiping overwrites Direction in place; the (swiper, listing) pair is
// unique so no history accumulates.
type Swipe struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	SwiperID  uint   `gorm:"column:swiper_id;not null;uniqueIndex:idx_swipe_pair,priority:1" json:"swiper_id"`
	ListingID uint   `gorm:"column:listing_id;not null;uniqueIndex:idx_swipe_pair,priority:2" json:"listing_id"`
	Direction string `gorm:"column:direction;type:varchar(8);not null" json:"direction"`
}

func (Swipe) TableName() string {
	return "swipes"
}
