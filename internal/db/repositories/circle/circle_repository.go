package circle

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/NejeNejeNeje/ropa-sub001/internal/db"
)

/*
REPOSITORY INTERFACE
*/

type CircleRepository interface {
	WithTx(tx *gorm.DB) CircleRepository

	CreateCircle(ctx context.Context, c *SwapCircle) error
	GetCircleByID(ctx context.Context, id uint) (*SwapCircle, error)
	SetFull(ctx context.Context, circleID uint, full bool) error

	CountRSVPs(ctx context.Context, circleID uint) (int64, error)
	HasRSVP(ctx context.Context, userID, circleID uint) (bool, error)
	CreateRSVP(ctx context.Context, r *CircleRSVP) error
	// DeleteRSVP removes the row and reports whether one existed.
	DeleteRSVP(ctx context.Context, userID, circleID uint) (bool, error)
}

/*
REPOSITORY IMPL
*/

type CircleRepositoryImpl struct {
	db *gorm.DB
}

func NewCircleRepository(database *db.DB) CircleRepository {
	return &CircleRepositoryImpl{db: database.DB}
}

func (r *CircleRepositoryImpl) WithTx(tx *gorm.DB) CircleRepository {
	if tx == nil {
		return r
	}
	return &CircleRepositoryImpl{db: tx}
}

func (r *CircleRepositoryImpl) CreateCircle(ctx context.Context, c *SwapCircle) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CircleRepositoryImpl) GetCircleByID(ctx context.Context, id uint) (*SwapCircle, error) {
	var c SwapCircle
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *CircleRepositoryImpl) SetFull(ctx context.Context, circleID uint, full bool) error {
	return r.db.WithContext(ctx).
		Model(&SwapCircle{}).
		Where("id = ?", circleID).
		Update("is_full", full).Error
}

func (r *CircleRepositoryImpl) CountRSVPs(ctx context.Context, circleID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&CircleRSVP{}).
		Where("circle_id = ?", circleID).
		Count(&count).Error
	return count, err
}

func (r *CircleRepositoryImpl) HasRSVP(ctx context.Context, userID, circleID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&CircleRSVP{}).
		Where("user_id = ? AND circle_id = ?", userID, circleID).
		Count(&count).Error
	return count > 0, err
}

func (r *CircleRepositoryImpl) CreateRSVP(ctx context.Context, rsvp *CircleRSVP) error {
	return r.db.WithContext(ctx).Create(rsvp).Error
}

func (r *CircleRepositoryImpl) DeleteRSVP(ctx context.Context, userID, circleID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND circle_id = ?", userID, circleID).
		Delete(&CircleRSVP{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
