package swipe

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/NejeNejeNeje/ropa-sub001/internal/db"
)

/*
REPOSITORY INTERFACE
*/

type SwipeRepository interface {
	WithTx(tx *gorm.DB) SwipeRepository

	GetSwipe(ctx context.Context, swiperID, listingID uint) (*Swipe, error)
	// UpsertSwipe inserts the swipe or overwrites the direction of the
	// existing (swiper, listing) row. Callers run it inside a transaction
	// when the swipe can trigger match creation.
	UpsertSwipe(ctx context.Context, s *Swipe) error
	// FindReciprocal returns any one interested (RIGHT/SUPER) swipe by
	// swiperID on one of the given listings, or nil if none exists.
	FindReciprocal(ctx context.Context, swiperID uint, listingIDs []uint) (*Swipe, error)
	CountBySwiper(ctx context.Context, swiperID uint) (int64, error)
	CountInterestedBySwiper(ctx context.Context, swiperID uint) (int64, error)
}

/*
REPOSITORY IMPL
*/

type SwipeRepositoryImpl struct {
	db *gorm.DB
}

func NewSwipeRepository(database *db.DB) SwipeRepository {
	return &SwipeRepositoryImpl{db: database.DB}
}

func (r *SwipeRepositoryImpl) WithTx(tx *gorm.DB) SwipeRepository {
	if tx == nil {
		return r
	}
	return &SwipeRepositoryImpl{db: tx}
}

func (r *SwipeRepositoryImpl) GetSwipe(ctx context.Context, swiperID, listingID uint) (*Swipe, error) {
	var s Swipe
	err := r.db.WithContext(ctx).
		Where("swiper_id = ? AND listing_id = ?", swiperID, listingID).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Upsert by (swiper_id, listing_id)
func (r *SwipeRepositoryImpl) UpsertSwipe(ctx context.Context, s *Swipe) error {
	var existing Swipe
	err := r.db.WithContext(ctx).
		Where("swiper_id = ? AND listing_id = ?", s.SwiperID, s.ListingID).
		First(&existing).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.WithContext(ctx).Create(s).Error
		}
		return err
	}

	// keep same primary key
	s.ID = existing.ID
	s.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SwipeRepositoryImpl) FindReciprocal(ctx context.Context, swiperID uint, listingIDs []uint) (*Swipe, error) {
	if len(listingIDs) == 0 {
		return nil, nil
	}

	var s Swipe
	err := r.db.WithContext(ctx).
		Where("swiper_id = ? AND listing_id IN ? AND direction IN ?",
			swiperID, listingIDs, []string{DirectionRight, DirectionSuper}).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SwipeRepositoryImpl) CountBySwiper(ctx context.Context, swiperID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Swipe{}).
		Where("swiper_id = ?", swiperID).
		Count(&count).Error
	return count, err
}

func (r *SwipeRepositoryImpl) CountInterestedBySwiper(ctx context.Context, swiperID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Swipe{}).
		Where("swiper_id = ? AND direction IN ?", swiperID, []string{DirectionRight, DirectionSuper}).
		Count(&count).Error
	return count, err
}
