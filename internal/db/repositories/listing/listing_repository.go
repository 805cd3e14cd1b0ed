package listing

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/NejeNejeNeje/ropa-sub001/internal/db"
)

/*
REPOSITORY INTERFACE
*/

type ListingRepository interface {
	WithTx(tx *gorm.DB) ListingRepository

	CreateListing(ctx context.Context, l *Listing) error
	GetListingByID(ctx context.Context, id uint) (*Listing, error)
	// ActiveListingIDsByOwner returns ids of the owner's active listings,
	// the candidate targets for a reciprocal swipe.
	ActiveListingIDsByOwner(ctx context.Context, ownerID uint) ([]uint, error)
}

/*
REPOSITORY IMPL
*/

type ListingRepositoryImpl struct {
	db *gorm.DB
}

func NewListingRepository(database *db.DB) ListingRepository {
	return &ListingRepositoryImpl{db: database.DB}
}

func (r *ListingRepositoryImpl) WithTx(tx *gorm.DB) ListingRepository {
	if tx == nil {
		return r
	}
	return &ListingRepositoryImpl{db: tx}
}

func (r *ListingRepositoryImpl) CreateListing(ctx context.Context, l *Listing) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *ListingRepositoryImpl) GetListingByID(ctx context.Context, id uint) (*Listing, error) {
	var l Listing
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *ListingRepositoryImpl) ActiveListingIDsByOwner(ctx context.Context, ownerID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&Listing{}).
		Where("user_id = ? AND is_active = ?", ownerID, true).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
