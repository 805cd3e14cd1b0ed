package match

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/NejeNejeNeje/ropa-sub001/internal/db"
)

/*
REPOSITORY INTERFACE
*/

type MatchRepository interface {
	WithTx(tx *gorm.DB) MatchRepository

	// GetByListingPair looks the match up by its unordered listing pair,
	// checking both storage orders.
	GetByListingPair(ctx context.Context, listing1, listing2 uint) (*Match, error)
	CreateMatch(ctx context.Context, m *Match) error
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

/*
REPOSITORY IMPL
*/

type MatchRepositoryImpl struct {
	db *gorm.DB
}

func NewMatchRepository(database *db.DB) MatchRepository {
	return &MatchRepositoryImpl{db: database.DB}
}

func (r *MatchRepositoryImpl) WithTx(tx *gorm.DB) MatchRepository {
	if tx == nil {
		return r
	}
	return &MatchRepositoryImpl{db: tx}
}

func (r *MatchRepositoryImpl) GetByListingPair(ctx context.Context, listing1, listing2 uint) (*Match, error) {
	var m Match
	err := r.db.WithContext(ctx).
		Where("(listing_a_id = ? AND listing_b_id = ?) OR (listing_a_id = ? AND listing_b_id = ?)",
			listing1, listing2, listing2, listing1).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *MatchRepositoryImpl) CreateMatch(ctx context.Context, m *Match) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MatchRepositoryImpl) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Match{}).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Count(&count).Error
	return count, err
}
