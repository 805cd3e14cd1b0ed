package karma

import (
	"context"

	"gorm.io/gorm"

	"github.com/NejeNejeNeje/ropa-sub001/internal/db"
)

/*
REPOSITORY INTERFACE
*/

type KarmaRepository interface {
	WithTx(tx *gorm.DB) KarmaRepository

	AppendEntry(ctx context.Context, e *KarmaEntry) error
	// ListByUser returns the newest entries first, at most limit rows.
	ListByUser(ctx context.Context, userID uint, limit int) ([]*KarmaEntry, error)
	SumPointsByUser(ctx context.Context, userID uint) (int, error)
	HasAction(ctx context.Context, userID uint, action string) (bool, error)
}

/*
REPOSITORY IMPL
*/

type KarmaRepositoryImpl struct {
	db *gorm.DB
}

func NewKarmaRepository(database *db.DB) KarmaRepository {
	return &KarmaRepositoryImpl{db: database.DB}
}

func (r *KarmaRepositoryImpl) WithTx(tx *gorm.DB) KarmaRepository {
	if tx == nil {
		return r
	}
	return &KarmaRepositoryImpl{db: tx}
}

func (r *KarmaRepositoryImpl) AppendEntry(ctx context.Context, e *KarmaEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *KarmaRepositoryImpl) ListByUser(ctx context.Context, userID uint, limit int) ([]*KarmaEntry, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}

	var entries []*KarmaEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *KarmaRepositoryImpl) SumPointsByUser(ctx context.Context, userID uint) (int, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&KarmaEntry{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&sum).Error
	return int(sum), err
}

func (r *KarmaRepositoryImpl) HasAction(ctx context.Context, userID uint, action string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&KarmaEntry{}).
		Where("user_id = ? AND action = ?", userID, action).
		Count(&count).Error
	return count > 0, err
}
