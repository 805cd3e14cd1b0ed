package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/NejeNejeNeje/ropa-sub001/internal/db"
)

/*
REPOSITORY INTERFACE
*/

type UserRepository interface {
	// WithTx returns a repository scoped to tx so callers can compose
	// multi-entity writes in one transaction. A nil tx returns the receiver.
	WithTx(tx *gorm.DB) UserRepository

	CreateUser(ctx context.Context, u *User) error
	GetUserByID(ctx context.Context, id uint) (*User, error)
	AddKarmaPoints(ctx context.Context, id uint, delta int) error
	SetTrustTier(ctx context.Context, id uint, tier string) error
}

/*
REPOSITORY IMPL
*/

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(database *db.DB) UserRepository {
	return &UserRepositoryImpl{db: database.DB}
}

func (r *UserRepositoryImpl) WithTx(tx *gorm.DB) UserRepository {
	if tx == nil {
		return r
	}
	return &UserRepositoryImpl{db: tx}
}

func (r *UserRepositoryImpl) CreateUser(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, id uint) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepositoryImpl) AddKarmaPoints(ctx context.Context, id uint, delta int) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		UpdateColumn("karma_points", gorm.Expr("karma_points + ?", delta)).Error
}

func (r *UserRepositoryImpl) SetTrustTier(ctx context.Context, id uint, tier string) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Update("trust_tier", tier).Error
}
