// Package users creates accounts. Registration and the one-time welcome
// bonus commit together.
package users

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/NejeNejeNeje/ropa-sub001/internal/common"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/user"
	"github.com/NejeNejeNeje/ropa-sub001/internal/services/karma"
)

//go:generate mockgen -source=users.go -destination=mocks/users_mock.go -package=mocks
type Service interface {
	Register(ctx context.Context, nickname string) (*user.User, error)
}

type Impl struct {
	db    db.Database
	users user.UserRepository
	karma karma.Service
}

func New(database db.Database, users user.UserRepository, karmaService karma.Service) Service {
	return &Impl{db: database, users: users, karma: karmaService}
}

func (s *Impl) Register(ctx context.Context, nickname string) (*user.User, error) {
	u := &user.User{
		Nickname:  nickname,
		TrustTier: karma.TierBronze,
	}

	err := s.db.Transaction(ctx, func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		if err := users.CreateUser(ctx, u); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return common.ErrDuplicateNickname
			}
			return err
		}
		if err := s.karma.GrantWelcomeBonusInTx(ctx, tx, u.ID); err != nil {
			return err
		}

		// reload so the caller sees the bonus points and tier
		fresh, err := users.GetUserByID(ctx, u.ID)
		if err != nil {
			return err
		}
		if fresh != nil {
			*u = *fresh
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}
