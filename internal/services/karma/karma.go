package karma

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/NejeNejeNeje/ropa-sub001/internal/common"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db"
	karmarepo "github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/karma"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/user"
)

// Canonical karma-earning actions and their point values.
const (
	ActionWelcomeBonus   = "welcome_bonus"
	ActionCircleAttended = "circle_attended"
	ActionStoryShared    = "story_shared"
	ActionMatchMade      = "match_made"
)

const (
	WelcomeBonusPoints   = 50
	CircleAttendedPoints = 30
	StorySharedPoints    = 10
	MatchMadePoints      = 20
)

// Stats summarizes a user's reputation for display.
type Stats struct {
	Points      int    `json:"points"`
	TrustTier   string `json:"trust_tier"`
	CurrentTier string `json:"current_tier"`
	NextTier    string `json:"next_tier"`
	Progress    int    `json:"progress"`
}

//go:generate mockgen -source=karma.go -destination=mocks/karma_mock.go -package=mocks

// Service owns the append-only karma ledger and the cached per-user point
// total and trust tier derived from it.
type Service interface {
	// Award appends a ledger entry, bumps the cached point total and
	// recalculates the trust tier, all in one transaction.
	Award(ctx context.Context, userID uint, action string, points int, description string) error
	// AwardInTx is Award running inside a caller-owned transaction, for
	// callers whose own writes must commit atomically with the award.
	AwardInTx(ctx context.Context, tx *gorm.DB, userID uint, action string, points int, description string) error
	// GrantWelcomeBonusInTx awards the one-time registration bonus. A no-op
	// if the user already received it.
	GrantWelcomeBonusInTx(ctx context.Context, tx *gorm.DB, userID uint) error

	Log(ctx context.Context, userID uint, limit int) ([]*karmarepo.KarmaEntry, error)
	Stats(ctx context.Context, userID uint) (Stats, error)
	// VerifyLedger checks that the ledger sum equals the cached point
	// total, returning ErrInvariantViolation on mismatch.
	VerifyLedger(ctx context.Context, userID uint) error
}

type Impl struct {
	db      db.Database
	users   user.UserRepository
	entries karmarepo.KarmaRepository
}

func New(database db.Database, users user.UserRepository, entries karmarepo.KarmaRepository) Service {
	return &Impl{db: database, users: users, entries: entries}
}

func (s *Impl) Award(ctx context.Context, userID uint, action string, points int, description string) error {
	return s.db.Transaction(ctx, func(tx *gorm.DB) error {
		return s.AwardInTx(ctx, tx, userID, action, points, description)
	})
}

func (s *Impl) AwardInTx(ctx context.Context, tx *gorm.DB, userID uint, action string, points int, description string) error {
	users := s.users.WithTx(tx)
	entries := s.entries.WithTx(tx)

	u, err := users.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return common.ErrUserNotFound
	}

	entry := &karmarepo.KarmaEntry{
		UserID:      userID,
		Action:      action,
		Points:      points,
		Description: description,
	}
	if err := entries.AppendEntry(ctx, entry); err != nil {
		return err
	}
	if err := users.AddKarmaPoints(ctx, userID, points); err != nil {
		return err
	}

	// Tier recalc always follows an award; the write is skipped when the
	// tier is unchanged.
	newTier := TierFor(u.KarmaPoints + points)
	if newTier != u.TrustTier {
		if err := users.SetTrustTier(ctx, userID, newTier); err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"user_id": userID,
			"tier":    newTier,
			"points":  u.KarmaPoints + points,
		}).Info("trust tier changed")
	}

	return nil
}

func (s *Impl) GrantWelcomeBonusInTx(ctx context.Context, tx *gorm.DB, userID uint) error {
	entries := s.entries.WithTx(tx)

	granted, err := entries.HasAction(ctx, userID, ActionWelcomeBonus)
	if err != nil {
		return err
	}
	if granted {
		return nil
	}
	return s.AwardInTx(ctx, tx, userID, ActionWelcomeBonus, WelcomeBonusPoints, "Welcome to the swap community")
}

func (s *Impl) Log(ctx context.Context, userID uint, limit int) ([]*karmarepo.KarmaEntry, error) {
	return s.entries.ListByUser(ctx, userID, limit)
}

func (s *Impl) Stats(ctx context.Context, userID uint) (Stats, error) {
	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	if u == nil {
		return Stats{}, common.ErrUserNotFound
	}

	current := TierFor(u.KarmaPoints)
	return Stats{
		Points:      u.KarmaPoints,
		TrustTier:   u.TrustTier,
		CurrentTier: current,
		NextTier:    NextTier(current),
		Progress:    TierProgress(u.KarmaPoints),
	}, nil
}

func (s *Impl) VerifyLedger(ctx context.Context, userID uint) error {
	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return common.ErrUserNotFound
	}

	sum, err := s.entries.SumPointsByUser(ctx, userID)
	if err != nil {
		return err
	}
	if sum != u.KarmaPoints {
		log.WithFields(log.Fields{
			"user_id":    userID,
			"ledger_sum": sum,
			"cached":     u.KarmaPoints,
		}).Error("karma ledger out of sync with cached points")
		return fmt.Errorf("%w: user %d ledger sum %d != cached %d",
			common.ErrInvariantViolation, userID, sum, u.KarmaPoints)
	}
	return nil
}
