// Package swipes turns one-sided swipe actions into mutual matches. The
// swipe upsert, the reciprocity lookup and the deduplicated match insert run
// in a single transaction so two concurrent reciprocal swipes cannot both
// race past the dedup check.
package swipes

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/NejeNejeNeje/ropa-sub001/internal/common"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/listing"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/match"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/swipe"
	"github.com/NejeNejeNeje/ropa-sub001/internal/services/karma"
)

// Result is what a recorded swipe produced. Match is set only when Matched.
type Result struct {
	Swipe   *swipe.Swipe `json:"swipe"`
	Matched bool         `json:"matched"`
	Match   *match.Match `json:"match,omitempty"`
}

// Stats summarizes a user's swiping. Rights counts the interested swipes
// (RIGHT and SUPER); MatchRate is matches per interested swipe, in percent.
type Stats struct {
	Total     int64   `json:"total"`
	Rights    int64   `json:"rights"`
	MatchRate float64 `json:"match_rate"`
}

//go:generate mockgen -source=swipes.go -destination=mocks/swipes_mock.go -package=mocks

type Service interface {
	RecordSwipe(ctx context.Context, swiperID, listingID uint, direction string) (Result, error)
	Stats(ctx context.Context, swiperID uint) (Stats, error)
}

type Impl struct {
	db       db.Database
	listings listing.ListingRepository
	swipes   swipe.SwipeRepository
	matches  match.MatchRepository
	karma    karma.Service
}

func New(
	database db.Database,
	listings listing.ListingRepository,
	swipes swipe.SwipeRepository,
	matches match.MatchRepository,
	karmaService karma.Service,
) Service {
	return &Impl{
		db:       database,
		listings: listings,
		swipes:   swipes,
		matches:  matches,
		karma:    karmaService,
	}
}

func (s *Impl) RecordSwipe(ctx context.Context, swiperID, listingID uint, direction string) (Result, error) {
	if !swipe.ValidDirection(direction) {
		return Result{}, fmt.Errorf("unknown swipe direction %q", direction)
	}

	var res Result
	err := s.db.Transaction(ctx, func(tx *gorm.DB) error {
		listings := s.listings.WithTx(tx)
		swipes := s.swipes.WithTx(tx)

		target, err := listings.GetListingByID(ctx, listingID)
		if err != nil {
			return err
		}
		if target == nil || !target.IsActive {
			return common.ErrListingNotFound
		}
		if target.UserID == swiperID {
			return common.ErrSelfSwipeForbidden
		}

		sw := &swipe.Swipe{
			SwiperID:  swiperID,
			ListingID: listingID,
			Direction: direction,
		}
		if err := swipes.UpsertSwipe(ctx, sw); err != nil {
			return err
		}
		res.Swipe = sw

		// A pass never triggers matching.
		if !swipe.IsInterested(direction) {
			return nil
		}

		return s.detectMatch(ctx, tx, &res, sw, target.UserID)
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// detectMatch looks for an interested swipe by the listing owner on one of
// the swiper's own active listings and, on a hit, ensures exactly one match
// row exists for that listing pair. Any one qualifying opposite swipe is
// sufficient; dedup keys on the specific pair, so the pick is order-safe.
func (s *Impl) detectMatch(ctx context.Context, tx *gorm.DB, res *Result, sw *swipe.Swipe, ownerID uint) error {
	listings := s.listings.WithTx(tx)
	swipes := s.swipes.WithTx(tx)
	matches := s.matches.WithTx(tx)

	ownIDs, err := listings.ActiveListingIDsByOwner(ctx, sw.SwiperID)
	if err != nil {
		return err
	}
	reciprocal, err := swipes.FindReciprocal(ctx, ownerID, ownIDs)
	if err != nil {
		return err
	}
	if reciprocal == nil {
		return nil
	}

	// Dedup is order-insensitive on the listing pair, so whichever side
	// swiped second observes the same row.
	existing, err := matches.GetByListingPair(ctx, sw.ListingID, reciprocal.ListingID)
	if err != nil {
		return err
	}
	if existing != nil {
		res.Matched = true
		res.Match = existing
		return nil
	}

	m := &match.Match{
		ID:         uuid.NewString(),
		UserAID:    sw.SwiperID,
		ListingAID: sw.ListingID,
		UserBID:    ownerID,
		ListingBID: reciprocal.ListingID,
		Status:     match.StatusPending,
	}
	if err := matches.CreateMatch(ctx, m); err != nil {
		return err
	}

	for _, userID := range []uint{sw.SwiperID, ownerID} {
		if err := s.karma.AwardInTx(ctx, tx, userID, karma.ActionMatchMade,
			karma.MatchMadePoints, "Matched on a swap"); err != nil {
			return err
		}
	}

	log.WithFields(log.Fields{
		"match_id":  m.ID,
		"user_a":    m.UserAID,
		"user_b":    m.UserBID,
		"listing_a": m.ListingAID,
		"listing_b": m.ListingBID,
	}).Info("match created")

	res.Matched = true
	res.Match = m
	return nil
}

func (s *Impl) Stats(ctx context.Context, swiperID uint) (Stats, error) {
	total, err := s.swipes.CountBySwiper(ctx, swiperID)
	if err != nil {
		return Stats{}, err
	}
	rights, err := s.swipes.CountInterestedBySwiper(ctx, swiperID)
	if err != nil {
		return Stats{}, err
	}

	var rate float64
	if rights > 0 {
		matched, err := s.matches.CountByUser(ctx, swiperID)
		if err != nil {
			return Stats{}, err
		}
		rate = float64(matched) / float64(rights) * 100
	}

	return Stats{Total: total, Rights: rights, MatchRate: rate}, nil
}
