// Package memory provides in-memory implementations of the repository
// interfaces and of db.Database, for tests that exercise service logic
// without a running postgres.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/circle"
	karmarepo "github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/karma"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/listing"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/match"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/swipe"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/user"
)

// Store holds all entities behind one mutex. Transactions are modeled as
// plain function calls: the store is not meant to reproduce isolation
// levels, only the data semantics.
type Store struct {
	mu sync.Mutex

	users    map[uint]*user.User
	listings map[uint]*listing.Listing
	swipes   map[[2]uint]*swipe.Swipe
	matches  []*match.Match
	entries  []*karmarepo.KarmaEntry
	circles  map[uint]*circle.SwapCircle
	rsvps    map[[2]uint]*circle.CircleRSVP

	nextUserID    uint
	nextListingID uint
	nextSwipeID   uint
	nextEntryID   uint
	nextCircleID  uint
	nextRSVPID    uint
}

func NewStore() *Store {
	return &Store{
		users:    make(map[uint]*user.User),
		listings: make(map[uint]*listing.Listing),
		swipes:   make(map[[2]uint]*swipe.Swipe),
		circles:  make(map[uint]*circle.SwapCircle),
		rsvps:    make(map[[2]uint]*circle.CircleRSVP),
	}
}

// Transaction satisfies db.Database. The callback receives a nil tx; the
// store's repositories return themselves from WithTx(nil).
func (s *Store) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func (s *Store) Users() user.UserRepository          { return &userRepo{s} }
func (s *Store) Listings() listing.ListingRepository { return &listingRepo{s} }
func (s *Store) Swipes() swipe.SwipeRepository       { return &swipeRepo{s} }
func (s *Store) Matches() match.MatchRepository      { return &matchRepo{s} }
func (s *Store) Karma() karmarepo.KarmaRepository    { return &karmaRepo{s} }
func (s *Store) Circles() circle.CircleRepository    { return &circleRepo{s} }

/*
USERS
*/

type userRepo struct{ s *Store }

func (r *userRepo) WithTx(tx *gorm.DB) user.UserRepository { return r }

func (r *userRepo) CreateUser(ctx context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Nickname == u.Nickname {
			return gorm.ErrDuplicatedKey
		}
	}
	r.s.nextUserID++
	u.ID = r.s.nextUserID
	u.CreatedAt = time.Now()
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id uint) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *userRepo) AddKarmaPoints(ctx context.Context, id uint, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		u.KarmaPoints += delta
	}
	return nil
}

func (r *userRepo) SetTrustTier(ctx context.Context, id uint, tier string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		u.TrustTier = tier
	}
	return nil
}

/*
LISTINGS
*/

type listingRepo struct{ s *Store }

func (r *listingRepo) WithTx(tx *gorm.DB) listing.ListingRepository { return r }

func (r *listingRepo) CreateListing(ctx context.Context, l *listing.Listing) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextListingID++
	l.ID = r.s.nextListingID
	cp := *l
	r.s.listings[l.ID] = &cp
	return nil
}

func (r *listingRepo) GetListingByID(ctx context.Context, id uint) (*listing.Listing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.listings[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *listingRepo) ActiveListingIDsByOwner(ctx context.Context, ownerID uint) ([]uint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ids []uint
	for _, l := range r.s.listings {
		if l.UserID == ownerID && l.IsActive {
			ids = append(ids, l.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

/*
SWIPES
*/

type swipeRepo struct{ s *Store }

func (r *swipeRepo) WithTx(tx *gorm.DB) swipe.SwipeRepository { return r }

func (r *swipeRepo) GetSwipe(ctx context.Context, swiperID, listingID uint) (*swipe.Swipe, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sw, ok := r.s.swipes[[2]uint{swiperID, listingID}]
	if !ok {
		return nil, nil
	}
	cp := *sw
	return &cp, nil
}

func (r *swipeRepo) UpsertSwipe(ctx context.Context, s *swipe.Swipe) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := [2]uint{s.SwiperID, s.ListingID}
	if existing, ok := r.s.swipes[key]; ok {
		s.ID = existing.ID
		s.CreatedAt = existing.CreatedAt
	} else {
		r.s.nextSwipeID++
		s.ID = r.s.nextSwipeID
		s.CreatedAt = time.Now()
	}
	cp := *s
	r.s.swipes[key] = &cp
	return nil
}

func (r *swipeRepo) FindReciprocal(ctx context.Context, swiperID uint, listingIDs []uint) (*swipe.Swipe, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range listingIDs {
		if sw, ok := r.s.swipes[[2]uint{swiperID, id}]; ok && swipe.IsInterested(sw.Direction) {
			cp := *sw
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *swipeRepo) CountBySwiper(ctx context.Context, swiperID uint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, sw := range r.s.swipes {
		if sw.SwiperID == swiperID {
			count++
		}
	}
	return count, nil
}

func (r *swipeRepo) CountInterestedBySwiper(ctx context.Context, swiperID uint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, sw := range r.s.swipes {
		if sw.SwiperID == swiperID && swipe.IsInterested(sw.Direction) {
			count++
		}
	}
	return count, nil
}

/*
MATCHES
*/

type matchRepo struct{ s *Store }

func (r *matchRepo) WithTx(tx *gorm.DB) match.MatchRepository { return r }

func (r *matchRepo) GetByListingPair(ctx context.Context, listing1, listing2 uint) (*match.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.matches {
		if (m.ListingAID == listing1 && m.ListingBID == listing2) ||
			(m.ListingAID == listing2 && m.ListingBID == listing1) {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *matchRepo) CreateMatch(ctx context.Context, m *match.Match) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m.CreatedAt = time.Now()
	cp := *m
	r.s.matches = append(r.s.matches, &cp)
	return nil
}

func (r *matchRepo) CountByUser(ctx context.Context, userID uint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, m := range r.s.matches {
		if m.UserAID == userID || m.UserBID == userID {
			count++
		}
	}
	return count, nil
}

/*
KARMA LEDGER
*/

type karmaRepo struct{ s *Store }

func (r *karmaRepo) WithTx(tx *gorm.DB) karmarepo.KarmaRepository { return r }

func (r *karmaRepo) AppendEntry(ctx context.Context, e *karmarepo.KarmaEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextEntryID++
	e.ID = r.s.nextEntryID
	e.CreatedAt = time.Now()
	cp := *e
	r.s.entries = append(r.s.entries, &cp)
	return nil
}

func (r *karmaRepo) ListByUser(ctx context.Context, userID uint, limit int) ([]*karmarepo.KarmaEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if limit <= 0 || limit > 50 {
		limit = 50
	}

	var out []*karmarepo.KarmaEntry
	for i := len(r.s.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if r.s.entries[i].UserID == userID {
			cp := *r.s.entries[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *karmaRepo) SumPointsByUser(ctx context.Context, userID uint) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sum := 0
	for _, e := range r.s.entries {
		if e.UserID == userID {
			sum += e.Points
		}
	}
	return sum, nil
}

func (r *karmaRepo) HasAction(ctx context.Context, userID uint, action string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.entries {
		if e.UserID == userID && e.Action == action {
			return true, nil
		}
	}
	return false, nil
}

/*
SWAP CIRCLES
*/

type circleRepo struct{ s *Store }

func (r *circleRepo) WithTx(tx *gorm.DB) circle.CircleRepository { return r }

func (r *circleRepo) CreateCircle(ctx context.Context, c *circle.SwapCircle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextCircleID++
	c.ID = r.s.nextCircleID
	cp := *c
	r.s.circles[c.ID] = &cp
	return nil
}

func (r *circleRepo) GetCircleByID(ctx context.Context, id uint) (*circle.SwapCircle, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.circles[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *circleRepo) SetFull(ctx context.Context, circleID uint, full bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.circles[circleID]; ok {
		c.IsFull = full
	}
	return nil
}

func (r *circleRepo) CountRSVPs(ctx context.Context, circleID uint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, rsvp := range r.s.rsvps {
		if rsvp.CircleID == circleID {
			count++
		}
	}
	return count, nil
}

func (r *circleRepo) HasRSVP(ctx context.Context, userID, circleID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.rsvps[[2]uint{userID, circleID}]
	return ok, nil
}

func (r *circleRepo) CreateRSVP(ctx context.Context, rsvp *circle.CircleRSVP) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextRSVPID++
	rsvp.ID = r.s.nextRSVPID
	rsvp.CreatedAt = time.Now()
	cp := *rsvp
	r.s.rsvps[[2]uint{rsvp.UserID, rsvp.CircleID}] = &cp
	return nil
}

func (r *circleRepo) DeleteRSVP(ctx context.Context, userID, circleID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := [2]uint{userID, circleID}
	if _, ok := r.s.rsvps[key]; !ok {
		return false, nil
	}
	delete(r.s.rsvps, key)
	return true, nil
}
