package circles_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NejeNejeNeje/ropa-sub001/internal/common"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/circle"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/memory"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/user"
	"github.com/NejeNejeNeje/ropa-sub001/internal/services/circles"
	"github.com/NejeNejeNeje/ropa-sub001/internal/services/karma"
)

type fixture struct {
	store *memory.Store
	svc   circles.Service
	karma karma.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	karmaService := karma.New(store, store.Users(), store.Karma())
	return &fixture{
		store: store,
		svc:   circles.New(store, store.Circles(), karmaService),
		karma: karmaService,
	}
}

func (f *fixture) user(t *testing.T, nickname string) *user.User {
	t.Helper()
	u := &user.User{Nickname: nickname, TrustTier: karma.TierBronze}
	require.NoError(t, f.store.Users().CreateUser(context.Background(), u))
	return u
}

func (f *fixture) circle(t *testing.T, capacity int) *circle.SwapCircle {
	t.Helper()
	c := &circle.SwapCircle{Title: "Autumn swap", Capacity: capacity}
	require.NoError(t, f.store.Circles().CreateCircle(context.Background(), c))
	return c
}

func TestRSVPCapacityScenario(t *testing.T) {
	// capacity=2: X succeeds (not full, +30 karma), Y fills it, Z rejected.
	ctx := context.Background()
	f := newFixture(t)
	x := f.user(t, "xena")
	y := f.user(t, "yuri")
	z := f.user(t, "zoe")
	c := f.circle(t, 2)

	require.NoError(t, f.svc.RSVP(ctx, x.ID, c.ID))
	fresh, err := f.store.Circles().GetCircleByID(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, fresh.IsFull)

	xUser, err := f.store.Users().GetUserByID(ctx, x.ID)
	require.NoError(t, err)
	assert.Equal(t, karma.CircleAttendedPoints, xUser.KarmaPoints)
	require.NoError(t, f.karma.VerifyLedger(ctx, x.ID))

	require.NoError(t, f.svc.RSVP(ctx, y.ID, c.ID))
	fresh, err = f.store.Circles().GetCircleByID(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, fresh.IsFull)

	err = f.svc.RSVP(ctx, z.ID, c.ID)
	assert.ErrorIs(t, err, common.ErrCircleFull)

	count, err := f.store.Circles().CountRSVPs(ctx, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count, "capacity bound holds")
}

func TestRSVPCircleNotFound(t *testing.T) {
	f := newFixture(t)
	x := f.user(t, "xena")

	err := f.svc.RSVP(context.Background(), x.ID, 404)
	assert.ErrorIs(t, err, common.ErrCircleNotFound)
}

func TestRSVPDuplicate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	x := f.user(t, "xena")
	c := f.circle(t, 5)

	require.NoError(t, f.svc.RSVP(ctx, x.ID, c.ID))
	err := f.svc.RSVP(ctx, x.ID, c.ID)
	assert.ErrorIs(t, err, common.ErrDuplicateRSVP)

	// duplicate attempt must not award karma again
	xUser, err := f.store.Users().GetUserByID(ctx, x.ID)
	require.NoError(t, err)
	assert.Equal(t, karma.CircleAttendedPoints, xUser.KarmaPoints)
}

func TestCancelReopensCircle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	x := f.user(t, "xena")
	c := f.circle(t, 1)

	require.NoError(t, f.svc.RSVP(ctx, x.ID, c.ID))
	fresh, err := f.store.Circles().GetCircleByID(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, fresh.IsFull)

	require.NoError(t, f.svc.CancelRSVP(ctx, x.ID, c.ID))
	fresh, err = f.store.Circles().GetCircleByID(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, fresh.IsFull, "is_full recomputed from the actual count")

	count, err := f.store.Circles().CountRSVPs(ctx, c.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCancelRecomputesNotAssumes(t *testing.T) {
	// Two slots freed and refilled around a cancel: the flag must track the
	// real count, not be hard-coded false.
	ctx := context.Background()
	f := newFixture(t)
	x := f.user(t, "xena")
	y := f.user(t, "yuri")
	c := f.circle(t, 2)

	require.NoError(t, f.svc.RSVP(ctx, x.ID, c.ID))
	require.NoError(t, f.svc.RSVP(ctx, y.ID, c.ID))

	require.NoError(t, f.svc.CancelRSVP(ctx, x.ID, c.ID))
	fresh, err := f.store.Circles().GetCircleByID(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, fresh.IsFull)

	// refill, then the count is at capacity again
	require.NoError(t, f.svc.RSVP(ctx, x.ID, c.ID))
	fresh, err = f.store.Circles().GetCircleByID(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, fresh.IsFull)
}

func TestCancelRSVPNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	x := f.user(t, "xena")
	c := f.circle(t, 2)

	err := f.svc.CancelRSVP(ctx, x.ID, c.ID)
	assert.ErrorIs(t, err, common.ErrRSVPNotFound)
}

func TestCancelRSVPMissingCircle(t *testing.T) {
	f := newFixture(t)
	x := f.user(t, "xena")

	err := f.svc.CancelRSVP(context.Background(), x.ID, 404)
	assert.ErrorIs(t, err, common.ErrRSVPNotFound)
}

func TestRSVPAfterCancelAwardsAgain(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	x := f.user(t, "xena")
	c := f.circle(t, 2)

	require.NoError(t, f.svc.RSVP(ctx, x.ID, c.ID))
	require.NoError(t, f.svc.CancelRSVP(ctx, x.ID, c.ID))
	require.NoError(t, f.svc.RSVP(ctx, x.ID, c.ID))

	xUser, err := f.store.Users().GetUserByID(ctx, x.ID)
	require.NoError(t, err)
	assert.Equal(t, 2*karma.CircleAttendedPoints, xUser.KarmaPoints)
	require.NoError(t, f.karma.VerifyLedger(ctx, x.ID))
}
