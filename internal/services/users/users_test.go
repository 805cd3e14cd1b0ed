package users_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NejeNejeNeje/ropa-sub001/internal/common"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/memory"
	"github.com/NejeNejeNeje/ropa-sub001/internal/services/karma"
	"github.com/NejeNejeNeje/ropa-sub001/internal/services/users"
)

func TestRegisterGrantsWelcomeBonus(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	karmaService := karma.New(store, store.Users(), store.Karma())
	svc := users.New(store, store.Users(), karmaService)

	u, err := svc.Register(ctx, "ana")
	require.NoError(t, err)
	require.NotZero(t, u.ID)

	assert.Equal(t, karma.WelcomeBonusPoints, u.KarmaPoints)
	assert.Equal(t, karma.TierBronze, u.TrustTier)

	entries, err := karmaService.Log(ctx, u.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, karma.ActionWelcomeBonus, entries[0].Action)

	require.NoError(t, karmaService.VerifyLedger(ctx, u.ID))
}

func TestRegisterDuplicateNickname(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	karmaService := karma.New(store, store.Users(), store.Karma())
	svc := users.New(store, store.Users(), karmaService)

	_, err := svc.Register(ctx, "ana")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "ana")
	assert.ErrorIs(t, err, common.ErrDuplicateNickname)
}

func TestRegisterSeparateUsers(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	karmaService := karma.New(store, store.Users(), store.Karma())
	svc := users.New(store, store.Users(), karmaService)

	a, err := svc.Register(ctx, "ana")
	require.NoError(t, err)
	b, err := svc.Register(ctx, "ben")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, karma.WelcomeBonusPoints, b.KarmaPoints)
}
