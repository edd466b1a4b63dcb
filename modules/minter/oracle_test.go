package minter

import (
	"context"
	"testing"

	"github.com/dega-network/nft-engine/common/errs"
	"github.com/stretchr/testify/require"
)

func TestAdminOracle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	oracle := NewAdminOracle(env.dg)

	isAdmin, err := oracle.IsAdmin(ctx, env.admin)
	require.NoError(t, err)
	require.True(t, isAdmin)

	isAdmin, err = oracle.IsAdmin(ctx, accountAddress(t, 0x99))
	require.NoError(t, err)
	require.False(t, isAdmin)

	paused, err := oracle.MintingPaused(ctx)
	require.NoError(t, err)
	require.False(t, paused)

	env.dg.st.settings.MintingPaused = true
	paused, err = oracle.MintingPaused(ctx)
	require.NoError(t, err)
	require.True(t, paused)
}

func TestAdminOracleBeforeInstantiation(t *testing.T) {
	ctx := context.Background()
	env := newUninstantiatedEnv(t)
	oracle := NewAdminOracle(env.dg)

	_, err := oracle.MintingPaused(ctx)
	require.ErrorIs(t, err, errs.NotFound)
}
