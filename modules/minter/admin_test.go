package minter

import (
	"context"
	"testing"

	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/stretchr/testify/require"
)

func adminTxContext(env *testEnv) types.TxContext {
	return types.TxContext{
		Sender:    types.Address(env.admin),
		BlockTime: env.blockTime,
	}
}

func TestUpdateAdminAdd(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	newAdmin := accountAddress(t, 0x21)

	events, err := env.processor.UpdateAdmin(ctx, adminTxContext(env), UpdateAdminMsg{
		Address: newAdmin,
		Command: AdminCommandAdd,
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "wasm-dega_update_admin", events[0].Type)

	isAdmin, err := env.processor.IsAdmin(ctx, newAdmin)
	require.NoError(t, err)
	require.True(t, isAdmin.IsAdmin)

	admins, err := env.processor.Admins(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{env.admin, newAdmin}, admins.Admins)
}

func TestUpdateAdminAddDuplicate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.processor.UpdateAdmin(ctx, adminTxContext(env), UpdateAdminMsg{
		Address: env.admin,
		Command: AdminCommandAdd,
	})
	require.ErrorIs(t, err, errs.Conflict)
	require.ErrorContains(t, err, "already an admin")
}

func TestUpdateAdminRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	stranger := accountAddress(t, 0x22)

	_, err := env.processor.UpdateAdmin(ctx, types.TxContext{Sender: types.Address(stranger)}, UpdateAdminMsg{
		Address: accountAddress(t, 0x23),
		Command: AdminCommandAdd,
	})
	require.ErrorIs(t, err, errs.Unauthorized)
}

func TestUpdateAdminRemoveLastFails(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	// the sole admin cannot remove itself
	_, err := env.processor.UpdateAdmin(ctx, adminTxContext(env), UpdateAdminMsg{
		Address: env.admin,
		Command: AdminCommandRemove,
	})
	require.ErrorIs(t, err, errs.Conflict)
	require.ErrorContains(t, err, "cannot remove admin when one or none exists")
}

func TestUpdateAdminRemove(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	second := accountAddress(t, 0x24)

	_, err := env.processor.UpdateAdmin(ctx, adminTxContext(env), UpdateAdminMsg{
		Address: second,
		Command: AdminCommandAdd,
	})
	require.NoError(t, err)

	// with two admins, self-removal is allowed
	_, err = env.processor.UpdateAdmin(ctx, adminTxContext(env), UpdateAdminMsg{
		Address: env.admin,
		Command: AdminCommandRemove,
	})
	require.NoError(t, err)

	admins, err := env.processor.Admins(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{second}, admins.Admins)
}

func TestUpdateAdminRemoveUnknown(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	second := accountAddress(t, 0x25)

	_, err := env.processor.UpdateAdmin(ctx, adminTxContext(env), UpdateAdminMsg{
		Address: second,
		Command: AdminCommandAdd,
	})
	require.NoError(t, err)

	_, err = env.processor.UpdateAdmin(ctx, adminTxContext(env), UpdateAdminMsg{
		Address: accountAddress(t, 0x26),
		Command: AdminCommandRemove,
	})
	require.ErrorIs(t, err, errs.NotFound)
	require.ErrorContains(t, err, "is not an admin")
}

func TestUpdateAdminInvalidInputs(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.processor.UpdateAdmin(ctx, adminTxContext(env), UpdateAdminMsg{
		Address: "notanaddress",
		Command: AdminCommandAdd,
	})
	require.ErrorIs(t, err, errs.Validation)

	_, err = env.processor.UpdateAdmin(ctx, adminTxContext(env), UpdateAdminMsg{
		Address: accountAddress(t, 0x27),
		Command: AdminCommand("promote"),
	})
	require.ErrorIs(t, err, errs.Unsupported)
}
