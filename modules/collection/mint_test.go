package collection

import (
	"context"
	"testing"

	"github.com/dega-network/nft-engine/common/errs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestMint(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	holder := accountAddress(t, 0x31)

	events, err := env.processor.Mint(ctx, env.txContext(env.owner), MintMsg{
		TokenID:  "1",
		Owner:    holder,
		TokenURI: lo.ToPtr("https://cdn.example.com/1.json"),
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "wasm-collection_mint", events[0].Type)
	tokenID, ok := events[0].Attribute("token_id")
	require.True(t, ok)
	require.Equal(t, "1", tokenID)
	uri, ok := events[0].Attribute("token_uri")
	require.True(t, ok)
	require.Equal(t, "https://cdn.example.com/1.json", uri)

	token, err := env.dg.GetToken(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, holder, token.Owner)
	require.NotNil(t, token.URI)
	require.Equal(t, env.blockTime, token.MintedAt)
}

func TestMintRequiresCollectionOwner(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	// even a recognized minter admin cannot mint directly
	for _, sender := range []string{env.admin, accountAddress(t, 0x31), contractAddress(t, 0x77)} {
		_, err := env.processor.Mint(ctx, env.txContext(sender), MintMsg{
			TokenID: "1",
			Owner:   accountAddress(t, 0x31),
		})
		require.ErrorIs(t, err, errs.Unauthorized)
		require.ErrorContains(t, err, "is not the collection owner")
	}
}

func TestMintWhilePaused(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.minterGw.paused = true

	_, err := env.processor.Mint(ctx, env.txContext(env.owner), MintMsg{
		TokenID: "1",
		Owner:   accountAddress(t, 0x31),
	})
	require.ErrorIs(t, err, errs.MintingPaused)

	exists, err := env.dg.HasToken(ctx, "1")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestMintPauseQueryFailureIsNotPaused(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.minterGw.err = errs.SomethingWentWrong

	_, err := env.processor.Mint(ctx, env.txContext(env.owner), MintMsg{
		TokenID: "1",
		Owner:   accountAddress(t, 0x31),
	})
	require.ErrorIs(t, err, errs.QueryFailure)
	require.NotErrorIs(t, err, errs.MintingPaused)
}

func TestMintDuplicateTokenID(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedToken("1", accountAddress(t, 0x31), nil)

	_, err := env.processor.Mint(ctx, env.txContext(env.owner), MintMsg{
		TokenID: "1",
		Owner:   accountAddress(t, 0x32),
	})
	require.ErrorIs(t, err, errs.Conflict)
	require.ErrorContains(t, err, "token 1 already claimed")

	// the original owner is untouched
	token, err := env.dg.GetToken(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, accountAddress(t, 0x31), token.Owner)
}

func TestMintInvalidOwnerAddress(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.processor.Mint(ctx, env.txContext(env.owner), MintMsg{
		TokenID: "1",
		Owner:   "not-an-address",
	})
	require.ErrorIs(t, err, errs.Validation)
	require.ErrorContains(t, err, "invalid token owner address")
}

func TestExecuteDispatchesMint(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	events, err := env.processor.Execute(ctx, env.txContext(env.owner), ExecuteMsg{
		Mint: &MintMsg{TokenID: "1", Owner: accountAddress(t, 0x31)},
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "wasm-collection_mint", events[0].Type)
}
