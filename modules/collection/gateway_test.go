package collection

import (
	"context"
	"testing"

	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/core/types"
	minterdatagateway "github.com/dega-network/nft-engine/modules/minter/datagateway"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestGatewayInstantiate(t *testing.T) {
	ctx := context.Background()
	env := newUninstantiatedEnv(t)
	gateway := NewGateway(env.processor)

	address, err := gateway.Instantiate(ctx, types.Address(env.owner), minterdatagateway.InstantiateCollectionParams{
		Name:                  "DEGA Originals",
		Symbol:                "DEGAO",
		Description:           "The original collection",
		Image:                 "https://cdn.example.com/collection.png",
		RoyaltyPaymentAddress: lo.ToPtr(accountAddress(t, 0x44)),
		RoyaltyShare:          lo.ToPtr(decimal.RequireFromString("0.05")),
	})
	require.NoError(t, err)
	require.Equal(t, env.processor.Address(), address)

	info, err := env.processor.CollectionInfo(ctx)
	require.NoError(t, err)
	require.NotNil(t, info.RoyaltySettings)
	require.Equal(t, accountAddress(t, 0x44), info.RoyaltySettings.PaymentAddress)

	owner, err := env.dg.GetOwner(ctx)
	require.NoError(t, err)
	require.Equal(t, env.owner, owner)
}

func TestGatewayInstantiatePartialRoyalty(t *testing.T) {
	ctx := context.Background()
	env := newUninstantiatedEnv(t)
	gateway := NewGateway(env.processor)

	// royalty settings require both the address and the share
	_, err := gateway.Instantiate(ctx, types.Address(env.owner), minterdatagateway.InstantiateCollectionParams{
		Name:         "DEGA Originals",
		Symbol:       "DEGAO",
		Image:        "https://cdn.example.com/collection.png",
		RoyaltyShare: lo.ToPtr(decimal.RequireFromString("0.05")),
	})
	require.NoError(t, err)

	info, err := env.processor.CollectionInfo(ctx)
	require.NoError(t, err)
	require.Nil(t, info.RoyaltySettings)
}

func TestGatewayMint(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	gateway := NewGateway(env.processor)
	holder := accountAddress(t, 0x31)

	err := gateway.Mint(ctx, types.Address(env.owner), types.MintInstruction{
		Collection: env.processor.Address(),
		TokenID:    "1",
		Owner:      types.Address(holder),
		TokenURI:   lo.ToPtr("https://cdn.example.com/1.json"),
	})
	require.NoError(t, err)

	token, err := env.dg.GetToken(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, holder, token.Owner)

	// rejections propagate to the caller
	env.minterGw.paused = true
	err = gateway.Mint(ctx, types.Address(env.owner), types.MintInstruction{
		Collection: env.processor.Address(),
		TokenID:    "2",
		Owner:      types.Address(holder),
	})
	require.ErrorIs(t, err, errs.MintingPaused)
}
