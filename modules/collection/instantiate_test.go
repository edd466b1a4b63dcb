package collection

import (
	"context"
	"strings"
	"testing"

	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/modules/collection/internal/entity"
	"github.com/gaze-network/uint128"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newUninstantiatedEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newTestEnv(t)
	env.dg.st = newCollectionState()
	return env
}

func instantiateMsg() InstantiateMsg {
	return InstantiateMsg{
		Name:   "DEGA Originals",
		Symbol: "DEGAO",
		CollectionInfo: entity.CollectionInfo{
			Description:  "The original collection",
			Image:        "https://cdn.example.com/collection.png",
			ExternalLink: lo.ToPtr("https://example.com"),
		},
	}
}

func TestInstantiate(t *testing.T) {
	ctx := context.Background()
	env := newUninstantiatedEnv(t)
	msg := instantiateMsg()

	events, err := env.processor.Instantiate(ctx, env.txContext(env.owner), msg)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "wasm-collection_instantiate", events[0].Type)
	owner, ok := events[0].Attribute("owner")
	require.True(t, ok)
	require.Equal(t, env.owner, owner)

	info, err := env.dg.GetContractInfo(ctx)
	require.NoError(t, err)
	require.Equal(t, "DEGA Originals", info.Name)
	require.Equal(t, "DEGAO", info.Symbol)

	collectionInfo, err := env.dg.GetCollectionInfo(ctx)
	require.NoError(t, err)
	require.Equal(t, msg.CollectionInfo.Description, collectionInfo.Description)
	require.Equal(t, msg.CollectionInfo.Image, collectionInfo.Image)
	require.NotNil(t, collectionInfo.ExternalLink)

	storedOwner, err := env.dg.GetOwner(ctx)
	require.NoError(t, err)
	require.Equal(t, env.owner, storedOwner)
}

func TestInstantiateRequiresContractSender(t *testing.T) {
	ctx := context.Background()
	env := newUninstantiatedEnv(t)

	_, err := env.processor.Instantiate(ctx, env.txContext(accountAddress(t, 0x33)), instantiateMsg())
	require.ErrorIs(t, err, errs.Unauthorized)
	require.ErrorContains(t, err, "is not a contract")

	_, err = env.dg.GetContractInfo(ctx)
	require.ErrorIs(t, err, errs.NotFound)
}

func TestInstantiateContractQueryFailure(t *testing.T) {
	ctx := context.Background()
	env := newUninstantiatedEnv(t)
	env.querier.err = errs.SomethingWentWrong

	_, err := env.processor.Instantiate(ctx, env.txContext(env.owner), instantiateMsg())
	require.ErrorIs(t, err, errs.QueryFailure)
}

func TestInstantiateNotPayable(t *testing.T) {
	ctx := context.Background()
	env := newUninstantiatedEnv(t)
	txCtx := env.txContext(env.owner)
	txCtx.Funds = []types.Coin{types.NewCoin("inj", uint128.From64(1))}

	_, err := env.processor.Instantiate(ctx, txCtx, instantiateMsg())
	require.ErrorIs(t, err, errs.Validation)
	require.ErrorContains(t, err, "not payable")
}

func TestInstantiateInvalidInfo(t *testing.T) {
	ctx := context.Background()
	env := newUninstantiatedEnv(t)

	tests := []struct {
		name    string
		mutate  func(*InstantiateMsg)
		errText string
	}{
		{
			name: "description too long",
			mutate: func(msg *InstantiateMsg) {
				msg.CollectionInfo.Description = strings.Repeat("a", entity.MaxDescriptionLength+1)
			},
			errText: "description is longer than",
		},
		{
			name: "relative image url",
			mutate: func(msg *InstantiateMsg) {
				msg.CollectionInfo.Image = "/banner.png"
			},
			errText: "image is not a valid URL",
		},
		{
			name: "royalty share above one",
			mutate: func(msg *InstantiateMsg) {
				msg.CollectionInfo.RoyaltySettings = &entity.RoyaltySettings{
					PaymentAddress: accountAddress(t, 0x44),
					Share:          decimal.RequireFromString("1.01"),
				}
			},
			errText: "royalty share must not be greater than 100%",
		},
		{
			name: "negative royalty share",
			mutate: func(msg *InstantiateMsg) {
				msg.CollectionInfo.RoyaltySettings = &entity.RoyaltySettings{
					PaymentAddress: accountAddress(t, 0x44),
					Share:          decimal.RequireFromString("-0.1"),
				}
			},
			errText: "royalty share must not be negative",
		},
		{
			name: "bad royalty payment address",
			mutate: func(msg *InstantiateMsg) {
				msg.CollectionInfo.RoyaltySettings = &entity.RoyaltySettings{
					PaymentAddress: "nowhere",
					Share:          decimal.RequireFromString("0.05"),
				}
			},
			errText: "invalid royalty payment address",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := instantiateMsg()
			tt.mutate(&msg)
			_, err := env.processor.Instantiate(ctx, env.txContext(env.owner), msg)
			require.ErrorIs(t, err, errs.Validation)
			require.ErrorContains(t, err, tt.errText)
		})
	}
}
