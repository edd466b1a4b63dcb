package minter

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/pkg/logger"
	"github.com/dega-network/nft-engine/pkg/logger/slogx"
	"github.com/dega-network/nft-engine/pkg/signverify"
)

// UpdateSettings applies a partial settings update. Nil fields are left
// untouched. A new signer key must decode to a 33-byte compressed
// secp256k1 point before acceptance.
func (p *Processor) UpdateSettings(ctx context.Context, txCtx types.TxContext, msg UpdateSettingsMsg) ([]types.Event, error) {
	qtx, err := p.minterDg.BeginMinterTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := qtx.Rollback(ctx); err != nil {
			logger.WarnContext(ctx, "failed to rollback settings transaction", slogx.Error(err))
		}
	}()

	if err := p.requireAdmin(ctx, qtx, txCtx.Sender); err != nil {
		return nil, errors.WithStack(err)
	}

	settings, err := qtx.GetSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load minter settings")
	}

	event := types.NewEvent("wasm-dega_update_settings").
		AddAttribute("sender", txCtx.Sender.String())

	if msg.SignerPubKey != nil {
		if _, err := signverify.ParsePubKeyBase64(*msg.SignerPubKey); err != nil {
			return nil, errors.Wrap(err, "invalid signer public key")
		}
		settings.SignerPubKey = *msg.SignerPubKey
		event = event.AddAttribute("signer_pub_key", settings.SignerPubKey)
	}
	if msg.MintingPaused != nil {
		settings.MintingPaused = *msg.MintingPaused
		if settings.MintingPaused {
			event = event.AddAttribute("minting_paused", "true")
		} else {
			event = event.AddAttribute("minting_paused", "false")
		}
	}

	if err := qtx.SetSettings(ctx, *settings); err != nil {
		return nil, errors.Wrap(err, "failed to store minter settings")
	}
	if err := qtx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to commit settings transaction")
	}

	logger.InfoContext(ctx, "Minter settings updated",
		slogx.Stringer("sender", txCtx.Sender),
		slogx.Bool("minting_paused", settings.MintingPaused),
	)
	return []types.Event{event}, nil
}

// Config returns the current settings and the paired collection address.
// The collection address is empty until the instantiation reply has been
// processed.
func (p *Processor) Config(ctx context.Context) (*ConfigResponse, error) {
	settings, err := p.minterDg.GetSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load minter settings")
	}
	collectionAddress, err := p.minterDg.GetCollectionAddress(ctx)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			collectionAddress = ""
		} else {
			return nil, errors.Wrap(err, "failed to load collection address")
		}
	}
	return &ConfigResponse{
		Settings:          *settings,
		CollectionAddress: collectionAddress,
	}, nil
}
