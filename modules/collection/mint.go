package collection

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/modules/collection/datagateway"
	"github.com/dega-network/nft-engine/pkg/logger"
	"github.com/dega-network/nft-engine/pkg/logger/slogx"
)

// Mint writes a new token into the ledger. Only the owning minter contract
// may call it, and only while the minter reports minting as not paused. A
// failure of the pause query is its own error, distinct from the paused
// rejection, so a broken minter never silently opens the gate.
func (p *Processor) Mint(ctx context.Context, txCtx types.TxContext, msg MintMsg) ([]types.Event, error) {
	if err := p.requireOwner(ctx, txCtx.Sender); err != nil {
		return nil, errors.WithStack(err)
	}

	paused, err := p.minterGateway.MintingPaused(ctx)
	if err != nil {
		return nil, errors.Wrapf(errs.QueryFailure, "error during query for minter settings: %v", err)
	}
	if paused {
		return nil, errors.WithStack(errs.MintingPaused)
	}

	if err := types.ValidateAddress(msg.Owner); err != nil {
		return nil, errors.Wrapf(err, "invalid token owner address %q", msg.Owner)
	}

	exists, err := p.ledger.HasToken(ctx, msg.TokenID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check token existence")
	}
	if exists {
		return nil, errors.Wrapf(errs.Conflict, "token %s already claimed", msg.TokenID)
	}

	err = p.ledger.MintToken(ctx, datagateway.MintTokenParams{
		TokenID:  msg.TokenID,
		Owner:    msg.Owner,
		URI:      msg.TokenURI,
		MintedAt: txCtx.BlockTime,
	})
	if err != nil {
		if errors.Is(err, errs.Conflict) {
			return nil, errors.Wrapf(errs.Conflict, "token %s already claimed", msg.TokenID)
		}
		return nil, errors.Wrap(err, "failed to mint token")
	}

	logger.InfoContext(ctx, "Token minted",
		slogx.String("token_id", msg.TokenID),
		slogx.String("owner", msg.Owner),
	)

	event := types.NewEvent("wasm-collection_mint").
		AddAttribute("sender", txCtx.Sender.String()).
		AddAttribute("token_id", msg.TokenID).
		AddAttribute("owner", msg.Owner)
	if msg.TokenURI != nil {
		event = event.AddAttribute("token_uri", *msg.TokenURI)
	}
	return []types.Event{event}, nil
}
