package collection

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/modules/collection/internal/entity"
	"github.com/dega-network/nft-engine/pkg/logger"
	"github.com/dega-network/nft-engine/pkg/logger/slogx"
)

// Instantiate creates the collection's state. Only a contract address may
// instantiate a collection, so a plain externally-owned account cannot
// create one outside a minter. The instantiating contract becomes the
// collection's owner. Non-payable.
func (p *Processor) Instantiate(ctx context.Context, txCtx types.TxContext, msg InstantiateMsg) ([]types.Event, error) {
	isContract, err := p.contractInfoQr.IsContract(ctx, txCtx.Sender.String())
	if err != nil {
		return nil, errors.Wrapf(errs.QueryFailure, "error during query for contract info of %s: %v", txCtx.Sender, err)
	}
	if !isContract {
		return nil, errors.Wrapf(errs.Unauthorized, "collection instantiator %s is not a contract", txCtx.Sender)
	}
	if len(txCtx.Funds) > 0 {
		return nil, errors.Wrap(errs.Validation, "collection instantiation is not payable")
	}
	if err := p.validator().Info(msg.CollectionInfo); err != nil {
		return nil, errors.WithStack(err)
	}

	qtx, err := p.collectionDg.BeginCollectionTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := qtx.Rollback(ctx); err != nil {
			logger.WarnContext(ctx, "failed to rollback instantiate transaction", slogx.Error(err))
		}
	}()

	err = qtx.SetContractInfo(ctx, entity.ContractInfo{
		Name:   msg.Name,
		Symbol: msg.Symbol,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store contract info")
	}
	if err := qtx.SetCollectionInfo(ctx, msg.CollectionInfo); err != nil {
		return nil, errors.Wrap(err, "failed to store collection info")
	}
	if err := qtx.SetOwner(ctx, txCtx.Sender.String()); err != nil {
		return nil, errors.Wrap(err, "failed to store collection owner")
	}
	if err := qtx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to commit instantiate transaction")
	}

	logger.InfoContext(ctx, "Collection instantiated",
		slogx.String("name", msg.Name),
		slogx.String("symbol", msg.Symbol),
		slogx.Stringer("owner", txCtx.Sender),
	)

	event := types.NewEvent("wasm-collection_instantiate").
		AddAttribute("owner", txCtx.Sender.String()).
		AddAttribute("name", msg.Name).
		AddAttribute("symbol", msg.Symbol)
	return []types.Event{event}, nil
}
