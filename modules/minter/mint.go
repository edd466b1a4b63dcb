package minter

import (
	"context"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/modules/minter/datagateway"
	mintvalidator "github.com/dega-network/nft-engine/modules/minter/internal/validator/mint"
	"github.com/dega-network/nft-engine/pkg/logger"
	"github.com/dega-network/nft-engine/pkg/logger/slogx"
)

// Mint settles a signed mint request: it runs the check chain in order,
// burns the request's UUID, charges the exact attached payment, mints on
// the paired collection contract and forwards the proceeds to the request's
// primary sale recipient.
//
// The UUID burn is committed in its own transaction before the payment and
// collection checks run. A request that fails a later check has still
// permanently consumed its nonce, so a rejected request cannot be
// resubmitted with altered late-stage fields.
func (p *Processor) Mint(ctx context.Context, txCtx types.TxContext, msg MintMsg) ([]types.Event, error) {
	request := msg.Request
	validator := p.validator()

	settings, err := p.minterDg.GetSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load minter settings")
	}
	if err := validator.NotPaused(settings); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := validator.VerifySignature(&request, msg.Signature, settings.SignerPubKey); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := validator.ValidRecipient(request.To); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := validator.WithinValidityWindow(&request, txCtx.BlockTime); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := p.burnNonce(ctx, validator, request.UUID); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := validator.ExactPayment(&request, txCtx.Funds); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := validator.ValidURI(request.URI); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := validator.ValidSaleRecipient(request.PrimarySaleRecipient); err != nil {
		return nil, errors.WithStack(err)
	}

	collectionAddress, err := p.minterDg.GetCollectionAddress(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load collection address")
	}
	if err := validator.MatchesCollection(&request, collectionAddress); err != nil {
		return nil, errors.WithStack(err)
	}

	qtx, err := p.minterDg.BeginMinterTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := qtx.Rollback(ctx); err != nil {
			logger.WarnContext(ctx, "failed to rollback mint transaction", slogx.Error(err))
		}
	}()

	tokenIndex, err := qtx.NextTokenIndex(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to advance token index")
	}
	tokenID := strconv.FormatUint(tokenIndex, 10)

	owner := types.Address(request.To)
	saleRecipient := types.Address(request.PrimarySaleRecipient)

	mintInstruction := types.MintInstruction{
		Collection: types.Address(collectionAddress),
		TokenID:    tokenID,
		Owner:      owner,
		TokenURI:   &request.URI,
	}
	if err := p.collection.Mint(ctx, p.self, mintInstruction); err != nil {
		return nil, errors.Wrap(err, "collection mint call failed")
	}
	if err := p.bank.Send(ctx, p.self, saleRecipient, txCtx.Funds); err != nil {
		return nil, errors.Wrap(err, "payment forward failed")
	}

	payment := txCtx.Funds[0]
	err = qtx.AddTransfer(ctx, datagateway.AddTransferParams{
		Sender:    p.self.String(),
		Recipient: saleRecipient.String(),
		Denom:     payment.Denom,
		Amount:    payment.Amount,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record payment forward")
	}

	err = qtx.AddMintRecord(ctx, datagateway.AddMintRecordParams{
		TokenID:       tokenIndex,
		UUID:          request.UUID,
		Sender:        txCtx.Sender.String(),
		Recipient:     request.To,
		URI:           request.URI,
		Price:         request.Price,
		Currency:      request.Currency,
		Collection:    collectionAddress,
		SaleRecipient: request.PrimarySaleRecipient,
		Signature:     msg.Signature,
		MintedAt:      txCtx.BlockTime,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record mint")
	}

	if err := qtx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to commit mint transaction")
	}

	logger.InfoContext(ctx, "Mint request settled",
		slogx.String("token_id", tokenID),
		slogx.String("uuid", request.UUID),
		slogx.String("recipient", request.To),
	)

	event := types.NewEvent("wasm-dega_mint").
		AddAttribute("sender", txCtx.Sender.String()).
		AddAttribute("signature", msg.Signature).
		AddAttribute("token_id", tokenID).
		AddAttribute("collection_address", collectionAddress).
		AddAttribute("request_to", request.To).
		AddAttribute("request_primary_sale_recipient", request.PrimarySaleRecipient).
		AddAttribute("request_uri", request.URI).
		AddAttribute("request_price", request.Price.String()).
		AddAttribute("request_currency", request.Currency).
		AddAttribute("request_validity_start", strconv.FormatUint(request.ValidityStartTimestamp, 10)).
		AddAttribute("request_validity_end", strconv.FormatUint(request.ValidityEndTimestamp, 10)).
		AddAttribute("request_uuid", request.UUID).
		AddAttribute("request_collection", request.Collection).
		AddAttribute("block_time", strconv.FormatInt(txCtx.BlockTime.Unix(), 10))
	return []types.Event{event}, nil
}

// burnNonce checks nonce freshness and consumes it in its own committed
// transaction, so the burn survives later check failures.
func (p *Processor) burnNonce(ctx context.Context, validator *mintvalidator.Validator, nonce string) error {
	qtx, err := p.minterDg.BeginMinterTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin nonce transaction")
	}
	defer func() {
		if err := qtx.Rollback(ctx); err != nil {
			logger.WarnContext(ctx, "failed to rollback nonce transaction", slogx.Error(err))
		}
	}()
	if err := validator.FreshNonce(ctx, qtx, nonce); err != nil {
		return errors.WithStack(err)
	}
	if err := qtx.AddNonce(ctx, nonce); err != nil {
		return errors.Wrap(err, "failed to register UUID")
	}
	if err := qtx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit nonce transaction")
	}
	return nil
}
