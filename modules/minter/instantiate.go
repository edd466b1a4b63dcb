package minter

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/modules/minter/datagateway"
	"github.com/dega-network/nft-engine/pkg/logger"
	"github.com/dega-network/nft-engine/pkg/logger/slogx"
	"github.com/dega-network/nft-engine/pkg/signverify"
)

// instantiateReplyID keys the collection sub-instantiation's reply. It is
// the only reply id the minter recognizes.
const instantiateReplyID uint64 = 1

// Instantiate bootstraps the minter: persists the validated settings and
// the single initial admin, sub-instantiates the paired collection contract
// and processes the resulting reply to capture its address.
func (p *Processor) Instantiate(ctx context.Context, txCtx types.TxContext, msg InstantiateMsg) ([]types.Event, error) {
	if _, err := signverify.ParsePubKeyBase64(msg.MinterParams.Settings.SignerPubKey); err != nil {
		return nil, errors.Wrap(err, "invalid signer public key")
	}
	if err := types.ValidateAddress(msg.MinterParams.InitialAdmin); err != nil {
		return nil, errors.Wrapf(err, "invalid initial admin address %q", msg.MinterParams.InitialAdmin)
	}
	if msg.Cw721ContractAdmin != nil {
		if err := types.ValidateAddress(*msg.Cw721ContractAdmin); err != nil {
			return nil, errors.Wrapf(err, "invalid collection contract admin address %q", *msg.Cw721ContractAdmin)
		}
	}

	qtx, err := p.minterDg.BeginMinterTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := qtx.Rollback(ctx); err != nil {
			logger.WarnContext(ctx, "failed to rollback instantiate transaction", slogx.Error(err))
		}
	}()

	if err := qtx.SetSettings(ctx, msg.MinterParams.Settings); err != nil {
		return nil, errors.Wrap(err, "failed to store minter settings")
	}
	if err := qtx.AddAdmin(ctx, msg.MinterParams.InitialAdmin); err != nil {
		return nil, errors.Wrap(err, "failed to store initial admin")
	}
	if err := qtx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to commit instantiate transaction")
	}

	info := msg.CollectionParams.Info
	params := datagateway.InstantiateCollectionParams{
		Name:         msg.CollectionParams.Name,
		Symbol:       msg.CollectionParams.Symbol,
		Description:  info.Description,
		Image:        info.Image,
		ExternalLink: info.ExternalLink,
		Label:        msg.Cw721ContractLabel,
		Admin:        msg.Cw721ContractAdmin,
	}
	if info.RoyaltySettings != nil {
		params.RoyaltyPaymentAddress = &info.RoyaltySettings.PaymentAddress
		share := info.RoyaltySettings.Share
		params.RoyaltyShare = &share
	}

	reply := Reply{ID: instantiateReplyID}
	collectionAddress, err := p.collection.Instantiate(ctx, p.self, params)
	if err != nil {
		detail := err.Error()
		reply.Error = &detail
	} else {
		reply.Result = &ReplyResult{ContractAddress: collectionAddress.String()}
	}

	replyEvents, err := p.Reply(ctx, reply)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	logger.InfoContext(ctx, "Minter instantiated",
		slogx.Stringer("sender", txCtx.Sender),
		slogx.String("initial_admin", msg.MinterParams.InitialAdmin),
		slogx.Stringer("collection_address", collectionAddress),
	)

	event := types.NewEvent("wasm-dega_instantiate").
		AddAttribute("sender", txCtx.Sender.String()).
		AddAttribute("initial_admin", msg.MinterParams.InitialAdmin).
		AddAttribute("collection_label", msg.Cw721ContractLabel)
	return append([]types.Event{event}, replyEvents...), nil
}

// Reply handles the platform-delivered result of the collection
// sub-instantiation. Only instantiateReplyID is recognized. The sub-call's
// own error detail is deliberately not echoed to the caller.
func (p *Processor) Reply(ctx context.Context, reply Reply) ([]types.Event, error) {
	if reply.ID != instantiateReplyID {
		return nil, errors.Wrapf(errs.Validation, "Invalid reply ID: %d", reply.ID)
	}
	if reply.Error != nil {
		logger.ErrorContext(ctx, "Collection instantiation sub-call failed",
			slogx.String("error", *reply.Error))
		return nil, errors.Wrap(errs.SomethingWentWrong, "Error instantiating collection contract")
	}
	if reply.Result == nil || reply.Result.ContractAddress == "" {
		return nil, errors.Wrap(errs.SomethingWentWrong, "Error instantiating collection contract")
	}
	if err := types.ValidateAddress(reply.Result.ContractAddress); err != nil {
		return nil, errors.Wrap(err, "invalid collection contract address in reply")
	}
	if err := p.minterDg.SetCollectionAddress(ctx, reply.Result.ContractAddress); err != nil {
		return nil, errors.Wrap(err, "failed to store collection address")
	}

	event := types.NewEvent("wasm-dega_reply").
		AddAttribute("collection_address", reply.Result.ContractAddress)
	return []types.Event{event}, nil
}
