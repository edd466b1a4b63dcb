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

// UpdateCollectionInfo applies a partial collection-info update.
// Authorization is delegated to the paired minter's admin registry: the
// caller must be recognized as a minter admin, and a failure of that query
// fails the update rather than defaulting. Absent fields stay unchanged;
// an explicit null clears the two double-optional fields.
func (p *Processor) UpdateCollectionInfo(ctx context.Context, txCtx types.TxContext, msg UpdateCollectionInfoMsg) ([]types.Event, error) {
	isAdmin, err := p.adminOracle.IsAdmin(ctx, txCtx.Sender.String())
	if err != nil {
		return nil, errors.Wrapf(errs.QueryFailure, "error during query for minter admins: %v", err)
	}
	if !isAdmin {
		return nil, errors.Wrapf(errs.Unauthorized, "address %s is not a minter admin", txCtx.Sender)
	}

	qtx, err := p.collectionDg.BeginCollectionTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := qtx.Rollback(ctx); err != nil {
			logger.WarnContext(ctx, "failed to rollback collection info transaction", slogx.Error(err))
		}
	}()

	info, err := qtx.GetCollectionInfo(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load collection info")
	}

	validator := p.validator()
	event := types.NewEvent("wasm-collection_update_info").
		AddAttribute("sender", txCtx.Sender.String())

	if msg.Description != nil {
		if err := validator.Description(*msg.Description); err != nil {
			return nil, errors.WithStack(err)
		}
		info.Description = *msg.Description
		event = event.AddAttribute("description", info.Description)
	}
	if msg.Image != nil {
		if err := validator.ImageURL(*msg.Image); err != nil {
			return nil, errors.WithStack(err)
		}
		info.Image = *msg.Image
		event = event.AddAttribute("image", info.Image)
	}
	if msg.ExternalLink.Set {
		if msg.ExternalLink.Value != nil {
			if err := validator.ExternalLinkURL(*msg.ExternalLink.Value); err != nil {
				return nil, errors.WithStack(err)
			}
			info.ExternalLink = msg.ExternalLink.Value
			event = event.AddAttribute("external_link", *info.ExternalLink)
		} else {
			info.ExternalLink = nil
			event = event.AddAttribute("external_link", "")
		}
	}
	if msg.RoyaltySettings.Set {
		if msg.RoyaltySettings.Value != nil {
			settings := entity.RoyaltySettings{
				PaymentAddress: msg.RoyaltySettings.Value.PaymentAddress,
				Share:          msg.RoyaltySettings.Value.Share,
			}
			if err := validator.Royalty(settings); err != nil {
				return nil, errors.WithStack(err)
			}
			info.RoyaltySettings = &settings
			event = event.
				AddAttribute("royalty_payment_address", settings.PaymentAddress).
				AddAttribute("royalty_share", settings.Share.String())
		} else {
			info.RoyaltySettings = nil
			event = event.AddAttribute("royalty_settings", "")
		}
	}

	if err := qtx.SetCollectionInfo(ctx, *info); err != nil {
		return nil, errors.Wrap(err, "failed to store collection info")
	}
	if err := qtx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to commit collection info transaction")
	}

	logger.InfoContext(ctx, "Collection info updated", slogx.Stringer("sender", txCtx.Sender))
	return []types.Event{event}, nil
}

// CollectionInfo returns the stored collection metadata.
func (p *Processor) CollectionInfo(ctx context.Context) (*CollectionInfoResponse, error) {
	info, err := p.collectionDg.GetCollectionInfo(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load collection info")
	}
	return &CollectionInfoResponse{
		Description:     info.Description,
		Image:           info.Image,
		ExternalLink:    info.ExternalLink,
		RoyaltySettings: info.RoyaltySettings,
	}, nil
}
