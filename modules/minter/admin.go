package minter

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/pkg/logger"
	"github.com/dega-network/nft-engine/pkg/logger/slogx"
)

// UpdateAdmin adds or removes an admin. Only current admins may call it.
// The registry can never reach zero members through this operation: removal
// fails while fewer than two admins exist. Self-removal is allowed when the
// cardinality guard passes.
func (p *Processor) UpdateAdmin(ctx context.Context, txCtx types.TxContext, msg UpdateAdminMsg) ([]types.Event, error) {
	if err := types.ValidateAddress(msg.Address); err != nil {
		return nil, errors.Wrapf(err, "invalid admin address %q", msg.Address)
	}

	qtx, err := p.minterDg.BeginMinterTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := qtx.Rollback(ctx); err != nil {
			logger.WarnContext(ctx, "failed to rollback admin transaction", slogx.Error(err))
		}
	}()

	if err := p.requireAdmin(ctx, qtx, txCtx.Sender); err != nil {
		return nil, errors.WithStack(err)
	}

	targetIsAdmin, err := qtx.IsAdmin(ctx, msg.Address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check admin membership")
	}

	switch msg.Command {
	case AdminCommandAdd:
		if targetIsAdmin {
			return nil, errors.Wrapf(errs.Conflict, "address %s is already an admin", msg.Address)
		}
		if err := qtx.AddAdmin(ctx, msg.Address); err != nil {
			return nil, errors.Wrap(err, "failed to add admin")
		}
	case AdminCommandRemove:
		count, err := qtx.CountAdmins(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count admins")
		}
		if count < 2 {
			return nil, errors.Wrap(errs.Conflict, "cannot remove admin when one or none exists")
		}
		if !targetIsAdmin {
			return nil, errors.Wrapf(errs.NotFound, "address %s is not an admin", msg.Address)
		}
		if err := qtx.RemoveAdmin(ctx, msg.Address); err != nil {
			return nil, errors.Wrap(err, "failed to remove admin")
		}
	default:
		return nil, errors.Wrapf(errs.Unsupported, "unknown admin command %q", msg.Command)
	}

	if err := qtx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to commit admin transaction")
	}

	logger.InfoContext(ctx, "Admin registry updated",
		slogx.String("command", string(msg.Command)),
		slogx.String("address", msg.Address),
		slogx.Stringer("sender", txCtx.Sender),
	)

	event := types.NewEvent("wasm-dega_update_admin").
		AddAttribute("sender", txCtx.Sender.String()).
		AddAttribute("command", string(msg.Command)).
		AddAttribute("address", msg.Address)
	return []types.Event{event}, nil
}

// Admins lists the current admin set.
func (p *Processor) Admins(ctx context.Context) (*AdminsResponse, error) {
	admins, err := p.minterDg.GetAdmins(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admins")
	}
	return &AdminsResponse{Admins: admins}, nil
}

// IsAdmin reports whether address is in the admin set.
func (p *Processor) IsAdmin(ctx context.Context, address string) (*IsAdminResponse, error) {
	isAdmin, err := p.minterDg.IsAdmin(ctx, address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check admin membership")
	}
	return &IsAdminResponse{IsAdmin: isAdmin}, nil
}
