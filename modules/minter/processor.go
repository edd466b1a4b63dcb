package minter

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/modules/minter/datagateway"
	mintvalidator "github.com/dega-network/nft-engine/modules/minter/internal/validator/mint"
)

type Processor struct {
	minterDg     datagateway.MinterDataGateway
	collection   datagateway.CollectionGateway
	bank         datagateway.BankKeeper
	upgrader     datagateway.Upgrader
	self         types.Address
	cleanupFuncs []func(context.Context) error
}

func NewProcessor(
	minterDg datagateway.MinterDataGateway,
	collection datagateway.CollectionGateway,
	bank datagateway.BankKeeper,
	upgrader datagateway.Upgrader,
	self types.Address,
	cleanupFuncs []func(context.Context) error,
) *Processor {
	return &Processor{
		minterDg:     minterDg,
		collection:   collection,
		bank:         bank,
		upgrader:     upgrader,
		self:         self,
		cleanupFuncs: cleanupFuncs,
	}
}

// Address returns the minter's own contract address.
func (p *Processor) Address() types.Address {
	return p.self
}

func (p *Processor) Shutdown(ctx context.Context) error {
	for _, cleanupFunc := range p.cleanupFuncs {
		err := cleanupFunc(ctx)
		if err != nil {
			return errors.Wrap(err, "cleanup function error")
		}
	}
	return nil
}

// Execute dispatches a tagged-union execute message to its handler.
func (p *Processor) Execute(ctx context.Context, txCtx types.TxContext, msg ExecuteMsg) ([]types.Event, error) {
	switch {
	case msg.Mint != nil:
		return p.Mint(ctx, txCtx, *msg.Mint)
	case msg.UpdateSettings != nil:
		return p.UpdateSettings(ctx, txCtx, *msg.UpdateSettings)
	case msg.UpdateAdmin != nil:
		return p.UpdateAdmin(ctx, txCtx, *msg.UpdateAdmin)
	default:
		return nil, errors.Wrap(errs.Unsupported, "unknown execute message variant")
	}
}

// Query dispatches a tagged-union query message to its handler.
func (p *Processor) Query(ctx context.Context, msg QueryMsg) (any, error) {
	switch {
	case msg.Config != nil:
		return p.Config(ctx)
	case msg.CheckSig != nil:
		return p.CheckSig(ctx, *msg.CheckSig)
	case msg.Admins != nil:
		return p.Admins(ctx)
	case msg.IsAdmin != nil:
		return p.IsAdmin(ctx, msg.IsAdmin.Address)
	default:
		return nil, errors.Wrap(errs.Unsupported, "unknown query message variant")
	}
}

// requireAdmin enforces the self-referential authorization rule shared by
// settings and admin-membership updates.
func (p *Processor) requireAdmin(ctx context.Context, dg datagateway.MinterDataGateway, sender types.Address) error {
	isAdmin, err := dg.IsAdmin(ctx, sender.String())
	if err != nil {
		return errors.Wrap(err, "failed to check admin membership")
	}
	if !isAdmin {
		return errors.Wrapf(errs.Unauthorized, "address %s is not an admin", sender)
	}
	return nil
}

func (p *Processor) validator() *mintvalidator.Validator {
	return mintvalidator.New()
}
