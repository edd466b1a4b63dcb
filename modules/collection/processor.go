package collection

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/modules/collection/datagateway"
	infovalidator "github.com/dega-network/nft-engine/modules/collection/internal/validator/info"
)

type Processor struct {
	collectionDg   datagateway.CollectionDataGateway
	ledger         datagateway.TokenLedger
	adminOracle    datagateway.AdminOracle
	minterGateway  datagateway.MinterGateway
	contractInfoQr datagateway.ContractInfoQuerier
	self           types.Address
	cleanupFuncs   []func(context.Context) error
}

func NewProcessor(
	collectionDg datagateway.CollectionDataGateway,
	ledger datagateway.TokenLedger,
	adminOracle datagateway.AdminOracle,
	minterGateway datagateway.MinterGateway,
	contractInfoQr datagateway.ContractInfoQuerier,
	self types.Address,
	cleanupFuncs []func(context.Context) error,
) *Processor {
	return &Processor{
		collectionDg:   collectionDg,
		ledger:         ledger,
		adminOracle:    adminOracle,
		minterGateway:  minterGateway,
		contractInfoQr: contractInfoQr,
		self:           self,
		cleanupFuncs:   cleanupFuncs,
	}
}

// Address returns the collection's own contract address.
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

// Execute dispatches a tagged-union execute message. Mint and
// UpdateCollectionInfo are handled by the collection itself; every other
// variant passes through to the base token ledger.
func (p *Processor) Execute(ctx context.Context, txCtx types.TxContext, msg ExecuteMsg) ([]types.Event, error) {
	switch {
	case msg.Mint != nil:
		return p.Mint(ctx, txCtx, *msg.Mint)
	case msg.UpdateCollectionInfo != nil:
		return p.UpdateCollectionInfo(ctx, txCtx, *msg.UpdateCollectionInfo)
	default:
		return p.executePassthrough(ctx, txCtx, msg)
	}
}

// Query dispatches a tagged-union query message.
func (p *Processor) Query(ctx context.Context, msg QueryMsg) (any, error) {
	switch {
	case msg.CollectionInfo != nil:
		return p.CollectionInfo(ctx)
	case msg.RoyaltyInfo != nil:
		return p.RoyaltyInfo(ctx, msg.RoyaltyInfo.TokenID, msg.RoyaltyInfo.SalePrice)
	case msg.CheckRoyalties != nil:
		return p.CheckRoyalties(ctx)
	default:
		return p.queryPassthrough(ctx, msg)
	}
}

func (p *Processor) validator() *infovalidator.Validator {
	return infovalidator.New()
}

// requireOwner gates an operation to the owning minter contract.
func (p *Processor) requireOwner(ctx context.Context, sender types.Address) error {
	owner, err := p.collectionDg.GetOwner(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load collection owner")
	}
	if sender.String() != owner {
		return errors.Wrapf(errs.Unauthorized, "address %s is not the collection owner", sender)
	}
	return nil
}
