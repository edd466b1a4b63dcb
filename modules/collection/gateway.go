package collection

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/modules/collection/internal/entity"
	minterdatagateway "github.com/dega-network/nft-engine/modules/minter/datagateway"
)

// Gateway adapts the collection processor to the call surface the paired
// minter expects. In-process it stands in for the chain's contract-to-
// contract message passing.
type Gateway struct {
	processor *Processor
}

var _ minterdatagateway.CollectionGateway = (*Gateway)(nil)

func NewGateway(processor *Processor) *Gateway {
	return &Gateway{
		processor: processor,
	}
}

func (g *Gateway) Instantiate(ctx context.Context, sender types.Address, arg minterdatagateway.InstantiateCollectionParams) (types.Address, error) {
	info := entity.CollectionInfo{
		Description:  arg.Description,
		Image:        arg.Image,
		ExternalLink: arg.ExternalLink,
	}
	if arg.RoyaltyPaymentAddress != nil && arg.RoyaltyShare != nil {
		info.RoyaltySettings = &entity.RoyaltySettings{
			PaymentAddress: *arg.RoyaltyPaymentAddress,
			Share:          *arg.RoyaltyShare,
		}
	}

	txCtx := types.TxContext{
		Sender:    sender,
		BlockTime: time.Now().UTC(),
	}
	msg := InstantiateMsg{
		Name:           arg.Name,
		Symbol:         arg.Symbol,
		CollectionInfo: info,
	}
	if _, err := g.processor.Instantiate(ctx, txCtx, msg); err != nil {
		return "", errors.Wrap(err, "error during collection Instantiate")
	}
	return g.processor.Address(), nil
}

func (g *Gateway) Mint(ctx context.Context, sender types.Address, instruction types.MintInstruction) error {
	txCtx := types.TxContext{
		Sender:    sender,
		BlockTime: time.Now().UTC(),
	}
	msg := MintMsg{
		TokenID:  instruction.TokenID,
		Owner:    instruction.Owner.String(),
		TokenURI: instruction.TokenURI,
	}
	if _, err := g.processor.Mint(ctx, txCtx, msg); err != nil {
		return errors.Wrap(err, "error during collection Mint")
	}
	return nil
}
