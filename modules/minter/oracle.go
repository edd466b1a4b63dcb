package minter

import (
	"context"

	"github.com/cockroachdb/errors"
	collectiondatagateway "github.com/dega-network/nft-engine/modules/collection/datagateway"
	"github.com/dega-network/nft-engine/modules/minter/datagateway"
)

// AdminOracle exposes the minter's admin registry and pause flag to the
// paired collection contract.
type AdminOracle struct {
	minterDg datagateway.MinterDataGateway
}

var _ collectiondatagateway.AdminOracle = (*AdminOracle)(nil)
var _ collectiondatagateway.MinterGateway = (*AdminOracle)(nil)

func NewAdminOracle(minterDg datagateway.MinterDataGateway) *AdminOracle {
	return &AdminOracle{
		minterDg: minterDg,
	}
}

func (o *AdminOracle) IsAdmin(ctx context.Context, address string) (bool, error) {
	isAdmin, err := o.minterDg.IsAdmin(ctx, address)
	if err != nil {
		return false, errors.Wrap(err, "error during IsAdmin")
	}
	return isAdmin, nil
}

func (o *AdminOracle) MintingPaused(ctx context.Context) (bool, error) {
	settings, err := o.minterDg.GetSettings(ctx)
	if err != nil {
		return false, errors.Wrap(err, "error during GetSettings")
	}
	return settings.MintingPaused, nil
}
