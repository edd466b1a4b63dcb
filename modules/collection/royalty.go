package collection

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/gaze-network/uint128"
	"github.com/shopspring/decimal"
)

// RoyaltyInfo computes the royalty due on a sale: floor(salePrice * share).
// Without configured royalty settings, the royalty amount is zero with an
// empty payment address.
func (p *Processor) RoyaltyInfo(ctx context.Context, tokenID string, salePrice uint128.Uint128) (*RoyaltyInfoResponse, error) {
	exists, err := p.ledger.HasToken(ctx, tokenID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check token existence")
	}
	if !exists {
		return nil, errors.Wrapf(errs.NotFound, "token %s not found", tokenID)
	}

	info, err := p.collectionDg.GetCollectionInfo(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load collection info")
	}
	if info.RoyaltySettings == nil {
		return &RoyaltyInfoResponse{
			Address:       "",
			RoyaltyAmount: uint128.Zero,
		}, nil
	}

	price := decimal.NewFromBigInt(salePrice.Big(), 0)
	royalty := price.Mul(info.RoyaltySettings.Share).Floor()
	amount, err := uint128.FromBig(royalty.BigInt())
	if err != nil {
		return nil, errors.Wrap(errs.OverflowUint128, "royalty amount does not fit in uint128")
	}

	return &RoyaltyInfoResponse{
		Address:       info.RoyaltySettings.PaymentAddress,
		RoyaltyAmount: amount,
	}, nil
}

// CheckRoyalties reports that this collection implements royalty queries.
func (p *Processor) CheckRoyalties(_ context.Context) (*CheckRoyaltiesResponse, error) {
	return &CheckRoyaltiesResponse{RoyaltyPayments: true}, nil
}
