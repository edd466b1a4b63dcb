package minter

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/modules/minter/datagateway"
	"github.com/dega-network/nft-engine/modules/minter/internal/entity"
)

// Mints lists settled mint records, newest first.
func (p *Processor) Mints(ctx context.Context, limit, offset int32) ([]entity.MintRecord, error) {
	records, err := p.minterDg.GetMintRecords(ctx, datagateway.GetMintRecordsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mint records")
	}
	return records, nil
}

// Transfers lists recorded payment forwards, newest first.
func (p *Processor) Transfers(ctx context.Context, limit, offset int32) ([]entity.TransferRecord, error) {
	transfers, err := p.minterDg.GetTransfers(ctx, datagateway.GetTransfersParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transfers")
	}
	return transfers, nil
}
