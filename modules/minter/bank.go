package minter

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/modules/minter/datagateway"
	"github.com/dega-network/nft-engine/pkg/logger"
	"github.com/dega-network/nft-engine/pkg/logger/slogx"
)

// LoggingBankKeeper is the in-process stand-in for the chain's bank module.
// It validates and logs the outbound transfer; the durable record is written
// by the settlement transaction.
type LoggingBankKeeper struct{}

var _ datagateway.BankKeeper = (*LoggingBankKeeper)(nil)

func NewLoggingBankKeeper() *LoggingBankKeeper {
	return &LoggingBankKeeper{}
}

func (k *LoggingBankKeeper) Send(ctx context.Context, from types.Address, to types.Address, amount []types.Coin) error {
	if err := types.ValidateAddress(to.String()); err != nil {
		return errors.Wrapf(err, "invalid transfer recipient %q", to)
	}
	for _, coin := range amount {
		logger.InfoContext(ctx, "Forwarding funds",
			slogx.Stringer("from", from),
			slogx.Stringer("to", to),
			slogx.String("denom", coin.Denom),
			slogx.Stringer("amount", coin.Amount),
		)
	}
	return nil
}
