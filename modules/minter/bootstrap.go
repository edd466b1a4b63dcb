package minter

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/internal/config"
	"github.com/dega-network/nft-engine/modules/minter/internal/entity"
	"github.com/dega-network/nft-engine/pkg/logger"
	"github.com/shopspring/decimal"
)

// Bootstrap instantiates the minter and its paired collection from
// configuration on first run. It is a no-op when no signer key is configured
// or when the minter settings already exist.
func (p *Processor) Bootstrap(ctx context.Context, conf config.Minter) error {
	if conf.SignerPubKey == "" {
		return nil
	}
	if _, err := p.minterDg.GetSettings(ctx); err == nil {
		return nil
	} else if !errors.Is(err, errs.NotFound) {
		return errors.Wrap(err, "can't check minter settings")
	}

	msg := InstantiateMsg{
		MinterParams: MinterParams{
			Settings: entity.Settings{
				SignerPubKey: conf.SignerPubKey,
			},
			InitialAdmin: conf.InitialAdmin,
		},
		CollectionParams: CollectionParams{
			CodeID: conf.Collection.CodeID,
			Name:   conf.Collection.Name,
			Symbol: conf.Collection.Symbol,
			Info: CollectionInfoParams{
				Description: conf.Collection.Description,
				Image:       conf.Collection.Image,
			},
		},
		Cw721ContractLabel: conf.CollectionLabel,
	}
	if conf.CollectionAdmin != "" {
		admin := conf.CollectionAdmin
		msg.Cw721ContractAdmin = &admin
	}
	if conf.Collection.ExternalLink != "" {
		link := conf.Collection.ExternalLink
		msg.CollectionParams.Info.ExternalLink = &link
	}
	if conf.Collection.RoyaltyPaymentAddress != "" {
		share, err := decimal.NewFromString(conf.Collection.RoyaltyShare)
		if err != nil {
			return errors.Wrapf(err, "invalid royalty share %q in configuration", conf.Collection.RoyaltyShare)
		}
		msg.CollectionParams.Info.RoyaltySettings = &RoyaltyParams{
			PaymentAddress: conf.Collection.RoyaltyPaymentAddress,
			Share:          share,
		}
	}

	txCtx := types.TxContext{
		Sender:    types.Address(conf.InitialAdmin),
		BlockTime: time.Now().UTC(),
	}
	if _, err := p.Instantiate(ctx, txCtx, msg); err != nil {
		return errors.Wrap(err, "failed to instantiate minter from configuration")
	}

	logger.InfoContext(ctx, "Minter bootstrapped from configuration")
	return nil
}
