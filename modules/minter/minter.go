package minter

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/internal/config"
	"github.com/dega-network/nft-engine/modules/minter/datagateway"
	minterpostgres "github.com/dega-network/nft-engine/modules/minter/repository/postgres"
	"github.com/samber/do/v2"
)

// New assembles the minter processor from the injector: the Postgres-backed
// repository, the paired collection's gateway and the contract's own address
// from configuration.
func New(injector do.Injector) (*Processor, error) {
	conf := do.MustInvoke[config.Config](injector)
	repo := do.MustInvoke[*minterpostgres.Repository](injector)
	collectionGateway := do.MustInvoke[datagateway.CollectionGateway](injector)

	self, err := types.NewAddress(conf.Minter.Address)
	if err != nil {
		return nil, errors.Wrap(err, "invalid minter contract address in configuration")
	}

	var cleanupFuncs []func(context.Context) error
	processor := NewProcessor(repo, collectionGateway, NewLoggingBankKeeper(), NewNoopUpgrader(), self, cleanupFuncs)
	return processor, nil
}
