package collection

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/internal/config"
	"github.com/dega-network/nft-engine/modules/collection/datagateway"
	collectionpostgres "github.com/dega-network/nft-engine/modules/collection/repository/postgres"
	"github.com/samber/do/v2"
)

// Version is the collection contract version.
const Version = "1.0.0"

// New assembles the collection processor from the injector. Admin checks and
// the pause flag are delegated to the paired minter through the oracle
// interfaces, keeping the minter's registry the single source of truth.
func New(injector do.Injector) (*Processor, error) {
	conf := do.MustInvoke[config.Config](injector)
	repo := do.MustInvoke[*collectionpostgres.Repository](injector)
	adminOracle := do.MustInvoke[datagateway.AdminOracle](injector)
	minterGateway := do.MustInvoke[datagateway.MinterGateway](injector)

	self, err := types.NewAddress(conf.Minter.CollectionAddress)
	if err != nil {
		return nil, errors.Wrap(err, "invalid collection contract address in configuration")
	}

	var cleanupFuncs []func(context.Context) error
	processor := NewProcessor(repo, repo, adminOracle, minterGateway, NewAddressContractInfoQuerier(), self, cleanupFuncs)
	return processor, nil
}
