package datagateway

import (
	"context"

	"github.com/dega-network/nft-engine/core/types"
	"github.com/shopspring/decimal"
)

// CollectionGateway is the minter's handle on its paired collection
// contract. In production it is an adapter over the live collection
// processor; tests inject fakes.
type CollectionGateway interface {
	// Instantiate performs the collection sub-instantiation and returns the
	// new contract's address.
	Instantiate(ctx context.Context, sender types.Address, arg InstantiateCollectionParams) (types.Address, error)
	// Mint executes a mint on the collection contract as sender.
	Mint(ctx context.Context, sender types.Address, instruction types.MintInstruction) error
}

type InstantiateCollectionParams struct {
	Name                  string
	Symbol                string
	Description           string
	Image                 string
	ExternalLink          *string
	RoyaltyPaymentAddress *string
	RoyaltyShare          *decimal.Decimal
	Label                 string
	Admin                 *string
}

// BankKeeper forwards sale proceeds. Transfers are recorded for
// reconciliation.
type BankKeeper interface {
	Send(ctx context.Context, from types.Address, to types.Address, amount []types.Coin) error
}

// Upgrader is the versioned-migration hook. The shipped implementation is a
// recorded no-op; deployments substitute their own.
type Upgrader interface {
	ApplyUpgrade(ctx context.Context, fromVersion string, toVersion string) ([]types.Event, error)
}
