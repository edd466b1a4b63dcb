package datagateway

import (
	"context"
)

// AdminOracle answers whether an address is an admin of the paired minter
// contract. Collection-info updates delegate authorization to it, keeping
// the minter's admin registry the single source of truth. A query failure
// must propagate as an error, never default to false or true.
type AdminOracle interface {
	IsAdmin(ctx context.Context, address string) (bool, error)
}

// MinterGateway exposes the paired minter's settings the collection needs
// at mint time.
type MinterGateway interface {
	MintingPaused(ctx context.Context) (bool, error)
}

// ContractInfoQuerier answers whether an address is a contract address.
// Collection instantiation is restricted to contract callers.
type ContractInfoQuerier interface {
	IsContract(ctx context.Context, address string) (bool, error)
}
