package collection

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/modules/collection/datagateway"
)

// AddressContractInfoQuerier classifies callers by address shape: contract
// addresses carry a 32-byte payload, account addresses a 20-byte one.
type AddressContractInfoQuerier struct{}

var _ datagateway.ContractInfoQuerier = (*AddressContractInfoQuerier)(nil)

func NewAddressContractInfoQuerier() *AddressContractInfoQuerier {
	return &AddressContractInfoQuerier{}
}

func (q *AddressContractInfoQuerier) IsContract(_ context.Context, address string) (bool, error) {
	isContract, err := types.IsContractAddress(address)
	if err != nil {
		return false, errors.Wrapf(err, "unable to classify address %q", address)
	}
	return isContract, nil
}
