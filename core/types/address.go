package types

import (
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
)

// Bech32Prefix is the human-readable part expected on every address.
const Bech32Prefix = "inj"

const (
	accountAddressBytes  = 20
	contractAddressBytes = 32
)

// Address is a bech32-encoded account or contract address.
type Address string

// NewAddress validates s and returns it as an Address.
func NewAddress(s string) (Address, error) {
	if err := ValidateAddress(s); err != nil {
		return "", errors.WithStack(err)
	}
	return Address(s), nil
}

func (a Address) String() string {
	return string(a)
}

// ValidateAddress checks that s is a well-formed bech32 address with the
// expected prefix and a 20-byte (account) or 32-byte (contract) payload.
func ValidateAddress(s string) error {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return errors.Wrapf(errs.Validation, "invalid address %q: %v", s, err)
	}
	if hrp != Bech32Prefix {
		return errors.Wrapf(errs.Validation, "invalid address prefix %q, expected %q", hrp, Bech32Prefix)
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return errors.Wrapf(errs.Validation, "invalid address %q: %v", s, err)
	}
	if len(payload) != accountAddressBytes && len(payload) != contractAddressBytes {
		return errors.Wrapf(errs.Validation, "invalid address payload length %d", len(payload))
	}
	return nil
}

// IsContractAddress reports whether s is a well-formed address whose payload
// is contract-sized. An invalid address is an error, not false.
func IsContractAddress(s string) (bool, error) {
	_, data, err := bech32.Decode(s)
	if err != nil {
		return false, errors.Wrapf(errs.Validation, "invalid address %q: %v", s, err)
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return false, errors.Wrapf(errs.Validation, "invalid address %q: %v", s, err)
	}
	return len(payload) == contractAddressBytes, nil
}

// EncodeAddress encodes a raw payload as a bech32 address with the expected
// prefix. Used by tests and the keypair tooling.
func EncodeAddress(payload []byte) (Address, error) {
	converted, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "failed to convert address payload")
	}
	encoded, err := bech32.Encode(Bech32Prefix, converted)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode address")
	}
	return Address(encoded), nil
}
