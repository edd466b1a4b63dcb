package signverify

import (
	"encoding/base64"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
)

// CompressedPubKeyLen is the only accepted public key length: a compressed
// secp256k1 point.
const CompressedPubKeyLen = 33

// HashMessage returns the SHA-256 digest of the message bytes. The off-chain
// signer hashes the exact same bytes, so callers must pass the canonical
// serialization.
func HashMessage(message []byte) []byte {
	return chainhash.HashB(message)
}

// ParsePubKeyBase64 decodes a base64, compressed secp256k1 public key.
// Wrong length or invalid base64 is a validation error, reported before any
// curve math runs.
func ParsePubKeyBase64(pubKeyBase64 string) (*btcec.PublicKey, error) {
	raw, err := base64.StdEncoding.DecodeString(pubKeyBase64)
	if err != nil {
		return nil, errors.Wrapf(errs.Validation, "cannot decode base64 public key: %v", err)
	}
	if len(raw) != CompressedPubKeyLen {
		return nil, errors.Wrapf(errs.Validation, "public key must be %d bytes, got %d", CompressedPubKeyLen, len(raw))
	}
	pubKey, err := btcec.ParsePubKey(raw)
	if err != nil {
		return nil, errors.Wrapf(errs.Validation, "cannot parse public key: %v", err)
	}
	return pubKey, nil
}

// ParseSignatureBase64 decodes a base64 signature. A 64-byte payload is
// treated as compact r||s; anything else must parse as DER.
func ParseSignatureBase64(signatureBase64 string) (*ecdsa.Signature, error) {
	raw, err := base64.StdEncoding.DecodeString(signatureBase64)
	if err != nil {
		return nil, errors.Wrapf(errs.Validation, "cannot decode base64 signature: %v", err)
	}
	if len(raw) == 64 {
		var r, s btcec.ModNScalar
		if overflow := r.SetByteSlice(raw[:32]); overflow {
			return nil, errors.Wrap(errs.Validation, "signature r overflows group order")
		}
		if overflow := s.SetByteSlice(raw[32:]); overflow {
			return nil, errors.Wrap(errs.Validation, "signature s overflows group order")
		}
		return ecdsa.NewSignature(&r, &s), nil
	}
	signature, err := ecdsa.ParseDERSignature(raw)
	if err != nil {
		return nil, errors.Wrapf(errs.Validation, "cannot parse signature: %v", err)
	}
	return signature, nil
}

// Verify checks the signature over the SHA-256 hash of message against the
// supplied public key. Malformed inputs return an error; a well-formed but
// wrong signature returns (false, nil).
func Verify(message []byte, signatureBase64 string, pubKeyBase64 string) (bool, error) {
	pubKey, err := ParsePubKeyBase64(pubKeyBase64)
	if err != nil {
		return false, errors.WithStack(err)
	}
	signature, err := ParseSignatureBase64(signatureBase64)
	if err != nil {
		return false, errors.WithStack(err)
	}
	return signature.Verify(HashMessage(message), pubKey), nil
}
