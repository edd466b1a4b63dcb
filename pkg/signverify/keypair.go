package signverify

import (
	"encoding/base64"

	"github.com/cockroachdb/errors"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	decredecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// GenerateKeypair creates a fresh secp256k1 private key.
func GenerateKeypair() (*secp256k1.PrivateKey, error) {
	privKey, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate private key")
	}
	return privKey, nil
}

// PubKeyBase64 serializes the key's compressed public key as base64, the
// form the minter settings store accepts.
func PubKeyBase64(privKey *secp256k1.PrivateKey) string {
	return base64.StdEncoding.EncodeToString(privKey.PubKey().SerializeCompressed())
}

// Sign produces a compact r||s signature over the SHA-256 hash of message,
// base64 encoded. The counterpart of Verify; used by the keypair tooling and
// tests to stand in for the off-chain signer.
func Sign(message []byte, privKey *secp256k1.PrivateKey) string {
	signature := decredecdsa.Sign(privKey, HashMessage(message))
	r, s := signature.R(), signature.S()
	rBytes, sBytes := r.Bytes(), s.Bytes()
	compact := make([]byte, 0, 64)
	compact = append(compact, rBytes[:]...)
	compact = append(compact, sBytes[:]...)
	return base64.StdEncoding.EncodeToString(compact)
}
