package minter

import (
	"context"
	"encoding/hex"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/pkg/signverify"
)

// CheckSig verifies a signature over a free-form string or a mint request's
// canonical bytes, against either a caller-supplied key or the configured
// signer key. It is a read-only diagnostic: verification failures, a
// malformed key included, come back as data with is_valid=false, never as
// an error. The message hash is always reported so off-chain signers can
// confirm they are hashing the same bytes.
func (p *Processor) CheckSig(ctx context.Context, query CheckSigQuery) (*CheckSigResponse, error) {
	var message []byte
	switch {
	case query.Message.String != nil:
		message = []byte(*query.Message.String)
	case query.Message.MintRequest != nil:
		message = query.Message.MintRequest.CanonicalBytes()
	default:
		return nil, errors.Wrap(errs.Validation, "check sig message must be a string or a mint request")
	}

	response := &CheckSigResponse{
		MessageHashHex: hex.EncodeToString(signverify.HashMessage(message)),
	}

	var pubKeyBase64 string
	switch {
	case query.SignerSourceMsg.PubKeyBinary != nil:
		pubKeyBase64 = *query.SignerSourceMsg.PubKeyBinary
	case query.SignerSourceMsg.ConfigSignerPubKey != nil:
		settings, err := p.minterDg.GetSettings(ctx)
		if err != nil {
			detail := errors.Wrap(err, "failed to load configured signer key").Error()
			response.Error = &detail
			return response, nil
		}
		pubKeyBase64 = settings.SignerPubKey
	default:
		return nil, errors.Wrap(errs.Validation, "signer source must be a supplied key or the configured key")
	}

	valid, err := signverify.Verify(message, query.Signature, pubKeyBase64)
	if err != nil {
		detail := err.Error()
		response.Error = &detail
		return response, nil
	}
	response.IsValid = valid
	return response, nil
}
