package minter

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/pkg/signverify"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestCheckSigStringMessage(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	message := "hello dega"
	signature := signverify.Sign([]byte(message), env.signerKey)

	response, err := env.processor.CheckSig(ctx, CheckSigQuery{
		Message:         VerifiableMessage{String: lo.ToPtr(message)},
		Signature:       signature,
		SignerSourceMsg: SignerSource{ConfigSignerPubKey: &struct{}{}},
	})
	require.NoError(t, err)
	require.True(t, response.IsValid)
	require.Nil(t, response.Error)
	require.Equal(t, hex.EncodeToString(signverify.HashMessage([]byte(message))), response.MessageHashHex)
}

func TestCheckSigSuppliedKey(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	otherKey, err := signverify.GenerateKeypair()
	require.NoError(t, err)
	message := "signed by another key"
	signature := signverify.Sign([]byte(message), otherKey)

	response, err := env.processor.CheckSig(ctx, CheckSigQuery{
		Message:         VerifiableMessage{String: lo.ToPtr(message)},
		Signature:       signature,
		SignerSourceMsg: SignerSource{PubKeyBinary: lo.ToPtr(signverify.PubKeyBase64(otherKey))},
	})
	require.NoError(t, err)
	require.True(t, response.IsValid)

	// against the configured key the same signature does not verify
	response, err = env.processor.CheckSig(ctx, CheckSigQuery{
		Message:         VerifiableMessage{String: lo.ToPtr(message)},
		Signature:       signature,
		SignerSourceMsg: SignerSource{ConfigSignerPubKey: &struct{}{}},
	})
	require.NoError(t, err)
	require.False(t, response.IsValid)
}

func TestCheckSigMintRequestMessage(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	request, signature := env.mintRequest(t, nil)

	response, err := env.processor.CheckSig(ctx, CheckSigQuery{
		Message:         VerifiableMessage{MintRequest: &request},
		Signature:       signature,
		SignerSourceMsg: SignerSource{ConfigSignerPubKey: &struct{}{}},
	})
	require.NoError(t, err)
	require.True(t, response.IsValid)
	require.Equal(t, hex.EncodeToString(signverify.HashMessage(request.CanonicalBytes())), response.MessageHashHex)
}

func TestCheckSigMalformedKeyIsData(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	message := "whatever"
	signature := signverify.Sign([]byte(message), env.signerKey)

	response, err := env.processor.CheckSig(ctx, CheckSigQuery{
		Message:         VerifiableMessage{String: lo.ToPtr(message)},
		Signature:       signature,
		SignerSourceMsg: SignerSource{PubKeyBinary: lo.ToPtr("not a key")},
	})
	require.NoError(t, err)
	require.False(t, response.IsValid)
	require.NotNil(t, response.Error)
	// the hash is still reported for diagnosis
	require.NotEmpty(t, response.MessageHashHex)
}

func TestCheckSigConfiguredKeyUnavailable(t *testing.T) {
	ctx := context.Background()
	env := newUninstantiatedEnv(t)
	message := "no settings yet"
	signature := signverify.Sign([]byte(message), env.signerKey)

	response, err := env.processor.CheckSig(ctx, CheckSigQuery{
		Message:         VerifiableMessage{String: lo.ToPtr(message)},
		Signature:       signature,
		SignerSourceMsg: SignerSource{ConfigSignerPubKey: &struct{}{}},
	})
	require.NoError(t, err)
	require.False(t, response.IsValid)
	require.NotNil(t, response.Error)
	require.Contains(t, *response.Error, "failed to load configured signer key")
}

func TestCheckSigMissingVariants(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.processor.CheckSig(ctx, CheckSigQuery{
		Signature:       "sig",
		SignerSourceMsg: SignerSource{ConfigSignerPubKey: &struct{}{}},
	})
	require.ErrorIs(t, err, errs.Validation)

	_, err = env.processor.CheckSig(ctx, CheckSigQuery{
		Message:   VerifiableMessage{String: lo.ToPtr("msg")},
		Signature: "sig",
	})
	require.ErrorIs(t, err, errs.Validation)
}
