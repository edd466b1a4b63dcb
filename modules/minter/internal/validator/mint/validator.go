package mintvalidator

import (
	"context"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/modules/minter/datagateway"
	"github.com/dega-network/nft-engine/modules/minter/internal/entity"
	"github.com/dega-network/nft-engine/pkg/signverify"
	"github.com/google/uuid"
)

// Validator runs the settlement checks in order. Each check aborts the
// operation on first failure; the caller controls when side effects (the
// nonce burn) are committed.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) NotPaused(settings *entity.Settings) error {
	if settings.MintingPaused {
		return errors.WithStack(errs.MintingPaused)
	}
	return nil
}

// VerifySignature checks the signature over the request's canonical bytes.
// Any failure, malformed or merely wrong, reports the same generic message.
func (v *Validator) VerifySignature(request *entity.MintRequest, signatureBase64 string, signerPubKeyBase64 string) error {
	valid, err := signverify.Verify(request.CanonicalBytes(), signatureBase64, signerPubKeyBase64)
	if err != nil || !valid {
		return errors.Wrap(errs.Validation, INVALID_SIGNATURE)
	}
	return nil
}

func (v *Validator) ValidRecipient(to string) error {
	if err := types.ValidateAddress(to); err != nil {
		return errors.Wrapf(errs.Validation, "%s: %s", INVALID_RECIPIENT, to)
	}
	return nil
}

func (v *Validator) ValidSaleRecipient(recipient string) error {
	if err := types.ValidateAddress(recipient); err != nil {
		return errors.Wrapf(errs.Validation, "%s: %s", INVALID_SALE_RECIP, recipient)
	}
	return nil
}

// WithinValidityWindow enforces the request's time window. Both bounds are
// inclusive: a block time equal to either boundary is accepted.
func (v *Validator) WithinValidityWindow(request *entity.MintRequest, blockTime time.Time) error {
	now := uint64(blockTime.Unix())
	if now < request.ValidityStartTimestamp {
		return errors.Wrapf(errs.Validation, "%s: valid from %d, current time %d",
			NOT_VALID_YET, request.ValidityStartTimestamp, now)
	}
	if now > request.ValidityEndTimestamp {
		return errors.Wrapf(errs.Validation, "%s: valid until %d, current time %d",
			NO_LONGER_VALID, request.ValidityEndTimestamp, now)
	}
	return nil
}

// FreshNonce rejects a request whose UUID was already consumed. The caller
// inserts (burns) the nonce immediately after this check passes.
func (v *Validator) FreshNonce(ctx context.Context, dg datagateway.MinterDataGateway, nonce string) error {
	if _, err := uuid.Parse(nonce); err != nil {
		return errors.Wrapf(errs.Validation, "%s: %s", INVALID_UUID, nonce)
	}
	exists, err := dg.HasNonce(ctx, nonce)
	if err != nil {
		return errors.Wrap(err, "failed to check UUID registry")
	}
	if exists {
		return errors.Wrapf(errs.Conflict, "%s: %s", UUID_REGISTERED, nonce)
	}
	return nil
}

// ExactPayment requires exactly one attached denomination matching the
// request's currency and price. No change-making: underpayment and
// overpayment are both rejected.
func (v *Validator) ExactPayment(request *entity.MintRequest, funds []types.Coin) error {
	if len(funds) != 1 {
		return errors.Wrapf(errs.Validation, "%s: got %d", NO_SINGLE_PAYMENT, len(funds))
	}
	payment := funds[0]
	if payment.Denom != request.Currency {
		return errors.Wrapf(errs.Validation, "%s: paid %s, requires %s",
			WRONG_CURRENCY, payment.Denom, request.Currency)
	}
	if payment.Amount.Cmp(request.Price) != 0 {
		return errors.Wrapf(errs.Validation, "%s: paid %s, requires %s",
			WRONG_AMOUNT, payment.Amount.String(), request.Price.String())
	}
	return nil
}

func (v *Validator) ValidURI(uri string) error {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.Wrapf(errs.Validation, "%s: %s", INVALID_URI, uri)
	}
	return nil
}

// MatchesCollection guards against a request signed for one collection
// being replayed against another minter sharing the same signer key.
func (v *Validator) MatchesCollection(request *entity.MintRequest, collectionAddress string) error {
	if request.Collection != collectionAddress {
		return errors.Wrapf(errs.Validation, "%s: request %s, paired %s",
			WRONG_COLLECTION, request.Collection, collectionAddress)
	}
	return nil
}
