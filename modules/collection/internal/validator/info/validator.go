package infovalidator

import (
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/modules/collection/internal/entity"
	"github.com/shopspring/decimal"
)

// Validator checks collection-info fields. Shared by instantiation and
// updates so both enforce identical rules.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) Description(description string) error {
	if len(description) > entity.MaxDescriptionLength {
		return errors.Wrapf(errs.Validation, "description is longer than %d characters", entity.MaxDescriptionLength)
	}
	return nil
}

func (v *Validator) ImageURL(image string) error {
	if !validURL(image) {
		return errors.Wrapf(errs.Validation, "image is not a valid URL: %s", image)
	}
	return nil
}

func (v *Validator) ExternalLinkURL(link string) error {
	if !validURL(link) {
		return errors.Wrapf(errs.Validation, "external link is not a valid URL: %s", link)
	}
	return nil
}

func (v *Validator) Royalty(settings entity.RoyaltySettings) error {
	if err := types.ValidateAddress(settings.PaymentAddress); err != nil {
		return errors.Wrapf(errs.Validation, "invalid royalty payment address: %s", settings.PaymentAddress)
	}
	if settings.Share.IsNegative() {
		return errors.Wrap(errs.Validation, "royalty share must not be negative")
	}
	if settings.Share.GreaterThan(decimal.NewFromInt(1)) {
		return errors.Wrap(errs.Validation, "royalty share must not be greater than 100%")
	}
	return nil
}

// Info runs every check applicable to a complete CollectionInfo value.
func (v *Validator) Info(info entity.CollectionInfo) error {
	if err := v.Description(info.Description); err != nil {
		return errors.WithStack(err)
	}
	if err := v.ImageURL(info.Image); err != nil {
		return errors.WithStack(err)
	}
	if info.ExternalLink != nil {
		if err := v.ExternalLinkURL(*info.ExternalLink); err != nil {
			return errors.WithStack(err)
		}
	}
	if info.RoyaltySettings != nil {
		if err := v.Royalty(*info.RoyaltySettings); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func validURL(s string) bool {
	parsed, err := url.Parse(s)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}
