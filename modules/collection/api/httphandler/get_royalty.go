package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/modules/collection"
	"github.com/gaze-network/uint128"
	"github.com/gofiber/fiber/v2"
)

type getRoyaltyRequest struct {
	TokenID   string `params:"token_id"`
	SalePrice string `query:"salePrice"`
}

func (r *getRoyaltyRequest) Validate() error {
	var errList []error
	if r.TokenID == "" {
		errList = append(errList, errors.New("'token_id' is required"))
	}
	if r.SalePrice == "" {
		errList = append(errList, errors.New("'salePrice' is required"))
	} else if _, err := uint128.FromString(r.SalePrice); err != nil {
		errList = append(errList, errors.Errorf("'salePrice' is not a valid number: %s", r.SalePrice))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type getRoyaltyResponse = HttpResponse[collection.RoyaltyInfoResponse]

// GetRoyalty computes the royalty payment for a hypothetical sale of
// the token at the given price.
func (h *HttpHandler) GetRoyalty(ctx *fiber.Ctx) (err error) {
	var req getRoyaltyRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	salePrice, err := uint128.FromString(req.SalePrice)
	if err != nil {
		return errors.WithStack(errs.WithPublicMessage(err, "unable to parse sale price"))
	}

	result, err := h.processor.RoyaltyInfo(ctx.UserContext(), req.TokenID, salePrice)
	if err != nil {
		return errors.Wrap(err, "error during RoyaltyInfo")
	}

	resp := getRoyaltyResponse{
		Result: result,
	}
	return errors.WithStack(ctx.JSON(resp))
}
