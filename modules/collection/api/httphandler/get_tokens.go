package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/modules/collection"
	"github.com/gofiber/fiber/v2"
)

type getTokensRequest struct {
	Owner      string `query:"owner"`
	StartAfter string `query:"startAfter"`
	Limit      int32  `query:"limit"`
}

func (r *getTokensRequest) Validate() error {
	var errList []error
	if r.Owner != "" {
		if err := types.ValidateAddress(r.Owner); err != nil {
			errList = append(errList, errors.Errorf("'owner' is not a valid address: %s", r.Owner))
		}
	}
	if r.Limit < 0 {
		errList = append(errList, errors.New("'limit' must not be negative"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type getTokensResponse = HttpResponse[any]

// GetTokens lists token ids in ascending order. When 'owner' is given,
// only that owner's tokens are returned.
func (h *HttpHandler) GetTokens(ctx *fiber.Ctx) (err error) {
	var req getTokensRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	var msg collection.QueryMsg
	if req.Owner != "" {
		msg.Tokens = &collection.TokensQuery{
			Owner:      req.Owner,
			StartAfter: req.StartAfter,
			Limit:      req.Limit,
		}
	} else {
		msg.AllTokens = &collection.AllTokensQuery{
			StartAfter: req.StartAfter,
			Limit:      req.Limit,
		}
	}

	result, err := h.processor.Query(ctx.UserContext(), msg)
	if err != nil {
		return errors.Wrap(err, "error during Tokens query")
	}

	resp := getTokensResponse{
		Result: &result,
	}
	return errors.WithStack(ctx.JSON(resp))
}

type getNumTokensResponse = HttpResponse[any]

func (h *HttpHandler) GetNumTokens(ctx *fiber.Ctx) (err error) {
	result, err := h.processor.Query(ctx.UserContext(), collection.QueryMsg{
		NumTokens: &collection.NumTokensQuery{},
	})
	if err != nil {
		return errors.Wrap(err, "error during NumTokens query")
	}

	resp := getNumTokensResponse{
		Result: &result,
	}
	return errors.WithStack(ctx.JSON(resp))
}
