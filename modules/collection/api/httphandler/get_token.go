package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/modules/collection"
	"github.com/gofiber/fiber/v2"
)

type getTokenRequest struct {
	TokenID        string `params:"token_id"`
	IncludeExpired bool   `query:"includeExpired"`
}

func (r *getTokenRequest) Validate() error {
	var errList []error
	if r.TokenID == "" {
		errList = append(errList, errors.New("'token_id' is required"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type getTokenResponse = HttpResponse[any]

// GetToken returns the owner, approvals and metadata of a single token.
func (h *HttpHandler) GetToken(ctx *fiber.Ctx) (err error) {
	var req getTokenRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.processor.Query(ctx.UserContext(), collection.QueryMsg{
		AllNftInfo: &collection.AllNftInfoQuery{
			TokenID:        req.TokenID,
			IncludeExpired: req.IncludeExpired,
		},
	})
	if err != nil {
		return errors.Wrap(err, "error during AllNftInfo query")
	}

	resp := getTokenResponse{
		Result: &result,
	}
	return errors.WithStack(ctx.JSON(resp))
}
