package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/modules/collection"
	"github.com/gofiber/fiber/v2"
)

type queryResponse = HttpResponse[any]

// Query accepts a tagged-union query message and returns the
// variant-specific response payload.
func (h *HttpHandler) Query(ctx *fiber.Ctx) (err error) {
	var msg collection.QueryMsg
	if err := ctx.BodyParser(&msg); err != nil {
		return errors.WithStack(errs.WithPublicMessage(err, "unable to parse request body"))
	}

	result, err := h.processor.Query(ctx.UserContext(), msg)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := queryResponse{
		Result: &result,
	}
	return errors.WithStack(ctx.JSON(resp))
}
