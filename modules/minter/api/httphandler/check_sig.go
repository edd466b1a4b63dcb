package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/modules/minter"
	"github.com/gofiber/fiber/v2"
)

type checkSigResponse = HttpResponse[minter.CheckSigResponse]

func (h *HttpHandler) CheckSig(ctx *fiber.Ctx) (err error) {
	var req minter.CheckSigQuery
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(errs.WithPublicMessage(err, "unable to parse request body"))
	}

	result, err := h.processor.CheckSig(ctx.UserContext(), req)
	if err != nil {
		return errors.Wrap(err, "error during CheckSig")
	}

	resp := checkSigResponse{
		Result: result,
	}
	return errors.WithStack(ctx.JSON(resp))
}
