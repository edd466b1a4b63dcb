package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/modules/minter"
	"github.com/gofiber/fiber/v2"
)

type getConfigResponse = HttpResponse[minter.ConfigResponse]

func (h *HttpHandler) GetConfig(ctx *fiber.Ctx) (err error) {
	config, err := h.processor.Config(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during Config")
	}

	resp := getConfigResponse{
		Result: config,
	}
	return errors.WithStack(ctx.JSON(resp))
}
