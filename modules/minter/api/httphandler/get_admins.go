package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/modules/minter"
	"github.com/gofiber/fiber/v2"
)

type getAdminsResponse = HttpResponse[minter.AdminsResponse]

func (h *HttpHandler) GetAdmins(ctx *fiber.Ctx) (err error) {
	result, err := h.processor.Admins(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during Admins")
	}

	resp := getAdminsResponse{
		Result: result,
	}
	return errors.WithStack(ctx.JSON(resp))
}

type isAdminRequest struct {
	Address string `params:"address"`
}

func (r *isAdminRequest) Validate() error {
	if err := types.ValidateAddress(r.Address); err != nil {
		return errs.WithPublicMessage(err, "validation error")
	}
	return nil
}

type isAdminResponse = HttpResponse[minter.IsAdminResponse]

func (h *HttpHandler) IsAdmin(ctx *fiber.Ctx) (err error) {
	var req isAdminRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.processor.IsAdmin(ctx.UserContext(), req.Address)
	if err != nil {
		return errors.Wrap(err, "error during IsAdmin")
	}

	resp := isAdminResponse{
		Result: result,
	}
	return errors.WithStack(ctx.JSON(resp))
}
