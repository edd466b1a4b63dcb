package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/modules/collection"
	"github.com/gofiber/fiber/v2"
)

type getInfoResponse = HttpResponse[collection.CollectionInfoResponse]

func (h *HttpHandler) GetInfo(ctx *fiber.Ctx) (err error) {
	info, err := h.processor.CollectionInfo(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during CollectionInfo")
	}

	resp := getInfoResponse{
		Result: info,
	}
	return errors.WithStack(ctx.JSON(resp))
}

type getContractInfoResponse = HttpResponse[any]

func (h *HttpHandler) GetContractInfo(ctx *fiber.Ctx) (err error) {
	result, err := h.processor.Query(ctx.UserContext(), collection.QueryMsg{
		ContractInfo: &collection.ContractInfoQuery{},
	})
	if err != nil {
		return errors.Wrap(err, "error during ContractInfo query")
	}

	resp := getContractInfoResponse{
		Result: &result,
	}
	return errors.WithStack(ctx.JSON(resp))
}
