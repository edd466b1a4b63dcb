package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/collection/v1")

	r.Get("/info", h.GetInfo)
	r.Get("/contract-info", h.GetContractInfo)
	r.Get("/tokens", h.GetTokens)
	r.Get("/tokens/count", h.GetNumTokens)
	r.Get("/tokens/:token_id", h.GetToken)
	r.Get("/tokens/:token_id/royalty", h.GetRoyalty)
	r.Post("/query", h.Query)
	r.Post("/execute", h.Execute)
	return nil
}
