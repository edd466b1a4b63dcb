package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/minter/v1")

	r.Get("/config", h.GetConfig)
	r.Post("/check-sig", h.CheckSig)
	r.Get("/admins", h.GetAdmins)
	r.Get("/admins/:address", h.IsAdmin)
	r.Get("/mints", h.GetMints)
	r.Get("/transfers", h.GetTransfers)
	r.Post("/execute", h.Execute)
	return nil
}
