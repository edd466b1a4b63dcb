package errorhandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/pkg/logger"
	"github.com/dega-network/nft-engine/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

func NewHTTPErrorHandler() func(ctx *fiber.Ctx, err error) error {
	return func(ctx *fiber.Ctx, err error) error {
		if e := new(errs.PublicError); errors.As(err, &e) {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, errs.Unauthorized):
				status = http.StatusForbidden
			case errors.Is(err, errs.NotFound):
				status = http.StatusNotFound
			case errors.Is(err, errs.Conflict):
				status = http.StatusConflict
			}
			return errors.WithStack(ctx.Status(status).JSON(map[string]any{
				"error": e.Message(),
			}))
		}
		if kind := new(errs.ErrorKind); errors.As(err, kind) {
			status := http.StatusBadRequest
			switch *kind {
			case errs.Unauthorized:
				status = http.StatusForbidden
			case errs.NotFound:
				status = http.StatusNotFound
			case errs.Conflict:
				status = http.StatusConflict
			case errs.MintingPaused:
				status = http.StatusLocked
			case errs.SomethingWentWrong, errs.QueryFailure:
				status = http.StatusInternalServerError
			}
			return errors.WithStack(ctx.Status(status).JSON(map[string]any{
				"error": err.Error(),
			}))
		}
		if e := new(fiber.Error); errors.As(err, &e) {
			return errors.WithStack(ctx.Status(e.Code).SendString(e.Error()))
		}

		logger.ErrorContext(ctx.UserContext(), "Something went wrong, unhandled api error",
			slogx.String("event", "api_unhandled_error"),
			slogx.Error(err),
		)

		return errors.WithStack(ctx.Status(http.StatusInternalServerError).JSON(map[string]any{
			"error": "Internal Server Error",
		}))
	}
}
