package httphandler

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/modules/minter"
	"github.com/gofiber/fiber/v2"
)

type executeRequest struct {
	Sender string            `json:"sender"`
	Funds  []types.Coin      `json:"funds"`
	Msg    minter.ExecuteMsg `json:"msg"`
}

func (r *executeRequest) Validate() error {
	var errList []error
	if err := types.ValidateAddress(r.Sender); err != nil {
		errList = append(errList, errors.Errorf("'sender' is not a valid address: %s", r.Sender))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type executeResult struct {
	Events []types.Event `json:"events"`
}

type executeResponse = HttpResponse[executeResult]

// Execute accepts a {sender, funds, msg} envelope and dispatches the
// tagged-union execute message. The block time is stamped server-side.
func (h *HttpHandler) Execute(ctx *fiber.Ctx) (err error) {
	var req executeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(errs.WithPublicMessage(err, "unable to parse request body"))
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	txCtx := types.TxContext{
		Sender:    types.Address(req.Sender),
		Funds:     req.Funds,
		BlockTime: time.Now().UTC(),
	}
	events, err := h.processor.Execute(ctx.UserContext(), txCtx, req.Msg)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := executeResponse{
		Result: &executeResult{
			Events: events,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
