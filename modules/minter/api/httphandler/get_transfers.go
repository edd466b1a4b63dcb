package httphandler

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/modules/minter/internal/entity"
	"github.com/gaze-network/uint128"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getTransfersRequest struct {
	paginationRequest
}

type transferRecord struct {
	ID        int64           `json:"id"`
	Sender    string          `json:"sender"`
	Recipient string          `json:"recipient"`
	Denom     string          `json:"denom"`
	Amount    uint128.Uint128 `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}

type getTransfersResult struct {
	List []transferRecord `json:"list"`
}

type getTransfersResponse = HttpResponse[getTransfersResult]

func (h *HttpHandler) GetTransfers(ctx *fiber.Ctx) (err error) {
	var req getTransfersRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}
	if err := req.ParseDefault(); err != nil {
		return errors.WithStack(err)
	}

	transfers, err := h.processor.Transfers(ctx.UserContext(), req.Limit, req.Offset)
	if err != nil {
		return errors.Wrap(err, "error during Transfers")
	}

	resp := getTransfersResponse{
		Result: &getTransfersResult{
			List: lo.Map(transfers, func(transfer entity.TransferRecord, _ int) transferRecord {
				return transferRecord{
					ID:        transfer.ID,
					Sender:    transfer.Sender,
					Recipient: transfer.Recipient,
					Denom:     transfer.Denom,
					Amount:    transfer.Amount,
					CreatedAt: transfer.CreatedAt,
				}
			}),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
