package httphandler

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/modules/minter/internal/entity"
	"github.com/gaze-network/uint128"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getMintsRequest struct {
	paginationRequest
}

type mintRecord struct {
	TokenID       uint64          `json:"tokenId"`
	UUID          string          `json:"uuid"`
	Sender        string          `json:"sender"`
	Recipient     string          `json:"recipient"`
	URI           string          `json:"uri"`
	Price         uint128.Uint128 `json:"price"`
	Currency      string          `json:"currency"`
	Collection    string          `json:"collection"`
	SaleRecipient string          `json:"saleRecipient"`
	Signature     string          `json:"signature"`
	MintedAt      time.Time       `json:"mintedAt"`
}

type getMintsResult struct {
	List []mintRecord `json:"list"`
}

type getMintsResponse = HttpResponse[getMintsResult]

func (h *HttpHandler) GetMints(ctx *fiber.Ctx) (err error) {
	var req getMintsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}
	if err := req.ParseDefault(); err != nil {
		return errors.WithStack(err)
	}

	records, err := h.processor.Mints(ctx.UserContext(), req.Limit, req.Offset)
	if err != nil {
		return errors.Wrap(err, "error during Mints")
	}

	resp := getMintsResponse{
		Result: &getMintsResult{
			List: lo.Map(records, func(record entity.MintRecord, _ int) mintRecord {
				return mintRecord{
					TokenID:       record.TokenID,
					UUID:          record.UUID,
					Sender:        record.Sender,
					Recipient:     record.Recipient,
					URI:           record.URI,
					Price:         record.Price,
					Currency:      record.Currency,
					Collection:    record.Collection,
					SaleRecipient: record.SaleRecipient,
					Signature:     record.Signature,
					MintedAt:      record.MintedAt,
				}
			}),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
