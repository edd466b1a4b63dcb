package postgres

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/modules/minter/internal/entity"
	"github.com/gaze-network/uint128"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func uint128FromNumeric(src pgtype.Numeric) (uint128.Uint128, error) {
	if !src.Valid {
		return uint128.Zero, nil
	}
	bytes, err := src.MarshalJSON()
	if err != nil {
		return uint128.Zero, errors.WithStack(err)
	}
	result, err := uint128.FromString(string(bytes))
	if err != nil {
		return uint128.Zero, errors.WithStack(err)
	}
	return result, nil
}

func numericFromUint128(src uint128.Uint128) (pgtype.Numeric, error) {
	var result pgtype.Numeric
	err := result.UnmarshalJSON([]byte(src.String()))
	if err != nil {
		return pgtype.Numeric{}, errors.WithStack(err)
	}
	return result, nil
}

func scanMintRecord(row pgx.Row) (entity.MintRecord, error) {
	var (
		record   entity.MintRecord
		tokenID  int64
		price    pgtype.Numeric
		mintedAt time.Time
	)
	err := row.Scan(&tokenID, &record.UUID, &record.Sender, &record.Recipient, &record.URI,
		&price, &record.Currency, &record.Collection, &record.SaleRecipient, &record.Signature, &mintedAt)
	if err != nil {
		return entity.MintRecord{}, errors.Wrap(err, "Cannot scan mint record")
	}
	record.TokenID = uint64(tokenID)
	record.Price, err = uint128FromNumeric(price)
	if err != nil {
		return entity.MintRecord{}, errors.Wrap(err, "Cannot parse mint price")
	}
	record.MintedAt = mintedAt.UTC()
	return record, nil
}

func scanTransferRecord(row pgx.Row) (entity.TransferRecord, error) {
	var (
		transfer  entity.TransferRecord
		amount    pgtype.Numeric
		createdAt time.Time
	)
	err := row.Scan(&transfer.ID, &transfer.Sender, &transfer.Recipient, &transfer.Denom, &amount, &createdAt)
	if err != nil {
		return entity.TransferRecord{}, errors.Wrap(err, "Cannot scan transfer")
	}
	transfer.Amount, err = uint128FromNumeric(amount)
	if err != nil {
		return entity.TransferRecord{}, errors.Wrap(err, "Cannot parse transfer amount")
	}
	transfer.CreatedAt = createdAt.UTC()
	return transfer, nil
}
