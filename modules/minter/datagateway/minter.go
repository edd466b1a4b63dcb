package datagateway

import (
	"context"
	"time"

	"github.com/dega-network/nft-engine/modules/minter/internal/entity"
	"github.com/gaze-network/uint128"
)

type MinterDataGateway interface {
	BeginMinterTx(ctx context.Context) (MinterDataGatewayWithTx, error)

	// GetSettings returns errs.NotFound until the minter is instantiated.
	GetSettings(ctx context.Context) (*entity.Settings, error)
	SetSettings(ctx context.Context, settings entity.Settings) error

	// GetCollectionAddress returns errs.NotFound until the reply handler has
	// stored the paired collection's address. SetCollectionAddress is
	// write-once and returns errs.Conflict on a second write.
	GetCollectionAddress(ctx context.Context) (string, error)
	SetCollectionAddress(ctx context.Context, address string) error

	AddAdmin(ctx context.Context, address string) error
	RemoveAdmin(ctx context.Context, address string) error
	IsAdmin(ctx context.Context, address string) (bool, error)
	GetAdmins(ctx context.Context) ([]string, error)
	CountAdmins(ctx context.Context) (int64, error)

	HasNonce(ctx context.Context, uuid string) (bool, error)
	AddNonce(ctx context.Context, uuid string) error

	// NextTokenIndex increments and returns the monotonic token counter.
	// The first returned value is 1.
	NextTokenIndex(ctx context.Context) (uint64, error)

	AddMintRecord(ctx context.Context, arg AddMintRecordParams) error
	GetMintRecords(ctx context.Context, arg GetMintRecordsParams) ([]entity.MintRecord, error)

	AddTransfer(ctx context.Context, arg AddTransferParams) error
	GetTransfers(ctx context.Context, arg GetTransfersParams) ([]entity.TransferRecord, error)
}

type MinterDataGatewayWithTx interface {
	MinterDataGateway
	Tx
}

type AddMintRecordParams struct {
	TokenID       uint64
	UUID          string
	Sender        string
	Recipient     string
	URI           string
	Price         uint128.Uint128
	Currency      string
	Collection    string
	SaleRecipient string
	Signature     string
	MintedAt      time.Time
}

type GetMintRecordsParams struct {
	Limit  int32
	Offset int32
}

type AddTransferParams struct {
	Sender    string
	Recipient string
	Denom     string
	Amount    uint128.Uint128
}

type GetTransfersParams struct {
	Limit  int32
	Offset int32
}
