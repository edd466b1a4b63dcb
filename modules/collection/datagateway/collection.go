package datagateway

import (
	"context"

	"github.com/dega-network/nft-engine/modules/collection/internal/entity"
)

type CollectionDataGateway interface {
	BeginCollectionTx(ctx context.Context) (CollectionDataGatewayWithTx, error)

	// GetContractInfo returns errs.NotFound until the collection is
	// instantiated.
	GetContractInfo(ctx context.Context) (*entity.ContractInfo, error)
	SetContractInfo(ctx context.Context, info entity.ContractInfo) error

	GetCollectionInfo(ctx context.Context) (*entity.CollectionInfo, error)
	SetCollectionInfo(ctx context.Context, info entity.CollectionInfo) error

	// GetOwner returns the owning minter contract's address, set once at
	// instantiation.
	GetOwner(ctx context.Context) (string, error)
	SetOwner(ctx context.Context, address string) error
}

type CollectionDataGatewayWithTx interface {
	CollectionDataGateway
	Tx
}
