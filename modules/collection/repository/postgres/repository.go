package postgres

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/internal/postgres"
	"github.com/dega-network/nft-engine/modules/collection/datagateway"
	"github.com/dega-network/nft-engine/modules/collection/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var (
	_ datagateway.CollectionDataGateway = (*Repository)(nil)
	_ datagateway.TokenLedger           = (*Repository)(nil)
)

type Repository struct {
	db postgres.DB
	tx pgx.Tx
}

func NewRepository(db postgres.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// conn returns the active transaction when one is open, the pool otherwise.
func (repo *Repository) conn() postgres.Queryable {
	if repo.tx != nil {
		return repo.tx
	}
	return repo.db
}

func (repo *Repository) GetContractInfo(ctx context.Context) (*entity.ContractInfo, error) {
	var info entity.ContractInfo
	err := repo.conn().QueryRow(ctx,
		`SELECT name, symbol FROM collection_contract_info WHERE id = 1`,
	).Scan(&info.Name, &info.Symbol)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrap(errs.NotFound, "collection not instantiated")
		}
		return nil, errors.Wrap(err, "Cannot get contract info")
	}
	return &info, nil
}

func (repo *Repository) SetContractInfo(ctx context.Context, info entity.ContractInfo) error {
	_, err := repo.conn().Exec(ctx, `
		INSERT INTO collection_contract_info (id, name, symbol)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET name = $1, symbol = $2`,
		info.Name, info.Symbol,
	)
	if err != nil {
		return errors.Wrap(err, "Cannot set contract info")
	}
	return nil
}

func (repo *Repository) GetCollectionInfo(ctx context.Context) (*entity.CollectionInfo, error) {
	var (
		info           entity.CollectionInfo
		externalLink   sql.NullString
		royaltyAddress sql.NullString
		royaltyShare   sql.NullString
	)
	err := repo.conn().QueryRow(ctx, `
		SELECT description, image, external_link, royalty_payment_address, royalty_share
		FROM collection_info WHERE id = 1`,
	).Scan(&info.Description, &info.Image, &externalLink, &royaltyAddress, &royaltyShare)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrap(errs.NotFound, "collection not instantiated")
		}
		return nil, errors.Wrap(err, "Cannot get collection info")
	}
	if externalLink.Valid {
		info.ExternalLink = &externalLink.String
	}
	if royaltyAddress.Valid && royaltyShare.Valid {
		share, err := decimal.NewFromString(royaltyShare.String)
		if err != nil {
			return nil, errors.Wrap(err, "Cannot parse royalty share")
		}
		info.RoyaltySettings = &entity.RoyaltySettings{
			PaymentAddress: royaltyAddress.String,
			Share:          share,
		}
	}
	return &info, nil
}

func (repo *Repository) SetCollectionInfo(ctx context.Context, info entity.CollectionInfo) error {
	var (
		externalLink   *string
		royaltyAddress *string
		royaltyShare   *string
	)
	externalLink = info.ExternalLink
	if info.RoyaltySettings != nil {
		royaltyAddress = &info.RoyaltySettings.PaymentAddress
		share := info.RoyaltySettings.Share.String()
		royaltyShare = &share
	}
	_, err := repo.conn().Exec(ctx, `
		INSERT INTO collection_info (id, description, image, external_link, royalty_payment_address, royalty_share)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET description = $1, image = $2, external_link = $3, royalty_payment_address = $4, royalty_share = $5`,
		info.Description, info.Image, externalLink, royaltyAddress, royaltyShare,
	)
	if err != nil {
		return errors.Wrap(err, "Cannot set collection info")
	}
	return nil
}

func (repo *Repository) GetOwner(ctx context.Context) (string, error) {
	var owner string
	err := repo.conn().QueryRow(ctx,
		`SELECT address FROM collection_owner WHERE id = 1`,
	).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errors.Wrap(errs.NotFound, "collection owner not set")
		}
		return "", errors.Wrap(err, "Cannot get collection owner")
	}
	return owner, nil
}

func (repo *Repository) SetOwner(ctx context.Context, address string) error {
	tag, err := repo.conn().Exec(ctx, `
		INSERT INTO collection_owner (id, address)
		VALUES (1, $1)
		ON CONFLICT (id) DO NOTHING`,
		address,
	)
	if err != nil {
		return errors.Wrap(err, "Cannot set collection owner")
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrap(errs.Conflict, "collection owner already set")
	}
	return nil
}
