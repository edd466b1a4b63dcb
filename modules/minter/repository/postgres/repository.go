package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/internal/postgres"
	"github.com/dega-network/nft-engine/modules/minter/datagateway"
	"github.com/dega-network/nft-engine/modules/minter/internal/entity"
	"github.com/jackc/pgx/v5"
)

var _ datagateway.MinterDataGateway = (*Repository)(nil)

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

func (repo *Repository) GetSettings(ctx context.Context) (*entity.Settings, error) {
	var settings entity.Settings
	err := repo.conn().QueryRow(ctx,
		`SELECT signer_pub_key, minting_paused FROM minter_settings WHERE id = 1`,
	).Scan(&settings.SignerPubKey, &settings.MintingPaused)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrap(errs.NotFound, "minter settings not initialized")
		}
		return nil, errors.Wrap(err, "Cannot get minter settings")
	}
	return &settings, nil
}

func (repo *Repository) SetSettings(ctx context.Context, settings entity.Settings) error {
	_, err := repo.conn().Exec(ctx, `
		INSERT INTO minter_settings (id, signer_pub_key, minting_paused)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET signer_pub_key = $1, minting_paused = $2`,
		settings.SignerPubKey, settings.MintingPaused,
	)
	if err != nil {
		return errors.Wrap(err, "Cannot set minter settings")
	}
	return nil
}

func (repo *Repository) GetCollectionAddress(ctx context.Context) (string, error) {
	var address string
	err := repo.conn().QueryRow(ctx,
		`SELECT address FROM minter_collection_address WHERE id = 1`,
	).Scan(&address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errors.Wrap(errs.NotFound, "collection address not set")
		}
		return "", errors.Wrap(err, "Cannot get collection address")
	}
	return address, nil
}

func (repo *Repository) SetCollectionAddress(ctx context.Context, address string) error {
	tag, err := repo.conn().Exec(ctx, `
		INSERT INTO minter_collection_address (id, address)
		VALUES (1, $1)
		ON CONFLICT (id) DO NOTHING`,
		address,
	)
	if err != nil {
		return errors.Wrap(err, "Cannot set collection address")
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrap(errs.Conflict, "collection address already set")
	}
	return nil
}

func (repo *Repository) AddAdmin(ctx context.Context, address string) error {
	tag, err := repo.conn().Exec(ctx, `
		INSERT INTO minter_admins (address)
		VALUES ($1)
		ON CONFLICT (address) DO NOTHING`,
		address,
	)
	if err != nil {
		return errors.Wrap(err, "Cannot add admin")
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(errs.Conflict, "admin %s already exists", address)
	}
	return nil
}

func (repo *Repository) RemoveAdmin(ctx context.Context, address string) error {
	tag, err := repo.conn().Exec(ctx,
		`DELETE FROM minter_admins WHERE address = $1`,
		address,
	)
	if err != nil {
		return errors.Wrap(err, "Cannot remove admin")
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(errs.NotFound, "admin %s not found", address)
	}
	return nil
}

func (repo *Repository) IsAdmin(ctx context.Context, address string) (bool, error) {
	var isAdmin bool
	err := repo.conn().QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM minter_admins WHERE address = $1)`,
		address,
	).Scan(&isAdmin)
	if err != nil {
		return false, errors.Wrap(err, "Cannot check admin membership")
	}
	return isAdmin, nil
}

func (repo *Repository) GetAdmins(ctx context.Context) ([]string, error) {
	rows, err := repo.conn().Query(ctx,
		`SELECT address FROM minter_admins ORDER BY added_at, address`,
	)
	if err != nil {
		return nil, errors.Wrap(err, "Cannot list admins")
	}
	defer rows.Close()

	var admins []string
	for rows.Next() {
		var address string
		if err := rows.Scan(&address); err != nil {
			return nil, errors.Wrap(err, "Cannot scan admin row")
		}
		admins = append(admins, address)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "Cannot read admin rows")
	}
	return admins, nil
}

func (repo *Repository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := repo.conn().QueryRow(ctx,
		`SELECT COUNT(*) FROM minter_admins`,
	).Scan(&count)
	if err != nil {
		return 0, errors.Wrap(err, "Cannot count admins")
	}
	return count, nil
}

func (repo *Repository) HasNonce(ctx context.Context, uuid string) (bool, error) {
	var exists bool
	err := repo.conn().QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM minter_nonces WHERE uuid = $1)`,
		uuid,
	).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, "Cannot check UUID registry")
	}
	return exists, nil
}

func (repo *Repository) AddNonce(ctx context.Context, uuid string) error {
	tag, err := repo.conn().Exec(ctx, `
		INSERT INTO minter_nonces (uuid)
		VALUES ($1)
		ON CONFLICT (uuid) DO NOTHING`,
		uuid,
	)
	if err != nil {
		return errors.Wrap(err, "Cannot register UUID")
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(errs.Conflict, "UUID %s already registered", uuid)
	}
	return nil
}

func (repo *Repository) NextTokenIndex(ctx context.Context) (uint64, error) {
	var value int64
	err := repo.conn().QueryRow(ctx, `
		INSERT INTO minter_token_index (id, value)
		VALUES (1, 1)
		ON CONFLICT (id) DO UPDATE SET value = minter_token_index.value + 1
		RETURNING value`,
	).Scan(&value)
	if err != nil {
		return 0, errors.Wrap(err, "Cannot advance token index")
	}
	return uint64(value), nil
}

func (repo *Repository) AddMintRecord(ctx context.Context, arg datagateway.AddMintRecordParams) error {
	price, err := numericFromUint128(arg.Price)
	if err != nil {
		return errors.Wrap(err, "Cannot convert price")
	}
	_, err = repo.conn().Exec(ctx, `
		INSERT INTO minter_mints (token_id, uuid, sender, recipient, uri, price, currency, collection, sale_recipient, signature, minted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		int64(arg.TokenID), arg.UUID, arg.Sender, arg.Recipient, arg.URI,
		price, arg.Currency, arg.Collection, arg.SaleRecipient, arg.Signature, arg.MintedAt,
	)
	if err != nil {
		return errors.Wrap(err, "Cannot add mint record")
	}
	return nil
}

func (repo *Repository) GetMintRecords(ctx context.Context, arg datagateway.GetMintRecordsParams) ([]entity.MintRecord, error) {
	rows, err := repo.conn().Query(ctx, `
		SELECT token_id, uuid, sender, recipient, uri, price, currency, collection, sale_recipient, signature, minted_at
		FROM minter_mints
		ORDER BY token_id DESC
		LIMIT $1 OFFSET $2`,
		arg.Limit, arg.Offset,
	)
	if err != nil {
		return nil, errors.Wrap(err, "Cannot list mint records")
	}
	defer rows.Close()

	var records []entity.MintRecord
	for rows.Next() {
		record, err := scanMintRecord(rows)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "Cannot read mint record rows")
	}
	return records, nil
}

func (repo *Repository) AddTransfer(ctx context.Context, arg datagateway.AddTransferParams) error {
	amount, err := numericFromUint128(arg.Amount)
	if err != nil {
		return errors.Wrap(err, "Cannot convert amount")
	}
	_, err = repo.conn().Exec(ctx, `
		INSERT INTO minter_transfers (sender, recipient, denom, amount)
		VALUES ($1, $2, $3, $4)`,
		arg.Sender, arg.Recipient, arg.Denom, amount,
	)
	if err != nil {
		return errors.Wrap(err, "Cannot add transfer")
	}
	return nil
}

func (repo *Repository) GetTransfers(ctx context.Context, arg datagateway.GetTransfersParams) ([]entity.TransferRecord, error) {
	rows, err := repo.conn().Query(ctx, `
		SELECT id, sender, recipient, denom, amount, created_at
		FROM minter_transfers
		ORDER BY id DESC
		LIMIT $1 OFFSET $2`,
		arg.Limit, arg.Offset,
	)
	if err != nil {
		return nil, errors.Wrap(err, "Cannot list transfers")
	}
	defer rows.Close()

	var transfers []entity.TransferRecord
	for rows.Next() {
		transfer, err := scanTransferRecord(rows)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		transfers = append(transfers, transfer)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "Cannot read transfer rows")
	}
	return transfers, nil
}
