package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/modules/minter/datagateway"
	"github.com/dega-network/nft-engine/pkg/logger"
	"github.com/jackc/pgx/v5"
)

var ErrTxAlreadyExists = errors.New("Transaction already exists. Call Commit() or Rollback() first.")

func (repo *Repository) begin(ctx context.Context) (*Repository, error) {
	if repo.tx != nil {
		return nil, errors.WithStack(ErrTxAlreadyExists)
	}
	tx, err := repo.db.Begin(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	return &Repository{
		db: repo.db,
		tx: tx,
	}, nil
}

func (repo *Repository) BeginMinterTx(ctx context.Context) (datagateway.MinterDataGatewayWithTx, error) {
	txRepo, err := repo.begin(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return txRepo, nil
}

func (repo *Repository) Commit(ctx context.Context) error {
	if repo.tx == nil {
		return nil
	}
	err := repo.tx.Commit(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	repo.tx = nil
	return nil
}

func (repo *Repository) Rollback(ctx context.Context) error {
	if repo.tx == nil {
		return nil
	}
	err := repo.tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return errors.Wrap(err, "failed to rollback transaction")
	}
	if err == nil {
		logger.DebugContext(ctx, "rolled back transaction")
	}
	repo.tx = nil
	return nil
}
