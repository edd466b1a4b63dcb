package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/modules/collection/datagateway"
	"github.com/dega-network/nft-engine/modules/collection/internal/entity"
	"github.com/jackc/pgx/v5"
)

const defaultTokenPageLimit = 100

func (repo *Repository) MintToken(ctx context.Context, arg datagateway.MintTokenParams) error {
	tag, err := repo.conn().Exec(ctx, `
		INSERT INTO collection_tokens (token_id, owner, uri, minted_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (token_id) DO NOTHING`,
		arg.TokenID, arg.Owner, arg.URI, arg.MintedAt,
	)
	if err != nil {
		return errors.Wrap(err, "Cannot mint token")
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(errs.Conflict, "token %s already claimed", arg.TokenID)
	}
	return nil
}

func (repo *Repository) TransferToken(ctx context.Context, arg datagateway.TransferTokenParams) error {
	token, err := repo.GetToken(ctx, arg.TokenID)
	if err != nil {
		return errors.WithStack(err)
	}
	allowed, err := repo.canSend(ctx, arg.Sender, token, arg.BlockTime)
	if err != nil {
		return errors.WithStack(err)
	}
	if !allowed {
		return errors.Wrapf(errs.Unauthorized, "address %s cannot transfer token %s", arg.Sender, arg.TokenID)
	}

	_, err = repo.conn().Exec(ctx,
		`UPDATE collection_tokens SET owner = $1 WHERE token_id = $2`,
		arg.Recipient, arg.TokenID,
	)
	if err != nil {
		return errors.Wrap(err, "Cannot transfer token")
	}
	// transfer resets per-token approvals
	_, err = repo.conn().Exec(ctx,
		`DELETE FROM collection_token_approvals WHERE token_id = $1`,
		arg.TokenID,
	)
	if err != nil {
		return errors.Wrap(err, "Cannot clear token approvals")
	}
	return nil
}

func (repo *Repository) BurnToken(ctx context.Context, arg datagateway.BurnTokenParams) error {
	token, err := repo.GetToken(ctx, arg.TokenID)
	if err != nil {
		return errors.WithStack(err)
	}
	allowed, err := repo.canSend(ctx, arg.Sender, token, arg.BlockTime)
	if err != nil {
		return errors.WithStack(err)
	}
	if !allowed {
		return errors.Wrapf(errs.Unauthorized, "address %s cannot burn token %s", arg.Sender, arg.TokenID)
	}

	_, err = repo.conn().Exec(ctx,
		`DELETE FROM collection_token_approvals WHERE token_id = $1`,
		arg.TokenID,
	)
	if err != nil {
		return errors.Wrap(err, "Cannot clear token approvals")
	}
	_, err = repo.conn().Exec(ctx,
		`DELETE FROM collection_tokens WHERE token_id = $1`,
		arg.TokenID,
	)
	if err != nil {
		return errors.Wrap(err, "Cannot burn token")
	}
	return nil
}

func (repo *Repository) Approve(ctx context.Context, arg datagateway.ApproveParams) error {
	token, err := repo.GetToken(ctx, arg.TokenID)
	if err != nil {
		return errors.WithStack(err)
	}
	allowed, err := repo.canApprove(ctx, arg.Sender, token, arg.BlockTime)
	if err != nil {
		return errors.WithStack(err)
	}
	if !allowed {
		return errors.Wrapf(errs.Unauthorized, "address %s cannot grant approvals on token %s", arg.Sender, arg.TokenID)
	}
	if arg.Spender == token.Owner {
		return errors.Wrap(errs.Validation, "cannot approve the token owner")
	}

	var expires *time.Time
	if !arg.Expires.IsZero() {
		expires = &arg.Expires
	}
	_, err = repo.conn().Exec(ctx, `
		INSERT INTO collection_token_approvals (token_id, spender, expires)
		VALUES ($1, $2, $3)
		ON CONFLICT (token_id, spender) DO UPDATE SET expires = $3`,
		arg.TokenID, arg.Spender, expires,
	)
	if err != nil {
		return errors.Wrap(err, "Cannot approve spender")
	}
	return nil
}

func (repo *Repository) Revoke(ctx context.Context, arg datagateway.RevokeParams) error {
	token, err := repo.GetToken(ctx, arg.TokenID)
	if err != nil {
		return errors.WithStack(err)
	}
	allowed, err := repo.canApprove(ctx, arg.Sender, token, arg.BlockTime)
	if err != nil {
		return errors.WithStack(err)
	}
	if !allowed {
		return errors.Wrapf(errs.Unauthorized, "address %s cannot revoke approvals on token %s", arg.Sender, arg.TokenID)
	}

	tag, err := repo.conn().Exec(ctx,
		`DELETE FROM collection_token_approvals WHERE token_id = $1 AND spender = $2`,
		arg.TokenID, arg.Spender,
	)
	if err != nil {
		return errors.Wrap(err, "Cannot revoke approval")
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(errs.NotFound, "approval for %s on token %s not found", arg.Spender, arg.TokenID)
	}
	return nil
}

func (repo *Repository) ApproveAll(ctx context.Context, arg datagateway.ApproveAllParams) error {
	var expires *time.Time
	if !arg.Expires.IsZero() {
		expires = &arg.Expires
	}
	_, err := repo.conn().Exec(ctx, `
		INSERT INTO collection_operators (owner, operator, expires)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner, operator) DO UPDATE SET expires = $3`,
		arg.Sender, arg.Operator, expires,
	)
	if err != nil {
		return errors.Wrap(err, "Cannot approve operator")
	}
	return nil
}

func (repo *Repository) RevokeAll(ctx context.Context, arg datagateway.RevokeAllParams) error {
	_, err := repo.conn().Exec(ctx,
		`DELETE FROM collection_operators WHERE owner = $1 AND operator = $2`,
		arg.Sender, arg.Operator,
	)
	if err != nil {
		return errors.Wrap(err, "Cannot revoke operator")
	}
	return nil
}

func (repo *Repository) GetToken(ctx context.Context, tokenID string) (*entity.Token, error) {
	var (
		token    entity.Token
		uri      sql.NullString
		mintedAt time.Time
	)
	err := repo.conn().QueryRow(ctx,
		`SELECT token_id, owner, uri, minted_at FROM collection_tokens WHERE token_id = $1`,
		tokenID,
	).Scan(&token.TokenID, &token.Owner, &uri, &mintedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrapf(errs.NotFound, "token %s not found", tokenID)
		}
		return nil, errors.Wrap(err, "Cannot get token")
	}
	if uri.Valid {
		token.URI = &uri.String
	}
	token.MintedAt = mintedAt.UTC()

	rows, err := repo.conn().Query(ctx,
		`SELECT spender, expires FROM collection_token_approvals WHERE token_id = $1 ORDER BY spender`,
		tokenID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "Cannot get token approvals")
	}
	defer rows.Close()
	for rows.Next() {
		var (
			approval entity.Approval
			expires  sql.NullTime
		)
		if err := rows.Scan(&approval.Spender, &expires); err != nil {
			return nil, errors.Wrap(err, "Cannot scan approval row")
		}
		if expires.Valid {
			approval.Expires = expires.Time.UTC()
		}
		token.Approvals = append(token.Approvals, approval)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "Cannot read approval rows")
	}
	return &token, nil
}

func (repo *Repository) HasToken(ctx context.Context, tokenID string) (bool, error) {
	var exists bool
	err := repo.conn().QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM collection_tokens WHERE token_id = $1)`,
		tokenID,
	).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, "Cannot check token existence")
	}
	return exists, nil
}

func (repo *Repository) NumTokens(ctx context.Context) (int64, error) {
	var count int64
	err := repo.conn().QueryRow(ctx,
		`SELECT COUNT(*) FROM collection_tokens`,
	).Scan(&count)
	if err != nil {
		return 0, errors.Wrap(err, "Cannot count tokens")
	}
	return count, nil
}

func (repo *Repository) GetTokensByOwner(ctx context.Context, arg datagateway.GetTokensParams) ([]string, error) {
	limit := arg.Limit
	if limit <= 0 {
		limit = defaultTokenPageLimit
	}
	rows, err := repo.conn().Query(ctx, `
		SELECT token_id FROM collection_tokens
		WHERE owner = $1 AND token_id > $2
		ORDER BY token_id
		LIMIT $3`,
		arg.Owner, arg.StartAfter, limit,
	)
	if err != nil {
		return nil, errors.Wrap(err, "Cannot list tokens by owner")
	}
	return scanTokenIDs(rows)
}

func (repo *Repository) GetAllTokens(ctx context.Context, arg datagateway.GetTokensParams) ([]string, error) {
	limit := arg.Limit
	if limit <= 0 {
		limit = defaultTokenPageLimit
	}
	rows, err := repo.conn().Query(ctx, `
		SELECT token_id FROM collection_tokens
		WHERE token_id > $1
		ORDER BY token_id
		LIMIT $2`,
		arg.StartAfter, limit,
	)
	if err != nil {
		return nil, errors.Wrap(err, "Cannot list tokens")
	}
	return scanTokenIDs(rows)
}

func (repo *Repository) GetOperatorsByOwner(ctx context.Context, owner string) ([]entity.Operator, error) {
	rows, err := repo.conn().Query(ctx,
		`SELECT owner, operator, expires FROM collection_operators WHERE owner = $1 ORDER BY operator`,
		owner,
	)
	if err != nil {
		return nil, errors.Wrap(err, "Cannot list operators")
	}
	defer rows.Close()

	var operators []entity.Operator
	for rows.Next() {
		var (
			operator entity.Operator
			expires  sql.NullTime
		)
		if err := rows.Scan(&operator.Owner, &operator.Operator, &expires); err != nil {
			return nil, errors.Wrap(err, "Cannot scan operator row")
		}
		if expires.Valid {
			operator.Expires = expires.Time.UTC()
		}
		operators = append(operators, operator)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "Cannot read operator rows")
	}
	return operators, nil
}

// canSend reports whether sender may move or burn the token: the owner, an
// unexpired per-token approval holder, or an unexpired operator of the
// owner.
func (repo *Repository) canSend(ctx context.Context, sender string, token *entity.Token, blockTime time.Time) (bool, error) {
	if sender == token.Owner {
		return true, nil
	}
	for _, approval := range token.Approvals {
		if approval.Spender == sender && !approval.Expired(blockTime) {
			return true, nil
		}
	}
	return repo.isOperator(ctx, token.Owner, sender, blockTime)
}

// canApprove reports whether sender may grant or revoke per-token
// approvals: the owner or an unexpired operator of the owner.
func (repo *Repository) canApprove(ctx context.Context, sender string, token *entity.Token, blockTime time.Time) (bool, error) {
	if sender == token.Owner {
		return true, nil
	}
	return repo.isOperator(ctx, token.Owner, sender, blockTime)
}

func (repo *Repository) isOperator(ctx context.Context, owner, operator string, blockTime time.Time) (bool, error) {
	var expires sql.NullTime
	err := repo.conn().QueryRow(ctx,
		`SELECT expires FROM collection_operators WHERE owner = $1 AND operator = $2`,
		owner, operator,
	).Scan(&expires)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, errors.Wrap(err, "Cannot check operator")
	}
	if expires.Valid && !blockTime.Before(expires.Time) {
		return false, nil
	}
	return true, nil
}

func scanTokenIDs(rows pgx.Rows) ([]string, error) {
	defer rows.Close()
	var tokens []string
	for rows.Next() {
		var tokenID string
		if err := rows.Scan(&tokenID); err != nil {
			return nil, errors.Wrap(err, "Cannot scan token row")
		}
		tokens = append(tokens, tokenID)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "Cannot read token rows")
	}
	return tokens, nil
}
