package datagateway

import (
	"context"
	"time"

	"github.com/dega-network/nft-engine/modules/collection/internal/entity"
)

// TokenLedger is the base NFT token ledger the collection contract defers
// token bookkeeping to. Sender authorization (owner, per-token approval,
// collection-wide operator) is the ledger's obligation; the collection
// layers collection-level rules on top.
type TokenLedger interface {
	// MintToken returns errs.Conflict when the token id is already claimed.
	MintToken(ctx context.Context, arg MintTokenParams) error
	TransferToken(ctx context.Context, arg TransferTokenParams) error
	BurnToken(ctx context.Context, arg BurnTokenParams) error

	Approve(ctx context.Context, arg ApproveParams) error
	Revoke(ctx context.Context, arg RevokeParams) error
	ApproveAll(ctx context.Context, arg ApproveAllParams) error
	RevokeAll(ctx context.Context, arg RevokeAllParams) error

	GetToken(ctx context.Context, tokenID string) (*entity.Token, error)
	HasToken(ctx context.Context, tokenID string) (bool, error)
	NumTokens(ctx context.Context) (int64, error)
	GetTokensByOwner(ctx context.Context, arg GetTokensParams) ([]string, error)
	GetAllTokens(ctx context.Context, arg GetTokensParams) ([]string, error)
	GetOperatorsByOwner(ctx context.Context, owner string) ([]entity.Operator, error)
}

type MintTokenParams struct {
	TokenID  string
	Owner    string
	URI      *string
	MintedAt time.Time
}

type TransferTokenParams struct {
	Sender    string
	Recipient string
	TokenID   string
	BlockTime time.Time
}

type BurnTokenParams struct {
	Sender    string
	TokenID   string
	BlockTime time.Time
}

type ApproveParams struct {
	Sender    string
	Spender   string
	TokenID   string
	Expires   time.Time
	BlockTime time.Time
}

type RevokeParams struct {
	Sender    string
	Spender   string
	TokenID   string
	BlockTime time.Time
}

type ApproveAllParams struct {
	Sender   string
	Operator string
	Expires  time.Time
}

type RevokeAllParams struct {
	Sender   string
	Operator string
}

// GetTokensParams paginates token-id enumeration. Owner is empty for
// collection-wide listing.
type GetTokensParams struct {
	Owner      string
	StartAfter string
	Limit      int32
}
