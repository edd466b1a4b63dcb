package collection

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/modules/collection/internal/entity"
	"github.com/gaze-network/uint128"
	"github.com/shopspring/decimal"
)

type InstantiateMsg struct {
	Name           string                `json:"name"`
	Symbol         string                `json:"symbol"`
	CollectionInfo entity.CollectionInfo `json:"collection_info"`
}

// ExecuteMsg is a tagged union. Exactly one field is set. Every variant
// except Mint and UpdateCollectionInfo passes through to the base token
// ledger.
type ExecuteMsg struct {
	TransferNft          *TransferNftMsg          `json:"transfer_nft,omitempty"`
	SendNft              *SendNftMsg              `json:"send_nft,omitempty"`
	Approve              *ApproveMsg              `json:"approve,omitempty"`
	Revoke               *RevokeMsg               `json:"revoke,omitempty"`
	ApproveAll           *ApproveAllMsg           `json:"approve_all,omitempty"`
	RevokeAll            *RevokeAllMsg            `json:"revoke_all,omitempty"`
	Burn                 *BurnMsg                 `json:"burn,omitempty"`
	Mint                 *MintMsg                 `json:"mint,omitempty"`
	UpdateCollectionInfo *UpdateCollectionInfoMsg `json:"update_collection_info,omitempty"`
}

type TransferNftMsg struct {
	Recipient string `json:"recipient"`
	TokenID   string `json:"token_id"`
}

type SendNftMsg struct {
	Contract string          `json:"contract"`
	TokenID  string          `json:"token_id"`
	Msg      json.RawMessage `json:"msg,omitempty"`
}

type ApproveMsg struct {
	Spender string    `json:"spender"`
	TokenID string    `json:"token_id"`
	Expires time.Time `json:"expires,omitempty"`
}

type RevokeMsg struct {
	Spender string `json:"spender"`
	TokenID string `json:"token_id"`
}

type ApproveAllMsg struct {
	Operator string    `json:"operator"`
	Expires  time.Time `json:"expires,omitempty"`
}

type RevokeAllMsg struct {
	Operator string `json:"operator"`
}

type BurnMsg struct {
	TokenID string `json:"token_id"`
}

type MintMsg struct {
	TokenID   string          `json:"token_id"`
	Owner     string          `json:"owner"`
	TokenURI  *string         `json:"token_uri,omitempty"`
	Extension json.RawMessage `json:"extension,omitempty"`
}

// UpdateCollectionInfoMsg carries partial updates. Plain pointer fields
// distinguish absent (unchanged) from present; the Nullable fields further
// distinguish an explicit null, which clears the stored value.
type UpdateCollectionInfoMsg struct {
	Description     *string                 `json:"description,omitempty"`
	Image           *string                 `json:"image,omitempty"`
	ExternalLink    Nullable[string]        `json:"external_link,omitempty"`
	RoyaltySettings Nullable[RoyaltyUpdate] `json:"royalty_settings,omitempty"`
}

type RoyaltyUpdate struct {
	PaymentAddress string          `json:"payment_address"`
	Share          decimal.Decimal `json:"share"`
}

// Nullable models a double-optional JSON field: Set is false when the key
// was absent, true with a nil Value for an explicit null.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return errors.WithStack(err)
	}
	n.Value = &value
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Value == nil {
		return []byte("null"), nil
	}
	out, err := json.Marshal(n.Value)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}

// QueryMsg is a tagged union. Exactly one field is set.
type QueryMsg struct {
	OwnerOf        *OwnerOfQuery        `json:"owner_of,omitempty"`
	Approval       *ApprovalQuery       `json:"approval,omitempty"`
	Approvals      *ApprovalsQuery      `json:"approvals,omitempty"`
	AllOperators   *AllOperatorsQuery   `json:"all_operators,omitempty"`
	NumTokens      *NumTokensQuery      `json:"num_tokens,omitempty"`
	ContractInfo   *ContractInfoQuery   `json:"contract_info,omitempty"`
	NftInfo        *NftInfoQuery        `json:"nft_info,omitempty"`
	AllNftInfo     *AllNftInfoQuery     `json:"all_nft_info,omitempty"`
	Tokens         *TokensQuery         `json:"tokens,omitempty"`
	AllTokens      *AllTokensQuery      `json:"all_tokens,omitempty"`
	Minter         *MinterQuery         `json:"minter,omitempty"`
	CollectionInfo *CollectionInfoQuery `json:"collection_info,omitempty"`
	RoyaltyInfo    *RoyaltyInfoQuery    `json:"royalty_info,omitempty"`
	CheckRoyalties *CheckRoyaltiesQuery `json:"check_royalties,omitempty"`
}

type (
	NumTokensQuery      struct{}
	ContractInfoQuery   struct{}
	MinterQuery         struct{}
	CollectionInfoQuery struct{}
	CheckRoyaltiesQuery struct{}
)

type OwnerOfQuery struct {
	TokenID        string `json:"token_id"`
	IncludeExpired bool   `json:"include_expired,omitempty"`
}

type ApprovalQuery struct {
	TokenID        string `json:"token_id"`
	Spender        string `json:"spender"`
	IncludeExpired bool   `json:"include_expired,omitempty"`
}

type ApprovalsQuery struct {
	TokenID        string `json:"token_id"`
	IncludeExpired bool   `json:"include_expired,omitempty"`
}

type AllOperatorsQuery struct {
	Owner          string `json:"owner"`
	IncludeExpired bool   `json:"include_expired,omitempty"`
}

type NftInfoQuery struct {
	TokenID string `json:"token_id"`
}

type AllNftInfoQuery struct {
	TokenID        string `json:"token_id"`
	IncludeExpired bool   `json:"include_expired,omitempty"`
}

type TokensQuery struct {
	Owner      string `json:"owner"`
	StartAfter string `json:"start_after,omitempty"`
	Limit      int32  `json:"limit,omitempty"`
}

type AllTokensQuery struct {
	StartAfter string `json:"start_after,omitempty"`
	Limit      int32  `json:"limit,omitempty"`
}

type RoyaltyInfoQuery struct {
	TokenID   string          `json:"token_id"`
	SalePrice uint128.Uint128 `json:"sale_price"`
}

type OwnerOfResponse struct {
	Owner     string            `json:"owner"`
	Approvals []entity.Approval `json:"approvals"`
}

type ApprovalResponse struct {
	Approval entity.Approval `json:"approval"`
}

type ApprovalsResponse struct {
	Approvals []entity.Approval `json:"approvals"`
}

type OperatorsResponse struct {
	Operators []entity.Operator `json:"operators"`
}

type NumTokensResponse struct {
	Count int64 `json:"count"`
}

type NftInfoResponse struct {
	TokenURI  *string         `json:"token_uri,omitempty"`
	Extension json.RawMessage `json:"extension,omitempty"`
}

type AllNftInfoResponse struct {
	Access OwnerOfResponse `json:"access"`
	Info   NftInfoResponse `json:"info"`
}

type TokensResponse struct {
	Tokens []string `json:"tokens"`
}

type MinterResponse struct {
	Minter string `json:"minter"`
}

type ContractInfoResponse struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type CollectionInfoResponse struct {
	Description     string                  `json:"description"`
	Image           string                  `json:"image"`
	ExternalLink    *string                 `json:"external_link,omitempty"`
	RoyaltySettings *entity.RoyaltySettings `json:"royalty_settings,omitempty"`
}

type RoyaltyInfoResponse struct {
	Address       string          `json:"address"`
	RoyaltyAmount uint128.Uint128 `json:"royalty_amount"`
}

type CheckRoyaltiesResponse struct {
	RoyaltyPayments bool `json:"royalty_payments"`
}
