package entity

import (
	"time"

	"github.com/gaze-network/uint128"
)

// Settings is the minter's persisted configuration. Mutated only through
// admin-gated updates.
type Settings struct {
	// SignerPubKey is the base64 encoding of the 33-byte compressed
	// secp256k1 public key mint requests must be signed with.
	SignerPubKey string `json:"signer_pub_key"`

	MintingPaused bool `json:"minting_paused"`
}

// MintRequest is the signed, off-chain-generated mint authorization.
// Immutable once constructed; its identity is the canonical serialized byte
// form (see CanonicalBytes).
type MintRequest struct {
	To                     string          `json:"to"`
	PrimarySaleRecipient   string          `json:"primary_sale_recipient"`
	URI                    string          `json:"uri"`
	Price                  uint128.Uint128 `json:"price"`
	Currency               string          `json:"currency"`
	ValidityStartTimestamp uint64          `json:"validity_start_timestamp"`
	ValidityEndTimestamp   uint64          `json:"validity_end_timestamp"`
	UUID                   string          `json:"uuid"`
	Collection             string          `json:"collection"`
}

// MintRecord is the audit row written for every settled mint.
type MintRecord struct {
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

// TransferRecord is one payment forward written by the bank keeper.
type TransferRecord struct {
	ID        int64
	Sender    string
	Recipient string
	Denom     string
	Amount    uint128.Uint128
	CreatedAt time.Time
}
