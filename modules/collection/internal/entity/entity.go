package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxDescriptionLength bounds the collection description.
const MaxDescriptionLength = 512

// CollectionInfo is the collection-level metadata. Mutated only by
// addresses the paired minter's admin registry recognizes as admins.
type CollectionInfo struct {
	Description     string           `json:"description"`
	Image           string           `json:"image"`
	ExternalLink    *string          `json:"external_link,omitempty"`
	RoyaltySettings *RoyaltySettings `json:"royalty_settings,omitempty"`
}

type RoyaltySettings struct {
	PaymentAddress string          `json:"payment_address"`
	Share          decimal.Decimal `json:"share"`
}

// ContractInfo is the collection's immutable name and symbol.
type ContractInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Token is one ledger entry: ownership, uri and approvals for a token id.
type Token struct {
	TokenID   string     `json:"token_id"`
	Owner     string     `json:"owner"`
	URI       *string    `json:"token_uri,omitempty"`
	Approvals []Approval `json:"approvals"`
	MintedAt  time.Time  `json:"-"`
}

// Approval grants a spender transfer rights over one token until expiry.
// A zero Expires never expires.
type Approval struct {
	Spender string    `json:"spender"`
	Expires time.Time `json:"expires"`
}

// Expired reports whether the approval has lapsed at blockTime.
func (a Approval) Expired(blockTime time.Time) bool {
	return !a.Expires.IsZero() && !blockTime.Before(a.Expires)
}

// Operator is a collection-wide approval from an owner to an operator.
type Operator struct {
	Owner    string    `json:"owner"`
	Operator string    `json:"operator"`
	Expires  time.Time `json:"expires"`
}

func (o Operator) Expired(blockTime time.Time) bool {
	return !o.Expires.IsZero() && !blockTime.Before(o.Expires)
}
