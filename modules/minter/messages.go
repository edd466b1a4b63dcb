package minter

import (
	"github.com/dega-network/nft-engine/modules/minter/internal/entity"
	"github.com/shopspring/decimal"
)

// InstantiateMsg bootstraps the minter and its paired collection contract.
type InstantiateMsg struct {
	MinterParams       MinterParams     `json:"minter_params"`
	CollectionParams   CollectionParams `json:"collection_params"`
	Cw721ContractLabel string           `json:"cw721_contract_label"`
	Cw721ContractAdmin *string          `json:"cw721_contract_admin,omitempty"`
}

type MinterParams struct {
	Settings     entity.Settings `json:"dega_minter_settings"`
	InitialAdmin string          `json:"initial_admin"`
}

type CollectionParams struct {
	CodeID uint64               `json:"code_id"`
	Name   string               `json:"name"`
	Symbol string               `json:"symbol"`
	Info   CollectionInfoParams `json:"info"`
}

// CollectionInfoParams is passed through verbatim to the collection
// contract's instantiation, which performs its own validation.
type CollectionInfoParams struct {
	Description     string         `json:"description"`
	Image           string         `json:"image"`
	ExternalLink    *string        `json:"external_link,omitempty"`
	RoyaltySettings *RoyaltyParams `json:"royalty_settings,omitempty"`
}

type RoyaltyParams struct {
	PaymentAddress string          `json:"payment_address"`
	Share          decimal.Decimal `json:"share"`
}

// ExecuteMsg is a tagged union. Exactly one field is set.
type ExecuteMsg struct {
	Mint           *MintMsg           `json:"mint,omitempty"`
	UpdateSettings *UpdateSettingsMsg `json:"update_settings,omitempty"`
	UpdateAdmin    *UpdateAdminMsg    `json:"update_admin,omitempty"`
}

type MintMsg struct {
	Request   entity.MintRequest `json:"request"`
	Signature string             `json:"signature"`
}

// UpdateSettingsMsg carries partial updates. Nil fields are left untouched.
type UpdateSettingsMsg struct {
	SignerPubKey  *string `json:"signer_pub_key,omitempty"`
	MintingPaused *bool   `json:"minting_paused,omitempty"`
}

type AdminCommand string

const (
	AdminCommandAdd    AdminCommand = "add"
	AdminCommandRemove AdminCommand = "remove"
)

type UpdateAdminMsg struct {
	Address string       `json:"address"`
	Command AdminCommand `json:"command"`
}

// MigrateMsg is the versioned-upgrade entrypoint. The actual upgrade steps
// live behind the Upgrader capability and are a recorded no-op by default.
type MigrateMsg struct {
	IsDev      bool   `json:"is_dev"`
	DevVersion string `json:"dev_version"`
}

// QueryMsg is a tagged union. Exactly one field is set.
type QueryMsg struct {
	Config   *ConfigQuery   `json:"config,omitempty"`
	CheckSig *CheckSigQuery `json:"check_sig,omitempty"`
	Admins   *AdminsQuery   `json:"admins,omitempty"`
	IsAdmin  *IsAdminQuery  `json:"is_admin,omitempty"`
}

type (
	ConfigQuery struct{}
	AdminsQuery struct{}
)

type IsAdminQuery struct {
	Address string `json:"address"`
}

type CheckSigQuery struct {
	Message         VerifiableMessage `json:"message"`
	Signature       string            `json:"signature"`
	SignerSourceMsg SignerSource      `json:"signer_source"`
}

// VerifiableMessage is either a free-form UTF-8 string or a structured mint
// request (hashed over its canonical serialization). Exactly one field is
// set.
type VerifiableMessage struct {
	String      *string             `json:"string,omitempty"`
	MintRequest *entity.MintRequest `json:"mint_request,omitempty"`
}

// SignerSource selects the public key to verify against. Exactly one field
// is set.
type SignerSource struct {
	// ConfigSignerPubKey verifies against the contract-configured signer key.
	ConfigSignerPubKey *struct{} `json:"config_signer_pub_key,omitempty"`
	// PubKeyBinary is a base64-encoded 33-byte compressed secp256k1 key
	// supplied by the caller.
	PubKeyBinary *string `json:"pub_key_binary,omitempty"`
}

type ConfigResponse struct {
	Settings          entity.Settings `json:"dega_minter_settings"`
	CollectionAddress string          `json:"collection_address"`
}

// CheckSigResponse reports verification outcome as data. Failures are
// captured in Error, never raised, because this doubles as a read-only
// diagnostic query.
type CheckSigResponse struct {
	IsValid        bool    `json:"is_valid"`
	MessageHashHex string  `json:"message_hash_hex"`
	Error          *string `json:"error,omitempty"`
}

type AdminsResponse struct {
	Admins []string `json:"admins"`
}

type IsAdminResponse struct {
	IsAdmin bool `json:"is_admin"`
}

// Reply is the platform-delivered result of the collection
// sub-instantiation. Exactly one of Result and Error is set.
type Reply struct {
	ID     uint64       `json:"id"`
	Result *ReplyResult `json:"result,omitempty"`
	Error  *string      `json:"error,omitempty"`
}

type ReplyResult struct {
	ContractAddress string `json:"contract_address"`
}
