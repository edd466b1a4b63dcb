package minter

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/modules/minter/datagateway"
	"github.com/dega-network/nft-engine/modules/minter/internal/entity"
	"github.com/dega-network/nft-engine/pkg/signverify"
	"github.com/gaze-network/uint128"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// minterState is the in-memory contract state shared between the fake data
// gateway and its transaction clones.
type minterState struct {
	settings          *entity.Settings
	collectionAddress string
	admins            []string
	nonces            map[string]struct{}
	tokenIndex        uint64
	mints             []entity.MintRecord
	transfers         []entity.TransferRecord
}

func newMinterState() *minterState {
	return &minterState{
		nonces: make(map[string]struct{}),
	}
}

func (s *minterState) clone() *minterState {
	out := &minterState{
		collectionAddress: s.collectionAddress,
		admins:            append([]string(nil), s.admins...),
		nonces:            make(map[string]struct{}, len(s.nonces)),
		tokenIndex:        s.tokenIndex,
		mints:             append([]entity.MintRecord(nil), s.mints...),
		transfers:         append([]entity.TransferRecord(nil), s.transfers...),
	}
	if s.settings != nil {
		settings := *s.settings
		out.settings = &settings
	}
	for nonce := range s.nonces {
		out.nonces[nonce] = struct{}{}
	}
	return out
}

// fakeMinterFaults carries injected failures, keyed by operation.
type fakeMinterFaults struct {
	beginTx       error
	addMintRecord error
	addTransfer   error
}

type fakeMinterDg struct {
	st     *minterState
	faults *fakeMinterFaults
}

var _ datagateway.MinterDataGateway = (*fakeMinterDg)(nil)

func newFakeMinterDg() *fakeMinterDg {
	return &fakeMinterDg{
		st:     newMinterState(),
		faults: &fakeMinterFaults{},
	}
}

func (f *fakeMinterDg) BeginMinterTx(_ context.Context) (datagateway.MinterDataGatewayWithTx, error) {
	if f.faults.beginTx != nil {
		return nil, f.faults.beginTx
	}
	return &fakeMinterTx{
		fakeMinterDg: fakeMinterDg{st: f.st.clone(), faults: f.faults},
		parent:       f,
	}, nil
}

func (f *fakeMinterDg) GetSettings(_ context.Context) (*entity.Settings, error) {
	if f.st.settings == nil {
		return nil, errs.NotFound
	}
	settings := *f.st.settings
	return &settings, nil
}

func (f *fakeMinterDg) SetSettings(_ context.Context, settings entity.Settings) error {
	f.st.settings = &settings
	return nil
}

func (f *fakeMinterDg) GetCollectionAddress(_ context.Context) (string, error) {
	if f.st.collectionAddress == "" {
		return "", errs.NotFound
	}
	return f.st.collectionAddress, nil
}

func (f *fakeMinterDg) SetCollectionAddress(_ context.Context, address string) error {
	if f.st.collectionAddress != "" {
		return errs.Conflict
	}
	f.st.collectionAddress = address
	return nil
}

func (f *fakeMinterDg) AddAdmin(_ context.Context, address string) error {
	if lo.Contains(f.st.admins, address) {
		return errs.Conflict
	}
	f.st.admins = append(f.st.admins, address)
	return nil
}

func (f *fakeMinterDg) RemoveAdmin(_ context.Context, address string) error {
	if !lo.Contains(f.st.admins, address) {
		return errs.NotFound
	}
	f.st.admins = lo.Without(f.st.admins, address)
	return nil
}

func (f *fakeMinterDg) IsAdmin(_ context.Context, address string) (bool, error) {
	return lo.Contains(f.st.admins, address), nil
}

func (f *fakeMinterDg) GetAdmins(_ context.Context) ([]string, error) {
	return append([]string(nil), f.st.admins...), nil
}

func (f *fakeMinterDg) CountAdmins(_ context.Context) (int64, error) {
	return int64(len(f.st.admins)), nil
}

func (f *fakeMinterDg) HasNonce(_ context.Context, nonce string) (bool, error) {
	_, ok := f.st.nonces[nonce]
	return ok, nil
}

func (f *fakeMinterDg) AddNonce(_ context.Context, nonce string) error {
	if _, ok := f.st.nonces[nonce]; ok {
		return errs.Conflict
	}
	f.st.nonces[nonce] = struct{}{}
	return nil
}

func (f *fakeMinterDg) NextTokenIndex(_ context.Context) (uint64, error) {
	f.st.tokenIndex++
	return f.st.tokenIndex, nil
}

func (f *fakeMinterDg) AddMintRecord(_ context.Context, arg datagateway.AddMintRecordParams) error {
	if f.faults.addMintRecord != nil {
		return f.faults.addMintRecord
	}
	f.st.mints = append(f.st.mints, entity.MintRecord{
		TokenID:       arg.TokenID,
		UUID:          arg.UUID,
		Sender:        arg.Sender,
		Recipient:     arg.Recipient,
		URI:           arg.URI,
		Price:         arg.Price,
		Currency:      arg.Currency,
		Collection:    arg.Collection,
		SaleRecipient: arg.SaleRecipient,
		Signature:     arg.Signature,
		MintedAt:      arg.MintedAt,
	})
	return nil
}

func (f *fakeMinterDg) GetMintRecords(_ context.Context, arg datagateway.GetMintRecordsParams) ([]entity.MintRecord, error) {
	records := append([]entity.MintRecord(nil), f.st.mints...)
	if int(arg.Offset) >= len(records) {
		return nil, nil
	}
	records = records[arg.Offset:]
	if arg.Limit > 0 && int(arg.Limit) < len(records) {
		records = records[:arg.Limit]
	}
	return records, nil
}

func (f *fakeMinterDg) AddTransfer(_ context.Context, arg datagateway.AddTransferParams) error {
	if f.faults.addTransfer != nil {
		return f.faults.addTransfer
	}
	f.st.transfers = append(f.st.transfers, entity.TransferRecord{
		ID:        int64(len(f.st.transfers) + 1),
		Sender:    arg.Sender,
		Recipient: arg.Recipient,
		Denom:     arg.Denom,
		Amount:    arg.Amount,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

func (f *fakeMinterDg) GetTransfers(_ context.Context, arg datagateway.GetTransfersParams) ([]entity.TransferRecord, error) {
	transfers := append([]entity.TransferRecord(nil), f.st.transfers...)
	if int(arg.Offset) >= len(transfers) {
		return nil, nil
	}
	transfers = transfers[arg.Offset:]
	if arg.Limit > 0 && int(arg.Limit) < len(transfers) {
		transfers = transfers[:arg.Limit]
	}
	return transfers, nil
}

// fakeMinterTx applies mutations to a state clone and publishes it on
// Commit, matching the repository's transaction semantics.
type fakeMinterTx struct {
	fakeMinterDg
	parent    *fakeMinterDg
	committed bool
}

var _ datagateway.MinterDataGatewayWithTx = (*fakeMinterTx)(nil)

func (t *fakeMinterTx) Commit(_ context.Context) error {
	*t.parent.st = *t.st
	t.committed = true
	return nil
}

func (t *fakeMinterTx) Rollback(_ context.Context) error {
	return nil
}

type fakeCollectionGateway struct {
	instantiateAddress types.Address
	instantiateErr     error
	mintErr            error

	instantiates []datagateway.InstantiateCollectionParams
	mints        []types.MintInstruction
}

var _ datagateway.CollectionGateway = (*fakeCollectionGateway)(nil)

func (f *fakeCollectionGateway) Instantiate(_ context.Context, _ types.Address, arg datagateway.InstantiateCollectionParams) (types.Address, error) {
	if f.instantiateErr != nil {
		return "", f.instantiateErr
	}
	f.instantiates = append(f.instantiates, arg)
	return f.instantiateAddress, nil
}

func (f *fakeCollectionGateway) Mint(_ context.Context, _ types.Address, instruction types.MintInstruction) error {
	if f.mintErr != nil {
		return f.mintErr
	}
	f.mints = append(f.mints, instruction)
	return nil
}

type bankSend struct {
	From   types.Address
	To     types.Address
	Amount []types.Coin
}

type fakeBankKeeper struct {
	sendErr error
	sends   []bankSend
}

var _ datagateway.BankKeeper = (*fakeBankKeeper)(nil)

func (f *fakeBankKeeper) Send(_ context.Context, from types.Address, to types.Address, amount []types.Coin) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sends = append(f.sends, bankSend{From: from, To: to, Amount: amount})
	return nil
}

func accountAddress(t *testing.T, b byte) string {
	t.Helper()
	addr, err := types.EncodeAddress(bytes.Repeat([]byte{b}, 20))
	require.NoError(t, err)
	return addr.String()
}

func contractAddress(t *testing.T, b byte) string {
	t.Helper()
	addr, err := types.EncodeAddress(bytes.Repeat([]byte{b}, 32))
	require.NoError(t, err)
	return addr.String()
}

type testEnv struct {
	processor  *Processor
	dg         *fakeMinterDg
	collection *fakeCollectionGateway
	bank       *fakeBankKeeper

	signerKey         *secp256k1.PrivateKey
	admin             string
	collectionAddress string
	blockTime         time.Time
}

// newTestEnv builds an instantiated minter: stored settings, one admin and
// a paired collection address.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	signerKey, err := signverify.GenerateKeypair()
	require.NoError(t, err)

	dg := newFakeMinterDg()
	collectionAddr := contractAddress(t, 0xCC)
	admin := accountAddress(t, 0xAD)

	require.NoError(t, dg.SetSettings(ctx, entity.Settings{SignerPubKey: signverify.PubKeyBase64(signerKey)}))
	require.NoError(t, dg.AddAdmin(ctx, admin))
	require.NoError(t, dg.SetCollectionAddress(ctx, collectionAddr))

	coll := &fakeCollectionGateway{instantiateAddress: types.Address(collectionAddr)}
	bank := &fakeBankKeeper{}

	processor := NewProcessor(dg, coll, bank, NewNoopUpgrader(), types.Address(contractAddress(t, 0x11)), nil)
	return &testEnv{
		processor:         processor,
		dg:                dg,
		collection:        coll,
		bank:              bank,
		signerKey:         signerKey,
		admin:             admin,
		collectionAddress: collectionAddr,
		blockTime:         time.Unix(1_700_000_000, 0).UTC(),
	}
}

// mintRequest builds a request valid at env.blockTime, signed by the
// configured signer unless mutated afterwards.
func (env *testEnv) mintRequest(t *testing.T, mutate func(*entity.MintRequest)) (entity.MintRequest, string) {
	t.Helper()
	now := uint64(env.blockTime.Unix())
	request := entity.MintRequest{
		To:                     accountAddress(t, 0x01),
		PrimarySaleRecipient:   accountAddress(t, 0x02),
		URI:                    "https://metadata.example.com/tokens/1.json",
		Price:                  uint128.From64(1000),
		Currency:               "inj",
		ValidityStartTimestamp: now - 60,
		ValidityEndTimestamp:   now + 3600,
		UUID:                   uuid.NewString(),
		Collection:             env.collectionAddress,
	}
	if mutate != nil {
		mutate(&request)
	}
	signature := signverify.Sign(request.CanonicalBytes(), env.signerKey)
	return request, signature
}

func (env *testEnv) mintTxContext(t *testing.T, request entity.MintRequest) types.TxContext {
	t.Helper()
	return types.TxContext{
		Sender:    types.Address(accountAddress(t, 0x03)),
		Funds:     []types.Coin{types.NewCoin(request.Currency, request.Price)},
		BlockTime: env.blockTime,
	}
}
