package collection

import (
	"bytes"
	"context"
	"sort"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/modules/collection/datagateway"
	"github.com/dega-network/nft-engine/modules/collection/internal/entity"
	"github.com/stretchr/testify/require"
)

type collectionState struct {
	contractInfo   *entity.ContractInfo
	collectionInfo *entity.CollectionInfo
	owner          string
	tokens         map[string]*entity.Token
	// owner -> operator -> expires, zero time means the grant never expires
	operators map[string]map[string]time.Time
}

func newCollectionState() *collectionState {
	return &collectionState{
		tokens:    make(map[string]*entity.Token),
		operators: make(map[string]map[string]time.Time),
	}
}

func (s *collectionState) clone() *collectionState {
	out := newCollectionState()
	if s.contractInfo != nil {
		info := *s.contractInfo
		out.contractInfo = &info
	}
	if s.collectionInfo != nil {
		info := *s.collectionInfo
		if s.collectionInfo.ExternalLink != nil {
			link := *s.collectionInfo.ExternalLink
			info.ExternalLink = &link
		}
		if s.collectionInfo.RoyaltySettings != nil {
			settings := *s.collectionInfo.RoyaltySettings
			info.RoyaltySettings = &settings
		}
		out.collectionInfo = &info
	}
	out.owner = s.owner
	for tokenID, token := range s.tokens {
		out.tokens[tokenID] = cloneToken(token)
	}
	for owner, grants := range s.operators {
		cloned := make(map[string]time.Time, len(grants))
		for operator, expires := range grants {
			cloned[operator] = expires
		}
		out.operators[owner] = cloned
	}
	return out
}

func cloneToken(token *entity.Token) *entity.Token {
	out := *token
	if token.URI != nil {
		uri := *token.URI
		out.URI = &uri
	}
	out.Approvals = append([]entity.Approval(nil), token.Approvals...)
	return &out
}

type fakeCollectionFaults struct {
	beginTx   error
	hasToken  error
	mintToken error
}

// fakeCollectionDg is an in-memory CollectionDataGateway and TokenLedger
// with the same error semantics as the Postgres repository.
type fakeCollectionDg struct {
	st     *collectionState
	faults *fakeCollectionFaults
}

var (
	_ datagateway.CollectionDataGateway = (*fakeCollectionDg)(nil)
	_ datagateway.TokenLedger           = (*fakeCollectionDg)(nil)
)

func newFakeCollectionDg() *fakeCollectionDg {
	return &fakeCollectionDg{
		st:     newCollectionState(),
		faults: &fakeCollectionFaults{},
	}
}

func (d *fakeCollectionDg) BeginCollectionTx(_ context.Context) (datagateway.CollectionDataGatewayWithTx, error) {
	if d.faults.beginTx != nil {
		return nil, d.faults.beginTx
	}
	return &fakeCollectionTx{
		fakeCollectionDg: fakeCollectionDg{st: d.st.clone(), faults: d.faults},
		parent:           d,
	}, nil
}

func (d *fakeCollectionDg) GetContractInfo(_ context.Context) (*entity.ContractInfo, error) {
	if d.st.contractInfo == nil {
		return nil, errors.Wrap(errs.NotFound, "collection not instantiated")
	}
	info := *d.st.contractInfo
	return &info, nil
}

func (d *fakeCollectionDg) SetContractInfo(_ context.Context, info entity.ContractInfo) error {
	d.st.contractInfo = &info
	return nil
}

func (d *fakeCollectionDg) GetCollectionInfo(_ context.Context) (*entity.CollectionInfo, error) {
	if d.st.collectionInfo == nil {
		return nil, errors.Wrap(errs.NotFound, "collection not instantiated")
	}
	cloned := d.st.clone()
	return cloned.collectionInfo, nil
}

func (d *fakeCollectionDg) SetCollectionInfo(_ context.Context, info entity.CollectionInfo) error {
	d.st.collectionInfo = &info
	return nil
}

func (d *fakeCollectionDg) GetOwner(_ context.Context) (string, error) {
	if d.st.owner == "" {
		return "", errors.Wrap(errs.NotFound, "collection owner not set")
	}
	return d.st.owner, nil
}

func (d *fakeCollectionDg) SetOwner(_ context.Context, address string) error {
	if d.st.owner != "" {
		return errors.Wrap(errs.Conflict, "collection owner already set")
	}
	d.st.owner = address
	return nil
}

func (d *fakeCollectionDg) MintToken(_ context.Context, arg datagateway.MintTokenParams) error {
	if d.faults.mintToken != nil {
		return d.faults.mintToken
	}
	if _, ok := d.st.tokens[arg.TokenID]; ok {
		return errors.Wrapf(errs.Conflict, "token %s already claimed", arg.TokenID)
	}
	token := &entity.Token{
		TokenID:  arg.TokenID,
		Owner:    arg.Owner,
		MintedAt: arg.MintedAt,
	}
	if arg.URI != nil {
		uri := *arg.URI
		token.URI = &uri
	}
	d.st.tokens[arg.TokenID] = token
	return nil
}

func (d *fakeCollectionDg) TransferToken(_ context.Context, arg datagateway.TransferTokenParams) error {
	token, ok := d.st.tokens[arg.TokenID]
	if !ok {
		return errors.Wrapf(errs.NotFound, "token %s not found", arg.TokenID)
	}
	if !d.canSend(arg.Sender, token, arg.BlockTime) {
		return errors.Wrapf(errs.Unauthorized, "address %s cannot transfer token %s", arg.Sender, arg.TokenID)
	}
	token.Owner = arg.Recipient
	token.Approvals = nil
	return nil
}

func (d *fakeCollectionDg) BurnToken(_ context.Context, arg datagateway.BurnTokenParams) error {
	token, ok := d.st.tokens[arg.TokenID]
	if !ok {
		return errors.Wrapf(errs.NotFound, "token %s not found", arg.TokenID)
	}
	if !d.canSend(arg.Sender, token, arg.BlockTime) {
		return errors.Wrapf(errs.Unauthorized, "address %s cannot burn token %s", arg.Sender, arg.TokenID)
	}
	delete(d.st.tokens, arg.TokenID)
	return nil
}

func (d *fakeCollectionDg) Approve(_ context.Context, arg datagateway.ApproveParams) error {
	token, ok := d.st.tokens[arg.TokenID]
	if !ok {
		return errors.Wrapf(errs.NotFound, "token %s not found", arg.TokenID)
	}
	if !d.canApprove(arg.Sender, token, arg.BlockTime) {
		return errors.Wrapf(errs.Unauthorized, "address %s cannot grant approvals on token %s", arg.Sender, arg.TokenID)
	}
	if arg.Spender == token.Owner {
		return errors.Wrap(errs.Validation, "cannot approve the token owner")
	}
	for i, approval := range token.Approvals {
		if approval.Spender == arg.Spender {
			token.Approvals[i].Expires = arg.Expires
			return nil
		}
	}
	token.Approvals = append(token.Approvals, entity.Approval{
		Spender: arg.Spender,
		Expires: arg.Expires,
	})
	return nil
}

func (d *fakeCollectionDg) Revoke(_ context.Context, arg datagateway.RevokeParams) error {
	token, ok := d.st.tokens[arg.TokenID]
	if !ok {
		return errors.Wrapf(errs.NotFound, "token %s not found", arg.TokenID)
	}
	if !d.canApprove(arg.Sender, token, arg.BlockTime) {
		return errors.Wrapf(errs.Unauthorized, "address %s cannot revoke approvals on token %s", arg.Sender, arg.TokenID)
	}
	for i, approval := range token.Approvals {
		if approval.Spender == arg.Spender {
			token.Approvals = append(token.Approvals[:i], token.Approvals[i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(errs.NotFound, "approval for %s on token %s not found", arg.Spender, arg.TokenID)
}

func (d *fakeCollectionDg) ApproveAll(_ context.Context, arg datagateway.ApproveAllParams) error {
	grants, ok := d.st.operators[arg.Sender]
	if !ok {
		grants = make(map[string]time.Time)
		d.st.operators[arg.Sender] = grants
	}
	grants[arg.Operator] = arg.Expires
	return nil
}

func (d *fakeCollectionDg) RevokeAll(_ context.Context, arg datagateway.RevokeAllParams) error {
	delete(d.st.operators[arg.Sender], arg.Operator)
	return nil
}

func (d *fakeCollectionDg) GetToken(_ context.Context, tokenID string) (*entity.Token, error) {
	token, ok := d.st.tokens[tokenID]
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "token %s not found", tokenID)
	}
	out := cloneToken(token)
	sort.Slice(out.Approvals, func(i, j int) bool {
		return out.Approvals[i].Spender < out.Approvals[j].Spender
	})
	return out, nil
}

func (d *fakeCollectionDg) HasToken(_ context.Context, tokenID string) (bool, error) {
	if d.faults.hasToken != nil {
		return false, d.faults.hasToken
	}
	_, ok := d.st.tokens[tokenID]
	return ok, nil
}

func (d *fakeCollectionDg) NumTokens(_ context.Context) (int64, error) {
	return int64(len(d.st.tokens)), nil
}

func (d *fakeCollectionDg) GetTokensByOwner(_ context.Context, arg datagateway.GetTokensParams) ([]string, error) {
	return d.listTokens(arg, func(token *entity.Token) bool {
		return token.Owner == arg.Owner
	}), nil
}

func (d *fakeCollectionDg) GetAllTokens(_ context.Context, arg datagateway.GetTokensParams) ([]string, error) {
	return d.listTokens(arg, func(*entity.Token) bool { return true }), nil
}

func (d *fakeCollectionDg) listTokens(arg datagateway.GetTokensParams, match func(*entity.Token) bool) []string {
	limit := arg.Limit
	if limit <= 0 {
		limit = 100
	}
	var tokens []string
	for tokenID, token := range d.st.tokens {
		if tokenID > arg.StartAfter && match(token) {
			tokens = append(tokens, tokenID)
		}
	}
	sort.Strings(tokens)
	if int32(len(tokens)) > limit {
		tokens = tokens[:limit]
	}
	return tokens
}

func (d *fakeCollectionDg) GetOperatorsByOwner(_ context.Context, owner string) ([]entity.Operator, error) {
	var operators []entity.Operator
	for operator, expires := range d.st.operators[owner] {
		operators = append(operators, entity.Operator{
			Owner:    owner,
			Operator: operator,
			Expires:  expires,
		})
	}
	sort.Slice(operators, func(i, j int) bool {
		return operators[i].Operator < operators[j].Operator
	})
	return operators, nil
}

func (d *fakeCollectionDg) canSend(sender string, token *entity.Token, blockTime time.Time) bool {
	if sender == token.Owner {
		return true
	}
	for _, approval := range token.Approvals {
		if approval.Spender == sender && !approval.Expired(blockTime) {
			return true
		}
	}
	return d.isOperator(token.Owner, sender, blockTime)
}

func (d *fakeCollectionDg) canApprove(sender string, token *entity.Token, blockTime time.Time) bool {
	if sender == token.Owner {
		return true
	}
	return d.isOperator(token.Owner, sender, blockTime)
}

func (d *fakeCollectionDg) isOperator(owner, operator string, blockTime time.Time) bool {
	expires, ok := d.st.operators[owner][operator]
	if !ok {
		return false
	}
	grant := entity.Operator{Owner: owner, Operator: operator, Expires: expires}
	return !grant.Expired(blockTime)
}

// fakeCollectionTx snapshots the state at begin and publishes it on commit.
type fakeCollectionTx struct {
	fakeCollectionDg
	parent    *fakeCollectionDg
	committed bool
}

func (t *fakeCollectionTx) Commit(_ context.Context) error {
	*t.parent.st = *t.st
	t.committed = true
	return nil
}

func (t *fakeCollectionTx) Rollback(_ context.Context) error {
	return nil
}

type fakeAdminOracle struct {
	admins map[string]bool
	err    error
}

func (o *fakeAdminOracle) IsAdmin(_ context.Context, address string) (bool, error) {
	if o.err != nil {
		return false, o.err
	}
	return o.admins[address], nil
}

type fakeMinterGateway struct {
	paused bool
	err    error
}

func (g *fakeMinterGateway) MintingPaused(_ context.Context) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	return g.paused, nil
}

type fakeContractInfoQuerier struct {
	contracts map[string]bool
	err       error
}

func (q *fakeContractInfoQuerier) IsContract(_ context.Context, address string) (bool, error) {
	if q.err != nil {
		return false, q.err
	}
	return q.contracts[address], nil
}

type testEnv struct {
	processor *Processor
	dg        *fakeCollectionDg
	oracle    *fakeAdminOracle
	minterGw  *fakeMinterGateway
	querier   *fakeContractInfoQuerier
	owner     string
	admin     string
	blockTime time.Time
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

// newTestEnv builds an instantiated collection owned by a minter contract
// address, with one recognized minter admin.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	owner := contractAddress(t, 0x21)
	admin := accountAddress(t, 0x22)
	self, err := types.NewAddress(contractAddress(t, 0x2f))
	require.NoError(t, err)

	dg := newFakeCollectionDg()
	dg.st.contractInfo = &entity.ContractInfo{Name: "DEGA Originals", Symbol: "DEGAO"}
	dg.st.collectionInfo = &entity.CollectionInfo{
		Description: "The original collection",
		Image:       "https://cdn.example.com/collection.png",
	}
	dg.st.owner = owner

	oracle := &fakeAdminOracle{admins: map[string]bool{admin: true}}
	minterGw := &fakeMinterGateway{}
	querier := &fakeContractInfoQuerier{contracts: map[string]bool{owner: true}}

	return &testEnv{
		processor: NewProcessor(dg, dg, oracle, minterGw, querier, self, nil),
		dg:        dg,
		oracle:    oracle,
		minterGw:  minterGw,
		querier:   querier,
		owner:     owner,
		admin:     admin,
		blockTime: time.Unix(1_700_000_000, 0).UTC(),
	}
}

func (env *testEnv) txContext(sender string) types.TxContext {
	return types.TxContext{
		Sender:    types.Address(sender),
		BlockTime: env.blockTime,
	}
}

func approveParams(sender, spender, tokenID string, expires, blockTime time.Time) datagateway.ApproveParams {
	return datagateway.ApproveParams{
		Sender:    sender,
		Spender:   spender,
		TokenID:   tokenID,
		Expires:   expires,
		BlockTime: blockTime,
	}
}

func approveAllParams(sender, operator string, expires time.Time) datagateway.ApproveAllParams {
	return datagateway.ApproveAllParams{
		Sender:   sender,
		Operator: operator,
		Expires:  expires,
	}
}

// seedToken writes a token directly into the ledger state.
func (env *testEnv) seedToken(tokenID, owner string, uri *string) {
	env.dg.st.tokens[tokenID] = &entity.Token{
		TokenID:  tokenID,
		Owner:    owner,
		URI:      uri,
		MintedAt: env.blockTime,
	}
}
