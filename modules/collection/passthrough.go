package collection

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/modules/collection/datagateway"
	"github.com/dega-network/nft-engine/modules/collection/internal/entity"
	"github.com/samber/lo"
)

// executePassthrough maps the base-ledger execute variants onto the token
// ledger. The mapping is explicit and partial: a message with no variant
// set is an error, never a panic.
func (p *Processor) executePassthrough(ctx context.Context, txCtx types.TxContext, msg ExecuteMsg) ([]types.Event, error) {
	sender := txCtx.Sender.String()
	switch {
	case msg.TransferNft != nil:
		if err := types.ValidateAddress(msg.TransferNft.Recipient); err != nil {
			return nil, errors.Wrapf(err, "invalid transfer recipient %q", msg.TransferNft.Recipient)
		}
		err := p.ledger.TransferToken(ctx, datagateway.TransferTokenParams{
			Sender:    sender,
			Recipient: msg.TransferNft.Recipient,
			TokenID:   msg.TransferNft.TokenID,
			BlockTime: txCtx.BlockTime,
		})
		if err != nil {
			return nil, errors.Wrap(err, "transfer failed")
		}
		event := types.NewEvent("wasm-transfer_nft").
			AddAttribute("sender", sender).
			AddAttribute("recipient", msg.TransferNft.Recipient).
			AddAttribute("token_id", msg.TransferNft.TokenID)
		return []types.Event{event}, nil

	case msg.SendNft != nil:
		if err := types.ValidateAddress(msg.SendNft.Contract); err != nil {
			return nil, errors.Wrapf(err, "invalid send target contract %q", msg.SendNft.Contract)
		}
		err := p.ledger.TransferToken(ctx, datagateway.TransferTokenParams{
			Sender:    sender,
			Recipient: msg.SendNft.Contract,
			TokenID:   msg.SendNft.TokenID,
			BlockTime: txCtx.BlockTime,
		})
		if err != nil {
			return nil, errors.Wrap(err, "send failed")
		}
		event := types.NewEvent("wasm-send_nft").
			AddAttribute("sender", sender).
			AddAttribute("contract", msg.SendNft.Contract).
			AddAttribute("token_id", msg.SendNft.TokenID)
		return []types.Event{event}, nil

	case msg.Approve != nil:
		err := p.ledger.Approve(ctx, datagateway.ApproveParams{
			Sender:    sender,
			Spender:   msg.Approve.Spender,
			TokenID:   msg.Approve.TokenID,
			Expires:   msg.Approve.Expires,
			BlockTime: txCtx.BlockTime,
		})
		if err != nil {
			return nil, errors.Wrap(err, "approve failed")
		}
		event := types.NewEvent("wasm-approve").
			AddAttribute("sender", sender).
			AddAttribute("spender", msg.Approve.Spender).
			AddAttribute("token_id", msg.Approve.TokenID)
		return []types.Event{event}, nil

	case msg.Revoke != nil:
		err := p.ledger.Revoke(ctx, datagateway.RevokeParams{
			Sender:    sender,
			Spender:   msg.Revoke.Spender,
			TokenID:   msg.Revoke.TokenID,
			BlockTime: txCtx.BlockTime,
		})
		if err != nil {
			return nil, errors.Wrap(err, "revoke failed")
		}
		event := types.NewEvent("wasm-revoke").
			AddAttribute("sender", sender).
			AddAttribute("spender", msg.Revoke.Spender).
			AddAttribute("token_id", msg.Revoke.TokenID)
		return []types.Event{event}, nil

	case msg.ApproveAll != nil:
		err := p.ledger.ApproveAll(ctx, datagateway.ApproveAllParams{
			Sender:   sender,
			Operator: msg.ApproveAll.Operator,
			Expires:  msg.ApproveAll.Expires,
		})
		if err != nil {
			return nil, errors.Wrap(err, "approve all failed")
		}
		event := types.NewEvent("wasm-approve_all").
			AddAttribute("sender", sender).
			AddAttribute("operator", msg.ApproveAll.Operator)
		return []types.Event{event}, nil

	case msg.RevokeAll != nil:
		err := p.ledger.RevokeAll(ctx, datagateway.RevokeAllParams{
			Sender:   sender,
			Operator: msg.RevokeAll.Operator,
		})
		if err != nil {
			return nil, errors.Wrap(err, "revoke all failed")
		}
		event := types.NewEvent("wasm-revoke_all").
			AddAttribute("sender", sender).
			AddAttribute("operator", msg.RevokeAll.Operator)
		return []types.Event{event}, nil

	case msg.Burn != nil:
		err := p.ledger.BurnToken(ctx, datagateway.BurnTokenParams{
			Sender:    sender,
			TokenID:   msg.Burn.TokenID,
			BlockTime: txCtx.BlockTime,
		})
		if err != nil {
			return nil, errors.Wrap(err, "burn failed")
		}
		event := types.NewEvent("wasm-burn").
			AddAttribute("sender", sender).
			AddAttribute("token_id", msg.Burn.TokenID)
		return []types.Event{event}, nil

	default:
		return nil, errors.Wrap(errs.Unsupported, "unknown execute message variant")
	}
}

func (p *Processor) queryPassthrough(ctx context.Context, msg QueryMsg) (any, error) {
	switch {
	case msg.OwnerOf != nil:
		return p.ownerOf(ctx, msg.OwnerOf.TokenID, msg.OwnerOf.IncludeExpired)

	case msg.Approval != nil:
		token, err := p.getToken(ctx, msg.Approval.TokenID)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		for _, approval := range token.Approvals {
			if approval.Spender == msg.Approval.Spender {
				return &ApprovalResponse{Approval: approval}, nil
			}
		}
		return nil, errors.Wrapf(errs.NotFound, "approval for %s on token %s not found", msg.Approval.Spender, msg.Approval.TokenID)

	case msg.Approvals != nil:
		token, err := p.getToken(ctx, msg.Approvals.TokenID)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return &ApprovalsResponse{Approvals: token.Approvals}, nil

	case msg.AllOperators != nil:
		operators, err := p.ledger.GetOperatorsByOwner(ctx, msg.AllOperators.Owner)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list operators")
		}
		return &OperatorsResponse{Operators: operators}, nil

	case msg.NumTokens != nil:
		count, err := p.ledger.NumTokens(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count tokens")
		}
		return &NumTokensResponse{Count: count}, nil

	case msg.ContractInfo != nil:
		info, err := p.collectionDg.GetContractInfo(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load contract info")
		}
		return &ContractInfoResponse{Name: info.Name, Symbol: info.Symbol}, nil

	case msg.NftInfo != nil:
		token, err := p.getToken(ctx, msg.NftInfo.TokenID)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return &NftInfoResponse{TokenURI: token.URI}, nil

	case msg.AllNftInfo != nil:
		token, err := p.getToken(ctx, msg.AllNftInfo.TokenID)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return &AllNftInfoResponse{
			Access: OwnerOfResponse{Owner: token.Owner, Approvals: token.Approvals},
			Info:   NftInfoResponse{TokenURI: token.URI},
		}, nil

	case msg.Tokens != nil:
		tokens, err := p.ledger.GetTokensByOwner(ctx, datagateway.GetTokensParams{
			Owner:      msg.Tokens.Owner,
			StartAfter: msg.Tokens.StartAfter,
			Limit:      msg.Tokens.Limit,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list tokens")
		}
		return &TokensResponse{Tokens: lo.Ternary(tokens != nil, tokens, []string{})}, nil

	case msg.AllTokens != nil:
		tokens, err := p.ledger.GetAllTokens(ctx, datagateway.GetTokensParams{
			StartAfter: msg.AllTokens.StartAfter,
			Limit:      msg.AllTokens.Limit,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list tokens")
		}
		return &TokensResponse{Tokens: lo.Ternary(tokens != nil, tokens, []string{})}, nil

	case msg.Minter != nil:
		owner, err := p.collectionDg.GetOwner(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load collection owner")
		}
		return &MinterResponse{Minter: owner}, nil

	default:
		return nil, errors.Wrap(errs.Unsupported, "unknown query message variant")
	}
}

func (p *Processor) ownerOf(ctx context.Context, tokenID string, includeExpired bool) (*OwnerOfResponse, error) {
	token, err := p.getToken(ctx, tokenID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	approvals := token.Approvals
	if !includeExpired {
		// expired approvals are filtered at read time, not eagerly pruned
		now := time.Now().UTC()
		approvals = lo.Filter(approvals, func(approval entity.Approval, _ int) bool {
			return !approval.Expired(now)
		})
	}
	return &OwnerOfResponse{Owner: token.Owner, Approvals: approvals}, nil
}

func (p *Processor) getToken(ctx context.Context, tokenID string) (*entity.Token, error) {
	token, err := p.ledger.GetToken(ctx, tokenID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, errors.Wrapf(errs.NotFound, "token %s not found", tokenID)
		}
		return nil, errors.Wrap(err, "failed to load token")
	}
	return token, nil
}
