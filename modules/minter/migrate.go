package minter

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/core/types"
	"github.com/dega-network/nft-engine/pkg/logger"
	"github.com/dega-network/nft-engine/pkg/logger/slogx"
)

// Version is the contract version recorded on migration events.
const Version = "1.0.0"

// Migrate runs the versioned-upgrade hook. The shipped Upgrader is a
// recorded no-op; deployments substitute an implementation carrying their
// upgrade steps.
func (p *Processor) Migrate(ctx context.Context, txCtx types.TxContext, msg MigrateMsg) ([]types.Event, error) {
	toVersion := Version
	if msg.IsDev {
		toVersion = msg.DevVersion
	}

	upgradeEvents, err := p.upgrader.ApplyUpgrade(ctx, Version, toVersion)
	if err != nil {
		return nil, errors.Wrap(err, "upgrade hook failed")
	}

	logger.InfoContext(ctx, "Minter migrated",
		slogx.Stringer("sender", txCtx.Sender),
		slogx.String("to_version", toVersion),
	)

	event := types.NewEvent("wasm-dega_migrate").
		AddAttribute("sender", txCtx.Sender.String()).
		AddAttribute("from_version", Version).
		AddAttribute("to_version", toVersion)
	return append([]types.Event{event}, upgradeEvents...), nil
}

// NoopUpgrader is the default Upgrader. It records the requested upgrade
// and performs no state changes.
type NoopUpgrader struct{}

func NewNoopUpgrader() NoopUpgrader {
	return NoopUpgrader{}
}

func (NoopUpgrader) ApplyUpgrade(_ context.Context, fromVersion string, toVersion string) ([]types.Event, error) {
	event := types.NewEvent("wasm-dega_upgrade").
		AddAttribute("from_version", fromVersion).
		AddAttribute("to_version", toVersion).
		AddAttribute("applied", "noop")
	return []types.Event{event}, nil
}
