package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/common/errs"
	"github.com/dega-network/nft-engine/modules/collection"
	"github.com/dega-network/nft-engine/modules/minter"
	"github.com/spf13/cobra"
)

// Version is the service version.
const Version = "v0.1.0"

var versions = map[string]string{
	"":           Version,
	"minter":     minter.Version,
	"collection": collection.Version,
}

type versionCmdOptions struct {
	Module string
}

func NewVersionCommand() *cobra.Command {
	opts := &versionCmdOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show nft-engine version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return versionHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Module, "module", "", `Show version of a specific module. E.g. "minter"`)

	return cmd
}

func versionHandler(opts *versionCmdOptions, _ *cobra.Command, _ []string) error {
	version, ok := versions[opts.Module]
	if !ok {
		return errors.Wrap(errs.Unsupported, "Invalid module name")
	}
	fmt.Println(version)
	return nil
}
