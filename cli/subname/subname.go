// Package subname implements subname creation and deletion commands.
package subname

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/ethns-dev/ens-go/cli/input"
	"github.com/ethns-dev/ens-go/cli/options"
	"github.com/ethns-dev/ens-go/pkg/actions"
	"github.com/ethns-dev/ens-go/pkg/fuses"
)

func txFlags(extra ...cli.Flag) []cli.Flag {
	res := append([]cli.Flag{}, options.RPC...)
	res = append(res, options.Keystore...)
	res = append(res, options.ConfigFile, options.Await, options.Debug)
	res = append(res, options.Tx...)
	return append(res, extra...)
}

// NewCommands returns the 'subname' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "subname",
		Usage: "create and delete subnames",
		Subcommands: []cli.Command{
			{
				Name:      "create",
				Usage:     "create a subname under a parent you control",
				UsageText: "subname create <name> --owner <addr> --contract <registry|nameWrapper> [--resolver <addr>] [--ttl <sec>] [--fuses <n>] [--expiry <unix>]",
				Action:    createSubname,
				Flags: txFlags(
					cli.StringFlag{Name: "owner", Usage: "address owning the subname"},
					cli.StringFlag{Name: "contract", Usage: "contract the parent lives on"},
					cli.StringFlag{Name: "resolver", Usage: "resolver of the subname (default: none)"},
					cli.Uint64Flag{Name: "ttl", Usage: "registry TTL of the subname record"},
					cli.Uint64Flag{Name: "fuses", Usage: "fuses to burn on the subname (name wrapper only)"},
					cli.Uint64Flag{Name: "expiry", Usage: "fuse expiry as a unix timestamp (name wrapper only)"},
				),
			},
			{
				Name:      "delete",
				Usage:     "zero out a subname's owner, resolver and TTL",
				UsageText: "subname delete <name> --contract <registry|nameWrapper> [--as-parent]",
				Action:    deleteSubname,
				Flags: txFlags(
					cli.StringFlag{Name: "contract", Usage: "contract the subname lives on"},
					cli.BoolFlag{Name: "as-parent", Usage: "delete using the parent's authority"},
					cli.BoolFlag{Name: "force", Usage: "do not ask for confirmation"},
				),
			},
		},
	}}
}

func nameArg(ctx *cli.Context) (string, error) {
	if len(ctx.Args()) != 1 {
		return "", cli.NewExitError("exactly one name is expected", 1)
	}
	return ctx.Args()[0], nil
}

func createSubname(ctx *cli.Context) error {
	name, err := nameArg(ctx)
	if err != nil {
		return err
	}
	owner, exitErr := options.GetAddress(ctx, "owner", true)
	if exitErr != nil {
		return exitErr
	}
	resolver, exitErr := options.GetAddress(ctx, "resolver", false)
	if exitErr != nil {
		return exitErr
	}
	opts, exitErr := options.GetTxOptions(ctx)
	if exitErr != nil {
		return exitErr
	}
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()
	c, backend, exitErr := options.GetClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}
	defer backend.Close()

	h, err := c.CreateSubname(gctx, actions.CreateSubnameParams{
		Name:            name,
		NewOwnerAddress: *owner,
		Contract:        actions.TargetContract(ctx.String("contract")),
		ResolverAddress: resolver,
		TTL:             ctx.Uint64("ttl"),
		Fuses:           fuses.Fuse(ctx.Uint64("fuses")),
		Expiry:          ctx.Uint64("expiry"),
		Overrides:       opts,
	})
	return options.Report(gctx, ctx, backend, h, err)
}

func deleteSubname(ctx *cli.Context) error {
	name, err := nameArg(ctx)
	if err != nil {
		return err
	}
	if !ctx.Bool("force") {
		ok, err := input.Confirm(ctx.App.Writer, fmt.Sprintf("Delete %s?", name))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if !ok {
			return nil
		}
	}
	opts, exitErr := options.GetTxOptions(ctx)
	if exitErr != nil {
		return exitErr
	}
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()
	c, backend, exitErr := options.GetClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}
	defer backend.Close()

	h, err := c.DeleteSubname(gctx, actions.DeleteSubnameParams{
		Name:      name,
		Contract:  actions.TargetContract(ctx.String("contract")),
		AsParent:  ctx.Bool("as-parent"),
		Overrides: opts,
	})
	return options.Report(gctx, ctx, backend, h, err)
}
