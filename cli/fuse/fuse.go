// Package fuse implements name wrapper commands: wrapping, unwrapping and
// fuse burning.
package fuse

import (
	"github.com/urfave/cli"

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

// NewCommands returns the 'wrapper' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "wrapper",
		Usage: "wrap and unwrap names, burn fuses",
		Subcommands: []cli.Command{
			{
				Name:      "wrap",
				Usage:     "wrap a name into the name wrapper",
				UsageText: "wrapper wrap <name> --owner <addr> [--fuses <n>] [--resolver <addr>]",
				Action:    wrapName,
				Flags: txFlags(
					cli.StringFlag{Name: "owner", Usage: "address receiving the wrapped name"},
					cli.Uint64Flag{Name: "fuses", Usage: "owner-controlled fuses to burn at wrap time (.eth second-level names only)"},
					cli.StringFlag{Name: "resolver", Usage: "resolver carried into the wrapper (default: the current one)"},
				),
			},
			{
				Name:      "unwrap",
				Usage:     "release a wrapped name back to the registry",
				UsageText: "wrapper unwrap <name> --controller <addr> [--registrant <addr>]",
				Action:    unwrapName,
				Flags: txFlags(
					cli.StringFlag{Name: "controller", Usage: "address receiving registry control"},
					cli.StringFlag{Name: "registrant", Usage: "address receiving the registrar token (.eth second-level names only)"},
				),
			},
			{
				Name:      "set-fuses",
				Usage:     "burn owner-controlled fuses on a wrapped name",
				UsageText: "wrapper set-fuses <name> --fuses <n>",
				Action:    setFuses,
				Flags: txFlags(
					cli.Uint64Flag{Name: "fuses", Usage: "owner-controlled fuses to burn"},
				),
			},
			{
				Name:      "set-child-fuses",
				Usage:     "burn fuses on a subname as its parent",
				UsageText: "wrapper set-child-fuses <name> --fuses <n> [--expiry <unix>]",
				Action:    setChildFuses,
				Flags: txFlags(
					cli.Uint64Flag{Name: "fuses", Usage: "fuses to burn (owner fuses require PARENT_CANNOT_CONTROL)"},
					cli.Uint64Flag{Name: "expiry", Usage: "fuse expiry as a unix timestamp"},
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

func wrapName(ctx *cli.Context) error {
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

	h, err := c.WrapName(gctx, actions.WrapNameParams{
		Name:            name,
		NewOwnerAddress: *owner,
		Fuses:           fuses.Fuse(ctx.Uint64("fuses")),
		ResolverAddress: resolver,
		Overrides:       opts,
	})
	return options.Report(gctx, ctx, backend, h, err)
}

func unwrapName(ctx *cli.Context) error {
	name, err := nameArg(ctx)
	if err != nil {
		return err
	}
	controller, exitErr := options.GetAddress(ctx, "controller", true)
	if exitErr != nil {
		return exitErr
	}
	registrant, exitErr := options.GetAddress(ctx, "registrant", false)
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

	h, err := c.UnwrapName(gctx, actions.UnwrapNameParams{
		Name:                 name,
		NewControllerAddress: *controller,
		NewRegistrantAddress: registrant,
		Overrides:            opts,
	})
	return options.Report(gctx, ctx, backend, h, err)
}

func setFuses(ctx *cli.Context) error {
	name, err := nameArg(ctx)
	if err != nil {
		return err
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

	h, err := c.SetFuses(gctx, actions.SetFusesParams{
		Name:      name,
		Fuses:     fuses.Fuse(ctx.Uint64("fuses")),
		Overrides: opts,
	})
	return options.Report(gctx, ctx, backend, h, err)
}

func setChildFuses(ctx *cli.Context) error {
	name, err := nameArg(ctx)
	if err != nil {
		return err
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

	h, err := c.SetChildFuses(gctx, actions.SetChildFusesParams{
		Name:      name,
		Fuses:     fuses.Fuse(ctx.Uint64("fuses")),
		Expiry:    ctx.Uint64("expiry"),
		Overrides: opts,
	})
	return options.Report(gctx, ctx, backend, h, err)
}
