// Package name implements registration, renewal and ownership commands.
package name

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli"

	"github.com/ethns-dev/ens-go/cli/options"
	"github.com/ethns-dev/ens-go/pkg/actions"
	"github.com/ethns-dev/ens-go/pkg/actor"
	"github.com/ethns-dev/ens-go/pkg/fuses"
)

func txFlags(extra ...cli.Flag) []cli.Flag {
	res := append([]cli.Flag{}, options.RPC...)
	res = append(res, options.Keystore...)
	res = append(res, options.ConfigFile, options.Await, options.Debug)
	res = append(res, options.Tx...)
	return append(res, extra...)
}

var registrationFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "owner",
		Usage: "address receiving the name",
	},
	cli.Uint64Flag{
		Name:  "duration",
		Usage: "registration period in seconds",
	},
	cli.StringFlag{
		Name:  "secret",
		Usage: "32 bytes of hex blinding the commitment; must match between commit and register",
	},
	cli.StringFlag{
		Name:  "resolver",
		Usage: "resolver to set on the name (default: none, or the public resolver with --text)",
	},
	cli.StringSliceFlag{
		Name:  "text",
		Usage: "text record to set during registration, as key=value (can be repeated)",
	},
	cli.BoolFlag{
		Name:  "reverse",
		Usage: "also claim the name as the owner's primary name",
	},
	cli.Uint64Flag{
		Name:  "fuses",
		Usage: "owner-controlled fuses to burn at registration",
	},
}

// NewCommands returns the 'name' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "name",
		Usage: "register, renew and transfer names",
		Subcommands: []cli.Command{
			{
				Name:      "commit",
				Usage:     "submit the commitment preceding a registration",
				UsageText: "name commit <name> --owner <addr> --duration <sec> --secret <hex> [--resolver <addr>] [--text k=v] [--reverse] [--fuses <n>]",
				Action:    commitName,
				Flags:     txFlags(registrationFlags...),
			},
			{
				Name:      "register",
				Usage:     "register a committed name (same parameters as the commit)",
				UsageText: "name register <name> --owner <addr> --duration <sec> --secret <hex> --value <wei> [--resolver <addr>] [--text k=v] [--reverse] [--fuses <n>]",
				Action:    registerName,
				Flags:     txFlags(registrationFlags...),
			},
			{
				Name:      "renew",
				Usage:     "extend the registration of one or more names",
				UsageText: "name renew <name>... --duration <sec> --value <wei>",
				Action:    renewNames,
				Flags: txFlags(cli.Uint64Flag{
					Name:  "duration",
					Usage: "renewal period in seconds",
				}),
			},
			{
				Name:      "transfer",
				Usage:     "hand a name over to a new owner",
				UsageText: "name transfer <name> --new-owner <addr> --contract <registry|registrar|nameWrapper> [--as-parent] [--reclaim]",
				Action:    transferName,
				Flags: txFlags(
					cli.StringFlag{Name: "new-owner", Usage: "address receiving the name"},
					cli.StringFlag{Name: "contract", Usage: "contract holding the ownership being moved"},
					cli.BoolFlag{Name: "as-parent", Usage: "transfer using the parent's registry authority"},
					cli.BoolFlag{Name: "reclaim", Usage: "reset the registry controller instead of moving the registrar token"},
				),
			},
			{
				Name:      "set-resolver",
				Usage:     "change the resolver of a name",
				UsageText: "name set-resolver <name> --resolver <addr> --contract <registry|nameWrapper>",
				Action:    setResolver,
				Flags: txFlags(
					cli.StringFlag{Name: "resolver", Usage: "new resolver address"},
					cli.StringFlag{Name: "contract", Usage: "contract owning the name"},
				),
			},
			{
				Name:      "set-primary",
				Usage:     "make the name the primary (reverse) name of an address",
				UsageText: "name set-primary <name> [--address <addr>] [--resolver <addr>]",
				Action:    setPrimaryName,
				Flags: txFlags(
					cli.StringFlag{Name: "address", Usage: "address to claim for (default: the signing account)"},
					cli.StringFlag{Name: "resolver", Usage: "resolver for the reverse record when claiming for another address"},
				),
			},
			{
				Name:      "rent-price",
				Usage:     "quote the registration or renewal price of a name",
				UsageText: "name rent-price <name> --duration <sec>",
				Action:    rentPrice,
				Flags: append(append([]cli.Flag{}, options.RPC...),
					cli.Uint64Flag{Name: "duration", Usage: "period in seconds"}),
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

func registrationParams(ctx *cli.Context) (actions.RegistrationParams, error) {
	var p actions.RegistrationParams

	name, err := nameArg(ctx)
	if err != nil {
		return p, err
	}
	owner, err := options.GetAddress(ctx, "owner", true)
	if err != nil {
		return p, err
	}
	secret, err := options.GetSecret(ctx, "secret")
	if err != nil {
		return p, err
	}
	resolver, err := options.GetAddress(ctx, "resolver", false)
	if err != nil {
		return p, err
	}
	opts, err := options.GetTxOptions(ctx)
	if err != nil {
		return p, err
	}
	p = actions.RegistrationParams{
		Name:            name,
		Owner:           *owner,
		Duration:        new(big.Int).SetUint64(ctx.Uint64("duration")),
		Secret:          secret,
		ResolverAddress: resolver,
		ReverseRecord:   ctx.Bool("reverse"),
		Fuses:           fuses.Fuse(ctx.Uint64("fuses")),
		Overrides:       opts,
	}
	if texts := ctx.StringSlice("text"); len(texts) > 0 {
		rs := &actions.RecordSet{}
		for _, kv := range texts {
			k, v, ok := splitKV(kv)
			if !ok {
				return p, cli.NewExitError(fmt.Errorf("invalid --text %q, expected key=value", kv), 1)
			}
			rs.Texts = append(rs.Texts, actions.TextRecord{Key: k, Value: v})
		}
		p.Records = rs
	}
	return p, nil
}

func splitKV(s string) (string, string, bool) {
	for i := range s {
		if s[i] == '=' {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}

func commitName(ctx *cli.Context) error {
	p, err := registrationParams(ctx)
	if err != nil {
		return err
	}
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()
	c, backend, exitErr := options.GetClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}
	defer backend.Close()

	h, err := c.CommitName(gctx, p)
	return options.Report(gctx, ctx, backend, h, err)
}

func registerName(ctx *cli.Context) error {
	p, err := registrationParams(ctx)
	if err != nil {
		return err
	}
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()
	c, backend, exitErr := options.GetClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}
	defer backend.Close()

	h, err := c.RegisterName(gctx, p)
	return options.Report(gctx, ctx, backend, h, err)
}

func renewNames(ctx *cli.Context) error {
	if len(ctx.Args()) == 0 {
		return cli.NewExitError("at least one name is expected", 1)
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

	h, err := c.RenewNames(gctx, actions.RenewNamesParams{
		Names:     ctx.Args(),
		Duration:  new(big.Int).SetUint64(ctx.Uint64("duration")),
		Overrides: opts,
	})
	return options.Report(gctx, ctx, backend, h, err)
}

func transferName(ctx *cli.Context) error {
	name, err := nameArg(ctx)
	if err != nil {
		return err
	}
	newOwner, exitErr := options.GetAddress(ctx, "new-owner", true)
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

	h, err := c.TransferName(gctx, actions.TransferNameParams{
		Name:            name,
		NewOwnerAddress: *newOwner,
		Contract:        actions.TargetContract(ctx.String("contract")),
		AsParent:        ctx.Bool("as-parent"),
		Reclaim:         ctx.Bool("reclaim"),
		Overrides:       opts,
	})
	return options.Report(gctx, ctx, backend, h, err)
}

func setResolver(ctx *cli.Context) error {
	name, err := nameArg(ctx)
	if err != nil {
		return err
	}
	resolver, exitErr := options.GetAddress(ctx, "resolver", true)
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

	h, err := c.SetResolver(gctx, actions.SetResolverParams{
		Name:            name,
		Contract:        actions.TargetContract(ctx.String("contract")),
		ResolverAddress: *resolver,
		Overrides:       opts,
	})
	return options.Report(gctx, ctx, backend, h, err)
}

func setPrimaryName(ctx *cli.Context) error {
	name, err := nameArg(ctx)
	if err != nil {
		return err
	}
	addr, exitErr := options.GetAddress(ctx, "address", false)
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

	h, err := c.SetPrimaryName(gctx, actions.SetPrimaryNameParams{
		Name:            name,
		Address:         addr,
		ResolverAddress: resolver,
		Overrides:       opts,
	})
	return options.Report(gctx, ctx, backend, h, err)
}

func rentPrice(ctx *cli.Context) error {
	name, err := nameArg(ctx)
	if err != nil {
		return err
	}
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()
	backend, exitErr := options.GetBackend(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}
	defer backend.Close()
	chainID, cerr := backend.ChainID(gctx)
	if cerr != nil {
		return cli.NewExitError(cerr, 1)
	}
	dir, exitErr := options.GetDirectory(ctx)
	if exitErr != nil {
		return exitErr
	}
	// A signer-less actor is enough for a read-only quote.
	c, cerr := actions.NewWithDirectory(actor.New(backend, chainID, common.Address{}, nil), dir)
	if cerr != nil {
		return cli.NewExitError(cerr, 1)
	}

	base, premium, cerr := c.RentPrice(gctx, name, new(big.Int).SetUint64(ctx.Uint64("duration")))
	if cerr != nil {
		return cli.NewExitError(cerr, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Base: %s wei\nPremium: %s wei\nTotal: %s wei\n",
		base, premium, new(big.Int).Add(base, premium))
	return nil
}
