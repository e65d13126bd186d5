// Package resolve implements the read-only name inspection command.
package resolve

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli"

	"github.com/ethns-dev/ens-go/cli/options"
	"github.com/ethns-dev/ens-go/pkg/actions"
	"github.com/ethns-dev/ens-go/pkg/actor"
	"github.com/ethns-dev/ens-go/pkg/ens"
)

// NewCommands returns the 'resolve' command.
func NewCommands() []cli.Command {
	flags := append([]cli.Flag{}, options.RPC...)
	flags = append(flags, options.ConfigFile)
	return []cli.Command{{
		Name:      "resolve",
		Usage:     "look up the on-chain state of a name",
		UsageText: "resolve <name>",
		Action:    resolveName,
		Flags:     flags,
	}}
}

func resolveName(ctx *cli.Context) error {
	if len(ctx.Args()) != 1 {
		return cli.NewExitError("exactly one name is expected", 1)
	}
	name := ctx.Args()[0]

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()
	backend, exitErr := options.GetBackend(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}
	defer backend.Close()
	chainID, err := backend.ChainID(gctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	dir, exitErr := options.GetDirectory(ctx)
	if exitErr != nil {
		return exitErr
	}
	// Reads need no signer.
	c, err := actions.NewWithDirectory(actor.New(backend, chainID, common.Address{}, nil), dir)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	owner, err := c.Owner(gctx, name)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	resolver, err := c.Resolver(gctx, name)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	w := ctx.App.Writer
	fmt.Fprintf(w, "Name: %s\n", name)
	fmt.Fprintf(w, "Owner: %s\n", addrOrNone(owner))
	fmt.Fprintf(w, "Resolver: %s\n", addrOrNone(resolver))

	if ens.IsETH2LD(name) {
		expires, err := c.Expires(gctx, name)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		fmt.Fprintf(w, "Expires: %s\n", timestamp(expires))
	}

	wrappedOwner, fuseWord, expiry, err := c.WrappedState(gctx, name)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if wrappedOwner != (common.Address{}) {
		fmt.Fprintf(w, "Wrapped owner: %s\n", wrappedOwner)
		fmt.Fprintf(w, "Fuses: %s\n", fuseWord)
		fmt.Fprintf(w, "Fuse expiry: %s\n", timestamp(new(big.Int).SetUint64(expiry)))
	}
	return nil
}

func addrOrNone(a common.Address) string {
	if a == (common.Address{}) {
		return "none"
	}
	return a.Hex()
}

func timestamp(v *big.Int) string {
	if v == nil || v.Sign() == 0 {
		return "never"
	}
	if !v.IsInt64() {
		return v.String()
	}
	return time.Unix(v.Int64(), 0).UTC().Format(time.RFC3339)
}
