// Package record implements resolver record commands.
package record

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/ethns-dev/ens-go/cli/options"
	"github.com/ethns-dev/ens-go/pkg/actions"
)

func txFlags(extra ...cli.Flag) []cli.Flag {
	res := append([]cli.Flag{}, options.RPC...)
	res = append(res, options.Keystore...)
	res = append(res, options.ConfigFile, options.Await, options.Debug)
	res = append(res, options.Tx...)
	res = append(res, cli.StringFlag{
		Name:  "resolver",
		Usage: "resolver to write through (default: the name's current resolver)",
	})
	return append(res, extra...)
}

// NewCommands returns the 'record' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "record",
		Usage: "manage resolver records",
		Subcommands: []cli.Command{
			{
				Name:      "set-text",
				Usage:     "set or clear a text record",
				UsageText: "record set-text <name> --key <key> [--data <value>]",
				Action:    setText,
				Flags: txFlags(
					cli.StringFlag{Name: "key", Usage: "record key (url, avatar, email, ...)"},
					cli.StringFlag{Name: "data", Usage: "record value (empty clears the key)"},
				),
			},
			{
				Name:      "set-addr",
				Usage:     "set or clear an address record",
				UsageText: "record set-addr <name> --data <hex> [--coin-type <n>]",
				Action:    setAddr,
				Flags: txFlags(
					cli.StringFlag{Name: "data", Usage: "coin-specific binary address in hex (empty clears)"},
					cli.Uint64Flag{Name: "coin-type", Usage: "SLIP-44 coin type", Value: actions.CoinTypeETH},
				),
			},
			{
				Name:      "set-contenthash",
				Usage:     "set or clear the content hash record",
				UsageText: "record set-contenthash <name> [--data <hex>]",
				Action:    setContenthash,
				Flags: txFlags(
					cli.StringFlag{Name: "data", Usage: "multicodec-encoded content hash in hex (empty clears)"},
				),
			},
			{
				Name:      "set-abi",
				Usage:     "set or clear the ABI record",
				UsageText: "record set-abi <name> --content-type <1|2|4|8> [--data <hex>]",
				Action:    setABI,
				Flags: txFlags(
					cli.Uint64Flag{Name: "content-type", Usage: "EIP-205 content type bit"},
					cli.StringFlag{Name: "data", Usage: "encoded ABI in hex (empty clears the content type)"},
				),
			},
			{
				Name:      "set",
				Usage:     "apply several record changes in one transaction",
				UsageText: "record set <name> [--clear] [--text k=v]... [--contenthash <hex>]",
				Action:    setBatch,
				Flags: txFlags(
					cli.BoolFlag{Name: "clear", Usage: "drop all existing records first"},
					cli.StringSliceFlag{Name: "text", Usage: "text record as key=value (can be repeated)"},
					cli.StringFlag{Name: "contenthash", Usage: "content hash in hex (empty string clears it)"},
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

func hexData(ctx *cli.Context, flag string) ([]byte, error) {
	v := ctx.String(flag)
	if v == "" {
		return nil, nil
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(v, "0x"))
	if err != nil {
		return nil, cli.NewExitError(fmt.Errorf("invalid hex in --%s: %w", flag, err), 1)
	}
	return raw, nil
}

func setText(ctx *cli.Context) error {
	name, err := nameArg(ctx)
	if err != nil {
		return err
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

	h, err := c.SetTextRecord(gctx, actions.SetTextRecordParams{
		Name:            name,
		Key:             ctx.String("key"),
		Value:           ctx.String("data"),
		ResolverAddress: resolver,
		Overrides:       opts,
	})
	return options.Report(gctx, ctx, backend, h, err)
}

func setAddr(ctx *cli.Context) error {
	name, err := nameArg(ctx)
	if err != nil {
		return err
	}
	value, err := hexData(ctx, "data")
	if err != nil {
		return err
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

	coinType := ctx.Uint64("coin-type")
	h, err := c.SetAddressRecord(gctx, actions.SetAddressRecordParams{
		Name:            name,
		CoinType:        &coinType,
		Value:           value,
		ResolverAddress: resolver,
		Overrides:       opts,
	})
	return options.Report(gctx, ctx, backend, h, err)
}

func setContenthash(ctx *cli.Context) error {
	name, err := nameArg(ctx)
	if err != nil {
		return err
	}
	hash, err := hexData(ctx, "data")
	if err != nil {
		return err
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

	h, err := c.SetContentHashRecord(gctx, actions.SetContentHashRecordParams{
		Name:            name,
		ContentHash:     hash,
		ResolverAddress: resolver,
		Overrides:       opts,
	})
	return options.Report(gctx, ctx, backend, h, err)
}

func setABI(ctx *cli.Context) error {
	name, err := nameArg(ctx)
	if err != nil {
		return err
	}
	data, err := hexData(ctx, "data")
	if err != nil {
		return err
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

	h, err := c.SetABIRecord(gctx, actions.SetABIRecordParams{
		Name:            name,
		ContentType:     ctx.Uint64("content-type"),
		Data:            data,
		ResolverAddress: resolver,
		Overrides:       opts,
	})
	return options.Report(gctx, ctx, backend, h, err)
}

func setBatch(ctx *cli.Context) error {
	name, err := nameArg(ctx)
	if err != nil {
		return err
	}
	rs := actions.RecordSet{Clear: ctx.Bool("clear")}
	for _, kv := range ctx.StringSlice("text") {
		i := strings.IndexByte(kv, '=')
		if i < 0 {
			return cli.NewExitError(fmt.Errorf("invalid --text %q, expected key=value", kv), 1)
		}
		rs.Texts = append(rs.Texts, actions.TextRecord{Key: kv[:i], Value: kv[i+1:]})
	}
	if ctx.IsSet("contenthash") {
		hash, err := hexData(ctx, "contenthash")
		if err != nil {
			return err
		}
		if hash == nil {
			hash = []byte{} // explicit empty clears
		}
		rs.ContentHash = hash
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

	h, err := c.SetRecords(gctx, actions.SetRecordsParams{
		Name:            name,
		ResolverAddress: resolver,
		RecordSet:       rs,
		Overrides:       opts,
	})
	return options.Report(gctx, ctx, backend, h, err)
}
