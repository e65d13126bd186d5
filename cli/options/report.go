package options

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/ethns-dev/ens-go/pkg/actor"
)

// Report prints the hash of a submitted transaction and, with --await set,
// waits for it to be mined and reports its outcome.
func Report(gctx context.Context, ctx *cli.Context, backend *ethclient.Client, h common.Hash, err error) error {
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Hash: %s\n", h)
	if !ctx.Bool("await") {
		return nil
	}
	log, err := HandleLoggingParams(ctx.Bool("debug"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = log.Sync() }()
	log.Info("waiting for the transaction to be mined", zap.String("hash", h.Hex()))

	w := actor.NewWaiter(backend, 0)
	r, err := w.Wait(gctx, h, nil)
	if err != nil {
		if r != nil {
			log.Error("transaction reverted",
				zap.String("hash", h.Hex()),
				zap.Uint64("block", r.BlockNumber.Uint64()))
		}
		return cli.NewExitError(err, 1)
	}
	log.Info("transaction mined",
		zap.Uint64("block", r.BlockNumber.Uint64()),
		zap.Uint64("gasUsed", r.GasUsed))
	return nil
}

// GetAddress reads an address flag. A missing optional flag yields nil.
func GetAddress(ctx *cli.Context, flag string, required bool) (*common.Address, cli.ExitCoder) {
	v := ctx.String(flag)
	if v == "" {
		if required {
			return nil, cli.NewExitError(fmt.Errorf("missing required flag --%s", flag), 1)
		}
		return nil, nil
	}
	if !common.IsHexAddress(v) {
		return nil, cli.NewExitError(fmt.Errorf("invalid address in --%s: %q", flag, v), 1)
	}
	addr := common.HexToAddress(v)
	return &addr, nil
}

// GetSecret reads a 32-byte hex secret flag.
func GetSecret(ctx *cli.Context, flag string) ([32]byte, cli.ExitCoder) {
	var secret [32]byte
	v := strings.TrimPrefix(ctx.String(flag), "0x")
	raw, err := hex.DecodeString(v)
	if err != nil || len(raw) != 32 {
		return secret, cli.NewExitError(fmt.Errorf("--%s must be 32 bytes of hex", flag), 1)
	}
	copy(secret[:], raw)
	return secret, nil
}
