/*
Package options contains a set of common CLI options and helper functions to use them.
*/
package options

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ethns-dev/ens-go/cli/input"
	"github.com/ethns-dev/ens-go/pkg/actions"
	"github.com/ethns-dev/ens-go/pkg/actor"
	"github.com/ethns-dev/ens-go/pkg/config"
	"github.com/ethns-dev/ens-go/pkg/contracts"
)

const (
	// DefaultTimeout is the default timeout used for RPC requests.
	DefaultTimeout = 15 * time.Second
	// DefaultAwaitableTimeout is the default timeout used for RPC requests
	// that await a transaction. It covers several mainnet blocks.
	DefaultAwaitableTimeout = 5 * 12 * time.Second
)

// RPCEndpointFlag is a long flag name for an RPC endpoint. It can be used to
// check for flag presence in the context.
const RPCEndpointFlag = "rpc-endpoint"

// RPC is a set of flags used for RPC connections (endpoint and timeout).
var RPC = []cli.Flag{
	cli.StringFlag{
		Name:   RPCEndpointFlag + ", r",
		Usage:  "Ethereum JSON-RPC endpoint",
		EnvVar: "ETH_RPC_ENDPOINT",
	},
	cli.DurationFlag{
		Name:  "timeout, s",
		Value: DefaultTimeout,
		Usage: "Timeout for the operation",
	},
}

// Keystore is a set of flags used for transaction signing.
var Keystore = []cli.Flag{cli.StringFlag{
	Name:  "keystore, k",
	Usage: "path to an encrypted keystore file (web3 JSON) with the signing key",
}}

// ConfigFile is a flag providing custom contract deployments for private or
// forked networks.
var ConfigFile = cli.StringFlag{
	Name:  "config-file",
	Usage: "path to a YAML file with contract addresses of custom deployments",
}

// Await is a flag for commands that can wait for their transaction to be
// mined instead of returning right after submission.
var Await = cli.BoolFlag{
	Name:  "await, a",
	Usage: "wait for the transaction to be mined and report its status",
}

// Debug is a flag enabling debug logging.
var Debug = cli.BoolFlag{
	Name:  "debug, d",
	Usage: "enable debug logging",
}

// Tx is a set of flags overriding transaction fields. Unset fields are
// filled by the submission layer.
var Tx = []cli.Flag{
	cli.StringFlag{
		Name:  "value",
		Usage: "wei to send with the transaction (rent price for registrations and renewals)",
	},
	cli.Uint64Flag{
		Name:  "gas-limit",
		Usage: "gas limit (default: estimate)",
	},
	cli.StringFlag{
		Name:  "gas-price",
		Usage: "legacy gas price in wei (forces a pre-EIP-1559 transaction)",
	},
}

var errNoEndpoint = errors.New("no RPC endpoint specified, use option '--" + RPCEndpointFlag + "' or '-r'")
var errNoKeystore = errors.New("no signing key specified, use option '--keystore' or '-k'")

// GetTimeoutContext returns a context.Context with the default or a user-set
// timeout.
func GetTimeoutContext(ctx *cli.Context) (context.Context, func()) {
	dur := ctx.Duration("timeout")
	if dur == 0 {
		dur = DefaultTimeout
	}
	if !ctx.IsSet("timeout") && ctx.Bool("await") {
		dur = DefaultAwaitableTimeout
	}
	return context.WithTimeout(context.Background(), dur)
}

// GetBackend returns an RPC client for the given Context.
func GetBackend(gctx context.Context, ctx *cli.Context) (*ethclient.Client, cli.ExitCoder) {
	endpoint := ctx.String(RPCEndpointFlag)
	if len(endpoint) == 0 {
		return nil, cli.NewExitError(errNoEndpoint, 1)
	}
	c, err := ethclient.DialContext(gctx, endpoint)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return c, nil
}

// GetActor opens the keystore file given in the Context, asks for its
// password and returns an Actor signing with the decrypted key on the
// backend's chain.
func GetActor(gctx context.Context, ctx *cli.Context, backend *ethclient.Client) (*actor.Actor, cli.ExitCoder) {
	path := ctx.String("keystore")
	if len(path) == 0 {
		return nil, cli.NewExitError(errNoKeystore, 1)
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	pass, err := input.ReadPassword(ctx.App.Writer, fmt.Sprintf("Password for %s: ", path))
	if err != nil {
		return nil, cli.NewExitError(fmt.Errorf("error reading password: %w", err), 1)
	}
	key, err := keystore.DecryptKey(blob, pass)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	chainID, err := backend.ChainID(gctx)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return actor.NewFromKey(backend, chainID, key.PrivateKey), nil
}

// GetDirectory returns the contract directory to use: the built-in public
// deployments, overridden by the --config-file file when given.
func GetDirectory(ctx *cli.Context) (contracts.Directory, cli.ExitCoder) {
	dir := contracts.Default()
	if path := ctx.String("config-file"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return dir, cli.NewExitError(err, 1)
		}
		dir = cfg.Directory(dir)
	}
	return dir, nil
}

// GetClient combines GetBackend, GetActor and GetDirectory into a ready to
// use write client. The backend is also returned for receipt awaiting.
func GetClient(gctx context.Context, ctx *cli.Context) (*actions.Client, *ethclient.Client, cli.ExitCoder) {
	backend, exitErr := GetBackend(gctx, ctx)
	if exitErr != nil {
		return nil, nil, exitErr
	}
	act, exitErr := GetActor(gctx, ctx, backend)
	if exitErr != nil {
		backend.Close()
		return nil, nil, exitErr
	}
	dir, exitErr := GetDirectory(ctx)
	if exitErr != nil {
		backend.Close()
		return nil, nil, exitErr
	}
	c, err := actions.NewWithDirectory(act, dir)
	if err != nil {
		backend.Close()
		return nil, nil, cli.NewExitError(err, 1)
	}
	return c, backend, nil
}

// GetTxOptions builds transaction overrides from the Tx flags.
func GetTxOptions(ctx *cli.Context) (*actions.TxOptions, cli.ExitCoder) {
	opts := &actions.TxOptions{GasLimit: ctx.Uint64("gas-limit")}
	var ok bool
	if v := ctx.String("value"); v != "" {
		opts.Value, ok = new(big.Int).SetString(v, 10)
		if !ok {
			return nil, cli.NewExitError(fmt.Errorf("invalid wei value: %q", v), 1)
		}
	}
	if v := ctx.String("gas-price"); v != "" {
		opts.GasPrice, ok = new(big.Int).SetString(v, 10)
		if !ok {
			return nil, cli.NewExitError(fmt.Errorf("invalid gas price: %q", v), 1)
		}
	}
	return opts, nil
}

// HandleLoggingParams creates a console logger, at debug level if asked to.
func HandleLoggingParams(debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil
	return cc.Build()
}
