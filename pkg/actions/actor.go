package actions

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Actor is the capability Client needs from the underlying RPC/transaction
// layer: read calls against the current state, signed write submission and
// the account/chain context writes are made with. It is satisfied by
// [github.com/ethns-dev/ens-go/pkg/actor.Actor], but tests and custom
// submission layers can provide their own.
type Actor interface {
	// Call performs a read-only contract call and returns the raw ABI
	// return data.
	Call(ctx context.Context, to common.Address, data []byte) ([]byte, error)
	// SendCall creates, signs and submits a transaction calling the given
	// contract with the given calldata, applying the overrides as is, and
	// returns the transaction hash.
	SendCall(ctx context.Context, to common.Address, data []byte, opts *TxOptions) (common.Hash, error)
	// Sender is the account address writes are sent from.
	Sender() common.Address
	// ChainID is the chain the actor is connected to.
	ChainID() *big.Int
}

// TxOptions carries transaction-level overrides. Every field is optional;
// the action layer forwards the whole set verbatim to the Actor and never
// fills in or adjusts any of them, so unset fields are defaulted by the
// submission layer, not here.
type TxOptions struct {
	// Value is the amount of wei sent with the call.
	Value *big.Int
	// GasLimit caps the gas used; 0 means estimate.
	GasLimit uint64
	// GasPrice forces a legacy (pre-EIP-1559) transaction.
	GasPrice *big.Int
	// GasFeeCap and GasTipCap bound dynamic-fee transactions.
	GasFeeCap *big.Int
	GasTipCap *big.Int
	// Nonce overrides the account nonce.
	Nonce *big.Int
	// AccessList is an optional EIP-2930 access list.
	AccessList types.AccessList
}
