/*
Package actor provides the transaction-building layer the action packages
submit through. An Actor is bound to one account on one chain: it builds
calls from that account, fills in nonce and fees unless overridden, signs
with the provided signer and hands the result to the Backend.
*/
package actor

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ethns-dev/ens-go/pkg/actions"
)

// Backend is the subset of an Ethereum RPC client the Actor needs. It is
// satisfied by [github.com/ethereum/go-ethereum/ethclient.Client].
type Backend interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// SignerFn signs a transaction on behalf of the given account.
type SignerFn func(addr common.Address, tx *types.Transaction) (*types.Transaction, error)

// ErrNoSigner is returned by SendCall when the Actor was created without a
// signing function.
var ErrNoSigner = errors.New("actor has no signer")

// Actor builds, signs and submits transactions from a single account. It
// implements [actions.Actor].
type Actor struct {
	backend Backend
	chainID *big.Int
	sender  common.Address
	sign    SignerFn
}

// New creates an Actor submitting through the given backend. The signer may
// be nil for a read-only actor (SendCall will fail).
func New(backend Backend, chainID *big.Int, sender common.Address, sign SignerFn) *Actor {
	return &Actor{backend: backend, chainID: chainID, sender: sender, sign: sign}
}

// NewFromKey creates an Actor signing locally with the given private key,
// using EIP-155/EIP-1559 signatures for the chain.
func NewFromKey(backend Backend, chainID *big.Int, key *ecdsa.PrivateKey) *Actor {
	sender := crypto.PubkeyToAddress(key.PublicKey)
	signer := types.LatestSignerForChainID(chainID)
	return New(backend, chainID, sender, func(addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
		if addr != sender {
			return nil, errors.New("unexpected signing account")
		}
		return types.SignTx(tx, signer, key)
	})
}

// Sender returns the account transactions are sent from.
func (a *Actor) Sender() common.Address {
	return a.sender
}

// ChainID returns the chain the actor is bound to.
func (a *Actor) ChainID() *big.Int {
	return a.chainID
}

// Call performs a read-only contract call against the latest state.
func (a *Actor) Call(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	return a.backend.CallContract(ctx, ethereum.CallMsg{
		From: a.sender,
		To:   &to,
		Data: data,
	}, nil)
}

// SendCall builds a transaction calling the given contract, fills in the
// fields opts leaves unset, signs and submits it. A set GasPrice selects a
// legacy transaction, otherwise an EIP-1559 dynamic-fee transaction is
// built with the backend's suggested tip and a fee cap of twice the current
// base fee plus the tip. Set override fields are used verbatim.
func (a *Actor) SendCall(ctx context.Context, to common.Address, data []byte, opts *actions.TxOptions) (common.Hash, error) {
	if a.sign == nil {
		return common.Hash{}, ErrNoSigner
	}
	if opts == nil {
		opts = &actions.TxOptions{}
	}

	var (
		nonce uint64
		err   error
	)
	if opts.Nonce != nil {
		nonce = opts.Nonce.Uint64()
	} else {
		nonce, err = a.backend.PendingNonceAt(ctx, a.sender)
		if err != nil {
			return common.Hash{}, err
		}
	}

	msg := ethereum.CallMsg{
		From:  a.sender,
		To:    &to,
		Value: opts.Value,
		Data:  data,
	}
	gas := opts.GasLimit
	if gas == 0 {
		gas, err = a.backend.EstimateGas(ctx, msg)
		if err != nil {
			return common.Hash{}, err
		}
	}

	var tx *types.Transaction
	if opts.GasPrice != nil {
		tx = types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			GasPrice: opts.GasPrice,
			Gas:      gas,
			To:       &to,
			Value:    opts.Value,
			Data:     data,
		})
	} else {
		tip := opts.GasTipCap
		if tip == nil {
			tip, err = a.backend.SuggestGasTipCap(ctx)
			if err != nil {
				return common.Hash{}, err
			}
		}
		feeCap := opts.GasFeeCap
		if feeCap == nil {
			head, err := a.backend.HeaderByNumber(ctx, nil)
			if err != nil {
				return common.Hash{}, err
			}
			if head.BaseFee == nil {
				return common.Hash{}, errors.New("chain has no base fee, set GasPrice for legacy transactions")
			}
			// Survives base fee doubling between now and inclusion.
			feeCap = new(big.Int).Add(new(big.Int).Lsh(head.BaseFee, 1), tip)
		}
		tx = types.NewTx(&types.DynamicFeeTx{
			ChainID:    a.chainID,
			Nonce:      nonce,
			GasTipCap:  tip,
			GasFeeCap:  feeCap,
			Gas:        gas,
			To:         &to,
			Value:      opts.Value,
			Data:       data,
			AccessList: opts.AccessList,
		})
	}

	signed, err := a.sign(a.sender, tx)
	if err != nil {
		return common.Hash{}, err
	}
	if err := a.backend.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, err
	}
	return signed.Hash(), nil
}
