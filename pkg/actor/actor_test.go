package actor

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/ethns-dev/ens-go/pkg/actions"
)

type testBackend struct {
	nonce      uint64
	nonceErr   error
	tip        *big.Int
	baseFee    *big.Int
	gas        uint64
	gasErr     error
	sendErr    error
	receipt    *types.Receipt
	receiptErr []error

	nonceCalls   int
	tipCalls     int
	headCalls    int
	gasCalls     int
	receiptCalls int
	lastMsg      ethereum.CallMsg
	sent         *types.Transaction
}

func (b *testBackend) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	b.lastMsg = msg
	return []byte{0x01}, nil
}

func (b *testBackend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	b.headCalls++
	return &types.Header{BaseFee: b.baseFee}, nil
}

func (b *testBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	b.nonceCalls++
	return b.nonce, b.nonceErr
}

func (b *testBackend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	b.tipCalls++
	return b.tip, nil
}

func (b *testBackend) EstimateGas(_ context.Context, msg ethereum.CallMsg) (uint64, error) {
	b.gasCalls++
	b.lastMsg = msg
	return b.gas, b.gasErr
}

func (b *testBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	b.sent = tx
	return b.sendErr
}

func (b *testBackend) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	b.receiptCalls++
	if len(b.receiptErr) > 0 {
		err := b.receiptErr[0]
		b.receiptErr = b.receiptErr[1:]
		return nil, err
	}
	return b.receipt, nil
}

var contractAddr = common.HexToAddress("0x3333333333333333333333333333333333333333")

func newTestActor(t *testing.T) (*Actor, *testBackend) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	b := &testBackend{
		nonce:   7,
		tip:     big.NewInt(2),
		baseFee: big.NewInt(100),
		gas:     21000,
	}
	return NewFromKey(b, big.NewInt(1), key), b
}

func TestCall(t *testing.T) {
	a, b := newTestActor(t)

	res, err := a.Call(context.Background(), contractAddr, []byte{0xde, 0xad})
	require.NoError(t, err)
	require.Equal(t, []byte{0x01}, res)
	require.Equal(t, a.Sender(), b.lastMsg.From)
	require.Equal(t, contractAddr, *b.lastMsg.To)
	require.Equal(t, []byte{0xde, 0xad}, b.lastMsg.Data)
}

func TestSendCallDefaults(t *testing.T) {
	a, b := newTestActor(t)

	h, err := a.SendCall(context.Background(), contractAddr, []byte{0x01}, nil)
	require.NoError(t, err)
	require.NotNil(t, b.sent)
	require.Equal(t, b.sent.Hash(), h)
	require.Equal(t, uint8(types.DynamicFeeTxType), b.sent.Type())
	require.Equal(t, uint64(7), b.sent.Nonce())
	require.Equal(t, uint64(21000), b.sent.Gas())
	require.Equal(t, big.NewInt(2), b.sent.GasTipCap())
	// 2*baseFee + tip
	require.Equal(t, big.NewInt(202), b.sent.GasFeeCap())
	require.Equal(t, 1, b.nonceCalls)
	require.Equal(t, 1, b.gasCalls)

	from, err := types.Sender(types.LatestSignerForChainID(big.NewInt(1)), b.sent)
	require.NoError(t, err)
	require.Equal(t, a.Sender(), from)
}

func TestSendCallOverrides(t *testing.T) {
	a, b := newTestBackendActor(t)

	opts := &actions.TxOptions{
		Value:     big.NewInt(1000),
		GasLimit:  150000,
		GasFeeCap: big.NewInt(77),
		GasTipCap: big.NewInt(3),
		Nonce:     big.NewInt(42),
	}
	_, err := a.SendCall(context.Background(), contractAddr, []byte{0x01}, opts)
	require.NoError(t, err)
	// Every overridden field is used verbatim and nothing is fetched.
	require.Zero(t, b.nonceCalls)
	require.Zero(t, b.gasCalls)
	require.Zero(t, b.tipCalls)
	require.Zero(t, b.headCalls)
	require.Equal(t, uint64(42), b.sent.Nonce())
	require.Equal(t, uint64(150000), b.sent.Gas())
	require.Equal(t, big.NewInt(77), b.sent.GasFeeCap())
	require.Equal(t, big.NewInt(3), b.sent.GasTipCap())
	require.Equal(t, big.NewInt(1000), b.sent.Value())
}

// newTestBackendActor is newTestActor without fee data, so any defaulting
// attempt fails loudly.
func newTestBackendActor(t *testing.T) (*Actor, *testBackend) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	b := &testBackend{nonceErr: errors.New("unexpected nonce fetch"), gasErr: errors.New("unexpected gas estimate")}
	return NewFromKey(b, big.NewInt(1), key), b
}

func TestSendCallLegacy(t *testing.T) {
	a, b := newTestActor(t)

	_, err := a.SendCall(context.Background(), contractAddr, []byte{0x01}, &actions.TxOptions{
		GasPrice: big.NewInt(55),
	})
	require.NoError(t, err)
	require.Equal(t, uint8(types.LegacyTxType), b.sent.Type())
	require.Equal(t, big.NewInt(55), b.sent.GasPrice())
	require.Zero(t, b.tipCalls)
	require.Zero(t, b.headCalls)
}

func TestSendCallErrors(t *testing.T) {
	t.Run("no signer", func(t *testing.T) {
		a := New(&testBackend{}, big.NewInt(1), common.Address{}, nil)
		_, err := a.SendCall(context.Background(), contractAddr, nil, nil)
		require.ErrorIs(t, err, ErrNoSigner)
	})
	t.Run("send failure", func(t *testing.T) {
		a, b := newTestActor(t)
		b.sendErr = errors.New("nonce too low")
		_, err := a.SendCall(context.Background(), contractAddr, nil, nil)
		require.Same(t, b.sendErr, err)
	})
	t.Run("no base fee", func(t *testing.T) {
		a, b := newTestActor(t)
		b.baseFee = nil
		_, err := a.SendCall(context.Background(), contractAddr, nil, nil)
		require.Error(t, err)
	})
}

func TestWaiter(t *testing.T) {
	receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful}

	t.Run("mined after polls", func(t *testing.T) {
		b := &testBackend{
			receipt:    receipt,
			receiptErr: []error{ethereum.NotFound, ethereum.NotFound},
		}
		w := NewWaiter(b, time.Millisecond)
		r, err := w.WaitMined(context.Background(), common.Hash{1})
		require.NoError(t, err)
		require.Same(t, receipt, r)
		require.Equal(t, 3, b.receiptCalls)
	})

	t.Run("transient errors", func(t *testing.T) {
		someErr := errors.New("connection reset")
		b := &testBackend{
			receipt:    receipt,
			receiptErr: []error{someErr, someErr, ethereum.NotFound},
		}
		w := NewWaiter(b, time.Millisecond)
		_, err := w.WaitMined(context.Background(), common.Hash{1})
		require.NoError(t, err)
	})

	t.Run("persistent errors", func(t *testing.T) {
		someErr := errors.New("connection reset")
		b := &testBackend{
			receiptErr: []error{someErr, someErr, someErr, someErr, someErr},
		}
		w := NewWaiter(b, time.Millisecond)
		_, err := w.WaitMined(context.Background(), common.Hash{1})
		require.Same(t, someErr, err)
	})

	t.Run("context cancelled", func(t *testing.T) {
		b := &testBackend{receiptErr: []error{ethereum.NotFound, ethereum.NotFound, ethereum.NotFound}}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		w := NewWaiter(b, time.Minute)
		_, err := w.WaitMined(ctx, common.Hash{1})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("chained", func(t *testing.T) {
		w := NewWaiter(&testBackend{receipt: receipt}, time.Millisecond)
		r, err := w.Wait(context.Background(), common.Hash{1}, nil)
		require.NoError(t, err)
		require.Same(t, receipt, r)

		submitErr := errors.New("rejected")
		_, err = w.Wait(context.Background(), common.Hash{}, submitErr)
		require.Same(t, submitErr, err)

		failed := &types.Receipt{Status: types.ReceiptStatusFailed}
		w = NewWaiter(&testBackend{receipt: failed}, time.Millisecond)
		r, err = w.Wait(context.Background(), common.Hash{1}, nil)
		require.ErrorIs(t, err, ErrTxFailed)
		require.Same(t, failed, r)
	})
}
