package actor

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// PollingWaiterRetryCount is the number of consecutive receipt-poll errors
// (other than the transaction not being found yet) tolerated before Wait
// gives up.
const PollingWaiterRetryCount = 3

// DefaultPollInterval is used when a Waiter is created with a zero
// interval; roughly half a mainnet block time.
const DefaultPollInterval = 6 * time.Second

// ErrTxFailed is returned by Wait when the transaction was mined but
// reverted.
var ErrTxFailed = errors.New("transaction failed")

// Waiter polls a Backend for transaction receipts. There are no
// subscriptions involved, so it works over plain HTTP endpoints.
type Waiter struct {
	backend      Backend
	pollInterval time.Duration
}

// NewWaiter creates a Waiter polling every pollInterval (DefaultPollInterval
// when zero).
func NewWaiter(backend Backend, pollInterval time.Duration) *Waiter {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Waiter{backend: backend, pollInterval: pollInterval}
}

// WaitMined blocks until the transaction is mined (returning its receipt
// even if it reverted) or the context is done.
func (w *Waiter) WaitMined(ctx context.Context, h common.Hash) (*types.Receipt, error) {
	timer := time.NewTicker(w.pollInterval)
	defer timer.Stop()

	var retries int
	for {
		r, err := w.backend.TransactionReceipt(ctx, h)
		switch {
		case err == nil:
			return r, nil
		case errors.Is(err, ethereum.NotFound):
			retries = 0 // not mined yet, keep polling
		default:
			retries++
			if retries > PollingWaiterRetryCount {
				return nil, err
			}
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

// Wait is WaitMined accepting the (hash, error) pair the submission
// methods return, so it can be chained directly:
//
//	w.Wait(ctx, client.SetResolver(ctx, p))
//
// Unlike WaitMined it treats a reverted transaction as an error.
func (w *Waiter) Wait(ctx context.Context, h common.Hash, err error) (*types.Receipt, error) {
	if err != nil {
		return nil, err
	}
	r, err := w.WaitMined(ctx, h)
	if err != nil {
		return nil, err
	}
	if r.Status != types.ReceiptStatusSuccessful {
		return r, ErrTxFailed
	}
	return r, nil
}
