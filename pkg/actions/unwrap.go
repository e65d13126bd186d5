package actions

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Helpers converting unpacked read-call results into concrete types.

func addressResult(out []any, err error) (common.Address, error) {
	if err != nil {
		return common.Address{}, err
	}
	if len(out) != 1 {
		return common.Address{}, fmt.Errorf("unexpected number of return values: %d", len(out))
	}
	addr, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, errors.New("return value is not an address")
	}
	return addr, nil
}

func bigIntResult(out []any, err error) (*big.Int, error) {
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("unexpected number of return values: %d", len(out))
	}
	v, ok := out[0].(*big.Int)
	if !ok {
		return nil, errors.New("return value is not an integer")
	}
	return v, nil
}

func wrappedStateResult(out []any, err error) (common.Address, uint32, uint64, error) {
	if err != nil {
		return common.Address{}, 0, 0, err
	}
	if len(out) != 3 {
		return common.Address{}, 0, 0, fmt.Errorf("unexpected number of return values: %d", len(out))
	}
	owner, ok1 := out[0].(common.Address)
	fuseWord, ok2 := out[1].(uint32)
	expiry, ok3 := out[2].(uint64)
	if !ok1 || !ok2 || !ok3 {
		return common.Address{}, 0, 0, errors.New("unexpected return value types")
	}
	return owner, fuseWord, expiry, nil
}

func bigIntPairResult(out []any, err error) (*big.Int, *big.Int, error) {
	if err != nil {
		return nil, nil, err
	}
	if len(out) != 2 {
		return nil, nil, fmt.Errorf("unexpected number of return values: %d", len(out))
	}
	a, ok1 := out[0].(*big.Int)
	b, ok2 := out[1].(*big.Int)
	if !ok1 || !ok2 {
		return nil, nil, errors.New("return values are not integers")
	}
	return a, b, nil
}
