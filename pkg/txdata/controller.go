package txdata

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ethns-dev/ens-go/pkg/ens"
)

// commitmentArgs matches the tuple the controller hashes inside
// makeCommitment: (labelhash, owner, duration, secret, resolver, data,
// reverseRecord, ownerControlledFuses).
var commitmentArgs = abi.Arguments{
	{Type: mustType("bytes32")},
	{Type: mustType("address")},
	{Type: mustType("uint256")},
	{Type: mustType("bytes32")},
	{Type: mustType("address")},
	{Type: mustType("bytes[]")},
	{Type: mustType("bool")},
	{Type: mustType("uint16")},
}

func mustType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return typ
}

// MakeCommitment computes the registration commitment for the given
// parameters locally, without a network round-trip. It must be called with
// exactly the parameter values later passed to ControllerRegister or the
// controller will reject the registration.
func MakeCommitment(label string, owner common.Address, duration *big.Int, secret [32]byte,
	resolver common.Address, data [][]byte, reverseRecord bool, ownerControlledFuses uint16) (common.Hash, error) {
	packed, err := commitmentArgs.Pack(ens.LabelHash(label), owner, duration, secret,
		resolver, data, reverseRecord, ownerControlledFuses)
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(packed), nil
}

// ControllerCommit encodes commit(commitment).
func ControllerCommit(commitment common.Hash) ([]byte, error) {
	return Controller.Pack("commit", commitment)
}

// ControllerRegister encodes register(label, owner, duration, secret,
// resolver, data, reverseRecord, ownerControlledFuses). The call is payable
// and must carry the rent price as its value.
func ControllerRegister(label string, owner common.Address, duration *big.Int, secret [32]byte,
	resolver common.Address, data [][]byte, reverseRecord bool, ownerControlledFuses uint16) ([]byte, error) {
	return Controller.Pack("register", label, owner, duration, secret,
		resolver, data, reverseRecord, ownerControlledFuses)
}

// ControllerRenew encodes renew(label, duration); payable.
func ControllerRenew(label string, duration *big.Int) ([]byte, error) {
	return Controller.Pack("renew", label, duration)
}

// ControllerRentPriceCall encodes the rentPrice(label, duration) read call.
func ControllerRentPriceCall(label string, duration *big.Int) ([]byte, error) {
	return Controller.Pack("rentPrice", label, duration)
}

// BulkRenewAll encodes renewAll(labels, duration) on the bulk renewal
// contract; payable with the total price of all renewals.
func BulkRenewAll(labels []string, duration *big.Int) ([]byte, error) {
	return BulkRenewal.Pack("renewAll", labels, duration)
}
