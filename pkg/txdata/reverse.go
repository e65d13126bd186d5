package txdata

import (
	"github.com/ethereum/go-ethereum/common"
)

// ReverseSetName encodes setName(name) on the reverse registrar, claiming
// the sender's primary name.
func ReverseSetName(name string) ([]byte, error) {
	return Reverse.Pack("setName", name)
}

// ReverseSetNameForAddr encodes setNameForAddr(addr, owner, resolver, name),
// claiming a primary name for an address the sender controls.
func ReverseSetNameForAddr(addr, owner, resolver common.Address, name string) ([]byte, error) {
	return Reverse.Pack("setNameForAddr", addr, owner, resolver, name)
}
