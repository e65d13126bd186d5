package txdata

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// WrapperWrap encodes wrap(name, wrappedOwner, resolver) for names other
// than .eth second-level ones. The name must be in DNS wire format (see
// ens.DNSEncode).
func WrapperWrap(dnsName []byte, wrappedOwner, resolver common.Address) ([]byte, error) {
	return Wrapper.Pack("wrap", dnsName, wrappedOwner, resolver)
}

// WrapperWrapETH2LD encodes wrapETH2LD(label, wrappedOwner,
// ownerControlledFuses, resolver) for .eth second-level names.
func WrapperWrapETH2LD(label string, wrappedOwner common.Address, ownerControlledFuses uint16, resolver common.Address) ([]byte, error) {
	return Wrapper.Pack("wrapETH2LD", label, wrappedOwner, ownerControlledFuses, resolver)
}

// WrapperUnwrap encodes unwrap(parentNode, labelhash, controller).
func WrapperUnwrap(parentNode, labelHash common.Hash, controller common.Address) ([]byte, error) {
	return Wrapper.Pack("unwrap", parentNode, labelHash, controller)
}

// WrapperUnwrapETH2LD encodes unwrapETH2LD(labelhash, registrant, controller).
func WrapperUnwrapETH2LD(labelHash common.Hash, registrant, controller common.Address) ([]byte, error) {
	return Wrapper.Pack("unwrapETH2LD", labelHash, registrant, controller)
}

// WrapperSetFuses encodes setFuses(node, ownerControlledFuses).
func WrapperSetFuses(node common.Hash, ownerControlledFuses uint16) ([]byte, error) {
	return Wrapper.Pack("setFuses", node, ownerControlledFuses)
}

// WrapperSetChildFuses encodes setChildFuses(parentNode, labelhash, fuses, expiry).
func WrapperSetChildFuses(parentNode, labelHash common.Hash, fuseWord uint32, expiry uint64) ([]byte, error) {
	return Wrapper.Pack("setChildFuses", parentNode, labelHash, fuseWord, expiry)
}

// WrapperSetSubnodeOwner encodes setSubnodeOwner(parentNode, label, owner,
// fuses, expiry).
func WrapperSetSubnodeOwner(parentNode common.Hash, label string, owner common.Address, fuseWord uint32, expiry uint64) ([]byte, error) {
	return Wrapper.Pack("setSubnodeOwner", parentNode, label, owner, fuseWord, expiry)
}

// WrapperSetSubnodeRecord encodes setSubnodeRecord(parentNode, label,
// owner, resolver, ttl, fuses, expiry).
func WrapperSetSubnodeRecord(parentNode common.Hash, label string, owner, resolver common.Address, ttl uint64, fuseWord uint32, expiry uint64) ([]byte, error) {
	return Wrapper.Pack("setSubnodeRecord", parentNode, label, owner, resolver, ttl, fuseWord, expiry)
}

// WrapperSetRecord encodes setRecord(node, owner, resolver, ttl).
func WrapperSetRecord(node common.Hash, owner, resolver common.Address, ttl uint64) ([]byte, error) {
	return Wrapper.Pack("setRecord", node, owner, resolver, ttl)
}

// WrapperSetResolver encodes setResolver(node, resolver).
func WrapperSetResolver(node common.Hash, resolver common.Address) ([]byte, error) {
	return Wrapper.Pack("setResolver", node, resolver)
}

// WrapperSafeTransferFrom encodes the ERC-1155 safeTransferFrom(from, to,
// id, amount, data) moving a wrapped name (amount is always 1).
func WrapperSafeTransferFrom(from, to common.Address, id *big.Int, data []byte) ([]byte, error) {
	return Wrapper.Pack("safeTransferFrom", from, to, id, big.NewInt(1), data)
}

// WrapperGetDataCall encodes the getData(id) read call returning the owner,
// fuse word and expiry of a wrapped name.
func WrapperGetDataCall(id *big.Int) ([]byte, error) {
	return Wrapper.Pack("getData", id)
}
