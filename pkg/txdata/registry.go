package txdata

import (
	"github.com/ethereum/go-ethereum/common"
)

// RegistryResolverCall encodes the registry resolver(node) read call.
func RegistryResolverCall(node common.Hash) ([]byte, error) {
	return Registry.Pack("resolver", node)
}

// RegistryOwnerCall encodes the registry owner(node) read call.
func RegistryOwnerCall(node common.Hash) ([]byte, error) {
	return Registry.Pack("owner", node)
}

// RegistrySetResolver encodes setResolver(node, resolver).
func RegistrySetResolver(node common.Hash, resolver common.Address) ([]byte, error) {
	return Registry.Pack("setResolver", node, resolver)
}

// RegistrySetOwner encodes setOwner(node, owner).
func RegistrySetOwner(node common.Hash, owner common.Address) ([]byte, error) {
	return Registry.Pack("setOwner", node, owner)
}

// RegistrySetSubnodeOwner encodes setSubnodeOwner(parentNode, labelhash, owner).
func RegistrySetSubnodeOwner(parentNode, labelHash common.Hash, owner common.Address) ([]byte, error) {
	return Registry.Pack("setSubnodeOwner", parentNode, labelHash, owner)
}

// RegistrySetSubnodeRecord encodes setSubnodeRecord(parentNode, labelhash,
// owner, resolver, ttl).
func RegistrySetSubnodeRecord(parentNode, labelHash common.Hash, owner, resolver common.Address, ttl uint64) ([]byte, error) {
	return Registry.Pack("setSubnodeRecord", parentNode, labelHash, owner, resolver, ttl)
}

// RegistrySetRecord encodes setRecord(node, owner, resolver, ttl).
func RegistrySetRecord(node common.Hash, owner, resolver common.Address, ttl uint64) ([]byte, error) {
	return Registry.Pack("setRecord", node, owner, resolver, ttl)
}
