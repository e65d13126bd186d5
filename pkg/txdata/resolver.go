package txdata

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ResolverSetAddr encodes setAddr(node, coinType, a). The value is the
// coin-specific binary encoding of the address (20 raw bytes for ETH);
// an empty value clears the record.
func ResolverSetAddr(node common.Hash, coinType uint64, value []byte) ([]byte, error) {
	return Resolver.Pack("setAddr", node, new(big.Int).SetUint64(coinType), value)
}

// ResolverSetText encodes setText(node, key, value). An empty value clears
// the key.
func ResolverSetText(node common.Hash, key, value string) ([]byte, error) {
	return Resolver.Pack("setText", node, key, value)
}

// ResolverSetContenthash encodes setContenthash(node, hash). An empty hash
// clears the record.
func ResolverSetContenthash(node common.Hash, hash []byte) ([]byte, error) {
	return Resolver.Pack("setContenthash", node, hash)
}

// ResolverSetABI encodes setABI(node, contentType, data).
func ResolverSetABI(node common.Hash, contentType uint64, data []byte) ([]byte, error) {
	return Resolver.Pack("setABI", node, new(big.Int).SetUint64(contentType), data)
}

// ResolverClearRecords encodes clearRecords(node), which bumps the
// resolver's record version and thereby drops every record of the node.
func ResolverClearRecords(node common.Hash) ([]byte, error) {
	return Resolver.Pack("clearRecords", node)
}

// ResolverMulticall encodes multicallWithNodeCheck(node, calls), batching
// several record mutations into one transaction. The node check makes the
// resolver revert if any inner call targets a different node.
func ResolverMulticall(node common.Hash, calls [][]byte) ([]byte, error) {
	return Resolver.Pack("multicallWithNodeCheck", node, calls)
}
