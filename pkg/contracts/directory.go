// Package contracts holds the per-chain directory of deployed ENS contract
// addresses. The directory is a static table keyed by chain id and contract
// role, loaded once at process start; lookups for unsupported chains or
// unknown roles fail before any network call is made.
package contracts

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// Role names a deployed contract within an ENS deployment.
type Role string

const (
	// RoleRegistry is the ENS registry, the root ownership/resolver index.
	RoleRegistry Role = "registry"
	// RolePublicResolver is the default public resolver.
	RolePublicResolver Role = "public-resolver"
	// RoleETHRegistrarController handles .eth commit/register/renew.
	RoleETHRegistrarController Role = "eth-registrar-controller"
	// RoleBaseRegistrar is the .eth ERC-721 registrar.
	RoleBaseRegistrar Role = "base-registrar"
	// RoleNameWrapper wraps names into ERC-1155 tokens with fuses.
	RoleNameWrapper Role = "name-wrapper"
	// RoleReverseRegistrar manages addr.reverse primary names.
	RoleReverseRegistrar Role = "reverse-registrar"
	// RoleBulkRenewal renews several .eth names in one transaction.
	RoleBulkRenewal Role = "bulk-renewal"
)

var (
	// ErrUnsupportedChain is returned for chain ids the directory has no
	// entries for.
	ErrUnsupportedChain = errors.New("unsupported chain")
	// ErrUnknownRole is returned for contract roles the directory has no
	// address for on the given chain.
	ErrUnknownRole = errors.New("unknown contract role")
)

// Chain ids of the networks in the default directory.
const (
	Mainnet uint64 = 1
	Sepolia uint64 = 11155111
	Holesky uint64 = 17000
)

// Roles returns all roles a complete deployment provides.
func Roles() []Role {
	return []Role{
		RoleRegistry,
		RolePublicResolver,
		RoleETHRegistrarController,
		RoleBaseRegistrar,
		RoleNameWrapper,
		RoleReverseRegistrar,
		RoleBulkRenewal,
	}
}

var defaultChains = map[uint64]map[Role]common.Address{
	Mainnet: {
		RoleRegistry:               common.HexToAddress("0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"),
		RolePublicResolver:         common.HexToAddress("0x231b0Ee14048e9dCcD1d247744d114a4EB5E8E63"),
		RoleETHRegistrarController: common.HexToAddress("0x253553366Da8546fC250F225fe3d25d0C782303b"),
		RoleBaseRegistrar:          common.HexToAddress("0x57f1887a8BF19b14fC0dF6Fd9B2acc9Af147eA85"),
		RoleNameWrapper:            common.HexToAddress("0xD4416b13d2b3a9aBae7AcD5D6C2BbDBE25686401"),
		RoleReverseRegistrar:       common.HexToAddress("0xa58E81fe9b61B5c3fE2AFD33CF304c454AbFc7Cb"),
		RoleBulkRenewal:            common.HexToAddress("0xfF252725f6122A92551A5FA9a6b6bf10eb0Be035"),
	},
	Sepolia: {
		RoleRegistry:               common.HexToAddress("0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"),
		RolePublicResolver:         common.HexToAddress("0x8FADE66B79cC9f707aB26799354482EB93a5B7dD"),
		RoleETHRegistrarController: common.HexToAddress("0xFC6f318398E219b226D76820e5D0cB9B28BA35fF"),
		RoleBaseRegistrar:          common.HexToAddress("0x57f1887a8BF19b14fC0dF6Fd9B2acc9Af147eA85"),
		RoleNameWrapper:            common.HexToAddress("0x0635513f179D50A207757E05759CbD106d7dFcE8"),
		RoleReverseRegistrar:       common.HexToAddress("0xA0a1AbcDAe1a2a4A2EF8e9113Ff0e02DD81DC0C6"),
		RoleBulkRenewal:            common.HexToAddress("0x4EF77b90762Eddb33C8Eba5B5a19558DaE53D7a1"),
	},
	Holesky: {
		RoleRegistry:               common.HexToAddress("0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"),
		RolePublicResolver:         common.HexToAddress("0x9010A27463717360cAD99CEA8bD39b8705CCA238"),
		RoleETHRegistrarController: common.HexToAddress("0x179Be112b24Ad4cFC392eF8924DfA08C20Ad8583"),
		RoleBaseRegistrar:          common.HexToAddress("0x57f1887a8BF19b14fC0dF6Fd9B2acc9Af147eA85"),
		RoleNameWrapper:            common.HexToAddress("0xab50971078225D365994dc1Edcb9b7FD72Bb4862"),
		RoleReverseRegistrar:       common.HexToAddress("0x132AC0B116a73add4225029D1951A9A707Ef673f"),
		RoleBulkRenewal:            common.HexToAddress("0x53C61cFb8128ad59244E8c1D26109252ACe23d14"),
	},
}

// Directory maps chain ids to contract role addresses. The zero Directory
// supports nothing; use Default or WithOverrides to build one. Directory
// values are safe for concurrent use, all methods are read-only.
type Directory struct {
	chains map[uint64]map[Role]common.Address
}

// Default returns the directory of known public ENS deployments.
func Default() Directory {
	return Directory{chains: defaultChains}
}

// Address looks up the address of the given role on the given chain.
func (d Directory) Address(chainID uint64, role Role) (common.Address, error) {
	roles, ok := d.chains[chainID]
	if !ok {
		return common.Address{}, fmt.Errorf("%w: %d", ErrUnsupportedChain, chainID)
	}
	addr, ok := roles[role]
	if !ok {
		return common.Address{}, fmt.Errorf("%w: %q on chain %d", ErrUnknownRole, role, chainID)
	}
	return addr, nil
}

// Supported reports whether the directory has entries for the chain.
func (d Directory) Supported(chainID uint64) bool {
	_, ok := d.chains[chainID]
	return ok
}

// Chains returns the supported chain ids in ascending order.
func (d Directory) Chains() []uint64 {
	res := make([]uint64, 0, len(d.chains))
	for id := range d.chains {
		res = append(res, id)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// WithOverrides returns a new Directory with the given addresses merged in
// for the chain, adding the chain if it wasn't supported. The receiver is
// not modified.
func (d Directory) WithOverrides(chainID uint64, addrs map[Role]common.Address) Directory {
	chains := make(map[uint64]map[Role]common.Address, len(d.chains)+1)
	for id, roles := range d.chains {
		cp := make(map[Role]common.Address, len(roles))
		for r, a := range roles {
			cp[r] = a
		}
		chains[id] = cp
	}
	roles, ok := chains[chainID]
	if !ok {
		roles = make(map[Role]common.Address, len(addrs))
		chains[chainID] = roles
	}
	for r, a := range addrs {
		roles[r] = a
	}
	return Directory{chains: chains}
}
