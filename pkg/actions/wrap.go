package actions

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ethns-dev/ens-go/pkg/contracts"
	"github.com/ethns-dev/ens-go/pkg/ens"
	"github.com/ethns-dev/ens-go/pkg/fuses"
	"github.com/ethns-dev/ens-go/pkg/txdata"
)

// WrapNameParams parameterize WrapName.
type WrapNameParams struct {
	Name string
	// NewOwnerAddress receives the wrapped ERC-1155 token.
	NewOwnerAddress common.Address
	// Fuses are burnt at wrap time; only valid for .eth second-level
	// names and any owner-controlled fuse requires CannotUnwrap.
	Fuses fuses.Fuse
	// ResolverAddress overrides the resolver carried over into the
	// wrapper; nil keeps the name's current resolver.
	ResolverAddress *common.Address
	Overrides       *TxOptions
}

// WrapName wraps a name into the name wrapper. The wrapper must already
// be approved: as operator on the registrar for .eth second-level names,
// as operator on the registry otherwise.
func (c *Client) WrapName(ctx context.Context, p WrapNameParams) (common.Hash, error) {
	if err := ens.Validate(p.Name); err != nil {
		return common.Hash{}, err
	}
	if p.NewOwnerAddress == (common.Address{}) {
		return common.Hash{}, fmt.Errorf("%w: newOwnerAddress", ErrMissingField)
	}
	to, err := c.contract(contracts.RoleNameWrapper)
	if err != nil {
		return common.Hash{}, err
	}
	resolver, err := c.lookupResolver(ctx, p.Name, p.ResolverAddress)
	if err != nil {
		return common.Hash{}, err
	}
	var calldata []byte
	if ens.IsETH2LD(p.Name) {
		label, err := eth2LDLabel(p.Name)
		if err != nil {
			return common.Hash{}, err
		}
		fuseWord, err := fuses.EncodeInitial(p.Fuses)
		if err != nil {
			return common.Hash{}, err
		}
		calldata, err = txdata.WrapperWrapETH2LD(label, p.NewOwnerAddress, fuseWord, resolver)
		if err != nil {
			return common.Hash{}, err
		}
	} else {
		if p.Fuses != 0 {
			return common.Hash{}, fmt.Errorf("%w: fuses can only be burnt when wrapping a .eth second-level name", fuses.ErrInvalidFuses)
		}
		dnsName, err := ens.DNSEncode(p.Name)
		if err != nil {
			return common.Hash{}, err
		}
		calldata, err = txdata.WrapperWrap(dnsName, p.NewOwnerAddress, resolver)
		if err != nil {
			return common.Hash{}, err
		}
	}
	return c.actor.SendCall(ctx, to, calldata, p.Overrides)
}

// UnwrapNameParams parameterize UnwrapName.
type UnwrapNameParams struct {
	Name string
	// NewControllerAddress receives registry control of the unwrapped
	// name; required.
	NewControllerAddress common.Address
	// NewRegistrantAddress receives the registrar ERC-721 token;
	// required for .eth second-level names and must be nil otherwise.
	NewRegistrantAddress *common.Address
	Overrides            *TxOptions
}

// UnwrapName releases a wrapped name back to the registry (and, for .eth
// second-level names, the registrar). Fails on-chain if CannotUnwrap has
// been burnt.
func (c *Client) UnwrapName(ctx context.Context, p UnwrapNameParams) (common.Hash, error) {
	if err := ens.Validate(p.Name); err != nil {
		return common.Hash{}, err
	}
	if p.NewControllerAddress == (common.Address{}) {
		return common.Hash{}, fmt.Errorf("%w: newControllerAddress", ErrMissingField)
	}
	to, err := c.contract(contracts.RoleNameWrapper)
	if err != nil {
		return common.Hash{}, err
	}
	var calldata []byte
	if ens.IsETH2LD(p.Name) {
		if p.NewRegistrantAddress == nil || *p.NewRegistrantAddress == (common.Address{}) {
			return common.Hash{}, fmt.Errorf("%w: newRegistrantAddress", ErrMissingField)
		}
		label, err := eth2LDLabel(p.Name)
		if err != nil {
			return common.Hash{}, err
		}
		calldata, err = txdata.WrapperUnwrapETH2LD(ens.LabelHash(label), *p.NewRegistrantAddress, p.NewControllerAddress)
		if err != nil {
			return common.Hash{}, err
		}
	} else {
		if p.NewRegistrantAddress != nil {
			return common.Hash{}, fmt.Errorf("%w: newRegistrantAddress only applies to .eth second-level names", ErrBadTarget)
		}
		label, parent, err := subname(p.Name)
		if err != nil {
			return common.Hash{}, err
		}
		calldata, err = txdata.WrapperUnwrap(ens.NameHash(parent), ens.LabelHash(label), p.NewControllerAddress)
		if err != nil {
			return common.Hash{}, err
		}
	}
	return c.actor.SendCall(ctx, to, calldata, p.Overrides)
}

// SetFusesParams parameterize SetFuses.
type SetFusesParams struct {
	Name string
	// Fuses are owner-controlled fuses to burn on the name itself;
	// burning is one-way and CannotUnwrap must be burnt first or in the
	// same call for the rest to take.
	Fuses     fuses.Fuse
	Overrides *TxOptions
}

// SetFuses burns owner-controlled fuses on a wrapped name.
func (c *Client) SetFuses(ctx context.Context, p SetFusesParams) (common.Hash, error) {
	if err := ens.Validate(p.Name); err != nil {
		return common.Hash{}, err
	}
	fuseWord, err := fuses.EncodeOwner(p.Fuses)
	if err != nil {
		return common.Hash{}, err
	}
	to, err := c.contract(contracts.RoleNameWrapper)
	if err != nil {
		return common.Hash{}, err
	}
	calldata, err := txdata.WrapperSetFuses(ens.NameHash(p.Name), fuseWord)
	if err != nil {
		return common.Hash{}, err
	}
	return c.actor.SendCall(ctx, to, calldata, p.Overrides)
}

// SetChildFusesParams parameterize SetChildFuses.
type SetChildFusesParams struct {
	// Name is the child whose fuses are burnt; the sender must control
	// the parent.
	Name string
	// Fuses may combine parent- and owner-controlled fuses; owner fuses
	// require ParentCannotControl in the same word.
	Fuses fuses.Fuse
	// Expiry is the unix timestamp the fuses last until; 0 leaves the
	// current expiry alone.
	Expiry    uint64
	Overrides *TxOptions
}

// SetChildFuses burns fuses on a subname as its parent.
func (c *Client) SetChildFuses(ctx context.Context, p SetChildFusesParams) (common.Hash, error) {
	if err := ens.Validate(p.Name); err != nil {
		return common.Hash{}, err
	}
	label, parent, err := subname(p.Name)
	if err != nil {
		return common.Hash{}, err
	}
	fuseWord, err := fuses.EncodeChild(p.Fuses)
	if err != nil {
		return common.Hash{}, err
	}
	to, err := c.contract(contracts.RoleNameWrapper)
	if err != nil {
		return common.Hash{}, err
	}
	calldata, err := txdata.WrapperSetChildFuses(ens.NameHash(parent), ens.LabelHash(label), fuseWord, p.Expiry)
	if err != nil {
		return common.Hash{}, err
	}
	return c.actor.SendCall(ctx, to, calldata, p.Overrides)
}
