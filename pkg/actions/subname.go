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

// CreateSubnameParams parameterize CreateSubname.
type CreateSubnameParams struct {
	// Name is the subname to create; the sender must control its parent
	// on the chosen contract.
	Name string
	// NewOwnerAddress becomes the subname's owner.
	NewOwnerAddress common.Address
	// Contract is the layer the parent lives on: TargetRegistry for
	// plain parents, TargetNameWrapper for wrapped ones.
	Contract TargetContract
	// ResolverAddress is the subname's resolver; nil leaves it unset.
	ResolverAddress *common.Address
	// TTL is the registry TTL of the subname record.
	TTL uint64
	// Fuses and Expiry only apply on the name wrapper.
	Fuses     fuses.Fuse
	Expiry    uint64
	Overrides *TxOptions
}

// CreateSubname creates (or re-parents) a subname under a parent the
// sender controls.
func (c *Client) CreateSubname(ctx context.Context, p CreateSubnameParams) (common.Hash, error) {
	if err := ens.Validate(p.Name); err != nil {
		return common.Hash{}, err
	}
	if p.NewOwnerAddress == (common.Address{}) {
		return common.Hash{}, fmt.Errorf("%w: newOwnerAddress", ErrMissingField)
	}
	label, parent, err := subname(p.Name)
	if err != nil {
		return common.Hash{}, err
	}
	var resolver common.Address
	if p.ResolverAddress != nil {
		resolver = *p.ResolverAddress
	}
	var (
		role     contracts.Role
		calldata []byte
	)
	switch p.Contract {
	case TargetRegistry:
		if p.Fuses != 0 || p.Expiry != 0 {
			return common.Hash{}, fmt.Errorf("%w: fuses and expiry only apply on the name wrapper", fuses.ErrInvalidFuses)
		}
		role = contracts.RoleRegistry
		calldata, err = txdata.RegistrySetSubnodeRecord(ens.NameHash(parent), ens.LabelHash(label), p.NewOwnerAddress, resolver, p.TTL)
	case TargetNameWrapper:
		var fuseWord uint32
		fuseWord, err = fuses.EncodeChild(p.Fuses)
		if err != nil {
			return common.Hash{}, err
		}
		role = contracts.RoleNameWrapper
		calldata, err = txdata.WrapperSetSubnodeRecord(ens.NameHash(parent), label, p.NewOwnerAddress, resolver, p.TTL, fuseWord, p.Expiry)
	case "":
		return common.Hash{}, fmt.Errorf("%w: contract", ErrMissingField)
	default:
		return common.Hash{}, fmt.Errorf("%w: %q can't create subnames", ErrBadTarget, p.Contract)
	}
	if err != nil {
		return common.Hash{}, err
	}
	to, err := c.contract(role)
	if err != nil {
		return common.Hash{}, err
	}
	return c.actor.SendCall(ctx, to, calldata, p.Overrides)
}

// DeleteSubnameParams parameterize DeleteSubname.
type DeleteSubnameParams struct {
	Name string
	// Contract is the layer the subname lives on.
	Contract TargetContract
	// AsParent deletes through the parent's authority (the sender owns
	// the parent) instead of the subname's own.
	AsParent  bool
	Overrides *TxOptions
}

// DeleteSubname zeroes out a subname's owner, resolver and TTL, either as
// its owner or as the owner of its parent.
func (c *Client) DeleteSubname(ctx context.Context, p DeleteSubnameParams) (common.Hash, error) {
	if err := ens.Validate(p.Name); err != nil {
		return common.Hash{}, err
	}
	label, parent, err := subname(p.Name)
	if err != nil {
		return common.Hash{}, err
	}
	var (
		role     contracts.Role
		calldata []byte
	)
	switch p.Contract {
	case TargetRegistry:
		role = contracts.RoleRegistry
		if p.AsParent {
			calldata, err = txdata.RegistrySetSubnodeRecord(ens.NameHash(parent), ens.LabelHash(label), common.Address{}, common.Address{}, 0)
		} else {
			calldata, err = txdata.RegistrySetRecord(ens.NameHash(p.Name), common.Address{}, common.Address{}, 0)
		}
	case TargetNameWrapper:
		role = contracts.RoleNameWrapper
		if p.AsParent {
			calldata, err = txdata.WrapperSetSubnodeOwner(ens.NameHash(parent), label, common.Address{}, 0, 0)
		} else {
			calldata, err = txdata.WrapperSetRecord(ens.NameHash(p.Name), common.Address{}, common.Address{}, 0)
		}
	case "":
		return common.Hash{}, fmt.Errorf("%w: contract", ErrMissingField)
	default:
		return common.Hash{}, fmt.Errorf("%w: %q can't delete subnames", ErrBadTarget, p.Contract)
	}
	if err != nil {
		return common.Hash{}, err
	}
	to, err := c.contract(role)
	if err != nil {
		return common.Hash{}, err
	}
	return c.actor.SendCall(ctx, to, calldata, p.Overrides)
}
