package actions

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ethns-dev/ens-go/pkg/contracts"
	"github.com/ethns-dev/ens-go/pkg/ens"
	"github.com/ethns-dev/ens-go/pkg/txdata"
)

// TransferNameParams parameterize TransferName.
type TransferNameParams struct {
	Name string
	// NewOwnerAddress receives the name.
	NewOwnerAddress common.Address
	// Contract is the layer holding the ownership being moved: the
	// registry controller record, the registrar ERC-721 token or the
	// name wrapper ERC-1155 token.
	Contract TargetContract
	// AsParent transfers through the parent's registry authority instead
	// of the name's own; registry only.
	AsParent bool
	// Reclaim resets the registry controller to NewOwnerAddress instead
	// of moving the ERC-721 token; registrar only.
	Reclaim   bool
	Overrides *TxOptions
}

// TransferName hands a name over to a new owner on the chosen contract.
func (c *Client) TransferName(ctx context.Context, p TransferNameParams) (common.Hash, error) {
	if err := ens.Validate(p.Name); err != nil {
		return common.Hash{}, err
	}
	if p.NewOwnerAddress == (common.Address{}) {
		return common.Hash{}, fmt.Errorf("%w: newOwnerAddress", ErrMissingField)
	}
	if p.AsParent && p.Contract != TargetRegistry {
		return common.Hash{}, fmt.Errorf("%w: asParent only applies to the registry", ErrBadTarget)
	}
	if p.Reclaim && p.Contract != TargetRegistrar {
		return common.Hash{}, fmt.Errorf("%w: reclaim only applies to the registrar", ErrBadTarget)
	}
	var (
		role     contracts.Role
		calldata []byte
		err      error
	)
	switch p.Contract {
	case TargetRegistry:
		role = contracts.RoleRegistry
		if p.AsParent {
			label, parent, serr := subname(p.Name)
			if serr != nil {
				return common.Hash{}, serr
			}
			calldata, err = txdata.RegistrySetSubnodeOwner(ens.NameHash(parent), ens.LabelHash(label), p.NewOwnerAddress)
		} else {
			calldata, err = txdata.RegistrySetOwner(ens.NameHash(p.Name), p.NewOwnerAddress)
		}
	case TargetRegistrar:
		if !ens.IsETH2LD(p.Name) {
			return common.Hash{}, fmt.Errorf("%w: the registrar only holds .eth second-level names", ErrBadTarget)
		}
		label, lerr := eth2LDLabel(p.Name)
		if lerr != nil {
			return common.Hash{}, lerr
		}
		role = contracts.RoleBaseRegistrar
		tokenID := ens.TokenID(label)
		if p.Reclaim {
			calldata, err = txdata.RegistrarReclaim(tokenID, p.NewOwnerAddress)
		} else {
			calldata, err = txdata.RegistrarSafeTransferFrom(c.actor.Sender(), p.NewOwnerAddress, tokenID)
		}
	case TargetNameWrapper:
		role = contracts.RoleNameWrapper
		id := new(big.Int).SetBytes(ens.NameHash(p.Name).Bytes())
		calldata, err = txdata.WrapperSafeTransferFrom(c.actor.Sender(), p.NewOwnerAddress, id, nil)
	case "":
		return common.Hash{}, fmt.Errorf("%w: contract", ErrMissingField)
	default:
		return common.Hash{}, fmt.Errorf("%w: %q can't transfer names", ErrBadTarget, p.Contract)
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
