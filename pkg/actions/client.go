/*
Package actions extends a signing Ethereum client capability with the write
operations of the ENS name registry.

Client composes an [Actor] (anything that can read contract state and
submit signed write calls) with an immutable per-chain contract directory
and exposes one method per registry operation: registration (commit,
register, renew), ownership (transfer, wrap, unwrap), subname management,
record management (address, text, content hash, ABI, batched records) and
fuse/permission management. Every operation validates its parameters,
applies its documented defaults, encodes the contract call through
[github.com/ethns-dev/ens-go/pkg/txdata] and submits it through the Actor,
returning the transaction hash.

Client is a structural composition: it holds the Actor by reference and
never mutates it, so the same Actor can back any number of Clients (and
remain usable directly) and a Client is safe for concurrent use. No
ordering between concurrently issued operations is enforced here; sequence
dependencies (like awaiting a commitment before registering) are the
caller's to arrange.

Failures keep their origin: parameter and defaulting problems surface as
ErrMissingField/ErrNoResolver/ErrBadTarget (or ens/fuses validation errors)
before any network traffic, while encoding and submission errors pass
through unchanged.
*/
package actions

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ethns-dev/ens-go/pkg/contracts"
	"github.com/ethns-dev/ens-go/pkg/ens"
	"github.com/ethns-dev/ens-go/pkg/fuses"
	"github.com/ethns-dev/ens-go/pkg/txdata"
)

// TargetContract selects which deployed contract an ownership-shaped
// operation goes through. Names can be owned at different layers (plain
// registry entry, wrapped ERC-1155 token, .eth registrar ERC-721 token)
// and the right layer is not derivable from the name alone, so callers
// state it explicitly.
type TargetContract string

const (
	// TargetRegistry addresses the plain ENS registry entry.
	TargetRegistry TargetContract = "registry"
	// TargetNameWrapper addresses the wrapped (ERC-1155) name.
	TargetNameWrapper TargetContract = "nameWrapper"
	// TargetRegistrar addresses the .eth registrar (ERC-721) token.
	TargetRegistrar TargetContract = "registrar"
)

// Client exposes ENS write operations on top of an Actor. Create instances
// with New or NewWithDirectory; the zero value is not usable.
type Client struct {
	actor   Actor
	dir     contracts.Directory
	chainID uint64
}

// New creates a Client for the given Actor using the built-in directory of
// public ENS deployments. It fails with contracts.ErrUnsupportedChain when
// the actor's chain has no known deployment.
func New(actor Actor) (*Client, error) {
	return NewWithDirectory(actor, contracts.Default())
}

// NewWithDirectory creates a Client with a custom contract directory (for
// private or forked deployments, see the config package).
func NewWithDirectory(actor Actor, dir contracts.Directory) (*Client, error) {
	id := actor.ChainID()
	if id == nil || !id.IsUint64() {
		return nil, fmt.Errorf("%w: %v", contracts.ErrUnsupportedChain, id)
	}
	if !dir.Supported(id.Uint64()) {
		return nil, fmt.Errorf("%w: %d", contracts.ErrUnsupportedChain, id.Uint64())
	}
	return &Client{actor: actor, dir: dir, chainID: id.Uint64()}, nil
}

// Actor returns the underlying capability the Client submits through.
func (c *Client) Actor() Actor {
	return c.actor
}

func (c *Client) contract(role contracts.Role) (common.Address, error) {
	return c.dir.Address(c.chainID, role)
}

// Resolver returns the resolver currently set for the name in the registry,
// which is the zero address when none is set.
func (c *Client) Resolver(ctx context.Context, name string) (common.Address, error) {
	if err := ens.Validate(name); err != nil {
		return common.Address{}, err
	}
	registry, err := c.contract(contracts.RoleRegistry)
	if err != nil {
		return common.Address{}, err
	}
	data, err := txdata.RegistryResolverCall(ens.NameHash(name))
	if err != nil {
		return common.Address{}, err
	}
	ret, err := c.actor.Call(ctx, registry, data)
	if err != nil {
		return common.Address{}, err
	}
	return addressResult(txdata.Registry.Unpack("resolver", ret))
}

// Owner returns the registry owner of the name (the wrapper contract for
// wrapped names), zero when the name doesn't exist.
func (c *Client) Owner(ctx context.Context, name string) (common.Address, error) {
	if err := ens.Validate(name); err != nil {
		return common.Address{}, err
	}
	registry, err := c.contract(contracts.RoleRegistry)
	if err != nil {
		return common.Address{}, err
	}
	data, err := txdata.RegistryOwnerCall(ens.NameHash(name))
	if err != nil {
		return common.Address{}, err
	}
	ret, err := c.actor.Call(ctx, registry, data)
	if err != nil {
		return common.Address{}, err
	}
	return addressResult(txdata.Registry.Unpack("owner", ret))
}

// RentPrice quotes the base and premium price (in wei) of registering or
// renewing a .eth second-level name for the given duration in seconds. The
// sum is the value a RegisterName/RenewNames transaction has to carry.
func (c *Client) RentPrice(ctx context.Context, name string, duration *big.Int) (base, premium *big.Int, err error) {
	label, err := eth2LDLabel(name)
	if err != nil {
		return nil, nil, err
	}
	if duration == nil || duration.Sign() <= 0 {
		return nil, nil, fmt.Errorf("%w: duration", ErrMissingField)
	}
	controller, err := c.contract(contracts.RoleETHRegistrarController)
	if err != nil {
		return nil, nil, err
	}
	data, err := txdata.ControllerRentPriceCall(label, duration)
	if err != nil {
		return nil, nil, err
	}
	ret, err := c.actor.Call(ctx, controller, data)
	if err != nil {
		return nil, nil, err
	}
	return bigIntPairResult(txdata.Controller.Unpack("rentPrice", ret))
}

// Expires returns the registration expiry of a .eth second-level name as a
// unix timestamp, zero for names that were never registered.
func (c *Client) Expires(ctx context.Context, name string) (*big.Int, error) {
	label, err := eth2LDLabel(name)
	if err != nil {
		return nil, err
	}
	registrar, err := c.contract(contracts.RoleBaseRegistrar)
	if err != nil {
		return nil, err
	}
	data, err := txdata.RegistrarNameExpiresCall(ens.TokenID(label))
	if err != nil {
		return nil, err
	}
	ret, err := c.actor.Call(ctx, registrar, data)
	if err != nil {
		return nil, err
	}
	return bigIntResult(txdata.Registrar.Unpack("nameExpires", ret))
}

// WrappedState returns the wrapper-side owner, burnt fuses and fuse expiry
// of a name. A zero owner means the name is not wrapped.
func (c *Client) WrappedState(ctx context.Context, name string) (common.Address, fuses.Fuse, uint64, error) {
	if err := ens.Validate(name); err != nil {
		return common.Address{}, 0, 0, err
	}
	wrapper, err := c.contract(contracts.RoleNameWrapper)
	if err != nil {
		return common.Address{}, 0, 0, err
	}
	id := new(big.Int).SetBytes(ens.NameHash(name).Bytes())
	data, err := txdata.WrapperGetDataCall(id)
	if err != nil {
		return common.Address{}, 0, 0, err
	}
	ret, err := c.actor.Call(ctx, wrapper, data)
	if err != nil {
		return common.Address{}, 0, 0, err
	}
	owner, fuseWord, expiry, err := wrappedStateResult(txdata.Wrapper.Unpack("getData", ret))
	return owner, fuses.Fuse(fuseWord), expiry, err
}

// lookupResolver returns the override verbatim when given (performing no
// network call), otherwise the name's current resolver, which may be zero.
func (c *Client) lookupResolver(ctx context.Context, name string, override *common.Address) (common.Address, error) {
	if override != nil {
		return *override, nil
	}
	return c.Resolver(ctx, name)
}

// resolverFor is lookupResolver for operations that can't proceed without
// a resolver: a zero result fails with ErrNoResolver.
func (c *Client) resolverFor(ctx context.Context, name string, override *common.Address) (common.Address, error) {
	resolver, err := c.lookupResolver(ctx, name, override)
	if err != nil {
		return common.Address{}, err
	}
	if resolver == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: %s", ErrNoResolver, name)
	}
	return resolver, nil
}

// eth2LDLabel validates that the name is a second-level .eth name and
// returns its first label.
func eth2LDLabel(name string) (string, error) {
	if err := ens.Validate(name); err != nil {
		return "", err
	}
	if !ens.IsETH2LD(name) {
		return "", fmt.Errorf("%w: %q is not a second-level .eth name", ens.ErrInvalidName, name)
	}
	label, _ := ens.Split(name)
	return label, nil
}

// subname validates that the name has a parent and returns its parts.
func subname(name string) (label, parent string, err error) {
	if err := ens.Validate(name); err != nil {
		return "", "", err
	}
	label, parent = ens.Split(name)
	if parent == "" {
		return "", "", fmt.Errorf("%w: %q has no parent name", ens.ErrInvalidName, name)
	}
	return label, parent, nil
}
