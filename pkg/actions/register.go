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

// RegistrationParams parameterize the commit/register pair. The same
// values must be used for both calls of a registration, the controller
// compares the register call against the stored commitment.
type RegistrationParams struct {
	// Name is the .eth second-level name to register.
	Name string
	// Owner receives the name.
	Owner common.Address
	// Duration is the registration period in seconds.
	Duration *big.Int
	// Secret blinds the commitment against front-running. Required and
	// must not be all-zero; generate 32 random bytes and keep them until
	// the registration is confirmed.
	Secret [32]byte
	// ResolverAddress is the resolver set on the name at registration.
	// When nil it defaults to the chain's public resolver if Records are
	// given, to no resolver otherwise.
	ResolverAddress *common.Address
	// Records are optional resolver records written during registration.
	Records *RecordSet
	// ReverseRecord also claims the name as the owner's primary name.
	// Defaults to false: a primary name is never claimed implicitly.
	ReverseRecord bool
	// Fuses are owner-controlled fuses burned at registration. Defaults
	// to none (CAN_DO_EVERYTHING); burning permission bits is
	// irreversible, so it's strictly opt-in.
	Fuses fuses.Fuse
	// Overrides are forwarded verbatim to the submission layer.
	// RegisterName requires Value to carry the rent price (see RentPrice).
	Overrides *TxOptions
}

// registration resolves the derived encoder arguments shared by CommitName
// and RegisterName.
func (c *Client) registration(p *RegistrationParams) (label string, resolver common.Address, data [][]byte, fuseWord uint16, err error) {
	label, err = eth2LDLabel(p.Name)
	if err != nil {
		return "", common.Address{}, nil, 0, err
	}
	if p.Owner == (common.Address{}) {
		return "", common.Address{}, nil, 0, fmt.Errorf("%w: owner", ErrMissingField)
	}
	if p.Duration == nil || p.Duration.Sign() <= 0 {
		return "", common.Address{}, nil, 0, fmt.Errorf("%w: duration", ErrMissingField)
	}
	if p.Secret == ([32]byte{}) {
		return "", common.Address{}, nil, 0, fmt.Errorf("%w: secret", ErrMissingField)
	}
	fuseWord, err = fuses.EncodeInitial(p.Fuses)
	if err != nil {
		return "", common.Address{}, nil, 0, err
	}

	records := p.Records != nil && !p.Records.empty()
	switch {
	case p.ResolverAddress != nil:
		resolver = *p.ResolverAddress
	case records:
		resolver, err = c.contract(contracts.RolePublicResolver)
		if err != nil {
			return "", common.Address{}, nil, 0, err
		}
	}
	if records {
		if resolver == (common.Address{}) {
			return "", common.Address{}, nil, 0, fmt.Errorf("%w: records need a resolver", ErrNoResolver)
		}
		data, err = p.Records.calls(ens.NameHash(p.Name))
		if err != nil {
			return "", common.Address{}, nil, 0, err
		}
	}
	return label, resolver, data, fuseWord, nil
}

// CommitName submits the commitment that has to precede a RegisterName
// call with the same parameters. The controller enforces a minimum age on
// commitments, so the caller must wait for this transaction to be mined
// (plus the commitment age) before registering.
func (c *Client) CommitName(ctx context.Context, p RegistrationParams) (common.Hash, error) {
	label, resolver, data, fuseWord, err := c.registration(&p)
	if err != nil {
		return common.Hash{}, err
	}
	commitment, err := txdata.MakeCommitment(label, p.Owner, p.Duration, p.Secret, resolver, data, p.ReverseRecord, fuseWord)
	if err != nil {
		return common.Hash{}, err
	}
	calldata, err := txdata.ControllerCommit(commitment)
	if err != nil {
		return common.Hash{}, err
	}
	to, err := c.contract(contracts.RoleETHRegistrarController)
	if err != nil {
		return common.Hash{}, err
	}
	return c.actor.SendCall(ctx, to, calldata, p.Overrides)
}

// RegisterName registers a committed .eth name. Overrides.Value is
// required and must cover the rent price for the duration; the registry
// never quotes it implicitly (use RentPrice).
func (c *Client) RegisterName(ctx context.Context, p RegistrationParams) (common.Hash, error) {
	label, resolver, data, fuseWord, err := c.registration(&p)
	if err != nil {
		return common.Hash{}, err
	}
	if p.Overrides == nil || p.Overrides.Value == nil {
		return common.Hash{}, fmt.Errorf("%w: value (rent price)", ErrMissingField)
	}
	calldata, err := txdata.ControllerRegister(label, p.Owner, p.Duration, p.Secret, resolver, data, p.ReverseRecord, fuseWord)
	if err != nil {
		return common.Hash{}, err
	}
	to, err := c.contract(contracts.RoleETHRegistrarController)
	if err != nil {
		return common.Hash{}, err
	}
	return c.actor.SendCall(ctx, to, calldata, p.Overrides)
}

// RenewNamesParams parameterize RenewNames.
type RenewNamesParams struct {
	// Names are the .eth second-level names to renew.
	Names []string
	// Duration is the renewal period in seconds, shared by all names.
	Duration *big.Int
	// Overrides are forwarded verbatim; Value is required and must cover
	// the total rent of all renewals.
	Overrides *TxOptions
}

// RenewNames extends the registration of one or more .eth names. A single
// name goes through the registrar controller, several names through the
// bulk renewal contract in one transaction.
func (c *Client) RenewNames(ctx context.Context, p RenewNamesParams) (common.Hash, error) {
	if len(p.Names) == 0 {
		return common.Hash{}, fmt.Errorf("%w: names", ErrMissingField)
	}
	if p.Duration == nil || p.Duration.Sign() <= 0 {
		return common.Hash{}, fmt.Errorf("%w: duration", ErrMissingField)
	}
	if p.Overrides == nil || p.Overrides.Value == nil {
		return common.Hash{}, fmt.Errorf("%w: value (rent price)", ErrMissingField)
	}
	labels := make([]string, len(p.Names))
	for i, name := range p.Names {
		label, err := eth2LDLabel(name)
		if err != nil {
			return common.Hash{}, err
		}
		labels[i] = label
	}

	var (
		calldata []byte
		role     contracts.Role
		err      error
	)
	if len(labels) == 1 {
		role = contracts.RoleETHRegistrarController
		calldata, err = txdata.ControllerRenew(labels[0], p.Duration)
	} else {
		role = contracts.RoleBulkRenewal
		calldata, err = txdata.BulkRenewAll(labels, p.Duration)
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
