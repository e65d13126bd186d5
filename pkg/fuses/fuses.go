// Package fuses models the NameWrapper permission fuses. A fuse is an
// irrevocable permission bit burned into a wrapped name: once set it can
// never be cleared, so every encoder here validates combinations before
// anything is submitted on chain.
package fuses

import (
	"errors"
	"fmt"
)

// Fuse is a NameWrapper fuse word. The low 16 bits are owner-controlled,
// the upper bits are parent-controlled.
type Fuse uint32

// Owner-controlled fuses.
const (
	CannotUnwrap Fuse = 1 << iota
	CannotBurnFuses
	CannotTransfer
	CannotSetResolver
	CannotSetTTL
	CannotCreateSubdomain
	CannotApprove
)

// Parent-controlled fuses. IsDotETH is set by the wrapper itself and can
// never be burned by a caller.
const (
	ParentCannotControl Fuse = 1 << (16 + iota)
	IsDotETH
	CanExtendExpiry
)

// CanDoEverything is the empty fuse word.
const CanDoEverything Fuse = 0

// Masks of the fuses that callers may burn.
const (
	OwnerControlledMask = CannotUnwrap | CannotBurnFuses | CannotTransfer |
		CannotSetResolver | CannotSetTTL | CannotCreateSubdomain | CannotApprove
	ParentControlledMask = ParentCannotControl | CanExtendExpiry
)

// ErrInvalidFuses is returned (wrapped) for fuse words the wrapper would
// reject or that contain unknown bits.
var ErrInvalidFuses = errors.New("invalid fuses")

// String returns a human-readable fuse list.
func (f Fuse) String() string {
	if f == CanDoEverything {
		return "CAN_DO_EVERYTHING"
	}
	names := []struct {
		bit  Fuse
		name string
	}{
		{CannotUnwrap, "CANNOT_UNWRAP"},
		{CannotBurnFuses, "CANNOT_BURN_FUSES"},
		{CannotTransfer, "CANNOT_TRANSFER"},
		{CannotSetResolver, "CANNOT_SET_RESOLVER"},
		{CannotSetTTL, "CANNOT_SET_TTL"},
		{CannotCreateSubdomain, "CANNOT_CREATE_SUBDOMAIN"},
		{CannotApprove, "CANNOT_APPROVE"},
		{ParentCannotControl, "PARENT_CANNOT_CONTROL"},
		{IsDotETH, "IS_DOT_ETH"},
		{CanExtendExpiry, "CAN_EXTEND_EXPIRY"},
	}
	var res string
	for _, n := range names {
		if f&n.bit == 0 {
			continue
		}
		if res != "" {
			res += "|"
		}
		res += n.name
		f &^= n.bit
	}
	if f != 0 {
		if res != "" {
			res += "|"
		}
		res += fmt.Sprintf("0x%x", uint32(f))
	}
	return res
}

// EncodeOwner converts an owner-controlled fuse word to the uint16 the
// wrapper's setFuses method takes. Parent-controlled and unknown bits are
// rejected.
func EncodeOwner(f Fuse) (uint16, error) {
	if f&^OwnerControlledMask != 0 {
		return 0, fmt.Errorf("%w: %s is not owner-controlled", ErrInvalidFuses, f&^OwnerControlledMask)
	}
	return uint16(f), nil
}

// EncodeInitial validates an owner-controlled fuse word for a name that is
// being freshly wrapped or registered. On a fresh name no fuse is burned
// yet, so burning any owner fuse requires CANNOT_UNWRAP in the same word
// (the wrapper reverts otherwise).
func EncodeInitial(f Fuse) (uint16, error) {
	res, err := EncodeOwner(f)
	if err != nil {
		return 0, err
	}
	if f != CanDoEverything && f&CannotUnwrap == 0 {
		return 0, fmt.Errorf("%w: burning %s requires CANNOT_UNWRAP", ErrInvalidFuses, f)
	}
	return res, nil
}

// EncodeChild validates a full fuse word a parent burns on a child via
// setChildFuses or the wrapper's subname methods. Owner-controlled fuses
// can only be burned together with PARENT_CANNOT_CONTROL, and any owner
// fuse besides CANNOT_UNWRAP requires CANNOT_UNWRAP as well. IS_DOT_ETH is
// never settable.
func EncodeChild(f Fuse) (uint32, error) {
	if f&^(OwnerControlledMask|ParentControlledMask) != 0 {
		return 0, fmt.Errorf("%w: unknown or unsettable bits in %s", ErrInvalidFuses, f)
	}
	owner := f & OwnerControlledMask
	if owner != 0 && f&ParentCannotControl == 0 {
		return 0, fmt.Errorf("%w: burning %s requires PARENT_CANNOT_CONTROL", ErrInvalidFuses, owner)
	}
	if owner&^CannotUnwrap != 0 && owner&CannotUnwrap == 0 {
		return 0, fmt.Errorf("%w: burning %s requires CANNOT_UNWRAP", ErrInvalidFuses, owner)
	}
	return uint32(f), nil
}
