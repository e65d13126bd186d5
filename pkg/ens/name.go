/*
Package ens provides hashing and encoding helpers for ENS names.

Names are handled in their already-normalized form: hashing follows EIP-137
(recursive keccak-256 over dot-separated labels), single labels are hashed
with LabelHash and the DNS wire format required by the NameWrapper is
produced by DNSEncode. Full UTS-46 normalization is out of scope, Validate
only rejects names that cannot be hashed or encoded safely.
*/
package ens

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// MaxLabelLength is the maximum byte length of a single label in the DNS
// wire format used by the name wrapper.
const MaxLabelLength = 255

// ErrInvalidName is returned (wrapped) for names that can't be processed.
var ErrInvalidName = errors.New("invalid name")

// NameHash returns the EIP-137 hash of the given name. The empty name maps
// to the zero hash, "tld" to keccak256(zero ++ labelhash(tld)) and so on
// recursively.
func NameHash(name string) common.Hash {
	var node common.Hash
	if name == "" {
		return node
	}
	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		label := LabelHash(labels[i])
		h := sha3.NewLegacyKeccak256()
		h.Write(node[:])
		h.Write(label[:])
		h.Sum(node[:0])
	}
	return node
}

// LabelHash returns the keccak-256 hash of a single label.
func LabelHash(label string) common.Hash {
	var res common.Hash
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(label))
	h.Sum(res[:0])
	return res
}

// TokenID returns the ERC-721 token id of a second-level .eth name, which
// is the labelhash of its first label interpreted as a uint256.
func TokenID(label string) *big.Int {
	h := LabelHash(label)
	return new(big.Int).SetBytes(h[:])
}

// DNSEncode converts a name to the DNS wire format (length-prefixed labels
// followed by a zero byte) expected by the name wrapper's wrap method.
func DNSEncode(name string) ([]byte, error) {
	if err := Validate(name); err != nil {
		return nil, err
	}
	labels := strings.Split(name, ".")
	res := make([]byte, 0, len(name)+2)
	for _, label := range labels {
		if len(label) > MaxLabelLength {
			return nil, fmt.Errorf("%w: label %q longer than %d bytes", ErrInvalidName, label, MaxLabelLength)
		}
		res = append(res, byte(len(label)))
		res = append(res, label...)
	}
	return append(res, 0), nil
}

// Split splits a name into its first label and the parent name. The parent
// of a top-level name is the empty string.
func Split(name string) (label string, parent string) {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return name, ""
}

// Parent returns the parent name, empty for top-level names.
func Parent(name string) string {
	_, parent := Split(name)
	return parent
}

// IsETH2LD reports whether the name is a second-level name under .eth
// (like "ens.eth"), the only kind registrable through the .eth controller.
func IsETH2LD(name string) bool {
	label, parent := Split(name)
	return parent == "eth" && label != ""
}

// Validate rejects names that this package can't hash or encode safely:
// empty names, empty labels, whitespace/control characters and upper-case
// ASCII (normalized ENS names are always lower-case).
func Validate(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	for _, label := range strings.Split(name, ".") {
		if label == "" {
			return fmt.Errorf("%w: empty label in %q", ErrInvalidName, name)
		}
	}
	for _, r := range name {
		switch {
		case r <= 0x20 || r == 0x7f:
			return fmt.Errorf("%w: control or space character in %q", ErrInvalidName, name)
		case r >= 'A' && r <= 'Z':
			return fmt.Errorf("%w: %q is not normalized (upper-case)", ErrInvalidName, name)
		}
	}
	return nil
}
