package actions

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ethns-dev/ens-go/pkg/contracts"
	"github.com/ethns-dev/ens-go/pkg/ens"
	"github.com/ethns-dev/ens-go/pkg/txdata"
)

// CoinTypeETH is the SLIP-44 coin type of ether, the default for address
// records.
const CoinTypeETH = 60

// TextRecord is a key/value text record; an empty Value clears the key.
type TextRecord struct {
	Key   string
	Value string
}

// CoinRecord is an address record for one coin type. Value is the
// coin-specific binary address encoding (the 20 raw bytes for ETH); an
// empty Value clears the record.
type CoinRecord struct {
	CoinType uint64
	Value    []byte
}

// ABIRecord is a contract ABI record. ContentType must be a single EIP-205
// content type bit (1 JSON, 2 zlib-JSON, 4 CBOR, 8 URI); empty Data clears
// that content type.
type ABIRecord struct {
	ContentType uint64
	Data        []byte
}

// RecordSet is a batch of resolver record mutations. Only what is present
// is touched: nil ContentHash leaves the content hash alone (a non-nil
// empty one clears it) and existing records are never cleared implicitly,
// dropping everything is the explicit Clear flag.
type RecordSet struct {
	// Clear drops all existing records of the name before the mutations
	// below are applied.
	Clear       bool
	Texts       []TextRecord
	Coins       []CoinRecord
	ContentHash []byte
	ABI         *ABIRecord
}

func (rs *RecordSet) empty() bool {
	return !rs.Clear && len(rs.Texts) == 0 && len(rs.Coins) == 0 &&
		rs.ContentHash == nil && rs.ABI == nil
}

// calls encodes the mutation batch against the given node.
func (rs *RecordSet) calls(node common.Hash) ([][]byte, error) {
	var res [][]byte
	appendCall := func(data []byte, err error) error {
		if err != nil {
			return err
		}
		res = append(res, data)
		return nil
	}
	if rs.Clear {
		if err := appendCall(txdata.ResolverClearRecords(node)); err != nil {
			return nil, err
		}
	}
	for _, txt := range rs.Texts {
		if txt.Key == "" {
			return nil, fmt.Errorf("%w: text record key", ErrMissingField)
		}
		if err := appendCall(txdata.ResolverSetText(node, txt.Key, txt.Value)); err != nil {
			return nil, err
		}
	}
	for _, coin := range rs.Coins {
		if err := appendCall(txdata.ResolverSetAddr(node, coin.CoinType, coin.Value)); err != nil {
			return nil, err
		}
	}
	if rs.ContentHash != nil {
		if err := appendCall(txdata.ResolverSetContenthash(node, rs.ContentHash)); err != nil {
			return nil, err
		}
	}
	if rs.ABI != nil {
		if err := validateABIContentType(rs.ABI.ContentType); err != nil {
			return nil, err
		}
		if err := appendCall(txdata.ResolverSetABI(node, rs.ABI.ContentType, rs.ABI.Data)); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func validateABIContentType(ct uint64) error {
	if ct == 0 || ct&(ct-1) != 0 {
		return fmt.Errorf("%w: ABI content type must be a single bit, got %d", ErrMissingField, ct)
	}
	return nil
}

// SetRecordsParams parameterize SetRecords.
type SetRecordsParams struct {
	Name string
	// ResolverAddress overrides the resolver the records are written to.
	// When nil the name's current resolver is looked up; the operation
	// fails if there is none.
	ResolverAddress *common.Address
	RecordSet
	Overrides *TxOptions
}

// SetRecords applies a batch of record mutations in a single resolver
// multicall transaction. At least one mutation (or Clear) is required.
func (c *Client) SetRecords(ctx context.Context, p SetRecordsParams) (common.Hash, error) {
	if err := ens.Validate(p.Name); err != nil {
		return common.Hash{}, err
	}
	if p.empty() {
		return common.Hash{}, fmt.Errorf("%w: no record mutations given", ErrMissingField)
	}
	resolver, err := c.resolverFor(ctx, p.Name, p.ResolverAddress)
	if err != nil {
		return common.Hash{}, err
	}
	node := ens.NameHash(p.Name)
	calls, err := p.RecordSet.calls(node)
	if err != nil {
		return common.Hash{}, err
	}
	calldata, err := txdata.ResolverMulticall(node, calls)
	if err != nil {
		return common.Hash{}, err
	}
	return c.actor.SendCall(ctx, resolver, calldata, p.Overrides)
}

// SetAddressRecordParams parameterize SetAddressRecord.
type SetAddressRecordParams struct {
	Name string
	// CoinType is the SLIP-44 coin type; nil defaults to ETH (60). It is
	// a pointer because 0 is a valid coin type (BTC).
	CoinType *uint64
	// Value is the coin-specific binary address encoding; empty clears.
	Value           []byte
	ResolverAddress *common.Address
	Overrides       *TxOptions
}

// SetAddressRecord sets (or clears) a single address record.
func (c *Client) SetAddressRecord(ctx context.Context, p SetAddressRecordParams) (common.Hash, error) {
	if err := ens.Validate(p.Name); err != nil {
		return common.Hash{}, err
	}
	coinType := uint64(CoinTypeETH)
	if p.CoinType != nil {
		coinType = *p.CoinType
	}
	resolver, err := c.resolverFor(ctx, p.Name, p.ResolverAddress)
	if err != nil {
		return common.Hash{}, err
	}
	calldata, err := txdata.ResolverSetAddr(ens.NameHash(p.Name), coinType, p.Value)
	if err != nil {
		return common.Hash{}, err
	}
	return c.actor.SendCall(ctx, resolver, calldata, p.Overrides)
}

// SetTextRecordParams parameterize SetTextRecord.
type SetTextRecordParams struct {
	Name string
	// Key is required; an empty Value clears the key.
	Key             string
	Value           string
	ResolverAddress *common.Address
	Overrides       *TxOptions
}

// SetTextRecord sets (or clears) a single text record.
func (c *Client) SetTextRecord(ctx context.Context, p SetTextRecordParams) (common.Hash, error) {
	if err := ens.Validate(p.Name); err != nil {
		return common.Hash{}, err
	}
	if p.Key == "" {
		return common.Hash{}, fmt.Errorf("%w: key", ErrMissingField)
	}
	resolver, err := c.resolverFor(ctx, p.Name, p.ResolverAddress)
	if err != nil {
		return common.Hash{}, err
	}
	calldata, err := txdata.ResolverSetText(ens.NameHash(p.Name), p.Key, p.Value)
	if err != nil {
		return common.Hash{}, err
	}
	return c.actor.SendCall(ctx, resolver, calldata, p.Overrides)
}

// SetContentHashRecordParams parameterize SetContentHashRecord.
type SetContentHashRecordParams struct {
	Name string
	// ContentHash is the multicodec-encoded content hash; empty clears.
	ContentHash     []byte
	ResolverAddress *common.Address
	Overrides       *TxOptions
}

// SetContentHashRecord sets (or clears) the content hash record.
func (c *Client) SetContentHashRecord(ctx context.Context, p SetContentHashRecordParams) (common.Hash, error) {
	if err := ens.Validate(p.Name); err != nil {
		return common.Hash{}, err
	}
	resolver, err := c.resolverFor(ctx, p.Name, p.ResolverAddress)
	if err != nil {
		return common.Hash{}, err
	}
	calldata, err := txdata.ResolverSetContenthash(ens.NameHash(p.Name), p.ContentHash)
	if err != nil {
		return common.Hash{}, err
	}
	return c.actor.SendCall(ctx, resolver, calldata, p.Overrides)
}

// SetABIRecordParams parameterize SetABIRecord.
type SetABIRecordParams struct {
	Name string
	// ContentType is a single EIP-205 content type bit.
	ContentType uint64
	// Data is the encoded ABI; empty clears the content type.
	Data            []byte
	ResolverAddress *common.Address
	Overrides       *TxOptions
}

// SetABIRecord sets (or clears) the ABI record for one content type.
func (c *Client) SetABIRecord(ctx context.Context, p SetABIRecordParams) (common.Hash, error) {
	if err := ens.Validate(p.Name); err != nil {
		return common.Hash{}, err
	}
	if err := validateABIContentType(p.ContentType); err != nil {
		return common.Hash{}, err
	}
	resolver, err := c.resolverFor(ctx, p.Name, p.ResolverAddress)
	if err != nil {
		return common.Hash{}, err
	}
	calldata, err := txdata.ResolverSetABI(ens.NameHash(p.Name), p.ContentType, p.Data)
	if err != nil {
		return common.Hash{}, err
	}
	return c.actor.SendCall(ctx, resolver, calldata, p.Overrides)
}

// SetResolverParams parameterize SetResolver.
type SetResolverParams struct {
	Name string
	// Contract is the layer owning the name: TargetRegistry for plain
	// names, TargetNameWrapper for wrapped ones.
	Contract TargetContract
	// ResolverAddress is the new resolver; required (use the public
	// resolver address explicitly rather than relying on a default).
	ResolverAddress common.Address
	Overrides       *TxOptions
}

// SetResolver changes the resolver of a name in the registry or, for
// wrapped names, through the name wrapper.
func (c *Client) SetResolver(ctx context.Context, p SetResolverParams) (common.Hash, error) {
	if err := ens.Validate(p.Name); err != nil {
		return common.Hash{}, err
	}
	if p.ResolverAddress == (common.Address{}) {
		return common.Hash{}, fmt.Errorf("%w: resolverAddress", ErrMissingField)
	}
	node := ens.NameHash(p.Name)
	var (
		role     contracts.Role
		calldata []byte
		err      error
	)
	switch p.Contract {
	case TargetRegistry:
		role = contracts.RoleRegistry
		calldata, err = txdata.RegistrySetResolver(node, p.ResolverAddress)
	case TargetNameWrapper:
		role = contracts.RoleNameWrapper
		calldata, err = txdata.WrapperSetResolver(node, p.ResolverAddress)
	case "":
		return common.Hash{}, fmt.Errorf("%w: contract", ErrMissingField)
	default:
		return common.Hash{}, fmt.Errorf("%w: %q can't change resolvers", ErrBadTarget, p.Contract)
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

// SetPrimaryNameParams parameterize SetPrimaryName.
type SetPrimaryNameParams struct {
	// Name becomes the primary (reverse) name.
	Name string
	// Address is the address to claim for; nil means the sender itself.
	// Claiming for another address requires the sender to be authorized
	// on the reverse registrar for it.
	Address *common.Address
	// ResolverAddress is the resolver for the reverse record when
	// claiming for another address; nil defaults to the chain's public
	// resolver. Unused when Address is nil.
	ResolverAddress *common.Address
	Overrides       *TxOptions
}

// SetPrimaryName points the reverse record of an address at the name.
func (c *Client) SetPrimaryName(ctx context.Context, p SetPrimaryNameParams) (common.Hash, error) {
	if err := ens.Validate(p.Name); err != nil {
		return common.Hash{}, err
	}
	to, err := c.contract(contracts.RoleReverseRegistrar)
	if err != nil {
		return common.Hash{}, err
	}
	var calldata []byte
	if p.Address == nil {
		calldata, err = txdata.ReverseSetName(p.Name)
	} else {
		resolver := p.ResolverAddress
		if resolver == nil {
			def, derr := c.contract(contracts.RolePublicResolver)
			if derr != nil {
				return common.Hash{}, derr
			}
			resolver = &def
		}
		calldata, err = txdata.ReverseSetNameForAddr(*p.Address, c.actor.Sender(), *resolver, p.Name)
	}
	if err != nil {
		return common.Hash{}, err
	}
	return c.actor.SendCall(ctx, to, calldata, p.Overrides)
}
