package actions

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/ethns-dev/ens-go/pkg/contracts"
	"github.com/ethns-dev/ens-go/pkg/ens"
	"github.com/ethns-dev/ens-go/pkg/fuses"
	"github.com/ethns-dev/ens-go/pkg/txdata"
)

type testAct struct {
	callErr error
	callRes []byte
	sendErr error
	txh     common.Hash
	chain   *big.Int
	sender  common.Address

	calls    int
	sends    int
	lastTo   common.Address
	lastData []byte
	lastOpts *TxOptions
}

func (t *testAct) Call(_ context.Context, to common.Address, data []byte) ([]byte, error) {
	t.calls++
	t.lastTo = to
	t.lastData = data
	return t.callRes, t.callErr
}

func (t *testAct) SendCall(_ context.Context, to common.Address, data []byte, opts *TxOptions) (common.Hash, error) {
	t.sends++
	t.lastTo = to
	t.lastData = data
	t.lastOpts = opts
	return t.txh, t.sendErr
}

func (t *testAct) Sender() common.Address { return t.sender }
func (t *testAct) ChainID() *big.Int      { return t.chain }

var (
	txHash = common.HexToHash("0x2f3b0f2f6b89a1d1e6f9e3e2b1a0c9d8e7f6a5b4c3d2e1f0a9b8c7d6e5f4a3b2")
	owner  = common.HexToAddress("0x1111111111111111111111111111111111111111")
	other  = common.HexToAddress("0x2222222222222222222222222222222222222222")
	secret = [32]byte{1, 2, 3}
)

func newTestClient(t *testing.T) (*Client, *testAct) {
	act := &testAct{chain: big.NewInt(1), txh: txHash, sender: owner}
	c, err := New(act)
	require.NoError(t, err)
	return c, act
}

func mainnetAddr(t *testing.T, role contracts.Role) common.Address {
	addr, err := contracts.Default().Address(1, role)
	require.NoError(t, err)
	return addr
}

// unpackInput checks the selector and decodes the arguments of calldata.
func unpackInput(t *testing.T, contract abi.ABI, method string, data []byte) []any {
	m, ok := contract.Methods[method]
	require.True(t, ok, "no method %s", method)
	require.True(t, len(data) >= 4)
	require.True(t, bytes.Equal(m.ID, data[:4]), "selector mismatch for %s", method)
	args, err := m.Inputs.Unpack(data[4:])
	require.NoError(t, err)
	return args
}

func TestNew(t *testing.T) {
	t.Run("nil chain", func(t *testing.T) {
		act := &testAct{}
		_, err := New(act)
		require.ErrorIs(t, err, contracts.ErrUnsupportedChain)
		require.Zero(t, act.calls+act.sends)
	})
	t.Run("unsupported chain", func(t *testing.T) {
		act := &testAct{chain: big.NewInt(5)}
		_, err := New(act)
		require.ErrorIs(t, err, contracts.ErrUnsupportedChain)
		require.Zero(t, act.calls+act.sends)
	})
	t.Run("independent clients", func(t *testing.T) {
		act := &testAct{chain: big.NewInt(1), txh: txHash, sender: owner}
		c1, err := New(act)
		require.NoError(t, err)
		c2, err := NewWithDirectory(act, contracts.Default().WithOverrides(1,
			map[contracts.Role]common.Address{contracts.RoleRegistry: other}))
		require.NoError(t, err)

		act.callRes = common.LeftPadBytes(owner.Bytes(), 32)
		_, err = c1.Resolver(context.Background(), "alice.eth")
		require.NoError(t, err)
		require.Equal(t, mainnetAddr(t, contracts.RoleRegistry), act.lastTo)

		_, err = c2.Resolver(context.Background(), "alice.eth")
		require.NoError(t, err)
		require.Equal(t, other, act.lastTo)
		require.Equal(t, 2, act.calls)

		// c2's overrides never leak back into c1.
		_, err = c1.Resolver(context.Background(), "alice.eth")
		require.NoError(t, err)
		require.Equal(t, mainnetAddr(t, contracts.RoleRegistry), act.lastTo)
		require.Same(t, c1.Actor(), c2.Actor())
	})
}

func TestResolver(t *testing.T) {
	c, act := newTestClient(t)
	act.callRes = common.LeftPadBytes(other.Bytes(), 32)

	res, err := c.Resolver(context.Background(), "alice.eth")
	require.NoError(t, err)
	require.Equal(t, other, res)
	require.Equal(t, 1, act.calls)
	require.Equal(t, mainnetAddr(t, contracts.RoleRegistry), act.lastTo)

	args := unpackInput(t, txdata.Registry, "resolver", act.lastData)
	require.Equal(t, [32]byte(ens.NameHash("alice.eth")), args[0])

	_, err = c.Resolver(context.Background(), "Alice.eth")
	require.ErrorIs(t, err, ens.ErrInvalidName)
}

func TestRentPrice(t *testing.T) {
	c, act := newTestClient(t)
	act.callRes = append(
		common.LeftPadBytes(big.NewInt(1000).Bytes(), 32),
		common.LeftPadBytes(big.NewInt(7).Bytes(), 32)...)

	base, premium, err := c.RentPrice(context.Background(), "alice.eth", big.NewInt(31536000))
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1000), base)
	require.Equal(t, big.NewInt(7), premium)
	require.Equal(t, mainnetAddr(t, contracts.RoleETHRegistrarController), act.lastTo)

	_, _, err = c.RentPrice(context.Background(), "sub.alice.eth", big.NewInt(1))
	require.ErrorIs(t, err, ens.ErrInvalidName)
	_, _, err = c.RentPrice(context.Background(), "alice.eth", nil)
	require.ErrorIs(t, err, ErrMissingField)
}

func TestExpires(t *testing.T) {
	c, act := newTestClient(t)
	act.callRes = common.LeftPadBytes(big.NewInt(1893456000).Bytes(), 32)

	expiry, err := c.Expires(context.Background(), "alice.eth")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1893456000), expiry)
	require.Equal(t, 1, act.calls)
	require.Equal(t, mainnetAddr(t, contracts.RoleBaseRegistrar), act.lastTo)

	args := unpackInput(t, txdata.Registrar, "nameExpires", act.lastData)
	require.Equal(t, ens.TokenID("alice"), args[0])

	_, err = c.Expires(context.Background(), "sub.alice.eth")
	require.ErrorIs(t, err, ens.ErrInvalidName)
}

func TestWrappedState(t *testing.T) {
	c, act := newTestClient(t)
	fuseWord := fuses.CannotUnwrap | fuses.ParentCannotControl | fuses.IsDotETH
	act.callRes = append(append(
		common.LeftPadBytes(other.Bytes(), 32),
		common.LeftPadBytes(big.NewInt(int64(fuseWord)).Bytes(), 32)...),
		common.LeftPadBytes(big.NewInt(1893456000).Bytes(), 32)...)

	wrappedOwner, f, expiry, err := c.WrappedState(context.Background(), "alice.eth")
	require.NoError(t, err)
	require.Equal(t, other, wrappedOwner)
	require.Equal(t, fuseWord, f)
	require.Equal(t, uint64(1893456000), expiry)
	require.Equal(t, mainnetAddr(t, contracts.RoleNameWrapper), act.lastTo)

	args := unpackInput(t, txdata.Wrapper, "getData", act.lastData)
	require.Equal(t, new(big.Int).SetBytes(ens.NameHash("alice.eth").Bytes()), args[0])

	_, _, _, err = c.WrappedState(context.Background(), "Alice.eth")
	require.ErrorIs(t, err, ens.ErrInvalidName)
}

func TestCommitName(t *testing.T) {
	c, act := newTestClient(t)
	base := RegistrationParams{
		Name:     "alice.eth",
		Owner:    owner,
		Duration: big.NewInt(31536000),
		Secret:   secret,
	}

	t.Run("validation", func(t *testing.T) {
		for name, mod := range map[string]func(*RegistrationParams){
			"no owner":    func(p *RegistrationParams) { p.Owner = common.Address{} },
			"no duration": func(p *RegistrationParams) { p.Duration = nil },
			"zero secret": func(p *RegistrationParams) { p.Secret = [32]byte{} },
		} {
			t.Run(name, func(t *testing.T) {
				p := base
				mod(&p)
				_, err := c.CommitName(context.Background(), p)
				require.ErrorIs(t, err, ErrMissingField)
			})
		}
		p := base
		p.Name = "sub.alice.eth"
		_, err := c.CommitName(context.Background(), p)
		require.ErrorIs(t, err, ens.ErrInvalidName)
		require.Zero(t, act.sends)
	})

	t.Run("plain", func(t *testing.T) {
		h, err := c.CommitName(context.Background(), base)
		require.NoError(t, err)
		require.Equal(t, txHash, h)
		require.Equal(t, mainnetAddr(t, contracts.RoleETHRegistrarController), act.lastTo)
		require.Zero(t, act.calls) // no resolver lookup for a fresh name

		want, err := txdata.MakeCommitment("alice", owner, base.Duration, secret, common.Address{}, nil, false, 0)
		require.NoError(t, err)
		args := unpackInput(t, txdata.Controller, "commit", act.lastData)
		require.Equal(t, [32]byte(want), args[0])
	})

	t.Run("with records", func(t *testing.T) {
		p := base
		p.Records = &RecordSet{Texts: []TextRecord{{Key: "url", Value: "https://example.com"}}}
		_, err := c.CommitName(context.Background(), p)
		require.NoError(t, err)

		// Records pull in the public resolver without any lookup.
		resolver := mainnetAddr(t, contracts.RolePublicResolver)
		data, err := p.Records.calls(ens.NameHash(p.Name))
		require.NoError(t, err)
		want, err := txdata.MakeCommitment("alice", owner, p.Duration, secret, resolver, data, false, 0)
		require.NoError(t, err)
		args := unpackInput(t, txdata.Controller, "commit", act.lastData)
		require.Equal(t, [32]byte(want), args[0])
	})
}

func TestRegisterName(t *testing.T) {
	c, act := newTestClient(t)
	p := RegistrationParams{
		Name:     "alice.eth",
		Owner:    owner,
		Duration: big.NewInt(31536000),
		Secret:   secret,
	}

	_, err := c.RegisterName(context.Background(), p)
	require.ErrorIs(t, err, ErrMissingField) // no value
	require.Zero(t, act.sends)

	opts := &TxOptions{Value: big.NewInt(100), GasLimit: 300000, Nonce: big.NewInt(7)}
	p.Overrides = opts
	h, err := c.RegisterName(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, txHash, h)
	require.Equal(t, mainnetAddr(t, contracts.RoleETHRegistrarController), act.lastTo)
	require.Same(t, opts, act.lastOpts) // overrides pass through untouched
	require.Equal(t, big.NewInt(100), act.lastOpts.Value)

	args := unpackInput(t, txdata.Controller, "register", act.lastData)
	require.Equal(t, "alice", args[0])
	require.Equal(t, owner, args[1])
	require.Equal(t, false, args[6])
	require.Equal(t, uint16(0), args[7])
}

func TestRenewNames(t *testing.T) {
	c, act := newTestClient(t)
	opts := &TxOptions{Value: big.NewInt(5000)}
	duration := big.NewInt(31536000)

	t.Run("single", func(t *testing.T) {
		h, err := c.RenewNames(context.Background(), RenewNamesParams{
			Names: []string{"alice.eth"}, Duration: duration, Overrides: opts,
		})
		require.NoError(t, err)
		require.Equal(t, txHash, h)
		require.Equal(t, mainnetAddr(t, contracts.RoleETHRegistrarController), act.lastTo)
		args := unpackInput(t, txdata.Controller, "renew", act.lastData)
		require.Equal(t, "alice", args[0])
	})

	t.Run("bulk", func(t *testing.T) {
		_, err := c.RenewNames(context.Background(), RenewNamesParams{
			Names: []string{"alice.eth", "bob.eth"}, Duration: duration, Overrides: opts,
		})
		require.NoError(t, err)
		require.Equal(t, mainnetAddr(t, contracts.RoleBulkRenewal), act.lastTo)
		args := unpackInput(t, txdata.BulkRenewal, "renewAll", act.lastData)
		require.Equal(t, []string{"alice", "bob"}, args[0])
	})

	t.Run("errors", func(t *testing.T) {
		_, err := c.RenewNames(context.Background(), RenewNamesParams{Duration: duration, Overrides: opts})
		require.ErrorIs(t, err, ErrMissingField)
		_, err = c.RenewNames(context.Background(), RenewNamesParams{Names: []string{"alice.eth"}, Duration: duration})
		require.ErrorIs(t, err, ErrMissingField)
		_, err = c.RenewNames(context.Background(), RenewNamesParams{Names: []string{"alice.eth", "x"}, Duration: duration, Overrides: opts})
		require.ErrorIs(t, err, ens.ErrInvalidName)
	})

	// Renewing twice simply extends twice, each call is independent.
	t.Run("repeat", func(t *testing.T) {
		act.sends = 0
		for i := 0; i < 2; i++ {
			_, err := c.RenewNames(context.Background(), RenewNamesParams{
				Names: []string{"alice.eth"}, Duration: duration, Overrides: opts,
			})
			require.NoError(t, err)
		}
		require.Equal(t, 2, act.sends)
	})
}

func TestSetRecords(t *testing.T) {
	c, act := newTestClient(t)

	_, err := c.SetRecords(context.Background(), SetRecordsParams{Name: "alice.eth"})
	require.ErrorIs(t, err, ErrMissingField) // nothing to change

	t.Run("resolver lookup", func(t *testing.T) {
		act.calls = 0
		act.callRes = common.LeftPadBytes(other.Bytes(), 32)
		_, err := c.SetRecords(context.Background(), SetRecordsParams{
			Name:      "alice.eth",
			RecordSet: RecordSet{Texts: []TextRecord{{Key: "url", Value: "https://example.com"}}},
		})
		require.NoError(t, err)
		require.Equal(t, 1, act.calls) // exactly one resolver lookup
		require.Equal(t, other, act.lastTo)

		// A single text mutation produces a single subcall: nothing is
		// cleared implicitly.
		args := unpackInput(t, txdata.Resolver, "multicallWithNodeCheck", act.lastData)
		subcalls := args[1].([][]byte)
		require.Len(t, subcalls, 1)
		sub := unpackInput(t, txdata.Resolver, "setText", subcalls[0])
		require.Equal(t, "url", sub[1])
	})

	t.Run("resolver override", func(t *testing.T) {
		act.calls = 0
		_, err := c.SetRecords(context.Background(), SetRecordsParams{
			Name:            "alice.eth",
			ResolverAddress: &other,
			RecordSet:       RecordSet{Clear: true, ContentHash: []byte{}},
		})
		require.NoError(t, err)
		require.Zero(t, act.calls) // override skips the lookup entirely
		require.Equal(t, other, act.lastTo)
		args := unpackInput(t, txdata.Resolver, "multicallWithNodeCheck", act.lastData)
		require.Len(t, args[1].([][]byte), 2) // clearRecords + setContenthash
	})

	t.Run("no resolver", func(t *testing.T) {
		act.callRes = make([]byte, 32)
		_, err := c.SetRecords(context.Background(), SetRecordsParams{
			Name:      "alice.eth",
			RecordSet: RecordSet{Texts: []TextRecord{{Key: "url"}}},
		})
		require.ErrorIs(t, err, ErrNoResolver)
	})

	t.Run("reverted", func(t *testing.T) {
		reverted := errors.New("execution reverted: Unauthorised")
		act.sendErr = reverted
		_, err := c.SetRecords(context.Background(), SetRecordsParams{
			Name:            "alice.eth",
			ResolverAddress: &other,
			RecordSet:       RecordSet{Texts: []TextRecord{{Key: "url"}}},
		})
		require.Same(t, reverted, err) // submission errors pass through as is
		act.sendErr = nil
	})
}

func TestSetAddressRecord(t *testing.T) {
	c, act := newTestClient(t)

	_, err := c.SetAddressRecord(context.Background(), SetAddressRecordParams{
		Name: "alice.eth", Value: owner.Bytes(), ResolverAddress: &other,
	})
	require.NoError(t, err)
	args := unpackInput(t, txdata.Resolver, "setAddr", act.lastData)
	require.Equal(t, big.NewInt(60), args[1]) // ETH unless told otherwise

	btc := uint64(0)
	_, err = c.SetAddressRecord(context.Background(), SetAddressRecordParams{
		Name: "alice.eth", CoinType: &btc, Value: []byte{0x6a}, ResolverAddress: &other,
	})
	require.NoError(t, err)
	args = unpackInput(t, txdata.Resolver, "setAddr", act.lastData)
	require.Zero(t, args[1].(*big.Int).Sign())
}

func TestSetTextRecord(t *testing.T) {
	c, act := newTestClient(t)

	_, err := c.SetTextRecord(context.Background(), SetTextRecordParams{
		Name: "alice.eth", Value: "x", ResolverAddress: &other,
	})
	require.ErrorIs(t, err, ErrMissingField) // key is required

	_, err = c.SetTextRecord(context.Background(), SetTextRecordParams{
		Name: "alice.eth", Key: "avatar", ResolverAddress: &other,
	})
	require.NoError(t, err)
	args := unpackInput(t, txdata.Resolver, "setText", act.lastData)
	require.Equal(t, "avatar", args[1])
	require.Equal(t, "", args[2]) // empty value clears
}

func TestSetABIRecord(t *testing.T) {
	c, act := newTestClient(t)

	for _, ct := range []uint64{0, 3, 5, 12} {
		_, err := c.SetABIRecord(context.Background(), SetABIRecordParams{
			Name: "alice.eth", ContentType: ct, ResolverAddress: &other,
		})
		require.ErrorIs(t, err, ErrMissingField, "content type %d", ct)
	}

	_, err := c.SetABIRecord(context.Background(), SetABIRecordParams{
		Name: "alice.eth", ContentType: 1, Data: []byte(`[]`), ResolverAddress: &other,
	})
	require.NoError(t, err)
	args := unpackInput(t, txdata.Resolver, "setABI", act.lastData)
	require.Equal(t, big.NewInt(1), args[1])
}

func TestSetResolver(t *testing.T) {
	c, act := newTestClient(t)
	node := ens.NameHash("alice.eth")

	t.Run("registry", func(t *testing.T) {
		_, err := c.SetResolver(context.Background(), SetResolverParams{
			Name: "alice.eth", Contract: TargetRegistry, ResolverAddress: other,
		})
		require.NoError(t, err)
		require.Equal(t, mainnetAddr(t, contracts.RoleRegistry), act.lastTo)
		args := unpackInput(t, txdata.Registry, "setResolver", act.lastData)
		require.Equal(t, [32]byte(node), args[0])
	})

	t.Run("wrapper", func(t *testing.T) {
		_, err := c.SetResolver(context.Background(), SetResolverParams{
			Name: "alice.eth", Contract: TargetNameWrapper, ResolverAddress: other,
		})
		require.NoError(t, err)
		require.Equal(t, mainnetAddr(t, contracts.RoleNameWrapper), act.lastTo)
		unpackInput(t, txdata.Wrapper, "setResolver", act.lastData)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := c.SetResolver(context.Background(), SetResolverParams{
			Name: "alice.eth", Contract: TargetRegistry,
		})
		require.ErrorIs(t, err, ErrMissingField)
		_, err = c.SetResolver(context.Background(), SetResolverParams{
			Name: "alice.eth", ResolverAddress: other,
		})
		require.ErrorIs(t, err, ErrMissingField)
		_, err = c.SetResolver(context.Background(), SetResolverParams{
			Name: "alice.eth", Contract: TargetRegistrar, ResolverAddress: other,
		})
		require.ErrorIs(t, err, ErrBadTarget)
	})
}

func TestSetPrimaryName(t *testing.T) {
	c, act := newTestClient(t)

	t.Run("own address", func(t *testing.T) {
		_, err := c.SetPrimaryName(context.Background(), SetPrimaryNameParams{Name: "alice.eth"})
		require.NoError(t, err)
		require.Equal(t, mainnetAddr(t, contracts.RoleReverseRegistrar), act.lastTo)
		args := unpackInput(t, txdata.Reverse, "setName", act.lastData)
		require.Equal(t, "alice.eth", args[0])
	})

	t.Run("for address", func(t *testing.T) {
		_, err := c.SetPrimaryName(context.Background(), SetPrimaryNameParams{
			Name: "alice.eth", Address: &other,
		})
		require.NoError(t, err)
		args := unpackInput(t, txdata.Reverse, "setNameForAddr", act.lastData)
		require.Equal(t, other, args[0])
		require.Equal(t, owner, args[1]) // sender keeps the reverse node
		require.Equal(t, mainnetAddr(t, contracts.RolePublicResolver), args[2])
		require.Equal(t, "alice.eth", args[3])
	})
}

func TestWrapName(t *testing.T) {
	c, act := newTestClient(t)

	t.Run("eth 2LD defaults", func(t *testing.T) {
		act.calls = 0
		act.callRes = common.LeftPadBytes(other.Bytes(), 32)
		_, err := c.WrapName(context.Background(), WrapNameParams{
			Name: "alice.eth", NewOwnerAddress: owner,
		})
		require.NoError(t, err)
		require.Equal(t, 1, act.calls) // current resolver carried over
		require.Equal(t, mainnetAddr(t, contracts.RoleNameWrapper), act.lastTo)
		args := unpackInput(t, txdata.Wrapper, "wrapETH2LD", act.lastData)
		require.Equal(t, "alice", args[0])
		require.Equal(t, uint16(0), args[2]) // no fuses burnt unless asked
		require.Equal(t, other, args[3])
	})

	t.Run("subname", func(t *testing.T) {
		_, err := c.WrapName(context.Background(), WrapNameParams{
			Name: "sub.alice.eth", NewOwnerAddress: owner, ResolverAddress: &other,
		})
		require.NoError(t, err)
		args := unpackInput(t, txdata.Wrapper, "wrap", act.lastData)
		dns, err := ens.DNSEncode("sub.alice.eth")
		require.NoError(t, err)
		require.Equal(t, dns, args[0])
	})

	t.Run("fuses", func(t *testing.T) {
		_, err := c.WrapName(context.Background(), WrapNameParams{
			Name: "alice.eth", NewOwnerAddress: owner, ResolverAddress: &other,
			Fuses: fuses.CannotUnwrap | fuses.CannotTransfer,
		})
		require.NoError(t, err)
		args := unpackInput(t, txdata.Wrapper, "wrapETH2LD", act.lastData)
		require.Equal(t, uint16(fuses.CannotUnwrap|fuses.CannotTransfer), args[2])

		// Fuses without CannotUnwrap would end up CAN_DO_EVERYTHING on
		// chain, so they are rejected here.
		_, err = c.WrapName(context.Background(), WrapNameParams{
			Name: "alice.eth", NewOwnerAddress: owner, ResolverAddress: &other,
			Fuses: fuses.CannotTransfer,
		})
		require.ErrorIs(t, err, fuses.ErrInvalidFuses)

		_, err = c.WrapName(context.Background(), WrapNameParams{
			Name: "sub.alice.eth", NewOwnerAddress: owner, ResolverAddress: &other,
			Fuses: fuses.CannotUnwrap,
		})
		require.ErrorIs(t, err, fuses.ErrInvalidFuses)
	})

	_, err := c.WrapName(context.Background(), WrapNameParams{Name: "alice.eth"})
	require.ErrorIs(t, err, ErrMissingField)
}

func TestUnwrapName(t *testing.T) {
	c, act := newTestClient(t)

	t.Run("eth 2LD", func(t *testing.T) {
		_, err := c.UnwrapName(context.Background(), UnwrapNameParams{
			Name: "alice.eth", NewControllerAddress: owner,
		})
		require.ErrorIs(t, err, ErrMissingField) // registrant required

		_, err = c.UnwrapName(context.Background(), UnwrapNameParams{
			Name: "alice.eth", NewControllerAddress: owner, NewRegistrantAddress: &other,
		})
		require.NoError(t, err)
		args := unpackInput(t, txdata.Wrapper, "unwrapETH2LD", act.lastData)
		require.Equal(t, [32]byte(ens.LabelHash("alice")), args[0])
		require.Equal(t, other, args[1])
		require.Equal(t, owner, args[2])
	})

	t.Run("subname", func(t *testing.T) {
		_, err := c.UnwrapName(context.Background(), UnwrapNameParams{
			Name: "sub.alice.eth", NewControllerAddress: owner, NewRegistrantAddress: &other,
		})
		require.ErrorIs(t, err, ErrBadTarget) // no registrant outside .eth 2LD

		_, err = c.UnwrapName(context.Background(), UnwrapNameParams{
			Name: "sub.alice.eth", NewControllerAddress: owner,
		})
		require.NoError(t, err)
		args := unpackInput(t, txdata.Wrapper, "unwrap", act.lastData)
		require.Equal(t, [32]byte(ens.NameHash("alice.eth")), args[0])
		require.Equal(t, [32]byte(ens.LabelHash("sub")), args[1])
	})
}

func TestSetFuses(t *testing.T) {
	c, act := newTestClient(t)

	_, err := c.SetFuses(context.Background(), SetFusesParams{
		Name: "alice.eth", Fuses: fuses.ParentCannotControl,
	})
	require.ErrorIs(t, err, fuses.ErrInvalidFuses) // owner can't burn parent fuses

	_, err = c.SetFuses(context.Background(), SetFusesParams{
		Name: "alice.eth", Fuses: fuses.CannotUnwrap | fuses.CannotSetResolver,
	})
	require.NoError(t, err)
	require.Equal(t, mainnetAddr(t, contracts.RoleNameWrapper), act.lastTo)
	args := unpackInput(t, txdata.Wrapper, "setFuses", act.lastData)
	require.Equal(t, uint16(fuses.CannotUnwrap|fuses.CannotSetResolver), args[1])
}

func TestSetChildFuses(t *testing.T) {
	c, act := newTestClient(t)

	_, err := c.SetChildFuses(context.Background(), SetChildFusesParams{
		Name: "sub.alice.eth", Fuses: fuses.CannotTransfer,
	})
	require.ErrorIs(t, err, fuses.ErrInvalidFuses) // owner fuses need PCC

	_, err = c.SetChildFuses(context.Background(), SetChildFusesParams{
		Name:   "sub.alice.eth",
		Fuses:  fuses.ParentCannotControl | fuses.CannotUnwrap | fuses.CannotTransfer,
		Expiry: 2000000000,
	})
	require.NoError(t, err)
	args := unpackInput(t, txdata.Wrapper, "setChildFuses", act.lastData)
	require.Equal(t, [32]byte(ens.NameHash("alice.eth")), args[0])
	require.Equal(t, [32]byte(ens.LabelHash("sub")), args[1])
	require.Equal(t, uint32(fuses.ParentCannotControl|fuses.CannotUnwrap|fuses.CannotTransfer), args[2])
}

func TestCreateSubname(t *testing.T) {
	c, act := newTestClient(t)

	t.Run("registry", func(t *testing.T) {
		act.calls = 0
		_, err := c.CreateSubname(context.Background(), CreateSubnameParams{
			Name: "sub.alice.eth", NewOwnerAddress: other, Contract: TargetRegistry,
			ResolverAddress: &other, TTL: 300,
		})
		require.NoError(t, err)
		require.Zero(t, act.calls) // no lookups, resolver is explicit or unset
		require.Equal(t, mainnetAddr(t, contracts.RoleRegistry), act.lastTo)
		args := unpackInput(t, txdata.Registry, "setSubnodeRecord", act.lastData)
		require.Equal(t, [32]byte(ens.NameHash("alice.eth")), args[0])
		require.Equal(t, [32]byte(ens.LabelHash("sub")), args[1])
		require.Equal(t, other, args[2])
		require.Equal(t, uint64(300), args[4])

		_, err = c.CreateSubname(context.Background(), CreateSubnameParams{
			Name: "sub.alice.eth", NewOwnerAddress: other, Contract: TargetRegistry,
			Fuses: fuses.ParentCannotControl,
		})
		require.ErrorIs(t, err, fuses.ErrInvalidFuses)
	})

	t.Run("wrapper", func(t *testing.T) {
		_, err := c.CreateSubname(context.Background(), CreateSubnameParams{
			Name: "sub.alice.eth", NewOwnerAddress: other, Contract: TargetNameWrapper,
			Fuses: fuses.ParentCannotControl | fuses.CannotUnwrap, Expiry: 2000000000,
		})
		require.NoError(t, err)
		require.Equal(t, mainnetAddr(t, contracts.RoleNameWrapper), act.lastTo)
		args := unpackInput(t, txdata.Wrapper, "setSubnodeRecord", act.lastData)
		require.Equal(t, "sub", args[1])
		require.Equal(t, common.Address{}, args[3]) // no resolver asked for
	})

	t.Run("errors", func(t *testing.T) {
		_, err := c.CreateSubname(context.Background(), CreateSubnameParams{
			Name: "sub.alice.eth", NewOwnerAddress: other,
		})
		require.ErrorIs(t, err, ErrMissingField)
		_, err = c.CreateSubname(context.Background(), CreateSubnameParams{
			Name: "eth", NewOwnerAddress: other, Contract: TargetRegistry,
		})
		require.ErrorIs(t, err, ens.ErrInvalidName)
	})
}

func TestDeleteSubname(t *testing.T) {
	c, act := newTestClient(t)

	t.Run("registry as owner", func(t *testing.T) {
		_, err := c.DeleteSubname(context.Background(), DeleteSubnameParams{
			Name: "sub.alice.eth", Contract: TargetRegistry,
		})
		require.NoError(t, err)
		args := unpackInput(t, txdata.Registry, "setRecord", act.lastData)
		require.Equal(t, [32]byte(ens.NameHash("sub.alice.eth")), args[0])
		require.Equal(t, common.Address{}, args[1])
	})

	t.Run("registry as parent", func(t *testing.T) {
		_, err := c.DeleteSubname(context.Background(), DeleteSubnameParams{
			Name: "sub.alice.eth", Contract: TargetRegistry, AsParent: true,
		})
		require.NoError(t, err)
		args := unpackInput(t, txdata.Registry, "setSubnodeRecord", act.lastData)
		require.Equal(t, [32]byte(ens.NameHash("alice.eth")), args[0])
	})

	t.Run("wrapper as parent", func(t *testing.T) {
		_, err := c.DeleteSubname(context.Background(), DeleteSubnameParams{
			Name: "sub.alice.eth", Contract: TargetNameWrapper, AsParent: true,
		})
		require.NoError(t, err)
		require.Equal(t, mainnetAddr(t, contracts.RoleNameWrapper), act.lastTo)
		args := unpackInput(t, txdata.Wrapper, "setSubnodeOwner", act.lastData)
		require.Equal(t, common.Address{}, args[2])
	})

	_, err := c.DeleteSubname(context.Background(), DeleteSubnameParams{
		Name: "alice.eth", Contract: TargetRegistrar,
	})
	require.ErrorIs(t, err, ErrBadTarget)
}

func TestTransferName(t *testing.T) {
	c, act := newTestClient(t)

	t.Run("registry", func(t *testing.T) {
		_, err := c.TransferName(context.Background(), TransferNameParams{
			Name: "alice.eth", NewOwnerAddress: other, Contract: TargetRegistry,
		})
		require.NoError(t, err)
		args := unpackInput(t, txdata.Registry, "setOwner", act.lastData)
		require.Equal(t, other, args[1])

		_, err = c.TransferName(context.Background(), TransferNameParams{
			Name: "sub.alice.eth", NewOwnerAddress: other, Contract: TargetRegistry, AsParent: true,
		})
		require.NoError(t, err)
		args = unpackInput(t, txdata.Registry, "setSubnodeOwner", act.lastData)
		require.Equal(t, [32]byte(ens.NameHash("alice.eth")), args[0])
	})

	t.Run("registrar", func(t *testing.T) {
		_, err := c.TransferName(context.Background(), TransferNameParams{
			Name: "alice.eth", NewOwnerAddress: other, Contract: TargetRegistrar,
		})
		require.NoError(t, err)
		require.Equal(t, mainnetAddr(t, contracts.RoleBaseRegistrar), act.lastTo)
		args := unpackInput(t, txdata.Registrar, "safeTransferFrom", act.lastData)
		require.Equal(t, owner, args[0]) // from the sender
		require.Equal(t, other, args[1])
		require.Equal(t, ens.TokenID("alice"), args[2])

		_, err = c.TransferName(context.Background(), TransferNameParams{
			Name: "alice.eth", NewOwnerAddress: other, Contract: TargetRegistrar, Reclaim: true,
		})
		require.NoError(t, err)
		args = unpackInput(t, txdata.Registrar, "reclaim", act.lastData)
		require.Equal(t, ens.TokenID("alice"), args[0])

		_, err = c.TransferName(context.Background(), TransferNameParams{
			Name: "sub.alice.eth", NewOwnerAddress: other, Contract: TargetRegistrar,
		})
		require.ErrorIs(t, err, ErrBadTarget)
	})

	t.Run("wrapper", func(t *testing.T) {
		_, err := c.TransferName(context.Background(), TransferNameParams{
			Name: "sub.alice.eth", NewOwnerAddress: other, Contract: TargetNameWrapper,
		})
		require.NoError(t, err)
		args := unpackInput(t, txdata.Wrapper, "safeTransferFrom", act.lastData)
		id := new(big.Int).SetBytes(ens.NameHash("sub.alice.eth").Bytes())
		require.Equal(t, id, args[2])
	})

	t.Run("misdirected flags", func(t *testing.T) {
		_, err := c.TransferName(context.Background(), TransferNameParams{
			Name: "alice.eth", NewOwnerAddress: other, Contract: TargetNameWrapper, AsParent: true,
		})
		require.ErrorIs(t, err, ErrBadTarget)
		_, err = c.TransferName(context.Background(), TransferNameParams{
			Name: "alice.eth", NewOwnerAddress: other, Contract: TargetRegistry, Reclaim: true,
		})
		require.ErrorIs(t, err, ErrBadTarget)
	})
}
