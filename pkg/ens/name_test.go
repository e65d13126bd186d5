package ens

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestNameHash(t *testing.T) {
	// Reference vectors from EIP-137.
	testCases := []struct {
		name string
		hash string
	}{
		{"", "0x0000000000000000000000000000000000000000000000000000000000000000"},
		{"eth", "0x93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae"},
		{"foo.eth", "0xde9b09fd7c5f901e23a3f19fecc54828e9c848539801e86591bd9801b019f84f"},
	}
	for _, tc := range testCases {
		require.Equal(t, common.HexToHash(tc.hash), NameHash(tc.name), tc.name)
	}
}

func TestLabelHash(t *testing.T) {
	require.Equal(t,
		common.HexToHash("0x4f5b812789fc606be1b3b16908db13fc7a9adf7ca72641f84d75b47069d3d7f0"),
		LabelHash("eth"))
	require.Equal(t, TokenID("eth").Bytes(), LabelHash("eth").Big().Bytes())
}

func TestDNSEncode(t *testing.T) {
	b, err := DNSEncode("ens.eth")
	require.NoError(t, err)
	require.Equal(t, []byte("\x03ens\x03eth\x00"), b)

	b, err = DNSEncode("a.b.c")
	require.NoError(t, err)
	require.Equal(t, []byte("\x01a\x01b\x01c\x00"), b)

	_, err = DNSEncode("")
	require.ErrorIs(t, err, ErrInvalidName)
	_, err = DNSEncode("bad..name")
	require.ErrorIs(t, err, ErrInvalidName)

	long := make([]byte, MaxLabelLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err = DNSEncode(string(long) + ".eth")
	require.ErrorIs(t, err, ErrInvalidName)
}

func TestSplit(t *testing.T) {
	label, parent := Split("sub.ens.eth")
	require.Equal(t, "sub", label)
	require.Equal(t, "ens.eth", parent)

	label, parent = Split("eth")
	require.Equal(t, "eth", label)
	require.Equal(t, "", parent)

	require.Equal(t, "eth", Parent("ens.eth"))
}

func TestIsETH2LD(t *testing.T) {
	require.True(t, IsETH2LD("ens.eth"))
	require.False(t, IsETH2LD("sub.ens.eth"))
	require.False(t, IsETH2LD("ens.xyz"))
	require.False(t, IsETH2LD("eth"))
	require.False(t, IsETH2LD(".eth"))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate("ens.eth"))
	require.NoError(t, Validate("xn--s-qfa0g.de"))

	for _, bad := range []string{"", ".", "a..b", "a b.eth", "Ens.eth", "a\tb.eth", ".eth", "eth."} {
		require.ErrorIs(t, Validate(bad), ErrInvalidName, bad)
	}
}
