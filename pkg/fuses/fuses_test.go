package fuses

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeOwner(t *testing.T) {
	v, err := EncodeOwner(CanDoEverything)
	require.NoError(t, err)
	require.Equal(t, uint16(0), v)

	v, err = EncodeOwner(CannotUnwrap | CannotTransfer)
	require.NoError(t, err)
	require.Equal(t, uint16(5), v)

	_, err = EncodeOwner(ParentCannotControl)
	require.ErrorIs(t, err, ErrInvalidFuses)
	_, err = EncodeOwner(Fuse(1 << 15))
	require.ErrorIs(t, err, ErrInvalidFuses)
}

func TestEncodeInitial(t *testing.T) {
	v, err := EncodeInitial(CanDoEverything)
	require.NoError(t, err)
	require.Equal(t, uint16(0), v)

	v, err = EncodeInitial(CannotUnwrap)
	require.NoError(t, err)
	require.Equal(t, uint16(1), v)

	v, err = EncodeInitial(CannotUnwrap | CannotSetResolver)
	require.NoError(t, err)
	require.Equal(t, uint16(9), v)

	// No owner fuse can be burned on a fresh name without CANNOT_UNWRAP.
	_, err = EncodeInitial(CannotTransfer)
	require.ErrorIs(t, err, ErrInvalidFuses)
}

func TestEncodeChild(t *testing.T) {
	testCases := []struct {
		name string
		f    Fuse
		want uint32
		err  bool
	}{
		{"empty", CanDoEverything, 0, false},
		{"parent only", ParentCannotControl, 1 << 16, false},
		{"extend expiry", CanExtendExpiry, 1 << 18, false},
		{"pcc plus unwrap", ParentCannotControl | CannotUnwrap, 1<<16 | 1, false},
		{"full child lock", ParentCannotControl | CannotUnwrap | CannotBurnFuses, 1<<16 | 3, false},
		{"owner without pcc", CannotUnwrap, 0, true},
		{"owner without unwrap", ParentCannotControl | CannotTransfer, 0, true},
		{"is dot eth", IsDotETH, 0, true},
		{"unknown bit", Fuse(1 << 30), 0, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := EncodeChild(tc.f)
			if tc.err {
				require.ErrorIs(t, err, ErrInvalidFuses)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, v)
		})
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "CAN_DO_EVERYTHING", CanDoEverything.String())
	require.Equal(t, "CANNOT_UNWRAP|CANNOT_TRANSFER", (CannotUnwrap | CannotTransfer).String())
	require.Equal(t, "PARENT_CANNOT_CONTROL|0x80000000", (ParentCannotControl | Fuse(1<<31)).String())
}
