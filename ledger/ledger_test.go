package ledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyproto/any-trail/ledger/ledgererr"
)

func TestParseAddress(t *testing.T) {
	t.Run("short form", func(t *testing.T) {
		a, err := ParseAddress("0x6")
		require.NoError(t, err)
		assert.Equal(t, byte(6), a[AddressLength-1])
		assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000006", a.String())
	})
	t.Run("full form round trip", func(t *testing.T) {
		s := "0x5d3a9fbb1a4ec54d1d8e8bd1bb4cc8e20a52e7f3b1f3d4ee93e2f7e0a3a44a1c"
		a, err := ParseAddress(s)
		require.NoError(t, err)
		assert.Equal(t, s, a.String())
	})
	t.Run("errors", func(t *testing.T) {
		for _, s := range []string{"", "0x", "0xzz", "0x" + strings.Repeat("a", 65)} {
			_, err := ParseAddress(s)
			assert.ErrorIs(t, err, ErrIncorrectAddress, s)
		}
	})
}

func TestDigest(t *testing.T) {
	var d Digest
	d[0], d[31] = 1, 255
	parsed, err := ParseDigest(d.String())
	require.NoError(t, err)
	assert.Equal(t, d, parsed)

	_, err = ParseDigest("abc")
	assert.ErrorIs(t, err, ErrIncorrectDigest)
}

func TestParseTypeTag(t *testing.T) {
	t.Run("nested struct", func(t *testing.T) {
		src := "0x2::linked_table::LinkedTable<u64, 0xab::record::Record<0xab::record::Data>>"
		tag, err := ParseTypeTag(src)
		require.NoError(t, err)
		assert.Equal(t, TypeStruct, tag.Kind)
		assert.Equal(t, "linked_table", tag.Module)
		assert.Equal(t, "LinkedTable", tag.Name)
		require.Len(t, tag.Params, 2)
		assert.Equal(t, TypeU64, tag.Params[0].Kind)
		assert.Equal(t, "Record", tag.Params[1].Name)
		assert.Equal(t, "Data", tag.Params[1].Params[0].Name)

		again, err := ParseTypeTag(tag.String())
		require.NoError(t, err)
		assert.True(t, tag.Equal(again))
	})
	t.Run("vector", func(t *testing.T) {
		tag, err := ParseTypeTag("vector<vector<u8>>")
		require.NoError(t, err)
		assert.Equal(t, "vector<vector<u8>>", tag.String())
	})
	t.Run("same struct", func(t *testing.T) {
		a := MustTypeTag("0x1::m::S<u8>")
		b := MustTypeTag("0x1::m::S<u64>")
		assert.True(t, a.SameStruct(b))
		assert.False(t, a.Equal(b))
	})
	t.Run("errors", func(t *testing.T) {
		for _, s := range []string{"", "0x1::m", "0x1::m::S<u8", "vector<u8, u8>", "u64 trailing"} {
			_, err := ParseTypeTag(s)
			assert.ErrorIs(t, err, ErrIncorrectTypeTag, s)
		}
	})
}

func TestNetwork(t *testing.T) {
	t.Run("missing package", func(t *testing.T) {
		_, err := Network{Name: "devnet"}.Package()
		assert.ErrorIs(t, err, ledgererr.ErrInvalidConfig)
	})
	t.Run("malformed package", func(t *testing.T) {
		_, err := Network{Name: "devnet", PackageID: "0xnothex"}.Package()
		assert.ErrorIs(t, err, ledgererr.ErrInvalidConfig)
	})
	t.Run("default clock", func(t *testing.T) {
		arg, err := Network{}.Clock()
		require.NoError(t, err)
		assert.Equal(t, SharedArgument(ClockObjectID, 1, false), arg)
	})
	t.Run("custom clock", func(t *testing.T) {
		arg, err := Network{ClockID: "0x99", ClockVersion: 7}.Clock()
		require.NoError(t, err)
		assert.Equal(t, MustObjectID("0x99"), arg.Shared.ID)
		assert.Equal(t, uint64(7), arg.Shared.InitialSharedVersion)
	})
}
