package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMnemonic(t *testing.T) {
	phrase, err := NewMnemonic(12)
	require.NoError(t, err)
	require.Len(t, strings.Split(string(phrase), " "), 12)

	k0, err := phrase.DeriveKey(0)
	require.NoError(t, err)
	again, err := phrase.DeriveKey(0)
	require.NoError(t, err)
	assert.True(t, k0.Equals(again))

	k1, err := phrase.DeriveKey(1)
	require.NoError(t, err)
	assert.False(t, k0.Equals(k1))
	assert.NotEqual(t, k0.GetPublic().Address(), k1.GetPublic().Address())
}

func TestMnemonicErrors(t *testing.T) {
	_, err := NewMnemonic(13)
	assert.ErrorIs(t, err, ErrInvalidWordCount)

	_, err = Mnemonic("definitely not a valid phrase").DeriveKey(0)
	assert.ErrorIs(t, err, ErrInvalidMnemonic)
}
