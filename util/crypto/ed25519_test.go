package crypto

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SignVerify(t *testing.T) {
	privKey, pubKey, err := GenerateEd25519Key(rand.Reader)
	require.NoError(t, err)
	msg := make([]byte, 1024)
	_, err = rand.Read(msg)
	require.NoError(t, err)
	sign, err := privKey.Sign(msg)
	require.NoError(t, err)
	res, err := pubKey.Verify(msg, sign)
	require.NoError(t, err)
	require.True(t, res)
	assert.True(t, privKey.GetPublic().Equals(pubKey))
}

func TestUnmarshal(t *testing.T) {
	privKey, pubKey, err := GenerateRandomEd25519KeyPair()
	require.NoError(t, err)

	raw, err := privKey.Raw()
	require.NoError(t, err)
	restored, err := UnmarshalEd25519PrivateKey(raw)
	require.NoError(t, err)
	assert.True(t, privKey.Equals(restored))

	fromSeed, err := UnmarshalEd25519PrivateKey(raw[:32])
	require.NoError(t, err)
	assert.True(t, privKey.Equals(fromSeed))

	rawPub, err := pubKey.Raw()
	require.NoError(t, err)
	restoredPub, err := UnmarshalEd25519PublicKey(rawPub)
	require.NoError(t, err)
	assert.Equal(t, pubKey.Address(), restoredPub.Address())

	_, err = UnmarshalEd25519PrivateKey([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrIncorrectKeyType)
	_, err = UnmarshalEd25519PublicKey([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrIncorrectKeyType)
}

func TestDeriveAddress(t *testing.T) {
	_, pubKey, err := GenerateRandomEd25519KeyPair()
	require.NoError(t, err)
	raw, _ := pubKey.Raw()
	assert.Equal(t, DeriveAddress(SchemeEd25519, raw), pubKey.Address())
	assert.NotEqual(t, DeriveAddress(SchemeFlag(1), raw), pubKey.Address())
	assert.False(t, pubKey.Address().IsZero())
}
