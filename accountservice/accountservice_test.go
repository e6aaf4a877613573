package accountservice

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyproto/any-trail/app"
	"github.com/anyproto/any-trail/ledger/ledgererr"
	"github.com/anyproto/any-trail/util/crypto"
)

type testConfig struct {
	conf Config
}

func (c testConfig) Init(a *app.App) error { return nil }
func (c testConfig) Name() string          { return "config" }
func (c testConfig) GetAccount() Config    { return c.conf }

func TestService_Init(t *testing.T) {
	t.Run("signing key", func(t *testing.T) {
		key, _, err := crypto.GenerateRandomEd25519KeyPair()
		require.NoError(t, err)
		raw, _ := key.Raw()
		a := new(app.App)
		s := New()
		a.Register(testConfig{conf: Config{SigningKey: base64.StdEncoding.EncodeToString(raw)}}).Register(s)
		require.NoError(t, s.Init(a))
		assert.True(t, key.Equals(s.Account()))
		assert.Equal(t, key.GetPublic().Address(), s.Address())
		assert.Len(t, s.PublicKey(), 32)
	})
	t.Run("mnemonic", func(t *testing.T) {
		phrase, err := crypto.NewMnemonic(12)
		require.NoError(t, err)
		want, err := phrase.DeriveKey(2)
		require.NoError(t, err)
		a := new(app.App)
		s := New()
		a.Register(testConfig{conf: Config{Mnemonic: string(phrase), Index: 2}}).Register(s)
		require.NoError(t, s.Init(a))
		assert.True(t, want.Equals(s.Account()))
	})
	t.Run("preset key", func(t *testing.T) {
		key, _, err := crypto.GenerateRandomEd25519KeyPair()
		require.NoError(t, err)
		s := NewWithKey(key)
		require.NoError(t, s.Init(new(app.App)))
		assert.Equal(t, key.GetPublic().Address(), s.Address())
	})
	t.Run("empty config", func(t *testing.T) {
		a := new(app.App)
		s := New()
		a.Register(testConfig{}).Register(s)
		assert.ErrorIs(t, s.Init(a), ledgererr.ErrInvalidConfig)
	})
	t.Run("bad signing key", func(t *testing.T) {
		_, err := KeyFromConfig(Config{SigningKey: "!!!"})
		assert.ErrorIs(t, err, ledgererr.ErrInvalidConfig)
		_, err = KeyFromConfig(Config{SigningKey: base64.StdEncoding.EncodeToString([]byte{1, 2})})
		assert.ErrorIs(t, err, ledgererr.ErrInvalidConfig)
	})
}
