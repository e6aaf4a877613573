package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyproto/any-trail/app"
	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/ledgererr"
)

const testYaml = `
log:
  defaultLevel: warn
  levels:
    - name: ledger.*
      level: debug
metric:
  addr: 127.0.0.1:9090
network:
  name: devnet
  packageId: "0xab"
account:
  mnemonic: "abandon abandon abandon"
  index: 3
`

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(testYaml), 0o600))

	c, err := NewFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", c.GetLogger().DefaultLevel)
	assert.Equal(t, "ledger.*", c.GetLogger().Levels[0].Name)
	assert.Equal(t, "127.0.0.1:9090", c.GetMetric().Addr)
	assert.Equal(t, "devnet", c.GetNetwork().Name)
	assert.Equal(t, uint32(3), c.GetAccount().Index)

	pkg, err := c.GetNetwork().Package()
	require.NoError(t, err)
	assert.Equal(t, ledger.MustObjectID("0xab"), pkg)

	require.NoError(t, c.Init(new(app.App)))
}

func TestConfig_Init(t *testing.T) {
	c, err := NewFromYaml([]byte("network:\n  name: devnet\n"))
	require.NoError(t, err)
	assert.ErrorIs(t, c.Init(new(app.App)), ledgererr.ErrInvalidConfig)
}

func TestNewFromFile_Missing(t *testing.T) {
	_, err := NewFromFile(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
