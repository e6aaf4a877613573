package ledgererr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"storj.io/drpc/drpcerr"
)

func TestRelay(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, Relay(nil))
	})
	t.Run("unknown error becomes rpc", func(t *testing.T) {
		src := errors.New("connection reset")
		err := Relay(src)
		assert.ErrorIs(t, err, ErrRPC)
		assert.ErrorIs(t, err, src)
	})
	t.Run("known code", func(t *testing.T) {
		src := drpcerr.WithCode(errors.New("remote says no"), codeOffset+6)
		err := Relay(src)
		assert.ErrorIs(t, err, ErrNotImplemented)
		assert.NotErrorIs(t, err, ErrRPC)
	})
	t.Run("already a kind", func(t *testing.T) {
		src := fmt.Errorf("%w: bad", ErrInvalidArgument)
		assert.Equal(t, src, Relay(src))
	})
}

func TestCode(t *testing.T) {
	assert.Equal(t, codeOffset+1, Code(fmt.Errorf("%w: x", ErrInvalidArgument)))
	assert.Equal(t, codeOffset+4, Code(fmt.Errorf("outer: %w", fmt.Errorf("%w: x", ErrUnexpectedResponse))))
	assert.Equal(t, uint64(0), Code(nil))
	assert.Equal(t, uint64(42), Code(drpcerr.WithCode(errors.New("x"), 42)))
}
