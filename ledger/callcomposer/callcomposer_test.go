package callcomposer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/callarg"
	"github.com/anyproto/any-trail/ledger/ledgererr"
	"github.com/anyproto/any-trail/ledger/mock_ledger"
)

var ctx = context.Background()

var (
	sender   = ledger.MustAddress("0xa11ce")
	targetID = ledger.MustObjectID("0x71")
	capID    = ledger.MustObjectID("0xc1")
	network  = ledger.Network{Name: "test", PackageID: "0xab"}
	trailTag = ledger.MustTypeTag("0xab::audit_trail::AuditTrail<0xab::record::Data>")
	capRef   = ledger.ObjectRef{ID: capID, Version: 4, Digest: ledger.Digest{9}}
)

type finderFunc func(ctx context.Context, owner ledger.Address, target ledger.ObjectID) (ledger.Argument, error)

func (f finderFunc) Find(ctx context.Context, owner ledger.Address, target ledger.ObjectID) (ledger.Argument, error) {
	return f(ctx, owner, target)
}

func newFixture(t *testing.T) *fixture {
	fx := &fixture{reader: mock_ledger.NewMockReader(gomock.NewController(t))}
	fx.Composer = New(fx.reader, network, finderFunc(func(ctx context.Context, owner ledger.Address, target ledger.ObjectID) (ledger.Argument, error) {
		fx.finds++
		if owner != sender || target != targetID {
			return ledger.Argument{}, fmt.Errorf("%w: no capability found for owner %s and target %s", ledgererr.ErrInvalidArgument, owner, target)
		}
		return callarg.Object(capRef), nil
	}))
	return fx
}

type fixture struct {
	*Composer
	reader *mock_ledger.MockReader
	finds  int
}

func (fx *fixture) expectTarget() {
	fx.reader.EXPECT().GetObject(gomock.Any(), targetID).Return(&ledger.Object{
		Ref:   ledger.ObjectRef{ID: targetID, Version: 30},
		Owner: ledger.SharedOwner(3),
		Type:  trailTag,
	}, nil)
}

func TestComposer_Authenticated(t *testing.T) {
	t.Run("argument order", func(t *testing.T) {
		fx := newFixture(t)
		fx.expectTarget()
		call := Call{Module: "audit_trail", Function: "add_record", Target: targetID, TargetTypeArgs: true, WithClock: true}
		payload, err := fx.Authenticated(ctx, sender, call, func(b *callarg.Builder, target ledger.TypeTag) error {
			assert.True(t, trailTag.Equal(target))
			return b.AddPure("note")
		})
		require.NoError(t, err)
		assert.Equal(t, ledger.MustObjectID("0xab"), payload.Package)
		assert.Equal(t, "add_record", payload.Function)
		require.Len(t, payload.TypeArgs, 1)
		assert.Equal(t, "Data", payload.TypeArgs[0].Name)
		require.Len(t, payload.Args, 4)
		assert.Equal(t, ledger.SharedArgument(targetID, 3, true), payload.Args[0])
		assert.Equal(t, ledger.ObjectArgument(capRef), payload.Args[1])
		var note string
		require.NoError(t, callarg.DecodePure(payload.Args[2], &note))
		assert.Equal(t, "note", note)
		assert.Equal(t, ledger.SharedArgument(ledger.ClockObjectID, 1, false), payload.Args[3])
	})
	t.Run("explicit capability", func(t *testing.T) {
		fx := newFixture(t)
		fx.expectTarget()
		fx.reader.EXPECT().GetObject(gomock.Any(), capID).Return(&ledger.Object{Ref: capRef, Owner: ledger.AddressOwner(sender)}, nil)
		call := Call{Module: "audit_trail", Function: "delete_record", Target: targetID, CapabilityID: &capID}
		payload, err := fx.Authenticated(ctx, sender, call, nil)
		require.NoError(t, err)
		assert.Equal(t, ledger.ObjectArgument(capRef), payload.Args[1])
		assert.Zero(t, fx.finds)
	})
	t.Run("capability not found", func(t *testing.T) {
		fx := newFixture(t)
		fx.expectTarget()
		extended := false
		_, err := fx.Authenticated(ctx, ledger.MustAddress("0xb0b"), Call{Module: "m", Function: "f", Target: targetID}, func(b *callarg.Builder, target ledger.TypeTag) error {
			extended = true
			return nil
		})
		assert.ErrorIs(t, err, ledgererr.ErrInvalidArgument)
		assert.False(t, extended)
	})
	t.Run("extension failure", func(t *testing.T) {
		fx := newFixture(t)
		fx.expectTarget()
		payload, err := fx.Authenticated(ctx, sender, Call{Module: "m", Function: "f", Target: targetID}, func(b *callarg.Builder, target ledger.TypeTag) error {
			return errors.New("bad extra")
		})
		assert.Error(t, err)
		assert.Nil(t, payload)
	})
	t.Run("missing package", func(t *testing.T) {
		fx := newFixture(t)
		fx.network = ledger.Network{Name: "empty"}
		_, err := fx.Authenticated(ctx, sender, Call{Module: "m", Function: "f", Target: targetID}, nil)
		assert.ErrorIs(t, err, ledgererr.ErrInvalidConfig)
	})
}

func TestComposer_ReadOnly(t *testing.T) {
	fx := newFixture(t)
	fx.expectTarget()
	payload, err := fx.ReadOnly(ctx, Call{Module: "audit_trail", Function: "record_count", Target: targetID, TargetTypeArgs: true}, nil)
	require.NoError(t, err)
	require.Len(t, payload.Args, 1)
	assert.Equal(t, ledger.SharedArgument(targetID, 3, false), payload.Args[0])
	assert.Zero(t, fx.finds)
}

func TestComposer_Plain(t *testing.T) {
	fx := newFixture(t)
	payload, err := fx.Plain(ctx, Call{Module: "audit_trail", Function: "create", WithClock: true}, func(b *callarg.Builder, target ledger.TypeTag) error {
		assert.Empty(t, target.Name)
		return b.AddPure(uint64(1))
	})
	require.NoError(t, err)
	require.Len(t, payload.Args, 2)
	assert.Equal(t, ledger.ArgumentShared, payload.Args[1].Kind)

	_, err = fx.Plain(ctx, Call{Module: "audit_trail", Function: "create", TargetTypeArgs: true}, nil)
	assert.ErrorIs(t, err, ledgererr.ErrInvalidArgument)
}
