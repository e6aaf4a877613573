package objectref

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"storj.io/drpc/drpcerr"

	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/callarg"
	"github.com/anyproto/any-trail/ledger/ledgererr"
	"github.com/anyproto/any-trail/ledger/mock_ledger"
)

var ctx = context.Background()

var (
	sharedID = ledger.MustObjectID("0x51")
	ownedID  = ledger.MustObjectID("0x52")
	trailTag = ledger.MustTypeTag("0xab::audit_trail::AuditTrail<0xab::record::Data>")
)

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	reader := mock_ledger.NewMockReader(ctrl)
	return &fixture{Resolver: New(reader), reader: reader}
}

type fixture struct {
	*Resolver
	reader *mock_ledger.MockReader
}

func (fx *fixture) expectObject(obj *ledger.Object) {
	fx.reader.EXPECT().GetObject(gomock.Any(), obj.Ref.ID).Return(obj, nil)
}

func TestResolver_Shared(t *testing.T) {
	t.Run("shared", func(t *testing.T) {
		fx := newFixture(t)
		fx.expectObject(&ledger.Object{Ref: ledger.ObjectRef{ID: sharedID, Version: 40}, Owner: ledger.SharedOwner(12), Type: trailTag})
		arg, tag, err := fx.Shared(ctx, sharedID, true)
		require.NoError(t, err)
		assert.Equal(t, ledger.SharedArgument(sharedID, 12, true), arg)
		assert.True(t, trailTag.Equal(tag))
	})
	t.Run("owned rejected", func(t *testing.T) {
		fx := newFixture(t)
		fx.expectObject(&ledger.Object{Ref: ledger.ObjectRef{ID: ownedID}, Owner: ledger.AddressOwner(ledger.MustAddress("0x1"))})
		_, _, err := fx.Shared(ctx, ownedID, false)
		assert.ErrorIs(t, err, ledgererr.ErrInvalidArgument)
	})
}

func TestResolver_Owned(t *testing.T) {
	t.Run("owned", func(t *testing.T) {
		fx := newFixture(t)
		ref := ledger.ObjectRef{ID: ownedID, Version: 9, Digest: ledger.Digest{1}}
		fx.expectObject(&ledger.Object{Ref: ref, Owner: ledger.AddressOwner(ledger.MustAddress("0x1"))})
		arg, _, err := fx.Owned(ctx, ownedID)
		require.NoError(t, err)
		assert.Equal(t, ledger.ObjectArgument(ref), arg)
	})
	t.Run("immutable", func(t *testing.T) {
		fx := newFixture(t)
		fx.expectObject(&ledger.Object{Ref: ledger.ObjectRef{ID: ownedID, Version: 1}, Owner: ledger.Owner{Kind: ledger.OwnerImmutable}})
		_, _, err := fx.Owned(ctx, ownedID)
		require.NoError(t, err)
	})
	t.Run("shared rejected", func(t *testing.T) {
		fx := newFixture(t)
		fx.expectObject(&ledger.Object{Ref: ledger.ObjectRef{ID: sharedID}, Owner: ledger.SharedOwner(1)})
		_, _, err := fx.Owned(ctx, sharedID)
		assert.ErrorIs(t, err, ledgererr.ErrInvalidArgument)
	})
}

func TestResolver_Ref(t *testing.T) {
	t.Run("read failure", func(t *testing.T) {
		fx := newFixture(t)
		fx.reader.EXPECT().GetObject(gomock.Any(), ownedID).Return(nil, errors.New("connection reset"))
		_, err := fx.Ref(ctx, ownedID)
		assert.ErrorIs(t, err, ledgererr.ErrRPC)
		assert.Contains(t, err.Error(), ownedID.String())
	})
	t.Run("relayed kind", func(t *testing.T) {
		fx := newFixture(t)
		fx.reader.EXPECT().GetObject(gomock.Any(), ownedID).Return(nil, drpcerr.WithCode(errors.New("bad object"), ledgererr.Code(ledgererr.ErrDeserialization)))
		_, err := fx.Ref(ctx, ownedID)
		assert.ErrorIs(t, err, ledgererr.ErrDeserialization)
	})
	t.Run("absent", func(t *testing.T) {
		fx := newFixture(t)
		fx.reader.EXPECT().GetObject(gomock.Any(), ownedID).Return(nil, nil)
		_, err := fx.Ref(ctx, ownedID)
		assert.ErrorIs(t, err, ledgererr.ErrRPC)
	})
}

func TestResolver_Load(t *testing.T) {
	type counter struct {
		ID    ledger.ObjectID
		Value uint64
	}
	contents, err := callarg.Encode(counter{ID: ownedID, Value: 42})
	require.NoError(t, err)

	t.Run("decoded", func(t *testing.T) {
		fx := newFixture(t)
		fx.expectObject(&ledger.Object{Ref: ledger.ObjectRef{ID: ownedID}, Contents: contents})
		var c counter
		_, err := fx.Load(ctx, ownedID, &c)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), c.Value)
	})
	t.Run("malformed", func(t *testing.T) {
		fx := newFixture(t)
		fx.expectObject(&ledger.Object{Ref: ledger.ObjectRef{ID: ownedID}, Contents: contents[:10]})
		var c counter
		_, err := fx.Load(ctx, ownedID, &c)
		assert.ErrorIs(t, err, ledgererr.ErrDeserialization)
	})
}
