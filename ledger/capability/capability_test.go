package capability

import (
	"context"
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
	owner   = ledger.MustAddress("0xa11ce")
	target  = ledger.MustObjectID("0x71")
	other   = ledger.MustObjectID("0x72")
	capType = ledger.MustTypeTag("0xab::capability::Capability")
)

type testCap struct {
	ID       ledger.ObjectID
	Target   ledger.ObjectID
	RoleName string
}

func (c testCap) TargetKey() ledger.ObjectID {
	return c.Target
}

func newFixture(t *testing.T) *fixture {
	reader := mock_ledger.NewMockReader(gomock.NewController(t))
	return &fixture{
		Resolver: New[testCap](reader, capType),
		reader:   reader,
	}
}

type fixture struct {
	*Resolver[testCap]
	reader *mock_ledger.MockReader
}

func capObject(t *testing.T, id, target ledger.ObjectID, version uint64) *ledger.Object {
	contents, err := callarg.Encode(testCap{ID: id, Target: target, RoleName: "admin"})
	require.NoError(t, err)
	return &ledger.Object{
		Ref:      ledger.ObjectRef{ID: id, Version: version},
		Owner:    ledger.AddressOwner(owner),
		Type:     capType,
		Contents: contents,
	}
}

func TestResolver_Find(t *testing.T) {
	t.Run("single match across pages", func(t *testing.T) {
		fx := newFixture(t)
		first := capObject(t, ledger.MustObjectID("0xc1"), other, 1)
		match := capObject(t, ledger.MustObjectID("0xc2"), target, 5)
		cursor := first.Ref.ID
		fx.reader.EXPECT().GetOwnedObjects(gomock.Any(), owner, &capType, (*ledger.ObjectID)(nil)).
			Return(&ledger.OwnedObjectsPage{Objects: []*ledger.Object{first}, NextCursor: &cursor, HasNextPage: true}, nil)
		fx.reader.EXPECT().GetOwnedObjects(gomock.Any(), owner, &capType, &cursor).
			Return(&ledger.OwnedObjectsPage{Objects: []*ledger.Object{match}}, nil)
		fx.reader.EXPECT().GetObject(gomock.Any(), match.Ref.ID).Return(match, nil)

		arg, err := fx.Find(ctx, owner, target)
		require.NoError(t, err)
		assert.Equal(t, ledger.ObjectArgument(match.Ref), arg)
	})
	t.Run("not found", func(t *testing.T) {
		fx := newFixture(t)
		fx.reader.EXPECT().GetOwnedObjects(gomock.Any(), owner, gomock.Any(), gomock.Any()).
			Return(&ledger.OwnedObjectsPage{Objects: []*ledger.Object{capObject(t, ledger.MustObjectID("0xc1"), other, 1)}}, nil)

		_, err := fx.Find(ctx, owner, target)
		require.ErrorIs(t, err, ledgererr.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "no capability found for owner "+owner.String()+" and target "+target.String())
	})
	t.Run("ambiguous", func(t *testing.T) {
		fx := newFixture(t)
		fx.reader.EXPECT().GetOwnedObjects(gomock.Any(), owner, gomock.Any(), gomock.Any()).
			Return(&ledger.OwnedObjectsPage{Objects: []*ledger.Object{
				capObject(t, ledger.MustObjectID("0xc1"), target, 1),
				capObject(t, ledger.MustObjectID("0xc2"), target, 1),
			}}, nil)

		_, err := fx.Find(ctx, owner, target)
		assert.ErrorIs(t, err, ErrAmbiguousCapability)
		assert.ErrorIs(t, err, ledgererr.ErrInvalidArgument)
	})
	t.Run("malformed capability", func(t *testing.T) {
		fx := newFixture(t)
		broken := capObject(t, ledger.MustObjectID("0xc1"), target, 1)
		broken.Contents = broken.Contents[:5]
		fx.reader.EXPECT().GetOwnedObjects(gomock.Any(), owner, gomock.Any(), gomock.Any()).
			Return(&ledger.OwnedObjectsPage{Objects: []*ledger.Object{broken}}, nil)

		_, err := fx.Find(ctx, owner, target)
		assert.ErrorIs(t, err, ledgererr.ErrDeserialization)
	})
	t.Run("other types skipped", func(t *testing.T) {
		fx := newFixture(t)
		foreign := &ledger.Object{Type: ledger.MustTypeTag("0x2::coin::Coin<0x2::sui::SUI>"), Contents: []byte{1}}
		fx.reader.EXPECT().GetOwnedObjects(gomock.Any(), owner, gomock.Any(), gomock.Any()).
			Return(&ledger.OwnedObjectsPage{Objects: []*ledger.Object{foreign}}, nil)

		_, err := fx.Find(ctx, owner, target)
		assert.ErrorIs(t, err, ledgererr.ErrInvalidArgument)
	})
}

func TestResolver_List(t *testing.T) {
	fx := newFixture(t)
	a := capObject(t, ledger.MustObjectID("0xc1"), target, 1)
	b := capObject(t, ledger.MustObjectID("0xc2"), other, 1)
	fx.reader.EXPECT().GetOwnedObjects(gomock.Any(), owner, gomock.Any(), gomock.Any()).
		Return(&ledger.OwnedObjectsPage{Objects: []*ledger.Object{a, b}}, nil)

	caps, err := fx.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, caps, 2)
	assert.Equal(t, other, caps[b.Ref.ID].Target)
}

func TestResolver_NilObject(t *testing.T) {
	fx := newFixture(t)
	fx.reader.EXPECT().GetOwnedObjects(gomock.Any(), owner, gomock.Any(), gomock.Any()).
		Return(&ledger.OwnedObjectsPage{Objects: []*ledger.Object{nil}}, nil).Times(2)

	_, err := fx.Find(ctx, owner, target)
	assert.ErrorIs(t, err, ledgererr.ErrUnexpectedResponse)
	assert.ErrorContains(t, err, owner.String())

	_, err = fx.List(ctx, owner)
	assert.ErrorIs(t, err, ledgererr.ErrUnexpectedResponse)
}
