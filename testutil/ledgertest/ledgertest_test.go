package ledgertest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyproto/any-trail/audittrail"
	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/ledgererr"
	"github.com/anyproto/any-trail/ledger/txwrapper"
)

var ctx = context.Background()

var (
	admin    = ledger.MustAddress("0xad")
	stranger = ledger.MustAddress("0x5e")
)

func createTrail(t *testing.T, l *Ledger, p *audittrail.Program) *audittrail.Created {
	created, err := txwrapper.Execute(ctx, p.Create(audittrail.CreateParams{AdminRole: "admin"}), l.Executor(admin), l)
	require.NoError(t, err)
	return created
}

func TestLedger_GetOwnedObjects(t *testing.T) {
	l := New()
	p := audittrail.NewProgram(l.Network())
	for i := 0; i < 3; i++ {
		createTrail(t, l, p)
	}

	first, err := l.GetOwnedObjects(ctx, admin, &capType, nil)
	require.NoError(t, err)
	require.Len(t, first.Objects, 2)
	assert.True(t, first.HasNextPage)
	require.NotNil(t, first.NextCursor)

	second, err := l.GetOwnedObjects(ctx, admin, &capType, first.NextCursor)
	require.NoError(t, err)
	assert.Len(t, second.Objects, 1)
	assert.False(t, second.HasNextPage)
	assert.Nil(t, second.NextCursor)

	none, err := l.GetOwnedObjects(ctx, stranger, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, none.Objects)
}

func TestLedger_AbortLeavesNoTrace(t *testing.T) {
	l := New()
	p := audittrail.NewProgram(l.Network())
	created := createTrail(t, l, p)
	trailID := created.Event.TrailID
	before, err := l.GetObject(ctx, trailID)
	require.NoError(t, err)

	// the admin capability is owned by someone else
	tx := p.AddRecord(stranger, trailID, audittrail.TextData("x"), nil, audittrail.WithCapability(created.AdminCapability.ID))
	_, err = txwrapper.Execute(ctx, tx, l.Executor(stranger), l)
	assert.ErrorIs(t, err, ledgererr.ErrExecution)

	after, err := l.GetObject(ctx, trailID)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	count, err := p.RecordCount(ctx, l, stranger, trailID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLedger_Simulate(t *testing.T) {
	l := New()
	res, err := l.Simulate(ctx, admin, &ledger.CallPayload{Package: PackageID, Module: "other", Function: "f"})
	require.NoError(t, err)
	assert.False(t, res.Status.Success)
	assert.Contains(t, res.Status.Error, "MoveAbort")
}
