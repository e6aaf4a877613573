package trailclient

import (
	"context"

	"github.com/anyproto/any-trail/app"
	"github.com/anyproto/any-trail/audittrail"
	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/linkedtable"
	"github.com/anyproto/any-trail/metric"
)

type readOnly struct {
	reader  ledger.Reader
	program *audittrail.Program
	metric  metric.Metric
	// sender is used for simulated calls, zero for read-only clients
	sender ledger.Address
}

func (r *readOnly) Init(a *app.App) (err error) {
	r.init(a)
	return
}

func (r *readOnly) Name() (name string) {
	return ReadOnlyCName
}

func (r *readOnly) Reader() ledger.Reader {
	return r.reader
}

func (r *readOnly) Get(ctx context.Context, trailID ledger.ObjectID) (*audittrail.Trail, error) {
	return r.program.Get(ctx, r.reader, trailID)
}

func (r *readOnly) RecordCount(ctx context.Context, trailID ledger.ObjectID) (uint64, error) {
	return r.program.RecordCount(ctx, r.reader, r.sender, trailID)
}

func (r *readOnly) GetRecord(ctx context.Context, trailID ledger.ObjectID, sequence uint64) (audittrail.Record, error) {
	return r.program.GetRecord(ctx, r.reader, r.sender, trailID, sequence)
}

func (r *readOnly) IsRecordLocked(ctx context.Context, trailID ledger.ObjectID, sequence uint64) (bool, error) {
	return r.program.IsRecordLocked(ctx, r.reader, r.sender, trailID, sequence)
}

func (r *readOnly) ListRecords(ctx context.Context, trailID ledger.ObjectID) (map[uint64]audittrail.Record, error) {
	return r.program.ListRecords(ctx, r.reader, trailID)
}

func (r *readOnly) ListRecordsBounded(ctx context.Context, trailID ledger.ObjectID, max uint64) (map[uint64]audittrail.Record, error) {
	return r.program.ListRecordsBounded(ctx, r.reader, trailID, max)
}

func (r *readOnly) ListRecordsPage(ctx context.Context, trailID ledger.ObjectID, cursor *uint64, limit int) (*linkedtable.Page[audittrail.Record], error) {
	return r.program.ListRecordsPage(ctx, r.reader, trailID, cursor, limit)
}

func (r *readOnly) Roles(ctx context.Context, trailID ledger.ObjectID) (map[string][]audittrail.Permission, error) {
	return r.program.Roles(ctx, r.reader, trailID)
}

func (r *readOnly) Capabilities(ctx context.Context, owner ledger.Address) (map[ledger.ObjectID]audittrail.Capability, error) {
	return r.program.Capabilities(ctx, r.reader, owner)
}
