package audittrail

import (
	"context"
	"fmt"

	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/callarg"
	"github.com/anyproto/any-trail/ledger/ledgererr"
	"github.com/anyproto/any-trail/ledger/linkedtable"
	"github.com/anyproto/any-trail/ledger/txwrapper"
)

func (p *Program) AddRecord(sender ledger.Address, trailID ledger.ObjectID, data Data, note *string, opts ...CallOption) *txwrapper.Transaction[RecordAdded] {
	build := func(ctx context.Context, reader ledger.Reader) (*ledger.CallPayload, error) {
		if err := data.validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ledgererr.ErrInvalidArgument, err)
		}
		return p.authenticated(ctx, reader, sender, trailID, FuncAddRecord, opts, func(b *callarg.Builder, _ ledger.TypeTag) error {
			return b.AddPure(data, callarg.Option[string]{Value: note})
		})
	}
	return txwrapper.New(opName(FuncAddRecord, trailID), build, eventResult[RecordAdded]("RecordAdded"))
}

// CorrectRecord adds a record superseding the records in replaces.
func (p *Program) CorrectRecord(sender ledger.Address, trailID ledger.ObjectID, replaces []uint64, data Data, note *string, opts ...CallOption) *txwrapper.Transaction[RecordCorrected] {
	build := func(ctx context.Context, reader ledger.Reader) (*ledger.CallPayload, error) {
		if len(replaces) == 0 {
			return nil, fmt.Errorf("%w: correction replaces nothing", ledgererr.ErrInvalidArgument)
		}
		if err := data.validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ledgererr.ErrInvalidArgument, err)
		}
		return p.authenticated(ctx, reader, sender, trailID, FuncCorrectRecord, opts, func(b *callarg.Builder, _ ledger.TypeTag) error {
			return b.AddPure(replaces, data, callarg.Option[string]{Value: note})
		})
	}
	return txwrapper.New(opName(FuncCorrectRecord, trailID), build, eventResult[RecordCorrected]("RecordCorrected"))
}

func (p *Program) DeleteRecord(sender ledger.Address, trailID ledger.ObjectID, sequence uint64, opts ...CallOption) *txwrapper.Transaction[RecordDeleted] {
	build := func(ctx context.Context, reader ledger.Reader) (*ledger.CallPayload, error) {
		return p.authenticated(ctx, reader, sender, trailID, FuncDeleteRecord, opts, func(b *callarg.Builder, _ ledger.TypeTag) error {
			return b.AddPure(sequence)
		})
	}
	return txwrapper.New(opName(FuncDeleteRecord, trailID), build, eventResult[RecordDeleted]("RecordDeleted"))
}

// RecordCount asks the program for the number of records in the trail.
func (p *Program) RecordCount(ctx context.Context, reader ledger.Reader, sender ledger.Address, trailID ledger.ObjectID) (uint64, error) {
	payload, err := p.readOnly(ctx, reader, trailID, FuncRecordCount, false, nil)
	if err != nil {
		return 0, err
	}
	return txwrapper.Simulate[uint64](ctx, reader, sender, payload)
}

func (p *Program) GetRecord(ctx context.Context, reader ledger.Reader, sender ledger.Address, trailID ledger.ObjectID, sequence uint64) (Record, error) {
	payload, err := p.readOnly(ctx, reader, trailID, FuncGetRecord, false, func(b *callarg.Builder, _ ledger.TypeTag) error {
		return b.AddPure(sequence)
	})
	if err != nil {
		return Record{}, err
	}
	return txwrapper.Simulate[Record](ctx, reader, sender, payload)
}

// IsRecordLocked reports whether the locking config currently protects the record from deletion.
func (p *Program) IsRecordLocked(ctx context.Context, reader ledger.Reader, sender ledger.Address, trailID ledger.ObjectID, sequence uint64) (bool, error) {
	payload, err := p.readOnly(ctx, reader, trailID, FuncIsRecordLocked, true, func(b *callarg.Builder, _ ledger.TypeTag) error {
		return b.AddPure(sequence)
	})
	if err != nil {
		return false, err
	}
	return txwrapper.Simulate[bool](ctx, reader, sender, payload)
}

func (p *Program) ListRecords(ctx context.Context, reader ledger.Reader, trailID ledger.ObjectID) (map[uint64]Record, error) {
	trail, err := p.Get(ctx, reader, trailID)
	if err != nil {
		return nil, err
	}
	return linkedtable.NewWalker[Record](reader).List(ctx, trail.Records)
}

func (p *Program) ListRecordsBounded(ctx context.Context, reader ledger.Reader, trailID ledger.ObjectID, max uint64) (map[uint64]Record, error) {
	trail, err := p.Get(ctx, reader, trailID)
	if err != nil {
		return nil, err
	}
	return linkedtable.NewWalker[Record](reader).ListBounded(ctx, trail.Records, max)
}

func (p *Program) ListRecordsPage(ctx context.Context, reader ledger.Reader, trailID ledger.ObjectID, cursor *uint64, limit int) (*linkedtable.Page[Record], error) {
	if limit > linkedtable.MaxPageSize {
		return nil, fmt.Errorf("%w: page limit %d exceeds %d", ledgererr.ErrInvalidArgument, limit, linkedtable.MaxPageSize)
	}
	trail, err := p.Get(ctx, reader, trailID)
	if err != nil {
		return nil, err
	}
	return linkedtable.NewWalker[Record](reader).ListPage(ctx, trail.Records, cursor, limit)
}
