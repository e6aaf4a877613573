// Package ledgertest provides an in-memory ledger running the audit trail program.
package ledgertest

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/anyproto/any-trail/app"
	"github.com/anyproto/any-trail/ledger"
)

var ErrObjectNotFound = errors.New("object not found")

const (
	defaultPageSize = 2
	firstObjectID   = 0x1000
)

var PackageID = ledger.MustObjectID("0xa0d17")

func New() *Ledger {
	return &Ledger{
		objects:  make(map[ledger.ObjectID]*ledger.Object),
		fields:   make(map[ledger.ObjectID]map[string]ledger.ObjectID),
		nextID:   firstObjectID,
		now:      uint64(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()),
		PageSize: defaultPageSize,
	}
}

// Ledger is a fake ledger. It implements ledger.Reader and hands out
// executors bound to a sender.
type Ledger struct {
	mu      sync.Mutex
	objects map[ledger.ObjectID]*ledger.Object
	// fields maps a parent to its dynamic fields by encoded name
	fields map[ledger.ObjectID]map[string]ledger.ObjectID
	nextID uint64
	txs    uint64
	now    uint64

	// PageSize is the number of owned objects returned per page
	PageSize int
}

func (l *Ledger) Init(a *app.App) (err error) {
	return nil
}

func (l *Ledger) Name() (name string) {
	return ledger.ReaderCName
}

func (l *Ledger) Network() ledger.Network {
	return ledger.Network{Name: "ledgertest", PackageID: PackageID.String()}
}

// Advance moves the ledger clock forward
func (l *Ledger) Advance(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now += uint64(d.Milliseconds())
}

func (l *Ledger) Now() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.now
}

func (l *Ledger) GetObject(ctx context.Context, id ledger.ObjectID) (*ledger.Object, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	obj, ok := l.objects[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, id)
	}
	return copyObject(obj), nil
}

func (l *Ledger) GetOwnedObjects(ctx context.Context, owner ledger.Address, filter *ledger.TypeTag, cursor *ledger.ObjectID) (*ledger.OwnedObjectsPage, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var owned []*ledger.Object
	for id, obj := range l.objects {
		if obj.Owner.Kind != ledger.OwnerAddress || obj.Owner.Address != owner {
			continue
		}
		if filter != nil && !obj.Type.SameStruct(*filter) {
			continue
		}
		if cursor != nil && bytes.Compare(id[:], cursor[:]) <= 0 {
			continue
		}
		owned = append(owned, obj)
	}
	sort.Slice(owned, func(i, j int) bool {
		return bytes.Compare(owned[i].Ref.ID[:], owned[j].Ref.ID[:]) < 0
	})
	page := &ledger.OwnedObjectsPage{}
	for _, obj := range owned {
		if len(page.Objects) == l.PageSize {
			page.HasNextPage = true
			last := page.Objects[len(page.Objects)-1].Ref.ID
			page.NextCursor = &last
			break
		}
		page.Objects = append(page.Objects, copyObject(obj))
	}
	return page, nil
}

func (l *Ledger) GetDynamicField(ctx context.Context, parent ledger.ObjectID, name ledger.DynamicFieldName) (*ledger.Object, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	id, ok := l.fields[parent][string(name.Value)]
	if !ok {
		return nil, fmt.Errorf("%w: dynamic field %x of %s", ErrObjectNotFound, name.Value, parent)
	}
	return copyObject(l.objects[id]), nil
}

func (l *Ledger) Simulate(ctx context.Context, sender ledger.Address, call *ledger.CallPayload) (*ledger.SimulationResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tx := &txCtx{Ledger: l, sender: sender, call: call}
	value, err := tx.query()
	if err != nil {
		return &ledger.SimulationResult{Status: ledger.ExecutionStatus{Error: err.Error()}}, nil
	}
	return &ledger.SimulationResult{Status: ledger.ExecutionStatus{Success: true}, ReturnValues: [][]byte{value}}, nil
}

// Executor returns an executor submitting calls signed by sender.
func (l *Ledger) Executor(sender ledger.Address) ledger.ExecutorComponent {
	return &executor{l: l, sender: sender}
}

type executor struct {
	l      *Ledger
	sender ledger.Address
}

func (e *executor) Init(a *app.App) (err error) {
	return nil
}

func (e *executor) Name() (name string) {
	return ledger.ExecutorCName
}

func (e *executor) Execute(ctx context.Context, call *ledger.CallPayload) (*ledger.ExecutionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.l.execute(e.sender, call), nil
}

func (l *Ledger) execute(sender ledger.Address, call *ledger.CallPayload) *ledger.ExecutionResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.txs++
	l.now++
	res := &ledger.ExecutionResult{}
	binary.BigEndian.PutUint64(res.Digest[ledger.DigestLength-8:], l.txs)

	// changes are staged so an aborted call leaves no trace
	tx := &txCtx{Ledger: l, sender: sender, call: call, res: res, staged: make(map[ledger.ObjectID]*ledger.Object)}
	if err := tx.run(); err != nil {
		return &ledger.ExecutionResult{Digest: res.Digest, Effects: ledger.Effects{Status: ledger.ExecutionStatus{Error: err.Error()}}}
	}
	tx.commit()
	res.Effects.Status.Success = true
	return res
}

func (l *Ledger) newID() ledger.ObjectID {
	var id ledger.ObjectID
	binary.BigEndian.PutUint64(id[ledger.AddressLength-8:], l.nextID)
	l.nextID++
	return id
}

func copyObject(obj *ledger.Object) *ledger.Object {
	cp := *obj
	cp.Contents = append([]byte(nil), obj.Contents...)
	return &cp
}
