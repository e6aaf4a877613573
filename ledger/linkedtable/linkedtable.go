// Package linkedtable reads a remote linked table keyed by sequence number.
// Nodes are fetched one by one as dynamic fields of the table object.
package linkedtable

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/anyproto/any-trail/app/logger"
	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/callarg"
	"github.com/anyproto/any-trail/ledger/ledgererr"
)

const MaxPageSize = 1000

var log = logger.NewNamed("ledger.linkedtable")

var (
	ErrCycleDetected = fmt.Errorf("%w: cycle detected", ledgererr.ErrUnexpectedResponse)
	ErrSizeMismatch  = fmt.Errorf("%w: size mismatch", ledgererr.ErrUnexpectedResponse)
)

var keyType = ledger.Primitive(ledger.TypeU64)

// Table is the decoded header of a linked table.
type Table struct {
	ID   ledger.ObjectID
	Size uint64
	Head *uint64 `bcs:"optional"`
	Tail *uint64 `bcs:"optional"`
}

type Node[V any] struct {
	Prev  *uint64 `bcs:"optional"`
	Next  *uint64 `bcs:"optional"`
	Value V
}

// Field is the dynamic field object holding one node.
type Field[V any] struct {
	ID    ledger.ObjectID
	Name  uint64
	Value Node[V]
}

type Page[V any] struct {
	Entries map[uint64]V
	// Keys lists the entry keys in traversal order
	Keys        []uint64
	NextCursor  *uint64
	HasNextPage bool
}

func NewWalker[V any](reader ledger.Reader) *Walker[V] {
	return &Walker[V]{reader: reader}
}

// Walker traverses tables with values of type V.
type Walker[V any] struct {
	reader ledger.Reader
}

// List returns every entry of the table. The number of reachable entries
// must equal the declared size.
func (w *Walker[V]) List(ctx context.Context, table Table) (map[uint64]V, error) {
	if table.Size > uint64(maxInt) {
		return nil, fmt.Errorf("%w: table %s is too large: %d", ledgererr.ErrInvalidArgument, table.ID, table.Size)
	}
	page, err := w.walk(ctx, table, table.Head, int(table.Size))
	if err != nil {
		return nil, err
	}
	if uint64(len(page.Entries)) != table.Size {
		return nil, fmt.Errorf("%w: table %s declares %d entries, %d reachable", ErrSizeMismatch, table.ID, table.Size, len(page.Entries))
	}
	if page.NextCursor != nil {
		if _, seen := page.Entries[*page.NextCursor]; seen {
			return nil, fmt.Errorf("%w: table %s: node %d is reached twice", ErrCycleDetected, table.ID, *page.NextCursor)
		}
		return nil, fmt.Errorf("%w: table %s declares %d entries, cursor %d remains", ErrSizeMismatch, table.ID, table.Size, *page.NextCursor)
	}
	return page.Entries, nil
}

// ListBounded is List refusing tables declaring more than max entries.
func (w *Walker[V]) ListBounded(ctx context.Context, table Table, max uint64) (map[uint64]V, error) {
	if table.Size > max {
		return nil, fmt.Errorf("%w: table %s has %d entries, more than %d", ledgererr.ErrInvalidArgument, table.ID, table.Size, max)
	}
	return w.List(ctx, table)
}

// ListPage returns up to limit entries starting from cursor, or from the head when cursor is nil.
func (w *Walker[V]) ListPage(ctx context.Context, table Table, cursor *uint64, limit int) (*Page[V], error) {
	if limit > MaxPageSize {
		return nil, fmt.Errorf("%w: page limit %d exceeds %d", ledgererr.ErrInvalidArgument, limit, MaxPageSize)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: negative page limit %d", ledgererr.ErrInvalidArgument, limit)
	}
	start := table.Head
	if cursor != nil {
		start = cursor
	}
	return w.walk(ctx, table, start, limit)
}

type walkState uint8

const (
	stateStart walkState = iota
	stateFetching
	stateDone
)

const maxInt = int(^uint(0) >> 1)

func (w *Walker[V]) walk(ctx context.Context, table Table, start *uint64, limit int) (*Page[V], error) {
	var (
		state   = stateStart
		cursor  *uint64
		visited = make(map[uint64]struct{})
		page    = &Page[V]{Entries: make(map[uint64]V)}
	)
	for state != stateDone {
		switch state {
		case stateStart:
			cursor = start
			if cursor == nil || limit == 0 {
				state = stateDone
			} else {
				state = stateFetching
			}
		case stateFetching:
			key := *cursor
			if _, ok := visited[key]; ok {
				log.Warn("cycle in linked table", zap.String("tableId", table.ID.String()), zap.Uint64("key", key))
				return nil, fmt.Errorf("%w: table %s revisits key %d", ErrCycleDetected, table.ID, key)
			}
			node, err := w.node(ctx, table.ID, key)
			if err != nil {
				return nil, err
			}
			visited[key] = struct{}{}
			page.Entries[key] = node.Value
			page.Keys = append(page.Keys, key)
			cursor = node.Next
			if cursor == nil || len(page.Keys) == limit {
				state = stateDone
			}
		}
	}
	page.NextCursor = cursor
	page.HasNextPage = cursor != nil
	return page, nil
}

var errKeyMismatch = errors.New("node key mismatch")

func (w *Walker[V]) node(ctx context.Context, tableID ledger.ObjectID, key uint64) (node Node[V], err error) {
	name, err := callarg.Encode(key)
	if err != nil {
		return
	}
	obj, err := w.reader.GetDynamicField(ctx, tableID, ledger.DynamicFieldName{Type: keyType, Value: name})
	if err != nil {
		err = fmt.Errorf("table %s node %d: %w", tableID, key, ledgererr.Relay(err))
		return
	}
	if obj == nil {
		err = fmt.Errorf("%w: table %s node %d not found", ledgererr.ErrUnexpectedResponse, tableID, key)
		return
	}
	var field Field[V]
	if err = callarg.Decode(obj.Contents, &field); err != nil {
		err = fmt.Errorf("table %s node %d: %w", tableID, key, err)
		return
	}
	if field.Name != key {
		err = fmt.Errorf("%w: table %s: %w: requested %d, got %d", ledgererr.ErrUnexpectedResponse, tableID, errKeyMismatch, key, field.Name)
		return
	}
	return field.Value, nil
}
