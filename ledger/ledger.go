//go:generate mockgen -destination mock_ledger/mock_ledger.go github.com/anyproto/any-trail/ledger Reader,Executor,ReaderComponent,ExecutorComponent
package ledger

import (
	"context"

	"github.com/anyproto/any-trail/app"
)

const (
	ReaderCName   = "ledger.reader"
	ExecutorCName = "ledger.executor"
)

// DynamicFieldName addresses a child of a parent object by a typed key.
type DynamicFieldName struct {
	Type TypeTag
	// Value is the canonical encoding of the key
	Value []byte
}

type OwnedObjectsPage struct {
	Objects     []*Object
	NextCursor  *ObjectID
	HasNextPage bool
}

// Reader is the read side of the external RPC client.
// Errors returned by implementations are relayed to callers via ledgererr.Relay.
type Reader interface {
	// GetObject returns the current state of the object
	GetObject(ctx context.Context, id ObjectID) (*Object, error)
	// GetOwnedObjects returns one page of objects owned by the address.
	// When filter is not nil only objects of that struct type are returned
	GetOwnedObjects(ctx context.Context, owner Address, filter *TypeTag, cursor *ObjectID) (*OwnedObjectsPage, error)
	// GetDynamicField returns the child object of parent stored under name
	GetDynamicField(ctx context.Context, parent ObjectID, name DynamicFieldName) (*Object, error)
	// Simulate executes the call without committing it
	Simulate(ctx context.Context, sender Address, call *CallPayload) (*SimulationResult, error)
}

// Executor submits a call signed by its configured sender and waits for the outcome.
type Executor interface {
	Execute(ctx context.Context, call *CallPayload) (*ExecutionResult, error)
}

// Signer provides the identity calls are made from.
type Signer interface {
	PublicKey() []byte
	Address() Address
}

type ReaderComponent interface {
	app.Component
	Reader
}

type ExecutorComponent interface {
	app.Component
	Executor
}
