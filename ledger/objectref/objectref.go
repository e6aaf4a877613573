// Package objectref turns object ids into call arguments.
package objectref

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/anyproto/any-trail/app/logger"
	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/callarg"
	"github.com/anyproto/any-trail/ledger/ledgererr"
)

var log = logger.NewNamed("ledger.objectref")

func New(reader ledger.Reader) *Resolver {
	return &Resolver{reader: reader}
}

// Resolver fetches the current object state on every call, nothing is cached.
type Resolver struct {
	reader ledger.Reader
}

// Ref fetches the object.
func (r *Resolver) Ref(ctx context.Context, id ledger.ObjectID) (*ledger.Object, error) {
	obj, err := r.reader.GetObject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", id, ledgererr.Relay(err))
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: object %s not found", ledgererr.ErrRPC, id)
	}
	return obj, nil
}

// Shared resolves a shared object argument and returns the object's type.
func (r *Resolver) Shared(ctx context.Context, id ledger.ObjectID, mutable bool) (ledger.Argument, ledger.TypeTag, error) {
	obj, err := r.Ref(ctx, id)
	if err != nil {
		return ledger.Argument{}, ledger.TypeTag{}, err
	}
	if !obj.Owner.IsShared() {
		log.Warn("object is not shared", zap.String("objectId", id.String()), zap.Stringer("owner", obj.Owner.Kind))
		return ledger.Argument{}, ledger.TypeTag{}, fmt.Errorf("%w: object %s is not shared, owner is %s", ledgererr.ErrInvalidArgument, id, obj.Owner.Kind)
	}
	return callarg.Shared(id, obj.Owner.InitialSharedVersion, mutable), obj.Type, nil
}

// Owned resolves an address-owned, object-owned or immutable object argument pinned to its current version.
func (r *Resolver) Owned(ctx context.Context, id ledger.ObjectID) (ledger.Argument, ledger.TypeTag, error) {
	obj, err := r.Ref(ctx, id)
	if err != nil {
		return ledger.Argument{}, ledger.TypeTag{}, err
	}
	if obj.Owner.IsShared() {
		return ledger.Argument{}, ledger.TypeTag{}, fmt.Errorf("%w: object %s is shared, expected an owned object", ledgererr.ErrInvalidArgument, id)
	}
	ref := obj.Ref
	ref.ID = id
	return callarg.Object(ref), obj.Type, nil
}

// Load fetches the object and decodes its contents into out.
func (r *Resolver) Load(ctx context.Context, id ledger.ObjectID, out any) (*ledger.Object, error) {
	obj, err := r.Ref(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = callarg.Decode(obj.Contents, out); err != nil {
		return nil, fmt.Errorf("object %s: %w", id, err)
	}
	return obj, nil
}
