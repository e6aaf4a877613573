// Package capability finds the credential a principal holds for a target object.
package capability

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/anyproto/any-trail/app/logger"
	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/callarg"
	"github.com/anyproto/any-trail/ledger/ledgererr"
	"github.com/anyproto/any-trail/ledger/objectref"
)

var log = logger.NewNamed("ledger.capability")

var ErrAmbiguousCapability = fmt.Errorf("%w: ambiguous capability", ledgererr.ErrInvalidArgument)

var errNotFound = errors.New("no capability found")

// Capability is the decoded contents of a capability object.
type Capability interface {
	// TargetKey returns the id of the object the capability authorizes against
	TargetKey() ledger.ObjectID
}

// New returns a resolver scanning owned objects of capType, decoded as C.
func New[C Capability](reader ledger.Reader, capType ledger.TypeTag) *Resolver[C] {
	return &Resolver[C]{
		reader:  reader,
		objects: objectref.New(reader),
		capType: capType,
	}
}

type Resolver[C Capability] struct {
	reader  ledger.Reader
	objects *objectref.Resolver
	capType ledger.TypeTag
}

// Find resolves the single capability owned by owner targeting target.
func (r *Resolver[C]) Find(ctx context.Context, owner ledger.Address, target ledger.ObjectID) (ledger.Argument, error) {
	ids, err := r.scan(ctx, owner, target)
	if err != nil {
		return ledger.Argument{}, err
	}
	switch len(ids) {
	case 0:
		return ledger.Argument{}, fmt.Errorf("%w: %w for owner %s and target %s", ledgererr.ErrInvalidArgument, errNotFound, owner, target)
	case 1:
	default:
		candidates := make([]string, len(ids))
		for i, id := range ids {
			candidates[i] = id.String()
		}
		log.Warn("owner holds several capabilities for target",
			zap.String("owner", owner.String()),
			zap.String("target", target.String()),
			zap.Strings("candidates", candidates))
		return ledger.Argument{}, fmt.Errorf("%w for owner %s and target %s: %s", ErrAmbiguousCapability, owner, target, strings.Join(candidates, ", "))
	}
	arg, _, err := r.objects.Owned(ctx, ids[0])
	if err != nil {
		return ledger.Argument{}, fmt.Errorf("capability %s: %w", ids[0], err)
	}
	log.Debug("capability resolved", zap.String("capabilityId", ids[0].String()), zap.String("target", target.String()))
	return arg, nil
}

// List returns every capability owned by owner, keyed by the capability id.
func (r *Resolver[C]) List(ctx context.Context, owner ledger.Address) (map[ledger.ObjectID]C, error) {
	res := make(map[ledger.ObjectID]C)
	err := r.iterate(ctx, owner, func(id ledger.ObjectID, c C) {
		res[id] = c
	})
	return res, err
}

func (r *Resolver[C]) scan(ctx context.Context, owner ledger.Address, target ledger.ObjectID) (ids []ledger.ObjectID, err error) {
	err = r.iterate(ctx, owner, func(id ledger.ObjectID, c C) {
		if c.TargetKey() == target {
			ids = append(ids, id)
		}
	})
	return
}

func (r *Resolver[C]) iterate(ctx context.Context, owner ledger.Address, f func(id ledger.ObjectID, c C)) error {
	var cursor *ledger.ObjectID
	for {
		page, err := r.reader.GetOwnedObjects(ctx, owner, &r.capType, cursor)
		if err != nil {
			return fmt.Errorf("owned objects of %s: %w", owner, ledgererr.Relay(err))
		}
		if page == nil {
			return fmt.Errorf("%w: empty owned objects page for %s", ledgererr.ErrUnexpectedResponse, owner)
		}
		for _, obj := range page.Objects {
			if obj == nil {
				return fmt.Errorf("%w: nil object in owned objects page of %s", ledgererr.ErrUnexpectedResponse, owner)
			}
			if !obj.Type.SameStruct(r.capType) {
				continue
			}
			var c C
			if err = callarg.Decode(obj.Contents, &c); err != nil {
				return fmt.Errorf("capability %s: %w", obj.Ref.ID, err)
			}
			f(obj.Ref.ID, c)
		}
		if !page.HasNextPage || page.NextCursor == nil {
			return nil
		}
		if cursor != nil && *cursor == *page.NextCursor {
			return fmt.Errorf("%w: owned objects cursor of %s does not advance", ledgererr.ErrUnexpectedResponse, owner)
		}
		cursor = page.NextCursor
	}
}
