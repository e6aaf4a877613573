package txwrapper

import (
	"context"
	"errors"
	"fmt"

	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/callarg"
	"github.com/anyproto/any-trail/ledger/ledgererr"
	"github.com/anyproto/any-trail/ledger/objectref"
)

// FindEvent decodes the first event matching E. When kind is not empty only
// events with that struct name are tried.
func FindEvent[E any](events []ledger.Event, kind string) (ev E, err error) {
	for _, e := range events {
		if kind != "" && e.Type.Name != kind {
			continue
		}
		var candidate E
		if callarg.Decode(e.Contents, &candidate) == nil {
			return candidate, nil
		}
	}
	if kind == "" {
		kind = fmt.Sprintf("%T", ev)
	}
	err = fmt.Errorf("%w: event %s not found", ledgererr.ErrUnexpectedResponse, kind)
	return
}

// FindCreated loads created objects as O and returns the first one accepted by match.
// Objects that can't be decoded as O are skipped.
func FindCreated[O any](ctx context.Context, reader ledger.Reader, effects ledger.Effects, match func(id ledger.ObjectID, obj O) bool) (id ledger.ObjectID, obj O, err error) {
	objects := objectref.New(reader)
	for _, created := range effects.Created {
		var candidate O
		if _, err = objects.Load(ctx, created.Ref.ID, &candidate); err != nil {
			if errors.Is(err, ledgererr.ErrDeserialization) {
				continue
			}
			return
		}
		if match == nil || match(created.Ref.ID, candidate) {
			return created.Ref.ID, candidate, nil
		}
	}
	err = fmt.Errorf("%w: no created %T matches the request", ledgererr.ErrUnexpectedResponse, obj)
	return
}

// Simulate runs a read-only call and decodes its single return value.
func Simulate[T any](ctx context.Context, reader ledger.Reader, sender ledger.Address, payload *ledger.CallPayload) (out T, err error) {
	res, err := reader.Simulate(ctx, sender, payload)
	if err != nil {
		err = fmt.Errorf("%s: simulate: %w", payload.Target(), ledgererr.Relay(err))
		return
	}
	if res == nil {
		err = fmt.Errorf("%w: %s: empty simulation result", ledgererr.ErrUnexpectedResponse, payload.Target())
		return
	}
	if !res.Status.Success {
		err = fmt.Errorf("%w: %s: %s", ledgererr.ErrExecution, payload.Target(), res.Status.Error)
		return
	}
	if len(res.ReturnValues) != 1 {
		err = fmt.Errorf("%w: %s: expected one return value, got %d", ledgererr.ErrUnexpectedResponse, payload.Target(), len(res.ReturnValues))
		return
	}
	if err = callarg.Decode(res.ReturnValues[0], &out); err != nil {
		err = fmt.Errorf("%s: return value: %w", payload.Target(), err)
	}
	return
}
