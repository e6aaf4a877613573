// Package txwrapper binds a composed call to the decoding of its outcome.
package txwrapper

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/anyproto/any-trail/app/logger"
	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/ledgererr"
)

var log = logger.NewNamed("ledger.txwrapper")

// BuildFunc composes the payload of the operation.
type BuildFunc func(ctx context.Context, reader ledger.Reader) (*ledger.CallPayload, error)

// ApplyFunc turns a successful execution into the operation result.
type ApplyFunc[T any] func(ctx context.Context, res *ledger.ExecutionResult, reader ledger.Reader) (T, error)

// Transaction is one operation. The payload is composed at most once and
// shared by all callers of Build; a failed composition is retried on the next call.
type Transaction[T any] struct {
	name  string
	opId  string
	build BuildFunc
	apply ApplyFunc[T]

	payload atomic.Pointer[ledger.CallPayload]
	group   singleflight.Group
}

func New[T any](name string, build BuildFunc, apply ApplyFunc[T]) *Transaction[T] {
	return &Transaction[T]{
		name:  name,
		opId:  uuid.NewString(),
		build: build,
		apply: apply,
	}
}

func (tx *Transaction[T]) Name() string {
	return tx.name
}

// OperationID identifies the operation in logs
func (tx *Transaction[T]) OperationID() string {
	return tx.opId
}

func (tx *Transaction[T]) ctx(ctx context.Context) context.Context {
	return logger.CtxWithFields(ctx, zap.String("op", tx.name), zap.String("opId", tx.opId))
}

// Build returns the memoized payload, composing it on first use.
// Concurrent callers share one composition running with the first caller's ctx,
// so they all get its error, including cancellation; the next call retries.
func (tx *Transaction[T]) Build(ctx context.Context, reader ledger.Reader) (*ledger.CallPayload, error) {
	if p := tx.payload.Load(); p != nil {
		return p, nil
	}
	ctx = tx.ctx(ctx)
	res, err, shared := tx.group.Do(tx.opId, func() (any, error) {
		if p := tx.payload.Load(); p != nil {
			return p, nil
		}
		p, err := tx.build(ctx, reader)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("%w: empty payload", ledgererr.ErrUnexpectedResponse)
		}
		tx.payload.Store(p)
		return p, nil
	})
	if err != nil {
		log.WarnCtx(ctx, "build failed", zap.Error(err))
		return nil, fmt.Errorf("%s: build: %w", tx.name, err)
	}
	log.DebugCtx(ctx, "payload built", zap.Bool("shared", shared))
	return res.(*ledger.CallPayload), nil
}

// Apply checks the execution status and decodes the result.
func (tx *Transaction[T]) Apply(ctx context.Context, res *ledger.ExecutionResult, reader ledger.Reader) (out T, err error) {
	if res == nil {
		err = fmt.Errorf("%w: %s: empty execution result", ledgererr.ErrUnexpectedResponse, tx.name)
		return
	}
	if !res.Effects.Status.Success {
		err = fmt.Errorf("%w: %s: %s", ledgererr.ErrExecution, tx.name, res.Effects.Status.Error)
		return
	}
	if out, err = tx.apply(tx.ctx(ctx), res, reader); err != nil {
		err = fmt.Errorf("%s: apply: %w", tx.name, err)
	}
	return
}

// Execute builds the payload, submits it and applies the result.
func Execute[T any](ctx context.Context, tx *Transaction[T], executor ledger.Executor, reader ledger.Reader) (out T, err error) {
	payload, err := tx.Build(ctx, reader)
	if err != nil {
		return
	}
	ctx = tx.ctx(ctx)
	res, err := executor.Execute(ctx, payload)
	if err != nil {
		err = fmt.Errorf("%s: execute: %w", tx.name, ledgererr.Relay(err))
		return
	}
	if res != nil {
		log.InfoCtx(ctx, "executed", zap.String("digest", res.Digest.String()), zap.Bool("success", res.Effects.Status.Success))
	}
	return tx.Apply(ctx, res, reader)
}
