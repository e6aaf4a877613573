package metric

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/anyproto/any-trail/ledger"
)

// WrapReader returns a reader observing the duration of every request.
// A nil metric returns r unchanged.
func (m *metric) WrapReader(r ledger.Reader) ledger.Reader {
	if m == nil {
		return r
	}
	return &prometheusReader{Reader: r, m: m}
}

// WrapExecutor returns an executor counting executions by function and outcome.
func (m *metric) WrapExecutor(e ledger.Executor) ledger.Executor {
	if m == nil {
		return e
	}
	return &prometheusExecutor{Executor: e, m: m}
}

func (m *metric) observe(ctx context.Context, method string, st time.Time, err error, fields ...zap.Field) {
	dur := time.Since(st)
	m.callDuration.WithLabelValues(method).Observe(dur.Seconds())
	fields = append(fields, Method(method), TotalDur(dur))
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	m.RequestLog(ctx, fields...)
}

type prometheusReader struct {
	ledger.Reader
	m *metric
}

func (pr *prometheusReader) GetObject(ctx context.Context, id ledger.ObjectID) (obj *ledger.Object, err error) {
	st := time.Now()
	defer func() { pr.m.observe(ctx, "getObject", st, err, ObjectId(id.String())) }()
	return pr.Reader.GetObject(ctx, id)
}

func (pr *prometheusReader) GetOwnedObjects(ctx context.Context, owner ledger.Address, filter *ledger.TypeTag, cursor *ledger.ObjectID) (page *ledger.OwnedObjectsPage, err error) {
	st := time.Now()
	defer func() { pr.m.observe(ctx, "getOwnedObjects", st, err, Address(owner.String())) }()
	return pr.Reader.GetOwnedObjects(ctx, owner, filter, cursor)
}

func (pr *prometheusReader) GetDynamicField(ctx context.Context, parent ledger.ObjectID, name ledger.DynamicFieldName) (obj *ledger.Object, err error) {
	st := time.Now()
	defer func() { pr.m.observe(ctx, "getDynamicField", st, err, ObjectId(parent.String())) }()
	return pr.Reader.GetDynamicField(ctx, parent, name)
}

func (pr *prometheusReader) Simulate(ctx context.Context, sender ledger.Address, call *ledger.CallPayload) (res *ledger.SimulationResult, err error) {
	st := time.Now()
	defer func() { pr.m.observe(ctx, "simulate", st, err, Function(call.Target())) }()
	return pr.Reader.Simulate(ctx, sender, call)
}

type prometheusExecutor struct {
	ledger.Executor
	m *metric
}

func (pe *prometheusExecutor) Execute(ctx context.Context, call *ledger.CallPayload) (res *ledger.ExecutionResult, err error) {
	st := time.Now()
	defer func() {
		outcome := "success"
		switch {
		case err != nil || res == nil:
			outcome = "error"
		case !res.Effects.Status.Success:
			outcome = "failure"
		}
		pe.m.executions.WithLabelValues(call.Module+"::"+call.Function, outcome).Inc()
		pe.m.observe(ctx, "execute", st, err, Function(call.Target()))
	}()
	return pe.Executor.Execute(ctx, call)
}
