package metric

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/anyproto/any-trail/app"
	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/mock_ledger"
)

var ctx = context.Background()

type testConfig struct{}

func (testConfig) Init(a *app.App) error { return nil }
func (testConfig) Name() string          { return "config" }
func (testConfig) GetMetric() Config     { return Config{} }

func newFixture(t *testing.T) *fixture {
	fx := &fixture{
		ctrl:   gomock.NewController(t),
		metric: New().(*metric),
	}
	a := new(app.App)
	a.Register(testConfig{}).Register(fx.metric)
	require.NoError(t, a.Start(ctx))
	t.Cleanup(func() {
		require.NoError(t, a.Close(ctx))
	})
	return fx
}

type fixture struct {
	ctrl   *gomock.Controller
	metric *metric
}

func TestMetric_WrapReader(t *testing.T) {
	fx := newFixture(t)
	reader := mock_ledger.NewMockReader(fx.ctrl)
	id := ledger.MustObjectID("0x1")
	obj := &ledger.Object{Ref: ledger.ObjectRef{ID: id, Version: 3}}
	reader.EXPECT().GetObject(gomock.Any(), id).Return(obj, nil)
	reader.EXPECT().GetObject(gomock.Any(), id).Return(nil, errors.New("unavailable"))

	wrapped := fx.metric.WrapReader(reader)
	res, err := wrapped.GetObject(ctx, id)
	require.NoError(t, err)
	assert.Same(t, obj, res)
	_, err = wrapped.GetObject(ctx, id)
	assert.Error(t, err)

	assert.Equal(t, 1, testutil.CollectAndCount(fx.metric.callDuration))
}

func TestMetric_WrapExecutor(t *testing.T) {
	fx := newFixture(t)
	executor := mock_ledger.NewMockExecutor(fx.ctrl)
	call := &ledger.CallPayload{Module: "audit_trail", Function: "add_record"}
	executor.EXPECT().Execute(gomock.Any(), call).Return(&ledger.ExecutionResult{Effects: ledger.Effects{Status: ledger.ExecutionStatus{Success: true}}}, nil)
	executor.EXPECT().Execute(gomock.Any(), call).Return(&ledger.ExecutionResult{Effects: ledger.Effects{Status: ledger.ExecutionStatus{Error: "abort 3"}}}, nil)
	executor.EXPECT().Execute(gomock.Any(), call).Return(nil, errors.New("timeout"))

	wrapped := fx.metric.WrapExecutor(executor)
	for i := 0; i < 3; i++ {
		_, _ = wrapped.Execute(ctx, call)
	}
	for _, outcome := range []string{"success", "failure", "error"} {
		assert.Equal(t, float64(1), testutil.ToFloat64(fx.metric.executions.WithLabelValues("audit_trail::add_record", outcome)), outcome)
	}
}

func TestMetric_Nil(t *testing.T) {
	var m *metric
	reader := mock_ledger.NewMockReader(gomock.NewController(t))
	assert.Equal(t, ledger.Reader(reader), m.WrapReader(reader))
}
