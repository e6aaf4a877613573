package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func TestApp_Registry(t *testing.T) {
	a := new(App)
	a.Register(newRunnable("config", nil)).
		Register(newComponent("ledger.reader", nil)).
		Register(newRunnable("metric", nil))

	assert.Nil(t, a.Component("missing"))
	assert.Equal(t, "ledger.reader", a.MustComponent("ledger.reader").Name())
	assert.Panics(t, func() { a.MustComponent("missing") })
	assert.Panics(t, func() { a.Register(newComponent("metric", nil)) })
	assert.Equal(t, []string{"config", "ledger.reader", "metric"}, a.ComponentNames())

	assert.Equal(t, "config", MustComponent[ComponentRunnable](a).Name())
	assert.Panics(t, func() { MustComponent[interface{ Missing() }](a) })
}

func TestApp_Start(t *testing.T) {
	t.Run("lifecycle order", func(t *testing.T) {
		var rec recorder
		a := new(App)
		a.Register(rec.runnable("config", nil)).
			Register(rec.component("ledger.reader", nil)).
			Register(rec.runnable("metric", nil))

		require.NoError(t, a.Start(ctx))
		require.NoError(t, a.Close(ctx))
		assert.Equal(t, []string{
			"init config", "init ledger.reader", "init metric",
			"run config", "run metric",
			"close metric", "close config",
		}, rec.events)
	})
	t.Run("init error", func(t *testing.T) {
		var rec recorder
		a := new(App)
		a.Register(rec.runnable("config", nil)).
			Register(rec.runnable("metric", errors.New("bad addr")))

		err := a.Start(ctx)
		require.Error(t, err)
		assert.ErrorContains(t, err, "can't init service 'metric'")
		assert.Equal(t, []string{"init config", "init metric", "close metric", "close config"}, rec.events)
	})
	t.Run("run error", func(t *testing.T) {
		var rec recorder
		a := new(App)
		a.Register(rec.runnable("config", nil)).
			Register(rec.component("ledger.reader", nil)).
			Register(&failingRun{rec.runnable("metric", nil)})

		err := a.Start(ctx)
		assert.ErrorContains(t, err, "can't run service 'metric'")
		assert.Equal(t, []string{
			"init config", "init ledger.reader", "init metric",
			"run config",
			"close metric", "close config",
		}, rec.events)
	})
	t.Run("close errors joined", func(t *testing.T) {
		a := new(App)
		a.Register(newRunnable("a", nil)).Register(&failingClose{newRunnable("b", nil)})
		require.NoError(t, a.Start(ctx))
		assert.ErrorContains(t, a.Close(ctx), "component 'b' close error")
	})
}

type recorder struct {
	events []string
}

func (r *recorder) add(event, name string) {
	if r != nil {
		r.events = append(r.events, event+" "+name)
	}
}

func (r *recorder) component(name string, initErr error) *testComponent {
	return &testComponent{name: name, initErr: initErr, rec: r}
}

func (r *recorder) runnable(name string, initErr error) *testRunnable {
	return &testRunnable{testComponent: r.component(name, initErr)}
}

func newComponent(name string, initErr error) *testComponent {
	return (*recorder)(nil).component(name, initErr)
}

func newRunnable(name string, initErr error) *testRunnable {
	return (*recorder)(nil).runnable(name, initErr)
}

type testComponent struct {
	name    string
	initErr error
	rec     *recorder
}

func (c *testComponent) Init(a *App) error {
	c.rec.add("init", c.name)
	return c.initErr
}

func (c *testComponent) Name() string { return c.name }

type testRunnable struct {
	*testComponent
}

func (r *testRunnable) Run(ctx context.Context) error {
	r.rec.add("run", r.name)
	return nil
}

func (r *testRunnable) Close(ctx context.Context) error {
	r.rec.add("close", r.name)
	return nil
}

type failingRun struct {
	*testRunnable
}

func (f *failingRun) Run(ctx context.Context) error {
	return errors.New("listen failed")
}

type failingClose struct {
	*testRunnable
}

func (f *failingClose) Close(ctx context.Context) error {
	return errors.New("busy")
}
