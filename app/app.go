package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/anyproto/any-trail/app/logger"
)

var (
	// values of these vars are set at build time
	GitCommit, GitBranch, GitSummary, BuildDate string
)

var log = logger.NewNamed("app")

// Component is a unit registered in the App
type Component interface {
	// Init is called in registration order; a non-nil error aborts the start
	Init(a *App) (err error)
	// Name must return a unique component name
	Name() (name string)
}

// ComponentRunnable is a component with a lifecycle
type ComponentRunnable interface {
	Component
	// Run is called after every component was initialized
	Run(ctx context.Context) (err error)
	// Close is called on shutdown in reverse order, and on a failed start
	Close(ctx context.Context) (err error)
}

// App holds the registered components and drives their lifecycle
type App struct {
	components []Component
	mu         sync.RWMutex
	startedAt  time.Time
}

func VersionDescription() string {
	return fmt.Sprintf("build on %s from %s at #%s (%s)", BuildDate, GitBranch, GitCommit, GitSummary)
}

// Register adds a component; components start in registration order
func (app *App) Register(s Component) *App {
	app.mu.Lock()
	defer app.mu.Unlock()
	for _, es := range app.components {
		if s.Name() == es.Name() {
			panic(fmt.Errorf("component '%s' already registered", s.Name()))
		}
	}
	app.components = append(app.components, s)
	return app
}

// Component returns the component by name or nil
func (app *App) Component(name string) Component {
	app.mu.RLock()
	defer app.mu.RUnlock()
	for _, s := range app.components {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// MustComponent is like Component, but panics when the component is missing
func (app *App) MustComponent(name string) Component {
	s := app.Component(name)
	if s == nil {
		panic(fmt.Errorf("component '%s' not registered", name))
	}
	return s
}

// MustComponent returns the first registered component implementing T
func MustComponent[T any](app *App) T {
	app.mu.RLock()
	defer app.mu.RUnlock()
	for _, s := range app.components {
		if v, ok := s.(T); ok {
			return v
		}
	}
	var empty T
	panic(fmt.Errorf("component with interface %T is not found", empty))
}

func (app *App) ComponentNames() (names []string) {
	app.mu.RLock()
	defer app.mu.RUnlock()
	names = make([]string, len(app.components))
	for i, c := range app.components {
		names[i] = c.Name()
	}
	return
}

// Start initializes and then runs all components
func (app *App) Start(ctx context.Context) (err error) {
	app.mu.RLock()
	defer app.mu.RUnlock()
	app.startedAt = time.Now()

	closeServices := func(idx int) {
		for i := idx; i >= 0; i-- {
			if serviceClose, ok := app.components[i].(ComponentRunnable); ok {
				if e := serviceClose.Close(ctx); e != nil {
					log.Info("close error", zap.String("component", serviceClose.Name()), zap.Error(e))
				}
			}
		}
	}

	for i, s := range app.components {
		if err = s.Init(app); err != nil {
			closeServices(i)
			return fmt.Errorf("can't init service '%s': %w", s.Name(), err)
		}
	}

	for i, s := range app.components {
		if serviceRun, ok := s.(ComponentRunnable); ok {
			if err = serviceRun.Run(ctx); err != nil {
				closeServices(i)
				return fmt.Errorf("can't run service '%s': %w", serviceRun.Name(), err)
			}
		}
	}
	log.Debug("all components started", zap.Duration("spent", time.Since(app.startedAt)))
	return
}

// Close closes runnable components in reverse order
func (app *App) Close(ctx context.Context) error {
	app.mu.RLock()
	defer app.mu.RUnlock()
	var errs []string
	for i := len(app.components) - 1; i >= 0; i-- {
		if serviceClose, ok := app.components[i].(ComponentRunnable); ok {
			if e := serviceClose.Close(ctx); e != nil {
				errs = append(errs, fmt.Sprintf("component '%s' close error: %v", serviceClose.Name(), e))
			}
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "\n"))
	}
	log.Debug("all components have been closed")
	return nil
}
