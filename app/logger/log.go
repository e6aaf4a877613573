package logger

import (
	"sync"

	"github.com/gobwas/glob"
	"go.uber.org/zap"
)

var (
	mu           sync.Mutex
	logger       *zap.Logger
	loggerConfig zap.Config
	namedLevels  []namedLevel
	namedLoggers = make(map[string]CtxLogger)
)

type namedLevel struct {
	name  string
	glob  glob.Glob
	level zap.AtomicLevel
}

func init() {
	loggerConfig = zap.NewDevelopmentConfig()
	logger, _ = loggerConfig.Build()
}

// SetDefault replaces the root logger, existing named loggers keep the old core
// until SetNamedLevels is called
func SetDefault(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	*logger = *l
}

func Default() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// SetNamedLevels sets per-name levels; names may be glob patterns like "ledger.*"
func SetNamedLevels(nls []NamedLevel) {
	mu.Lock()
	defer mu.Unlock()
	namedLevels = namedLevels[:0]

	minLevel := logger.Level()
	for _, nl := range nls {
		l, err := zap.ParseAtomicLevel(nl.Level)
		if err != nil {
			continue
		}
		lvl := namedLevel{name: nl.Name, level: l}
		if g, err := glob.Compile(nl.Name); err == nil {
			lvl.glob = g
		}
		namedLevels = append(namedLevels, lvl)
		if l.Level() < minLevel {
			minLevel = l.Level()
		}
	}
	if minLevel < logger.Level() {
		// the root core filters before named loggers do, so it has to go down to the lowest level
		loggerConfig.Level = zap.NewAtomicLevelAt(minLevel)
		logger, _ = loggerConfig.Build()
	}
	for name, nl := range namedLoggers {
		*(nl.Logger) = *zap.New(logger.Core()).Named(name).WithOptions(zap.IncreaseLevel(getLevel(name)))
	}
}

// getLevel returns the level of the first exact or glob match
func getLevel(name string) zap.AtomicLevel {
	for _, nl := range namedLevels {
		if nl.name == name || nl.glob != nil && nl.glob.Match(name) {
			return nl.level
		}
	}
	return zap.NewAtomicLevelAt(logger.Level())
}

// NewNamed returns the logger registered under name, creating it on first use
func NewNamed(name string, fields ...zap.Field) CtxLogger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := namedLoggers[name]; ok {
		return l
	}
	l := zap.New(logger.Core()).Named(name).WithOptions(zap.IncreaseLevel(getLevel(name)), zap.Fields(fields...))
	ctxL := CtxLogger{Logger: l, name: name}
	namedLoggers[name] = ctxL
	return ctxL
}
