package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogFormat int

const (
	ColorizedOutput LogFormat = iota
	PlaintextOutput
	JSONOutput
)

type NamedLevel struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
}

type Config struct {
	Production   bool         `yaml:"production"`
	DefaultLevel string       `yaml:"defaultLevel"`
	Levels       []NamedLevel `yaml:"levels"` // first match wins
	OutputPaths  []string     `yaml:"outputPaths"`
	Format       LogFormat    `yaml:"format"`
}

// ApplyGlobal builds the root logger from the config and re-targets all named loggers
func (l Config) ApplyGlobal() {
	var conf zap.Config
	if l.Production {
		conf = zap.NewProductionConfig()
	} else {
		conf = zap.NewDevelopmentConfig()
	}
	enc := conf.EncoderConfig
	switch l.Format {
	case PlaintextOutput:
		enc.EncodeLevel = zapcore.CapitalLevelEncoder
		conf.Encoding = "console"
	case JSONOutput:
		enc.MessageKey = "msg"
		enc.TimeKey = "ts"
		enc.LevelKey = "level"
		enc.NameKey = "logger"
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		conf.Encoding = "json"
	default:
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		conf.Encoding = "console"
	}
	conf.EncoderConfig = enc
	conf.OutputPaths = append(conf.OutputPaths, l.OutputPaths...)
	if lvl, err := zap.ParseAtomicLevel(l.DefaultLevel); err == nil {
		conf.Level = lvl
	}
	lg, err := conf.Build()
	if err != nil {
		Default().Fatal("can't build logger", zap.Error(err))
	}
	mu.Lock()
	loggerConfig = conf
	mu.Unlock()
	SetDefault(lg)
	SetNamedLevels(l.Levels)
}

// LevelsFromStr parses "name1=DEBUG;prefix*=WARN;ERROR" into named levels.
// An entry without a name applies to every logger. Invalid levels are skipped
func LevelsFromStr(s string) (levels []NamedLevel) {
	for _, kv := range strings.Split(s, ";") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		name, level, found := strings.Cut(kv, "=")
		if !found {
			name, level = "*", kv
		}
		if _, err := zap.ParseAtomicLevel(level); err != nil {
			continue
		}
		levels = append(levels, NamedLevel{Name: name, Level: level})
	}
	return
}
