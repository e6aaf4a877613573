package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGetLevel(t *testing.T) {
	t.Run("first match wins", func(t *testing.T) {
		SetNamedLevels([]NamedLevel{
			{Name: "ledger", Level: "debug"},
			{Name: "ledger.*", Level: "info"},
			{Name: "ledger.linkedtable", Level: "warn"},
			{Name: "*", Level: "fatal"},
		})
		tests := map[string]zap.AtomicLevel{
			"ledger":             zap.NewAtomicLevelAt(zap.DebugLevel),
			"ledger.callarg":     zap.NewAtomicLevelAt(zap.InfoLevel),
			"ledger.linkedtable": zap.NewAtomicLevelAt(zap.InfoLevel),
			"random":             zap.NewAtomicLevelAt(zap.FatalLevel),
		}
		for name, want := range tests {
			assert.Equal(t, want.Level(), getLevel(name).Level(), name)
		}
	})
	t.Run("invalid levels skipped", func(t *testing.T) {
		SetNamedLevels([]NamedLevel{
			{Name: "*", Level: "invalid"},
			{Name: "app", Level: "info"},
		})
		assert.Equal(t, zap.InfoLevel, getLevel("app").Level())
		assert.Equal(t, logger.Level(), getLevel("other").Level())
	})
}

func TestLevelsFromStr(t *testing.T) {
	levels := LevelsFromStr("ledger.*=DEBUG; app=warn;ERROR;bad=nope;")
	assert.Equal(t, []NamedLevel{
		{Name: "ledger.*", Level: "DEBUG"},
		{Name: "app", Level: "warn"},
		{Name: "*", Level: "ERROR"},
	}, levels)
}

func TestCtxWithFields(t *testing.T) {
	ctx := CtxWithFields(context.Background(), zap.String("op", "add_record"))
	ctx = CtxWithFields(ctx, zap.String("trail", "0x1"))
	fields := CtxGetFields(ctx)
	assert.Len(t, fields, 2)
	assert.Equal(t, "op", fields[0].Key)
	assert.Equal(t, "trail", fields[1].Key)
	assert.Empty(t, CtxGetFields(context.Background()))
}

func TestNewNamed(t *testing.T) {
	a := NewNamed("test.named")
	b := NewNamed("test.named")
	assert.Same(t, a.Logger, b.Logger)
}
