package metric

import (
	"context"
	"time"

	"go.uber.org/zap"
)

func Method(val string) zap.Field {
	return zap.String("rpc", val)
}

func TotalDur(val time.Duration) zap.Field {
	return zap.Int64("totalMs", val.Milliseconds())
}

func ObjectId(val string) zap.Field {
	return zap.String("objectId", val)
}

func Address(val string) zap.Field {
	return zap.String("address", val)
}

func Function(val string) zap.Field {
	return zap.String("function", val)
}

func (m *metric) RequestLog(ctx context.Context, fields ...zap.Field) {
	m.rpcLog.InfoCtx(ctx, "", fields...)
}
