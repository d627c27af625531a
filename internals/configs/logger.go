package configs

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log adalah logger global; aman dipakai sebelum LoadEnv (default: nop).
var Log = zap.NewNop().Sugar()

func InitLogger(env string) {
	var (
		base *zap.Logger
		err  error
	)
	if env == "production" {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		base, err = cfg.Build()
	} else {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		base, err = cfg.Build()
	}
	if err != nil {
		base = zap.NewExample()
	}
	Log = base.Sugar()
}

// SyncLogger flush buffer logger saat shutdown.
func SyncLogger() {
	_ = Log.Sync()
}
