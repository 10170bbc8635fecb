package logconfig

import (
	"github.com/vitoraqdev/SalesOrderManagement/configs/envconfig"

	"go.uber.org/zap"
)

// Nop until InitLogger runs, so packages can log unconditionally.
var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

func InitLogger() {
	var cfg zap.Config
	if envconfig.IsProd() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic("logger could not be initialized: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

func SyncLogger() {
	_ = Log.Sync()
}
