package loggerProvider

import (
	"log"

	"assetbot/providers"

	"go.uber.org/zap"
)

type LogProvider struct {
	logger *zap.Logger
}

func NewLogProvider() providers.ZapLoggerProvider {
	return &LogProvider{}
}

// InitLogger builds a development logger in debug mode and a JSON production
// logger otherwise, and installs it as the zap global.
func (l *LogProvider) InitLogger(debug bool) {
	var err error
	if debug {
		l.logger, err = zap.NewDevelopment()
	} else {
		l.logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	zap.ReplaceGlobals(l.logger)
}

func (l *LogProvider) SyncLogger() {
	if l.logger != nil {
		_ = l.logger.Sync()
	}
}

func (l *LogProvider) GetLogger() *zap.Logger {
	if l.logger == nil {
		return zap.NewNop()
	}
	return l.logger
}
