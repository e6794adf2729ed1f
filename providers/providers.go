package providers

import (
	"context"
	"net/http"

	"assetbot/models"

	"go.uber.org/zap"
)

//go:generate mockgen -source=providers.go -destination=mock_providers.go -package=providers

type ConfigProvider interface {
	LoadEnv() error
	GetServerPort() string
	GetSnipeITURL() string
	GetSnipeITAPIKey() string
	GetOpenAIAPIKey() string
	GetOpenAIModel() string
	GetBotAppID() string
	GetBotAppPassword() string
	GetCarrierDataDir() string
	GetDebugDumpDir() string
	IsDebug() bool
	IsBotAuthEnabled() bool
	RefreshInventoryPerTurn() bool
}

type ZapLoggerProvider interface {
	InitLogger(debug bool)
	SyncLogger()
	GetLogger() *zap.Logger
}

type AuthMiddlewareService interface {
	BotAuthMiddleware() func(http.Handler) http.Handler
}

// BotTokenProvider exchanges the bot's app credentials for a connector token.
type BotTokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

// BotConnectorProvider delivers reply activities to a channel.
type BotConnectorProvider interface {
	SendReply(ctx context.Context, serviceURL, token string, reply models.ReplyActivity) error
}
