package server

import (
	"context"
	"net/http"
	"time"

	"assetbot/models"
	"assetbot/providers"
	botprovider "assetbot/providers/botProvider"
	configprovider "assetbot/providers/configProvider"
	"assetbot/providers/loggerProvider"
	"assetbot/providers/middlewareprovider"
	"assetbot/services/carrier"
	"assetbot/services/chat"
	"assetbot/services/completion"
	"assetbot/services/inventory"
	"assetbot/services/snapshot"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// outbound calls have no retry; this only bounds a hung connection.
const outboundTimeout = 2 * time.Minute

type Server struct {
	Config      providers.ConfigProvider
	Logger      providers.ZapLoggerProvider
	Middleware  providers.AuthMiddlewareService
	Snapshot    *models.Snapshot
	ChatHandler *chat.ChatHandler
	httpServer  *http.Server
}

// ServerInit loads configuration, fetches the reference data once and wires
// the chat handler. Any error here is fatal for the process.
func ServerInit(ctx context.Context) (*Server, error) {
	cfg := configprovider.NewConfigProvider()
	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}

	logProvider := loggerProvider.NewLogProvider()
	logProvider.InitLogger(cfg.IsDebug())
	logger := logProvider.GetLogger()

	httpClient := &http.Client{Timeout: outboundTimeout}

	// reference data
	inventoryClient := inventory.NewClient(cfg.GetSnipeITURL(), cfg.GetSnipeITAPIKey(), httpClient, logger)
	normalizer := carrier.NewNormalizer(cfg.GetCarrierDataDir(), carrier.DefaultVendorFiles, logger)
	loader := snapshot.NewLoader(inventoryClient, normalizer, cfg.IsDebug(), cfg.GetDebugDumpDir(), logger)

	snap, err := loader.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load reference data")
	}

	var refresher snapshot.InventorySource
	if cfg.RefreshInventoryPerTurn() {
		refresher = loader
	}

	// middleware
	var middleware providers.AuthMiddlewareService
	if cfg.IsBotAuthEnabled() {
		middleware, err = middlewareprovider.NewBotAuthMiddleware(cfg.GetBotAppID(), logger)
		if err != nil {
			return nil, err
		}
	} else {
		middleware = middlewareprovider.NewNoopAuthMiddleware()
	}

	// services
	completionClient := completion.NewClient(cfg.GetOpenAIAPIKey(), cfg.GetOpenAIModel(), "", logger)
	tokens := botprovider.NewBotTokenProvider(cfg.GetBotAppID(), cfg.GetBotAppPassword(), botprovider.DefaultTokenURL, httpClient)
	connector := botprovider.NewBotConnectorProvider(httpClient)
	chatService := chat.NewChatService(snap, refresher, completionClient, tokens, connector, logger)

	// handlers
	chatHandler := chat.NewChatHandler(chatService, logProvider)

	return &Server{
		Config:      cfg,
		Logger:      logProvider,
		Middleware:  middleware,
		Snapshot:    snap,
		ChatHandler: chatHandler,
	}, nil
}

func (s *Server) Start() {
	addr := ":" + s.Config.GetServerPort()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.InjectRoutes(),
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	s.Logger.GetLogger().Info("server running", zap.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.Logger.GetLogger().Fatal("server error", zap.Error(err))
	}
}

func (s *Server) Stop() {
	s.Logger.GetLogger().Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.Logger.GetLogger().Error("error shutting down server", zap.Error(err))
		}
	}
	s.Logger.SyncLogger()
}
