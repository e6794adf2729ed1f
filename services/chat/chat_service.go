package chat

import (
	"context"

	"assetbot/models"
	"assetbot/providers"
	"assetbot/services/completion"
	"assetbot/services/snapshot"
	"assetbot/services/summary"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate mockgen -source=chat_service.go -destination=mock_chat_service.go -package=chat

type ChatService interface {
	HandleMessage(ctx context.Context, event models.ChatEvent) error
}

type chatService struct {
	snapshot   *models.Snapshot
	refresher  snapshot.InventorySource
	completion completion.Client
	tokens     providers.BotTokenProvider
	connector  providers.BotConnectorProvider
	logger     *zap.Logger
}

// NewChatService answers message activities from snap. When refresher is
// non-nil the inventory part of snap is re-fetched on every turn; carrier
// data always comes from snap.
func NewChatService(
	snap *models.Snapshot,
	refresher snapshot.InventorySource,
	completionClient completion.Client,
	tokens providers.BotTokenProvider,
	connector providers.BotConnectorProvider,
	logger *zap.Logger,
) ChatService {
	return &chatService{
		snapshot:   snap,
		refresher:  refresher,
		completion: completionClient,
		tokens:     tokens,
		connector:  connector,
		logger:     logger,
	}
}

// HandleMessage runs one chat turn: summarize, complete, fetch a bot token,
// post the reply. A completion failure still produces a reply.
func (s *chatService) HandleMessage(ctx context.Context, event models.ChatEvent) error {
	log := s.logger.With(
		zap.String("turn_id", uuid.NewString()),
		zap.String("conversation_id", event.Conversation.ID),
		zap.String("activity_id", event.ID))
	log.Info("chat turn received")

	inv := s.snapshot.InventorySnapshot
	if s.refresher != nil {
		fresh, err := s.refresher.FetchInventory(ctx)
		if err != nil {
			log.Error("inventory refresh failed", zap.Error(err))
			return errors.Wrap(err, "refresh inventory")
		}
		inv = fresh
	}

	hints := summary.ParseQueryHints(event.Text)
	prompt := completion.Prompt{
		AssetSummary:    summary.SummarizeAssets(inv.Assets, inv.ModelFields, hints),
		CarrierSummary:  summary.SummarizeCarriers(s.snapshot.Carriers, summary.Options{}),
		CategorySummary: summary.SummarizeCategories(inv.Categories, summary.Options{}),
		Question:        event.Text,
	}

	answer := s.completion.Complete(ctx, prompt)
	if answer.Failed {
		log.Warn("completion failed, replying with error text", zap.String("text", answer.Text))
	}

	token, err := s.tokens.GetToken(ctx)
	if err != nil {
		log.Error("bot token request failed", zap.Error(err))
		return errors.Wrap(err, "azure token authentication failed")
	}

	if err := s.connector.SendReply(ctx, event.ServiceURL, token, models.NewReply(event, answer.Text)); err != nil {
		log.Error("reply post failed", zap.Error(err))
		return errors.Wrap(err, "send reply")
	}
	log.Info("chat turn replied", zap.Bool("completion_failed", answer.Failed))
	return nil
}
