package chat

import (
	"net/http"

	"assetbot/models"
	"assetbot/providers"
	"assetbot/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ChatHandler struct {
	Service ChatService
	Logger  providers.ZapLoggerProvider
}

func NewChatHandler(service ChatService, logger providers.ZapLoggerProvider) *ChatHandler {
	return &ChatHandler{
		Service: service,
		Logger:  logger,
	}
}

// Chat receives a Bot Framework activity. Anything other than a message is
// acknowledged with {} and no further work. Every failure, including an
// unreadable body, is a 500.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var event models.ChatEvent
	if err := utils.ParseJSONBody(r, &event); err != nil {
		h.Logger.GetLogger().Error("invalid activity body", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, err, "invalid activity body")
		return
	}

	if !event.IsMessage() {
		h.Logger.GetLogger().Debug("ignoring non-message activity", zap.String("type", event.Type))
		utils.RespondJSON(w, http.StatusOK, struct{}{})
		return
	}

	if err := validator.New().Struct(event); err != nil {
		h.Logger.GetLogger().Error("invalid message activity", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, err, "invalid message activity")
		return
	}

	if err := h.Service.HandleMessage(r.Context(), event); err != nil {
		h.Logger.GetLogger().Error("chat turn failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, err, "chat turn failed")
		return
	}
	utils.RespondJSON(w, http.StatusOK, struct{}{})
}
