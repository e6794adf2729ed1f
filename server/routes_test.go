package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"assetbot/models"
	"assetbot/providers"
	"assetbot/services/chat"
	"assetbot/utils"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestServer(ctrl *gomock.Controller, service chat.ChatService, auth func(http.Handler) http.Handler) *Server {
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()
	mockAuth := providers.NewMockAuthMiddlewareService(ctrl)
	mockAuth.EXPECT().BotAuthMiddleware().Return(auth).AnyTimes()

	return &Server{
		Logger:     mockLogger,
		Middleware: mockAuth,
		Snapshot: &models.Snapshot{
			InventorySnapshot: models.InventorySnapshot{
				Assets: []models.AssetRecord{{ID: 1}, {ID: 2}},
			},
			Carriers: []models.CarrierRecord{{IMEI: "1"}},
		},
		ChatHandler: chat.NewChatHandler(service, mockLogger),
	}
}

func passThrough(next http.Handler) http.Handler { return next }

func TestHealthRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := newTestServer(ctrl, chat.NewMockChatService(ctrl), passThrough)
	rec := httptest.NewRecorder()

	srv.InjectRoutes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","assets":2,"carriers":1,"categories":0,"models":0}`, rec.Body.String())
}

func TestChatRoute(t *testing.T) {
	message := `{"type":"message","id":"a","text":"hi","serviceUrl":"https://smba.trafficmanager.net/amer/","conversation":{"id":"c"},"recipient":{"id":"b"},"from":{"id":"u"}}`
	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			utils.RespondError(w, http.StatusUnauthorized, nil, "unauthorized")
		})
	}

	testCases := []struct {
		name               string
		method             string
		auth               func(http.Handler) http.Handler
		expectServiceCall  bool
		mockServiceErr     error
		expectedStatusCode int
	}{
		{name: "reply sent", method: http.MethodPost, auth: passThrough, expectServiceCall: true, expectedStatusCode: http.StatusOK},
		{name: "turn failed", method: http.MethodPost, auth: passThrough, expectServiceCall: true, mockServiceErr: errors.New("token"), expectedStatusCode: http.StatusInternalServerError},
		{name: "rejected by auth", method: http.MethodPost, auth: deny, expectedStatusCode: http.StatusUnauthorized},
		{name: "wrong method", method: http.MethodGet, auth: passThrough, expectedStatusCode: http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := chat.NewMockChatService(ctrl)
			if tc.expectServiceCall {
				mockService.EXPECT().HandleMessage(gomock.Any(), gomock.Any()).Return(tc.mockServiceErr)
			}
			srv := newTestServer(ctrl, mockService, tc.auth)
			rec := httptest.NewRecorder()

			srv.InjectRoutes().ServeHTTP(rec, httptest.NewRequest(tc.method, "/chat", strings.NewReader(message)))

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
		})
	}
}
