package middlewareprovider

import (
	"net/http"
	"strings"

	"assetbot/providers"
	"assetbot/utils"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	BotFrameworkJWKSURL = "https://login.botframework.com/v1/.well-known/keys"
	BotFrameworkIssuer  = "https://api.botframework.com"
)

type BotAuthMiddleware struct {
	keyfunc  jwt.Keyfunc
	methods  []string
	audience string
	logger   *zap.Logger
}

// NewBotAuthMiddleware verifies inbound activities against the Bot Framework
// signing keys. The key set is refreshed in the background by keyfunc.
func NewBotAuthMiddleware(appID string, logger *zap.Logger) (providers.AuthMiddlewareService, error) {
	k, err := keyfunc.NewDefault([]string{BotFrameworkJWKSURL})
	if err != nil {
		return nil, errors.Wrap(err, "load bot framework signing keys")
	}
	return NewBotAuthMiddlewareWithKeyfunc(appID, k.Keyfunc, []string{jwt.SigningMethodRS256.Alg()}, logger), nil
}

func NewBotAuthMiddlewareWithKeyfunc(appID string, kf jwt.Keyfunc, methods []string, logger *zap.Logger) *BotAuthMiddleware {
	return &BotAuthMiddleware{
		keyfunc:  kf,
		methods:  methods,
		audience: appID,
		logger:   logger,
	}
}

func (a *BotAuthMiddleware) BotAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := bearerToken(r)
			if !ok {
				utils.RespondError(w, http.StatusUnauthorized, errors.New("missing bearer token"), "unauthorized")
				return
			}
			if err := a.verify(tokenStr); err != nil {
				a.logger.Warn("rejected bot framework token", zap.Error(err))
				utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (a *BotAuthMiddleware) verify(tokenStr string) error {
	token, err := jwt.Parse(tokenStr, a.keyfunc,
		jwt.WithValidMethods(a.methods),
		jwt.WithIssuer(BotFrameworkIssuer),
		jwt.WithAudience(a.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return errors.Wrap(err, "invalid or expired token")
	}
	if !token.Valid {
		return errors.New("invalid token")
	}
	return nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

type noopAuthMiddleware struct{}

// NewNoopAuthMiddleware lets every request through. Used when inbound
// verification is switched off.
func NewNoopAuthMiddleware() providers.AuthMiddlewareService {
	return noopAuthMiddleware{}
}

func (noopAuthMiddleware) BotAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return next }
}
