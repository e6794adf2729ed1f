package middlewareprovider

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testKey = []byte("test-signing-key")

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
	require.NoError(t, err)
	return token
}

func TestBotAuthMiddleware(t *testing.T) {
	kf := func(*jwt.Token) (interface{}, error) { return testKey, nil }
	mw := NewBotAuthMiddlewareWithKeyfunc("app-id", kf, []string{"HS256"}, zap.NewNop())

	valid := jwt.MapClaims{
		"iss": BotFrameworkIssuer,
		"aud": "app-id",
		"exp": time.Now().Add(time.Hour).Unix(),
	}

	testCases := []struct {
		name               string
		authHeader         string
		expectedStatusCode int
	}{
		{
			name:               "valid token",
			authHeader:         "Bearer " + signToken(t, valid),
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "missing header",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name: "wrong audience",
			authHeader: "Bearer " + signToken(t, jwt.MapClaims{
				"iss": BotFrameworkIssuer,
				"aud": "someone-else",
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name: "expired",
			authHeader: "Bearer " + signToken(t, jwt.MapClaims{
				"iss": BotFrameworkIssuer,
				"aud": "app-id",
				"exp": time.Now().Add(-time.Hour).Unix(),
			}),
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name: "no expiry",
			authHeader: "Bearer " + signToken(t, jwt.MapClaims{
				"iss": BotFrameworkIssuer,
				"aud": "app-id",
			}),
			expectedStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodPost, "/chat", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()

			mw.BotAuthMiddleware()(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
		})
	}
}

func TestNoopAuthMiddleware(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	NewNoopAuthMiddleware().BotAuthMiddleware()(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/chat", nil))

	assert.True(t, called)
}
