package botprovider

import (
	"context"
	"net/http"

	"assetbot/providers"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	DefaultTokenURL = "https://login.microsoftonline.com/botframework.com/oauth2/v2.0/token"
	botScope        = "https://api.botframework.com/.default"
)

type tokenProvider struct {
	cfg        clientcredentials.Config
	httpClient *http.Client
}

// NewBotTokenProvider returns a provider that requests a fresh connector token
// on every call. Nothing is cached between calls.
func NewBotTokenProvider(appID, appPassword, tokenURL string, httpClient *http.Client) providers.BotTokenProvider {
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &tokenProvider{
		cfg: clientcredentials.Config{
			ClientID:     appID,
			ClientSecret: appPassword,
			TokenURL:     tokenURL,
			Scopes:       []string{botScope},
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		httpClient: httpClient,
	}
}

func (p *tokenProvider) GetToken(ctx context.Context) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	tok, err := p.cfg.Token(ctx)
	if err != nil {
		return "", errors.Wrap(err, "azure bot token request failed")
	}
	if tok.AccessToken == "" {
		return "", errors.New("azure bot token response missing access_token")
	}
	return tok.AccessToken, nil
}
