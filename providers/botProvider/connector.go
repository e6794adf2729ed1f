package botprovider

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"assetbot/models"
	"assetbot/providers"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

type connector struct {
	httpClient *http.Client
}

func NewBotConnectorProvider(httpClient *http.Client) providers.BotConnectorProvider {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &connector{httpClient: httpClient}
}

// SendReply posts reply to the conversation on the channel's connector
// service as a reply to reply.ReplyToID.
func (c *connector) SendReply(ctx context.Context, serviceURL, token string, reply models.ReplyActivity) error {
	endpoint := replyURL(serviceURL, reply.Conversation.ID, reply.ReplyToID)

	body, err := jsoniter.Marshal(reply)
	if err != nil {
		return errors.Wrap(err, "encode reply activity")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build reply request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "post reply activity")
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return errors.Errorf("bot connector replied %s: %s", resp.Status, string(msg))
	}
	return nil
}

func replyURL(serviceURL, conversationID, activityID string) string {
	return fmt.Sprintf("%s/v3/conversations/%s/activities/%s",
		strings.TrimRight(serviceURL, "/"),
		url.PathEscape(conversationID),
		url.PathEscape(activityID))
}
