package completion

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ErrorPrefix starts every reply produced from a failed completion.
const ErrorPrefix = "OpenAI Error: "

//go:generate mockgen -source=completion_client.go -destination=mock_completion_client.go -package=completion

// Client answers a prompt. It never returns an error: a failed call comes
// back as an Answer whose text is the formatted error.
type Client interface {
	Complete(ctx context.Context, p Prompt) Answer
}

type Prompt struct {
	AssetSummary    string
	CarrierSummary  string
	CategorySummary string
	Question        string
}

type Answer struct {
	Text   string
	Failed bool
}

func failed(err error) Answer {
	return Answer{Text: ErrorPrefix + err.Error(), Failed: true}
}

type openAIClient struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewClient builds a completion client. baseURL may be empty to use the
// public OpenAI endpoint.
func NewClient(apiKey, model, baseURL string, logger *zap.Logger) Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4Turbo
	}
	return &openAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		logger: logger,
	}
}

func (c *openAIClient) Complete(ctx context.Context, p Prompt) Answer {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(p)},
		},
	})
	if err != nil {
		c.logger.Error("openai completion failed", zap.Error(err))
		return failed(err)
	}
	if len(resp.Choices) == 0 {
		c.logger.Error("openai returned no choices", zap.String("id", resp.ID))
		return failed(errors.New("no choices returned"))
	}
	c.logger.Debug("openai completion",
		zap.String("model", resp.Model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens))
	return Answer{Text: resp.Choices[0].Message.Content}
}

// BuildPrompt embeds the three reference blocks and the user's question in a
// single instruction message.
func BuildPrompt(p Prompt) string {
	return fmt.Sprintf(`You're an IT asset assistant for a city IT department. Answer the user's question using only the data below.

Snipe-IT assets (one per line):
%s

Mobile carrier lines (one per line):
%s

Asset categories (one per line):
%s

Names, tags and device labels may be misspelled or abbreviated in the question; match them loosely.
If only part of the answer is in the data, give that part and say what is missing instead of replying that nothing was found.

User's Question: %s`, p.AssetSummary, p.CarrierSummary, p.CategorySummary, p.Question)
}
