package assistant

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"

	"pantry/internal/domain"
)

type ClaudeSuggester struct {
	client *anthropic.Client
	model  string
}

func NewClaudeSuggester(apiKey, model string) *ClaudeSuggester {
	return &ClaudeSuggester{
		client: anthropic.NewClient(apiKey),
		model:  model,
	}
}

func (c *ClaudeSuggester) Suggest(ctx context.Context, items []*domain.Item) (string, error) {
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: anthropic.Model(c.model),
		// 1024 tokens holds three short recipes with headroom for
		// verbose models.
		MaxTokens: 1024,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(buildPrompt(items)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call claude: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("claude returned no content")
	}

	return resp.Content[0].GetText(), nil
}
