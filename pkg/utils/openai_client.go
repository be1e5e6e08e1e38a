package utils

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIItineraryClient is the alternate model backend, selected with
// AI_PROVIDER=openai. Uses chat completions in JSON mode.
type OpenAIItineraryClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIItineraryClient(apiKey, model string) ItineraryClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIItineraryClient{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: 60 * time.Second,
	}
}

func (c *OpenAIItineraryClient) GenerateItineraryJSON(ctx context.Context, prompt string) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
