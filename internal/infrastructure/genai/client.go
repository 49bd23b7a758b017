package genai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Generator is the generative text/vision capability. Both adapters treat
// the service as opaque: one prompt in, one text result out.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateVision(ctx context.Context, prompt, mimeType string, data []byte) (string, error)
}

type Client struct {
	client      *openai.Client
	model       string
	visionModel string
}

func NewClient(apiKey, baseURL, model, visionModel string) *Client {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	return &Client{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       model,
		visionModel: visionModel,
	}
}

var _ Generator = (*Client)(nil)

func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("generation returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *Client) GenerateVision(ctx context.Context, prompt, mimeType string, data []byte) (string, error) {
	// The service expects inline image data as a base64 data URL.
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.visionModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: prompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: dataURL,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("vision generation returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// StripDataURL returns the raw base64 payload of a data URL, or the input
// unchanged when no prefix is present.
func StripDataURL(dataURL string) string {
	if idx := strings.Index(dataURL, "base64,"); idx >= 0 {
		return dataURL[idx+len("base64,"):]
	}
	return dataURL
}
