package openaiclient

import (
	"context"
	"strings"

	"github.com/pubgo/funk/v2/errors"
	"github.com/sashabaranov/go-openai"

	"github.com/pubgo/promptrun/utils/genaiclient"
)

// Config for the OpenAI-compatible provider. BaseURL covers self-hosted
// endpoints that speak the same protocol.
type Config struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

type Client struct {
	Client *openai.Client
	Cfg    *Config
}

func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = new(Config)
	}

	occ := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		occ.BaseURL = cfg.BaseURL
	}

	return &Client{Client: openai.NewClientWithConfig(occ), Cfg: cfg}
}

// Generate sends prompt as a single user message and blocks until the full
// completion arrives. Same single-shot semantics as the vertex path.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.WrapCaller(genaiclient.ErrEmptyPrompt)
	}

	resp, err := c.Client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.Cfg.Model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		return "", errors.WrapCaller(err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.WrapCaller(genaiclient.ErrEmptyResponse)
	}

	return resp.Choices[0].Message.Content, nil
}
