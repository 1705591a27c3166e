package genaiclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/pubgo/funk/v2/errors"
	"google.golang.org/genai"
)

// Client wraps a genai session against Vertex AI. The session is established
// once by Init and lives for the rest of the process; genai.Client has no
// Close.
type Client struct {
	cfg    *Config
	client *genai.Client
	model  string
}

func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = new(Config)
	}
	return &Client{cfg: cfg}
}

func (c *Client) Config() *Config { return c.cfg }

// Init establishes the client session. With an API key configured the client
// runs in express mode, otherwise project and location are required and
// credentials come from ADC. Credential errors propagate as returned by the
// SDK.
func (c *Client) Init(ctx context.Context) error {
	if c.client != nil {
		return nil
	}

	cc := &genai.ClientConfig{Backend: genai.BackendVertexAI}
	if c.cfg.APIKey != "" {
		cc.APIKey = c.cfg.APIKey
	} else {
		if strings.TrimSpace(c.cfg.Project) == "" {
			return errors.WrapCaller(ErrMissingProject)
		}
		if strings.TrimSpace(c.cfg.Location) == "" {
			return errors.WrapCaller(ErrMissingLocation)
		}
		cc.Project = c.cfg.Project
		cc.Location = c.cfg.Location
	}
	if c.cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = c.cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return errors.WrapCaller(err)
	}

	c.client = client
	return nil
}

// SelectModel binds the client to a named model version. An empty name falls
// back to the configured default. The name is validated before any network
// call is made.
func (c *Client) SelectModel(name string) (string, error) {
	if name == "" {
		name = c.cfg.Model
	}
	name = strings.TrimSpace(name)

	if !Allowed(name, c.cfg.ModelAllowlist...) {
		return "", errors.WrapCaller(fmt.Errorf("model %q: %w", name, ErrUnknownModel))
	}

	c.model = name
	return name, nil
}

// Response holds the generated text and the usage the service reported for
// the single call.
type Response struct {
	Model       string
	Text        string
	TotalTokens int32
}

// Generate sends prompt to the selected model and blocks until the service
// answers. One call per process execution; no retry, no local timeout beyond
// the SDK default.
func (c *Client) Generate(ctx context.Context, prompt string) (*Response, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, errors.WrapCaller(ErrEmptyPrompt)
	}

	if c.client == nil {
		if err := c.Init(ctx); err != nil {
			return nil, err
		}
	}

	model := c.model
	if model == "" {
		var err error
		if model, err = c.SelectModel(""); err != nil {
			return nil, err
		}
	}

	var genCfg *genai.GenerateContentConfig
	if c.cfg.Temperature > 0 {
		genCfg = &genai.GenerateContentConfig{Temperature: genai.Ptr(c.cfg.Temperature)}
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), genCfg)
	if err != nil {
		return nil, errors.WrapCaller(err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return nil, errors.WrapCaller(fmt.Errorf("block reason %s: %w", resp.PromptFeedback.BlockReason, ErrBlocked))
	}

	text := resp.Text()
	if text == "" {
		return nil, errors.WrapCaller(ErrEmptyResponse)
	}

	rsp := &Response{Model: model, Text: text}
	if resp.UsageMetadata != nil {
		rsp.TotalTokens = resp.UsageMetadata.TotalTokenCount
	}
	return rsp, nil
}
