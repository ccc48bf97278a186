package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang/glog"
	"github.com/zicongmei/ai-chat/pkg/aiEndpoint"
	"github.com/zicongmei/ai-chat/pkg/config"
	"github.com/zicongmei/ai-chat/pkg/utils"
	"google.golang.org/genai"
)

var _ aiEndpoint.AIEngine = (*Client)(nil)

// ErrMissingAPIKey is returned by the first SendPrompt when no API key is configured.
var ErrMissingAPIKey = errors.New("no Gemini API key configured: set API_KEY or GEMINI_API_KEY")

// Client implements the AIEngine interface for the Gemini AI.
// The underlying genai client is created on the first SendPrompt, so credential
// problems surface from that call. A Client is not safe for concurrent use.
type Client struct {
	client    *genai.Client
	apiKey    string
	modelName string
}

// NewClient returns a Gemini client for cfg. It does not contact the service.
func NewClient(cfg *config.Config) *Client {
	glog.V(0).Infof("Gemini client configured for %q model.", cfg.Model)
	return &Client{
		apiKey:    cfg.APIKey,
		modelName: cfg.Model,
	}
}

// connect creates the genai client once. A failed attempt is retried on the next call.
func (c *Client) connect(ctx context.Context) (*genai.Client, error) {
	if c.client != nil {
		return c.client, nil
	}
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      c.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1beta"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	glog.V(0).Info("Gemini client successfully created.")
	c.client = client
	return client, nil
}

// SendPrompt sends a string prompt to the Gemini AI endpoint and returns
// the AI's response as a string.
func (c *Client) SendPrompt(ctx context.Context, prompt string) (string, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return "", err
	}

	glog.V(1).Infof("Sending prompt to Gemini model %q...", c.modelName)
	glog.V(2).Infof("Prompt content (truncated): %q", utils.TruncateString(prompt, 200))

	resp, err := client.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content from Gemini: %w", err)
	}

	result := responseText(resp)
	if result == "" {
		glog.Warning("Gemini response was empty.")
	}

	glog.V(1).Infof("Received response from Gemini (length: %d, %s).", len(result), usageSummary(resp.UsageMetadata))
	glog.V(2).Infof("Full Gemini response (truncated): %q", utils.TruncateString(result, 200))

	return result, nil
}

// responseText returns the text of the first candidate, or "" when there is none.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	return resp.Text()
}
