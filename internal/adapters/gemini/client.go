package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/safarapp/safar-api/internal/pkg/metrics"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// Client generates free-form text with the Gemini API. It implements
// ports.TextGenerator.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini-backed text generator.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: c, model: model}, nil
}

// Generate sends the prompt as-is and returns the generated text unmodified.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	metrics.ProviderRequestDuration.WithLabelValues("gemini").Observe(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("gemini generate (%s): %w", c.model, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini generate (%s): empty response", c.model)
	}
	return text, nil
}
