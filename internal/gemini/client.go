package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/chapelstack/sermon-flow/internal/logger"
)

type implClient struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// New creates a Client that rotates through the supplied Gemini API
// keys on rate-limit errors. Returns nil when no keys are configured,
// which callers treat as "no external capability available".
func New(apiKeys []string, model string, log logger.Logger) Client {
	if len(apiKeys) == 0 {
		return nil
	}
	return &implClient{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}

// Generate sends the prompt to Gemini and returns the response text.
// Rotates API keys on 429 / quota errors until all keys are exhausted.
func (c *implClient) Generate(ctx context.Context, prompt string) (string, error) {
	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		keyIdx, key := c.pickKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				c.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIdx+1)
				c.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (c *implClient) pickKey() (int, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentKey, c.apiKeys[c.currentKey]
}

func (c *implClient) rotateKey() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}
