package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/abrar/portfolio-chat/internal/prompts"
)

// Client is an abstraction over generative-model providers. Implementations
// are expected to be unreliable: callers wrap every method in error handling
// that falls back to deterministic behavior.
type Client interface {
	// ClassifyIntent asks the model for a single intent label for the
	// question. Labels are the responder's closed set plus "greeting" and
	// "other"; anything else is an error.
	ClassifyIntent(ctx context.Context, question string) (string, error)
	// Complete answers the question in first person using only the provided
	// résumé context text.
	Complete(ctx context.Context, contextText, question string) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// allowedLabels is the label vocabulary ClassifyIntent may return.
var allowedLabels = map[string]bool{
	"skills":       true,
	"education":    true,
	"projects":     true,
	"achievements": true,
	"contact":      true,
	"summary":      true,
	"greeting":     true,
	"other":        true,
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// ClassifyIntent asks the lite-tier model for one label from the closed set.
func (c *GeminiClient) ClassifyIntent(ctx context.Context, question string) (string, error) {
	modelName := c.config.GetModel(TierLite)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", TierLite)
	}

	prompt := prompts.Format(prompts.MustGet("chat.json", "classify_intent"), map[string]string{
		"Question": question,
	})

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(0) // Classification must be stable

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to classify intent: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}

	return CleanLabel(text)
}

// Complete answers the question from the sanitized résumé context using the
// standard-tier model with a fixed system instruction.
func (c *GeminiClient) Complete(ctx context.Context, contextText, question string) (string, error) {
	modelName := c.config.GetModel(TierStandard)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", TierStandard)
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(prompts.MustGet("chat.json", "complete_system"))},
	}

	prompt := prompts.Format(prompts.MustGet("chat.json", "complete_user"), map[string]string{
		"Context":  contextText,
		"Question": question,
	})

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// CleanLabel normalizes a model-produced intent label and rejects anything
// outside the allowed vocabulary. Models occasionally decorate the label with
// punctuation or quoting even when told not to.
func CleanLabel(text string) (string, error) {
	label := strings.ToLower(strings.TrimSpace(text))
	label = strings.Trim(label, "`\"'.: \n")
	if !allowedLabels[label] {
		return "", fmt.Errorf("unrecognized intent label %q", text)
	}
	return label, nil
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
