package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Alansi2025/inventory-management/internal/models"
)

// Fallback values shown when the advisory service cannot produce a result.
const (
	FallbackDescription = "AI-generated description is unavailable right now. Please write one manually or try again later."
	FallbackRisks       = "AI insights are unavailable right now. Please try again later."
	FallbackReasoning   = "AI price suggestion is unavailable right now."
)

// FallbackPriceSuggestion is the zero-valued suggestion used when the
// advisory service fails.
func FallbackPriceSuggestion() models.PriceSuggestion {
	return models.PriceSuggestion{Min: 0, Max: 0, Reasoning: FallbackReasoning}
}

// Client talks to the external AI advisory service. It returns errors as
// they happen; converting them into the fixed fallbacks is the caller's
// job, so failure accounting stays in one place.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates an advisory client. A zero timeout disables the
// client-side deadline.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Description asks the model for a short sales description.
func (c *Client) Description(ctx context.Context, name string, category models.Category) (string, error) {
	text, err := c.generate(ctx, fmt.Sprintf(descriptionPromptTmpl, name, category))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// Risks asks the model for a markdown risk report over the given summaries.
func (c *Client) Risks(ctx context.Context, summaries []models.ProductSummary) (string, error) {
	text, err := c.generate(ctx, fmt.Sprintf(risksPromptTmpl, formatSummaries(summaries)))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// PriceRange asks the model for a retail price range. The completion is
// required to be JSON, but models wrap it in code fences often enough
// that the parser strips them before decoding.
func (c *Client) PriceRange(ctx context.Context, name string, category models.Category) (models.PriceSuggestion, error) {
	text, err := c.generate(ctx, fmt.Sprintf(priceRangePromptTmpl, name, category))
	if err != nil {
		return models.PriceSuggestion{}, err
	}
	return parsePriceSuggestion(text)
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("advisory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("advisory service returned %s", resp.Status)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if strings.TrimSpace(out.Text) == "" {
		return "", errors.New("advisory service returned an empty completion")
	}
	return out.Text, nil
}

func parsePriceSuggestion(text string) (models.PriceSuggestion, error) {
	var s models.PriceSuggestion
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &s); err != nil {
		return models.PriceSuggestion{}, fmt.Errorf("failed to parse price suggestion: %w", err)
	}
	if s.Min < 0 || s.Max < 0 || s.Max < s.Min {
		return models.PriceSuggestion{}, fmt.Errorf("price suggestion out of range: min=%.2f max=%.2f", s.Min, s.Max)
	}
	return s, nil
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	if i := strings.LastIndex(text, "```"); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}

func formatSummaries(summaries []models.ProductSummary) string {
	if len(summaries) == 0 {
		return "(the catalog is empty)"
	}
	var b strings.Builder
	for _, s := range summaries {
		fmt.Fprintf(&b, "- %s | category: %s | quantity: %d | price: %.2f\n", s.Name, s.Category, s.Quantity, s.Price)
	}
	return b.String()
}
