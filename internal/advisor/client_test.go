package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Alansi2025/inventory-management/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func advisoryStub(t *testing.T, reply string, capture *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate", r.URL.Path)

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if capture != nil {
			*capture = req.Prompt
		}

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(generateResponse{Text: reply}))
	}))
}

func TestDescriptionTrimsCompletion(t *testing.T) {
	var prompt string
	srv := advisoryStub(t, "  A dependable wireless mouse for everyday work.  ", &prompt)
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second)
	text, err := client.Description(context.Background(), "Wireless Mouse", models.CategoryElectronics)

	require.NoError(t, err)
	assert.Equal(t, "A dependable wireless mouse for everyday work.", text)
	assert.Contains(t, prompt, "Wireless Mouse")
	assert.Contains(t, prompt, "Electronics")
}

func TestClientSendsBearerToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(generateResponse{Text: "ok"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-key", 5*time.Second)
	_, err := client.Description(context.Background(), "Wireless Mouse", models.CategoryElectronics)

	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-key", auth)
}

func TestRisksPromptListsEverySummary(t *testing.T) {
	var prompt string
	srv := advisoryStub(t, "## Risks\n- Gel Ink Pens are nearly out of stock", &prompt)
	defer srv.Close()

	summaries := []models.ProductSummary{
		{Name: "Wireless Mouse", Quantity: 15, Category: models.CategoryElectronics, Price: 24.99},
		{Name: "Gel Ink Pens", Quantity: 4, Category: models.CategoryOfficeSupplies, Price: 6.5},
	}

	client := NewClient(srv.URL, "", 5*time.Second)
	report, err := client.Risks(context.Background(), summaries)

	require.NoError(t, err)
	assert.Contains(t, report, "Gel Ink Pens")
	assert.Contains(t, prompt, "Wireless Mouse")
	assert.Contains(t, prompt, "quantity: 4")
}

func TestPriceRangeParsesFencedJSON(t *testing.T) {
	srv := advisoryStub(t, "```json\n{\"min\": 19.99, \"max\": 29.99, \"reasoning\": \"comparable mice sell in this band\"}\n```", nil)
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second)
	suggestion, err := client.PriceRange(context.Background(), "Wireless Mouse", models.CategoryElectronics)

	require.NoError(t, err)
	assert.Equal(t, 19.99, suggestion.Min)
	assert.Equal(t, 29.99, suggestion.Max)
	assert.NotEmpty(t, suggestion.Reasoning)
}

func TestPriceRangeRejectsNegativeBounds(t *testing.T) {
	srv := advisoryStub(t, `{"min": -5, "max": 10, "reasoning": "nonsense"}`, nil)
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second)
	_, err := client.PriceRange(context.Background(), "Wireless Mouse", models.CategoryElectronics)

	assert.Error(t, err)
}

func TestPriceRangeRejectsInvertedBounds(t *testing.T) {
	srv := advisoryStub(t, `{"min": 30, "max": 10, "reasoning": "nonsense"}`, nil)
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second)
	_, err := client.PriceRange(context.Background(), "Wireless Mouse", models.CategoryElectronics)

	assert.Error(t, err)
}

func TestPriceRangeRejectsMalformedCompletion(t *testing.T) {
	srv := advisoryStub(t, "around twenty to thirty dollars", nil)
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second)
	_, err := client.PriceRange(context.Background(), "Wireless Mouse", models.CategoryElectronics)

	assert.Error(t, err)
}

func TestGenerateFailsOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second)
	_, err := client.Description(context.Background(), "Wireless Mouse", models.CategoryElectronics)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestGenerateFailsOnEmptyCompletion(t *testing.T) {
	srv := advisoryStub(t, "   ", nil)
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second)
	_, err := client.Description(context.Background(), "Wireless Mouse", models.CategoryElectronics)

	assert.Error(t, err)
}

func TestGenerateFailsWhenServiceUnreachable(t *testing.T) {
	srv := advisoryStub(t, "unused", nil)
	srv.Close() // reject connections

	client := NewClient(srv.URL, "", time.Second)
	_, err := client.Description(context.Background(), "Wireless Mouse", models.CategoryElectronics)

	assert.Error(t, err)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"min":1}`, stripCodeFence("```json\n{\"min\":1}\n```"))
	assert.Equal(t, `{"min":1}`, stripCodeFence("```\n{\"min\":1}\n```"))
	assert.Equal(t, `{"min":1}`, stripCodeFence(`{"min":1}`))
}
