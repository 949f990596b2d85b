package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KirkDiggler/castaway/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	Model     string  `json:"model"`
	MaxTokens int64   `json:"max_tokens"`
	Temp      float64 `json:"temperature"`
	Messages  []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func TestOpenAIComplete(t *testing.T) {
	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": "### Day One\nSCENE_TYPE: camp"}
			}]
		}`))
	}))
	defer server.Close()

	backend, err := NewOpenAI(&OpenAIConfig{
		APIKey:      "test-key",
		Temperature: 0.85,
		MaxTokens:   600,
		BaseURL:     server.URL,
	})
	require.NoError(t, err)

	text, err := backend.Complete(context.Background(), &GenerateInput{
		System: "You are the Game Master",
		History: []models.Message{
			{Role: models.RoleAssistant, Content: "### Premiere"},
			{Role: models.RoleUser, Content: "A) Find water"},
		},
		UserInput: "[GM Note: Generate the next CAMP scene.]",
	})

	require.NoError(t, err)
	assert.Equal(t, "### Day One\nSCENE_TYPE: camp", text)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, int64(600), got.MaxTokens)
	assert.InDelta(t, 0.85, got.Temp, 1e-9)
	require.Len(t, got.Messages, 4)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "assistant", got.Messages[1].Role)
	assert.Equal(t, "user", got.Messages[2].Role)
	assert.Equal(t, "[GM Note: Generate the next CAMP scene.]", got.Messages[3].Content)
}

func TestOpenAICompleteServerError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error": {"message": "upstream down", "type": "server_error"}}`))
	}))
	defer server.Close()

	backend, err := NewOpenAI(&OpenAIConfig{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = backend.Complete(context.Background(), &GenerateInput{UserInput: "hello"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.True(t, apiErr.Retryable())
	assert.Equal(t, 1, calls)
}

func TestNewOpenAIRequiresKey(t *testing.T) {
	_, err := NewOpenAI(&OpenAIConfig{})
	assert.Equal(t, ErrMissingKey, err)

	_, err = NewGemini(context.Background(), &GeminiConfig{})
	assert.Equal(t, ErrMissingKey, err)
}
