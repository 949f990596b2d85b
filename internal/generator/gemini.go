package generator

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/KirkDiggler/castaway/internal/models"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GeminiConfig for the Gemini chat backend
type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int32
}

// GeminiBackend calls the Gemini API through a chat session per turn
type GeminiBackend struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
}

// NewGemini creates a new Gemini backend. Close releases the client.
func NewGemini(ctx context.Context, cfg *GeminiConfig) (*GeminiBackend, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, err
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiBackend{
		client:      client,
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

// Close releases the underlying client
func (b *GeminiBackend) Close() error {
	return b.client.Close()
}

// Complete implements Backend
func (b *GeminiBackend) Complete(ctx context.Context, input *GenerateInput) (string, error) {
	// GenerativeModel carries per-request settings, so each turn gets its own
	model := b.client.GenerativeModel(b.model)
	model.SystemInstruction = genai.NewUserContent(genai.Text(input.System))
	model.SetTemperature(b.temperature)
	if b.maxTokens > 0 {
		model.SetMaxOutputTokens(b.maxTokens)
	}

	cs := model.StartChat()
	cs.History = geminiHistory(input.History)

	resp, err := cs.SendMessage(ctx, genai.Text(input.UserInput))
	if err != nil {
		return "", geminiError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyReply
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

func geminiHistory(history []models.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := "user"
		if m.Role == models.RoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	return contents
}

// geminiError maps REST and gRPC failures onto an HTTP status
func geminiError(err error) error {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return &APIError{Provider: ProviderGemini, StatusCode: gErr.Code, Err: err}
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	code := http.StatusInternalServerError
	switch st.Code() {
	case codes.ResourceExhausted:
		code = http.StatusTooManyRequests
	case codes.Unavailable:
		code = http.StatusServiceUnavailable
	case codes.DeadlineExceeded:
		code = http.StatusGatewayTimeout
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		code = http.StatusBadRequest
	case codes.Unauthenticated:
		code = http.StatusUnauthorized
	case codes.PermissionDenied:
		code = http.StatusForbidden
	case codes.NotFound:
		code = http.StatusNotFound
	}
	return &APIError{Provider: ProviderGemini, StatusCode: code, Err: err}
}
