package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	defaultOpenAIURL   = "https://api.openai.com"
	defaultOpenAIModel = "gpt-3.5-turbo"
	emptyOpenAISummary = "Unable to generate summary"
	openAISystemPrompt = "You are a helpful assistant that provides concise summaries."
)

// OpenAIOptions configures OpenAISummarizer.
type OpenAIOptions struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
	Logger  *zap.Logger
}

// OpenAISummarizer requests a single chat completion from a hosted API.
type OpenAISummarizer struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// NewOpenAI constructs an OpenAISummarizer.
func NewOpenAI(opts OpenAIOptions) *OpenAISummarizer {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultOpenAIURL
	}
	if opts.Model == "" {
		opts.Model = defaultOpenAIModel
	}
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &OpenAISummarizer{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		apiKey:  opts.APIKey,
		model:   opts.Model,
		client:  opts.Client,
		logger:  opts.Logger,
	}
}

// Summarize implements Summarizer.
func (s *OpenAISummarizer) Summarize(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: openAISystemPrompt},
			{Role: "user", Content: fmt.Sprintf("Please summarize the following text:\n\n%s", text)},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", upstreamError("encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", upstreamError("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", upstreamError("connect to completion api: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		s.logger.Warn("completion api rejected request",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", snippet))
		return "", upstreamError("completion api responded %s", resp.Status)
	}

	var decoded chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", upstreamError("decode completion: %v", err)
	}
	if len(decoded.Choices) == 0 {
		return emptyOpenAISummary, nil
	}
	content := strings.TrimSpace(decoded.Choices[0].Message.Content)
	if content == "" {
		return emptyOpenAISummary, nil
	}
	return content, nil
}
