package summarizer

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	defaultOllamaURL   = "http://localhost:11434"
	defaultOllamaModel = "llama3.2:latest"
	emptyOllamaSummary = "Unable to generate a meaningful summary."
	// Individual NDJSON chunks are small; this only bounds pathological lines.
	maxOllamaLine = 1 << 20
)

// OllamaOptions configures OllamaSummarizer.
type OllamaOptions struct {
	BaseURL      string
	Model        string
	SystemPrompt string
	Client       *http.Client
	Logger       *zap.Logger
}

// OllamaSummarizer calls a local Ollama server and concatenates the streamed
// newline-delimited JSON chunks of /api/generate.
type OllamaSummarizer struct {
	baseURL string
	model   string
	system  string
	client  *http.Client
	logger  *zap.Logger
}

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Stream bool   `json:"stream"`
}

type ollamaChunk struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// NewOllama constructs an OllamaSummarizer.
func NewOllama(opts OllamaOptions) *OllamaSummarizer {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultOllamaURL
	}
	if opts.Model == "" {
		opts.Model = defaultOllamaModel
	}
	if opts.SystemPrompt == "" {
		opts.SystemPrompt = DefaultSystemPrompt
	}
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &OllamaSummarizer{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		model:   opts.Model,
		system:  opts.SystemPrompt,
		client:  opts.Client,
		logger:  opts.Logger,
	}
}

// Summarize implements Summarizer.
func (s *OllamaSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(ollamaRequest{
		Model:  s.model,
		System: s.system,
		Prompt: fmt.Sprintf("Please analyze and summarize the following information:\n\n%s\n\nProvide a well-structured summary that captures the essential information and any notable patterns or insights.", text),
		Stream: true,
	})
	if err != nil {
		return "", upstreamError("encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", upstreamError("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", upstreamError("connect to ollama: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", upstreamError("ollama responded %s", resp.Status)
	}

	var out strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxOllamaLine)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var chunk ollamaChunk
		if err := json.Unmarshal([]byte(line), &chunk); err != nil {
			s.logger.Warn("skipping malformed ollama chunk", zap.String("line", line), zap.Error(err))
			continue
		}
		out.WriteString(chunk.Response)
		if chunk.Done {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return "", upstreamError("read ollama stream: %v", err)
	}

	summary := strings.TrimSpace(out.String())
	if summary == "" {
		return emptyOllamaSummary, nil
	}
	return summary, nil
}
