// Package summarizer produces short natural-language summaries of arbitrary
// text through an external language model.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Chajse/EduSumm/pkg/config"
)

// ErrSummaryFailed is returned when the upstream is unreachable, answers with
// a non-success status, or returns an unusable payload.
var ErrSummaryFailed = errors.New("failed to generate summary")

// DefaultSystemPrompt steers the model towards neutral, structured summaries.
const DefaultSystemPrompt = `You are a highly capable AI assistant specialized in summarizing information.
Follow these guidelines:
- Focus on key insights and important patterns
- Use clear, concise language
- Organize information logically
- Highlight notable trends or anomalies
- Keep the tone professional and objective`

// Summarizer turns text into a summary.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// New returns the Summarizer selected by cfg.Provider.
func New(cfg config.SummaryConfig, logger *zap.Logger) (Summarizer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	client := &http.Client{Timeout: timeout}
	prompt := cfg.SystemPrompt
	if prompt == "" {
		prompt = DefaultSystemPrompt
	}

	switch cfg.Provider {
	case "", config.SummaryProviderOllama:
		return NewOllama(OllamaOptions{
			BaseURL:      cfg.OllamaURL,
			Model:        cfg.OllamaModel,
			SystemPrompt: prompt,
			Client:       client,
			Logger:       logger,
		}), nil
	case config.SummaryProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("summarizer: OPENAI_API_KEY is required for provider %q", cfg.Provider)
		}
		return NewOpenAI(OpenAIOptions{
			BaseURL: cfg.OpenAIURL,
			APIKey:  cfg.OpenAIKey,
			Model:   cfg.OpenAIModel,
			Client:  client,
			Logger:  logger,
		}), nil
	default:
		return nil, fmt.Errorf("summarizer: unknown provider %q", cfg.Provider)
	}
}

func upstreamError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrSummaryFailed, fmt.Sprintf(format, args...))
}
