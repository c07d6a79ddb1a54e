package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/primer/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = newAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = newOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = newGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		// OpenRouter is the OpenAI client pointed elsewhere.
		baseURL := cfg.OpenRouter.BaseURL
		if baseURL == "" {
			baseURL = openRouterBaseURL
		}
		base, err = newOpenAIProvider(OpenAIConfig{
			APIKey:  cfg.OpenRouter.APIKey,
			Model:   cfg.OpenRouter.Model,
			BaseURL: baseURL,
		})
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → recording → base
	return withRetry(withRecording(base, eventRepo), cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from environment configuration.
// PRIMER_LLM_PROVIDER selects a provider explicitly; otherwise standard
// API key variables are probed in priority order.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if os.Getenv("PRIMER_LLM_PROVIDER") == "" {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM API key found in environment")
		}
		cfg = discovered
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, eventRepo)
}
