package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestPurposeLabel(t *testing.T) {
	ctx := context.Background()
	if got := PurposeFrom(ctx); got != "unknown" {
		t.Errorf("unlabeled context purpose = %q, want unknown", got)
	}
	ctx = WithPurpose(ctx, "tutor-comment")
	if got := PurposeFrom(ctx); got != "tutor-comment" {
		t.Errorf("purpose = %q, want tutor-comment", got)
	}
}

func TestMockProvider_ReplaysScriptInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"comment":"Nice start."}`), Usage: Usage{InputTokens: 12, OutputTokens: 6, TotalTokens: 18}},
		MockResponse{Content: json.RawMessage(`{"comment":"Keep going."}`)},
	)

	first, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "solved it"}}})
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if string(first.Content) != `{"comment":"Nice start."}` {
		t.Errorf("first content = %s", first.Content)
	}
	if first.Usage.InputTokens != 12 || first.StopReason != "end" {
		t.Errorf("first reply = %+v", first)
	}

	second, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if string(second.Content) != `{"comment":"Keep going."}` {
		t.Errorf("second content = %s", second.Content)
	}
}

func TestMockProvider_ExhaustedScriptIsOutage(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %T, want ErrProviderUnavailable", err)
	}
}

func TestMockProvider_KeepsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	mock.AddResponse(MockResponse{Err: &ErrRateLimit{}})

	_, _ = mock.Generate(context.Background(), Request{System: "You are a patient tutor."})
	_, err := mock.Generate(context.Background(), Request{})

	if mock.CallCount() != 2 {
		t.Fatalf("CallCount = %d, want 2", mock.CallCount())
	}
	if mock.Calls[0].System != "You are a patient tutor." {
		t.Errorf("recorded system = %q", mock.Calls[0].System)
	}
	var limited *ErrRateLimit
	if !errors.As(err, &limited) {
		t.Errorf("scripted error = %T, want ErrRateLimit", err)
	}
}

func TestExpandModel(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"gemini-flash", "gemini-2.0-flash"},
		{"gpt-4o-mini", "gpt-4o-mini"},
		{"google/gemini-2.0-flash-exp", "google/gemini-2.0-flash-exp"},
	}
	for _, tt := range tests {
		if got := expandModel(tt.name); got != tt.want {
			t.Errorf("expandModel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PRIMER_LLM_PROVIDER", "openrouter")
	t.Setenv("PRIMER_OPENROUTER_API_KEY", "sk-or-test")
	t.Setenv("PRIMER_OPENROUTER_MODEL", "meta-llama/llama-3-8b")
	t.Setenv("PRIMER_ANTHROPIC_MODEL", "claude-sonnet")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openrouter" {
		t.Errorf("Provider = %q, want openrouter", cfg.Provider)
	}
	if cfg.OpenRouter.APIKey != "sk-or-test" || cfg.OpenRouter.Model != "meta-llama/llama-3-8b" {
		t.Errorf("OpenRouter config = %+v", cfg.OpenRouter)
	}
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Errorf("Anthropic model = %q", cfg.Anthropic.Model)
	}
	// Unset values keep their defaults.
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("OpenAI model default = %q", cfg.OpenAI.Model)
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	for _, v := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(v, "")
	}

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("no keys set, discovery should fail")
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "anthropic" {
		t.Fatalf("discovered = %q, want anthropic", cfg.Provider)
	}

	// Gemini outranks Anthropic when both keys are present.
	t.Setenv("GEMINI_API_KEY", "gm-key")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != "gemini" {
		t.Fatalf("discovered = %q, want gemini", cfg.Provider)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic missing key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk"}}, false},
		{"openrouter missing key", Config{Provider: "openrouter"}, true},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or"}}, false},
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "ollama"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
