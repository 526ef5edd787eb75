package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPromptSingleTurn(t *testing.T) {
	var got CompletionRequest
	p := providerFunc(func(_ context.Context, req CompletionRequest) (*CompletionResponse, error) {
		got = req
		return &CompletionResponse{Content: "  property_recommendation  "}, nil
	})

	out, err := Prompt(context.Background(), p, "gpt-4o-mini", "classify this", 0.7)
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if out != "  property_recommendation  " {
		t.Errorf("unexpected content %q", out)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != RoleUser {
		t.Errorf("expected one user message, got %+v", got.Messages)
	}
	if got.Model != "gpt-4o-mini" {
		t.Errorf("expected model to pass through, got %q", got.Model)
	}
}

// providerFunc adapts a function to the Provider interface for tests.
type providerFunc func(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

func (f providerFunc) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	return f(ctx, req)
}

func (f providerFunc) Name() string { return "func" }

func TestFactoryReturnsErrorForMissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewProvider("openai", "gpt-4o-mini"); err == nil {
		t.Error("expected error for openai provider with missing API key")
	}
}

func TestFactoryReturnsErrorForUnknownProvider(t *testing.T) {
	if _, err := NewProvider("watson", "some-model"); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestFactoryCreatesOllamaWithDefaultHost(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "")
	provider, err := NewProvider("ollama", "llama3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	op, ok := provider.(*OllamaProvider)
	if !ok {
		t.Fatalf("expected *OllamaProvider, got %T", provider)
	}
	if op.baseURL != "http://localhost:11434" {
		t.Errorf("expected default host, got %q", op.baseURL)
	}
}

func TestOllamaComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req ollamaChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Stream {
			t.Error("expected stream=false")
		}
		json.NewEncoder(w).Encode(ollamaChatResponse{
			Message:    ollamaMessage{Role: "assistant", Content: "market_trends"},
			Model:      req.Model,
			DoneReason: "stop",
		})
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3")
	resp, err := p.Complete(context.Background(), CompletionRequest{
		Messages: []Message{{Role: RoleUser, Content: "classify"}},
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Content != "market_trends" {
		t.Errorf("expected market_trends, got %q", resp.Content)
	}
	if resp.Model != "llama3" {
		t.Errorf("expected model fallback to default, got %q", resp.Model)
	}
}
