// Package llm normalizes access to chat-completion model providers behind a
// single interface, with priority-ordered fallback and client-side rate
// limiting handled by the Manager.
package llm

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// Complete sends a completion request and returns the model output
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "deepseek", "qwen")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized completion request
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Response represents a normalized completion response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
