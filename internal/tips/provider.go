package tips

import (
	"context"
	"encoding/json"
)

// Provider abstracts the model backend used to generate coaching tips.
type Provider interface {
	// Generate sends a prompt and returns the model output. When the
	// request carries a Schema, the provider asks for structured JSON
	// and the returned Content is validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Tip generation is single-turn, so
	// this is normally one user message.
	Messages []Message

	// Schema, when set, selects the provider's structured output mode.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 to 1.0. Zero means
	// deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is the JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema. Used as the schema name for OpenAI
	// and as the cache key for validation. Kebab-case.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model output.
type Response struct {
	// Content is the generated output. With a Schema it is the
	// validated JSON object; without one it is raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
