package domain

import "context"

// Tool describes one capability handed to the model client.
// The shape is compatible with OpenAI function-call schemas: the client
// forwards Name/Description/InputSchema to the provider and dispatches the
// provider's tool calls back through Execute.
type Tool struct {
	Name         string
	Description  string
	InputSchema  map[string]any
	OutputSchema map[string]any

	// Execute runs the capability. Errors are returned as data to the model
	// (the client serializes them into the tool result), so a bad call can be
	// corrected within the same conversation.
	Execute func(ctx context.Context, args map[string]any) (any, error)
}
