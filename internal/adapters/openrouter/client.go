// Package openrouter implements the LLM provider client on an
// OpenAI-compatible chat completion API. The client owns the tool loop:
// function calls emitted by the model are dispatched against the task's
// capability set until the model produces its final text answer.
package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"
	"github.com/scadbench/scadbench/pkg/domain"
	"github.com/scadbench/scadbench/pkg/eval"
)

// DefaultBaseURL targets OpenRouter; any OpenAI-compatible endpoint works.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// defaultMaxToolRounds bounds the tool loop for multi-turn tasks so a model
// stuck re-invoking tools cannot spin forever.
const defaultMaxToolRounds = 8

// Config configures the provider client.
type Config struct {
	APIKey        string
	BaseURL       string
	MaxToolRounds int
	Logger        *slog.Logger
}

// Client implements eval.Client on go-openai.
type Client struct {
	api           *openai.Client
	maxToolRounds int
	logger        *slog.Logger
}

var _ eval.Client = (*Client)(nil)

// New creates a provider client.
func New(cfg Config) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = cfg.BaseURL
	if apiCfg.BaseURL == "" {
		apiCfg.BaseURL = DefaultBaseURL
	}

	rounds := cfg.MaxToolRounds
	if rounds <= 0 {
		rounds = defaultMaxToolRounds
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		api:           openai.NewClientWithConfig(apiCfg),
		maxToolRounds: rounds,
		logger:        logger,
	}
}

// Complete sends the prompt with the task's tools and blocks until the model
// returns a final text answer. Single-exchange tasks get one tool round;
// multi-turn tasks get up to the configured maximum.
func (c *Client) Complete(ctx context.Context, req eval.CompletionRequest) (string, error) {
	tools := convertTools(req.Tools)
	byName := make(map[string]domain.Tool, len(req.Tools))
	for _, t := range req.Tools {
		byName[t.Name] = t
	}

	rounds := c.maxToolRounds
	if req.Mode == domain.SingleExchange {
		rounds = 1
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
	}

	for round := 0; ; round++ {
		resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    req.Model,
			Messages: messages,
			Tools:    tools,
		})
		if err != nil {
			return "", fmt.Errorf("chat completion failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("no choices in response")
		}

		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			return msg.Content, nil
		}
		if round >= rounds {
			return "", fmt.Errorf("model exceeded %d tool rounds without a final answer", rounds)
		}

		messages = append(messages, msg)
		for _, call := range msg.ToolCalls {
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				ToolCallID: call.ID,
				Content:    c.dispatch(ctx, byName, call),
			})
		}
	}
}

// dispatch executes one tool call and serializes the outcome for the model.
// Tool errors are returned as data so the model can correct itself within
// the same conversation.
func (c *Client) dispatch(ctx context.Context, byName map[string]domain.Tool, call openai.ToolCall) string {
	tool, ok := byName[call.Function.Name]
	if !ok {
		return fmt.Sprintf(`{"error": "unknown tool %q"}`, call.Function.Name)
	}

	var tArgs map[string]any
	if call.Function.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Function.Arguments), &tArgs); err != nil {
			return fmt.Sprintf(`{"error": "invalid tool arguments: %v"}`, err)
		}
	}

	result, err := tool.Execute(ctx, tArgs)
	if err != nil {
		c.logger.Debug("tool call failed", "tool", tool.Name, "err", err)
		payload, _ := json.Marshal(map[string]any{"error": err.Error()})
		return string(payload)
	}

	c.logger.Debug("tool call completed", "tool", tool.Name)

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf(`{"error": "unserializable tool result: %v"}`, err)
	}
	return string(payload)
}

// convertTools maps capability descriptors to the provider's function-call
// schema.
func convertTools(tools []domain.Tool) []openai.Tool {
	converted := make([]openai.Tool, 0, len(tools))
	for _, t := range tools {
		converted = append(converted, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.InputSchema,
			},
		})
	}
	return converted
}
