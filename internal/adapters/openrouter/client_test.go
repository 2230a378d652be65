package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/scadbench/scadbench/internal/logging"
	"github.com/scadbench/scadbench/pkg/domain"
	"github.com/scadbench/scadbench/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTools(t *testing.T) {
	tools := convertTools([]domain.Tool{{
		Name:        "write_file",
		Description: "write a file",
		InputSchema: map[string]any{"type": "object"},
	}})

	require.Len(t, tools, 1)
	assert.Equal(t, openai.ToolTypeFunction, tools[0].Type)
	assert.Equal(t, "write_file", tools[0].Function.Name)
	assert.Equal(t, "write a file", tools[0].Function.Description)
}

// chatResponse builds a minimal chat completion payload.
func chatResponse(msg openai.ChatCompletionMessage) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		ID:      "chatcmpl-test",
		Object:  "chat.completion",
		Model:   "test-model",
		Choices: []openai.ChatCompletionChoice{{Message: msg}},
	}
}

// fakeProvider serves scripted chat completion responses in order.
func fakeProvider(t *testing.T, responses []openai.ChatCompletionResponse) *httptest.Server {
	t.Helper()
	call := 0
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if call >= len(responses) {
			t.Error("unexpected extra provider call")
			http.Error(w, "no more scripted responses", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(responses[call])
		call++
	}))
}

func TestClient_Complete_ToolLoop(t *testing.T) {
	srv := fakeProvider(t, []openai.ChatCompletionResponse{
		chatResponse(openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleAssistant,
			ToolCalls: []openai.ToolCall{{
				ID:   "call_1",
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      "write_file",
					Arguments: `{"path": "bracket.scad", "content": "cube(10);"}`,
				},
			}},
		}),
		chatResponse(openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleAssistant,
			Content: "Saved the script.",
		}),
	})
	defer srv.Close()

	var gotArgs map[string]any
	tool := domain.Tool{
		Name:        "write_file",
		Description: "write",
		InputSchema: map[string]any{"type": "object"},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			gotArgs = args
			return map[string]any{"bytes_written": 9}, nil
		},
	}

	client := New(Config{APIKey: "test-key", BaseURL: srv.URL, Logger: logging.NewNop()})

	text, err := client.Complete(context.Background(), eval.CompletionRequest{
		Model:  "test-model",
		Prompt: "make a bracket",
		Tools:  []domain.Tool{tool},
		Mode:   domain.MultiTurn,
	})

	require.NoError(t, err)
	assert.Equal(t, "Saved the script.", text)
	assert.Equal(t, map[string]any{"path": "bracket.scad", "content": "cube(10);"}, gotArgs)
}

func TestClient_Complete_ToolErrorReturnedAsData(t *testing.T) {
	srv := fakeProvider(t, []openai.ChatCompletionResponse{
		chatResponse(openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleAssistant,
			ToolCalls: []openai.ToolCall{{
				ID:   "call_1",
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      "write_file",
					Arguments: `{"path": "/etc/passwd", "content": "x"}`,
				},
			}},
		}),
		chatResponse(openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleAssistant,
			Content: "Understood, retrying elsewhere.",
		}),
	})
	defer srv.Close()

	tool := domain.Tool{
		Name:        "write_file",
		Description: "write",
		InputSchema: map[string]any{"type": "object"},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			return nil, fmt.Errorf("path escapes sandbox")
		},
	}

	client := New(Config{APIKey: "test-key", BaseURL: srv.URL, Logger: logging.NewNop()})

	// The tool error travels back to the model as a result payload; the
	// conversation continues instead of aborting.
	text, err := client.Complete(context.Background(), eval.CompletionRequest{
		Model:  "test-model",
		Prompt: "make a bracket",
		Tools:  []domain.Tool{tool},
		Mode:   domain.MultiTurn,
	})

	require.NoError(t, err)
	assert.Equal(t, "Understood, retrying elsewhere.", text)
}

func TestClient_Complete_SingleExchangeRoundCap(t *testing.T) {
	toolCall := chatResponse(openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleAssistant,
		ToolCalls: []openai.ToolCall{{
			ID:   "call_1",
			Type: openai.ToolTypeFunction,
			Function: openai.FunctionCall{
				Name:      "write_file",
				Arguments: `{}`,
			},
		}},
	})
	// The model keeps asking for tools; single-exchange mode allows one round
	// and then gives up.
	srv := fakeProvider(t, []openai.ChatCompletionResponse{toolCall, toolCall})
	defer srv.Close()

	tool := domain.Tool{
		Name:        "write_file",
		Description: "write",
		InputSchema: map[string]any{"type": "object"},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			return "ok", nil
		},
	}

	client := New(Config{APIKey: "test-key", BaseURL: srv.URL, Logger: logging.NewNop()})

	_, err := client.Complete(context.Background(), eval.CompletionRequest{
		Model:  "test-model",
		Prompt: "make a bracket",
		Tools:  []domain.Tool{tool},
		Mode:   domain.SingleExchange,
	})

	assert.ErrorContains(t, err, "tool rounds")
}
