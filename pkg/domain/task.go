package domain

import "context"

// InteractionMode declares how a task expects the model conversation to run.
type InteractionMode string

const (
	// SingleExchange sends the prompt once and accepts the first final answer.
	SingleExchange InteractionMode = "single-exchange"
	// MultiTurn allows the client to resolve several tool rounds before the
	// model produces its final answer.
	MultiTurn InteractionMode = "multi-turn"
)

// ToolFactory produces the tool capability set bound to a working directory.
// Binding happens at execution time so the same Task can be reused across
// many runs without leaking state between them.
type ToolFactory func(workDir string) []Tool

// ValidateFunc scores the contents of an output directory after the model
// has finished. Expected failures are reported inside the TaskResult, never
// as a panic.
type ValidateFunc func(ctx context.Context, outputDir string) TaskResult

// Task is a named, versioned unit of evaluatable work: a prompt, a tool
// factory and a validator. Tasks are immutable once registered.
type Task struct {
	Name        string
	Description string
	Prompt      string
	Mode        InteractionMode
	Tools       ToolFactory
	Validate    ValidateFunc
}

// Complete reports whether the task satisfies the required descriptor shape.
// Incomplete tasks are skipped at registration with a warning.
func (t Task) Complete() bool {
	return t.Name != "" && t.Description != "" && t.Prompt != "" &&
		t.Tools != nil && t.Validate != nil
}
