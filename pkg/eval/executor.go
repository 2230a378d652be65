// Package eval drives evaluations end to end: one (model, task) pair at a
// time, and meshes of many models against many tasks.
package eval

import (
	"context"
	"log/slog"
	"os"

	"github.com/scadbench/scadbench/pkg/domain"
)

// CompletionRequest is what the executor hands to the model client: the
// task prompt plus the tool capability set bound to the run directory.
type CompletionRequest struct {
	Model  string
	Prompt string
	Tools  []domain.Tool
	Mode   domain.InteractionMode
}

// Client is the LLM provider collaborator. Complete blocks until the model's
// final textual answer is available, after zero or more tool invocations
// resolved by the client itself.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Executor runs a single (model, task) evaluation.
type Executor struct {
	Client Client
	Logger *slog.Logger
}

// Run prepares the output directory, invokes the model with the task's
// prompt and tools, then validates whatever landed on disk. Client and setup
// errors are converted into a failed TaskResult here; they never abort
// sibling evaluations.
func (e *Executor) Run(ctx context.Context, model string, task domain.Task, outputDir string) domain.TaskResult {
	fail := func(err error) domain.TaskResult {
		return domain.TaskResult{
			TaskName:   task.Name,
			Kind:       domain.FailureInvocation,
			Error:      err.Error(),
			OutputPath: outputDir,
		}
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fail(err)
	}

	tools := task.Tools(outputDir)

	e.Logger.Info("evaluating task", "model", model, "task", task.Name, "dir", outputDir)

	text, err := e.Client.Complete(ctx, CompletionRequest{
		Model:  model,
		Prompt: task.Prompt,
		Tools:  tools,
		Mode:   task.Mode,
	})
	if err != nil {
		return fail(err)
	}

	e.Logger.Debug("model finished", "model", model, "task", task.Name, "response_chars", len(text))

	return task.Validate(ctx, outputDir)
}
