package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/scadbench/scadbench/internal/metrics"
	"github.com/scadbench/scadbench/internal/presentation"
	"github.com/scadbench/scadbench/pkg/domain"
	"github.com/scadbench/scadbench/pkg/eval"
)

// taskHooks prints each task outcome as it resolves and feeds the metrics
// collectors.
func taskHooks() eval.Hooks {
	return eval.Hooks{
		OnTaskResult: func(model string, r domain.TaskResult) {
			presentation.PrintTaskResult(os.Stdout, r)
			if !r.Success {
				metrics.TaskFailed(string(r.Kind))
			}
		},
	}
}

// RunSingle evaluates one model against the task set (or a single filtered
// task), printing per-task status lines and a summary. Returns
// ErrEvaluationFailed if any task failed.
func RunSingle(ctx context.Context, opts Options, model, taskFilter string) error {
	mesh, logger := NewMesh(opts, taskHooks())

	results, runDir, err := mesh.RunModel(ctx, model, taskFilter)
	if err != nil {
		return err
	}

	logger.Info("run complete", "model", model, "run_dir", runDir)

	fmt.Printf("\n%s -> %s\n", model, runDir)
	meshResults := make([]domain.MeshResult, 0, len(results))
	for _, r := range results {
		meshResults = append(meshResults, domain.MeshResult{
			Model:   model,
			Task:    r.TaskName,
			Success: r.Success,
			Error:   r.Error,
		})
	}

	summary := domain.Summarize(meshResults)
	presentation.PrintSummary(os.Stdout, summary)

	if summary.Failed > 0 {
		return ErrEvaluationFailed
	}
	return nil
}
