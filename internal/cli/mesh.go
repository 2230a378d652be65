package cli

import (
	"context"
	"os"

	"github.com/scadbench/scadbench/internal/config"
	"github.com/scadbench/scadbench/internal/logging"
	"github.com/scadbench/scadbench/internal/metrics"
	"github.com/scadbench/scadbench/internal/presentation"
	"github.com/scadbench/scadbench/pkg/domain"
)

// RunMesh evaluates every configured model against the task set (or a single
// filtered task) and prints the aggregate summary. Returns
// ErrEvaluationFailed if any model run failed.
func RunMesh(ctx context.Context, opts Options, modelsPath, taskFilter string) error {
	modelsFile, err := config.LoadModels(modelsPath)
	if err != nil {
		return err
	}

	hooks := taskHooks()
	hooks.OnMeshResult = func(r domain.MeshResult) {
		presentation.PrintMeshResult(os.Stdout, r)
		metrics.EvalCompleted(r.Success)
	}

	mesh, logger := NewMesh(opts, hooks)

	if opts.MetricsAddr != "" {
		metricsCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		metrics.Serve(metricsCtx, opts.MetricsAddr, logger)
	}

	if modelsFile.Metadata != nil && modelsFile.Metadata.Description != "" {
		logger.Info("models file loaded",
			"models", len(modelsFile.Models),
			"description", modelsFile.Metadata.Description)
	}

	summary, err := mesh.Run(ctx, modelsFile.Models, taskFilter)
	if err != nil {
		return err
	}

	presentation.PrintSummary(os.Stdout, summary)

	if summary.Failed > 0 {
		return ErrEvaluationFailed
	}
	return nil
}

// ListTasks prints the registered task names and descriptions. No provider
// credential is needed for listing.
func ListTasks(opts Options) {
	reg := NewRegistry(opts, logging.NewNop())
	for _, name := range reg.Names() {
		task, _ := reg.Get(name)
		os.Stdout.WriteString(name + "\t" + task.Description + "\n")
	}
}
