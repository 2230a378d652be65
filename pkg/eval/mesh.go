package eval

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/scadbench/scadbench/pkg/domain"
	"github.com/scadbench/scadbench/pkg/registry"
)

// AllTasksLabel is the MeshResult task label used when no filter is applied.
const AllTasksLabel = "all tasks"

// Hooks are optional observation points for mesh progress. Nil funcs are
// skipped.
type Hooks struct {
	OnTaskResult func(model string, result domain.TaskResult)
	OnMeshResult func(result domain.MeshResult)
}

// Mesh iterates a configured set of models against the registered tasks,
// strictly sequentially: model M+1 does not begin until model M's last
// validation fully resolves. One model's failure never aborts the others.
type Mesh struct {
	Executor   *Executor
	Registry   *registry.Registry
	OutputRoot string
	Logger     *slog.Logger
	Hooks      Hooks

	// Now supplies run timestamps; defaults to time.Now.
	Now func() time.Time
}

func (m *Mesh) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// resolveTasks returns the ordered task set for one run: either the single
// filtered task or the full registry enumeration.
func (m *Mesh) resolveTasks(taskFilter string) ([]string, error) {
	if taskFilter == "" {
		return m.Registry.Names(), nil
	}
	if !m.Registry.Has(taskFilter) {
		return nil, fmt.Errorf("%w: %q (known: %v)", domain.ErrTaskNotFound, taskFilter, m.Registry.Names())
	}
	return []string{taskFilter}, nil
}

// RunModel evaluates one model against the resolved task set inside a fresh
// run directory. Tasks execute in enumeration order; each gets its own
// subdirectory so runs never contend on disk. The returned slice holds one
// TaskResult per task, in order.
func (m *Mesh) RunModel(ctx context.Context, model, taskFilter string) ([]domain.TaskResult, string, error) {
	names, err := m.resolveTasks(taskFilter)
	if err != nil {
		return nil, "", err
	}

	runDir := filepath.Join(m.OutputRoot, RunDirName(model, m.now()))

	results := make([]domain.TaskResult, 0, len(names))
	for _, name := range names {
		task, ok := m.Registry.Get(name)
		if !ok {
			// Registry is read-only after startup, so this indicates a bug.
			return results, runDir, fmt.Errorf("%w: %q disappeared from registry", domain.ErrTaskNotFound, name)
		}

		result := m.Executor.Run(ctx, model, task, filepath.Join(runDir, task.Name))
		results = append(results, result)

		if m.Hooks.OnTaskResult != nil {
			m.Hooks.OnTaskResult(model, result)
		}
	}

	return results, runDir, nil
}

// Run executes the full mesh: every model in list order against the resolved
// task set, collecting one aggregate MeshResult per model run. The summary's
// failure list preserves model order.
func (m *Mesh) Run(ctx context.Context, models []string, taskFilter string) (domain.Summary, error) {
	// Surface an unknown task before any model call; this is a configuration
	// error, not an evaluation failure.
	if _, err := m.resolveTasks(taskFilter); err != nil {
		return domain.Summary{}, err
	}

	label := AllTasksLabel
	if taskFilter != "" {
		label = taskFilter
	}

	meshResults := make([]domain.MeshResult, 0, len(models))
	for _, model := range models {
		m.Logger.Info("mesh: evaluating model", "model", model, "tasks", label)

		mr := domain.MeshResult{Model: model, Task: label, Success: true}

		results, runDir, err := m.RunModel(ctx, model, taskFilter)
		if err != nil {
			mr.Success = false
			mr.Error = err.Error()
		}
		for _, r := range results {
			if !r.Success && mr.Success {
				mr.Success = false
				mr.Error = fmt.Sprintf("%s: %s", r.TaskName, r.Error)
			}
		}

		m.Logger.Info("mesh: model finished", "model", model, "success", mr.Success, "run_dir", runDir)

		if m.Hooks.OnMeshResult != nil {
			m.Hooks.OnMeshResult(mr)
		}
		meshResults = append(meshResults, mr)
	}

	return domain.Summarize(meshResults), nil
}
