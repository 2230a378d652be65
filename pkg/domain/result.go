package domain

// FailureKind classifies why a task evaluation failed.
type FailureKind string

const (
	// FailureMissingArtifact means the model never wrote the declared source file.
	FailureMissingArtifact FailureKind = "missing-artifact"
	// FailureRenderFailed means the renderer exited non-zero for a view.
	FailureRenderFailed FailureKind = "render-failed"
	// FailureOutputMissing means the renderer claimed success but the declared
	// output file does not exist. Kept distinct from FailureRenderFailed so
	// diagnostics can tell "tool lied" from "tool errored".
	FailureOutputMissing FailureKind = "output-missing"
	// FailureInvocation means the model client or run setup itself failed.
	FailureInvocation FailureKind = "invocation"
)

// TaskResult is the structured outcome of one task's validation.
// Error is set if and only if Success is false. Metadata accumulates partial
// progress: a failure at stage K still reports stages 1..K-1.
type TaskResult struct {
	TaskName   string         `json:"task"`
	Success    bool           `json:"success"`
	Kind       FailureKind    `json:"kind,omitempty"`
	Error      string         `json:"error,omitempty"`
	OutputPath string         `json:"output_path"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// MeshResult is one (model, task-label) outcome inside a mesh run.
// The label is "all tasks" when no filter was applied.
type MeshResult struct {
	Model   string `json:"model"`
	Task    string `json:"task"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Summary aggregates mesh results for reporting and exit-code policy.
type Summary struct {
	Total      int          `json:"total"`
	Successful int          `json:"successful"`
	Failed     int          `json:"failed"`
	Failures   []MeshResult `json:"failures,omitempty"`
}

// Summarize folds mesh results into a Summary, preserving input order in the
// failure list.
func Summarize(results []MeshResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Success {
			s.Successful++
			continue
		}
		s.Failed++
		s.Failures = append(s.Failures, r)
	}
	return s
}

// SuccessRate returns the fraction of successful results in [0,1].
// A summary with no results counts as fully successful.
func (s Summary) SuccessRate() float64 {
	if s.Total == 0 {
		return 1
	}
	return float64(s.Successful) / float64(s.Total)
}
