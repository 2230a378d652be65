// Package validate scores a task's output directory through a fixed sequence
// of existence checks and external render invocations.
package validate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/scadbench/scadbench/pkg/domain"
)

// Camera positions the renderer for one view. Rotation is in degrees.
type Camera struct {
	Translation [3]float64
	Rotation    [3]float64
}

// RenderOutput carries the captured streams of one renderer invocation.
// Both are opaque; the pipeline never parses them.
type RenderOutput struct {
	Stdout string
	Stderr string
}

// Renderer invokes the external geometry renderer for one source/output pair.
// A nil camera requests the renderer's default view. The returned error
// reflects the process exit status; RenderOutput is populated either way.
type Renderer interface {
	Render(ctx context.Context, sourcePath, outputPath string, camera *Camera) (RenderOutput, error)
}

// View is one named camera configuration. Each view produces one distinct
// output file and one metadata entry under Key.
type View struct {
	Name   string
	Key    string
	Output string
	Camera *Camera
}

// Pipeline validates one task's artifact: the declared source file must
// exist, then every view must both render successfully and leave its output
// file on disk. The sequence is fail-fast with no retry; metadata accumulates
// the stages that completed before a failure.
type Pipeline struct {
	TaskName string
	Artifact string
	Views    []View
	Renderer Renderer
	Logger   *slog.Logger
}

// Func returns the pipeline as a task validator.
func (p Pipeline) Func() domain.ValidateFunc {
	return p.Run
}

func (p Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Run executes the validation state machine against outputDir.
func (p Pipeline) Run(ctx context.Context, outputDir string) domain.TaskResult {
	result := domain.TaskResult{
		TaskName:   p.TaskName,
		OutputPath: outputDir,
	}

	artifactPath := filepath.Join(outputDir, p.Artifact)
	if _, err := os.Stat(artifactPath); err != nil {
		// Later stages never ran, so the result carries no metadata.
		result.Kind = domain.FailureMissingArtifact
		result.Error = fmt.Sprintf("expected artifact %s was not created in %s", p.Artifact, outputDir)
		return result
	}

	metadata := map[string]any{
		"artifactPath": artifactPath,
	}

	for _, view := range p.Views {
		outputPath := filepath.Join(outputDir, view.Output)

		p.logger().Debug("rendering view", "task", p.TaskName, "view", view.Name, "output", outputPath)

		out, err := p.Renderer.Render(ctx, artifactPath, outputPath, view.Camera)
		stage := map[string]any{
			"success": err == nil,
			"stdout":  out.Stdout,
			"stderr":  out.Stderr,
		}
		metadata[view.Key] = stage

		if err != nil {
			result.Kind = domain.FailureRenderFailed
			result.Error = fmt.Sprintf("render failed for %s view: %v", view.Name, err)
			result.Metadata = metadata
			return result
		}

		if _, statErr := os.Stat(outputPath); statErr != nil {
			// The renderer exited zero without producing the file.
			stage["success"] = false
			result.Kind = domain.FailureOutputMissing
			result.Error = fmt.Sprintf("renderer reported success but %s view output %s is missing", view.Name, view.Output)
			result.Metadata = metadata
			return result
		}

		stage["outputPath"] = outputPath
	}

	result.Success = true
	result.Metadata = metadata
	return result
}
