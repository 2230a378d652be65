// Package openscad invokes the OpenSCAD binary as the external geometry
// renderer.
package openscad

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/scadbench/scadbench/internal/metrics"
	"github.com/scadbench/scadbench/pkg/validate"
)

// DefaultBinary is used when no explicit binary path is configured.
const DefaultBinary = "openscad"

// Runner implements validate.Renderer on top of the openscad CLI.
// Every invocation forces a full re-render on the manifold backend with
// auto-centering and full-scene framing, so the output image always shows
// the whole part regardless of the script's own viewport.
type Runner struct {
	binary string
	logger *slog.Logger
}

var _ validate.Renderer = (*Runner)(nil)

// New creates a runner for the given binary path. An empty path selects
// DefaultBinary from $PATH.
func New(binary string, logger *slog.Logger) *Runner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Runner{binary: binary, logger: logger}
}

// args builds the fixed CLI invocation for one render.
func args(sourcePath, outputPath string, camera *validate.Camera) []string {
	a := []string{
		"-o", outputPath,
		"--render",
		"--backend=manifold",
		"--autocenter",
		"--viewall",
	}
	if camera != nil {
		a = append(a, "--camera="+cameraArg(camera))
	}
	return append(a, sourcePath)
}

// cameraArg joins translation and rotation into the single comma-separated
// argument openscad expects: tx,ty,tz,rx,ry,rz (rotation in degrees).
func cameraArg(camera *validate.Camera) string {
	parts := make([]string, 0, 6)
	for _, v := range camera.Translation {
		parts = append(parts, strconv.FormatFloat(v, 'f', -1, 64))
	}
	for _, v := range camera.Rotation {
		parts = append(parts, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return strings.Join(parts, ",")
}

// Render runs the renderer to completion and returns its captured streams.
// The error reflects the process exit status; callers decide what a failure
// means. Output streams are returned opaque even when the process fails.
func (r *Runner) Render(ctx context.Context, sourcePath, outputPath string, camera *validate.Camera) (validate.RenderOutput, error) {
	cmdArgs := args(sourcePath, outputPath, camera)

	r.logger.Debug("invoking renderer", "binary", r.binary, "args", cmdArgs)

	cmd := exec.CommandContext(ctx, r.binary, cmdArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	metrics.RenderCompleted(err == nil, time.Since(start))

	out := validate.RenderOutput{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		return out, fmt.Errorf("renderer %s failed: %w", r.binary, err)
	}
	return out, nil
}
