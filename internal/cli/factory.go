// Package cli wires the benchmark components together for the commands in
// cmd/scadbench.
package cli

import (
	"errors"
	"log/slog"

	"github.com/scadbench/scadbench/internal/adapters/openrouter"
	"github.com/scadbench/scadbench/internal/adapters/openscad"
	"github.com/scadbench/scadbench/internal/logging"
	"github.com/scadbench/scadbench/pkg/eval"
	"github.com/scadbench/scadbench/pkg/registry"
	"github.com/scadbench/scadbench/pkg/tasks"
)

// ErrEvaluationFailed marks a run in which at least one evaluation failed.
// Commands translate it into exit code 1.
var ErrEvaluationFailed = errors.New("at least one evaluation failed")

// Options carries all configuration the commands resolve from flags and the
// environment. Deep components never look at the environment themselves.
type Options struct {
	APIKey      string
	BaseURL     string
	OutputRoot  string
	OpenSCADBin string
	LogLevel    string
	MetricsAddr string
}

// NewRegistry builds the task registry with every shipped task wired to the
// configured renderer.
func NewRegistry(opts Options, logger *slog.Logger) *registry.Registry {
	renderer := openscad.New(opts.OpenSCADBin, logger)

	reg := registry.New()
	reg.RegisterAll(logger, tasks.All(renderer)...)
	return reg
}

// NewMesh assembles the full evaluation stack: logger, registry, provider
// client, executor and orchestrator.
func NewMesh(opts Options, hooks eval.Hooks) (*eval.Mesh, *slog.Logger) {
	logger := logging.New(logging.ParseLevel(opts.LogLevel))

	client := openrouter.New(openrouter.Config{
		APIKey:  opts.APIKey,
		BaseURL: opts.BaseURL,
		Logger:  logger,
	})

	return &eval.Mesh{
		Executor:   &eval.Executor{Client: client, Logger: logger},
		Registry:   NewRegistry(opts, logger),
		OutputRoot: opts.OutputRoot,
		Logger:     logger,
		Hooks:      hooks,
	}, logger
}
