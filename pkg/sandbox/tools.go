package sandbox

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/scadbench/scadbench/pkg/domain"
)

type writeArgs struct {
	Path    string `mapstructure:"path"`
	Content string `mapstructure:"content"`
}

type readArgs struct {
	Path string `mapstructure:"path"`
}

// Tools returns the file capability set bound to workDir. This is the
// standard ToolFactory used by the shipped tasks.
func Tools(workDir string) []domain.Tool {
	store := New(workDir)
	return []domain.Tool{WriteTool(store), ReadTool(store)}
}

// WriteTool exposes Store.WriteFile as a model capability.
func WriteTool(store *Store) domain.Tool {
	return domain.Tool{
		Name:        "write_file",
		Description: "Write a text file inside the task working directory. Overwrites the file if it already exists and creates parent directories as needed. The path must be relative.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{
					"type":        "string",
					"description": "Relative path of the file to write, e.g. bracket.scad.",
				},
				"content": map[string]any{
					"type":        "string",
					"description": "Full text content of the file.",
				},
			},
			"required": []string{"path", "content"},
		},
		OutputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path":          map[string]any{"type": "string"},
				"bytes_written": map[string]any{"type": "integer"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			var in writeArgs
			if err := mapstructure.Decode(args, &in); err != nil {
				return nil, fmt.Errorf("invalid write_file arguments: %w", err)
			}
			if in.Path == "" {
				return nil, fmt.Errorf("write_file requires a path")
			}

			n, err := store.WriteFile(in.Path, in.Content)
			if err != nil {
				return nil, err
			}

			return map[string]any{"path": in.Path, "bytes_written": n}, nil
		},
	}
}

// ReadTool exposes Store.ReadFile as a model capability.
func ReadTool(store *Store) domain.Tool {
	return domain.Tool{
		Name:        "read_file",
		Description: "Read a text file from the task working directory. The path must be relative.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{
					"type":        "string",
					"description": "Relative path of the file to read.",
				},
			},
			"required": []string{"path"},
		},
		OutputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"content": map[string]any{"type": "string"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			var in readArgs
			if err := mapstructure.Decode(args, &in); err != nil {
				return nil, fmt.Errorf("invalid read_file arguments: %w", err)
			}
			if in.Path == "" {
				return nil, fmt.Errorf("read_file requires a path")
			}

			content, err := store.ReadFile(in.Path)
			if err != nil {
				return nil, err
			}

			return map[string]any{"content": content}, nil
		},
	}
}
