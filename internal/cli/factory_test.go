package cli

import (
	"testing"

	"github.com/scadbench/scadbench/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry(Options{}, logging.NewNop())
	assert.Equal(t, []string{"bracket", "flange", "spur-gear"}, reg.Names())
}

func TestNewMesh(t *testing.T) {
	mesh, logger := NewMesh(Options{
		APIKey:     "test-key",
		OutputRoot: t.TempDir(),
		LogLevel:   "error",
	}, taskHooks())

	require.NotNil(t, logger)
	require.NotNil(t, mesh.Executor)
	require.NotNil(t, mesh.Executor.Client)
	assert.Len(t, mesh.Registry.Names(), 3)
}
