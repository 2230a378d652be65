package registry

import (
	"context"
	"testing"

	"github.com/scadbench/scadbench/internal/logging"
	"github.com/scadbench/scadbench/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTask(name string) domain.Task {
	return domain.Task{
		Name:        name,
		Description: "a test task",
		Prompt:      "do the thing",
		Mode:        domain.SingleExchange,
		Tools:       func(workDir string) []domain.Tool { return nil },
		Validate: func(ctx context.Context, outputDir string) domain.TaskResult {
			return domain.TaskResult{TaskName: name, Success: true, OutputPath: outputDir}
		},
	}
}

func TestRegistry(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(testTask("bracket")))
	require.NoError(t, reg.Register(testTask("flange")))

	t.Run("Get Returns Registered Task", func(t *testing.T) {
		for _, name := range reg.Names() {
			assert.True(t, reg.Has(name))
			task, ok := reg.Get(name)
			require.True(t, ok)
			assert.Equal(t, name, task.Name)
		}
	})

	t.Run("Missing Task Signals Absence Without Panicking", func(t *testing.T) {
		assert.False(t, reg.Has("gearbox"))
		_, ok := reg.Get("gearbox")
		assert.False(t, ok)
	})

	t.Run("Names Preserve Registration Order", func(t *testing.T) {
		assert.Equal(t, []string{"bracket", "flange"}, reg.Names())

		// Snapshot: mutating the returned slice must not affect the registry.
		names := reg.Names()
		names[0] = "mutated"
		assert.Equal(t, []string{"bracket", "flange"}, reg.Names())
	})

	t.Run("Duplicate Names Rejected", func(t *testing.T) {
		assert.Error(t, reg.Register(testTask("bracket")))
	})
}

func TestRegistry_ShapeValidation(t *testing.T) {
	reg := New()

	incomplete := testTask("no-validator")
	incomplete.Validate = nil

	noPrompt := testTask("no-prompt")
	noPrompt.Prompt = ""

	reg.RegisterAll(logging.NewNop(), testTask("ok"), incomplete, noPrompt)

	assert.Equal(t, []string{"ok"}, reg.Names())
	assert.False(t, reg.Has("no-validator"))
	assert.False(t, reg.Has("no-prompt"))
}
