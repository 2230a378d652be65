// Package registry indexes task descriptors by name.
package registry

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/scadbench/scadbench/pkg/domain"
)

// Registry manages the available tasks. It is built once at startup and
// treated as read-only afterwards; enumeration order is registration order.
type Registry struct {
	mu    sync.RWMutex
	tasks map[string]domain.Task
	order []string
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		tasks: make(map[string]domain.Task),
	}
}

// Register adds a task to the registry. Tasks missing any required field
// (name, description, prompt, tool factory, validator) are rejected, as are
// duplicate names.
func (r *Registry) Register(task domain.Task) error {
	if !task.Complete() {
		return fmt.Errorf("task %q is missing required fields", task.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[task.Name]; exists {
		return fmt.Errorf("task %q already registered", task.Name)
	}

	r.tasks[task.Name] = task
	r.order = append(r.order, task.Name)
	return nil
}

// RegisterAll registers every task, skipping malformed descriptors with a
// warning instead of failing the whole set.
func (r *Registry) RegisterAll(logger *slog.Logger, tasks ...domain.Task) {
	for _, task := range tasks {
		if err := r.Register(task); err != nil {
			logger.Warn("skipping task", "task", task.Name, "err", err)
		}
	}
}

// Get returns the task and whether it exists. Missing names are signaled via
// the boolean, never via a panic.
func (r *Registry) Get(name string) (domain.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[name]
	return task, ok
}

// Has reports whether a task with the given name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.tasks[name]
	return ok
}

// Names returns a snapshot of registered task names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
