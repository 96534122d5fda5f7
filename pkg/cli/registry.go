package cli

import (
	"sort"
	"strings"
)

// registration is a single registry entry.
type registration struct {
	name    string
	factory Factory
}

// Registry maps command names to factories. Keys are case-insensitive and
// entries cannot be replaced once registered. A Registry is owned by one
// Application and is not safe for concurrent use.
type Registry struct {
	entries map[string]registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]registration),
	}
}

// Key returns the canonical registry key for a command name.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds a factory under name.
func (r *Registry) Register(name string, factory Factory) error {
	key := Key(name)
	if key == "" {
		return &InvalidCommandError{Name: name, Reason: "name cannot be empty"}
	}
	if strings.HasPrefix(key, "-") || strings.ContainsAny(key, " \t") {
		return &InvalidCommandError{Name: name, Reason: "name must be a single word not starting with '-'"}
	}
	if factory == nil {
		return &InvalidCommandError{Name: name, Reason: "factory cannot be nil"}
	}

	if _, exists := r.entries[key]; exists {
		return &DuplicateCommandError{Key: key}
	}

	r.entries[key] = registration{name: name, factory: factory}
	return nil
}

// Resolve returns the registry key for name. ok is false when name is empty
// or not registered.
func (r *Registry) Resolve(name string) (key string, ok bool) {
	key = Key(name)
	if key == "" {
		return "", false
	}
	if _, exists := r.entries[key]; !exists {
		return "", false
	}
	return key, true
}

// Instantiate creates a new command for key. Every call returns a fresh
// instance.
func (r *Registry) Instantiate(key string) (Command, error) {
	entry, exists := r.entries[key]
	if !exists {
		return nil, &InvalidCommandError{Name: key, Reason: "not registered"}
	}

	cmd := entry.factory()
	if cmd == nil {
		return nil, &InvalidCommandError{Name: entry.name, Reason: "factory returned nil"}
	}
	return cmd, nil
}

// Keys returns all registry keys in lexicographic order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.entries)
}
