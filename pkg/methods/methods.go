// Package methods is a tag-indexed registry of named callables: reusable
// game mechanics and AI tactics that content can invoke by name.
package methods

import (
	"errors"
	"fmt"
)

// ErrUnknownMethod is returned when running a name that was never
// registered. This indicates a wiring bug, not a runtime game condition;
// callers should treat it as fatal rather than report it as a game result.
var ErrUnknownMethod = errors.New("unknown method")

// Handler is an arbitrary registered callable.
type Handler func(args ...any) (any, error)

// Entry describes one registered method.
type Entry struct {
	Name        string
	Description string
	Tags        []string
	Handler     Handler
}

// Library stores methods by name and preserves registration order for
// tag listings.
type Library struct {
	entries map[string]*Entry
	order   []string
}

// NewLibrary creates an empty method library.
func NewLibrary() *Library {
	return &Library{
		entries: make(map[string]*Entry),
	}
}

// Register adds or replaces a method by name.
func (l *Library) Register(name, description string, tags []string, handler Handler) {
	if _, exists := l.entries[name]; !exists {
		l.order = append(l.order, name)
	}
	l.entries[name] = &Entry{
		Name:        name,
		Description: description,
		Tags:        tags,
		Handler:     handler,
	}
}

// Get returns the entry by name, or nil when absent.
func (l *Library) Get(name string) *Entry {
	return l.entries[name]
}

// ByTag returns all entries carrying the tag, in registration order.
func (l *Library) ByTag(tag string) []*Entry {
	var out []*Entry
	for _, name := range l.order {
		entry := l.entries[name]
		for _, t := range entry.Tags {
			if t == tag {
				out = append(out, entry)
				break
			}
		}
	}
	return out
}

// Run invokes a registered method by name.
func (l *Library) Run(name string, args ...any) (any, error) {
	entry := l.entries[name]
	if entry == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, name)
	}
	return entry.Handler(args...)
}
