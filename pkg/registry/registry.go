package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/ddbg/pkg/errors"
)

// Entry is one named item of a List.
type Entry[T any] struct {
	Name string
	Doc  string
	Item T
}

// List is a thread-safe set of entries keyed by name.
type List[T any] struct {
	mu      sync.RWMutex
	entries map[string]Entry[T]
}

// New creates an empty List.
func New[T any]() *List[T] {
	return &List[T]{entries: make(map[string]Entry[T])}
}

// Add inserts e. Names must be non-empty, contain no whitespace and be
// unique within the list.
func (l *List[T]) Add(e Entry[T]) error {
	if e.Name == "" || strings.ContainsAny(e.Name, " \t\n") {
		return errors.Newf(errors.ErrInvalidInput, "invalid command name %q", e.Name)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.entries[e.Name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "command '%s' is already registered", e.Name)
	}
	l.entries[e.Name] = e
	return nil
}

// Lookup returns the entry registered under exactly name.
func (l *List[T]) Lookup(name string) (Entry[T], bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	e, ok := l.entries[name]
	return e, ok
}

// Match returns the entries word may stand for: the exact entry when one
// exists, otherwise every entry whose name starts with word, sorted by
// name.
func (l *List[T]) Match(word string) []Entry[T] {
	if word == "" {
		return nil
	}
	if e, ok := l.Lookup(word); ok {
		return []Entry[T]{e}
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	var matches []Entry[T]
	for name, e := range l.entries {
		if strings.HasPrefix(name, word) {
			matches = append(matches, e)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	return matches
}

// Names returns all registered names in sorted order.
func (l *List[T]) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.entries))
	for name := range l.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries.
func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}
