package template

import "sort"

// Template is a flat path->value store. The framework pre-populates the
// expected schema paths; the reader fills values in and leaves unresolved
// paths absent.
type Template struct {
	entries map[string]any
}

// New returns an empty template.
func New() *Template {
	return &Template{entries: make(map[string]any)}
}

// Clear removes all entries.
func (t *Template) Clear() {
	t.entries = make(map[string]any)
}

// Set stores a value under path, replacing any previous value.
func (t *Template) Set(path string, value any) {
	t.entries[path] = value
}

// Get returns the value stored under path.
func (t *Template) Get(path string) (any, bool) {
	v, ok := t.entries[path]
	return v, ok
}

// Has reports whether path carries a value.
func (t *Template) Has(path string) bool {
	_, ok := t.entries[path]
	return ok
}

// Len returns the number of populated paths.
func (t *Template) Len() int {
	return len(t.entries)
}

// Paths returns all populated paths in lexical order.
func (t *Template) Paths() []string {
	paths := make([]string, 0, len(t.entries))
	for p := range t.entries {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	return paths
}

// Entries returns a copy of the underlying path->value mapping.
func (t *Template) Entries() map[string]any {
	out := make(map[string]any, len(t.entries))
	for k, v := range t.entries {
		out[k] = v
	}

	return out
}
