// Package normalization maps loosely written configuration strings onto typed enums.
package normalization

import (
	"fmt"
	"sort"
	"strings"
)

// Normalizer converts raw strings to values of an enum type T.
type Normalizer[T comparable] struct {
	values   map[string]T
	fallback T
	keys     []string
}

// NewNormalizer builds a normalizer. Keys are case-folded and trimmed; fallback is
// returned by Normalize for unknown input.
func NewNormalizer[T comparable](values map[string]T, fallback T) *Normalizer[T] {
	n := &Normalizer[T]{
		values:   make(map[string]T, len(values)),
		fallback: fallback,
		keys:     make([]string, 0, len(values)),
	}
	for k, v := range values {
		key := clean(k)
		n.values[key] = v
		n.keys = append(n.keys, key)
	}
	sort.Strings(n.keys)
	return n
}

// Normalize returns the value for raw, or the fallback.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.values[clean(raw)]; ok {
		return v
	}
	return n.fallback
}

// Lookup returns the value for raw and reports whether raw was recognised.
func (n *Normalizer[T]) Lookup(raw string) (T, bool) {
	v, ok := n.values[clean(raw)]
	return v, ok
}

// NormalizeWithError is Normalize but rejects unknown input.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	if v, ok := n.Lookup(raw); ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q, valid options: %v", raw, n.keys)
}

// ValidKeys returns the accepted spellings in sorted order.
func (n *Normalizer[T]) ValidKeys() []string {
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

// Result is the outcome of NormalizeField.
type Result[T comparable] struct {
	Value   T
	Warning string
}

// NormalizeField normalizes raw and produces a warning when the stored spelling
// differs from the canonical one or falls back to the default.
func (n *Normalizer[T]) NormalizeField(field, raw string) Result[T] {
	cleaned := clean(raw)
	v, ok := n.values[cleaned]
	switch {
	case !ok && raw != "":
		return Result[T]{Value: n.fallback, Warning: fmt.Sprintf("unknown %s %q, using %v", field, raw, n.fallback)}
	case !ok:
		return Result[T]{Value: n.fallback}
	case cleaned != raw:
		return Result[T]{Value: v, Warning: fmt.Sprintf("normalized %s from %q to %q", field, raw, cleaned)}
	default:
		return Result[T]{Value: v}
	}
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
