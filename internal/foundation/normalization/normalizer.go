// Package normalization maps loosely written option values (any case,
// surrounding spaces, aliases) onto their canonical form.
package normalization

import (
	"sort"
	"strings"
)

// Normalizer maps accepted spellings to a canonical value of type T.
type Normalizer[T comparable] struct {
	values    map[string]T
	validKeys []string
}

// NewNormalizer builds a Normalizer from accepted spellings. Keys are matched
// case-insensitively after trimming spaces.
func NewNormalizer[T comparable](values map[string]T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	validKeys := make([]string, 0, len(values))
	for k, v := range values {
		key := clean(k)
		normalized[key] = v
		validKeys = append(validKeys, key)
	}
	sort.Strings(validKeys)

	return &Normalizer[T]{values: normalized, validKeys: validKeys}
}

// Normalize returns the canonical value for raw and whether raw was accepted.
func (n *Normalizer[T]) Normalize(raw string) (T, bool) {
	v, ok := n.values[clean(raw)]
	return v, ok
}

// ValidKeys returns the accepted spellings in sorted order.
func (n *Normalizer[T]) ValidKeys() []string {
	out := make([]string, len(n.validKeys))
	copy(out, n.validKeys)
	return out
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
