// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexmap

package regexmap

import (
	"iter"
	"slices"
)

// Map is an immutable associative container keyed by regular expressions
// over text. A lookup returns every value whose expression matches the key.
type Map[V any] struct {
	set      patternSet
	patterns []string
	values   []V
}

// New compiles entries into a text-keyed map with default options.
func New[V any](entries []Entry[V]) (*Map[V], error) {
	return NewWithOptions(entries, Options{})
}

// NewWithOptions compiles entries into a text-keyed map.
//
// Entry order is significant: lookups yield values in declaration order.
// Compilation fails on the first invalid expression and no map is returned.
func NewWithOptions[V any](entries []Entry[V], opts Options) (*Map[V], error) {
	opts.applyDefaults()

	patterns, values := splitEntries(entries)
	set, err := compileSet(foldExpressions(patterns, opts), opts.Engine)
	if err != nil {
		return nil, err
	}

	return &Map[V]{
		set:      set,
		patterns: patterns,
		values:   values,
	}, nil
}

// Get returns a lazy sequence of values whose expression matches key,
// ordered by entry declaration index. Matching is existential per entry: an
// expression matching the key at several positions contributes its value
// once.
//
// The matched index set is computed by the Get call itself; the returned
// sequence only maps indices to values, so consuming one element and
// stopping costs nothing extra. Each Get call produces an independent,
// re-rangeable sequence. Yielded pointers alias the map's value list and
// stay valid as long as the map.
func (m *Map[V]) Get(key string) iter.Seq[*V] {
	idx := m.set.matches(key)
	return func(yield func(*V) bool) {
		for _, i := range idx {
			if !yield(&m.values[i]) {
				return
			}
		}
	}
}

// First returns the value of the first declared entry matching key.
func (m *Map[V]) First(key string) (*V, bool) {
	for v := range m.Get(key) {
		return v, true
	}

	return nil, false
}

// All returns every matching value as a slice in declaration order.
func (m *Map[V]) All(key string) []*V {
	idx := m.set.matches(key)
	out := make([]*V, len(idx))
	for n, i := range idx {
		out[n] = &m.values[i]
	}

	return out
}

// ContainsKey reports whether at least one entry expression matches key.
func (m *Map[V]) ContainsKey(key string) bool {
	return m.set.isMatch(key)
}

// Len returns the number of entries compiled into the map.
func (m *Map[V]) Len() int {
	return len(m.values)
}

// Patterns returns entry expressions in declaration order.
func (m *Map[V]) Patterns() []string {
	return slices.Clone(m.patterns)
}
