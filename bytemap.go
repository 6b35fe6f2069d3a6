// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexmap

package regexmap

import (
	"iter"
	"slices"
)

// ByteMap is an immutable associative container keyed by regular expressions
// over arbitrary byte sequences. Expressions are still supplied as text;
// lookup keys need no encoding validity.
type ByteMap[V any] struct {
	set      bytePatternSet
	patterns []string
	values   []V
}

// NewByteMap compiles entries into a byte-keyed map with default options.
func NewByteMap[V any](entries []Entry[V]) (*ByteMap[V], error) {
	return NewByteMapWithOptions(entries, Options{})
}

// NewByteMapWithOptions compiles entries into a byte-keyed map.
//
// Entry order is significant: lookups yield values in declaration order.
// Compilation fails on the first invalid expression and no map is returned.
// EngineRegexp2 cannot match byte keys and fails with ErrEngineUnsupported.
func NewByteMapWithOptions[V any](entries []Entry[V], opts Options) (*ByteMap[V], error) {
	opts.applyDefaults()

	patterns, values := splitEntries(entries)
	set, err := compileByteSet(foldExpressions(patterns, opts), opts.Engine)
	if err != nil {
		return nil, err
	}

	return &ByteMap[V]{
		set:      set,
		patterns: patterns,
		values:   values,
	}, nil
}

// Get returns a lazy sequence of values whose expression matches key,
// ordered by entry declaration index. Matching is existential per entry.
//
// Sequence semantics are the same as Map.Get: indices are computed by the
// Get call, mapping to values is lazy and re-rangeable, yielded pointers
// alias the map's value list.
func (m *ByteMap[V]) Get(key []byte) iter.Seq[*V] {
	idx := m.set.byteMatches(key)
	return func(yield func(*V) bool) {
		for _, i := range idx {
			if !yield(&m.values[i]) {
				return
			}
		}
	}
}

// First returns the value of the first declared entry matching key.
func (m *ByteMap[V]) First(key []byte) (*V, bool) {
	for v := range m.Get(key) {
		return v, true
	}

	return nil, false
}

// All returns every matching value as a slice in declaration order.
func (m *ByteMap[V]) All(key []byte) []*V {
	idx := m.set.byteMatches(key)
	out := make([]*V, len(idx))
	for n, i := range idx {
		out[n] = &m.values[i]
	}

	return out
}

// ContainsKey reports whether at least one entry expression matches key.
func (m *ByteMap[V]) ContainsKey(key []byte) bool {
	return m.set.isByteMatch(key)
}

// Len returns the number of entries compiled into the map.
func (m *ByteMap[V]) Len() int {
	return len(m.values)
}

// Patterns returns entry expressions in declaration order.
func (m *ByteMap[V]) Patterns() []string {
	return slices.Clone(m.patterns)
}
