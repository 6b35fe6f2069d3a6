// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexmap

package regexmap

// MergeEntries merges entry slices preserving input order.
func MergeEntries[V any](entrySets ...[]Entry[V]) []Entry[V] {
	total := 0
	for _, set := range entrySets {
		total += len(set)
	}

	out := make([]Entry[V], 0, total)
	for _, set := range entrySets {
		out = append(out, set...)
	}

	return out
}
