// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexmap

package regexmap

import (
	"regexp"
	"strings"
)

// LiteralEntry returns an entry matching exactly key and nothing else.
//
// The key is quoted so regex metacharacters match literally, and the
// expression is anchored at both ends.
func LiteralEntry[V any](key string, value V) Entry[V] {
	return Entry[V]{
		Pattern: "^" + regexp.QuoteMeta(key) + "$",
		Value:   value,
	}
}

// LiteralEntries converts a key list to exact-match entries sharing one value.
//
// Empty and blank keys are skipped. Input order is preserved.
func LiteralEntries[V any](keys []string, value V) []Entry[V] {
	entries := make([]Entry[V], 0, len(keys))
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		entries = append(entries, LiteralEntry(key, value))
	}

	return entries
}
