// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexmap

package regexmap

import (
	"fmt"
	"os"
)

// LoadEntriesFile reads and parses expression rules from a file.
func LoadEntriesFile(path string) ([]Entry[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := ParseEntries(f)
	if err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	return entries, nil
}

// LoadEntriesFiles reads and merges expression rules from files in the given order.
//
// Returned entries preserve file order and rule order inside each file.
func LoadEntriesFiles(paths ...string) ([]Entry[string], error) {
	out := make([]Entry[string], 0, len(paths)*8)
	for _, path := range paths {
		entries, err := LoadEntriesFile(path)
		if err != nil {
			return nil, err
		}

		out = append(out, entries...)
	}

	return out, nil
}
