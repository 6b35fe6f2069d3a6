// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexmap

package regexmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// entrySeparator splits a rules line into expression and value.
const entrySeparator = "=>"

// ParseEntries parses expression rules from reader, one rule per line:
//
//	pattern => value
//
// Semantics:
// - blank lines and comments are ignored
// - "\#" escapes a leading comment token
// - the last "=>" on a line separates expression from value
// - both sides are trimmed; an empty expression is an error
func ParseEntries(r io.Reader) ([]Entry[string], error) {
	s := bufio.NewScanner(r)
	entries := make([]Entry[string], 0, 16)

	lineNum := 0
	for s.Scan() {
		lineNum++

		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, `\#`) {
			line = line[1:]
		}

		sep := strings.LastIndex(line, entrySeparator)
		if sep < 0 {
			return nil, fmt.Errorf("%w: line %d: missing %q separator", ErrInvalidEntry, lineNum, entrySeparator)
		}

		pattern := strings.TrimSpace(line[:sep])
		if pattern == "" {
			return nil, fmt.Errorf("%w: line %d: empty pattern", ErrInvalidEntry, lineNum)
		}

		entries = append(entries, Entry[string]{
			Pattern: pattern,
			Value:   strings.TrimSpace(line[sep+len(entrySeparator):]),
		})
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan entries: %w", err)
	}

	return entries, nil
}

// ParseEntriesString parses expression rules from string input.
func ParseEntriesString(src string) ([]Entry[string], error) {
	return ParseEntries(strings.NewReader(src))
}
