// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexmap

package regexmap

import "testing"

func TestLiteralEntry(t *testing.T) {
	t.Parallel()

	m, err := New([]Entry[int]{
		LiteralEntry("a.b+c", 1),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if !m.ContainsKey("a.b+c") {
		t.Fatalf("a.b+c must match its literal entry")
	}

	// Metacharacters are quoted, not interpreted.
	if m.ContainsKey("aXbbc") {
		t.Fatalf("aXbbc must not match quoted literal")
	}

	if m.ContainsKey("XX a.b+c XX") {
		t.Fatalf("literal entry must be anchored")
	}
}

func TestLiteralEntries(t *testing.T) {
	t.Parallel()

	got := LiteralEntries([]string{
		"alpha",
		"  beta  ",
		"",
		"   ",
	}, "known")

	want := []Entry[string]{
		{Pattern: "^alpha$", Value: "known"},
		{Pattern: "^beta$", Value: "known"},
	}

	if len(got) != len(want) {
		t.Fatalf("len(got)=%d, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry[%d]=%+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLiteralEntriesEmpty(t *testing.T) {
	t.Parallel()

	got := LiteralEntries(nil, 0)
	if len(got) != 0 {
		t.Fatalf("len(got)=%d, want 0", len(got))
	}
}
