// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexmap

package regexmap

import (
	"errors"
	"slices"
	"testing"
)

// byteEngines are engines available for byte keys in a default build.
var byteEngines = []Engine{EngineRE2, EngineStandard}

func collectBytes[V any](m *ByteMap[V], key []byte) []V {
	var out []V
	for v := range m.Get(key) {
		out = append(out, *v)
	}

	return out
}

func TestByteMapGetOrder(t *testing.T) {
	t.Parallel()

	for _, engine := range byteEngines {
		t.Run(engine.String(), func(t *testing.T) {
			t.Parallel()

			m, err := NewByteMapWithOptions(overlapEntries(), Options{Engine: engine})
			if err != nil {
				t.Fatalf("NewByteMapWithOptions: %v", err)
			}

			if m.Len() != 6 {
				t.Fatalf("Len()=%d, want 6", m.Len())
			}

			cases := []struct {
				key  []byte
				want []int
			}{
				{[]byte("foo"), []int{1, 4}},
				{[]byte("bar"), []int{2, 5}},
				{[]byte("foobar"), []int{1, 2, 3, 6}},
				{[]byte("XXX foo XXX"), []int{1}},
				{[]byte("XXX bar XXX"), []int{2}},
			}

			for _, tc := range cases {
				got := collectBytes(m, tc.key)
				if !slices.Equal(got, tc.want) {
					t.Fatalf("Get(%q)=%v, want %v", tc.key, got, tc.want)
				}
			}
		})
	}
}

func TestByteMapFirst(t *testing.T) {
	t.Parallel()

	m, err := NewByteMap([]Entry[int]{
		{Pattern: "foo", Value: 1},
		{Pattern: "bar", Value: 2},
	})
	if err != nil {
		t.Fatalf("NewByteMap: %v", err)
	}

	v, ok := m.First([]byte("foo"))
	if !ok || *v != 1 {
		t.Fatalf("First(foo)=%v,%v, want 1,true", v, ok)
	}
}

func TestByteMapNoMatch(t *testing.T) {
	t.Parallel()

	m, err := NewByteMap([]Entry[int]{
		{Pattern: "foo", Value: 1},
	})
	if err != nil {
		t.Fatalf("NewByteMap: %v", err)
	}

	if m.ContainsKey([]byte("baz")) {
		t.Fatalf("ContainsKey(baz) must be false")
	}

	if got := collectBytes(m, []byte("baz")); len(got) != 0 {
		t.Fatalf("Get(baz)=%v, want empty", got)
	}
}

func TestByteMapNonUTF8Key(t *testing.T) {
	t.Parallel()

	for _, engine := range byteEngines {
		t.Run(engine.String(), func(t *testing.T) {
			t.Parallel()

			m, err := NewByteMapWithOptions([]Entry[int]{
				{Pattern: "foo", Value: 1},
			}, Options{Engine: engine})
			if err != nil {
				t.Fatalf("NewByteMapWithOptions: %v", err)
			}

			// Keys are raw bytes, encoding validity is not required.
			key := []byte{0xff, 0xfe, 'f', 'o', 'o', 0xff}
			if !m.ContainsKey(key) {
				t.Fatalf("key with invalid UTF-8 around match must still match")
			}

			if got := collectBytes(m, key); !slices.Equal(got, []int{1}) {
				t.Fatalf("Get=%v, want [1]", got)
			}
		})
	}
}

func TestByteMapInvalidPattern(t *testing.T) {
	t.Parallel()

	m, err := NewByteMap([]Entry[int]{
		{Pattern: "(", Value: 1},
	})
	if err == nil {
		t.Fatalf("unbalanced group must fail to compile")
	}

	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("err=%v, want ErrInvalidPattern", err)
	}

	if m != nil {
		t.Fatalf("failed construction must not return a map")
	}
}

func TestByteMapRegexp2Unsupported(t *testing.T) {
	t.Parallel()

	_, err := NewByteMapWithOptions([]Entry[int]{
		{Pattern: "foo", Value: 1},
	}, Options{Engine: EngineRegexp2})
	if !errors.Is(err, ErrEngineUnsupported) {
		t.Fatalf("err=%v, want ErrEngineUnsupported", err)
	}
}

func TestByteMapContainsKeyConsistency(t *testing.T) {
	t.Parallel()

	m, err := NewByteMap(overlapEntries())
	if err != nil {
		t.Fatalf("NewByteMap: %v", err)
	}

	for _, key := range [][]byte{
		[]byte("foo"),
		[]byte("baz"),
		{},
		{0x00, 0x01},
	} {
		if m.ContainsKey(key) != (len(collectBytes(m, key)) > 0) {
			t.Fatalf("ContainsKey(%q) disagrees with Get", key)
		}
	}
}
