// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexmap

package regexmap

import (
	"fmt"
	"slices"

	re2exp "github.com/wasilibs/go-re2/experimental"
)

// re2Set evaluates all expressions in one pass over the key using an RE2 set.
//
// This is the default engine: one automaton answers the whole rule set, so
// lookup cost does not grow linearly with the expression count.
type re2Set struct {
	set *re2exp.Set
}

// compileRE2Set compiles all expressions into one RE2 set.
func compileRE2Set(exprs []string) (*re2Set, error) {
	set, err := re2exp.CompileSet(exprs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	return &re2Set{set: set}, nil
}

func (s *re2Set) matches(key string) []int {
	idx := s.set.FindAllString(key, -1)
	slices.Sort(idx)
	return idx
}

func (s *re2Set) isMatch(key string) bool {
	return len(s.set.FindAllString(key, 1)) > 0
}

func (s *re2Set) byteMatches(key []byte) []int {
	idx := s.set.FindAll(key, -1)
	slices.Sort(idx)
	return idx
}

func (s *re2Set) isByteMatch(key []byte) bool {
	return len(s.set.FindAll(key, 1)) > 0
}
