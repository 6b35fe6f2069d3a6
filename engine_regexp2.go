// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexmap

package regexmap

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// regexp2Set scans backtracking-compiled expressions in declaration order.
//
// The engine accepts syntax RE2 rejects (backreferences, lookaround) at the
// cost of linear scans and no byte-key support.
type regexp2Set struct {
	res []*regexp2.Regexp
}

// compileRegexp2Set compiles each expression with regexp2.
func compileRegexp2Set(exprs []string) (*regexp2Set, error) {
	res := make([]*regexp2.Regexp, len(exprs))
	for i, expr := range exprs {
		re, err := regexp2.Compile(expr, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("%w: compile %q: %v", ErrInvalidPattern, expr, err)
		}

		res[i] = re
	}

	return &regexp2Set{res: res}, nil
}

func (s *regexp2Set) matches(key string) []int {
	runes := []rune(key)

	var idx []int
	for i, re := range s.res {
		if ok, _ := re.MatchRunes(runes); ok {
			idx = append(idx, i)
		}
	}

	return idx
}

func (s *regexp2Set) isMatch(key string) bool {
	runes := []rune(key)
	for _, re := range s.res {
		if ok, _ := re.MatchRunes(runes); ok {
			return true
		}
	}

	return false
}
