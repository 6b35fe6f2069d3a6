// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexmap

package regexmap

import (
	"fmt"
	"regexp"
)

// stdSet scans stdlib-compiled expressions in declaration order.
//
// Lookup cost grows linearly with the expression count; the engine exists as
// a dependency-free baseline for targets where the RE2 runtime is unwanted.
type stdSet struct {
	res []*regexp.Regexp
}

// compileStdSet compiles each expression with stdlib regexp.
func compileStdSet(exprs []string) (*stdSet, error) {
	res := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: compile %q: %v", ErrInvalidPattern, expr, err)
		}

		res[i] = re
	}

	return &stdSet{res: res}, nil
}

func (s *stdSet) matches(key string) []int {
	var idx []int
	for i, re := range s.res {
		if re.MatchString(key) {
			idx = append(idx, i)
		}
	}

	return idx
}

func (s *stdSet) isMatch(key string) bool {
	for _, re := range s.res {
		if re.MatchString(key) {
			return true
		}
	}

	return false
}

func (s *stdSet) byteMatches(key []byte) []int {
	var idx []int
	for i, re := range s.res {
		if re.Match(key) {
			idx = append(idx, i)
		}
	}

	return idx
}

func (s *stdSet) isByteMatch(key []byte) bool {
	for _, re := range s.res {
		if re.Match(key) {
			return true
		}
	}

	return false
}
