// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexmap

package regexmap

import "fmt"

// patternSet is a compiled multi-pattern matcher over text keys.
//
// matches returns every pattern index whose expression matches the key, in
// ascending index order without duplicates. isMatch reports whether matches
// would be non-empty and may be cheaper than full enumeration.
type patternSet interface {
	matches(key string) []int
	isMatch(key string) bool
}

// bytePatternSet is a compiled multi-pattern matcher over byte keys.
type bytePatternSet interface {
	byteMatches(key []byte) []int
	isByteMatch(key []byte) bool
}

// compileSet compiles expressions into a text-keyed matcher for the selected engine.
func compileSet(exprs []string, engine Engine) (patternSet, error) {
	if len(exprs) == 0 {
		// Empty rule set matches nothing, no backend needed.
		return &stdSet{}, nil
	}

	switch engine {
	case EngineRE2:
		return compileRE2Set(exprs)
	case EngineStandard:
		return compileStdSet(exprs)
	case EngineRegexp2:
		return compileRegexp2Set(exprs)
	case EngineHyperscan:
		return compileHyperscanSet(exprs)
	default:
		return nil, fmt.Errorf("engine %s: %w", engine, ErrNoEngine)
	}
}

// compileByteSet compiles expressions into a byte-keyed matcher for the selected engine.
func compileByteSet(exprs []string, engine Engine) (bytePatternSet, error) {
	if len(exprs) == 0 {
		return &stdSet{}, nil
	}

	switch engine {
	case EngineRE2:
		return compileRE2Set(exprs)
	case EngineStandard:
		return compileStdSet(exprs)
	case EngineRegexp2:
		return nil, fmt.Errorf("engine %s: %w", engine, ErrEngineUnsupported)
	case EngineHyperscan:
		return compileHyperscanSet(exprs)
	default:
		return nil, fmt.Errorf("engine %s: %w", engine, ErrNoEngine)
	}
}
