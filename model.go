// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexmap

package regexmap

// Engine selects the multi-pattern matching backend.
type Engine uint8

const (
	// EngineUnknown is unset engine placeholder, resolved to EngineRE2.
	EngineUnknown Engine = iota
	// EngineRE2 compiles all expressions into one RE2 set evaluated in a single pass.
	EngineRE2
	// EngineStandard compiles expressions with stdlib regexp and scans them in order.
	EngineStandard
	// EngineRegexp2 uses backtracking regexp2 syntax; text keys only.
	EngineRegexp2
	// EngineHyperscan uses an Intel Hyperscan block database; requires the
	// "hyperscan" build tag and cgo.
	EngineHyperscan
)

// Entry is one user-visible expression rule.
type Entry[V any] struct {
	// Pattern is a regular expression describing keys this value is stored under.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Value is returned by lookups whose key matches Pattern.
	Value V `json:"value" yaml:"value"`
}

// Options controls container compilation.
type Options struct {
	// Engine selects the matching backend, EngineRE2 when unset.
	Engine Engine `json:"engine,omitempty" yaml:"engine,omitempty"`
	// CaseInsensitive enables case-insensitive matching for all expressions.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *Options) applyDefaults() {
	if !opts.Engine.valid() {
		opts.Engine = EngineRE2
	}
}

// valid reports whether engine value is supported.
func (e Engine) valid() bool {
	switch e {
	case EngineRE2, EngineStandard, EngineRegexp2, EngineHyperscan:
		return true
	default:
		return false
	}
}

// String returns stable engine name for errors and benchmarks.
func (e Engine) String() string {
	switch e {
	case EngineRE2:
		return "re2"
	case EngineStandard:
		return "standard"
	case EngineRegexp2:
		return "regexp2"
	case EngineHyperscan:
		return "hyperscan"
	default:
		return "unknown"
	}
}

// splitEntries builds parallel pattern and value lists in entry order.
func splitEntries[V any](entries []Entry[V]) ([]string, []V) {
	patterns := make([]string, len(entries))
	values := make([]V, len(entries))
	for i, e := range entries {
		patterns[i] = e.Pattern
		values[i] = e.Value
	}

	return patterns, values
}

// foldExpressions rewrites expressions for compilation according to options.
func foldExpressions(patterns []string, opts Options) []string {
	if !opts.CaseInsensitive {
		return patterns
	}

	exprs := make([]string, len(patterns))
	for i, p := range patterns {
		exprs[i] = "(?i)" + p
	}

	return exprs
}
