// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexmap

//go:build !hyperscan || !cgo

package regexmap

import "fmt"

// hyperscanSet placeholder for builds without the "hyperscan" tag.
type hyperscanSet struct{}

// compileHyperscanSet reports the engine as unavailable in this build.
//
// Build with: go build -tags hyperscan
func compileHyperscanSet(_ []string) (*hyperscanSet, error) {
	return nil, fmt.Errorf("engine %s: %w", EngineHyperscan, ErrNoEngine)
}

func (s *hyperscanSet) matches(_ string) []int     { return nil }
func (s *hyperscanSet) isMatch(_ string) bool      { return false }
func (s *hyperscanSet) byteMatches(_ []byte) []int { return nil }
func (s *hyperscanSet) isByteMatch(_ []byte) bool  { return false }
