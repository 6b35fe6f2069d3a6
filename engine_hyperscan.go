// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexmap

//go:build hyperscan && cgo

package regexmap

import (
	"fmt"
	"slices"
	"sync"

	"github.com/flier/gohs/hyperscan"
)

// hyperscanSet matches keys against a Hyperscan block database.
//
// Hyperscan scratch space is not safe for concurrent scans, so scans borrow
// scratch from a pool of clones; lookups stay lock-free for callers.
type hyperscanSet struct {
	db      hyperscan.BlockDatabase
	proto   *hyperscan.Scratch
	scratch sync.Pool
}

// compileHyperscanSet builds one block database from all expressions.
//
// Patterns are compiled with SingleMatch, so every expression reports at
// most one match per scan regardless of match positions.
func compileHyperscanSet(exprs []string) (*hyperscanSet, error) {
	patterns := make([]*hyperscan.Pattern, len(exprs))
	for i, expr := range exprs {
		p := hyperscan.NewPattern(expr, hyperscan.SingleMatch)
		p.Id = i
		patterns[i] = p
	}

	builder := &hyperscan.DatabaseBuilder{
		Patterns: patterns,
		Mode:     hyperscan.BlockMode,
		Platform: hyperscan.PopulatePlatform(),
	}

	built, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	db := built.(hyperscan.BlockDatabase)
	proto, err := hyperscan.NewScratch(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("allocate scratch: %w", err)
	}

	s := &hyperscanSet{db: db, proto: proto}
	s.scratch.New = func() any {
		clone, cloneErr := proto.Clone()
		if cloneErr != nil {
			return nil
		}

		return clone
	}

	return s, nil
}

func (s *hyperscanSet) byteMatches(key []byte) []int {
	scratch, ok := s.scratch.Get().(*hyperscan.Scratch)
	if !ok {
		return nil
	}
	defer s.scratch.Put(scratch)

	var idx []int
	handler := func(id uint, from, to uint64, flags uint, context interface{}) error {
		idx = append(idx, int(id))
		return nil
	}

	if err := s.db.Scan(key, scratch, handler, nil); err != nil {
		return nil
	}

	slices.Sort(idx)
	return idx
}

func (s *hyperscanSet) isByteMatch(key []byte) bool {
	return len(s.byteMatches(key)) > 0
}

func (s *hyperscanSet) matches(key string) []int {
	return s.byteMatches([]byte(key))
}

func (s *hyperscanSet) isMatch(key string) bool {
	return s.isByteMatch([]byte(key))
}
