// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexmap

/*
Package regexmap implements associative containers whose keys are regular
expressions: a lookup by a concrete key returns every value whose expression
matches that key.

The package targets code that routes or classifies strings (or raw byte
sequences) against a fixed, pre-declared rule set: configuration matching,
log classification, protocol dispatch, and similar pipelines.

Basic flow:
  - collect (expression, value) entries (`Entry`, `LiteralEntry`)
  - optionally parse entries from rules text (`ParseEntries`)
  - optionally load entries from files (`LoadEntriesFile`)
  - compile container (`New` / `NewByteMap`)
  - look up values (`Get` / `First` / `All` / `ContainsKey`)

`Map` matches text keys, `ByteMap` matches arbitrary byte keys; both share
one contract. Containers are immutable once built and safe for concurrent
lookups without locking.

All expressions are compiled into a single multi-pattern matcher selected by
`Options.Engine`. The default `EngineRE2` evaluates every expression in one
pass over the key, so lookup cost does not grow linearly with the rule
count. `EngineHyperscan` needs the "hyperscan" build tag and cgo.
*/
package regexmap
