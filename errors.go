// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexmap

package regexmap

import "errors"

// Sentinel errors for regexmap operations.
var (
	// ErrInvalidPattern indicates an expression failed to compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidEntry indicates malformed rules text input.
	ErrInvalidEntry = errors.New("invalid entry")
	// ErrNoEngine indicates the selected engine is not built into the binary.
	ErrNoEngine = errors.New("engine not available in this build")
	// ErrEngineUnsupported indicates the selected engine cannot match the key alphabet.
	ErrEngineUnsupported = errors.New("engine does not support key type")
)
