// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package dat

import "errors"

// Sentinel errors returned by the public API. Use errors.Is to test for
// them; internal failures are wrapped with additional context via
// fmt.Errorf("%w: ...", ...).
var (
	// ErrAlphabet is returned by New when the alphabet is empty, larger
	// than 256 bytes, or contains a duplicate byte.
	ErrAlphabet = errors.New("dat: invalid alphabet")

	// ErrOutOfMemory is returned when the node store cannot grow to
	// satisfy a request, which is reported only by the trie's allocation
	// budget. Appends to the tail buffer and data store never return it.
	ErrOutOfMemory = errors.New("dat: out of memory")

	// ErrIndexOverflow is returned when growing the node store would
	// exceed TrieMaxIndex.
	ErrIndexOverflow = errors.New("dat: index overflow")

	// ErrInvalidFormat is returned by Decode when the signature does
	// not match or the encoded alphabet is invalid.
	ErrInvalidFormat = errors.New("dat: invalid format")

	// ErrTruncatedInput is returned by Decode on a short read of any
	// field.
	ErrTruncatedInput = errors.New("dat: truncated input")
)
