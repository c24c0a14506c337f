// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package dat

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// alphabetMap is a bijection between a caller-supplied byte alphabet and
// dense 1-based character indices. Index 0 is reserved for the implicit
// NUL terminator appended to every key during insertion and lookup, so
// charIndex never returns 0 for a byte that is actually present in the
// alphabet.
type alphabetMap struct {
	table    [256]int32 // table[b] = position of b in alphabet, or -1
	alphabet []byte     // ordered, unique bytes
	size     int
}

// newAlphabetMap validates and builds the alphabet map. alphabet must be
// non-empty, at most 256 bytes, and contain no duplicates.
func newAlphabetMap(alphabet []byte) (*alphabetMap, error) {
	if len(alphabet) == 0 || len(alphabet) > 256 {
		return nil, fmt.Errorf("%w: size must be in [1, 256], got %d", ErrAlphabet, len(alphabet))
	}

	// bitset gives us an O(1) duplicate-presence test over the 256
	// possible byte values without a second [256]bool scratch array.
	seen := bitset.New(256)

	am := &alphabetMap{
		alphabet: append([]byte(nil), alphabet...),
		size:     len(alphabet),
	}
	for i := range am.table {
		am.table[i] = -1
	}

	for i, b := range alphabet {
		if seen.Test(uint(b)) {
			return nil, fmt.Errorf("%w: duplicate byte %#x", ErrAlphabet, b)
		}
		seen.Set(uint(b))
		am.table[b] = int32(i)
	}

	return am, nil
}

// charIndex maps a byte to its dense transition index. Any byte not
// present in the alphabet, including the NUL byte unless the alphabet
// lists it, maps to 0, the reserved terminator index.
func (a *alphabetMap) charIndex(c byte) int32 {
	return a.table[c] + 1
}
