// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package dat

import (
	"fmt"
	"io"
)

// Dump writes a human-readable rendering of the node store, tail
// buffer, and data store to w. It is a debugging aid only, not part of
// the compatibility contract.
func (t *Trie) Dump(w io.Writer) {
	fmt.Fprintf(w, "nodes (n=%d):\n", len(t.nodes))
	for i, n := range t.nodes {
		fmt.Fprintf(w, "  [%d] base=%d check=%d\n", i, n.base, n.check)
	}

	fmt.Fprintf(w, "tail (n=%d): %q\n", len(t.tail), t.tail)

	fmt.Fprintf(w, "data (n=%d):\n", len(t.data))
	for i, d := range t.data {
		fmt.Fprintf(w, "  [%d] tailOffset=%d payload=%d\n", i, d.tailOffset, d.payload)
	}
}
