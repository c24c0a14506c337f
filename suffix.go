// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package dat

import "github.com/gaissmai/dat/internal/reverse"

// AddSuffix indexes key by its reversed form, under a dedicated branch
// of the trie reached from the root via the reserved terminator byte.
// This lets the same trie answer both prefix queries (via Add/Get) and
// suffix queries (by reversing the query and walking this branch),
// without maintaining a second data structure.
//
// An empty key is a silent no-op, matching Add.
func (t *Trie) AddSuffix(key []byte, payload uint32) error {
	if len(key) == 0 {
		return nil
	}

	root := t.getNode(RootID)
	nodeID := t.transitionIndex(root, 0)
	n := t.getNode(nodeID)

	if n.check != RootID {
		var err error
		nodeID, err = t.addTransition(RootID, 0)
		if err != nil {
			return err
		}
	}

	return t.addToNode(nodeID, withTerminator(reverse.Bytes(key)), payload)
}
