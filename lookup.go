// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package dat

// Get walks key from the root and returns the trie node index reached,
// or 0 if key is not present. If wholeWord is true the walk is extended
// one step past the last byte of key to match the implicit terminator,
// so that "ab" does not falsely match a stored "abc"; if false, a stored
// tail need only be a prefix of key's remainder.
//
// The returned index is a stable handle; pass it to PayloadAt to recover
// the value that was stored with Add.
func (t *Trie) Get(key []byte, wholeWord bool) int32 {
	if key == nil {
		return 0
	}

	n := t.getNode(RootID)
	nodeID := RootID

	steps := len(key)
	if wholeWord {
		steps++
	}

	var nextID int32
	for i := 0; i < steps; i++ {
		var c byte
		if i < len(key) {
			c = key[i]
		}

		nextID = t.transitionIndex(n, c)
		n = t.getNode(nextID)

		if n.check != nodeID {
			return 0
		}

		if n.base < 0 {
			dataIdx := -n.base
			tailPos := t.data[dataIdx].tailOffset
			storedTail := t.tailReadCString(tailPos)
			storedReal := storedTail[:len(storedTail)-1]

			var queryTail []byte
			if i < len(key) && key[i] != 0 {
				queryTail = key[i+1:]
			} else {
				queryTail = key[i:]
			}

			var match bool
			switch {
			case wholeWord:
				match = len(queryTail) == len(storedReal) && equalBytes(storedReal, queryTail)
			case len(storedReal) <= len(queryTail):
				match = equalBytes(queryTail[:len(storedReal)], storedReal)
			}

			if match {
				return nextID
			}
			return 0
		}

		nodeID = nextID
	}

	return nextID
}

func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// PayloadAt returns the payload stored at a terminal handle previously
// returned by Get. ok is false if handle does not address a terminal
// node.
func (t *Trie) PayloadAt(handle int32) (payload uint32, ok bool) {
	if handle < RootID || handle >= int32(len(t.nodes)) {
		return 0, false
	}
	n := t.nodes[handle]
	if n.base >= 0 || n.check < 0 {
		return 0, false
	}
	dataIdx := -n.base
	if dataIdx <= 0 || int(dataIdx) >= len(t.data) {
		return 0, false
	}
	return t.data[dataIdx].payload, true
}
