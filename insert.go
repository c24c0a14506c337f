// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package dat

import "bytes"

// withTerminator appends the single reserved terminator byte (0x00) to
// key, giving a representation of the walk that includes the implicit
// end-of-key step. This is unambiguous as long as the alphabet does not
// include 0x00; New accepts one that does, and then a 0x00 key byte and
// the terminator share one transition.
func withTerminator(key []byte) []byte {
	out := make([]byte, len(key)+1)
	copy(out, key)
	return out
}

// stripTerminator drops the trailing terminator byte added by
// withTerminator, returning the real bytes a remainder slice stands for.
// It assumes r's last byte is exactly that terminator.
func stripTerminator(r []byte) []byte {
	if len(r) <= 1 {
		return nil
	}
	return r[:len(r)-1]
}

// commonRealPrefixLen returns the number of leading bytes a and b share,
// considering only real key bytes and never the trailing terminator of
// either slice.
func commonRealPrefixLen(a, b []byte) int {
	n := 0
	for n < len(a)-1 && n < len(b)-1 && a[n] == b[n] {
		n++
	}
	return n
}

// Add inserts key with the given payload. An empty key is a silent
// no-op. If key is already present, the trie is left unchanged
// (first-write-wins).
func (t *Trie) Add(key []byte, payload uint32) error {
	if len(key) == 0 {
		return nil
	}
	return t.addToNode(RootID, withTerminator(key), payload)
}

// addToNode walks remaining (which always ends in the reserved
// terminator byte) from nodeID, branching into separateTail or
// tailMerge as soon as the existing structure stops matching.
func (t *Trie) addToNode(nodeID int32, remaining []byte, payload uint32) error {
	n := t.getNode(nodeID)

	for i := 0; i < len(remaining); i++ {
		c := remaining[i]

		nextID := t.transitionIndex(n, c)
		if nextID != NullID {
			if err := t.makeRoomFor(nextID); err != nil {
				return err
			}
		}
		next := t.getNode(nextID)

		switch {
		case next.check < 0 || next.check != nodeID:
			return t.separateTail(nodeID, remaining[i:], payload)
		case next.base < 0 && next.check == nodeID:
			return t.tailMerge(nextID, remaining[i+1:], payload)
		}

		nodeID, n = nextID, next
	}

	// remaining's full path, including its terminator, already exists
	// as ordinary transitions: the key was already present.
	return nil
}

// separateTail creates a single new transition out of fromIndex for
// remaining's first byte, and pushes whatever follows into the tail
// buffer as a fresh data record. remaining always ends in the reserved
// terminator.
func (t *Trie) separateTail(fromIndex int32, remaining []byte, payload uint32) error {
	c := remaining[0]

	idx, err := t.addTransition(fromIndex, c)
	if err != nil {
		return err
	}

	rest := remaining[1:]
	if c == 0 {
		rest = remaining
	}

	tailOffset := t.tailAppend(stripTerminator(rest))
	dataIdx := t.dataPush(tailOffset, payload)
	t.setBase(idx, -dataIdx)

	return nil
}

// tailMerge splits the existing terminal oldNodeID when newSuffix
// collides with its stored tail. The prefix walk and the branch for the
// old suffix are atomic: if an allocation fails there, the trie is pruned,
// oldNodeID is made a terminal again, and the tail buffer is rewound back
// to its pre-call state. A failure in the final separateTail for the new
// suffix is not rolled back.
func (t *Trie) tailMerge(oldNodeID int32, newSuffix []byte, payload uint32) error {
	oldNode := t.getNode(oldNodeID)
	oldDataIndex := -oldNode.base
	oldTailPos := t.data[oldDataIndex].tailOffset

	originalTail := append([]byte(nil), t.tailReadCString(oldTailPos)...)
	oldTail := originalTail

	if bytes.Equal(oldTail, newSuffix) {
		// Exact match: the key already exists.
		return nil
	}

	commonPrefix := commonRealPrefixLen(oldTail, newSuffix)

	nodeID := oldNodeID
	for i := 0; i < commonPrefix; i++ {
		next, err := t.addTransition(nodeID, oldTail[i])
		if err != nil {
			t.pruneUpTo(oldNodeID, nodeID)
			t.setBase(oldNodeID, -oldDataIndex)
			t.tailWriteAt(stripTerminator(originalTail), oldTailPos)
			return err
		}
		nodeID = next
	}

	oldTailIndex, err := t.addTransition(nodeID, oldTail[commonPrefix])
	if err != nil {
		t.pruneUpTo(oldNodeID, nodeID)
		t.setBase(oldNodeID, -oldDataIndex)
		t.tailWriteAt(stripTerminator(originalTail), oldTailPos)
		return err
	}

	rest := oldTail[commonPrefix:]
	if rest[0] != 0 {
		rest = rest[1:]
	}

	t.setBase(oldTailIndex, -oldDataIndex)
	t.tailWriteAt(stripTerminator(rest), oldTailPos)

	return t.separateTail(nodeID, newSuffix[commonPrefix:], payload)
}

// addTransition ensures a transition for c exists out of nodeID,
// relocating nodeID's children to a fresh base first if c's cell is
// already owned by someone else, and returns the (possibly new) child
// index.
func (t *Trie) addTransition(nodeID int32, c byte) (int32, error) {
	n := t.getNode(nodeID)
	charIndex := t.alphabet.charIndex(c)

	var nextID int32

	if n.base > 0 {
		nextID = n.base + charIndex
		if err := t.makeRoomFor(nextID); err != nil {
			return 0, err
		}

		next := t.getNode(nextID)
		if next.check == nodeID {
			return nextID, nil
		}

		if n.base > TrieMaxIndex-charIndex || !nodeIsFree(next) {
			transitions := append(t.transitionChars(nodeID), c)

			newBase, err := t.findNewBase(transitions)
			if err != nil {
				return 0, err
			}
			if err := t.relocateBase(nodeID, newBase); err != nil {
				return 0, err
			}
			nextID = newBase + charIndex
		}
	} else {
		newBase, err := t.findNewBase([]byte{c})
		if err != nil {
			return 0, err
		}
		t.setBase(nodeID, newBase)
		nextID = newBase + charIndex
	}

	t.initNode(nextID)
	t.setCheck(nextID, nodeID)

	return nextID, nil
}

// pruneUpTo walks from s back up toward (but never past) p, freeing
// every childless node it passes through. It is the failure-recovery
// half of tailMerge's atomicity guarantee.
func (t *Trie) pruneUpTo(p, s int32) {
	for p != s && !t.nodeHasChildren(s) {
		parent := t.getNode(s).check
		t.freeNode(s)
		s = parent
	}
}
