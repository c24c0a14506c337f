// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package dat

// getNode returns the node at index, or the zero node if index falls
// outside [RootID, len(nodes)). Indices below RootID are never valid
// transition targets, even though cells 0 and 1 physically exist.
func (t *Trie) getNode(index int32) node {
	if index < RootID || index >= int32(len(t.nodes)) {
		return node{}
	}
	return t.nodes[index]
}

func (t *Trie) setBase(index, base int32) {
	t.nodes[index].base = base
}

func (t *Trie) setCheck(index, check int32) {
	t.nodes[index].check = check
}

func (t *Trie) setNode(index int32, n node) {
	t.nodes[index] = n
}

// nodeIsFree reports whether n is currently on the free list. Both
// fields of a free cell are <= 0.
func nodeIsFree(n node) bool {
	return n.check < 0
}

// transitionIndex computes the arithmetic child index for c out of n,
// without bounds-checking the result against the node store.
func (t *Trie) transitionIndex(n node, c byte) int32 {
	return n.base + t.alphabet.charIndex(c)
}

// getTransition returns the node reachable from n via c, or the zero
// node if that index isn't materialized yet. Unlike getNode, this does
// not reject indices below RootID; in practice a real base is always
// >= TriePoolBegin so the computed index never lands there.
func (t *Trie) getTransition(n node, c byte) node {
	idx := t.transitionIndex(n, c)
	if idx < 0 || idx >= int32(len(t.nodes)) {
		return node{}
	}
	return t.nodes[idx]
}

// makeRoomFor ensures the node store is long enough that nextID and
// every other transition out of the same base (up to alphabet size
// cells further) are addressable.
func (t *Trie) makeRoomFor(nextID int32) error {
	if nextID+int32(t.alphabet.size) >= int32(len(t.nodes)) {
		return t.extend(nextID + int32(t.alphabet.size))
	}
	return nil
}
