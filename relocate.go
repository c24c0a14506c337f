// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package dat

// transitionChars scans the terminator and then the alphabet in ascending
// order and returns the bytes that currently transition out of nodeID.
// The ascending order matters: relocateBase must claim and free cells in
// the same order the free list expects, or the list's ascending-index
// invariant breaks.
func (t *Trie) transitionChars(nodeID int32) []byte {
	n := t.getNode(nodeID)
	out := make([]byte, 0, t.alphabet.size+1)
	labels := t.alphabet.alphabet
	if t.alphabet.charIndex(0) == 0 {
		// The terminator (index 0) is not listed in the alphabet.
		labels = append([]byte{0}, labels...)
	}
	for _, c := range labels {
		idx := t.transitionIndex(n, c)
		if idx >= 0 && idx < int32(len(t.nodes)) && t.nodes[idx].check == nodeID {
			out = append(out, c)
		}
	}
	return out
}

// nodeHasChildren reports whether nodeID has any outgoing transition. A
// terminal node (base < 0) never has children.
func (t *Trie) nodeHasChildren(nodeID int32) bool {
	if nodeID >= int32(len(t.nodes)) {
		return false
	}
	n := t.getNode(nodeID)
	if n.base < 0 {
		return false
	}
	return len(t.transitionChars(nodeID)) > 0
}

// relocateBase moves nodeID's children to newBase, rewiring each moved
// child's own children (if any) to point their check at the new cell,
// without disturbing the children's content.
func (t *Trie) relocateBase(nodeID int32, newBase int32) error {
	if err := t.makeRoomFor(newBase); err != nil {
		return err
	}

	oldNode := t.getNode(nodeID)
	transitions := t.transitionChars(nodeID)

	for _, c := range transitions {
		charIndex := t.alphabet.charIndex(c)
		oldIndex := oldNode.base + charIndex
		newIndex := newBase + charIndex

		oldTransition := t.getNode(oldIndex)

		t.initNode(newIndex)
		t.setNode(newIndex, node{base: oldTransition.base, check: nodeID})

		if oldTransition.base > 0 {
			for _, gc := range t.transitionChars(oldIndex) {
				idx := t.transitionIndex(oldTransition, gc)
				if idx >= 0 && idx < int32(len(t.nodes)) && t.nodes[idx].check == oldIndex {
					t.setCheck(idx, newIndex)
				}
			}
		}

		t.freeNode(oldIndex)
	}

	t.setBase(nodeID, newBase)
	return nil
}
