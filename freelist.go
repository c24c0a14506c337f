// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package dat

import "fmt"

// consumeAllocBudget is the fault-injection hook used by tests to force
// ErrOutOfMemory on a specific, deterministic growth attempt without
// needing to actually exhaust memory. Production callers leave
// allocBudget negative, which disables it.
func (t *Trie) consumeAllocBudget() error {
	if t.allocBudget == 0 {
		return ErrOutOfMemory
	}
	if t.allocBudget > 0 {
		t.allocBudget--
	}
	return nil
}

// extend grows the node store so that toIndex is a valid cell, appending
// freshly-free cells and splicing them into the circular free list
// between its current tail and its head. The free list stays in
// ascending index order, which the base allocator relies on.
func (t *Trie) extend(toIndex int32) error {
	if toIndex < int32(len(t.nodes)) {
		return nil
	}
	if toIndex >= TrieMaxIndex {
		return fmt.Errorf("%w: index %d >= %d", ErrIndexOverflow, toIndex, TrieMaxIndex)
	}
	if err := t.consumeAllocBudget(); err != nil {
		return err
	}

	newBegin := int32(len(t.nodes))
	for i := newBegin; i <= toIndex; i++ {
		t.nodes = append(t.nodes, node{base: -(i - 1), check: -(i + 1)})
	}

	freeTail := -t.nodes[FreeListID].base
	t.nodes[freeTail].check = -newBegin
	t.nodes[newBegin].base = -freeTail
	t.nodes[toIndex].check = -FreeListID
	t.nodes[FreeListID].base = -toIndex

	return nil
}

// initNode unlinks index from the free list. The caller must ensure
// index is currently free.
func (t *Trie) initNode(index int32) {
	n := t.nodes[index]
	prev := -n.base
	next := -n.check

	t.nodes[prev].check = -next
	t.nodes[next].base = -prev
}

// freeNode returns the currently-allocated index to the free list,
// scanning forward from the head to find its predecessor so that
// ascending order is preserved.
func (t *Trie) freeNode(index int32) {
	i := -t.nodes[FreeListID].check
	for i != FreeListID && i < index {
		i = -t.nodes[i].check
	}

	prev := -t.nodes[i].base

	t.nodes[index] = node{base: -prev, check: -i}
	t.nodes[prev].check = -index
	t.nodes[i].base = -index
}
