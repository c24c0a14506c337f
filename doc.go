// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package dat implements a double-array trie (DAT): a compact, index-based
// associative map from byte strings over a caller-supplied alphabet to
// 32-bit integer payloads.
//
// Unlike a pointer-chasing trie, a double-array trie represents every
// parent-to-child transition arithmetically: childIndex = base[parent] +
// charIndex(c), with check[childIndex] == parent acting as a validity
// witness for the transition. This makes point lookups a tight loop over
// two int32 slices instead of a walk over heap-allocated nodes.
//
// Insertions that collide with an unrelated node's transition provoke a
// base relocation of the colliding node's entire sibling set. Cells freed
// by relocation, and cells never allocated, are threaded into a circular
// doubly-linked free list embedded in the same two arrays by encoding
// base/check as negative values. Suffixes held by only one key are pushed
// into a shared tail buffer instead of being spelled out node by node.
//
// A Trie is not safe for concurrent use by multiple goroutines unless all
// of them are readers and no insertion is in flight; see the package-level
// note in [Trie] for details.
package dat
