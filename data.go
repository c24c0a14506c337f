// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package dat

// dataPush appends a new data record and returns its index. A terminal
// node encodes this index as a negative base.
func (t *Trie) dataPush(tailOffset uint32, payload uint32) int32 {
	idx := int32(len(t.data))
	t.data = append(t.data, dataRecord{tailOffset: tailOffset, payload: payload})
	return idx
}
