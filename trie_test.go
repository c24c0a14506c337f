// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package dat

import (
	"bytes"
	"testing"
)

func mustNew(t *testing.T, alphabet string) *Trie {
	t.Helper()
	trie, err := New([]byte(alphabet))
	if err != nil {
		t.Fatalf("New(%q): %v", alphabet, err)
	}
	return trie
}

func TestScenarioCab(t *testing.T) {
	trie := mustNew(t, "abc")

	if err := trie.Add([]byte("cab"), 7); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if h := trie.Get([]byte("cab"), true); h == 0 {
		t.Error(`Get("cab", true) = 0, want nonzero`)
	}
	if h := trie.Get([]byte("ca"), true); h != 0 {
		t.Errorf(`Get("ca", true) = %d, want 0`, h)
	}
	if h := trie.Get([]byte("cab"), false); h == 0 {
		t.Error(`Get("cab", false) = 0, want nonzero`)
	}
	if h := trie.Get([]byte("cax"), true); h != 0 {
		t.Errorf(`Get("cax", true) = %d, want 0`, h)
	}
}

func TestScenarioPrefixKeys(t *testing.T) {
	trie := mustNew(t, "abc")

	if err := trie.Add([]byte("a"), 1); err != nil {
		t.Fatalf("Add(a): %v", err)
	}
	if err := trie.Add([]byte("ab"), 2); err != nil {
		t.Fatalf("Add(ab): %v", err)
	}

	if h := trie.Get([]byte("a"), true); h == 0 {
		t.Error(`Get("a", true) = 0, want nonzero`)
	}
	if h := trie.Get([]byte("ab"), true); h == 0 {
		t.Error(`Get("ab", true) = 0, want nonzero`)
	}
	if h := trie.Get([]byte("a"), false); h == 0 {
		t.Error(`Get("a", false) = 0, want nonzero`)
	}
	if h := trie.Get([]byte("abc"), true); h != 0 {
		t.Errorf(`Get("abc", true) = %d, want 0`, h)
	}
}

func TestScenarioTailMergeBranch(t *testing.T) {
	trie := mustNew(t, "abcd")

	if err := trie.Add([]byte("abc"), 9); err != nil {
		t.Fatalf("Add(abc): %v", err)
	}
	if err := trie.Add([]byte("abd"), 10); err != nil {
		t.Fatalf("Add(abd): %v", err)
	}

	hc := trie.Get([]byte("abc"), true)
	hd := trie.Get([]byte("abd"), true)
	if hc == 0 || hd == 0 {
		t.Fatalf("both keys must be retrievable: hc=%d hd=%d", hc, hd)
	}
	if hc == hd {
		t.Fatalf("abc and abd must resolve to distinct terminals")
	}

	pc, ok := trie.PayloadAt(hc)
	if !ok || pc != 9 {
		t.Errorf("PayloadAt(abc) = (%d, %v), want (9, true)", pc, ok)
	}
	pd, ok := trie.PayloadAt(hd)
	if !ok || pd != 10 {
		t.Errorf("PayloadAt(abd) = (%d, %v), want (10, true)", pd, ok)
	}
}

func TestScenarioReinsertIsNoOp(t *testing.T) {
	trie := mustNew(t, "abc")

	if err := trie.Add([]byte("abc"), 9); err != nil {
		t.Fatalf("Add#1: %v", err)
	}
	first := trie.Get([]byte("abc"), true)
	if first == 0 {
		t.Fatal("key not retrievable after first insert")
	}

	if err := trie.Add([]byte("abc"), 99); err != nil {
		t.Fatalf("Add#2: %v", err)
	}
	second := trie.Get([]byte("abc"), true)
	if second != first {
		t.Errorf("handle changed across reinsert: %d -> %d", first, second)
	}

	payload, ok := trie.PayloadAt(second)
	if !ok || payload != 9 {
		t.Errorf("PayloadAt = (%d, %v), want (9, true): first write must win", payload, ok)
	}
}

func TestBulkInsertAndReload(t *testing.T) {
	const alphabet = "0123456789"
	trie := mustNew(t, alphabet)

	keys := make([][]byte, 0, 1024)
	seen := map[string]bool{}
	seed := uint64(1)
	for len(keys) < 1024 {
		seed = seed*6364136223846793005 + 1442695040888963407
		b := make([]byte, 4)
		for i := range b {
			seed = seed*6364136223846793005 + 1
			b[i] = alphabet[int(seed>>33)%len(alphabet)]
		}
		if seen[string(b)] {
			continue
		}
		seen[string(b)] = true
		keys = append(keys, b)
	}

	for i, k := range keys {
		if err := trie.Add(k, uint32(i)); err != nil {
			t.Fatalf("Add(%s) #%d: %v", k, i, err)
		}
	}

	var buf bytes.Buffer
	if err := trie.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	reloaded, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	for _, tr := range []*Trie{trie, reloaded} {
		for i, k := range keys {
			h := tr.Get(k, true)
			if h == 0 {
				t.Fatalf("Get(%s) = 0 after bulk insert", k)
			}
			p, ok := tr.PayloadAt(h)
			if !ok || p != uint32(i) {
				t.Fatalf("PayloadAt(%s) = (%d, %v), want (%d, true)", k, p, ok, i)
			}
		}
	}
}

func TestEmptyKeyIsNoOp(t *testing.T) {
	trie := mustNew(t, "abc")
	if err := trie.Add(nil, 1); err != nil {
		t.Fatalf("Add(nil): %v", err)
	}
	if err := trie.Add([]byte{}, 1); err != nil {
		t.Fatalf("Add(empty): %v", err)
	}
	if trie.NumNodes() != 3 {
		t.Errorf("NumNodes() = %d, want 3 (unchanged)", trie.NumNodes())
	}
}

func TestRelocationPreservesExistingKeys(t *testing.T) {
	// Interleaving the children of 'a' and 'b' makes each parent's next
	// child cell collide with a cell the other parent already owns, which
	// forces find_new_base/relocate_base to run repeatedly.
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	trie := mustNew(t, alphabet)

	var keys [][]byte
	for _, c := range []byte(alphabet) {
		keys = append(keys, []byte{'a', c}, []byte{'b', c})
	}

	for i, k := range keys {
		if err := trie.Add(k, uint32(i)); err != nil {
			t.Fatalf("Add(%s): %v", k, err)
		}
		// Every previously inserted key must still resolve after each
		// insertion that might have triggered a relocation.
		for j := 0; j <= i; j++ {
			h := trie.Get(keys[j], true)
			if h == 0 {
				t.Fatalf("after inserting %s, %s is no longer retrievable", k, keys[j])
			}
			p, ok := trie.PayloadAt(h)
			if !ok || p != uint32(j) {
				t.Fatalf("after inserting %s, PayloadAt(%s) = (%d,%v), want (%d,true)", k, keys[j], p, ok, j)
			}
		}
	}
}
