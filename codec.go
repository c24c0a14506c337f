// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package dat

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// byteOrder fixes the on-disk endianness. The codec only needs to
// round-trip with itself, so big-endian is an arbitrary but permanent
// choice; changing it requires bumping TrieSignature.
var byteOrder = binary.BigEndian

// Encode writes the trie to w in this format:
//
//	signature     uint32
//	alphabetSize  uint32
//	alphabet      [alphabetSize]byte
//	numNodes      uint32
//	nodes         [numNodes](base, check int32)
//	numData       uint32
//	data          [numData](tailOffset, payload uint32)
//	tailLen       uint32
//	tail          [tailLen]byte
func (t *Trie) Encode(w io.Writer) error {
	if err := binary.Write(w, byteOrder, TrieSignature); err != nil {
		return err
	}
	if err := binary.Write(w, byteOrder, uint32(t.alphabet.size)); err != nil {
		return err
	}
	if _, err := w.Write(t.alphabet.alphabet); err != nil {
		return err
	}

	if err := binary.Write(w, byteOrder, uint32(len(t.nodes))); err != nil {
		return err
	}
	for _, n := range t.nodes {
		if err := binary.Write(w, byteOrder, n.base); err != nil {
			return err
		}
		if err := binary.Write(w, byteOrder, n.check); err != nil {
			return err
		}
	}

	if err := binary.Write(w, byteOrder, uint32(len(t.data))); err != nil {
		return err
	}
	for _, d := range t.data {
		if err := binary.Write(w, byteOrder, d.tailOffset); err != nil {
			return err
		}
		if err := binary.Write(w, byteOrder, d.payload); err != nil {
			return err
		}
	}

	if err := binary.Write(w, byteOrder, uint32(len(t.tail))); err != nil {
		return err
	}
	_, err := w.Write(t.tail)
	return err
}

// Decode reads a trie previously written by Encode. If the signature
// doesn't match, r's position is restored to where it started and
// ErrInvalidFormat is returned; any other field failing to read fully is
// reported as ErrTruncatedInput and r's position is likewise restored.
func Decode(r io.ReadSeeker) (*Trie, error) {
	startPos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}

	fail := func(err error) (*Trie, error) {
		_, _ = r.Seek(startPos, io.SeekStart)
		return nil, err
	}

	var signature uint32
	if err := binary.Read(r, byteOrder, &signature); err != nil {
		return fail(fmt.Errorf("%w: reading signature: %v", ErrTruncatedInput, err))
	}
	if signature != TrieSignature {
		return fail(ErrInvalidFormat)
	}

	var alphabetSize uint32
	if err := binary.Read(r, byteOrder, &alphabetSize); err != nil {
		return fail(fmt.Errorf("%w: reading alphabet size: %v", ErrTruncatedInput, err))
	}
	if alphabetSize == 0 || alphabetSize > 256 {
		return fail(fmt.Errorf("%w: alphabet size %d out of range", ErrInvalidFormat, alphabetSize))
	}

	alphabet := make([]byte, alphabetSize)
	if _, err := io.ReadFull(r, alphabet); err != nil {
		return fail(fmt.Errorf("%w: reading alphabet: %v", ErrTruncatedInput, err))
	}

	am, err := newAlphabetMap(alphabet)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}

	var numNodes uint32
	if err := binary.Read(r, byteOrder, &numNodes); err != nil {
		return fail(fmt.Errorf("%w: reading node count: %v", ErrTruncatedInput, err))
	}

	nodes := make([]node, numNodes)
	for i := range nodes {
		if err := binary.Read(r, byteOrder, &nodes[i].base); err != nil {
			return fail(fmt.Errorf("%w: reading node %d base: %v", ErrTruncatedInput, i, err))
		}
		if err := binary.Read(r, byteOrder, &nodes[i].check); err != nil {
			return fail(fmt.Errorf("%w: reading node %d check: %v", ErrTruncatedInput, i, err))
		}
	}

	var numData uint32
	if err := binary.Read(r, byteOrder, &numData); err != nil {
		return fail(fmt.Errorf("%w: reading data count: %v", ErrTruncatedInput, err))
	}

	data := make([]dataRecord, numData)
	for i := range data {
		if err := binary.Read(r, byteOrder, &data[i].tailOffset); err != nil {
			return fail(fmt.Errorf("%w: reading data %d tail offset: %v", ErrTruncatedInput, i, err))
		}
		if err := binary.Read(r, byteOrder, &data[i].payload); err != nil {
			return fail(fmt.Errorf("%w: reading data %d payload: %v", ErrTruncatedInput, i, err))
		}
	}

	var tailLen uint32
	if err := binary.Read(r, byteOrder, &tailLen); err != nil {
		return fail(fmt.Errorf("%w: reading tail length: %v", ErrTruncatedInput, err))
	}

	tail := make([]byte, tailLen)
	if _, err := io.ReadFull(r, tail); err != nil {
		return fail(fmt.Errorf("%w: reading tail: %v", ErrTruncatedInput, err))
	}

	return &Trie{
		alphabet:    *am,
		nodes:       nodes,
		data:        data,
		tail:        tail,
		allocBudget: -1,
	}, nil
}

// Save encodes the trie and writes it to path, truncating any existing
// file.
func (t *Trie) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := t.Encode(f); err != nil {
		return err
	}
	return f.Close()
}

// Load reads a trie previously written by Save.
func Load(path string) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}
