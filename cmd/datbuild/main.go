// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command datbuild builds a double-array trie dictionary from a
// newline-delimited word list and writes it to disk. It exists to
// exercise the library end to end; the file-descriptor handling and CLI
// plumbing here are deliberately outside the core trie package.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gaissmai/dat"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	var (
		in        = flag.String("in", "", "input word list, one key per line")
		out       = flag.String("out", "", "output trie path")
		alphabet  = flag.String("alphabet", defaultAlphabet, "bytes accepted as key characters")
		wholeWord = flag.Bool("check", true, "after building, verify every input word is retrievable")
	)
	flag.Parse()

	if *in == "" || *out == "" {
		log.Fatal("usage: datbuild -in words.txt -out dict.trie")
	}

	words, err := readWords(*in)
	if err != nil {
		log.Fatalf("reading %s: %v", *in, err)
	}
	log.Printf("read %d words from %s", len(words), *in)

	t, err := dat.New([]byte(*alphabet))
	if err != nil {
		log.Fatalf("building alphabet: %v", err)
	}

	ts := time.Now()
	for i, w := range words {
		if err := t.Add([]byte(w), uint32(i)); err != nil {
			log.Fatalf("adding %q: %v", w, err)
		}
	}
	log.Printf("inserted %d words in %v, %d nodes", len(words), time.Since(ts), t.NumNodes())

	if *wholeWord {
		missing := 0
		for _, w := range words {
			if t.Get([]byte(w), true) == 0 {
				missing++
			}
		}
		if missing > 0 {
			log.Fatalf("%d/%d words not retrievable after build", missing, len(words))
		}
	}

	if err := t.Save(*out); err != nil {
		log.Fatalf("saving %s: %v", *out, err)
	}
	log.Printf("wrote %s", *out)
}

const defaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

func readWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return words, scanner.Err()
}
