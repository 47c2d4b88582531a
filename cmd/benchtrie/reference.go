package main

import (
	"github.com/google/btree"
)

// btreeString is a btree.Item wrapping a plain string, used as the
// reference sorted set the benchmark diffs the radix set against.
type btreeString string

func (s btreeString) Less(than btree.Item) bool {
	return s < than.(btreeString)
}

// buildReference inserts every word into a degree-32 B-tree, ignoring
// duplicates exactly as the set under test does.
func buildReference(words []string) *btree.BTree {
	ref := btree.New(32)
	for _, w := range words {
		ref.ReplaceOrInsert(btreeString(w))
	}
	return ref
}

// sameKeySet reports whether the B-tree reference and the radix set agree
// on membership, walking both in ascending order in lockstep.
func sameKeySet(ref *btree.BTree, treeKeys []string) bool {
	if ref.Len() != len(treeKeys) {
		return false
	}
	i := 0
	mismatch := false
	ref.Ascend(func(item btree.Item) bool {
		if i >= len(treeKeys) || string(item.(btreeString)) != treeKeys[i] {
			mismatch = true
			return false
		}
		i++
		return true
	})
	return !mismatch
}
