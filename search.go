package radix

import "bytes"

// isPrefix reports whether small is a prefix of big.
func isPrefix(small, big []byte) bool {
	return len(small) <= len(big) && bytes.Equal(small, big[:len(small)])
}

// approximateMatch descends from start consuming edges that are a prefix of
// key, returning the deepest vertex reachable this way together with
// whatever suffix of key remains unconsumed. It never fails: in the worst
// case it returns start itself with key untouched.
func approximateMatch(start *node, key []byte) (*node, []byte) {
	cur := start
	rest := key
	for {
		if len(rest) == 0 {
			return cur, rest
		}
		idx, ok := cur.childIndex(rest[0])
		if !ok || !isPrefix(cur.children[idx].label, rest) {
			return cur, rest
		}
		rest = rest[len(cur.children[idx].label):]
		cur = cur.children[idx].child
	}
}

// prefixMatch returns the vertex whose subtree holds exactly the keys that
// have prefix as a prefix, or nil if no vertex in the tree roots that
// prefix exactly. A
// vertex roots prefix exactly either because approximateMatch consumes all
// of prefix landing exactly on a vertex, or because the unconsumed residual
// is itself a prefix of exactly one child's edge label, in which case that
// child is the vertex being rooted (its own represented key is a strict
// extension of prefix, but prefix still only ever reaches that one
// subtree).
func prefixMatch(start *node, prefix []byte) *node {
	app, rest := approximateMatch(start, prefix)
	if len(rest) == 0 {
		return app
	}
	idx, ok := app.childIndex(rest[0])
	if !ok {
		return nil
	}
	if isPrefix(rest, app.children[idx].label) {
		return app.children[idx].child
	}
	return nil
}

// exactMatch returns the vertex representing word if the tree has any
// vertex at all positioned at that exact key, independent of whether that
// vertex is end-marked. Callers that care whether word is a member of the
// set must additionally check the returned vertex's isEnd flag; exactMatch
// itself only answers "does a vertex sit at this exact position in the
// tree", since a junction vertex created by a later insertion can occupy a
// key's position without (yet) being end-marked.
func exactMatch(start *node, word []byte) *node {
	app, rest := approximateMatch(start, word)
	if len(rest) != 0 {
		return nil
	}
	return app
}
