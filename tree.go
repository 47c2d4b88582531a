package radix

import (
	"bytes"
	"fmt"
	"io"
)

// Set is an in-memory, ordered set of byte strings backed by a radix tree
// (Patricia trie) with path compression. It has no associated values, no
// concurrency support, and no persistence: it is a single-owner, mutable,
// single-threaded container. The zero value is not usable; construct with
// New or NewFromStrings.
type Set struct {
	root *node
}

// New returns an empty Set. The empty string is never a member of a freshly
// constructed Set; Insert it explicitly if that membership is wanted.
func New() *Set {
	return &Set{root: &node{}}
}

// NewFromStrings builds a Set containing every key in keys, ignoring
// duplicates.
func NewFromStrings(keys ...string) *Set {
	s := New()
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

// Clone returns a deep copy of s; mutating the result never affects s.
func (s *Set) Clone() *Set {
	return &Set{root: s.root.clone()}
}

// Empty reports whether no stored key has prefix as a prefix. With no
// argument this reports whether the Set has no members at all.
func (s *Set) Empty(prefix ...string) bool {
	p := joinPrefix(prefix)
	rt := prefixMatch(s.root, []byte(p))
	if rt == nil {
		return true
	}
	return !rt.isEnd && len(rt.children) == 0
}

// Len returns the number of stored keys having prefix as a prefix. With no
// argument this is the total number of members.
func (s *Set) Len(prefix ...string) int {
	p := joinPrefix(prefix)
	rt := prefixMatch(s.root, []byte(p))
	if rt == nil {
		return 0
	}
	return rt.keyCount()
}

// joinPrefix lets Empty and Len accept an optional prefix argument while keeping their zero-argument
// "whole tree" form, mirroring the reference's default-argument signature.
func joinPrefix(prefix []string) string {
	if len(prefix) == 0 {
		return ""
	}
	return prefix[0]
}

// Find returns an iterator positioned at key if key is a member of s, else
// an invalid end iterator.
func (s *Set) Find(key string) *Iterator {
	k := []byte(key)
	if len(k) == 0 {
		if s.root.isEnd {
			return &Iterator{root: s.root, ptr: s.root}
		}
		return &Iterator{root: s.root, ptr: nil}
	}
	m := exactMatch(s.root, k)
	if m == nil || !m.isEnd {
		return &Iterator{root: s.root, ptr: nil}
	}
	return &Iterator{root: s.root, ptr: m}
}

// FindPrefix returns an iterator at the lexicographically smallest member
// having prefix as a prefix, or an invalid end iterator if none does.
func (s *Set) FindPrefix(prefix string) *Iterator {
	p := []byte(prefix)
	rt := prefixMatch(s.root, p)
	if rt == nil {
		return &Iterator{root: s.root, ptr: nil}
	}
	// prefixMatch always fully consumes the prefix on success, so the
	// residual is vacuously empty here regardless of the original prefix's
	// length: the only remaining question is whether rt is itself a member.
	if rt.isEnd {
		return &Iterator{root: s.root, ptr: rt}
	}
	return &Iterator{root: s.root, ptr: rt.firstKey()}
}

// Insert adds key to s, if not already present, and returns an iterator at
// its vertex. Insertion is idempotent.
func (s *Set) Insert(key string) *Iterator {
	loc, rest := approximateMatch(s.root, []byte(key))

	// Case A: the key is already fully represented at loc.
	if len(rest) == 0 {
		loc.isEnd = true
		return &Iterator{root: s.root, ptr: loc}
	}

	// Case B: loc is a leaf; simply attach a new end-marked child.
	if len(loc.children) == 0 {
		child := &node{isEnd: true, parent: loc}
		loc.insertEdge(rest, child)
		return &Iterator{root: s.root, ptr: child}
	}

	// loc has children; look for the one sharing rest's first byte.
	idx, found := loc.childIndex(rest[0])
	if !found {
		// No shared prefix among loc's children: behaves as Case B.
		child := &node{isEnd: true, parent: loc}
		loc.insertEdge(rest, child)
		return &Iterator{root: s.root, ptr: child}
	}

	// Case C: split the existing edge at the common prefix.
	childLabel := loc.children[idx].label
	childNode := loc.children[idx].child
	n := commonPrefixLen(rest, childLabel)
	common := rest[:n]
	postKey := rest[n:]
	postChild := childLabel[n:]
	if len(postChild) == 0 {
		panic("radix: approximateMatch terminated prematurely")
	}

	junction := &node{isEnd: len(postKey) == 0, parent: loc}
	loc.replaceEdgeAt(idx, common, junction)
	childNode.parent = junction
	junction.insertEdge(postChild, childNode)

	if len(postKey) != 0 {
		keyNode := &node{isEnd: true, parent: junction}
		junction.insertEdge(postKey, keyNode)
		return &Iterator{root: s.root, ptr: keyNode}
	}
	return &Iterator{root: s.root, ptr: junction}
}

// commonPrefixLen returns the length of the longest common prefix of a
// and b.
func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// Erase removes key from s, if present. Idempotent if key is absent.
func (s *Set) Erase(key string) {
	match := exactMatch(s.root, []byte(key))
	if match == nil || !match.isEnd {
		return
	}
	match.isEnd = false

	if match == s.root {
		return
	}

	if len(match.children) == 0 {
		par := match.parent
		idx := par.findChildIndex(match)
		if idx < 0 {
			panic("radix: erase could not locate self in parent")
		}
		par.removeEdgeAt(idx)

		if len(par.children) == 1 && par != s.root && !par.isEnd {
			grandPar := par.parent
			if grandPar == nil {
				panic("radix: non-root vertex without a parent")
			}
			parIdx := grandPar.findChildIndex(par)
			if parIdx < 0 {
				panic("radix: erase could not locate parent in grandparent")
			}
			parLabel := grandPar.children[parIdx].label
			onlyLabel := par.children[0].label
			onlyChild := par.children[0].child
			joined := append(append([]byte{}, parLabel...), onlyLabel...)
			onlyChild.parent = grandPar
			grandPar.removeEdgeAt(parIdx)
			grandPar.insertEdge(joined, onlyChild)
		}
		return
	}

	if len(match.children) == 1 {
		par := match.parent
		idx := par.findChildIndex(match)
		if idx < 0 {
			panic("radix: erase could not locate self in parent")
		}
		parLabel := par.children[idx].label
		onlyLabel := match.children[0].label
		onlyChild := match.children[0].child
		joined := append(append([]byte{}, parLabel...), onlyLabel...)
		onlyChild.parent = par
		par.removeEdgeAt(idx)
		par.insertEdge(joined, onlyChild)
	}

	// If match has two or more children, it remains a necessary junction.
}

// ErasePrefix removes every member having prefix as a prefix. Idempotent
// if no member has that prefix. The detached subtree's parent is never
// re-examined for degeneracy; see the package-level open-question note in
// DESIGN.md.
func (s *Set) ErasePrefix(prefix string) {
	rt := prefixMatch(s.root, []byte(prefix))
	if rt == nil {
		return
	}
	if rt == s.root {
		s.Clear()
		return
	}
	par := rt.parent
	idx := par.findChildIndex(rt)
	if idx < 0 {
		panic("radix: erasePrefix could not locate self in parent")
	}
	par.removeEdgeAt(idx)
}

// Clear removes every member from s. Idempotent on an already-empty Set.
func (s *Set) Clear() {
	s.root.children = nil
	s.root.isEnd = false
}

// Union inserts every member of other into s. Panics if other is s itself.
func (s *Set) Union(other *Set) {
	if other == s {
		panic("radix: Union requires a distinct Set")
	}
	for it := other.Begin(); it.Valid(); it.Next() {
		s.Insert(string(it.Key()))
	}
}

// Difference removes every member of other from s. Panics if other is s
// itself.
func (s *Set) Difference(other *Set) {
	if other == s {
		panic("radix: Difference requires a distinct Set")
	}
	for it := other.Begin(); it.Valid(); it.Next() {
		s.Erase(string(it.Key()))
	}
}

// UnionOf returns a new Set containing every member of a or b, leaving
// both untouched.
func UnionOf(a, b *Set) *Set {
	out := a.Clone()
	out.Union(b)
	return out
}

// DifferenceOf returns a new Set containing every member of a that is not
// a member of b, leaving both untouched.
func DifferenceOf(a, b *Set) *Set {
	out := a.Clone()
	out.Difference(b)
	return out
}

// Equal reports whether s and other contain exactly the same keys.
func (s *Set) Equal(other *Set) bool {
	return s.root.equalsNode(other.root)
}

// NotEqual reports whether s and other differ in membership.
func (s *Set) NotEqual(other *Set) bool {
	return !s.Equal(other)
}

// Less reports whether s is a proper subset of other: every member of s is
// a member of other, and other has strictly more members than s. This is
// NOT lexicographic key comparison.
func (s *Set) Less(other *Set) bool {
	if s.Len() >= other.Len() {
		return false
	}
	return includesKeys(other, s)
}

// Greater reports whether other is a proper subset of s.
func (s *Set) Greater(other *Set) bool {
	return other.Less(s)
}

// LessOrEqual reports whether s is a subset of other (proper or equal).
func (s *Set) LessOrEqual(other *Set) bool {
	return s.Less(other) || s.Equal(other)
}

// GreaterOrEqual reports whether other is a subset of s (proper or equal).
func (s *Set) GreaterOrEqual(other *Set) bool {
	return other.Less(s) || s.Equal(other)
}

// includesKeys reports whether every key of small appears in big, walking
// both sorted key streams in lockstep in a single linear pass.
func includesKeys(big, small *Set) bool {
	bi, si := big.Begin(), small.Begin()
	for si.Valid() {
		if !bi.Valid() {
			return false
		}
		cmp := bytes.Compare(bi.Key(), si.Key())
		switch {
		case cmp == 0:
			bi.Next()
			si.Next()
		case cmp < 0:
			bi.Next()
		default:
			return false
		}
	}
	return true
}

// Begin returns an iterator at the lexicographically smallest member, or
// an invalid end iterator if s has no members.
func (s *Set) Begin() *Iterator {
	if s.root.isEnd {
		return &Iterator{root: s.root, ptr: s.root}
	}
	return &Iterator{root: s.root, ptr: s.root.firstKey()}
}

// End returns the invalid, one-past-the-end iterator.
func (s *Set) End() *Iterator {
	return &Iterator{root: s.root, ptr: nil}
}

// BeginPrefix returns an iterator at the lexicographically smallest member
// having prefix as a prefix; equivalent to FindPrefix.
func (s *Set) BeginPrefix(prefix string) *Iterator {
	return s.FindPrefix(prefix)
}

// EndPrefix returns an iterator one past the last member having prefix as
// a prefix. len(p) == 0 is a distinct check from len(rest) == 0: the first
// asks whether the caller requested the whole tree, the second whether
// approximateMatch fully consumed the prefix along its descended path. The
// remaining comparisons are against the residual: a child whose label
// starts with the residual holds every member having prefix, so the range
// ends just past that child's subtree; otherwise the range ends at the
// first member under the first child whose label sorts after the residual.
func (s *Set) EndPrefix(prefix string) *Iterator {
	p := []byte(prefix)
	app, rest := approximateMatch(s.root, p)

	if len(p) == 0 || len(rest) == 0 || len(app.children) == 0 ||
		bytes.Compare(app.children[len(app.children)-1].label, rest) < 0 {
		return &Iterator{root: s.root, ptr: app.nextNode()}
	}

	for _, e := range app.children {
		if isPrefix(rest, e.label) {
			return &Iterator{root: s.root, ptr: e.child.nextNode()}
		}
		if bytes.Compare(e.label, rest) > 0 {
			if e.child.isEnd {
				return &Iterator{root: s.root, ptr: e.child}
			}
			return &Iterator{root: s.root, ptr: e.child.firstKey()}
		}
	}
	panic("radix: EndPrefix could not find a vertex after the given prefix")
}

// WriteTo writes s's members, one per line, in ascending order, and
// implements io.WriterTo.
func (s *Set) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for it := s.Begin(); it.Valid(); it.Next() {
		n, err := fmt.Fprintf(w, "%s\n", it.Key())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// ToJSON serializes the tree per the two-mode contract documented on
// toJSONValue.
func (s *Set) ToJSON(includeEnds bool) (string, error) {
	return marshalNode(s.root, includeEnds)
}

// CheckInvariants verifies the structural invariants hold for s. It is a
// debug/test aid, not part of the hot path.
func (s *Set) CheckInvariants() bool {
	return s.root.checkInvariants()
}
