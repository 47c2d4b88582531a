package radix

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"

	uuid "github.com/hashicorp/go-uuid"
	"github.com/stretchr/testify/require"
)

func collect(it *Iterator) []string {
	var out []string
	for it.Valid() {
		out = append(out, string(it.Key()))
		it.Next()
	}
	return out
}

func TestSet_EmptyAndSingleton(t *testing.T) {
	t.Parallel()

	s := New()
	require.True(t, s.Empty())
	require.True(t, s.Empty("hello"))
	require.Equal(t, 0, s.Len())
	require.Equal(t, 0, s.Len("world"))
	require.False(t, s.Begin().Valid())
	require.False(t, s.End().Valid())
	require.True(t, s.Begin().Equal(s.End()))
	require.False(t, s.Find("test").Valid())
	require.False(t, s.FindPrefix("test").Valid())
	require.False(t, s.Find("").Valid())
	require.False(t, s.FindPrefix("").Valid())

	s.Insert("")
	require.False(t, s.Empty())
	require.True(t, s.Empty("hello"))
	require.Equal(t, 1, s.Len())
	require.True(t, s.Begin().Valid())
	require.Equal(t, "", string(s.Begin().Key()))
	require.True(t, s.Find("").Valid())
	require.Equal(t, "", string(s.Find("").Key()))

	s2 := New()
	s2.Insert("single")
	require.False(t, s2.Empty())
	require.True(t, s2.Empty("hello"))
	require.False(t, s2.Empty("sin"))
	require.Equal(t, 1, s2.Len())
	require.Equal(t, 1, s2.Len("si"))
	require.Equal(t, "single", string(s2.Begin().Key()))
	require.False(t, s2.Find("test").Valid())
	require.False(t, s2.Find("sin").Valid())
	require.True(t, s2.Find("single").Valid())
	require.Equal(t, "single", string(s2.FindPrefix("sin").Key()))
	require.Equal(t, "single", string(s2.FindPrefix("").Key()))
	require.True(t, s2.CheckInvariants())
}

// TestSet_StructuralShape checks the JSON shape of a 13-word tree, built
// in a shuffled insertion order, against the expected compressed layout.
func TestSet_StructuralShape(t *testing.T) {
	t.Parallel()

	words := append([]string{}, scenarioWords...)
	rand.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })

	s := buildWordTree(t, words...)
	require.Equal(t, 13, s.Len())

	got, err := s.ToJSON(false)
	require.NoError(t, err)
	want := `{"co":{"mpute":{"r":{}},"nta":{"in":{},"minate":{}},"rn":{"er":{}}},` +
		`"ma":{"h":{"jong":{},"ogany":{}},"t":{"er":{"ial":{},"nal":{}},"h":{},"rix":{}}}}`
	require.JSONEq(t, want, got)
}

// TestSet_PrefixSize checks size/emptiness queries scoped to a prefix.
func TestSet_PrefixSize(t *testing.T) {
	t.Parallel()

	s := buildWordTree(t, scenarioWords...)
	require.Equal(t, 13, s.Len())
	require.Equal(t, 7, s.Len("ma"))
	require.Equal(t, 5, s.Len("mat"))
	require.Equal(t, 0, s.Len("xyz"))
	require.False(t, s.Empty("matern"))
}

// TestSet_PrefixRange checks that a prefix-scoped iteration range yields
// exactly the members sharing that prefix, in order.
func TestSet_PrefixRange(t *testing.T) {
	t.Parallel()

	s := buildWordTree(t, scenarioWords...)

	want := []string{"compute", "computer", "contain", "contaminate", "corn", "corner"}
	require.Equal(t, want, keysBetween(s, "co"))
	require.Equal(t, []string{"material", "maternal"}, keysBetween(s, "mate"))
}

// keysBetween collects keys from BeginPrefix(prefix) up to (excluding)
// EndPrefix(prefix).
func keysBetween(s *Set, prefix string) []string {
	begin := s.BeginPrefix(prefix)
	end := s.EndPrefix(prefix)
	var out []string
	for it := begin; it.Valid() && !it.Equal(end); it.Next() {
		out = append(out, string(it.Key()))
	}
	return out
}

// TestSet_EraseWithMerge checks that erasing a key whose vertex keeps a
// single child merges that vertex's edge into its parent's.
func TestSet_EraseWithMerge(t *testing.T) {
	t.Parallel()

	s := buildWordTree(t, scenarioWords...)
	s.Erase("corn")
	require.True(t, s.CheckInvariants())
	require.Equal(t, 12, s.Len())
	require.Equal(t, 5, s.Len("co"))
	require.False(t, s.Find("corn").Valid())
	require.True(t, s.Find("corner").Valid())

	remaining := collect(s.Begin())
	require.True(t, sort.StringsAreSorted(remaining))
	require.Len(t, remaining, 12)
}

// TestSet_PrefixErase checks that erasing a whole prefix subtree drops
// every member under it in one step.
func TestSet_PrefixErase(t *testing.T) {
	t.Parallel()

	s := buildWordTree(t, scenarioWords...)
	s.ErasePrefix("con")
	require.True(t, s.CheckInvariants())
	require.False(t, s.FindPrefix("con").Valid())
	require.Equal(t, 4, s.Len("co"))
	require.False(t, s.Find("contain").Valid())
	require.False(t, s.Find("contaminate").Valid())
}

// TestSet_Algebra checks union, difference, and the proper-subset ordering.
func TestSet_Algebra(t *testing.T) {
	t.Parallel()

	a := buildWordTree(t, scenarioWords...)
	b := buildWordTree(t, "compute", "contain", "corn", "mahjong", "mat", "maternal", "matrix")
	c := buildWordTree(t, "computer", "contaminate", "corner", "mahogany", "material", "math")

	bUnionC := UnionOf(b, c)
	require.True(t, bUnionC.Equal(a))

	aMinusC := DifferenceOf(a, c)
	require.True(t, aMinusC.Equal(b))

	aMinusB := DifferenceOf(a, b)
	require.True(t, aMinusB.Equal(c))

	empty := DifferenceOf(DifferenceOf(a, b), c)
	require.True(t, empty.Empty())

	aMinusJunk := DifferenceOf(a, buildWordTree(t, "some", "extra", "stuff"))
	require.True(t, aMinusJunk.Equal(a))

	aPlusExtra := a.Clone()
	aPlusExtra.Insert("extra")
	require.True(t, a.Less(aPlusExtra))
	require.False(t, aPlusExtra.Less(a))
	require.True(t, aPlusExtra.Greater(a))
	require.True(t, a.LessOrEqual(aPlusExtra))
	require.True(t, a.LessOrEqual(a))
	require.False(t, a.Less(a))
}

func TestSet_UnionAndDifferencePanicOnSelf(t *testing.T) {
	t.Parallel()

	s := buildWordTree(t, "a", "b")
	require.Panics(t, func() { s.Union(s) })
	require.Panics(t, func() { s.Difference(s) })
}

func TestSet_WriteTo(t *testing.T) {
	t.Parallel()

	s := buildWordTree(t, "b", "a", "c")
	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)
	require.Equal(t, "a\nb\nc\n", buf.String())
}

func TestSet_InsertFuzzWithUUIDs(t *testing.T) {
	t.Parallel()

	s := New()
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id, err := uuid.GenerateUUID()
		require.NoError(t, err)
		seen[id] = true
		s.Insert(id)
	}
	require.True(t, s.CheckInvariants())
	require.Equal(t, len(seen), s.Len())
	for id := range seen {
		require.True(t, s.Find(id).Valid())
	}
}
