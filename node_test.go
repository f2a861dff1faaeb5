package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wordList = []string{
	"ant", "anthology", "antagonist", "antonym",
	"fun", "function", "factory",
	"trie", "trigger", "trigonometry", "tripod",
}

func fixture() *GTrie[rune] {
	g := NewG[rune]()
	for _, word := range wordList {
		g.Insert([]rune(word))
	}
	return g
}

func strs(suffixes [][]rune) []string {
	out := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		out = append(out, string(s))
	}
	return out
}

func findNode(t *testing.T, g *GTrie[rune], prefix string) *Node[rune] {
	t.Helper()
	n, ok := g.Find([]rune(prefix))
	require.True(t, ok, "prefix %q not found", prefix)
	return n
}

func TestNewNode(t *testing.T) {
	n := NewNode[rune]()
	assert.False(t, n.Terminal())
	assert.True(t, n.Leaf())
	assert.Equal(t, 0, n.Len())
}

func TestEnsureChild(t *testing.T) {
	n := NewNode[rune]()
	a := n.EnsureChild('a')
	assert.Same(t, a, n.EnsureChild('a'))
	assert.Equal(t, 1, n.Len())
	assert.False(t, a.Terminal())

	got, ok := n.Child('a')
	assert.True(t, ok)
	assert.Same(t, a, got)

	_, ok = n.Child('b')
	assert.False(t, ok)
}

func TestEnumerations(t *testing.T) {
	g := fixture()

	tests := []struct {
		prefix      string
		short, long []string
	}{
		{"f", []string{"un"}, []string{"unction", "actory"}},
		{"a", []string{"nt"}, []string{"nthology", "ntagonist", "ntonym"}},
		{"t", []string{}, []string{"rie", "rigger", "rigonometry", "ripod"}},
		{"trig", []string{}, []string{"ger", "onometry"}},
		{"ant", []string{""}, []string{"hology", "agonist", "onym"}},
		{"factory", []string{}, []string{""}},
		{"", []string{"ant", "fun"}, []string{
			"anthology", "antagonist", "antonym", "function", "factory",
			"trie", "trigger", "trigonometry", "tripod",
		}},
	}
	for _, tc := range tests {
		t.Run(tc.prefix, func(t *testing.T) {
			n := findNode(t, g, tc.prefix)
			assert.ElementsMatch(t, tc.short, strs(n.EnumerateShort()))
			assert.ElementsMatch(t, tc.long, strs(n.EnumerateLong()))
			assert.ElementsMatch(t, append(append([]string{}, tc.short...), tc.long...), strs(n.EnumerateAll()))
		})
	}
}

func TestEnumerateAllOrder(t *testing.T) {
	n := findNode(t, fixture(), "f")
	all := strs(n.EnumerateAll())
	require.Len(t, all, 3)
	assert.Equal(t, "un", all[0])
	assert.ElementsMatch(t, []string{"unction", "actory"}, all[1:])
}

func TestEnumerateAllConcatenates(t *testing.T) {
	g := NewG[rune]()
	g.Insert([]rune("ab"))
	g.Insert([]rune("abc"))

	// the short pass stops at the terminal branch point, the long pass runs
	// on to the leaf.
	ab := findNode(t, g, "ab")
	assert.Equal(t, []string{"", "c"}, strs(ab.EnumerateAll()))

	// a terminal leaf is reported by the long pass only.
	abc := findNode(t, g, "abc")
	assert.Equal(t, []string{""}, strs(abc.EnumerateAll()))

	// a lone non-terminal leaf can only be the root of an empty trie; the
	// long pass still reports it.
	root := NewG[rune]().Root()
	assert.Empty(t, root.EnumerateShort())
	assert.Equal(t, []string{""}, strs(root.EnumerateAll()))
}

func TestEnumerateLongSkipsBranchPoints(t *testing.T) {
	g := fixture()
	for _, word := range wordList {
		for i := 0; i <= len(word); i++ {
			n := findNode(t, g, word[:i])
			if n.Leaf() {
				continue
			}
			assert.NotContains(t, strs(n.EnumerateLong()), "", "prefix %q", word[:i])
		}
	}
}

func TestEnumerateShortHidesWordsBelowTerminalBranch(t *testing.T) {
	n := findNode(t, fixture(), "fun")
	assert.Equal(t, []string{""}, strs(n.EnumerateShort()))
	assert.Equal(t, []string{"ction"}, strs(n.EnumerateLong()))
}
