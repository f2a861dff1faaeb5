package trie

import (
	"sync"

	"golang.org/x/text/language"
)

// GTrie is a prefix tree over an arbitrary comparable symbol type. Words are
// symbol sequences stored as paths from the root, with shared prefixes
// sharing nodes. GTrie is not safe for concurrent use; see Trie for a
// synchronised string variant.
type GTrie[S comparable] struct {
	root *Node[S]
}

// NewG creates a new empty generic trie.
func NewG[S comparable]() *GTrie[S] { return &GTrie[S]{root: NewNode[S]()} }

// Root returns the node representing the empty prefix.
func (g *GTrie[S]) Root() *Node[S] { return g.root }

// Insert adds word to the trie. Inserting an existing word is a no-op and
// the empty word marks the root terminal.
func (g *GTrie[S]) Insert(word []S) {
	current := g.root
	for _, symbol := range word {
		current = current.EnsureChild(symbol)
	}
	current.markTerminal()
}

// Find returns the node at the end of prefix. The second result is false if
// some symbol of prefix has no matching child.
func (g *GTrie[S]) Find(prefix []S) (*Node[S], bool) {
	current := g.root
	for _, symbol := range prefix {
		next, ok := current.Child(symbol)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Trie is a string prefix tree keyed by runes. Inserts take an exclusive
// lock and lookups share a read lock, so a Trie may be used from several
// goroutines.
type Trie struct {
	g         *GTrie[rune]
	mu        sync.RWMutex
	collation language.Tag
}

// New creates a new empty trie. Results of Complete are collated using the
// root locale until WithCollation is called.
func New() *Trie {
	return &Trie{g: NewG[rune](), collation: language.Und}
}

// WithCollation sets the locale used to order the results of Complete.
func (t *Trie) WithCollation(tag language.Tag) *Trie {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.collation = tag
	return t
}

// Insert inserts strings into the Trie
func (t *Trie) Insert(words ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, word := range words {
		t.g.Insert([]rune(word))
	}
}

// Find returns the node for prefix. The node belongs to the trie; walking it
// while another goroutine inserts is a data race, use the Suffixes family
// for that.
func (t *Trie) Find(prefix string) (*Node[rune], bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.g.Find([]rune(prefix))
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n, ok := t.g.Find([]rune(word))
	return ok && n.Terminal()
}

// ShortSuffixes returns the short enumeration below prefix.
func (t *Trie) ShortSuffixes(prefix string) ([]string, bool) {
	return t.suffixes(prefix, (*Node[rune]).EnumerateShort)
}

// LongSuffixes returns the long enumeration below prefix.
func (t *Trie) LongSuffixes(prefix string) ([]string, bool) {
	return t.suffixes(prefix, (*Node[rune]).EnumerateLong)
}

// Suffixes returns the short enumeration followed by the long enumeration
// below prefix, duplicates included.
func (t *Trie) Suffixes(prefix string) ([]string, bool) {
	return t.suffixes(prefix, (*Node[rune]).EnumerateAll)
}

func (t *Trie) suffixes(prefix string, enumerate func(*Node[rune]) [][]rune) ([]string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n, ok := t.g.Find([]rune(prefix))
	if !ok {
		return nil, false
	}
	raw := enumerate(n)
	out := make([]string, 0, len(raw))
	for _, suffix := range raw {
		out = append(out, string(suffix))
	}
	return out, true
}

// Complete returns prefix joined with each of its Suffixes, collated, and
// cut to limit entries when limit is positive.
func (t *Trie) Complete(prefix string, limit int) []string {
	suffixes, ok := t.Suffixes(prefix)
	if !ok {
		return []string{}
	}
	t.mu.RLock()
	tag := t.collation
	t.mu.RUnlock()

	words := make([]string, 0, len(suffixes))
	for _, suffix := range suffixes {
		words = append(words, prefix+suffix)
	}
	SortSuffixes(words, tag)
	if limit > 0 && len(words) > limit {
		return words[:limit]
	}
	return words
}
