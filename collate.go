package trie

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortSuffixes sorts suffixes in place using the collation rules of tag.
// Enumeration order follows map iteration and changes between runs, so
// callers that display results should sort them first.
func SortSuffixes(suffixes []string, tag language.Tag) {
	// A Collator keeps internal buffers and must not be shared.
	collate.New(tag).SortStrings(suffixes)
}
