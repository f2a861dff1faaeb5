package trie

// Node is a node in a trie. It holds a map of symbols to child nodes and a
// terminal flag which is set when some inserted word ends exactly here.
// Every node is owned by exactly one parent (the root by its trie).
type Node[S comparable] struct {
	children map[S]*Node[S]
	terminal bool
}

// NewNode creates a non-terminal node with no children.
func NewNode[S comparable]() *Node[S] {
	return &Node[S]{children: make(map[S]*Node[S])}
}

// EnsureChild returns the child for symbol, creating and registering it if
// it does not exist yet. Repeated calls return the same child.
func (n *Node[S]) EnsureChild(symbol S) *Node[S] {
	child, ok := n.children[symbol]
	if !ok {
		child = NewNode[S]()
		n.children[symbol] = child
	}
	return child
}

// Child returns the existing child for symbol.
func (n *Node[S]) Child(symbol S) (*Node[S], bool) {
	child, ok := n.children[symbol]
	return child, ok
}

// Terminal reports whether an inserted word ends at this node.
func (n *Node[S]) Terminal() bool { return n.terminal }

// Leaf reports whether the node has no children.
func (n *Node[S]) Leaf() bool { return len(n.children) == 0 }

// Len returns the number of children.
func (n *Node[S]) Len() int { return len(n.children) }

func (n *Node[S]) markTerminal() { n.terminal = true }

// EnumerateShort returns the suffixes below this node, stopping at the first
// terminal node that still has children. Such a node contributes a single
// empty suffix and its descendants are not visited. A terminal leaf
// contributes nothing.
//
// NOTE: words below a terminal branch point are only reported by
// EnumerateLong; callers wanting both use EnumerateAll.
func (n *Node[S]) EnumerateShort() [][]S {
	var suffixes [][]S
	if n.Leaf() || !n.terminal {
		for symbol, child := range n.children {
			for _, suffix := range child.EnumerateShort() {
				suffixes = append(suffixes, prepend(symbol, suffix))
			}
		}
		return suffixes
	}
	return append(suffixes, []S{})
}

// EnumerateLong returns the suffixes that end at leaves below this node.
// Terminal flags on inner nodes are ignored, so a word that is a strict
// prefix of another word is never reported on its own.
func (n *Node[S]) EnumerateLong() [][]S {
	if n.Leaf() {
		return [][]S{{}}
	}
	var suffixes [][]S
	for symbol, child := range n.children {
		for _, suffix := range child.EnumerateLong() {
			suffixes = append(suffixes, prepend(symbol, suffix))
		}
	}
	return suffixes
}

// EnumerateAll returns the EnumerateShort results followed by the
// EnumerateLong results without removing duplicates.
func (n *Node[S]) EnumerateAll() [][]S {
	return append(n.EnumerateShort(), n.EnumerateLong()...)
}

func prepend[S any](symbol S, suffix []S) []S {
	out := make([]S, 0, len(suffix)+1)
	out = append(out, symbol)
	return append(out, suffix...)
}
