package trie

// frame is a pending node on a walk stack together with the symbols that
// lead to it from the node the walk started at.
type frame[S comparable] struct {
	node *Node[S]
	path []S
}

// WalkShort calls fn for every suffix EnumerateShort would return. It keeps
// pending nodes on a heap stack instead of recursing, so the depth of the
// trie is not bounded by the goroutine stack. fn owns the slice it receives.
func (n *Node[S]) WalkShort(fn func(suffix []S)) {
	stack := []frame[S]{{node: n, path: []S{}}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.node.terminal && !top.node.Leaf() {
			fn(top.path)
			continue
		}
		for symbol, child := range top.node.children {
			stack = append(stack, frame[S]{node: child, path: extend(top.path, symbol)})
		}
	}
}

// WalkLong calls fn for every suffix EnumerateLong would return, without
// recursion. fn owns the slice it receives.
func (n *Node[S]) WalkLong(fn func(suffix []S)) {
	stack := []frame[S]{{node: n, path: []S{}}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.node.Leaf() {
			fn(top.path)
			continue
		}
		for symbol, child := range top.node.children {
			stack = append(stack, frame[S]{node: child, path: extend(top.path, symbol)})
		}
	}
}

// WalkAll runs WalkShort and then WalkLong with the same callback.
func (n *Node[S]) WalkAll(fn func(suffix []S)) {
	n.WalkShort(fn)
	n.WalkLong(fn)
}

// extend returns a fresh copy of path with symbol appended, so sibling
// frames never share a backing array.
func extend[S any](path []S, symbol S) []S {
	out := make([]S, len(path), len(path)+1)
	copy(out, path)
	return append(out, symbol)
}
