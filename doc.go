/*
Package trie provides a prefix tree for autocompletion of words.
Words are inserted as symbol paths and the node at a prefix can enumerate
its completions using a short policy, which stops at terminal branch
points, a long policy, which only stops at leaves, or both.
*/
package trie
