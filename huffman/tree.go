package huffman

import (
	"fmt"

	"github.com/lagom-nlp/irse/bitseq"
)

// NoChild marks an absent child index.
const NoChild = -1

// Node is one node of a Huffman tree.
//
// A leaf has no children and its Name is the symbol. An internal node has
// both children; its Name is the concatenation of the leaf names below it
// and its Weight is the sum of its children's weights.
type Node struct {
	Weight uint64
	Name   string
	Left   int
	Right  int
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool {
	return n.Left == NoChild && n.Right == NoChild
}

// Tree is an immutable Huffman tree.
//
// Nodes live in a flat arena and refer to their children by index; children
// are always stored before their parent, so the root is the last node.
type Tree struct {
	nodes  []Node
	root   int
	leaves int
}

func newTree(capacity int) *Tree {
	return &Tree{nodes: make([]Node, 0, capacity)}
}

func (t *Tree) addLeaf(symbol string, weight uint64) int {
	t.nodes = append(t.nodes, Node{Weight: weight, Name: symbol, Left: NoChild, Right: NoChild})
	t.leaves++

	return len(t.nodes) - 1
}

func (t *Tree) addInternal(left, right int) int {
	l, r := t.nodes[left], t.nodes[right]
	t.nodes = append(t.nodes, Node{
		Weight: l.Weight + r.Weight,
		Name:   l.Name + r.Name,
		Left:   left,
		Right:  right,
	})

	return len(t.nodes) - 1
}

// Root returns the root node.
func (t *Tree) Root() Node {
	return t.nodes[t.root]
}

// RootIndex returns the arena index of the root.
func (t *Tree) RootIndex() int {
	return t.root
}

// Node returns the node at arena index i.
func (t *Tree) Node(i int) Node {
	return t.nodes[i]
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Leaves returns the number of symbols.
func (t *Tree) Leaves() int {
	return t.leaves
}

// Weight returns the total weight of the tree.
func (t *Tree) Weight() uint64 {
	return t.Root().Weight
}

// Name returns the concatenated symbol names under the root.
func (t *Tree) Name() string {
	return t.Root().Name
}

// Walk visits every node in pre-order with the path leading to it.
// Returning false from fn stops the walk.
func (t *Tree) Walk(fn func(path bitseq.Bits, n Node) bool) {
	path := make([]byte, 0, 16)
	t.walk(t.root, path, fn)
}

func (t *Tree) walk(i int, path []byte, fn func(bitseq.Bits, Node) bool) bool {
	n := t.nodes[i]
	if !fn(bitseq.Bits(path), n) {
		return false
	}
	if n.IsLeaf() {
		return true
	}

	if !t.walk(n.Left, append(path, bitseq.Zero), fn) {
		return false
	}

	return t.walk(n.Right, append(path, bitseq.One), fn)
}

// readLeaf follows r down the tree and returns the index of the leaf
// reached. A single-leaf tree consumes nothing.
func (t *Tree) readLeaf(r *bitseq.Reader) (int, error) {
	i := t.root
	for {
		n := t.nodes[i]
		if n.IsLeaf() {
			return i, nil
		}

		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

func (t *Tree) String() string {
	return fmt.Sprintf("huffman.Tree{leaves: %d, weight: %d}", t.leaves, t.Weight())
}
