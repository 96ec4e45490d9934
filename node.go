package hufftree

import (
	"math"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman tree.  A Node is either a leaf, carrying a
// Symbol and its occurrence count, or an internal node, carrying the
// combined count of the two subtrees it exclusively owns.  A node is a
// leaf iff both children are nil, and an internal node always has both.
type Node struct {
	// Symbol is the symbol at a leaf, or InvalidSymbol at an internal
	// node.
	Symbol Symbol

	// Freq is the symbol's occurrence count at a leaf, or the sum of both
	// children's frequencies at an internal node.
	Freq uint32

	// Left and Right are the owned subtrees of an internal node.
	Left  *Node
	Right *Node

	// seq breaks frequency ties: leaves take their symbol value, merged
	// nodes take NumSymbols plus a merge counter.
	seq uint32
}

// NewLeaf constructs a leaf node for a symbol with the given frequency.
func NewLeaf(symbol Symbol, freq uint32) *Node {
	assert.Assertf(symbol >= 0, "symbol %d is negative", symbol)
	assert.Assertf(symbol < NumSymbols, "symbol %d >= NumSymbols %d", symbol, NumSymbols)
	return &Node{Symbol: symbol, Freq: freq, seq: uint32(symbol)}
}

// IsLeaf reports whether this node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// mergeNodes constructs an internal node taking ownership of both
// arguments.  The combined frequency uses saturating addition.
func mergeNodes(left *Node, right *Node, seq uint32) *Node {
	assert.Assertf(left != nil, "nil left child")
	assert.Assertf(right != nil, "nil right child")

	freq := left.Freq + right.Freq
	if freq < left.Freq {
		freq = math.MaxUint32
	}

	return &Node{
		Symbol: InvalidSymbol,
		Freq:   freq,
		Left:   left,
		Right:  right,
		seq:    seq,
	}
}
