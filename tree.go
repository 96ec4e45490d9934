package hufftree

import (
	"errors"

	"github.com/chronos-tachyon/assert"
)

// ErrEmptyInput is returned when the frequency table yields no symbols to
// encode.
var ErrEmptyInput = errors.New("no symbols to encode")

// nodeLess orders forest nodes by frequency ascending, falling back to
// insertion sequence so that tree shape is reproducible across runs.
func nodeLess(a *Node, b *Node) bool {
	if a.Freq != b.Freq {
		return a.Freq < b.Freq
	}
	return a.seq < b.seq
}

// BuildForest wraps every symbol with a non-zero frequency in a singleton
// leaf and inserts it into a fresh priority queue.  Symbols that never
// occur are excluded; they will not receive a code.
func BuildForest(table FrequencyTable) *MinQueue[*Node] {
	forest := NewMinQueue(nodeLess)
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if freq := table[symbol]; freq != 0 {
			forest.Insert(NewLeaf(symbol, freq))
		}
	}
	return forest
}

// BuildTree merges the two lowest-frequency trees in the forest until one
// remains, and returns it as the root of the Huffman tree.  The forest is
// consumed.  An empty forest yields ErrEmptyInput; a single-leaf forest
// yields that leaf, which downstream code derivation handles specially.
func BuildTree(forest *MinQueue[*Node]) (*Node, error) {
	if forest.Len() == 0 {
		return nil, ErrEmptyInput
	}

	nextSeq := uint32(NumSymbols)
	for forest.Len() > 1 {
		t1, err := forest.RemoveMin()
		assert.Assertf(err == nil, "RemoveMin: %v", err)
		t2, err := forest.RemoveMin()
		assert.Assertf(err == nil, "RemoveMin: %v", err)
		forest.Insert(mergeNodes(t1, t2, nextSeq))
		nextSeq++
	}

	root, err := forest.RemoveMin()
	assert.Assertf(err == nil, "RemoveMin: %v", err)
	return root, nil
}
