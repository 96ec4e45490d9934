package hufftree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each symbol that occurred in the input to its bit-string
// code.  A CodeTable is immutable once built.
type CodeTable struct {
	codes    [NumSymbols]Code
	numCodes int
	minSize  byte
	maxSize  byte
}

// BuildCodeTable derives the code table from the root of a Huffman tree
// by walking every root-to-leaf path: descending into a left child
// appends a 0 bit, descending into a right child appends a 1 bit.
//
// A root that is itself a leaf receives the fixed one-bit code "0", so
// the single-symbol case never produces an empty code.
func BuildCodeTable(root *Node) *CodeTable {
	assert.Assertf(root != nil, "nil tree root")

	var t CodeTable
	if root.IsLeaf() {
		t.record(root.Symbol, MakeCode(1, 0))
		return &t
	}
	t.walk(root, Code{})
	return &t
}

func (t *CodeTable) walk(node *Node, code Code) {
	if node.IsLeaf() {
		t.record(node.Symbol, code)
		return
	}
	t.walk(node.Left, code.appendBit(0))
	t.walk(node.Right, code.appendBit(1))
}

func (t *CodeTable) record(symbol Symbol, code Code) {
	assert.Assertf(code.Size != 0, "empty code for symbol %d", symbol)

	t.codes[symbol] = code
	if t.numCodes == 0 {
		t.minSize = code.Size
		t.maxSize = code.Size
	} else if t.minSize > code.Size {
		t.minSize = code.Size
	} else if t.maxSize < code.Size {
		t.maxSize = code.Size
	}
	t.numCodes++
}

// Lookup returns the code for a symbol.  The second return value is false
// for symbols that did not occur in the input, and for values outside the
// alphabet.
func (t *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	if symbol < 0 || symbol >= NumSymbols {
		return Code{}, false
	}
	hc := t.codes[symbol]
	return hc, hc.Size != 0
}

// NumCodes returns the number of symbols that have a code.
func (t *CodeTable) NumCodes() int {
	return t.numCodes
}

// MinSize is the bit length of the shortest assigned code.
func (t *CodeTable) MinSize() byte {
	return t.minSize
}

// MaxSize is the bit length of the longest assigned code.
func (t *CodeTable) MaxSize() byte {
	return t.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol
// in the alphabet.  Symbols without a code have length 0.
func (t *CodeTable) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		out[symbol] = t.codes[symbol].Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the CodeTable's
// current state to the given writer.
func (t *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		hc := t.codes[symbol]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
