package hufftree

// Symbol represents a symbol in the fixed 8-bit input alphabet.  Negative
// symbols are not valid.
type Symbol int32

// NumSymbols is the size of the alphabet.  Valid symbols lie in the range
// [0, NumSymbols).
const NumSymbols = Symbol(256)

// InvalidSymbol marks nodes that carry no symbol of their own, i.e.
// internal tree nodes.
const InvalidSymbol = Symbol(-1)
