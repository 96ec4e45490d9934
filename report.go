package hufftree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// bitsPerSymbol is the fixed-width baseline the compression is measured
// against: one byte per symbol.
const bitsPerSymbol = 8

// Entry is one symbol's line in a Report.
type Entry struct {
	Symbol Symbol
	Freq   uint32
	Code   Code
}

// Report compares the Huffman-coded length of an input against its
// fixed-width baseline.
type Report struct {
	// Entries lists the symbols that occurred in the input, ascending.
	Entries []Entry

	// CompressedBits is the sum of code lengths over every occurrence.
	CompressedBits uint64

	// UncompressedBits is bitsPerSymbol times the input length.
	UncompressedBits uint64
}

// BuildReport computes compression statistics for data under the given
// code table.  The result is a plain value; rendering is up to the
// caller.  Every symbol occurring in data must have a code.
func BuildReport(data []byte, codes *CodeTable) Report {
	table := CountBytes(data)
	r := Report{UncompressedBits: uint64(len(data)) * bitsPerSymbol}
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		freq := table[symbol]
		if freq == 0 {
			continue
		}
		hc, ok := codes.Lookup(symbol)
		assert.Assertf(ok, "no code for symbol %d with frequency %d", symbol, freq)
		r.Entries = append(r.Entries, Entry{Symbol: symbol, Freq: freq, Code: hc})
		r.CompressedBits += uint64(freq) * uint64(hc.Size)
	}
	return r
}

// SavedBits returns how many bits the coded form saves over the baseline,
// or 0 if it saves nothing.
func (r Report) SavedBits() uint64 {
	if r.CompressedBits >= r.UncompressedBits {
		return 0
	}
	return r.UncompressedBits - r.CompressedBits
}

// Dump writes a human-readable rendition of the report to the given
// writer: one line per symbol, then the size comparison.
func (r Report) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, entry := range r.Entries {
		fmt.Fprintf(&buf, "%q --> %s\n", rune(entry.Symbol), entry.Code)
	}
	fmt.Fprintf(&buf, "Compressed message requires %d bits versus %d bits for fixed-width encoding.\n", r.CompressedBits, r.UncompressedBits)
	return buf.WriteTo(w)
}
