package hufftree

// FrequencyTable holds an occurrence count for every symbol in the
// alphabet.  The zero value is the table of an empty input.
type FrequencyTable [NumSymbols]uint32

// CountBytes builds a frequency table from a byte sequence.  A nil or
// empty input is valid and yields the zero table.
func CountBytes(data []byte) FrequencyTable {
	var table FrequencyTable
	for _, b := range data {
		table[b]++
	}
	return table
}

// CountString builds a frequency table from the bytes of a string.
func CountString(message string) FrequencyTable {
	return CountBytes([]byte(message))
}

// NumDistinct returns the number of symbols with a non-zero count.
func (table FrequencyTable) NumDistinct() int {
	var n int
	for _, freq := range table {
		if freq != 0 {
			n++
		}
	}
	return n
}
