package hufftree

// Analyze builds the Huffman code table for a byte sequence: count symbol
// frequencies, seed a forest of singleton leaves, merge the forest into a
// single tree, and read the codes off the root-to-leaf paths.  An input
// with no symbols yields ErrEmptyInput.
func Analyze(data []byte) (*CodeTable, error) {
	forest := BuildForest(CountBytes(data))
	root, err := BuildTree(forest)
	if err != nil {
		return nil, err
	}
	return BuildCodeTable(root), nil
}

// AnalyzeString is Analyze for the bytes of a string.
func AnalyzeString(message string) (*CodeTable, error) {
	return Analyze([]byte(message))
}
