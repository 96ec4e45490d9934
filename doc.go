// Package hufftree builds Huffman prefix codes over an explicit binary
// tree.  It counts symbol frequencies, merges a forest of singleton leaves
// through a minimum priority queue, derives a bit-string code for each
// symbol from the finished tree, and reports the compression achieved
// against a fixed-width baseline.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package hufftree
