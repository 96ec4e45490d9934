// Command huffreport prints the Huffman codes and compression summary for
// an embedded example message.
package main

import (
	"fmt"
	"os"

	"github.com/chronos-tachyon/hufftree"
)

const message = "to whom much is given much is tested get arrested guess until he get the message i feel the pressure under more scrutiny and what i do act more stupidly"

func main() {
	codes, err := hufftree.AnalyzeString(message)
	if err != nil {
		fmt.Fprintln(os.Stderr, "huffreport:", err)
		os.Exit(1)
	}

	report := hufftree.BuildReport([]byte(message), codes)
	if _, err := report.Dump(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "huffreport:", err)
		os.Exit(1)
	}
	fmt.Printf("Huffman coding saves %d bits.\n", report.SavedBits())
}
