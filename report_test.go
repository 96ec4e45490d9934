package hufftree

import (
	"strings"
	"testing"
)

func TestBuildReport(t *testing.T) {
	data := []byte("aabbbc")
	codes, err := Analyze(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report := BuildReport(data, codes)

	if report.UncompressedBits != 48 {
		t.Errorf("wrong UncompressedBits:\n\texpect: 48\n\tactual: %d", report.UncompressedBits)
	}
	if report.CompressedBits != 9 {
		t.Errorf("wrong CompressedBits:\n\texpect: 9\n\tactual: %d", report.CompressedBits)
	}
	if report.SavedBits() != 39 {
		t.Errorf("wrong SavedBits:\n\texpect: 39\n\tactual: %d", report.SavedBits())
	}

	expectDump := strings.Join([]string{
		"'a' --> \"11\"\n",
		"'b' --> \"0\"\n",
		"'c' --> \"10\"\n",
		"Compressed message requires 9 bits versus 48 bits for fixed-width encoding.\n",
	}, "")

	var buf strings.Builder
	_, _ = report.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuildReport_BitTotals(t *testing.T) {
	data := []byte("to whom much is given much is tested get arrested guess until")
	codes, err := Analyze(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report := BuildReport(data, codes)

	// Independent tally: walk the input one symbol at a time.
	var expectBits uint64
	for _, b := range data {
		hc, ok := codes.Lookup(Symbol(b))
		if !ok {
			t.Fatalf("no code for symbol %d", b)
		}
		expectBits += uint64(hc.Size)
	}
	if report.CompressedBits != expectBits {
		t.Errorf("wrong CompressedBits:\n\texpect: %d\n\tactual: %d", expectBits, report.CompressedBits)
	}

	// Per-entry tally must agree as well.
	var entryBits uint64
	for _, entry := range report.Entries {
		entryBits += uint64(entry.Freq) * uint64(entry.Code.Size)
	}
	if report.CompressedBits != entryBits {
		t.Errorf("entries disagree with CompressedBits:\n\texpect: %d\n\tactual: %d", entryBits, report.CompressedBits)
	}

	if report.UncompressedBits != uint64(len(data))*8 {
		t.Errorf("wrong UncompressedBits:\n\texpect: %d\n\tactual: %d", len(data)*8, report.UncompressedBits)
	}
	if report.CompressedBits > report.UncompressedBits {
		t.Errorf("compressed form is larger than the baseline: %d > %d", report.CompressedBits, report.UncompressedBits)
	}
}

func TestBuildReport_EntriesAscending(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	codes, err := Analyze(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report := BuildReport(data, codes)
	table := CountBytes(data)

	if len(report.Entries) != table.NumDistinct() {
		t.Fatalf("wrong entry count:\n\texpect: %d\n\tactual: %d", table.NumDistinct(), len(report.Entries))
	}
	for i, entry := range report.Entries {
		if i > 0 && entry.Symbol <= report.Entries[i-1].Symbol {
			t.Errorf("entries out of order at index %d: %d after %d", i, entry.Symbol, report.Entries[i-1].Symbol)
		}
		if entry.Freq != table[entry.Symbol] {
			t.Errorf("wrong frequency for symbol %d:\n\texpect: %d\n\tactual: %d", entry.Symbol, table[entry.Symbol], entry.Freq)
		}
	}
}
