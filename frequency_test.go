package hufftree

import (
	"testing"
)

func TestCountBytes(t *testing.T) {
	table := CountBytes([]byte("abbccc"))

	type testRow struct {
		symbol Symbol
		freq   uint32
	}

	testData := [...]testRow{
		{symbol: 'a', freq: 1},
		{symbol: 'b', freq: 2},
		{symbol: 'c', freq: 3},
		{symbol: 'd', freq: 0},
		{symbol: 0, freq: 0},
		{symbol: 255, freq: 0},
	}
	for _, row := range testData {
		if actual := table[row.symbol]; actual != row.freq {
			t.Errorf("wrong count for symbol %d:\n\texpect: %d\n\tactual: %d", row.symbol, row.freq, actual)
		}
	}

	if actual := table.NumDistinct(); actual != 3 {
		t.Errorf("wrong NumDistinct:\n\texpect: 3\n\tactual: %d", actual)
	}
}

func TestCountBytes_Empty(t *testing.T) {
	var zero FrequencyTable

	if actual := CountBytes(nil); actual != zero {
		t.Errorf("CountBytes(nil) is not the zero table")
	}
	if actual := CountBytes([]byte{}); actual != zero {
		t.Errorf("CountBytes of an empty slice is not the zero table")
	}
	if actual := zero.NumDistinct(); actual != 0 {
		t.Errorf("wrong NumDistinct:\n\texpect: 0\n\tactual: %d", actual)
	}
}

func TestCountString(t *testing.T) {
	expect := CountBytes([]byte("mississippi"))
	actual := CountString("mississippi")
	if expect != actual {
		t.Errorf("CountString disagrees with CountBytes")
	}
}
