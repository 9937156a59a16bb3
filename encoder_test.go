package huffzip

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncoder(t *testing.T) {
	var ft FrequencyTable
	copy(ft[:], []uint64{5, 9, 12, 13, 16, 45})

	var e Encoder
	if err := e.Init(&ft); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1110\"\n",
		"\tEncode(1) = \"1111\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"110\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	actualSizes := e.SizeBySymbol()
	expectSizes := make([]byte, NumSymbols)
	copy(expectSizes, []byte{4, 4, 3, 3, 3, 1})
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes[:8], actualSizes[:8])
	}

	if !e.CodeTable().IsCanonical() {
		t.Errorf("table is not canonical: %#v", e.CodeTable())
	}
}

func TestEncoder_Hello(t *testing.T) {
	ft, err := CountFrequencies([]byte("hello"), AlphabetFull)
	if err != nil {
		t.Fatalf("CountFrequencies failed: %v", err)
	}

	var e Encoder
	if err := e.Init(&ft); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	expectTable := CodeTable{
		{Symbol: 'e', Size: 2, Bits: 0},
		{Symbol: 'h', Size: 2, Bits: 1},
		{Symbol: 'l', Size: 2, Bits: 2},
		{Symbol: 'o', Size: 2, Bits: 3},
	}
	actualTable := e.CodeTable()
	if expectTable.GoString() != actualTable.GoString() {
		t.Errorf("wrong table:\n\texpect: %#v\n\tactual: %#v", expectTable, actualTable)
	}

	l, _ := e.Encode('l')
	for _, symbol := range []Symbol{'e', 'h', 'o'} {
		hc, _ := e.Encode(symbol)
		if l.Size > hc.Size {
			t.Errorf("most frequent symbol 'l' has %d bits, but %s has only %d", l.Size, symbol, hc.Size)
		}
	}

	if _, ok := e.Encode('z'); ok {
		t.Errorf("expected no code for 'z'")
	}
}

func TestEncoder_SingleSymbol(t *testing.T) {
	ft, _ := CountFrequencies([]byte("aaaa"), AlphabetFull)

	var e Encoder
	if err := e.Init(&ft); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	hc, ok := e.Encode('a')
	if !ok {
		t.Fatalf("expected a code for 'a'")
	}
	if expect := MakeCode('a', 1, 0); hc != expect {
		t.Errorf("wrong code: expect %v %s, got %v %s", expect.Symbol, expect, hc.Symbol, hc)
	}
	if e.SymbolCount() != 1 || e.MinSize() != 1 || e.MaxSize() != 1 {
		t.Errorf("wrong shape: %d symbols, sizes %d .. %d", e.SymbolCount(), e.MinSize(), e.MaxSize())
	}
}

func TestEncoder_Empty(t *testing.T) {
	var ft FrequencyTable

	var e Encoder
	if err := e.Init(&ft); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if n := e.SymbolCount(); n != 0 {
		t.Errorf("expected 0 symbols, got %d", n)
	}
	if _, ok := e.Encode(0); ok {
		t.Errorf("expected no code for 0")
	}
}

func TestEncoder_TwoSymbols(t *testing.T) {
	var ft FrequencyTable
	ft['x'] = 1000
	ft['y'] = 1

	var e Encoder
	if err := e.Init(&ft); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	x, _ := e.Encode('x')
	y, _ := e.Encode('y')
	if x.String() != `"0"` || y.String() != `"1"` {
		t.Errorf("wrong codes: x=%s y=%s", x, y)
	}
}

// fibonacciFrequencies returns counts that make the Huffman tree a chain,
// so that the deepest leaf sits at depth n-1.
func fibonacciFrequencies(n int) FrequencyTable {
	var ft FrequencyTable
	a, b := uint64(1), uint64(1)
	for symbol := 0; symbol < n; symbol++ {
		ft[symbol] = a
		a, b = b, a+b
	}
	return ft
}

func TestEncoder_LengthLimit(t *testing.T) {
	ft := fibonacciFrequencies(20)

	var unlimited Encoder
	if err := unlimited.Init(&ft); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if size := unlimited.MaxSize(); size != 19 {
		t.Fatalf("expected unlimited MaxSize 19, got %d", size)
	}

	for _, limit := range []int{5, 8, 12, 18} {
		var e Encoder
		if _, err := e.init(&ft, limit); err != nil {
			t.Fatalf("init(%d) failed: %v", limit, err)
		}
		if int(e.MaxSize()) > limit {
			t.Errorf("limit %d: MaxSize is %d", limit, e.MaxSize())
		}
		if n := e.SymbolCount(); n != 20 {
			t.Errorf("limit %d: expected 20 symbols, got %d", limit, n)
		}

		// The halved tree is still a full binary tree, so the code is
		// complete: sum(2^-size) == 1.
		var kraft uint64
		for _, hc := range e.CodeTable() {
			kraft += uint64(1) << (MaxCodeSize - hc.Size)
		}
		if kraft != uint64(1)<<MaxCodeSize {
			t.Errorf("limit %d: code is not complete", limit)
		}
		if !e.CodeTable().IsCanonical() {
			t.Errorf("limit %d: table is not canonical", limit)
		}
	}
}
