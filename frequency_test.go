package huffzip

import (
	"errors"
	"strings"
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	ft, err := CountFrequencies([]byte("hello"), AlphabetFull)
	if err != nil {
		t.Fatalf("CountFrequencies failed: %v", err)
	}

	expect := map[Symbol]uint64{'h': 1, 'e': 1, 'l': 2, 'o': 1}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if actual := ft.Count(Symbol(symbol)); actual != expect[Symbol(symbol)] {
			t.Errorf("Count(%s): expected %d, got %d", Symbol(symbol), expect[Symbol(symbol)], actual)
		}
	}
	if n := ft.SymbolCount(); n != 4 {
		t.Errorf("SymbolCount: expected 4, got %d", n)
	}
	if n := ft.Total(); n != 5 {
		t.Errorf("Total: expected 5, got %d", n)
	}
}

func TestCountFrequencies_Empty(t *testing.T) {
	ft, err := CountFrequencies(nil, AlphabetFull)
	if err != nil {
		t.Fatalf("CountFrequencies failed: %v", err)
	}
	if n := ft.SymbolCount(); n != 0 {
		t.Errorf("SymbolCount: expected 0, got %d", n)
	}
}

func TestCountFrequencies_ASCII(t *testing.T) {
	if _, err := CountFrequencies([]byte("plain\x7f"), AlphabetASCII); err != nil {
		t.Errorf("unexpected error for 7-bit input: %v", err)
	}
	_, err := CountFrequencies([]byte("caf\xc3\xa9"), AlphabetASCII)
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestFrequencyTable_Halve(t *testing.T) {
	var ft FrequencyTable
	ft['a'] = 1
	ft['b'] = 2
	ft['c'] = 7
	ft.halve()
	if ft['a'] != 1 || ft['b'] != 1 || ft['c'] != 4 || ft['d'] != 0 {
		t.Errorf("wrong counts after halve: a=%d b=%d c=%d d=%d", ft['a'], ft['b'], ft['c'], ft['d'])
	}
}

func TestFrequencyTable_Dump(t *testing.T) {
	ft, _ := CountFrequencies([]byte("hello\n"), AlphabetFull)

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\tSymbolCount() = 5\n",
		"\tTotal() = 6\n",
		"\tCount('\\n') = 1\n",
		"\tCount('e') = 1\n",
		"\tCount('h') = 1\n",
		"\tCount('l') = 2\n",
		"\tCount('o') = 1\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ft.Dump(&buf)
	if actual := buf.String(); actual != expectDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actual)
	}
}
