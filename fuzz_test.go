package huffzip

import (
	"bytes"
	"errors"
	"testing"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("a"))
	f.Add([]byte("aaaa"))
	f.Add([]byte("hello"))
	f.Add([]byte("null\x00byte"))
	f.Add([]byte("\xff\xfe\xfd\x00\x01"))
	f.Add([]byte("abcdefghijklmnopqrstuvwxyz"))

	f.Fuzz(func(t *testing.T, input []byte) {
		compressed, err := CompressBytes(input)
		if err != nil {
			t.Fatalf("CompressBytes failed: %v", err)
		}
		decoded, err := DecompressBytes(compressed)
		if err != nil {
			t.Fatalf("DecompressBytes failed: %v", err)
		}
		if !bytes.Equal(input, decoded) {
			t.Errorf("round trip mismatch:\n\texpect: %q\n\tactual: %q", input, decoded)
		}

		var streamed bytes.Buffer
		if err := Decompress(&streamed, &stallingReader{data: compressed}, nil); err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if !bytes.Equal(input, streamed.Bytes()) {
			t.Errorf("stalling reader mismatch:\n\texpect: %q\n\tactual: %q", input, streamed.Bytes())
		}
	})
}

// FuzzDecompress feeds arbitrary bytes to the decoder, which must either
// succeed or fail with one of the documented errors, and never panic.
func FuzzDecompress(f *testing.F) {
	for _, input := range []string{"", "aaaa", "hello", "abracadabra"} {
		raw, _ := CompressBytes([]byte(input))
		f.Add(raw)
	}
	f.Add([]byte{0, 0, 0, 9, 3, 'a', 1, 'b', 2})

	f.Fuzz(func(t *testing.T, raw []byte) {
		out, err := DecompressBytes(raw)
		if err == nil {
			return
		}
		if out != nil {
			t.Errorf("expected no output alongside error %v", err)
		}
		if !errors.Is(err, ErrMalformedHeader) && !errors.Is(err, ErrMalformedPayload) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
