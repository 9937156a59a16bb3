// Command huffzip compresses or decompresses one file with canonical
// Huffman coding.
//
// Usage:
//
//     huffzip [-d] [-ascii] [-trace freq,tree,code] [-dfreq] [-dtree] [-dcode] [input] [output]
//
// The input defaults to stdin.  If an input file is named but no output is,
// compression writes input+".huff" and decompression of "x.huff" writes "x";
// otherwise the output defaults to stdout.  Traces go to stderr.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chronos-tachyon/huffzip"
)

const suffix = ".huff"

var errNoOutputName = errors.New("cannot derive an output name")

type config struct {
	decompress bool
	opts       huffzip.Options
	input      string
	output     string
}

func parseArgs(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("huffzip", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: huffzip [options] [input] [output]\n")
		fmt.Fprintf(fs.Output(), "Compress input to output using canonical Huffman coding.\n\n")
		fs.PrintDefaults()
	}

	var (
		cfg   config
		ascii bool
		dfreq bool
		dtree bool
		dcode bool
	)
	fs.BoolVar(&cfg.decompress, "d", false, "decompress instead of compressing")
	fs.BoolVar(&ascii, "ascii", false, "accept only 7-bit ASCII input")
	fs.Var(&cfg.opts.Trace, "trace", "comma-separated trace categories: freq, tree, code, all")
	fs.BoolVar(&dfreq, "dfreq", false, "print the frequency table to stderr")
	fs.BoolVar(&dtree, "dtree", false, "print the Huffman tree to stderr")
	fs.BoolVar(&dcode, "dcode", false, "print the code table to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 2 {
		fs.Usage()
		return nil, fmt.Errorf("expected at most 2 arguments, got %d", fs.NArg())
	}

	if ascii {
		cfg.opts.Alphabet = huffzip.AlphabetASCII
	}
	if dfreq {
		cfg.opts.Trace |= huffzip.TraceFrequencies
	}
	if dtree {
		cfg.opts.Trace |= huffzip.TraceTree
	}
	if dcode {
		cfg.opts.Trace |= huffzip.TraceCodes
	}
	if cfg.opts.Trace != 0 {
		cfg.opts.TraceWriter = stderr
	}

	cfg.input = fs.Arg(0)
	cfg.output = fs.Arg(1)
	if cfg.input == "-" {
		cfg.input = ""
	}
	if cfg.output == "" && cfg.input != "" {
		out, err := outputPath(cfg.input, cfg.decompress)
		if err != nil {
			return nil, err
		}
		cfg.output = out
	}
	if cfg.output == "-" {
		cfg.output = ""
	}
	return &cfg, nil
}

// outputPath derives the output file name from the input file name.
func outputPath(input string, decompress bool) (string, error) {
	if !decompress {
		return input + suffix, nil
	}
	if !strings.HasSuffix(input, suffix) || len(input) == len(suffix) {
		return "", fmt.Errorf("%w: %q does not end in %q", errNoOutputName, input, suffix)
	}
	return strings.TrimSuffix(input, suffix), nil
}

func run(cfg *config, stdin io.Reader, stdout io.Writer) error {
	var (
		in  []byte
		err error
	)
	if cfg.input == "" {
		in, err = io.ReadAll(stdin)
	} else {
		in, err = os.ReadFile(cfg.input)
	}
	if err != nil {
		return err
	}

	if cfg.output == "" {
		return process(cfg, stdout, in)
	}
	return writeAtomic(cfg.output, func(w io.Writer) error {
		return process(cfg, w, in)
	})
}

func process(cfg *config, w io.Writer, in []byte) error {
	if cfg.decompress {
		return huffzip.Decompress(w, bytes.NewReader(in), &cfg.opts)
	}
	return huffzip.Compress(w, in, &cfg.opts)
}

// writeAtomic writes a sibling temporary file and renames it over path, so
// that a failure leaves no partial output behind.
func writeAtomic(path string, fn func(io.Writer) error) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".tmp*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = fn(f); err != nil {
		return err
	}
	if err = f.Chmod(0o644); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffzip: ")

	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
