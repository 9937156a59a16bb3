package huffzip

import (
	"fmt"
	"io"
	"strings"
)

// TraceFlags selects which intermediate structures are dumped while
// compressing or decompressing.
type TraceFlags uint8

const (
	// TraceFrequencies dumps the FrequencyTable of the input.
	TraceFrequencies TraceFlags = 1 << iota

	// TraceTree dumps the Huffman tree.
	TraceTree

	// TraceCodes dumps the canonical CodeTable.
	TraceCodes

	// TraceAll enables every category.
	TraceAll = TraceFrequencies | TraceTree | TraceCodes
)

var traceNames = [...]struct {
	flag TraceFlags
	name string
}{
	{TraceFrequencies, "freq"},
	{TraceTree, "tree"},
	{TraceCodes, "code"},
}

// ParseTraceFlags parses a comma-separated list of trace categories:
// "freq", "tree", "code", or "all".  The empty string means no tracing.
func ParseTraceFlags(str string) (TraceFlags, error) {
	var flags TraceFlags
	if str == "" {
		return flags, nil
	}
	for _, name := range strings.Split(str, ",") {
		name = strings.TrimSpace(name)
		if name == "all" {
			flags |= TraceAll
			continue
		}
		found := false
		for _, row := range traceNames {
			if row.name == name {
				flags |= row.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("huffzip: unknown trace category %q", name)
		}
	}
	return flags, nil
}

// String returns the flags in the form accepted by ParseTraceFlags.
func (flags TraceFlags) String() string {
	var names []string
	for _, row := range traceNames {
		if flags&row.flag != 0 {
			names = append(names, row.name)
		}
	}
	return strings.Join(names, ",")
}

// Set adds the categories listed in str, so that *TraceFlags can be used
// with flag.Var.
func (flags *TraceFlags) Set(str string) error {
	parsed, err := ParseTraceFlags(str)
	if err != nil {
		return err
	}
	*flags |= parsed
	return nil
}

// tracer routes dumps to the configured writer.  Write errors are ignored:
// tracing never changes the outcome of an operation.
type tracer struct {
	flags TraceFlags
	w     io.Writer
}

func newTracer(opts *Options) tracer {
	if opts.TraceWriter == nil {
		return tracer{}
	}
	return tracer{flags: opts.Trace, w: opts.TraceWriter}
}

func (tr tracer) frequencies(ft *FrequencyTable) {
	if tr.flags&TraceFrequencies != 0 {
		_, _ = ft.Dump(tr.w)
	}
}

func (tr tracer) tree(t *tree) {
	if tr.flags&TraceTree != 0 && t != nil {
		_, _ = t.Dump(tr.w)
	}
}

func (tr tracer) codes(table CodeTable) {
	if tr.flags&TraceCodes != 0 {
		_, _ = table.Dump(tr.w)
	}
}
