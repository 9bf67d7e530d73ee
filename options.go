package wordtally

import "strconv"

// Sort selects the order entries are emitted in after tallying.
type Sort int

const (
	// SortDesc orders entries by descending count (the default).
	SortDesc Sort = iota
	// SortAsc orders entries by ascending count.
	SortAsc
	// SortUnsorted leaves entries in map-iteration order.
	SortUnsorted
)

func (s Sort) String() string {
	switch s {
	case SortAsc:
		return "asc"
	case SortUnsorted:
		return "unsorted"
	default:
		return "desc"
	}
}

// Format selects the serialization used for output.
type Format int

const (
	// FormatText renders "word<field_delim>count<entry_delim>" lines.
	FormatText Format = iota
	// FormatJSON renders a single JSON array of [word, count] pairs.
	FormatJSON
	// FormatCSV renders a "word,count" header followed by one row per entry.
	FormatCSV
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	default:
		return "text"
	}
}

// IO selects which of the five strategies in strategy.go processes the input.
type IO int

const (
	// IOParallelStream buffers input and fans sub-chunks out to a worker pool (the default).
	IOParallelStream IO = iota
	// IOStream processes input sequentially with no concurrency.
	IOStream
	// IOParallelInMemory reads all input into an owned buffer before fanning out.
	IOParallelInMemory
	// IOParallelBytes processes a View.Bytes source without copying it.
	IOParallelBytes
	// IOParallelMmap processes a View.Mmap source without copying it.
	IOParallelMmap
)

func (io IO) String() string {
	switch io {
	case IOStream:
		return "stream"
	case IOParallelInMemory:
		return "parallel-in-memory"
	case IOParallelBytes:
		return "parallel-bytes"
	case IOParallelMmap:
		return "parallel-mmap"
	default:
		return "parallel-stream"
	}
}

// Threads selects the worker-pool size used by the parallel strategies.
type Threads struct {
	all   bool
	count int
}

// AllThreads uses the pool's default parallelism (GOMAXPROCS).
func AllThreads() Threads { return Threads{all: true} }

// ThreadCount pins the worker pool to exactly n goroutines.
func ThreadCount(n int) Threads { return Threads{count: n} }

func (t Threads) String() string {
	if t.all {
		return "all"
	}
	return strconv.Itoa(t.count)
}

// Serialization bundles the Format with the delimiters used by FormatText.
type Serialization struct {
	Format     Format
	FieldDelim string
	EntryDelim string
}

// DefaultSerialization is text output with a single space between word
// and count, one entry per line.
func DefaultSerialization() Serialization {
	return Serialization{Format: FormatText, FieldDelim: " ", EntryDelim: "\n"}
}

// Options is the immutable configuration consumed by a tally run. Build
// one with New and the With* functional options; the options are applied
// only while New builds the value, which is not changed after New returns.
type Options struct {
	Case          Case
	Sort          Sort
	Serialization Serialization
	Encoding      Encoding
	IO            IO
	Performance   Performance
	Filters       Filters
}

// Option mutates an in-progress Options during New.
type Option func(*Options)

// New builds an Options from defaults, environment overrides (applied
// first, so explicit Option values always win), and the given Option
// values, in order.
func New(opts ...Option) (*Options, error) {
	o := &Options{
		Case:          CaseOriginal,
		Sort:          SortDesc,
		Serialization: DefaultSerialization(),
		Encoding:      EncodingUnicode,
		IO:            IOParallelStream,
		Performance:   defaultPerformance(),
	}
	applyPerformanceEnv(&o.Performance)
	applyIOEnv(&o.IO)

	for _, opt := range opts {
		opt(o)
	}

	if err := o.Filters.compile(); err != nil {
		return nil, err
	}
	return o, nil
}

// WithCase sets the case-folding policy.
func WithCase(c Case) Option { return func(o *Options) { o.Case = c } }

// WithSort sets the result ordering.
func WithSort(s Sort) Option { return func(o *Options) { o.Sort = s } }

// WithSerialization sets the output format and delimiters.
func WithSerialization(s Serialization) Option { return func(o *Options) { o.Serialization = s } }

// WithEncoding sets the segmenter's word-boundary algorithm.
func WithEncoding(e Encoding) Option { return func(o *Options) { o.Encoding = e } }

// WithIO sets the processing strategy.
func WithIO(io IO) Option { return func(o *Options) { o.IO = io } }

// WithPerformance replaces the performance knobs wholesale.
func WithPerformance(p Performance) Option { return func(o *Options) { o.Performance = p } }

// WithThreads overrides only the worker-pool size, leaving the other
// performance knobs (chunk size, capacity ratios) at their defaults or
// environment-overridden values.
func WithThreads(t Threads) Option { return func(o *Options) { o.Performance.Threads = t } }

// WithFilters replaces the filter configuration wholesale.
func WithFilters(f Filters) Option { return func(o *Options) { o.Filters = f } }
