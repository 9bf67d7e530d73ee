package wordtally

import (
	"bufio"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Tally is the result of running a strategy, filtering, and sorting: a
// finalized, ordered sequence of entries plus the Options that produced
// it, kept around so the verbose report (package report) can describe
// the run.
type Tally struct {
	Entries Entries
	Options *Options
}

// Run dispatches to the strategy named by opts.IO, applies opts.Filters,
// and sorts the result per opts.Sort.
func Run(in *Input, opts *Options) (*Tally, error) {
	m, err := dispatch(in, opts)
	if err != nil {
		return nil, err
	}
	opts.Filters.apply(m, opts.Case)
	return &Tally{Entries: finalize(m, opts.Sort), Options: opts}, nil
}

func dispatch(in *Input, opts *Options) (*TallyMap, error) {
	switch opts.IO {
	case IOStream:
		return streamStrategy(in, opts, false)
	case IOParallelStream:
		return streamStrategy(in, opts, true)
	case IOParallelInMemory:
		return parallelInMemory(in, opts)
	case IOParallelBytes:
		view, ok := in.AsView()
		if !ok {
			return nil, &TallyError{Kind: KindBytesInputRequired, Err: ErrBytesInputRequired}
		}
		return parallelView(view, opts)
	case IOParallelMmap:
		view, ok := in.AsView()
		if !ok {
			return nil, &TallyError{Kind: KindMmapStdin, Err: ErrMmapRequiresFile}
		}
		return parallelView(view, opts)
	default:
		return streamStrategy(in, opts, true)
	}
}

func workerCount(opts *Options) int {
	n := opts.Performance.Threads.resolve()
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n < 1 {
		n = 1
	}
	return n
}

// sizeHint resolves the -1-for-unknown convention Capacity uses from an
// Input's (int, bool) Metadata pair.
func sizeHint(in *Input) int {
	if size, ok := in.Size(); ok {
		return size
	}
	return -1
}

// --- Stream / ParallelStream -----------------------------------------

// streamStrategy implements both Stream and ParallelStream: it repeatedly
// fills a buffer, cuts at the last whitespace boundary, validates UTF-8
// with residue carryover, and either tallies the cut region directly
// (sequential) or partitions it into sub-chunks processed on a worker
// pool before merging (parallel).
func streamStrategy(in *Input, opts *Options, parallel bool) (*TallyMap, error) {
	reader, ok := in.AsReader()
	if !ok {
		// A View can still be driven sequentially; it is already fully
		// addressable so there is no streaming to do.
		view, _ := in.AsView()
		return tallyWhole(stripUTF8BOM(view.Bytes()), opts, parallel)
	}

	batchSize := opts.Performance.ChunkSize
	if batchSize <= 0 {
		batchSize = defaultChunkSize
	}

	acc := NewTallyMap(opts.Performance.Capacity(sizeHint(in)))
	var carry []byte

	for {
		buf := make([]byte, batchSize)
		var n int
		var readErr error
		werr := reader.WithBufferedRead(func(br *bufio.Reader) error {
			n, readErr = io.ReadFull(br, buf)
			return nil
		})
		if werr != nil {
			return nil, werr
		}
		atEOF := readErr == io.ErrUnexpectedEOF || readErr == io.EOF

		data := append(carry, buf[:n]...)
		carry = nil

		valid, residue, err := validPrefix(data)
		if err != nil {
			return nil, err
		}
		if atEOF {
			if err := validateStrict(residue); err != nil {
				return nil, err
			}
			valid = append(valid, residue...)
			residue = nil
		}

		cut := len(valid)
		if !atEOF {
			cut = lastBoundaryAtOrBefore(valid, len(valid))
		}
		process := valid[:cut]
		leftover := append([]byte{}, valid[cut:]...)

		if len(process) > 0 {
			if parallel {
				if err := tallyChunksParallel(acc, process, opts); err != nil {
					return nil, err
				}
			} else if err := acc.AddWords(string(process), opts.Case, opts.Encoding); err != nil {
				return nil, err
			}
		}

		carry = append(leftover, residue...)

		if atEOF {
			if len(carry) > 0 {
				if err := acc.AddWords(string(carry), opts.Case, opts.Encoding); err != nil {
					return nil, err
				}
			}
			return acc, nil
		}
	}
}

// tallyChunksParallel partitions process on whitespace boundaries at
// least ChunkSize/workers bytes apart and fans them out to a worker pool,
// merging each chunk's TallyMap into acc.
func tallyChunksParallel(acc *TallyMap, process []byte, opts *Options) error {
	workers := workerCount(opts)
	minDistance := opts.Performance.ChunkSize / workers
	cuts := streamedCuts(process, minDistance, true)

	bounds := append([]int{0}, cuts...)
	ranges := chunkRanges(bounds)
	if len(ranges) == 0 {
		return nil
	}

	results := make([]*TallyMap, len(ranges))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, r := range ranges {
		i, r := i, r
		g.Go(func() error {
			m := NewTallyMap(opts.Performance.ChunkCapacity(r[1] - r[0]))
			if err := m.AddWords(string(process[r[0]:r[1]]), opts.Case, opts.Encoding); err != nil {
				return err
			}
			results[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	acc.Merge(mergeShards(results))
	return nil
}

// --- ParallelInMemory ---------------------------------------------------

func parallelInMemory(in *Input, opts *Options) (*TallyMap, error) {
	reader, ok := in.AsReader()
	if !ok {
		view, _ := in.AsView()
		return parallelView(view, opts)
	}

	var data []byte
	if err := reader.WithBufferedRead(func(br *bufio.Reader) error {
		buf, err := io.ReadAll(br)
		data = buf
		return err
	}); err != nil {
		return nil, err
	}
	data = stripUTF8BOM(data)

	if _, residue, err := validPrefix(data); err != nil {
		return nil, err
	} else if err := validateStrict(residue); err != nil {
		return nil, err
	}
	return tallyWhole(data, opts, true)
}

// --- ParallelBytes / ParallelMmap ---------------------------------------

func parallelView(view *View, opts *Options) (*TallyMap, error) {
	data := stripUTF8BOM(view.Bytes())
	if _, residue, err := validPrefix(data); err != nil {
		return nil, err
	} else if err := validateStrict(residue); err != nil {
		return nil, err
	}
	return tallyWhole(data, opts, true)
}

// tallyWhole partitions data with fixed-count chunking and tallies it,
// sequentially or across a worker pool.
func tallyWhole(data []byte, opts *Options, parallel bool) (*TallyMap, error) {
	if !parallel {
		m := NewTallyMap(opts.Performance.Capacity(len(data)))
		if err := m.AddWords(string(data), opts.Case, opts.Encoding); err != nil {
			return nil, err
		}
		return m, nil
	}

	chunks, err := totalChunks(len(data), opts.Performance.ChunkSize)
	if err != nil {
		return nil, err
	}
	if chunks < 1 {
		chunks = 1
	}
	bounds := fixedCountBoundaries(data, chunks)
	ranges := chunkRanges(bounds)
	if len(ranges) == 0 {
		return NewTallyMap(0), nil
	}

	workers := workerCount(opts)
	results := make([]*TallyMap, len(ranges))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, r := range ranges {
		i, r := i, r
		g.Go(func() error {
			m := NewTallyMap(opts.Performance.ChunkCapacity(r[1] - r[0]))
			if err := m.AddWords(string(data[r[0]:r[1]]), opts.Case, opts.Encoding); err != nil {
				return err
			}
			results[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return mergeShards(results), nil
}
