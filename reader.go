package wordtally

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"sync"
)

// Metadata is the capability both Reader and View expose: path()
// returns the source file path when known, size() the byte length when
// known ahead of time.
type Metadata interface {
	Path() (string, bool)
	Size() (int, bool)
}

// Reader is a buffered, sequentially-read input source: stdin, or an
// opened file. Access to the underlying buffered reader is mediated by
// WithBufferedRead because the reader holds file position — concurrent
// callers must be serialized.
type Reader struct {
	mu       sync.Mutex
	br       *bufio.Reader
	closer   io.Closer
	path     string // "" for stdin
	size     int    // -1 when unknown (stdin)
	poisoned bool
}

// utf8BOM is the three-byte UTF-8 byte-order mark. Readers skip a
// leading one so it never shows up as a spurious word fragment.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// skipUTF8BOM discards a leading UTF-8 BOM from br, if present. It
// never errors: a short read (fewer than 3 bytes total) just means
// there is no BOM to skip.
func skipUTF8BOM(br *bufio.Reader) {
	peek, err := br.Peek(len(utf8BOM))
	if err != nil {
		return
	}
	if bytes.Equal(peek, utf8BOM) {
		br.Discard(len(utf8BOM))
	}
}

// NewStdinReader wraps os.Stdin as a Reader with unknown size.
func NewStdinReader() *Reader {
	br := bufio.NewReaderSize(os.Stdin, defaultChunkSize)
	skipUTF8BOM(br)
	return &Reader{br: br, size: -1}
}

// NewFileReader opens path for buffered sequential reading. path must
// not be "-"; use NewStdinReader for stdin.
func NewFileReader(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &TallyError{Kind: KindIO, Path: path, Err: err}
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &TallyError{Kind: KindIO, Path: path, Err: err}
	}
	br := bufio.NewReaderSize(f, defaultChunkSize)
	skipUTF8BOM(br)
	return &Reader{
		br:     br,
		closer: f,
		path:   path,
		size:   int(info.Size()),
	}, nil
}

// Path implements Metadata: "" for stdin.
func (r *Reader) Path() (string, bool) {
	if r.path == "" {
		return "", false
	}
	return r.path, true
}

// Size implements Metadata: unknown for stdin.
func (r *Reader) Size() (int, bool) {
	if r.size < 0 {
		return 0, false
	}
	return r.size, true
}

// WithBufferedRead grants f temporary exclusive access to the
// underlying *bufio.Reader. If a previous call panicked while holding
// the lock, subsequent calls fail immediately with KindMutexPoisoned,
// mirroring a poisoned mutex: the reader's internal position can no
// longer be trusted.
func (r *Reader) WithBufferedRead(f func(*bufio.Reader) error) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.poisoned {
		return &TallyError{Kind: KindMutexPoisoned, Err: ErrMutexPoisoned}
	}

	defer func() {
		if p := recover(); p != nil {
			r.poisoned = true
			err = &TallyError{Kind: KindMutexPoisoned, Err: ErrMutexPoisoned}
		}
	}()

	return f(r.br)
}

// Close releases the underlying file handle, if any. It is a no-op for stdin.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
