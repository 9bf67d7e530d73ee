//go:build !windows

package wordtally

import (
	"os"

	"golang.org/x/sys/unix"
)

// View is a directly addressable input source: it dereferences to a
// []byte of fixed, known length in O(1), unlike Reader which only
// grants sequential access. Two concrete kinds exist: a memory-mapped
// file and an owned in-memory buffer.
type View struct {
	data []byte
	path string // set only for the mmap kind; empty for owned bytes
	mmap bool
}

// NewBytesView wraps an owned byte slice as a View with no path, used
// by the ParallelBytes strategy.
func NewBytesView(data []byte) *View {
	return &View{data: data}
}

// NewMmapView memory-maps path read-only and returns a View over it.
// It fails with KindStdinInvalid if path is "-", and with KindIO if the
// file cannot be opened or mapped.
func NewMmapView(path string) (*View, error) {
	if path == "-" {
		return nil, &TallyError{Kind: KindStdinInvalid, Path: path}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &TallyError{Kind: KindIO, Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &TallyError{Kind: KindIO, Path: path, Err: err}
	}
	size := int(info.Size())
	if size == 0 {
		return &View{path: path, mmap: true}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, &TallyError{Kind: KindIO, Path: path, Err: err}
	}
	return &View{data: data, path: path, mmap: true}, nil
}

// Bytes returns the View's backing slice.
func (v *View) Bytes() []byte { return v.data }

// Len returns the View's length in bytes.
func (v *View) Len() int { return len(v.data) }

// Path implements Metadata: set only for a memory-mapped View.
func (v *View) Path() (string, bool) {
	if v.path == "" {
		return "", false
	}
	return v.path, true
}

// Size implements Metadata: a View's size is always known.
func (v *View) Size() (int, bool) { return len(v.data), true }

// IsMmap reports whether this View is backed by a memory mapping, as
// opposed to an owned buffer.
func (v *View) IsMmap() bool { return v.mmap }

// Close unmaps the underlying memory mapping. It is a no-op for an
// owned-bytes View.
func (v *View) Close() error {
	if !v.mmap || v.data == nil {
		return nil
	}
	data := v.data
	v.data = nil
	return unix.Munmap(data)
}
