package wordtally

// Input is the union of Reader and View sources: every strategy accepts
// one, and rejects it with a typed error when its access pattern
// (streaming vs. direct addressing) doesn't apply.
type Input struct {
	reader *Reader
	view   *View
}

// FromStdin wraps stdin as a streaming Input of unknown size.
func FromStdin() *Input {
	return &Input{reader: NewStdinReader()}
}

// FromFile opens path for streaming, buffered access.
func FromFile(path string) (*Input, error) {
	r, err := NewFileReader(path)
	if err != nil {
		return nil, err
	}
	return &Input{reader: r}, nil
}

// FromBytes wraps an owned byte slice as a directly-addressable Input,
// for the ParallelBytes strategy.
func FromBytes(data []byte) *Input {
	return &Input{view: NewBytesView(data)}
}

// FromMmap memory-maps path as a directly-addressable Input, for the
// ParallelMmap strategy.
func FromMmap(path string) (*Input, error) {
	v, err := NewMmapView(path)
	if err != nil {
		return nil, err
	}
	return &Input{view: v}, nil
}

// IsView reports whether this Input is a View (directly addressable)
// rather than a Reader (streaming only).
func (in *Input) IsView() bool { return in.view != nil }

// AsView returns the underlying View and true, or (nil, false) if this
// Input wraps a Reader instead.
func (in *Input) AsView() (*View, bool) {
	if in.view == nil {
		return nil, false
	}
	return in.view, true
}

// AsReader returns the underlying Reader and true, or (nil, false) if
// this Input wraps a View instead.
func (in *Input) AsReader() (*Reader, bool) {
	if in.reader == nil {
		return nil, false
	}
	return in.reader, true
}

// Path returns the source file path, if known.
func (in *Input) Path() (string, bool) {
	if in.view != nil {
		return in.view.Path()
	}
	return in.reader.Path()
}

// Size returns the source size in bytes, if known ahead of time.
func (in *Input) Size() (int, bool) {
	if in.view != nil {
		return in.view.Size()
	}
	return in.reader.Size()
}

// Close releases any resources (file handle or memory mapping) held by
// this Input.
func (in *Input) Close() error {
	if in.view != nil {
		return in.view.Close()
	}
	if in.reader != nil {
		return in.reader.Close()
	}
	return nil
}
