package fastfile

import (
	"bytes"
	"os"
)

// Request describes a file to read. It is built with Read and the With*
// options and turned into a Reader by Open or OpenWithStrategy.
type Request struct {
	path        string
	size        uint64
	sizeHint    uint64
	hasSize     bool
	hasSizeHint bool
}

// Read starts a request for the file at path.
func Read(path string) *Request {
	return &Request{path: path}
}

// WithSize sets the exact file size, skipping the stat call. The Reader
// trusts this value for buffer sizing and hint selection.
func (r *Request) WithSize(size uint64) *Request {
	r.size = size
	r.hasSize = true
	return r
}

// WithSizeHint sets an approximate file size. An explicit size set by
// WithSize takes precedence.
func (r *Request) WithSizeHint(hint uint64) *Request {
	r.sizeHint = hint
	r.hasSizeHint = true
	return r
}

// Open opens the file with the default strategy.
func (r *Request) Open() (*Reader, error) {
	return r.OpenWithStrategy(NewDefaultStrategy())
}

// OpenWithStrategy opens the file and hands it to s. The file is closed
// if s fails.
func (r *Request) OpenWithStrategy(s Strategy) (*Reader, error) {
	req, err := r.open()
	if err != nil {
		return nil, err
	}

	reader, err := s.Reader(req)
	if err != nil {
		_ = req.file.Close()
		return nil, err
	}
	return reader, nil
}

func (r *Request) open() (*OpenedRequest, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, FileOpFailed("open", err)
	}

	return &OpenedRequest{
		file:        f,
		path:        r.path,
		size:        r.size,
		sizeHint:    r.sizeHint,
		hasSize:     r.hasSize,
		hasSizeHint: r.hasSizeHint,
	}, nil
}

// OpenedRequest is a request whose file has been opened successfully. It
// exists only as the argument of Strategy.Reader; a Reader built from it
// takes ownership of the file.
type OpenedRequest struct {
	file        *os.File
	path        string
	size        uint64
	sizeHint    uint64
	hasSize     bool
	hasSizeHint bool
}

// File returns the opened file.
func (r *OpenedRequest) File() *os.File { return r.file }

// Path returns the path the file was opened from.
func (r *OpenedRequest) Path() string { return r.path }

// Size returns the explicit size, if one was set.
func (r *OpenedRequest) Size() (uint64, bool) { return r.size, r.hasSize }

// SizeHint returns the size hint, if one was set.
func (r *OpenedRequest) SizeHint() (uint64, bool) { return r.sizeHint, r.hasSizeHint }

// Open opens the file at path with the default strategy.
func Open(path string) (*Reader, error) {
	return Read(path).Open()
}

// ReadFile reads the whole file at path with the default strategy and
// returns a copy of its contents.
func ReadFile(path string) ([]byte, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	data, err := r.ReadToEnd()
	if err != nil {
		return nil, err
	}
	return bytes.Clone(data), nil
}
