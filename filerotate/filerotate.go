package filerotate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// DefaultPerm is the mode used when creating the file, before umask
const DefaultPerm os.FileMode = 0666

type Config struct {
	// Path of the file we append to
	Path string
	// Perm is used when the file has to be created. 0 means DefaultPerm
	Perm os.FileMode

	// DidOpen is called after the file was opened (or created)
	DidOpen func(path string, id Identity)
	// DidClose is called after the file was closed. didRotate is true
	// if we closed because the file at Path is no longer the one we had open
	DidClose func(path string, didRotate bool, written int64)
}

// File appends to a file at a fixed path. If the file at that path gets
// deleted, renamed away or replaced, the next Write closes the stale
// handle and opens (creates) the file again.
type File struct {
	sync.Mutex

	// Path is the path of the file
	Path string

	config Config
	file   *os.File
	id     Identity

	// bytes written to the current handle
	written int64
}

// Error records the operation and path of a failed file operation
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError strips os wrappers so that Err is the bare OS error
func newError(op string, path string, err error) *Error {
	var pe *os.PathError
	var se *os.SyscallError
	if errors.As(err, &pe) {
		err = pe.Err
	} else if errors.As(err, &se) {
		err = se.Err
	}
	return &Error{Op: op, Path: path, Err: err}
}

// New doesn't touch the file system. The file is opened on first Write
func New(config *Config) (*File, error) {
	if nil == config {
		return nil, fmt.Errorf("must provide config")
	}
	if config.Path == "" {
		return nil, fmt.Errorf("must provide config.Path")
	}
	f := &File{
		Path:   config.Path,
		config: *config,
	}
	if f.config.Perm == 0 {
		f.config.Perm = DefaultPerm
	}
	return f, nil
}

// ShouldReopen decides if a handle with identity cur must be discarded,
// given the result of probing the path. A failed probe means the file is
// gone (or we can't see it), which we treat as rotation.
func ShouldReopen(cur Identity, probed Identity, probeErr error) bool {
	if probeErr != nil {
		return true
	}
	return cur != probed
}

// IsOpen returns true if we currently hold a handle
func (f *File) IsOpen() bool {
	f.Lock()
	defer f.Unlock()
	return f.file != nil
}

// Identity returns identity of the open handle. ok is false if not open
func (f *File) Identity() (id Identity, ok bool) {
	f.Lock()
	defer f.Unlock()
	return f.id, f.file != nil
}

func (f *File) close(didRotate bool) error {
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	written := f.written
	f.written = 0
	f.id = Identity{}
	if err != nil {
		return newError("close", f.Path, err)
	}
	if f.config.DidClose != nil {
		f.config.DidClose(f.Path, didRotate, written)
	}
	return nil
}

func (f *File) open() error {
	file, err := os.OpenFile(f.Path, openFlags, f.config.Perm)
	if err != nil {
		return newError("open", f.Path, err)
	}
	id, err := fstatIdentity(file)
	if err != nil {
		_ = file.Close()
		return newError("fstat", f.Path, err)
	}
	f.file = file
	f.id = id
	f.written = 0
	if f.config.DidOpen != nil {
		f.config.DidOpen(f.Path, id)
	}
	return nil
}

func (f *File) reopenIfNeeded() error {
	if f.file != nil {
		probed, err := statIdentity(f.Path)
		if !ShouldReopen(f.id, probed, err) {
			return nil
		}
		if err := f.close(true); err != nil {
			return err
		}
	}
	return f.open()
}

// writeFull writes all of d, looping over short writes
func writeFull(w io.Writer, d []byte) (int, error) {
	n := 0
	for n < len(d) {
		nw, err := w.Write(d[n:])
		n += nw
		if err != nil {
			return n, err
		}
		if nw == 0 {
			return n, io.ErrShortWrite
		}
	}
	return n, nil
}

// Write appends d to the file, reopening it first if it was rotated away.
// All of d goes to a single file.
func (f *File) Write(d []byte) (int, error) {
	f.Lock()
	defer f.Unlock()

	if err := f.reopenIfNeeded(); err != nil {
		return 0, err
	}
	n, err := writeFull(f.file, d)
	f.written += int64(n)
	if err != nil {
		return n, newError("write", f.Path, err)
	}
	return n, nil
}

// Close closes the file. It's ok to call it multiple times
func (f *File) Close() error {
	f.Lock()
	defer f.Unlock()

	return f.close(false)
}
