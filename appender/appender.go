// Package appender copies a stream to a file, following the file across
// external rotation (delete, rename, replace).
package appender

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kjk/filewriter/filerotate"
)

// BufferSize is the most we read (and then write) in one go
const BufferSize = 8192

// Run appends everything read from r to file at path until r returns io.EOF.
// The file is only created once there is something to write.
func Run(r io.Reader, path string) error {
	f, err := filerotate.New(&filerotate.Config{Path: path})
	if err != nil {
		return err
	}
	return RunFile(r, f)
}

// RunFile is like Run but writes to already configured f. f is closed
// when r is exhausted. On error f is closed but the close error is dropped.
func RunFile(r io.Reader, f *filerotate.File) error {
	buf := make([]byte, BufferSize)
	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			// each chunk goes to one file, the rotation check is done
			// once per chunk inside Write
			if _, err := f.Write(buf[:n]); err != nil {
				_ = f.Close()
				return err
			}
		}
		if readErr == io.EOF {
			return f.Close()
		}
		if readErr != nil {
			_ = f.Close()
			return &ReadError{Err: unwrapOSError(readErr)}
		}
	}
}

// ReadError is returned when reading the input fails
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return "read: " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func unwrapOSError(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

// Message formats err the way perror() would: context label (the file path
// or "read") followed by the OS error description
func Message(err error) string {
	if err == nil {
		return ""
	}
	var fe *filerotate.Error
	if errors.As(err, &fe) {
		return fmt.Sprintf("%s: %s", fe.Path, fe.Err)
	}
	return err.Error()
}
