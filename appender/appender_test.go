package appender

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/kjk/filewriter/filerotate"
	"github.com/kjk/filewriter/require"
)



func randomBytes(n int) []byte {
	rnd := rand.New(rand.NewSource(int64(n)))
	d := make([]byte, n)
	rnd.Read(d)
	return d
}

func TestRoundTrip(t *testing.T) {
	sizes := []int{1, 7, BufferSize - 1, BufferSize, BufferSize + 1, 3*BufferSize + 17, 1 << 20}
	for _, n := range sizes {
		path := filepath.Join(t.TempDir(), "out.bin")
		d := randomBytes(n)
		err := Run(bytes.NewReader(d), path)
		require.NoError(t, err, "size %d", n)
		require.FileContent(t, path, d)
	}
}

func TestEmptyInputDoesNotCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	err := Run(bytes.NewReader(nil), path)
	require.NoError(t, err)
	require.FileNotExists(t, path)
}

func TestAppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("before\n"), 0644))
	err := Run(strings.NewReader("after\n"), path)
	require.NoError(t, err)
	require.FileContent(t, path, []byte("before\nafter\n"))
}

// chunkReader returns chunks one per Read and calls beforeRead

// before every Read after the first

type chunkReader struct {
	chunks     [][]byte
	reads      int
	beforeRead func(i int)
	err        error
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if r.reads > 0 && r.beforeRead != nil {
		r.beforeRead(r.reads)
	}
	r.reads++
	if len(r.chunks) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	r.chunks = r.chunks[1:]
	return n, nil
}

func TestZeroByteReadIsNotEOF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	r := &chunkReader{
		chunks: [][]byte{[]byte("x"), {}, []byte("y")},
	}
	err := Run(r, path)
	require.NoError(t, err)
	require.FileContent(t, path, []byte("xy"))
}

func TestReadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	r := &chunkReader{
		chunks: [][]byte{[]byte("kept")},
		err:    syscall.EIO,
	}
	f, err := filerotate.New(&filerotate.Config{Path: path})
	require.NoError(t, err)
	err = RunFile(r, f)
	var re *ReadError
	require.True(t, errors.As(err, &re))
	require.True(t, errors.Is(err, syscall.EIO))
	require.Equal(t, "read: "+syscall.EIO.Error(), Message(err))
	// data read before the error was written and the file closed
	require.False(t, f.IsOpen())
	require.FileContent(t, path, []byte("kept"))
}

func TestOpenErrorMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")
	err := Run(strings.NewReader("x"), path)
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
	var fe *filerotate.Error
	require.True(t, errors.As(err, &fe))
	require.Equal(t, path+": "+fe.Err.Error(), Message(err))
	require.False(t, strings.Contains(Message(err), "open "), Message(err))
}
