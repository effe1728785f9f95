package require

import (
	"os"
	"testing"

	"github.com/alecthomas/assert"
)

// thin layer over github.com/alecthomas/assert (which already fails
// the test) plus helpers for checking files on disk

// Equal asserts that two objects are equal.
//
//    require.Equal(t, 123, 123)
func Equal(t testing.TB, expected interface{}, actual interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, expected, actual, msgAndArgs...)
}

// NotEqual asserts that the specified values are NOT equal.
func NotEqual(t testing.TB, expected interface{}, actual interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	assert.NotEqual(t, expected, actual, msgAndArgs...)
}

// NoError asserts that a function returned no error (i.e. `nil`).
func NoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	assert.NoError(t, err, msgAndArgs...)
}

// Error asserts that a function returned an error
func Error(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Error(t, err, msgAndArgs...)
}

func True(t testing.TB, value bool, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, value, msgAndArgs...)
}

func False(t testing.TB, value bool, msgAndArgs ...interface{}) {
	t.Helper()
	assert.False(t, value, msgAndArgs...)
}

// FileContent asserts that file at path exists and has content exp
func FileContent(t testing.TB, path string, exp []byte) {
	t.Helper()
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("os.ReadFile('%s') failed with '%s'", path, err)
	}
	if string(d) != string(exp) {
		t.Fatalf("path: '%s', expected %d bytes, got %d bytes with different content", path, len(exp), len(d))
	}
}

// FileNotExists asserts that there's nothing at path
func FileNotExists(t testing.TB, path string) {
	t.Helper()
	_, err := os.Lstat(path)
	if err == nil {
		t.Fatalf("file '%s' exist, expected to not exist", path)
	}
}
