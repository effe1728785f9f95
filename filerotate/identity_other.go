//go:build !unix && !windows

package filerotate

import (
	"errors"
	"os"
)

const openFlags = os.O_CREATE | os.O_WRONLY | os.O_APPEND

func statIdentity(path string) (Identity, error) {
	return Identity{}, errors.ErrUnsupported
}

func fstatIdentity(f *os.File) (Identity, error) {
	return Identity{}, errors.ErrUnsupported
}
