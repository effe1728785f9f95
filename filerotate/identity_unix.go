//go:build unix

package filerotate

import (
	"os"

	"golang.org/x/sys/unix"
)

// O_NOCTTY so that opening a tty doesn't make it our controlling terminal
const openFlags = os.O_CREATE | os.O_WRONLY | os.O_APPEND | unix.O_NOCTTY | largeFileFlag

func identityOf(st *unix.Stat_t) Identity {
	return Identity{
		Dev: uint64(st.Dev),
		Ino: uint64(st.Ino),
	}
}

func statIdentity(path string) (Identity, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Identity{}, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	return identityOf(&st), nil
}

func fstatIdentity(f *os.File) (Identity, error) {
	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil {
		return Identity{}, err
	}
	return identityOf(&st), nil
}
