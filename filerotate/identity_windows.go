package filerotate

import (
	"os"

	"golang.org/x/sys/windows"
)

const openFlags = os.O_CREATE | os.O_WRONLY | os.O_APPEND

// FILE_READ_ATTRIBUTES access right, enough for GetFileInformationByHandle
const fileReadAttributes = 0x80

// volume serial number + file index is the windows equivalent of dev + inode
func identityOf(fi *windows.ByHandleFileInformation) Identity {
	return Identity{
		Dev: uint64(fi.VolumeSerialNumber),
		Ino: uint64(fi.FileIndexHigh)<<32 | uint64(fi.FileIndexLow),
	}
}

func handleIdentity(h windows.Handle) (Identity, error) {
	var fi windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h, &fi); err != nil {
		return Identity{}, err
	}
	return identityOf(&fi), nil
}

func statIdentity(path string) (Identity, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return Identity{}, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	share := uint32(windows.FILE_SHARE_READ | windows.FILE_SHARE_WRITE | windows.FILE_SHARE_DELETE)
	// FILE_FLAG_BACKUP_SEMANTICS so that directories can be opened too
	h, err := windows.CreateFile(p, fileReadAttributes, share, nil, windows.OPEN_EXISTING, windows.FILE_FLAG_BACKUP_SEMANTICS, 0)
	if err != nil {
		return Identity{}, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	defer windows.CloseHandle(h)
	id, err := handleIdentity(h)
	if err != nil {
		return Identity{}, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	return id, nil
}

func fstatIdentity(f *os.File) (Identity, error) {
	return handleIdentity(windows.Handle(f.Fd()))
}
