package filerotate

import "fmt"

// Identity identifies the storage object behind a file. It survives
// renames but not delete and re-create.
type Identity struct {
	Dev uint64
	Ino uint64
}

func (id Identity) String() string {
	return fmt.Sprintf("%d:%d", id.Dev, id.Ino)
}
