package filerotate

import "golang.org/x/sys/unix"

// os.OpenFile already adds it on linux, spelled out so the flags are
// complete on their own
const largeFileFlag = unix.O_LARGEFILE
