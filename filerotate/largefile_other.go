//go:build unix && !linux

package filerotate

const largeFileFlag = 0
