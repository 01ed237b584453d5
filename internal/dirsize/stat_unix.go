//go:build unix

package dirsize

import (
	"io/fs"
	"syscall"
)

// platformStat extracts block count, link count and identity from a stat_t.
//
//nolint:unconvert // field widths differ between unix flavours
func platformStat(fi fs.FileInfo) *PlatformStat {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok || st == nil {
		return nil
	}

	return &PlatformStat{
		Blocks: uint64(st.Blocks), //nolint:gosec // never negative
		Links:  uint64(st.Nlink),
		Device: uint64(st.Dev), //nolint:gosec // device ids are opaque
		Inode:  uint64(st.Ino),
	}
}
