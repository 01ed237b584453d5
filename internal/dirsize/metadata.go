package dirsize

import (
	"io/fs"
	"os"
)

// Metadata holds the attributes of one filesystem entry the walk needs.
type Metadata struct {
	// Dir is set for directories.
	Dir bool
	// Regular is set for regular files.
	Regular bool
	// Length is the logical size in bytes.
	Length uint64
	// Platform is nil when the platform does not expose block counts,
	// link counts or file identities.
	Platform *PlatformStat
}

// PlatformStat holds the optional, platform-provided attributes of an entry.
type PlatformStat struct {
	// Blocks is the number of 512-byte blocks allocated.
	Blocks uint64
	// Links is the hard-link count.
	Links uint64
	// Device is the id of the device holding the entry.
	Device uint64
	// Inode is the inode number on that device.
	Inode uint64
}

// FromFileInfo converts an fs.FileInfo obtained without following symlinks.
func FromFileInfo(fi fs.FileInfo) Metadata {
	size := fi.Size()
	if size < 0 {
		size = 0
	}

	return Metadata{
		Dir:      fi.IsDir(),
		Regular:  fi.Mode().IsRegular(),
		Length:   uint64(size),
		Platform: platformStat(fi),
	}
}

// Lstat returns the metadata of path. A terminal symlink is not followed.
func Lstat(path string) (Metadata, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return Metadata{}, err
	}

	return FromFileInfo(fi), nil
}

// readDirNames returns the names of the immediate children of dir.
// A partial read is reported as a failure.
func readDirNames(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Readdirnames(-1)
}
