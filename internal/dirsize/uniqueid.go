package dirsize

// UniqueID identifies the data behind a hard-linked regular file.
type UniqueID struct {
	Device uint64
	Inode  uint64
}

// resolveID returns the dedup key of an entry. Only regular files with more
// than one link have one.
func resolveID(md Metadata) (UniqueID, bool) {
	if !md.Regular || md.Platform == nil || md.Platform.Links <= 1 {
		return UniqueID{}, false
	}

	return UniqueID{Device: md.Platform.Device, Inode: md.Platform.Inode}, true
}
