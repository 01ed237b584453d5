//go:build !unix

package dirsize

import "io/fs"

// platformStat reports no optional attributes. Sizes fall back to the
// apparent size and hard links are counted once per link, like the
// platform's own tools do.
func platformStat(fs.FileInfo) *PlatformStat {
	return nil
}
