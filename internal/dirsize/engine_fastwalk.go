package dirsize

import (
	"context"
	"io/fs"
	"path/filepath"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// walkFastwalk measures each root with fastwalk. Roots are stat'ed here so a
// root that is a file or a symlink is handled like any other entry.
func walkFastwalk(ctx context.Context, cfg Config, emit emitter) {
	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: cfg.Threads,
	}

	for _, root := range cfg.Roots {
		if ctx.Err() != nil {
			return
		}

		md, err := Lstat(root)
		if err != nil {
			emit.fail(NoMetadataForPath, root, err)

			continue
		}

		emit.measure(md)

		if !md.Dir {
			continue
		}

		var rootReported atomic.Bool

		//nolint:varnamelen // d is standard for DirEntry
		walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
			isRoot := filepath.Clean(path) == root

			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			if err != nil {
				// fastwalk calls back a second time with the error when a
				// directory it already reported cannot be read.
				switch {
				case isRoot:
					rootReported.Store(true)
					emit.fail(CouldNotReadDir, path, err)
				case d != nil && d.IsDir():
					emit.fail(CouldNotReadDir, path, err)
				default:
					emit.fail(NoMetadataForPath, path, err)
				}

				return nil
			}

			if isRoot {
				return nil
			}

			fileInfo, err := d.Info()
			if err != nil {
				emit.fail(NoMetadataForPath, path, err)

				return nil //nolint:nilerr // Recorded, the walk goes on
			}

			emit.measure(FromFileInfo(fileInfo))

			return nil
		})

		if walkErr != nil && ctx.Err() == nil && !rootReported.Load() {
			emit.fail(CouldNotReadDir, root, walkErr)
		}
	}
}
