//go:build unix

package dirsize_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/dirsize/internal/dirsize"
)

func TestWalkHardLinksCountedOnce(t *testing.T) {
	root := t.TempDir()
	b := filepath.Join(root, "b")
	writeFile(t, b, 50)

	// Links in separate subtrees are usually seen by different workers.
	require.NoError(t, os.Mkdir(filepath.Join(root, "x"), 0o755))
	require.NoError(t, os.Link(b, filepath.Join(root, "b2")))
	require.NoError(t, os.Link(b, filepath.Join(root, "x", "b3")))

	for _, policy := range policies {
		want := sizeOf(t, policy, root, filepath.Join(root, "x"), b)

		for _, engine := range engines {
			for _, threads := range []int{1, 2, 8} {
				result := walk(t, dirsize.Config{Roots: []string{root}, Threads: threads, Policy: policy, Engine: engine})

				assert.Equal(t, want, result.TotalBytes, "%v/%v/%d", policy, engine, threads)
				assert.Equal(t, int64(1), result.Files)
			}
		}
	}
}

func TestWalkHardLinksAcrossRoots(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	file := filepath.Join(first, "data")

	writeFile(t, file, 4096)
	require.NoError(t, os.Link(file, filepath.Join(second, "data")))

	want := sizeOf(t, dirsize.ApparentSize, first, second, file)

	for _, engine := range engines {
		result := walk(t, dirsize.Config{Roots: []string{first, second}, Threads: 4, Policy: dirsize.ApparentSize, Engine: engine})

		assert.Equal(t, want, result.TotalBytes, engine)
	}
}

func TestWalkScenario(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")

	writeFile(t, filepath.Join(root, "a"), 100)
	writeFile(t, filepath.Join(root, "b"), 50)
	writeFile(t, filepath.Join(sub, "c"), 25)
	require.NoError(t, os.Link(filepath.Join(root, "b"), filepath.Join(root, "b2")))

	t.Run("apparent size", func(t *testing.T) {
		want := 100 + 50 + 25 + sizeOf(t, dirsize.ApparentSize, root, sub)

		for _, engine := range engines {
			result := walk(t, dirsize.Config{Roots: []string{root}, Threads: 2, Policy: dirsize.ApparentSize, Engine: engine})

			assert.Equal(t, want, result.TotalBytes, engine)
			assert.Empty(t, result.Errors)
			assert.Equal(t, int64(3), result.Files)
			assert.Equal(t, int64(2), result.Directories)
		}
	})

	t.Run("disk usage", func(t *testing.T) {
		files := []string{filepath.Join(root, "a"), filepath.Join(root, "b"), filepath.Join(sub, "c")}
		want := sizeOf(t, dirsize.DiskUsage, append(files, root, sub)...)

		for _, engine := range engines {
			result := walk(t, dirsize.Config{Roots: []string{root}, Threads: 2, Policy: dirsize.DiskUsage, Engine: engine})

			assert.Equal(t, want, result.TotalBytes, engine)
			assert.Empty(t, result.Errors)
		}
	})
}

func TestWalkSymlinksNotFollowed(t *testing.T) {
	outside := t.TempDir()
	target := filepath.Join(outside, "big")
	writeFile(t, target, 1<<16)

	root := t.TempDir()
	link := filepath.Join(root, "link")
	require.NoError(t, os.Symlink(target, link))
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "dirlink")))

	want := sizeOf(t, dirsize.ApparentSize, root, link, filepath.Join(root, "dirlink"))

	for _, engine := range engines {
		result := walk(t, dirsize.Config{Roots: []string{root}, Threads: 2, Policy: dirsize.ApparentSize, Engine: engine})

		assert.Equal(t, want, result.TotalBytes, engine)
		assert.Empty(t, result.Errors)
		assert.Equal(t, int64(2), result.Files)
	}

	// A symlink given as a root is measured itself, not its target.
	result := walk(t, dirsize.Config{Roots: []string{link}, Policy: dirsize.ApparentSize})
	assert.Equal(t, sizeOf(t, dirsize.ApparentSize, link), result.TotalBytes)
}

func TestWalkUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	root := buildTree(t)
	locked := filepath.Join(root, "locked")
	writeFile(t, filepath.Join(locked, "hidden"), 1000)

	// Measure before locking, and without the hidden file.
	want := treeSize(t, dirsize.ApparentSize, root) - 1000

	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	for _, engine := range engines {
		for _, threads := range []int{1, 8} {
			result := walk(t, dirsize.Config{Roots: []string{root}, Threads: threads, Policy: dirsize.ApparentSize, Engine: engine})

			// The directory's own size still counts.
			assert.Equal(t, want, result.TotalBytes, "%v/%d", engine, threads)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, dirsize.CouldNotReadDir, result.Errors[0].Kind)
			assert.Equal(t, locked, result.Errors[0].Path)
			assert.False(t, result.Tainted())
		}
	}
}
