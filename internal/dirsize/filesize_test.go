package dirsize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizePolicySize(t *testing.T) {
	withBlocks := Metadata{Regular: true, Length: 100, Platform: &PlatformStat{Blocks: 8, Links: 1}}
	withoutBlocks := Metadata{Regular: true, Length: 100}

	tests := []struct {
		name   string
		policy SizePolicy
		md     Metadata
		want   uint64
	}{
		{"apparent ignores blocks", ApparentSize, withBlocks, 100},
		{"disk usage counts 512-byte blocks", DiskUsage, withBlocks, 4096},
		{"disk usage falls back to length", DiskUsage, withoutBlocks, 100},
		{"apparent without platform", ApparentSize, withoutBlocks, 100},
		{"sparse file", DiskUsage, Metadata{Regular: true, Length: 1 << 30, Platform: &PlatformStat{}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Size(tt.md))
		})
	}
}

func TestParseSizePolicy(t *testing.T) {
	for in, want := range map[string]SizePolicy{
		"disk-usage":     DiskUsage,
		"apparent-size":  ApparentSize,
		" Apparent-Size": ApparentSize,
		"disk":           DiskUsage,
	} {
		got, err := ParseSizePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSizePolicy("blocks")
	require.Error(t, err)

	text, err := ApparentSize.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "apparent-size", string(text))
}

func TestResolveID(t *testing.T) {
	linked := &PlatformStat{Links: 2, Device: 7, Inode: 42}

	id, ok := resolveID(Metadata{Regular: true, Platform: linked})
	require.True(t, ok)
	assert.Equal(t, UniqueID{Device: 7, Inode: 42}, id)

	_, ok = resolveID(Metadata{Regular: true, Platform: &PlatformStat{Links: 1, Device: 7, Inode: 42}})
	assert.False(t, ok, "single link")

	_, ok = resolveID(Metadata{Dir: true, Platform: linked})
	assert.False(t, ok, "directories are never deduplicated")

	_, ok = resolveID(Metadata{Platform: linked})
	assert.False(t, ok, "symlinks and special files are never deduplicated")

	_, ok = resolveID(Metadata{Regular: true})
	assert.False(t, ok, "no identity capability")
}
