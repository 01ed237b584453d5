package dirsize

import (
	"fmt"
	"strings"
)

// blockUnit is the unit of st_blocks, see stat(2).
const blockUnit = 512

// SizePolicy selects how the size of a single entry is measured.
type SizePolicy int

const (
	// DiskUsage counts the storage allocated to an entry.
	DiskUsage SizePolicy = iota
	// ApparentSize counts the logical length of an entry.
	ApparentSize
)

// String returns the flag spelling of the policy.
func (p SizePolicy) String() string {
	switch p {
	case DiskUsage:
		return "disk-usage"
	case ApparentSize:
		return "apparent-size"
	default:
		return fmt.Sprintf("SizePolicy(%d)", int(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p SizePolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParseSizePolicy parses the flag spelling of a policy.
func ParseSizePolicy(s string) (SizePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disk-usage", "disk":
		return DiskUsage, nil
	case "apparent-size", "apparent":
		return ApparentSize, nil
	default:
		return 0, fmt.Errorf("unknown size policy %q: must be one of [disk-usage apparent-size]", s)
	}
}

// Size returns the byte count of an entry under this policy.
// Disk usage falls back to the apparent size when the platform reports no block count.
func (p SizePolicy) Size(md Metadata) uint64 {
	if p == DiskUsage && md.Platform != nil {
		return md.Platform.Blocks * blockUnit
	}

	return md.Length
}
