package dirsize

import "time"

// Result is the outcome of a walk.
type Result struct {
	// TotalBytes is the combined size of every counted entry.
	TotalBytes uint64 `json:"total_bytes"`
	// Files is the number of non-directory entries counted.
	// A file reachable through several hard links counts once.
	Files int64 `json:"files"`
	// Directories is the number of directories visited.
	Directories int64 `json:"directories"`
	// Errors lists recoverable failures in arrival order.
	Errors []*PathError `json:"errors"`
	// Policy is the size policy the walk used.
	Policy SizePolicy `json:"policy"`
	// Elapsed is the wall time of the walk.
	Elapsed time.Duration `json:"elapsed"`
}

// Tainted reports whether some entries could not be measured at all, so the
// total may be lower than the real footprint.
func (r *Result) Tainted() bool {
	for _, err := range r.Errors {
		if err.Kind == NoMetadataForPath {
			return true
		}
	}

	return false
}

// ErrorsOfKind returns the errors of the given kind.
func (r *Result) ErrorsOfKind(kind ErrorKind) []*PathError {
	var out []*PathError

	for _, err := range r.Errors {
		if err.Kind == kind {
			out = append(out, err)
		}
	}

	return out
}
