package dirsize

import "fmt"

// ErrorKind classifies a recoverable per-entry failure.
type ErrorKind int

const (
	// NoMetadataForPath means the entry could not be stat'ed. It contributes
	// nothing and is not descended into.
	NoMetadataForPath ErrorKind = iota
	// CouldNotReadDir means a directory's own size was counted but its
	// children could not be listed.
	CouldNotReadDir
)

// String returns the name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case NoMetadataForPath:
		return "no-metadata-for-path"
	case CouldNotReadDir:
		return "could-not-read-dir"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// PathError records one entry the walk could not fully process.
type PathError struct {
	// Kind is the failure class.
	Kind ErrorKind `json:"kind"`
	// Path is the offending path.
	Path string `json:"path"`
	// Err is the underlying error reported by the operating system, if any.
	Err error `json:"-"`
}

func (e *PathError) Error() string {
	var msg string

	switch e.Kind {
	case NoMetadataForPath:
		msg = fmt.Sprintf("could not retrieve metadata for path %q", e.Path)
	case CouldNotReadDir:
		msg = fmt.Sprintf("could not read contents of directory %q", e.Path)
	default:
		msg = fmt.Sprintf("%v: %q", e.Kind, e.Path)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *PathError) Unwrap() error { return e.Err }
