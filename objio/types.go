package objio

import "errors"

// Sentinel errors for the objio package.
var (
	// ErrInvalidInput indicates a malformed OBJ, landmark file, or .inp
	// manifest: unparsable fields or an out-of-range vertex index; also a
	// layout vertex with no landmark when writing a landmark file.
	ErrInvalidInput = errors.New("objio: invalid input")

	// ErrIO wraps an underlying file read/write failure (missing file,
	// permission error, or a write that could not be flushed).
	ErrIO = errors.New("objio: io failure")
)

// LandmarkFormat selects a landmark file's line shape (spec.md §6).
type LandmarkFormat int

const (
	// FormatID is "one target vertex index per line".
	FormatID LandmarkFormat = iota

	// FormatIDPos is "target vertex index, then a redundant x y z
	// position used only to verify consistency with the target mesh".
	FormatIDPos
)

// LandmarkWarning is a non-fatal inconsistency surfaced by LoadLandmarks:
// a FormatIDPos line's redundant position did not match the target mesh's
// actual vertex position (spec.md §6: "mismatch → warning, not error").
type LandmarkWarning struct {
	Line     int // 0-based index of the landmark entry; blank and '#' lines are not counted
	LayoutV  int
	TargetV  int
	Expected [3]float64
	Got      [3]float64
}
