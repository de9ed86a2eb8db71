package seedfill

import "errors"

// Errors returned by seedfill operations. They are reported before any scan
// runs, so the buffers are left untouched.
var (
	// ErrNilBuffer is returned when a required buffer is nil.
	ErrNilBuffer = errors.New("seedfill: nil buffer")

	// ErrEmptyBuffer is returned when a buffer has no pixels or no data.
	ErrEmptyBuffer = errors.New("seedfill: empty buffer")

	// ErrInvalidConnectivity is returned for connectivity other than 4 or 8.
	ErrInvalidConnectivity = errors.New("seedfill: connectivity must be 4 or 8")

	// ErrUnsupportedDepth is returned when a buffer depth is not accepted by the operation.
	ErrUnsupportedDepth = errors.New("seedfill: unsupported depth")

	// ErrDepthMismatch is returned when seed and mask depths differ.
	ErrDepthMismatch = errors.New("seedfill: depth mismatch")

	// ErrSizeMismatch is returned when buffers that must share a size do not.
	ErrSizeMismatch = errors.New("seedfill: size mismatch")

	// ErrNotConverged is returned when an iterated fill hits its iteration cap.
	ErrNotConverged = errors.New("seedfill: did not converge")
)
