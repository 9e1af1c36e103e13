package hexgrid

import "errors"

var (
	// ErrSurfaceUnavailable is returned when no 2D drawing surface can be acquired.
	ErrSurfaceUnavailable = errors.New("hexgrid: drawing surface unavailable")
	// ErrInvalidConfiguration is returned for configurations that would yield degenerate geometry.
	ErrInvalidConfiguration = errors.New("hexgrid: invalid configuration")
)
