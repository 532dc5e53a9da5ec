package mapdata

import "errors"

var (
	// ErrEmptyMap indicates an input with no cells.
	ErrEmptyMap = errors.New("mapdata: map has no cells")

	// ErrUnsupportedColor indicates a pixel that is neither black nor white.
	ErrUnsupportedColor = errors.New("mapdata: unsupported pixel color")

	// ErrBadDimensions indicates a non-positive generated map size.
	ErrBadDimensions = errors.New("mapdata: width and height must be positive")

	// ErrInvalidDensity indicates a wall density outside [0,1].
	ErrInvalidDensity = errors.New("mapdata: density must be in [0,1]")
)
