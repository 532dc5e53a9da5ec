package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGrid indicates the input grid cannot be laid out as a rectangle:
	// a row is longer than the declared width, or the declared width is negative.
	ErrMalformedGrid = errors.New("gridgraph: malformed grid")
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: input grid must have at least one row and one column", ErrMalformedGrid)
	// ErrInvalidTerrainCode indicates a cell value outside the known terrain set.
	ErrInvalidTerrainCode = errors.New("gridgraph: invalid terrain code")
	// ErrNodeNotFound indicates a coordinate or NodeID outside the graph.
	ErrNodeNotFound = errors.New("gridgraph: node not found")
)
