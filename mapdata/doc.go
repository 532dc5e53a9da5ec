// Package mapdata turns external map descriptions into terrain grids for
// gridgraph, and generates reproducible random maps.
//
// What:
//
//   - ParseText reads lines of digit characters (one terrain code per cell).
//     The last line is row y=0, so the file reads top-down like the map looks.
//   - DecodePNG reads a black/white image: black = Blocked, white = Open.
//     Image row 0 is the top of the map, i.e. y = Height-1.
//   - Load picks a decoder by file extension and builds a *gridgraph.GridGraph.
//   - Generate grows clustered walls and terrain patches by random walks from
//     a seed, keeping chosen cells open.
//   - WriteText writes a grid back in the text format.
//
// Rows returned by the decoders are indexed [y][x] and may be ragged; short
// rows are padded with Open cells by gridgraph.
//
// Errors:
//
//   - ErrEmptyMap:          no rows, or no cells in any row.
//   - ErrUnsupportedColor:  a pixel that is neither pure black nor pure white.
//   - ErrBadDimensions:     non-positive width/height for Generate.
//   - ErrInvalidDensity:    density outside [0,1] for Generate.
//   - gridgraph.ErrInvalidTerrainCode: a text cell that is not a digit.
package mapdata
