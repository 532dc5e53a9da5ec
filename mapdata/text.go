package mapdata

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// MaxLineLen bounds the length of a text map line, in bytes.
const MaxLineLen = 16 << 20

// ParseText reads a text map. Each line is one row of single-digit terrain
// codes; the last line becomes row 0. A trailing newline does not add a row,
// and "\r\n" line endings are accepted. A line of MaxLineLen bytes or more
// fails with bufio.ErrTooLong.
//
// Returns ErrEmptyMap if no line holds a cell, or an error wrapping
// gridgraph.ErrInvalidTerrainCode for a non-digit character.
//
// Complexity: O(total characters).
func ParseText(r io.Reader) ([][]int, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineLen)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mapdata: read text map: %w", err)
	}

	rows := make([][]int, len(lines))
	cells := 0
	for i, line := range lines {
		y := len(lines) - 1 - i
		row := make([]int, len(line))
		for x, ch := range []byte(line) {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: line %d column %d holds %q", gridgraph.ErrInvalidTerrainCode, i+1, x+1, ch)
			}
			row[x] = int(ch - '0')
		}
		rows[y] = row
		cells += len(row)
	}
	if cells == 0 {
		return nil, ErrEmptyMap
	}
	return rows, nil
}

// WriteText writes rows in the format read by ParseText: the highest row
// first, one digit per cell.
func WriteText(w io.Writer, rows [][]int) error {
	bw := bufio.NewWriter(w)
	for y := len(rows) - 1; y >= 0; y-- {
		for _, v := range rows[y] {
			if v < 0 || v > 9 {
				return fmt.Errorf("%w: %d at row %d", gridgraph.ErrInvalidTerrainCode, v, y)
			}
			bw.WriteByte(byte('0' + v))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
