package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/search"
)

// render draws the map with the top row first:
//
//	#  wall            .  open          2-4  terrain code
//	o  frontier        x  explored      *    path
//	S  start           G  goal
func render(w io.Writer, g *gridgraph.GridGraph, s search.Snapshot) error {
	marks := make(map[gridgraph.Point]byte, len(s.Frontier)+len(s.Explored)+len(s.Path)+2)
	for _, c := range s.Frontier {
		marks[c.Point] = 'o'
	}
	for _, c := range s.Explored {
		marks[c.Point] = 'x'
	}
	for _, c := range s.Path {
		marks[c.Point] = '*'
	}
	marks[s.Start] = 'S'
	marks[s.Goal] = 'G'

	bw := bufio.NewWriter(w)
	for y := g.Height - 1; y >= 0; y-- {
		for x := 0; x < g.Width; x++ {
			if m, ok := marks[gridgraph.Point{X: x, Y: y}]; ok {
				bw.WriteByte(m)
				continue
			}
			n, _ := g.NodeAt(x, y)
			bw.WriteByte(terrainGlyph(n.Terrain))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func terrainGlyph(t gridgraph.Terrain) byte {
	switch t {
	case gridgraph.Blocked:
		return '#'
	case gridgraph.Open:
		return '.'
	default:
		return byte('0' + int(t))
	}
}

// parsePoint reads "x,y".
func parsePoint(s string) (gridgraph.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Point{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridgraph.Point{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridgraph.Point{}, fmt.Errorf("bad y in %q: %w", s, err)
	}
	return gridgraph.Point{X: x, Y: y}, nil
}

func pointOr(s string, def gridgraph.Point) (gridgraph.Point, error) {
	if s == "" {
		return def, nil
	}
	return parsePoint(s)
}

// parseSize reads "WxH".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("want WxH, got %q", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("bad width in %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("bad height in %q: %w", s, err)
	}
	return w, h, nil
}
