package mapdata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// Load reads the map at path and builds a graph with the given connectivity.
// Files ending in ".png" are decoded as images, everything else as text.
func Load(path string, conn gridgraph.Connectivity) (*gridgraph.GridGraph, error) {
	decode := ParseText
	if strings.EqualFold(filepath.Ext(path), ".png") {
		decode = DecodePNG
	}
	return load(path, conn, decode)
}

// LoadPNG is Load for an image map whatever the file's extension.
func LoadPNG(path string, conn gridgraph.Connectivity) (*gridgraph.GridGraph, error) {
	return load(path, conn, DecodePNG)
}

func load(path string, conn gridgraph.Connectivity, decode func(io.Reader) ([][]int, error)) (*gridgraph.GridGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapdata: %w", err)
	}
	defer f.Close()

	rows, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	gg, err := gridgraph.From2D(rows, conn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return gg, nil
}
