package mapdata

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// DecodePNG reads a PNG map. Pure black pixels are Blocked, pure white are
// Open; anything else is rejected with ErrUnsupportedColor. The bottom image
// row becomes row 0.
func DecodePNG(r io.Reader) ([][]int, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("mapdata: decode png: %w", err)
	}
	return FromImage(img)
}

// FromImage converts any image using the DecodePNG color rules.
//
// Complexity: O(W×H).
func FromImage(img image.Image) ([][]int, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, ErrEmptyMap
	}

	rows := make([][]int, b.Dy())
	for py := b.Min.Y; py < b.Max.Y; py++ {
		y := b.Max.Y - 1 - py
		row := make([]int, b.Dx())
		for px := b.Min.X; px < b.Max.X; px++ {
			r, g, bl, a := img.At(px, py).RGBA()
			switch {
			case a == 0xffff && r == 0 && g == 0 && bl == 0:
				row[px-b.Min.X] = int(gridgraph.Blocked)
			case a == 0xffff && r == 0xffff && g == 0xffff && bl == 0xffff:
				row[px-b.Min.X] = int(gridgraph.Open)
			default:
				return nil, fmt.Errorf("%w: pixel (%d,%d) is rgba(%d,%d,%d,%d)",
					ErrUnsupportedColor, px, py, r>>8, g>>8, bl>>8, a>>8)
			}
		}
		rows[y] = row
	}
	return rows, nil
}
