package mapdata_test

import (
	"bufio"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/mapdata"
)

//----------------------------------------------------------------------------//
// Text maps
//----------------------------------------------------------------------------//

func TestParseText_ReversesAndKeepsRagged(t *testing.T) {
	rows, err := mapdata.ParseText(strings.NewReader("0120\r\n11\n0004\n"))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []int{0, 0, 0, 4}, rows[0], "last line is row 0")
	assert.Equal(t, []int{1, 1}, rows[1])
	assert.Equal(t, []int{0, 1, 2, 0}, rows[2])

	gg, err := gridgraph.Build(rows)
	require.NoError(t, err)
	assert.Equal(t, 4, gg.Width, "width is the longest line")
	n, err := gg.NodeAt(3, 1)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Open, n.Terrain, "short rows padded with open cells")
	n, err = gg.NodeAt(3, 0)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.HeavyTerrain, n.Terrain)
}

func TestParseText_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", mapdata.ErrEmptyMap},
		{"OnlyBlankLines", "\n\n", mapdata.ErrEmptyMap},
		{"Letter", "00\n0a\n", gridgraph.ErrInvalidTerrainCode},
		{"Space", "0 0\n", gridgraph.ErrInvalidTerrainCode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := mapdata.ParseText(strings.NewReader(tc.in))
			assert.Nil(t, rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := mapdata.ParseText(strings.NewReader(strings.Repeat("0", mapdata.MaxLineLen+1)))
	assert.ErrorIs(t, err, bufio.ErrTooLong)

	// Digits outside the terrain set parse here and are rejected by the graph.
	rows, err := mapdata.ParseText(strings.NewReader("07\n"))
	require.NoError(t, err)
	_, err = gridgraph.Build(rows)
	assert.ErrorIs(t, err, gridgraph.ErrInvalidTerrainCode)
}

func TestParseText_WideRows(t *testing.T) {
	const width = 70000
	in := strings.Repeat("0", width) + "\n" + strings.Repeat("1", width) + "\n"
	rows, err := mapdata.ParseText(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Len(t, rows[0], width)
	assert.Len(t, rows[1], width)
	assert.Equal(t, 1, rows[0][width-1])
	assert.Equal(t, 0, rows[1][0])
}

func TestWriteText(t *testing.T) {
	rows := [][]int{{0, 0, 4}, {1, 2, 3}}
	var buf bytes.Buffer
	require.NoError(t, mapdata.WriteText(&buf, rows))
	assert.Equal(t, "123\n004\n", buf.String())

	back, err := mapdata.ParseText(&buf)
	require.NoError(t, err)
	assert.Equal(t, rows, back)

	assert.ErrorIs(t, mapdata.WriteText(&bytes.Buffer{}, [][]int{{12}}), gridgraph.ErrInvalidTerrainCode)
}

//----------------------------------------------------------------------------//
// Image maps
//----------------------------------------------------------------------------//

// encodePNG draws rows (row 0 at the bottom) as black/white pixels.
func encodePNG(t *testing.T, pix [][]color.Color) []byte {
	t.Helper()
	h, w := len(pix), len(pix[0])
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			img.Set(px, py, pix[py][px])
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodePNG(t *testing.T) {
	b, w := color.Black, color.White
	data := encodePNG(t, [][]color.Color{
		{b, w, w},
		{w, w, b},
	})
	rows, err := mapdata.DecodePNG(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 0, 1}, // bottom image row
		{1, 0, 0},
	}, rows)
}

func TestDecodePNG_Errors(t *testing.T) {
	data := encodePNG(t, [][]color.Color{{color.White, color.RGBA{R: 255, A: 255}}})
	_, err := mapdata.DecodePNG(bytes.NewReader(data))
	assert.ErrorIs(t, err, mapdata.ErrUnsupportedColor)

	_, err = mapdata.DecodePNG(strings.NewReader("not a png"))
	assert.Error(t, err)

	_, err = mapdata.FromImage(image.NewRGBA(image.Rect(0, 0, 0, 3)))
	assert.ErrorIs(t, err, mapdata.ErrEmptyMap)
}

//----------------------------------------------------------------------------//
// Load
//----------------------------------------------------------------------------//

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "level.txt")
	require.NoError(t, os.WriteFile(txt, []byte("010\n000\n"), 0o644))
	gg, err := mapdata.Load(txt, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Equal(t, 3, gg.Width)
	assert.Equal(t, 2, gg.Height)
	assert.Equal(t, gridgraph.Conn4, gg.Conn)
	require.Len(t, gg.Walls(), 1)
	assert.Equal(t, gridgraph.Point{X: 1, Y: 1}, gg.Walls()[0].Point())

	img := filepath.Join(dir, "level.PNG")
	require.NoError(t, os.WriteFile(img, encodePNG(t, [][]color.Color{{color.Black, color.White}}), 0o644))
	gg, err = mapdata.Load(img, gridgraph.Conn8)
	require.NoError(t, err)
	assert.Len(t, gg.Walls(), 1)

	_, err = mapdata.Load(filepath.Join(dir, "missing.txt"), gridgraph.Conn8)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.txt")

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("08\n"), 0o644))
	_, err = mapdata.Load(bad, gridgraph.Conn8)
	assert.ErrorIs(t, err, gridgraph.ErrInvalidTerrainCode)
}

func TestLoadPNG(t *testing.T) {
	dir := t.TempDir()
	data := encodePNG(t, [][]color.Color{{color.White, color.Black}, {color.White, color.White}})

	cases := []struct {
		name  string
		file  string
		walls int
		err   error
	}{
		{"PNGExtension", "level.png", 1, nil},
		{"OtherExtension", "level.img", 1, nil},
		{"Missing", "missing.png", 0, os.ErrNotExist},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			if tc.err == nil {
				require.NoError(t, os.WriteFile(path, data, 0o644))
			}
			gg, err := mapdata.LoadPNG(path, gridgraph.Conn4)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Contains(t, err.Error(), tc.file)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, gg.Width)
			assert.Equal(t, gridgraph.Conn4, gg.Conn)
			assert.Len(t, gg.Walls(), tc.walls)
		})
	}

	txt := filepath.Join(dir, "level.txt")
	require.NoError(t, os.WriteFile(txt, []byte("00\n"), 0o644))
	_, err := mapdata.LoadPNG(txt, gridgraph.Conn8)
	assert.Error(t, err, "text content is not an image")
}

//----------------------------------------------------------------------------//
// Generate
//----------------------------------------------------------------------------//

func TestGenerate_Deterministic(t *testing.T) {
	opts := mapdata.DefaultGenOptions()
	opts.Seed = 42
	a, err := mapdata.Generate(opts)
	require.NoError(t, err)
	b, err := mapdata.Generate(opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	opts.Seed = 43
	c, err := mapdata.Generate(opts)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	zero := mapdata.DefaultGenOptions()
	one := mapdata.DefaultGenOptions()
	one.Seed = 1
	z, err := mapdata.Generate(zero)
	require.NoError(t, err)
	o, err := mapdata.Generate(one)
	require.NoError(t, err)
	assert.Equal(t, z, o, "seed 0 maps to the default seed")
}

func TestGenerate_ShapeAndKeep(t *testing.T) {
	keep := []gridgraph.Point{{X: 0, Y: 0}, {X: 29, Y: 14}}
	opts := mapdata.GenOptions{Width: 30, Height: 15, Seed: 7, Density: 1, Clusters: 40, Steps: 60, Terrain: true, Keep: keep}
	rows, err := mapdata.Generate(opts)
	require.NoError(t, err)
	require.Len(t, rows, 15)

	walls := 0
	for _, row := range rows {
		require.Len(t, row, 30)
		for _, v := range row {
			_, err := gridgraph.ParseTerrain(v)
			require.NoError(t, err)
			if v == int(gridgraph.Blocked) {
				walls++
			}
		}
	}
	assert.Positive(t, walls)
	for _, p := range keep {
		assert.Equal(t, int(gridgraph.Open), rows[p.Y][p.X], "kept cell %v", p)
	}

	opts.Density = 0
	opts.Terrain = false
	rows, err = mapdata.Generate(opts)
	require.NoError(t, err)
	for _, row := range rows {
		for _, v := range row {
			assert.Zero(t, v)
		}
	}
}

func TestGenerate_Errors(t *testing.T) {
	_, err := mapdata.Generate(mapdata.GenOptions{Width: 0, Height: 4})
	assert.ErrorIs(t, err, mapdata.ErrBadDimensions)
	_, err = mapdata.Generate(mapdata.GenOptions{Width: 4, Height: -1})
	assert.ErrorIs(t, err, mapdata.ErrBadDimensions)
	_, err = mapdata.Generate(mapdata.GenOptions{Width: 4, Height: 4, Density: 1.5})
	assert.ErrorIs(t, err, mapdata.ErrInvalidDensity)
}
