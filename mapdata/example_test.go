package mapdata_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/mapdata"
)

// ExampleParseText shows that the first line of a text map is its top row.
func ExampleParseText() {
	rows, err := mapdata.ParseText(strings.NewReader("111\n020\n000\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	gg, _ := gridgraph.Build(rows)
	top, _ := gg.NodeAt(0, 2)
	mid, _ := gg.NodeAt(1, 1)
	fmt.Println(top.Terrain, mid.Terrain, len(gg.Walls()))

	// Output:
	// blocked light 3
}
