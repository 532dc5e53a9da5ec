// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = wall, 0 = open):
//
//	0 0 1 1
//	0 1 1 0
//	1 1 0 0
//
// Expected: 2 regions of sizes 3 and 3.
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{0, 0, 1, 1},
		{0, 1, 1, 0},
		{1, 1, 0, 0},
	}
	gg, err := From2D(grid, Conn4)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := gg.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{3, 3}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
	if gg.Connected(gg.ID(0, 0), gg.ID(3, 1)) {
		t.Error("Connected((0,0),(3,1)) = true across a wall")
	}
}

// TestConnectedComponents_Diagonal8 checks that diagonal hops join regions
// under Conn8 but not under Conn4.
//
// Grid:
//
//	0 1 1 1 0
//	1 0 1 0 1
//	1 1 0 1 1
//	1 0 1 0 1
//	0 1 1 1 0
//
// With Conn8 all 9 open cells connect into a single region.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 1, 0},
		{1, 0, 1, 0, 1},
		{1, 1, 0, 1, 1},
		{1, 0, 1, 0, 1},
		{0, 1, 1, 1, 0},
	}
	gg, err := From2D(grid, Conn8)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := gg.ConnectedComponents()
	if len(comps) != 1 {
		t.Fatalf("got %d components; want 1", len(comps))
	}
	if size := len(comps[0]); size != 9 {
		t.Errorf("component size = %d; want 9", size)
	}
	if !gg.Connected(gg.ID(0, 0), gg.ID(4, 4)) {
		t.Error("corners should be connected under Conn8")
	}

	gg4, _ := From2D(grid, Conn4)
	if n := len(gg4.ConnectedComponents()); n != 9 {
		t.Errorf("Conn4: got %d components; want 9", n)
	}
}

// TestConnectedComponents_AllBlocked tests edge cases:
//   - completely blocked grid → zero components, nothing connected
//   - single open cell → one component of size 1
func TestConnectedComponents_AllBlocked(t *testing.T) {
	gg1, _ := From2D([][]int{{1, 1}, {1, 1}}, Conn8)
	if n := len(gg1.ConnectedComponents()); n != 0 {
		t.Errorf("all-blocked: got %d components; want 0", n)
	}
	if gg1.Connected(0, 0) {
		t.Error("blocked cell reported connected to itself")
	}
	if r := gg1.Region(0); r != -1 {
		t.Errorf("Region(blocked) = %d; want -1", r)
	}

	gg2, _ := From2D([][]int{{1, 0}}, Conn8)
	comps := gg2.ConnectedComponents()
	if len(comps) != 1 || len(comps[0]) != 1 {
		t.Fatalf("single open: got %v; want one component of size 1", comps)
	}
	if comps[0][0] != gg2.ID(1, 0) {
		t.Errorf("component = %v; want [%d]", comps[0], gg2.ID(1, 0))
	}
	if gg2.Region(99) != -1 {
		t.Error("Region(out of range) should be -1")
	}
}
