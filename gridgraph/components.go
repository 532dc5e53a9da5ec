package gridgraph

// labelRegions assigns a region label to every traversable node using the
// graph's own adjacency. Blocked nodes get -1.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and the queue.
func (gg *GridGraph) labelRegions() {
	gg.regions = make([]int, len(gg.nodes))
	for i := range gg.regions {
		gg.regions[i] = -1
	}
	label := 0
	queue := make([]NodeID, 0, len(gg.nodes))
	for i := range gg.nodes {
		if gg.nodes[i].Blocked() || gg.regions[i] >= 0 {
			continue
		}
		queue = append(queue[:0], NodeID(i))
		gg.regions[i] = label
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range gg.nodes[queue[qi]].Neighbors {
				if gg.regions[v] < 0 {
					gg.regions[v] = label
					queue = append(queue, v)
				}
			}
		}
		label++
	}
	gg.regionCount = label
}

// ConnectedComponents returns all contiguous regions of traversable cells,
// according to gg.Conn connectivity. Each component is a slice of NodeIDs in
// row-major order; components are ordered by their first cell.
//
// To convert an id back to (x,y), use Coordinate(id).
//
// Time:   O(W·H).
// Memory: O(W·H) for the output.
func (gg *GridGraph) ConnectedComponents() [][]NodeID {
	comps := make([][]NodeID, gg.regionCount)
	for i, r := range gg.regions {
		if r < 0 {
			continue
		}
		comps[r] = append(comps[r], NodeID(i))
	}
	return comps
}

// Region returns the region label of id, or -1 for blocked or unknown nodes.
func (gg *GridGraph) Region(id NodeID) int {
	if id < 0 || int(id) >= len(gg.regions) {
		return -1
	}
	return gg.regions[id]
}

// Connected reports whether a path of traversable cells links a and b.
// Always false when either node is blocked.
// Complexity: O(1).
func (gg *GridGraph) Connected(a, b NodeID) bool {
	ra, rb := gg.Region(a), gg.Region(b)
	return ra >= 0 && ra == rb
}
