package adjacency

// view is the read-only storage shared by the ordered snapshots.
type view struct {
	edges [][]Edge
}

// Len returns the number of cities.
func (v view) Len() int { return len(v.edges) }

// Edges returns city's edges in the snapshot's order. The slice must not be modified.
func (v view) Edges(city int) []Edge { return v.edges[city] }

// DestOrdered lists each city's edges by ascending destination index.
type DestOrdered struct{ view }

// WeightOrdered lists each city's edges by ascending weight, so the first
// qualifying entries of a scan are the cheapest.
type WeightOrdered struct{ view }
