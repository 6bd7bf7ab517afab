// Package topology reconstructs connectivity from an indexed triangle soup.
//
// # Overview
//
// A triangle mesh is stored as a flat vertex array and a list of index
// triples. Nothing in that layout says which triangles share an edge, so
// algorithms that need neighbourhood information (smoothing, subdivision,
// boundary detection) first rebuild it here.
//
// The package provides three building blocks:
//   - [EdgeKey]: an order-independent identifier for an unordered vertex pair
//   - [Adjacency]: per-triangle edge neighbours and per-vertex neighbour sets
//   - [EdgeRegistry]: one new vertex slot per distinct edge, with the
//     opposite vertices of its incident triangles
//
// # Edge Ordering
//
// Edge slot i of a triangle t is the directed pair (t[i], t[(i+1)%3]).
// [Adjacency.NeighborTriangles] and the subdivision engine both rely on this
// ordering.
//
// # Validity
//
// [Build] rejects meshes that the weighting rules of Loop subdivision cannot
// handle: out-of-range indices, degenerate triangles and edges shared by more
// than two triangles. All such errors unwrap to [ErrUnsafeMesh].
//
// # Usage
//
//	adj, err := topology.Build(triangles, len(vertices))
//	if err != nil {
//	    return err
//	}
//	for _, n := range adj.VertexNeighbors(0) {
//	    fmt.Println("vertex 0 is linked to", n)
//	}
package topology
