package topology

import "slices"

// incidence records the triangles sharing one edge.
// At most two are stored; n keeps counting so a non-manifold edge can be
// reported with its real reference count.
type incidence struct {
	tris  [2]int
	slots [2]int8
	n     int
}

// Adjacency is the connectivity of a triangle list: for every triangle the
// triangle across each of its edges, and for every vertex the set of vertices
// it shares an edge with.
//
// An Adjacency is a snapshot. It is not updated when the triangles it was
// built from change.
type Adjacency struct {
	faces     [][3]int
	vertices  [][]int
	incidence map[EdgeKey]incidence
	order     []EdgeKey
}

// Build derives the adjacency of triangles over vertexCount vertices.
//
// It fails with *IndexOutOfRangeError if a triangle references a vertex
// outside [0, vertexCount), *InvalidEdgeError if a triangle repeats a vertex,
// and *NonManifoldMeshError if an edge is shared by more than two triangles.
// The input slice is not modified.
func Build(triangles []Triangle, vertexCount int) (*Adjacency, error) {
	if vertexCount < 0 {
		vertexCount = 0
	}
	a := &Adjacency{
		faces:     make([][3]int, len(triangles)),
		vertices:  make([][]int, vertexCount),
		incidence: make(map[EdgeKey]incidence, len(triangles)*3/2+1),
		order:     make([]EdgeKey, 0, len(triangles)*3/2+1),
	}

	for ti, t := range triangles {
		for _, idx := range t {
			if idx < 0 || idx >= vertexCount || uint64(idx) > maxIndex {
				return nil, &IndexOutOfRangeError{Triangle: ti, Index: idx, VertexCount: vertexCount}
			}
		}
		a.faces[ti] = [3]int{None, None, None}

		for s := 0; s < 3; s++ {
			u, v := t.Edge(s)
			if u == v {
				return nil, &InvalidEdgeError{Triangle: ti, Vertex: u}
			}
			key := packKey(u, v)
			inc, seen := a.incidence[key]
			if !seen {
				a.order = append(a.order, key)
			}
			if inc.n < 2 {
				inc.tris[inc.n] = ti
				inc.slots[inc.n] = int8(s)
			}
			inc.n++
			a.incidence[key] = inc

			a.vertices[u] = appendUnique(a.vertices[u], v)
			a.vertices[v] = appendUnique(a.vertices[v], u)
		}
	}

	for _, key := range a.order {
		inc := a.incidence[key]
		switch {
		case inc.n > 2:
			lo, hi := key.Endpoints()
			return nil, &NonManifoldMeshError{Edge: [2]int{lo, hi}, Vertex: None, Count: inc.n}
		case inc.n == 2:
			a.faces[inc.tris[0]][inc.slots[0]] = inc.tris[1]
			a.faces[inc.tris[1]][inc.slots[1]] = inc.tris[0]
		}
	}

	for v := range a.vertices {
		slices.Sort(a.vertices[v])
	}
	return a, nil
}

// appendUnique appends n to set unless it is already present.
// Vertex neighbourhoods are small, so a linear scan beats a map here.
func appendUnique(set []int, n int) []int {
	for _, existing := range set {
		if existing == n {
			return set
		}
	}
	return append(set, n)
}

// VertexCount returns the number of vertices the adjacency was built for.
func (a *Adjacency) VertexCount() int { return len(a.vertices) }

// TriangleCount returns the number of triangles.
func (a *Adjacency) TriangleCount() int { return len(a.faces) }

// EdgeCount returns the number of distinct edges.
func (a *Adjacency) EdgeCount() int { return len(a.order) }

// Edges returns every distinct edge in the order it was first encountered.
func (a *Adjacency) Edges() []EdgeKey {
	return slices.Clone(a.order)
}

// NeighborTriangles returns, for each edge slot of triangle t, the triangle
// sharing that edge, or None for a boundary edge.
func (a *Adjacency) NeighborTriangles(t int) [3]int {
	return a.faces[t]
}

// VertexNeighbors returns the vertices sharing an edge with v, in ascending
// order. The result is a copy.
func (a *Adjacency) VertexNeighbors(v int) []int {
	return slices.Clone(a.vertices[v])
}

// Valence returns the number of distinct vertices linked to v.
func (a *Adjacency) Valence(v int) int {
	return len(a.vertices[v])
}

// EdgeUses returns how many triangles contain the edge (u, v).
// It returns 0 for an edge that does not exist.
func (a *Adjacency) EdgeUses(u, v int) int {
	if u == v || u < 0 || v < 0 || uint64(u) > maxIndex || uint64(v) > maxIndex {
		return 0
	}
	return a.incidence[packKey(u, v)].n
}

// IsBoundaryEdge reports whether exactly one triangle contains (u, v).
func (a *Adjacency) IsBoundaryEdge(u, v int) bool {
	return a.EdgeUses(u, v) == 1
}

// BoundaryNeighbors returns the neighbours of v reached through boundary
// edges, in ascending order. On a manifold mesh the result has either zero
// or two entries.
func (a *Adjacency) BoundaryNeighbors(v int) []int {
	var out []int
	for _, n := range a.vertices[v] {
		if a.IsBoundaryEdge(v, n) {
			out = append(out, n)
		}
	}
	return out
}
