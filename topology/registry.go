package topology

import (
	"fmt"
	"slices"
)

// EdgeRecord describes one distinct edge known to an EdgeRegistry.
type EdgeRecord struct {
	// U and V are the endpoints as passed to the first Register call.
	U, V int
	// Odd is the vertex index reserved for this edge.
	Odd int
	// Faces are the registering triangles; Faces[1] is None until a second
	// triangle registers the edge.
	Faces [2]int
	// Opposite holds, per entry of Faces, the triangle vertex that is not
	// an endpoint of the edge.
	Opposite [2]int
	// Uses is the number of distinct triangles that registered the edge.
	Uses int
}

// Boundary reports whether only one triangle references the edge.
func (r EdgeRecord) Boundary() bool {
	return r.Uses == 1
}

// EdgeRegistry hands out one new vertex index per distinct edge.
//
// Indices are allocated consecutively from base in first-registration order,
// so with base set to the current vertex count the new vertices can simply be
// appended to the vertex array.
type EdgeRegistry struct {
	triangles []Triangle
	base      int
	index     map[EdgeKey]int
	records   []EdgeRecord
}

// NewEdgeRegistry returns an empty registry for edges of triangles.
func NewEdgeRegistry(triangles []Triangle, base int) *EdgeRegistry {
	return &EdgeRegistry{
		triangles: triangles,
		base:      base,
		index:     make(map[EdgeKey]int, len(triangles)*3/2+1),
		records:   make([]EdgeRecord, 0, len(triangles)*3/2+1),
	}
}

// Register records that triangle owner contains the edge (u, v) and returns
// the vertex index reserved for that edge.
//
// The first call for an edge reserves a new index. A call from a second
// triangle returns the same index and records that triangle's opposite
// vertex. Repeated calls from the same triangle are no-ops. A third distinct
// triangle fails with *NonManifoldMeshError.
func (r *EdgeRegistry) Register(u, v, owner int) (int, error) {
	key, err := NewEdgeKey(u, v)
	if err != nil {
		if ie, ok := err.(*InvalidEdgeError); ok {
			ie.Triangle = owner
		}
		return None, err
	}
	if owner < 0 || owner >= len(r.triangles) {
		return None, fmt.Errorf("%w: no triangle %d", ErrEdgeNotInTriangle, owner)
	}
	opposite := r.triangles[owner].Opposite(u, v)
	if opposite == None {
		return None, fmt.Errorf("%w: triangle %d, edge (%d,%d)", ErrEdgeNotInTriangle, owner, u, v)
	}

	i, ok := r.index[key]
	if !ok {
		odd := r.base + len(r.records)
		r.index[key] = len(r.records)
		r.records = append(r.records, EdgeRecord{
			U:        u,
			V:        v,
			Odd:      odd,
			Faces:    [2]int{owner, None},
			Opposite: [2]int{opposite, None},
			Uses:     1,
		})
		return odd, nil
	}

	rec := &r.records[i]
	if rec.Faces[0] == owner || rec.Faces[1] == owner {
		return rec.Odd, nil
	}
	if rec.Uses >= 2 {
		return None, &NonManifoldMeshError{Edge: [2]int{rec.U, rec.V}, Vertex: None, Count: rec.Uses + 1}
	}
	rec.Faces[1] = owner
	rec.Opposite[1] = opposite
	rec.Uses++
	return rec.Odd, nil
}

// Lookup returns the record of edge (u, v) in either orientation.
func (r *EdgeRegistry) Lookup(u, v int) (EdgeRecord, bool) {
	key, err := NewEdgeKey(u, v)
	if err != nil {
		return EdgeRecord{}, false
	}
	i, ok := r.index[key]
	if !ok {
		return EdgeRecord{}, false
	}
	return r.records[i], true
}

// Len returns the number of distinct edges registered so far.
func (r *EdgeRegistry) Len() int {
	return len(r.records)
}

// Records returns all edges in first-registration order. Records()[i].Odd
// is base+i.
func (r *EdgeRegistry) Records() []EdgeRecord {
	return slices.Clone(r.records)
}
