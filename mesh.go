package subdiv

import (
	"math"
	"slices"

	"github.com/gogpu/subdiv/topology"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vertex is a mesh vertex. Only Position is mandatory; the remaining
// attributes are meaningful when the owning Mesh sets the matching flag.
type Vertex struct {
	Position r3.Vec
	Normal   r3.Vec
	TexCoord r2.Vec
	Color    RGBA
}

// Triangle holds three indices into Mesh.Vertices in winding order.
type Triangle = topology.Triangle

// Mesh is an indexed triangle mesh.
//
// Vertices and Triangles are owned by the mesh and replaced wholesale by
// Subdivide. A Mesh must not be read while Subdivide runs on it.
type Mesh struct {
	Vertices  []Vertex
	Triangles []Triangle

	// Attribute flags, set by whoever fills the mesh.
	HasNormals   bool
	HasTexCoords bool
	HasColors    bool
}

// Clone returns a deep copy of m.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Vertices:     slices.Clone(m.Vertices),
		Triangles:    slices.Clone(m.Triangles),
		HasNormals:   m.HasNormals,
		HasTexCoords: m.HasTexCoords,
		HasColors:    m.HasColors,
	}
}

// Adjacency builds the connectivity of the current triangles.
// The result describes the mesh at the time of the call only.
func (m *Mesh) Adjacency() (*topology.Adjacency, error) {
	return topology.Build(m.Triangles, len(m.Vertices))
}

// Validate reports whether m can be subdivided, returning the error
// Subdivide would return without modifying the mesh.
func (m *Mesh) Validate() error {
	_, err := newPlan(m)
	return err
}

// Bounds returns the axis-aligned bounding box of all vertex positions.
// An empty mesh yields two zero vectors.
func (m *Mesh) Bounds() (lo, hi r3.Vec) {
	if len(m.Vertices) == 0 {
		return r3.Vec{}, r3.Vec{}
	}
	lo = r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, v := range m.Vertices {
		p := v.Position
		lo = r3.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = r3.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}
	return lo, hi
}

// RecomputeNormals sets every vertex normal to the normalized sum of the
// normals of its incident triangles, weighted by triangle area.
// Vertices not referenced by any triangle get a zero normal.
// Triangles with out-of-range indices are skipped.
func (m *Mesh) RecomputeNormals() {
	sums := make([]r3.Vec, len(m.Vertices))
	for _, t := range m.Triangles {
		if !m.inRange(t) {
			continue
		}
		p0 := m.Vertices[t[0]].Position
		e1 := r3.Sub(m.Vertices[t[1]].Position, p0)
		e2 := r3.Sub(m.Vertices[t[2]].Position, p0)
		// The cross product's length is twice the triangle area.
		n := r3.Cross(e1, e2)
		for _, i := range t {
			sums[i] = r3.Add(sums[i], n)
		}
	}
	for i := range m.Vertices {
		m.Vertices[i].Normal = unitOrZero(sums[i])
	}
	m.HasNormals = true
}

func (m *Mesh) inRange(t Triangle) bool {
	for _, i := range t {
		if i < 0 || i >= len(m.Vertices) {
			return false
		}
	}
	return true
}

// unitOrZero returns v scaled to unit length, or the zero vector if v has
// no length.
func unitOrZero(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/n, v)
}
