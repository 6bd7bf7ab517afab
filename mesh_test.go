package subdiv

import (
	"math"
	"slices"
	"testing"

	"github.com/gogpu/subdiv/topology"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestMesh_Clone(t *testing.T) {
	m := quadMesh()
	m.HasTexCoords = true
	c := m.Clone()

	c.Vertices[0].Position = r3.Vec{X: 9}
	c.Triangles[0] = Triangle{3, 2, 1}

	if m.Vertices[0].Position == (r3.Vec{X: 9}) {
		t.Error("Clone shares vertex storage")
	}
	if m.Triangles[0] == (Triangle{3, 2, 1}) {
		t.Error("Clone shares triangle storage")
	}
	if !c.HasTexCoords || c.HasNormals {
		t.Errorf("Clone flags = %v/%v, want texcoords only", c.HasTexCoords, c.HasNormals)
	}
}

func TestMesh_Bounds(t *testing.T) {
	lo, hi := quadMesh().Bounds()
	if lo != (r3.Vec{}) {
		t.Errorf("lo = %v, want origin", lo)
	}
	if hi != (r3.Vec{X: 1, Y: 1, Z: 4}) {
		t.Errorf("hi = %v, want (1,1,4)", hi)
	}

	lo, hi = (&Mesh{}).Bounds()
	if lo != (r3.Vec{}) || hi != (r3.Vec{}) {
		t.Errorf("empty Bounds() = %v, %v, want zero", lo, hi)
	}
}

func TestMesh_Adjacency(t *testing.T) {
	adj, err := quadMesh().Adjacency()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := adj.NeighborTriangles(0), [3]int{topology.None, topology.None, 1}; got != want {
		t.Errorf("NeighborTriangles(0) = %v, want %v", got, want)
	}
	if got, want := adj.VertexNeighbors(2), []int{0, 1, 3}; !slices.Equal(got, want) {
		t.Errorf("VertexNeighbors(2) = %v, want %v", got, want)
	}
}

func TestMesh_RecomputeNormals(t *testing.T) {
	tests := []struct {
		name string
		tris []Triangle
		want r3.Vec
	}{
		{"counter-clockwise", []Triangle{{0, 1, 2}}, r3.Vec{Z: 1}},
		{"clockwise", []Triangle{{0, 2, 1}}, r3.Vec{Z: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := singleTriangleMesh()
			m.Triangles = tt.tris
			m.RecomputeNormals()
			if !m.HasNormals {
				t.Error("HasNormals not set")
			}
			for i, v := range m.Vertices {
				if !vecNear(v.Normal, tt.want) {
					t.Errorf("Vertices[%d].Normal = %v, want %v", i, v.Normal, tt.want)
				}
			}
		})
	}
}

func TestMesh_RecomputeNormalsUnitLength(t *testing.T) {
	m := octahedronMesh()
	m.RecomputeNormals()
	for i, v := range m.Vertices {
		if l := r3.Norm(v.Normal); math.Abs(l-1) > 1e-9 {
			t.Errorf("|Vertices[%d].Normal| = %v, want 1", i, l)
		}
		// Octahedron vertices lie on the unit sphere, so the outward normal
		// equals the position.
		if !vecNear(v.Normal, v.Position) {
			t.Errorf("Vertices[%d].Normal = %v, want %v", i, v.Normal, v.Position)
		}
	}
}

func TestMesh_RecomputeNormalsSkipsBadTriangles(t *testing.T) {
	m := singleTriangleMesh()
	m.Vertices = append(m.Vertices, Vertex{Position: r3.Vec{X: 3}})
	m.Triangles = append(m.Triangles, Triangle{0, 1, 9})
	m.RecomputeNormals()
	if m.Vertices[3].Normal != (r3.Vec{}) {
		t.Errorf("unreferenced vertex normal = %v, want zero", m.Vertices[3].Normal)
	}
}
