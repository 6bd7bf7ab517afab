package subdiv

import (
	"github.com/gogpu/subdiv/topology"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Loop subdivision weights.
const (
	interiorEdgeWeight   = 3.0 / 8 // endpoints of an interior edge
	interiorFarWeight    = 1.0 / 8 // opposite vertices of an interior edge
	boundaryEdgeWeight   = 1.0 / 2
	boundaryCenterWeight = 3.0 / 4
	boundarySideWeight   = 1.0 / 8
	valence3Beta         = 3.0 / 16
)

// edgeClass tags an edge for the odd-vertex rule.
type edgeClass uint8

const (
	edgeBoundary edgeClass = iota
	edgeInterior
)

// vertexClass tags an original vertex for the even-vertex rule.
type vertexClass uint8

const (
	vertexIsolated vertexClass = iota
	vertexInterior
	vertexBoundary
)

// vertexRule is the even-vertex rule of one original vertex.
type vertexRule struct {
	class vertexClass
	// beta is the neighbour weight of an interior vertex.
	beta float64
	// left and right are the boundary neighbours of a boundary vertex.
	left, right int
}

// plan is the classified topology of one Subdivide call. It is computed
// before any output is written and discarded afterwards.
type plan struct {
	adj   *topology.Adjacency
	edges []topology.EdgeRecord
	class []edgeClass
	// mids holds the odd vertex of each triangle edge slot:
	// (m01, m12, m20) for triangle (v0, v1, v2).
	mids  [][3]int
	rules []vertexRule
	// lowValence counts interior vertices with fewer than 3 neighbours.
	lowValence int
}

// loopBeta returns Loop's neighbour weight for an interior vertex of
// valence n.
func loopBeta(n int) float64 {
	if n <= 3 {
		return valence3Beta
	}
	return 3 / (8 * float64(n))
}

// newPlan builds adjacency and edge registry for m and classifies every
// edge and vertex. It does not modify m.
func newPlan(m *Mesh) (*plan, error) {
	adj, err := topology.Build(m.Triangles, len(m.Vertices))
	if err != nil {
		return nil, err
	}

	reg := topology.NewEdgeRegistry(m.Triangles, len(m.Vertices))
	mids := make([][3]int, len(m.Triangles))
	for ti, t := range m.Triangles {
		for s := 0; s < 3; s++ {
			u, v := t.Edge(s)
			odd, err := reg.Register(u, v, ti)
			if err != nil {
				return nil, err
			}
			mids[ti][s] = odd
		}
	}

	p := &plan{
		adj:   adj,
		edges: reg.Records(),
		mids:  mids,
		rules: make([]vertexRule, len(m.Vertices)),
	}

	p.class = make([]edgeClass, len(p.edges))
	for i, e := range p.edges {
		if !e.Boundary() {
			p.class[i] = edgeInterior
		}
	}

	for v := range p.rules {
		n := adj.Valence(v)
		if n == 0 {
			p.rules[v] = vertexRule{class: vertexIsolated}
			continue
		}
		bn := adj.BoundaryNeighbors(v)
		switch len(bn) {
		case 0:
			if n < 3 {
				p.lowValence++
			}
			p.rules[v] = vertexRule{class: vertexInterior, beta: loopBeta(n)}
		case 2:
			p.rules[v] = vertexRule{class: vertexBoundary, left: bn[0], right: bn[1]}
		default:
			return nil, &topology.NonManifoldMeshError{Vertex: v, Count: len(bn)}
		}
	}
	return p, nil
}

// stencil is a weighted combination of vertices of the input snapshot.
type stencil struct {
	index  []int
	weight []float64
}

func (s stencil) position(src []Vertex) r3.Vec {
	var p r3.Vec
	for i, vi := range s.index {
		p = r3.Add(p, r3.Scale(s.weight[i], src[vi].Position))
	}
	return p
}

// normal returns the renormalized weighted normal.
func (s stencil) normal(src []Vertex) r3.Vec {
	var n r3.Vec
	for i, vi := range s.index {
		n = r3.Add(n, r3.Scale(s.weight[i], src[vi].Normal))
	}
	return unitOrZero(n)
}

func (s stencil) texCoord(src []Vertex) r2.Vec {
	var uv r2.Vec
	for i, vi := range s.index {
		uv = r2.Add(uv, r2.Scale(s.weight[i], src[vi].TexCoord))
	}
	return uv
}

func (s stencil) color(src []Vertex) RGBA {
	var c RGBA
	for i, vi := range s.index {
		c = c.Add(src[vi].Color.Scale(s.weight[i]))
	}
	return c
}

// oddStencil returns the odd-vertex stencil of edge i.
func (p *plan) oddStencil(i int) stencil {
	e := p.edges[i]
	if p.class[i] == edgeInterior {
		return stencil{
			index:  []int{e.U, e.V, e.Opposite[0], e.Opposite[1]},
			weight: []float64{interiorEdgeWeight, interiorEdgeWeight, interiorFarWeight, interiorFarWeight},
		}
	}
	return stencil{
		index:  []int{e.U, e.V},
		weight: []float64{boundaryEdgeWeight, boundaryEdgeWeight},
	}
}

// evenStencil returns the even-vertex stencil of original vertex v.
// The second result is false for isolated vertices, which do not move.
func (p *plan) evenStencil(v int) (stencil, bool) {
	r := p.rules[v]
	switch r.class {
	case vertexBoundary:
		return stencil{
			index:  []int{v, r.left, r.right},
			weight: []float64{boundaryCenterWeight, boundarySideWeight, boundarySideWeight},
		}, true
	case vertexInterior:
		neighbors := p.adj.VertexNeighbors(v)
		n := len(neighbors)
		s := stencil{
			index:  make([]int, 0, n+1),
			weight: make([]float64, 0, n+1),
		}
		s.index = append(s.index, v)
		s.weight = append(s.weight, 1-float64(n)*r.beta)
		for _, u := range neighbors {
			s.index = append(s.index, u)
			s.weight = append(s.weight, r.beta)
		}
		return s, true
	default:
		return stencil{}, false
	}
}

// oddVertices writes one vertex per edge into dst, in registration order.
func (p *plan) oddVertices(m *Mesh, dst []Vertex) {
	src := m.Vertices
	for i := range p.edges {
		s := p.oddStencil(i)
		v := Vertex{Position: s.position(src)}
		if m.HasNormals {
			v.Normal = s.normal(src)
		}
		if m.HasTexCoords {
			v.TexCoord = s.texCoord(src)
		}
		if m.HasColors {
			v.Color = s.color(src)
		}
		dst[i] = v
	}
}

// evenVertices writes the repositioned original vertices into dst.
// Every stencil reads m.Vertices, never dst.
func (p *plan) evenVertices(m *Mesh, dst []Vertex) {
	src := m.Vertices
	for i := range src {
		dst[i] = src[i]
		s, ok := p.evenStencil(i)
		if !ok {
			continue
		}
		dst[i].Position = s.position(src)
		if m.HasNormals {
			dst[i].Normal = s.normal(src)
		}
	}
}

// triangles splits every input triangle into four with the same winding.
func (p *plan) triangles(src []Triangle) []Triangle {
	out := make([]Triangle, 0, 4*len(src))
	for ti, t := range src {
		m01, m12, m20 := p.mids[ti][0], p.mids[ti][1], p.mids[ti][2]
		out = append(out,
			Triangle{t[0], m01, m20},
			Triangle{t[1], m12, m01},
			Triangle{t[2], m20, m12},
			Triangle{m01, m12, m20},
		)
	}
	return out
}

// Subdivide applies one pass of Loop subdivision to m.
//
// On success m has len(Vertices)+E vertices, E being the number of distinct
// edges, and 4*len(Triangles) triangles. Original vertices keep their
// indices; the new edge vertices follow them in first-encounter order.
//
// Subdivide fails with *IndexOutOfRangeError, *InvalidEdgeError or
// *NonManifoldMeshError, all wrapping ErrUnsafeMesh, and leaves m unchanged
// in that case.
func Subdivide(m *Mesh, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := Logger()
	p, err := newPlan(m)
	if err != nil {
		log.Debug("subdiv: mesh rejected", "vertices", len(m.Vertices), "triangles", len(m.Triangles), "error", err)
		return err
	}
	if p.lowValence > 0 {
		log.Warn("subdiv: interior vertices with valence below 3", "count", p.lowValence)
	}

	nv := len(m.Vertices)
	vertices := make([]Vertex, nv+len(p.edges))
	p.evenVertices(m, vertices[:nv])
	p.oddVertices(m, vertices[nv:])
	triangles := p.triangles(m.Triangles)

	log.Debug("subdiv: subdivided",
		"vertices", nv, "edges", len(p.edges), "triangles", len(m.Triangles),
		"newVertices", len(vertices), "newTriangles", len(triangles))

	m.Vertices = vertices
	m.Triangles = triangles
	if o.recomputeNormals {
		m.RecomputeNormals()
	}
	return nil
}

// Subdivide applies one pass of Loop subdivision to m.
// See the package-level Subdivide for details.
func (m *Mesh) Subdivide(opts ...Option) error {
	return Subdivide(m, opts...)
}
