// Package subdiv provides Loop subdivision for triangle meshes.
//
// # Overview
//
// subdiv takes an indexed triangle mesh and refines it with one uniform pass
// of Loop subdivision. Every triangle is split into four, one new ("odd")
// vertex is inserted per edge, and every original ("even") vertex is moved
// towards a weighted average of its neighbours. Repeated passes converge to a
// smooth surface.
//
// # Quick Start
//
//	import "github.com/gogpu/subdiv"
//
//	m := &subdiv.Mesh{
//	    Vertices: []subdiv.Vertex{
//	        {Position: r3.Vec{X: 0, Y: 0, Z: 0}},
//	        {Position: r3.Vec{X: 1, Y: 0, Z: 0}},
//	        {Position: r3.Vec{X: 0, Y: 1, Z: 0}},
//	    },
//	    Triangles: []subdiv.Triangle{{0, 1, 2}},
//	}
//
//	if err := m.Subdivide(); err != nil {
//	    log.Fatal(err)
//	}
//	// m now has 6 vertices and 4 triangles.
//
// # Weighting Rules
//
// Odd vertices:
//   - Interior edge (u, v) with opposite vertices a, b: 3/8(u+v) + 1/8(a+b)
//   - Boundary edge (u, v): 1/2(u+v)
//
// Even vertices:
//   - Interior vertex of valence n: (1-nβ)v + βΣp, β = 3/(8n), or 3/16 for n ≤ 3
//   - Boundary vertex with boundary neighbours l, r: 3/4 v + 1/8(l+r)
//
// All weights read the mesh as it was before the call.
//
// # Attributes
//
// Normals, texture coordinates and colors of odd vertices are interpolated
// with the same weights as positions when the corresponding Has* flag is set.
// Even vertices get re-weighted normals; their texture coordinates and colors
// are kept.
//
// # Errors
//
// Subdivide is atomic: on error the mesh is left untouched. Meshes with
// out-of-range indices, degenerate triangles, edges shared by more than two
// triangles or pinched boundary vertices are rejected; all such errors
// satisfy errors.Is(err, ErrUnsafeMesh).
//
// # Architecture
//
// The library is organized into:
//   - Public API: Mesh, Vertex, Subdivide, options, logging
//   - topology: edge keys, adjacency builder, edge registry
//   - objfile: Wavefront OBJ import and export
//   - internal/preview: wireframe PNG rendering for the meshdiv command
package subdiv

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
