package subdiv

import "github.com/gogpu/subdiv/topology"

// ErrUnsafeMesh is wrapped by every error that rejects a mesh for
// subdivision. Use errors.Is to test for it.
var ErrUnsafeMesh = topology.ErrUnsafeMesh

// Error types reported by Subdivide and Validate.
type (
	// InvalidEdgeError reports a triangle with two equal vertex indices.
	InvalidEdgeError = topology.InvalidEdgeError

	// NonManifoldMeshError reports an edge shared by more than two triangles
	// or a boundary vertex without exactly two boundary neighbours.
	NonManifoldMeshError = topology.NonManifoldMeshError

	// IndexOutOfRangeError reports a triangle referencing a missing vertex.
	IndexOutOfRangeError = topology.IndexOutOfRangeError
)
