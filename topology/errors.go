package topology

import (
	"errors"
	"fmt"
)

// Sentinel errors for topology package.
var (
	// ErrUnsafeMesh is wrapped by every error that makes a mesh unusable for
	// subdivision.
	ErrUnsafeMesh = errors.New("topology: mesh is not subdivision-safe")

	// ErrEdgeNotInTriangle is returned when an edge is registered on behalf of
	// a triangle that does not contain both endpoints.
	ErrEdgeNotInTriangle = errors.New("topology: edge does not belong to triangle")
)

// InvalidEdgeError is returned for an edge whose endpoints are equal.
type InvalidEdgeError struct {
	// Triangle is the triangle containing the edge, or None if unknown.
	Triangle int
	// Vertex is the repeated vertex index.
	Vertex int
}

func (e *InvalidEdgeError) Error() string {
	if e.Triangle == None {
		return fmt.Sprintf("topology: degenerate edge (%d,%d)", e.Vertex, e.Vertex)
	}
	return fmt.Sprintf("topology: triangle %d has degenerate edge (%d,%d)", e.Triangle, e.Vertex, e.Vertex)
}

func (e *InvalidEdgeError) Unwrap() error { return ErrUnsafeMesh }

// NonManifoldMeshError is returned when an edge is shared by more than two
// triangles, or when a vertex does not have exactly two boundary neighbours.
type NonManifoldMeshError struct {
	// Edge is the offending edge. Only meaningful when Vertex is None.
	Edge [2]int
	// Vertex is the offending vertex, or None for an edge failure.
	Vertex int
	// Count is the number of triangles sharing Edge, or the number of
	// boundary neighbours of Vertex.
	Count int
}

func (e *NonManifoldMeshError) Error() string {
	if e.Vertex == None {
		return fmt.Sprintf("topology: edge (%d,%d) is shared by %d triangles", e.Edge[0], e.Edge[1], e.Count)
	}
	return fmt.Sprintf("topology: boundary vertex %d has %d boundary neighbors", e.Vertex, e.Count)
}

func (e *NonManifoldMeshError) Unwrap() error { return ErrUnsafeMesh }

// IndexOutOfRangeError is returned when a triangle references a vertex
// outside [0, VertexCount).
type IndexOutOfRangeError struct {
	Triangle    int
	Index       int
	VertexCount int
}

func (e *IndexOutOfRangeError) Error() string {
	if e.Triangle == None {
		return fmt.Sprintf("topology: vertex index %d out of range", e.Index)
	}
	return fmt.Sprintf("topology: triangle %d references vertex %d, have %d vertices",
		e.Triangle, e.Index, e.VertexCount)
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrUnsafeMesh }
