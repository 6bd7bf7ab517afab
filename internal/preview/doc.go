// Package preview renders a wireframe image of a mesh.
//
// The mesh is projected orthographically onto one of the axis planes,
// scaled to fit the image and every distinct edge is drawn as a thin quad.
// Rasterization uses golang.org/x/image/vector, so output is anti-aliased.
//
// The package exists for the meshdiv command's -preview flag. It is not a
// renderer: there is no depth, shading or hidden-line removal.
package preview
