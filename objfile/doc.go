// Package objfile reads and writes subdiv meshes as Wavefront OBJ text.
//
// Supported elements are v (optionally followed by an r g b vertex color),
// vt, vn and f. Faces with more than three corners are fan-triangulated.
// Grouping, material and smoothing statements are accepted and ignored.
//
// OBJ indexes positions, texture coordinates and normals separately, while
// subdiv.Mesh uses one index per vertex. Read therefore creates one mesh
// vertex per distinct (v, vt, vn) corner triple. Corners that share a
// position but differ in texture coordinate or normal become separate
// vertices, so such seams appear as mesh boundaries during subdivision.
package objfile
