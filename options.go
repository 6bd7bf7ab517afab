package subdiv

// Option configures a Subdivide call.
//
// Example:
//
//	// Interpolate loader-supplied normals (default)
//	err := m.Subdivide()
//
//	// Rebuild normals from the refined geometry instead
//	err := m.Subdivide(subdiv.WithRecomputeNormals())
type Option func(*options)

// options holds optional configuration for Subdivide.
type options struct {
	recomputeNormals bool
}

// defaultOptions returns the default subdivision options.
func defaultOptions() options {
	return options{}
}

// WithRecomputeNormals replaces the interpolated normals of the refined mesh
// by area-weighted face normals, see [Mesh.RecomputeNormals]. The mesh is
// marked as having normals afterwards.
func WithRecomputeNormals() Option {
	return func(o *options) {
		o.recomputeNormals = true
	}
}
