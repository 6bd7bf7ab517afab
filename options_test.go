package subdiv

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.recomputeNormals {
		t.Error("recomputeNormals should be off by default")
	}
}

func TestWithRecomputeNormals(t *testing.T) {
	o := defaultOptions()
	WithRecomputeNormals()(&o)
	if !o.recomputeNormals {
		t.Error("WithRecomputeNormals did not enable recomputeNormals")
	}
}
