package topology

import (
	"errors"
	"testing"
)

func TestNewEdgeKey_Symmetric(t *testing.T) {
	for u := 0; u < 16; u++ {
		for v := 0; v < 16; v++ {
			if u == v {
				continue
			}
			a, err := NewEdgeKey(u, v)
			if err != nil {
				t.Fatalf("NewEdgeKey(%d, %d) error: %v", u, v, err)
			}
			b, err := NewEdgeKey(v, u)
			if err != nil {
				t.Fatalf("NewEdgeKey(%d, %d) error: %v", v, u, err)
			}
			if a != b {
				t.Errorf("NewEdgeKey(%d, %d) = %d, NewEdgeKey(%d, %d) = %d", u, v, a, v, u, b)
			}
		}
	}
}

func TestNewEdgeKey_Distinct(t *testing.T) {
	seen := make(map[EdgeKey][2]int)
	for u := 0; u < 32; u++ {
		for v := u + 1; v < 32; v++ {
			k, err := NewEdgeKey(u, v)
			if err != nil {
				t.Fatalf("NewEdgeKey(%d, %d) error: %v", u, v, err)
			}
			if prev, ok := seen[k]; ok {
				t.Fatalf("NewEdgeKey(%d, %d) collides with %v", u, v, prev)
			}
			seen[k] = [2]int{u, v}
		}
	}
}

func TestNewEdgeKey_LargeIndices(t *testing.T) {
	tests := []struct {
		name string
		a, b [2]int
	}{
		{"high bits", [2]int{0, maxIndex}, [2]int{1, maxIndex}},
		{"swap halves", [2]int{1, 2}, [2]int{2, 1 << 31}},
		{"adjacent max", [2]int{maxIndex - 1, maxIndex}, [2]int{maxIndex - 2, maxIndex}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ka, err := NewEdgeKey(tt.a[0], tt.a[1])
			if err != nil {
				t.Fatal(err)
			}
			kb, err := NewEdgeKey(tt.b[0], tt.b[1])
			if err != nil {
				t.Fatal(err)
			}
			if ka == kb {
				t.Errorf("keys of %v and %v collide", tt.a, tt.b)
			}
		})
	}
}

func TestEdgeKey_Endpoints(t *testing.T) {
	k, err := NewEdgeKey(42, 7)
	if err != nil {
		t.Fatal(err)
	}
	lo, hi := k.Endpoints()
	if lo != 7 || hi != 42 {
		t.Errorf("Endpoints() = (%d, %d), want (7, 42)", lo, hi)
	}
}

func TestNewEdgeKey_Degenerate(t *testing.T) {
	_, err := NewEdgeKey(3, 3)
	var ie *InvalidEdgeError
	if !errors.As(err, &ie) {
		t.Fatalf("NewEdgeKey(3, 3) error = %v, want *InvalidEdgeError", err)
	}
	if ie.Vertex != 3 || ie.Triangle != None {
		t.Errorf("InvalidEdgeError = %+v, want Vertex 3, Triangle None", ie)
	}
	if !errors.Is(err, ErrUnsafeMesh) {
		t.Error("InvalidEdgeError should unwrap to ErrUnsafeMesh")
	}
}

func TestNewEdgeKey_OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		u, v int
	}{
		{"negative", -1, 2},
		{"too large", 0, maxIndex + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEdgeKey(tt.u, tt.v)
			var oe *IndexOutOfRangeError
			if !errors.As(err, &oe) {
				t.Errorf("NewEdgeKey(%d, %d) error = %v, want *IndexOutOfRangeError", tt.u, tt.v, err)
			}
		})
	}
}

func TestTriangle_Opposite(t *testing.T) {
	tri := Triangle{4, 5, 6}
	tests := []struct {
		u, v, want int
	}{
		{4, 5, 6},
		{5, 4, 6},
		{5, 6, 4},
		{6, 4, 5},
		{4, 7, None},
	}
	for _, tt := range tests {
		if got := tri.Opposite(tt.u, tt.v); got != tt.want {
			t.Errorf("Opposite(%d, %d) = %d, want %d", tt.u, tt.v, got, tt.want)
		}
	}
}
