package topology

import "math"

// None marks a missing triangle or vertex in neighbour tables.
const None = -1

// maxIndex is the largest vertex index an EdgeKey can hold.
const maxIndex = math.MaxUint32

// Triangle holds three vertex indices in winding order.
type Triangle [3]int

// Edge returns the endpoints of edge slot i, i.e. (t[i], t[(i+1)%3]).
func (t Triangle) Edge(i int) (int, int) {
	return t[i], t[(i+1)%3]
}

// Opposite returns the vertex of t that is neither u nor v, or None if t
// does not contain both.
func (t Triangle) Opposite(u, v int) int {
	for i := 0; i < 3; i++ {
		a, b := t.Edge(i)
		if (a == u && b == v) || (a == v && b == u) {
			return t[(i+2)%3]
		}
	}
	return None
}

// EdgeKey identifies an unordered vertex pair.
// The smaller index occupies the low 32 bits, the larger the high 32 bits,
// so key(u, v) == key(v, u) and distinct pairs never collide.
type EdgeKey uint64

// NewEdgeKey returns the canonical key of the edge (u, v).
func NewEdgeKey(u, v int) (EdgeKey, error) {
	if u == v {
		return 0, &InvalidEdgeError{Triangle: None, Vertex: u}
	}
	for _, i := range [2]int{u, v} {
		if i < 0 || uint64(i) > maxIndex {
			return 0, &IndexOutOfRangeError{Triangle: None, Index: i}
		}
	}
	return packKey(u, v), nil
}

// packKey assumes u != v and both are in range.
func packKey(u, v int) EdgeKey {
	if v < u {
		u, v = v, u
	}
	return EdgeKey(uint64(u) | uint64(v)<<32)
}

// Endpoints returns the edge's vertices, smaller index first.
func (k EdgeKey) Endpoints() (lo, hi int) {
	return int(uint32(k)), int(uint32(k >> 32))
}
