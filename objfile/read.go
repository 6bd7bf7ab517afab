package objfile

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/subdiv"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// corner is one face corner: 0-based position, texture coordinate and
// normal indices, -1 where absent.
type corner struct {
	v, vt, vn int
}

type reader struct {
	positions []r3.Vec
	colors    []subdiv.RGBA
	colored   []bool
	uvs       []r2.Vec
	normals   []r3.Vec

	mesh  *subdiv.Mesh
	faces [][3]corner
}

// Read parses OBJ text from r.
func Read(r io.Reader) (*subdiv.Mesh, error) {
	rd := &reader{mesh: &subdiv.Mesh{}}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		if err := rd.parseLine(sc.Text()); err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("objfile: read: %w", err)
	}
	rd.build()

	subdiv.Logger().Debug("objfile: parsed",
		"positions", len(rd.positions), "vertices", len(rd.mesh.Vertices),
		"triangles", len(rd.mesh.Triangles))
	return rd.mesh, nil
}

// ReadFile parses the OBJ file at path.
func ReadFile(path string) (*subdiv.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objfile: %w", err)
	}
	defer f.Close()
	return Read(f)
}

func (rd *reader) parseLine(text string) error {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "v":
		return rd.parseVertex(fields[1:])
	case "vt":
		vals, err := parseFloats(fields[1:], 1)
		if err != nil {
			return err
		}
		uv := r2.Vec{X: vals[0]}
		if len(vals) > 1 {
			uv.Y = vals[1]
		}
		rd.uvs = append(rd.uvs, uv)
	case "vn":
		vals, err := parseFloats(fields[1:], 3)
		if err != nil {
			return err
		}
		rd.normals = append(rd.normals, r3.Vec{X: vals[0], Y: vals[1], Z: vals[2]})
	case "f":
		return rd.parseFace(fields[1:])
	}
	// o, g, s, usemtl, mtllib, l, p and unknown statements are ignored.
	return nil
}

func (rd *reader) parseVertex(fields []string) error {
	vals, err := parseFloats(fields, 3)
	if err != nil {
		return err
	}
	rd.positions = append(rd.positions, r3.Vec{X: vals[0], Y: vals[1], Z: vals[2]})

	// "v x y z r g b" is a common vertex color extension; "v x y z w" is not.
	var c subdiv.RGBA
	colored := len(vals) >= 6
	if colored {
		c = subdiv.RGB(vals[3], vals[4], vals[5])
		rd.mesh.HasColors = true
	}
	rd.colors = append(rd.colors, c)
	rd.colored = append(rd.colored, colored)
	return nil
}

func (rd *reader) parseFace(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("%w: face has %d corners", ErrTooFewFields, len(fields))
	}
	cs := make([]corner, len(fields))
	for i, f := range fields {
		c, err := rd.parseCorner(f)
		if err != nil {
			return err
		}
		cs[i] = c
	}
	for i := 1; i < len(cs)-1; i++ {
		rd.faces = append(rd.faces, [3]corner{cs[0], cs[i], cs[i+1]})
	}
	return nil
}

// parseCorner parses "v", "v/vt", "v//vn" or "v/vt/vn".
func (rd *reader) parseCorner(s string) (corner, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return corner{}, fmt.Errorf("objfile: malformed face corner %q", s)
	}
	c := corner{v: -1, vt: -1, vn: -1}
	var err error
	if c.v, err = resolveIndex(parts[0], len(rd.positions)); err != nil {
		return corner{}, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.vt, err = resolveIndex(parts[1], len(rd.uvs)); err != nil {
			return corner{}, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.vn, err = resolveIndex(parts[2], len(rd.normals)); err != nil {
			return corner{}, err
		}
	}
	return c, nil
}

// build creates one mesh vertex per distinct corner, ordered by position,
// texture coordinate and normal index, so a file written by Write reads back
// with the same vertex order.
func (rd *reader) build() {
	index := make(map[corner]int)
	var unique []corner
	for _, f := range rd.faces {
		for _, c := range f {
			if _, ok := index[c]; !ok {
				index[c] = 0
				unique = append(unique, c)
			}
		}
	}
	slices.SortFunc(unique, func(a, b corner) int {
		if a.v != b.v {
			return cmp.Compare(a.v, b.v)
		}
		if a.vt != b.vt {
			return cmp.Compare(a.vt, b.vt)
		}
		return cmp.Compare(a.vn, b.vn)
	})

	m := rd.mesh
	m.Vertices = make([]subdiv.Vertex, len(unique))
	for i, c := range unique {
		index[c] = i
		v := subdiv.Vertex{Position: rd.positions[c.v], Color: rd.colors[c.v]}
		if m.HasColors && !rd.colored[c.v] {
			v.Color = subdiv.White
		}
		if c.vt >= 0 {
			v.TexCoord = rd.uvs[c.vt]
			m.HasTexCoords = true
		}
		if c.vn >= 0 {
			v.Normal = rd.normals[c.vn]
			m.HasNormals = true
		}
		m.Vertices[i] = v
	}

	m.Triangles = make([]subdiv.Triangle, len(rd.faces))
	for i, f := range rd.faces {
		m.Triangles[i] = subdiv.Triangle{index[f[0]], index[f[1]], index[f[2]]}
	}
}

// resolveIndex converts a 1-based or negative relative OBJ index into a
// 0-based index into a list of length n.
func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("objfile: bad index %q: %w", s, err)
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	}
	return 0, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, n)
}

func parseFloats(fields []string, want int) ([]float64, error) {
	if len(fields) < want {
		return nil, fmt.Errorf("%w: want %d values, have %d", ErrTooFewFields, want, len(fields))
	}
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("objfile: bad number %q: %w", f, err)
		}
		vals[i] = v
	}
	return vals, nil
}
