package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gogpu/subdiv"
)

// Write encodes m as OBJ text. Texture coordinates, normals and vertex
// colors are written when the corresponding mesh flag is set. Every mesh
// vertex gets its own v, vt and vn entry, so face corners use one index.
func Write(w io.Writer, m *subdiv.Mesh) error {
	bw := bufio.NewWriter(w)
	var buf []byte

	fmt.Fprintf(bw, "# subdiv %s: %d vertices, %d triangles\n",
		subdiv.Version, len(m.Vertices), len(m.Triangles))

	for _, v := range m.Vertices {
		buf = append(buf[:0], 'v')
		buf = appendFloats(buf, v.Position.X, v.Position.Y, v.Position.Z)
		if m.HasColors {
			buf = appendFloats(buf, v.Color.R, v.Color.G, v.Color.B)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	if m.HasTexCoords {
		for _, v := range m.Vertices {
			buf = append(buf[:0], 'v', 't')
			buf = appendFloats(buf, v.TexCoord.X, v.TexCoord.Y)
			buf = append(buf, '\n')
			bw.Write(buf)
		}
	}
	if m.HasNormals {
		for _, v := range m.Vertices {
			buf = append(buf[:0], 'v', 'n')
			buf = appendFloats(buf, v.Normal.X, v.Normal.Y, v.Normal.Z)
			buf = append(buf, '\n')
			bw.Write(buf)
		}
	}

	for _, t := range m.Triangles {
		buf = append(buf[:0], 'f')
		for _, i := range t {
			buf = appendCorner(buf, i+1, m.HasTexCoords, m.HasNormals)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("objfile: write: %w", err)
	}
	return nil
}

// WriteFile writes m to the OBJ file at path, replacing it if it exists.
func WriteFile(path string, m *subdiv.Mesh) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("objfile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("objfile: %w", cerr)
		}
	}()
	return Write(f, m)
}

func appendFloats(buf []byte, vals ...float64) []byte {
	for _, v := range vals {
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
	}
	return buf
}

func appendCorner(buf []byte, i int, uv, normal bool) []byte {
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(i), 10)
	switch {
	case uv && normal:
		buf = append(buf, '/')
		buf = strconv.AppendInt(buf, int64(i), 10)
		buf = append(buf, '/')
		buf = strconv.AppendInt(buf, int64(i), 10)
	case uv:
		buf = append(buf, '/')
		buf = strconv.AppendInt(buf, int64(i), 10)
	case normal:
		buf = append(buf, '/', '/')
		buf = strconv.AppendInt(buf, int64(i), 10)
	}
	return buf
}
