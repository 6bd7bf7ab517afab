package preview

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/gogpu/subdiv"
	"github.com/gogpu/subdiv/topology"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// View selects the projection plane.
type View int

const (
	// ViewFront looks down -Z: image x = X, image y = Y.
	ViewFront View = iota
	// ViewTop looks down -Y: image x = X, image y = -Z.
	ViewTop
	// ViewSide looks down -X: image x = -Z, image y = Y.
	ViewSide
)

// String returns the flag name of the view.
func (v View) String() string {
	switch v {
	case ViewFront:
		return "front"
	case ViewTop:
		return "top"
	case ViewSide:
		return "side"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// ParseView parses "front", "top" or "side".
func ParseView(s string) (View, error) {
	for _, v := range []View{ViewFront, ViewTop, ViewSide} {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("preview: unknown view %q", s)
}

func (v View) project(p r3.Vec) r2.Vec {
	switch v {
	case ViewTop:
		return r2.Vec{X: p.X, Y: -p.Z}
	case ViewSide:
		return r2.Vec{X: -p.Z, Y: p.Y}
	default:
		return r2.Vec{X: p.X, Y: p.Y}
	}
}

// Options configures Render.
type Options struct {
	Width, Height int
	// Margin is the empty border around the mesh, in pixels.
	Margin float64
	// LineWidth is the wire thickness, in pixels.
	LineWidth  float64
	View       View
	Background subdiv.RGBA
	Wire       subdiv.RGBA
}

// DefaultOptions returns a 512x512 black-on-white front view.
func DefaultOptions() Options {
	return Options{
		Width:      512,
		Height:     512,
		Margin:     16,
		LineWidth:  1,
		View:       ViewFront,
		Background: subdiv.White,
		Wire:       subdiv.Black,
	}
}

// Render draws the edges of m. Triangles with out-of-range or repeated
// indices are skipped.
func Render(m *subdiv.Mesh, o Options) *image.RGBA {
	if o.Width <= 0 || o.Height <= 0 {
		o.Width, o.Height = DefaultOptions().Width, DefaultOptions().Height
	}
	if o.LineWidth <= 0 {
		o.LineWidth = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(o.Background), image.Point{}, xdraw.Src)

	pts := make([]r2.Vec, len(m.Vertices))
	for i, v := range m.Vertices {
		pts[i] = o.View.project(v.Position)
	}
	fit := newFitting(pts, o)

	z := vector.NewRasterizer(o.Width, o.Height)
	seen := make(map[topology.EdgeKey]struct{}, len(m.Triangles)*3/2+1)
	edges := 0
	for _, t := range m.Triangles {
		for s := 0; s < 3; s++ {
			u, v := t.Edge(s)
			if u < 0 || v < 0 || u >= len(pts) || v >= len(pts) {
				continue
			}
			key, err := topology.NewEdgeKey(u, v)
			if err != nil {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if addLine(z, fit.apply(pts[u]), fit.apply(pts[v]), o.LineWidth) {
				edges++
			}
		}
	}
	if edges > 0 {
		z.Draw(img, img.Bounds(), image.NewUniform(o.Wire), image.Point{})
	}

	subdiv.Logger().Debug("preview: rendered", "view", o.View.String(), "edges", edges,
		"width", o.Width, "height", o.Height)
	return img
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("preview: encode png: %w", err)
	}
	return nil
}

// fitting maps projected mesh coordinates to pixel coordinates, preserving
// aspect ratio and flipping the y axis.
type fitting struct {
	scale   float64
	min     r2.Vec
	offset  r2.Vec
	flipTop float64
}

func newFitting(pts []r2.Vec, o Options) fitting {
	if len(pts) == 0 {
		return fitting{scale: 1}
	}
	lo := r2.Vec{X: math.Inf(1), Y: math.Inf(1)}
	hi := r2.Vec{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range pts {
		lo = r2.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y)}
		hi = r2.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y)}
	}
	span := r2.Sub(hi, lo)
	availW := math.Max(float64(o.Width)-2*o.Margin, 1)
	availH := math.Max(float64(o.Height)-2*o.Margin, 1)

	scale := 1.0
	switch {
	case span.X > 0 && span.Y > 0:
		scale = math.Min(availW/span.X, availH/span.Y)
	case span.X > 0:
		scale = availW / span.X
	case span.Y > 0:
		scale = availH / span.Y
	}
	return fitting{
		scale: scale,
		min:   lo,
		offset: r2.Vec{
			X: o.Margin + (availW-span.X*scale)/2,
			Y: o.Margin + (availH-span.Y*scale)/2,
		},
		flipTop: float64(o.Height),
	}
}

func (f fitting) apply(p r2.Vec) r2.Vec {
	q := r2.Add(r2.Scale(f.scale, r2.Sub(p, f.min)), f.offset)
	q.Y = f.flipTop - q.Y
	return q
}

// addLine adds the quad covering segment ab with the given width.
// All quads share one orientation, so overlapping wires accumulate
// coverage instead of cancelling. It reports false for zero-length segments.
func addLine(z *vector.Rasterizer, a, b r2.Vec, width float64) bool {
	d := r2.Sub(b, a)
	l := r2.Norm(d)
	if l == 0 {
		return false
	}
	n := r2.Scale(width/2/l, r2.Vec{X: -d.Y, Y: d.X})

	p0, p1 := r2.Add(a, n), r2.Add(b, n)
	p2, p3 := r2.Sub(b, n), r2.Sub(a, n)
	z.MoveTo(float32(p0.X), float32(p0.Y))
	z.LineTo(float32(p1.X), float32(p1.Y))
	z.LineTo(float32(p2.X), float32(p2.Y))
	z.LineTo(float32(p3.X), float32(p3.Y))
	z.ClosePath()
	return true
}
