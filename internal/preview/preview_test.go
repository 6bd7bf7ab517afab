package preview

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/gogpu/subdiv"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func triangleMesh() *subdiv.Mesh {
	return &subdiv.Mesh{
		Vertices: []subdiv.Vertex{
			{Position: r3.Vec{X: 0, Y: 0}},
			{Position: r3.Vec{X: 1, Y: 0}},
			{Position: r3.Vec{X: 0, Y: 1}},
		},
		Triangles: []subdiv.Triangle{{0, 1, 2}},
	}
}

func testOptions() Options {
	o := DefaultOptions()
	o.Width, o.Height = 100, 100
	o.Margin = 10
	o.LineWidth = 4
	return o
}

func isDark(img *image.RGBA, x, y int) bool {
	c := img.RGBAAt(x, y)
	return c.R < 64 && c.G < 64 && c.B < 64
}

func TestRender_DrawsEdges(t *testing.T) {
	img := Render(triangleMesh(), testOptions())

	if got := img.Bounds().Size(); got != image.Pt(100, 100) {
		t.Fatalf("image size = %v, want 100x100", got)
	}
	// Edge (0,0)-(1,0) maps to pixel row 90, x from 10 to 90.
	if !isDark(img, 50, 89) {
		t.Errorf("pixel (50,89) = %v, want wire color", img.RGBAAt(50, 89))
	}
	// Edge (0,0)-(0,1) maps to pixel column 10.
	if !isDark(img, 10, 50) {
		t.Errorf("pixel (10,50) = %v, want wire color", img.RGBAAt(10, 50))
	}
	// Outside the triangle.
	if c := img.RGBAAt(80, 20); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("pixel (80,20) = %v, want background", c)
	}
	// Inside the triangle, away from the edges.
	if c := img.RGBAAt(30, 70); c.R != 255 {
		t.Errorf("pixel (30,70) = %v, want background", c)
	}
}

func TestRender_EmptyMesh(t *testing.T) {
	o := testOptions()
	o.Background = subdiv.RGB(1, 0, 0)
	img := Render(&subdiv.Mesh{}, o)
	if c := img.RGBAAt(50, 50); c.R != 255 || c.G != 0 {
		t.Errorf("pixel (50,50) = %v, want red background", c)
	}
}

func TestRender_SkipsBadTriangles(t *testing.T) {
	m := triangleMesh()
	m.Triangles = append(m.Triangles, subdiv.Triangle{0, 1, 7}, subdiv.Triangle{1, 1, 2})
	img := Render(m, testOptions())
	if !isDark(img, 50, 89) {
		t.Error("valid edges not drawn when bad triangles are present")
	}
}

func TestRender_InvalidSizeFallsBack(t *testing.T) {
	img := Render(triangleMesh(), Options{})
	def := DefaultOptions()
	if got := img.Bounds().Size(); got != image.Pt(def.Width, def.Height) {
		t.Errorf("image size = %v, want %dx%d", got, def.Width, def.Height)
	}
}

func TestView_Project(t *testing.T) {
	p := r3.Vec{X: 1, Y: 2, Z: 3}
	tests := []struct {
		view View
		want r2.Vec
	}{
		{ViewFront, r2.Vec{X: 1, Y: 2}},
		{ViewTop, r2.Vec{X: 1, Y: -3}},
		{ViewSide, r2.Vec{X: -3, Y: 2}},
	}
	for _, tt := range tests {
		if got := tt.view.project(p); got != tt.want {
			t.Errorf("%v.project(%v) = %v, want %v", tt.view, p, got, tt.want)
		}
	}
}

func TestParseView(t *testing.T) {
	for _, v := range []View{ViewFront, ViewTop, ViewSide} {
		got, err := ParseView(v.String())
		if err != nil || got != v {
			t.Errorf("ParseView(%q) = %v, %v, want %v", v.String(), got, err, v)
		}
	}
	if _, err := ParseView("iso"); err == nil {
		t.Error("ParseView(\"iso\") should fail")
	}
}

func TestWritePNG(t *testing.T) {
	img := Render(triangleMesh(), testOptions())
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG() error: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}
