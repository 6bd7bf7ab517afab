// Command meshdiv applies Loop subdivision to a Wavefront OBJ mesh.
//
// Usage:
//
//	meshdiv -in bunny.obj -out bunny2.obj -levels 2 -preview bunny2.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/subdiv"
	"github.com/gogpu/subdiv/internal/preview"
	"github.com/gogpu/subdiv/objfile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type config struct {
	input, output string
	levels        int
	normals       bool
	previewPath   string
	view          string
	size          int
	wire          string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.input, "in", "", "input OBJ file (required)")
	flag.StringVar(&cfg.output, "out", "subdivided.obj", "output OBJ file")
	flag.IntVar(&cfg.levels, "levels", 1, "number of subdivision passes")
	flag.BoolVar(&cfg.normals, "normals", false, "recompute normals after every pass")
	flag.StringVar(&cfg.previewPath, "preview", "", "also write a wireframe PNG of the result")
	flag.StringVar(&cfg.view, "view", "front", "preview projection: front, top or side")
	flag.IntVar(&cfg.size, "size", 512, "preview image size in pixels")
	flag.StringVar(&cfg.wire, "wire", "#000", "preview wire color")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		subdiv.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg, os.Stdout); err != nil {
		if errors.Is(err, subdiv.ErrUnsafeMesh) {
			log.Fatalf("%s cannot be subdivided: %v", cfg.input, err)
		}
		log.Fatalf("meshdiv: %v", err)
	}
}

func run(cfg config, stdout io.Writer) error {
	if cfg.input == "" {
		return errors.New("-in is required")
	}
	if cfg.levels < 0 {
		return fmt.Errorf("-levels must not be negative, got %d", cfg.levels)
	}
	view, err := preview.ParseView(cfg.view)
	if err != nil {
		return err
	}

	m, err := objfile.ReadFile(cfg.input)
	if err != nil {
		return err
	}
	p := message.NewPrinter(language.English)
	if err := report(p, stdout, "input", m); err != nil {
		return err
	}

	var opts []subdiv.Option
	if cfg.normals {
		opts = append(opts, subdiv.WithRecomputeNormals())
	}
	for level := 1; level <= cfg.levels; level++ {
		if err := m.Subdivide(opts...); err != nil {
			return fmt.Errorf("level %d: %w", level, err)
		}
		if err := report(p, stdout, fmt.Sprintf("level %d", level), m); err != nil {
			return err
		}
	}

	if err := objfile.WriteFile(cfg.output, m); err != nil {
		return err
	}
	p.Fprintf(stdout, "wrote %s\n", cfg.output)

	if cfg.previewPath == "" {
		return nil
	}
	o := preview.DefaultOptions()
	o.Width, o.Height = cfg.size, cfg.size
	o.View = view
	o.Wire = subdiv.Hex(cfg.wire)
	return writePreview(cfg.previewPath, m, o, p, stdout)
}

// report prints vertex, edge and triangle counts of m.
func report(p *message.Printer, w io.Writer, label string, m *subdiv.Mesh) error {
	adj, err := m.Adjacency()
	if err != nil {
		return err
	}
	p.Fprintf(w, "%-8s %d vertices, %d edges, %d triangles\n",
		label+":", adj.VertexCount(), adj.EdgeCount(), adj.TriangleCount())
	return nil
}

func writePreview(path string, m *subdiv.Mesh, o preview.Options, p *message.Printer, stdout io.Writer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := preview.WritePNG(f, preview.Render(m, o)); err != nil {
		return err
	}
	p.Fprintf(stdout, "wrote %s (%dx%d, %s view)\n", path, o.Width, o.Height, o.View)
	return nil
}
