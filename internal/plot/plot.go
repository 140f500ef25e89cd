// Package plot renders a GRPF run's diagnostic state — the final
// triangulation, its candidate edges, and the located zeros/poles — to a
// PNG, and (when run from a terminal that supports it) streams the image
// inline via iTerm2's imgcat protocol. Debugging aid only; grpf.Run never
// imports it.
package plot

import (
	"math"
	"os"

	"github.com/EP-Guy/grpf/delaunay"
	"github.com/EP-Guy/grpf/geom"
	"github.com/EP-Guy/grpf/grpf"
	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

const padding = 20

// Options controls what a Render call draws.
type Options struct {
	Scale      float64 // pixels per coordinate unit; 0 picks a size-appropriate default
	OutputPath string  // PNG destination; "" uses /tmp/grpf.png
	Stream     bool    // also imgcat the PNG to stdout
}

// Render draws res's tessellation (in its own scaled coordinate system,
// the same space refinement ran in) with candidate edges highlighted and
// the located zeros and poles marked, and writes it to disk.
func Render(res grpf.Result, opts Options) error {
	minX, minY, maxX, maxY := bounds(res.Points)

	scale := opts.Scale
	if scale == 0 {
		scale = pickScale(maxX-minX, maxY-minY)
	}

	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	drawTriangles(c, res.Points, res.Tess.Triangles())
	drawCandidateEdges(c, res.Points, res.PhaseDiffs)
	drawMarkers(c, res, scale)

	path := opts.OutputPath
	if path == "" {
		path = "/tmp/grpf.png"
	}
	if err := c.SavePNG(path); err != nil {
		return err
	}
	if opts.Stream {
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}

func bounds(points map[int]*geom.Point) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return
}

func pickScale(w, h float64) float64 {
	const target = 800
	span := math.Max(w, h)
	if span == 0 {
		return 1
	}
	return target / span
}

func drawTriangles(c *gg.Context, points map[int]*geom.Point, tris []delaunay.Triangle) {
	c.SetLineWidth(1)
	c.SetRGB(0.75, 0.75, 0.75)
	for _, tri := range tris {
		a, b, d := points[tri.A], points[tri.B], points[tri.C]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(d.X, d.Y)
		c.ClosePath()
	}
	c.Stroke()
}

func drawCandidateEdges(c *gg.Context, points map[int]*geom.Point, diffs map[delaunay.Edge]int) {
	c.SetLineWidth(2)
	c.SetRGB(0, 0.4, 1)
	for e, d := range diffs {
		if d != 2 && d != -2 {
			continue
		}
		a, b := points[e.A], points[e.B]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
	}
	c.Stroke()
}

func drawMarkers(c *gg.Context, res grpf.Result, scale float64) {
	radius := 4 / scale
	if radius < 0.01 {
		radius = 0.01
	}

	mark := func(points []complex128, x, g, l float64) {
		c.SetRGB(x, g, l)
		for _, z := range points {
			sx, sy := res.Scale.Forward(z)
			c.DrawCircle(sx, sy, radius)
			c.Fill()
		}
	}
	mark(res.Zeros, 0, 0.7, 0)
	mark(res.Poles, 0.9, 0, 0)
}
