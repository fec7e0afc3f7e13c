// Package scenes holds demo triangle sets that exercise the renderer: right
// triangles in both orientations, general triangles, and strips of triangles
// sharing edges so seams and overlaps are visible.
package scenes

import (
	"image/color"
	"sort"

	"chosenoffset.com/alphatri/internal/core/vecmath"
	"chosenoffset.com/alphatri/internal/render"
)

// Triangle is three points in any order.
type Triangle [3]vecmath.Vec2

// Group is a set of triangles drawn in one color.
type Group struct {
	Color     color.NRGBA
	Triangles []Triangle
}

// Scene is a named list of groups, laid out for a 1920x1080 canvas.
type Scene struct {
	Name        string
	Description string
	Groups      []Group
}

// TriangleRenderer is the part of triangle.Renderer a scene needs.
type TriangleRenderer interface {
	Render(canvas render.Canvas, p1, p2, p3 vecmath.Vec2)
}

// Opaque draws triangles as plain fills. It is the comparison path for the
// tile renderer and ignores the color's alpha on backends without blending.
type Opaque struct{}

// Render fills p1 p2 p3 with the canvas color.
func (Opaque) Render(canvas render.Canvas, p1, p2, p3 vecmath.Vec2) {
	canvas.FillTriangle(p1, p2, p3)
}

// DrawOptions controls optional decorations.
type DrawOptions struct {
	Outline      bool
	OutlineWidth float64
}

// Draw renders every triangle of the scene, optionally outlining each one in
// its group color.
func (s Scene) Draw(canvas render.Canvas, r TriangleRenderer, opts DrawOptions) {
	for _, g := range s.Groups {
		canvas.SetColor(g.Color)
		for _, tri := range g.Triangles {
			r.Render(canvas, tri[0], tri[1], tri[2])
			if opts.Outline {
				canvas.DrawLine(tri[0], tri[1], opts.OutlineWidth)
				canvas.DrawLine(tri[1], tri[2], opts.OutlineWidth)
				canvas.DrawLine(tri[2], tri[0], opts.OutlineWidth)
			}
		}
	}
}

// TriangleCount returns the number of triangles in the scene.
func (s Scene) TriangleCount() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Triangles)
	}
	return n
}

func pt(x, y float64) vecmath.Vec2 { return vecmath.Vec2{X: x, Y: y} }

// strip turns points p1..pn into the triangles (p1,p2,p3), (p2,p3,p4), ...
func strip(points ...vecmath.Vec2) []Triangle {
	var tris []Triangle
	for i := 0; i+2 < len(points); i++ {
		tris = append(tris, Triangle{points[i], points[i+1], points[i+2]})
	}
	return tris
}

var registry = map[string]Scene{
	"basic": {
		Name:        "basic",
		Description: "right, mirrored right and two general triangles",
		Groups: []Group{
			{Color: color.NRGBA{0, 0, 0, 127}, Triangles: []Triangle{{pt(200, 200), pt(500, 200), pt(500, 400)}}},
			{Color: color.NRGBA{255, 0, 0, 127}, Triangles: []Triangle{{pt(800, 200), pt(500, 200), pt(500, 400)}}},
			{Color: color.NRGBA{0, 255, 0, 127}, Triangles: []Triangle{{pt(700, 700), pt(300, 600), pt(200, 500)}}},
			{Color: color.NRGBA{0, 255, 255, 127}, Triangles: []Triangle{{pt(1000, 400), pt(1800, 100), pt(1600, 1000)}}},
		},
	},
	"touching": {
		Name:        "touching",
		Description: "strips of triangles sharing edges",
		Groups: []Group{
			{Color: color.NRGBA{255, 0, 255, 127}, Triangles: strip(pt(1500, 100), pt(1600, 1000), pt(1700, 100), pt(1800, 1000), pt(1900, 100))},
			{Color: color.NRGBA{0, 255, 255, 127}, Triangles: strip(pt(100, 600), pt(1900, 700), pt(100, 800), pt(1900, 900), pt(100, 1000))},
			{Color: color.NRGBA{255, 255, 0, 127}, Triangles: strip(pt(0, 200), pt(1500, 800), pt(100, 100), pt(1550, 750), pt(200, 0))},
		},
	},
}

// Lookup returns the scene with the given name.
func Lookup(name string) (Scene, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names returns all scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
