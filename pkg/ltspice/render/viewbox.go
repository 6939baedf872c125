package render

import (
	"math"

	"github.com/lt2svg/lt2svg/pkg/ltspice"
)

// ViewBox is the output coordinate window, in scaled units.
type ViewBox struct {
	MinX, MinY, Width, Height float64
}

// Extent margins for entities whose drawn size is not recorded in the
// schematic itself.
const (
	symbolExtent  = 100
	textExtentX   = 50
	textExtentY   = 20
	flagExtent    = 20
	flagExtentMin = 10
)

type bounds struct {
	minX, minY, maxX, maxY float64
	valid                  bool
}

func (b *bounds) add(x1, y1, x2, y2 float64) {
	if !b.valid {
		b.minX, b.minY = math.Inf(1), math.Inf(1)
		b.maxX, b.maxY = math.Inf(-1), math.Inf(-1)
		b.valid = true
	}
	b.minX = math.Min(b.minX, math.Min(x1, x2))
	b.maxX = math.Max(b.maxX, math.Max(x1, x2))
	b.minY = math.Min(b.minY, math.Min(y1, y2))
	b.maxY = math.Max(b.maxY, math.Max(y1, y2))
}

// ComputeViewBox scans the schematic's raw geometry and returns a window
// covering all of it plus proportional padding. Wires count with their raw
// endpoints, symbols with a fixed extent around their origin, texts and
// flags with smaller margins, shapes with their bounding boxes. Padding is
// a fraction of the larger dimension; degenerate dimensions get a floor so
// single-element schematics stay visible. An empty schematic yields a
// fixed default window.
func ComputeViewBox(sch *ltspice.Schematic, cfg Config) ViewBox {
	var b bounds

	for _, w := range sch.Wires {
		b.add(w.X1, w.Y1, w.X2, w.Y2)
	}
	for _, sym := range sch.Symbols {
		b.add(sym.X-symbolExtent, sym.Y-symbolExtent, sym.X+symbolExtent, sym.Y+symbolExtent)
	}
	for _, t := range sch.Texts {
		b.add(t.X-textExtentX, t.Y-textExtentY, t.X+textExtentX, t.Y+textExtentY)
	}
	for _, f := range sch.Flags {
		b.add(f.X-flagExtent, f.Y-flagExtentMin, f.X+flagExtent, f.Y+flagExtent)
	}
	for _, p := range sch.IOPins {
		b.add(p.X-flagExtent, p.Y-flagExtentMin, p.X+flagExtent, p.Y+flagExtent)
	}
	for _, l := range sch.Shapes.Lines {
		b.add(l.X1, l.Y1, l.X2, l.Y2)
	}
	for _, c := range sch.Shapes.Circles {
		b.add(c.X1, c.Y1, c.X2, c.Y2)
	}
	for _, r := range sch.Shapes.Rectangles {
		b.add(r.X1, r.Y1, r.X2, r.Y2)
	}
	for _, a := range sch.Shapes.Arcs {
		b.add(a.X1, a.Y1, a.X2, a.Y2)
	}

	if !b.valid {
		return ViewBox{0, 0, 100, 100}
	}

	width := b.maxX - b.minX
	height := b.maxY - b.minY
	pad := math.Max(width, height) * cfg.ViewBoxPadding

	minX := b.minX - pad
	minY := b.minY - pad
	width += 2 * pad
	height += 2 * pad
	if width == 0 {
		width = 100
	}
	if height == 0 {
		height = 100
	}

	s := cfg.Scale
	return ViewBox{minX * s, minY * s, width * s, height * s}
}
