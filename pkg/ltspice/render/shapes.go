package render

import (
	"fmt"
	"math"

	"github.com/lt2svg/lt2svg/pkg/ltspice"
)

// circleTolerance is how far the two radii of a bounding box may differ
// before the shape is emitted as an ellipse rather than a circle. It
// absorbs integer-grid rounding.
const circleTolerance = 0.01

// EmitLine converts a line record into a primitive.
func EmitLine(l ltspice.Line, cfg Config) (Primitive, error) {
	dash, err := ScaleDashArray(l.Style, cfg.StrokeWidth)
	if err != nil {
		return nil, err
	}
	s := cfg.Scale
	return Line{
		X1: l.X1 * s, Y1: l.Y1 * s, X2: l.X2 * s, Y2: l.Y2 * s,
		StrokeWidth: cfg.StrokeWidth,
		Dash:        dash,
	}, nil
}

// EmitCircle converts a circle record into a circle or ellipse primitive,
// depending on whether its bounding box is square within tolerance.
func EmitCircle(c ltspice.Circle, cfg Config) (Primitive, error) {
	dash, err := ScaleDashArray(c.Style, cfg.StrokeWidth)
	if err != nil {
		return nil, err
	}
	s := cfg.Scale
	cx := (c.X1 + c.X2) / 2 * s
	cy := (c.Y1 + c.Y2) / 2 * s
	rx := math.Abs(c.X2-c.X1) / 2 * s
	ry := math.Abs(c.Y2-c.Y1) / 2 * s
	if math.Abs(rx-ry) < circleTolerance {
		return Circle{CX: cx, CY: cy, R: rx, StrokeWidth: cfg.StrokeWidth, Dash: dash}, nil
	}
	return Ellipse{CX: cx, CY: cy, RX: rx, RY: ry, StrokeWidth: cfg.StrokeWidth, Dash: dash}, nil
}

// EmitRect converts a rectangle record into a primitive. Solid rectangles
// become native rects; styled ones become a closed 4-segment path so that
// round line caps render correctly at the corners.
func EmitRect(r ltspice.Rect, cfg Config) (Primitive, error) {
	s := cfg.Scale
	x := math.Min(r.X1, r.X2) * s
	y := math.Min(r.Y1, r.Y2) * s
	w := math.Abs(r.X2-r.X1) * s
	h := math.Abs(r.Y2-r.Y1) * s
	if r.Style == "" {
		return Rect{X: x, Y: y, W: w, H: h, StrokeWidth: cfg.StrokeWidth}, nil
	}
	dash, err := ScaleDashArray(r.Style, cfg.StrokeWidth)
	if err != nil {
		return nil, err
	}
	d := fmt.Sprintf("M %s,%s L %s,%s L %s,%s L %s,%s Z",
		num(x), num(y), num(x+w), num(y), num(x+w), num(y+h), num(x), num(y+h))
	return Path{D: d, StrokeWidth: cfg.StrokeWidth, Dash: dash}, nil
}

// EmitArc converts an arc record into a single-segment elliptical arc path.
func EmitArc(a ltspice.Arc, cfg Config) (Primitive, error) {
	dash, err := ScaleDashArray(a.Style, cfg.StrokeWidth)
	if err != nil {
		return nil, err
	}
	s := cfg.Scale
	cx := (a.X1 + a.X2) / 2 * s
	cy := (a.Y1 + a.Y2) / 2 * s
	rx := math.Abs(a.X2-a.X1) / 2 * s
	ry := math.Abs(a.Y2-a.Y1) / 2 * s
	startX := cx + rx*math.Cos(a.StartAngle*math.Pi/180)
	startY := cy + ry*math.Sin(a.StartAngle*math.Pi/180)
	endX := cx + rx*math.Cos(a.EndAngle*math.Pi/180)
	endY := cy + ry*math.Sin(a.EndAngle*math.Pi/180)
	largeArc, sweep := ArcFlags(a.StartAngle, a.EndAngle)
	d := fmt.Sprintf("M %s,%s A %s,%s 0 %s %s %s,%s",
		num(startX), num(startY), num(rx), num(ry),
		flag(largeArc), flag(sweep), num(endX), num(endY))
	return Path{D: d, StrokeWidth: cfg.StrokeWidth, Dash: dash}, nil
}

// EmitShapes emits every shape in the group in record order. A shape that
// fails (bad dash pattern) is dropped and its error collected; the rest of
// the group still renders.
func EmitShapes(shapes ltspice.Shapes, cfg Config) ([]Primitive, []error) {
	var prims []Primitive
	var errs []error
	add := func(p Primitive, err error) {
		if err != nil {
			errs = append(errs, err)
			return
		}
		prims = append(prims, p)
	}
	for _, l := range shapes.Lines {
		add(EmitLine(l, cfg))
	}
	for _, c := range shapes.Circles {
		add(EmitCircle(c, cfg))
	}
	for _, r := range shapes.Rectangles {
		add(EmitRect(r, cfg))
	}
	for _, a := range shapes.Arcs {
		add(EmitArc(a, cfg))
	}
	return prims, errs
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
