package render

import (
	"fmt"
	"math"

	"github.com/lt2svg/lt2svg/pkg/ltspice"
)

type segment struct {
	x1, y1, x2, y2 float64
}

// groundTemplate is the three-stroke ground glyph in flag-local units, a
// horizontal bar with two diagonals meeting below it.
var groundTemplate = []segment{
	{-16, 0, 16, 0},
	{-16, 0, 0, 16},
	{16, 0, 0, 16},
}

// ioPinTemplates are the port glyph outlines in pin-local units, keyed by
// direction, traced from the stock io_pin .asy symbols. Input is a closed
// five-segment house pointing at the pin, output points away, and the
// bidirectional glyph is a six-segment arrow hex.
var ioPinTemplates = map[ltspice.PinDirection][]segment{
	ltspice.DirIn: {
		{0, 0, 16, 16},
		{16, 16, 16, 80},
		{16, 80, -16, 80},
		{-16, 80, -16, 16},
		{-16, 16, 0, 0},
	},
	ltspice.DirOut: {
		{-16, 80, 0, 96},
		{16, 16, 16, 80},
		{16, 16, -16, 16},
		{-16, 80, -16, 16},
		{0, 96, 16, 80},
		{0, 16, 0, 0},
	},
	ltspice.DirBiDir: {
		{16, 16, 0, 0},
		{-16, 84, -16, 16},
		{16, 16, 16, 84},
		{0, 0, -16, 16},
		{0, 100, -16, 84},
		{0, 100, 16, 84},
	},
}

// DeriveOrientation infers a flag's display orientation from the wires
// incident at its position. Each incident wire direction is snapped to the
// nearest 90 degrees and offset by 90 so the glyph hangs off the wire. All
// vertical wires give 270, all horizontal give 90, a mix follows the first
// wire, no wires at all give 0.
func DeriveOrientation(p ltspice.Point, wires []ltspice.Wire) int {
	var angles []int
	for _, w := range wires {
		var dx, dy float64
		switch {
		case w.P1() == p:
			dx, dy = w.X2-w.X1, w.Y2-w.Y1
		case w.P2() == p:
			dx, dy = w.X1-w.X2, w.Y1-w.Y2
		default:
			continue
		}
		deg := math.Atan2(dy, dx) * 180 / math.Pi
		snapped := int(math.Round(deg/90)) * 90
		angles = append(angles, ((snapped+90)%360+360)%360)
	}
	if len(angles) == 0 {
		return 0
	}

	allVertical, allHorizontal := true, true
	for _, a := range angles {
		// A vertical wire snaps to 90 or 270, landing on 180 or 0 after
		// the offset.
		if a == 180 || a == 0 {
			allHorizontal = false
		} else {
			allVertical = false
		}
	}
	switch {
	case allVertical:
		return 270
	case allHorizontal:
		return 90
	}
	return angles[0]
}

// glyphGroup builds the translated and rotated group for a fixed-template
// glyph anchored at a schematic point.
func glyphGroup(x, y float64, orientation int, class string, template []segment, cfg Config) Group {
	s := cfg.Scale
	g := Group{
		Class: class,
		Transform: fmt.Sprintf("translate(%s,%s) rotate(%d)",
			num(x*s), num(y*s), orientation),
	}
	for _, seg := range template {
		g.Children = append(g.Children, Line{
			X1: seg.x1 * s, Y1: seg.y1 * s, X2: seg.x2 * s, Y2: seg.y2 * s,
			StrokeWidth: cfg.StrokeWidth,
		})
	}
	return g
}

// EmitGroundFlag draws the ground glyph at the flag position, rotated to
// its derived orientation.
func EmitGroundFlag(f ltspice.Flag, orientation int, cfg Config) Primitive {
	return glyphGroup(f.X, f.Y, orientation, "ground", groundTemplate, cfg)
}

// EmitNetLabel lays out a named flag as a centered text run
// NetLabelDistance units above the flag point in the flag's local frame.
// At orientation 180 the text counter-rotates so it does not read upside
// down.
func EmitNetLabel(f ltspice.Flag, orientation int, cfg Config) Primitive {
	s := cfg.Scale
	g := Group{
		Class: "netlabel",
		Transform: fmt.Sprintf("translate(%s,%s) rotate(%d)",
			num(f.X*s), num(f.Y*s), orientation),
	}
	transform := ""
	if orientation == 180 {
		transform = "rotate(-180)"
	}
	g.Children = append(g.Children, TextRun{
		X:         0,
		Y:         -cfg.NetLabelDistance * s,
		Content:   f.Net,
		Anchor:    AnchorMiddle,
		FontSize:  cfg.fontSize(defaultSizeIndex),
		Transform: transform,
	})
	return g
}

// EmitIOPin draws a port glyph plus its net label. The glyph rotates to
// the pin's derived orientation. The label sits a fixed distance out from
// the pin point along the glyph axis in absolute coordinates, reading
// vertically for orientations 0 and 180 and horizontally otherwise, with
// the usual optical-centering nudge along the reading axis.
func EmitIOPin(pin ltspice.IOPin, orientation int, cfg Config) []Primitive {
	template, ok := ioPinTemplates[pin.Direction]
	if !ok {
		template = ioPinTemplates[ltspice.DirBiDir]
	}
	prims := []Primitive{glyphGroup(pin.X, pin.Y, orientation, "iopin", template, cfg)}

	if cfg.NoPinName || pin.Net == "" {
		return prims
	}

	s := cfg.Scale
	fontSize := cfg.fontSize(defaultSizeIndex)
	nudge := fontSize * offsetMiddle
	var x, y float64
	rotated := false
	switch orientation {
	case 0: // pointing right
		x = pin.X*s + nudge
		y = (pin.Y + cfg.NetLabelDistance) * s
		rotated = true
	case 90: // pointing up
		x = (pin.X - cfg.NetLabelDistance) * s
		y = pin.Y*s + nudge
	case 180: // pointing left
		x = pin.X*s + nudge
		y = (pin.Y - cfg.NetLabelDistance) * s
		rotated = true
	default: // 270, pointing down
		x = (pin.X + cfg.NetLabelDistance) * s
		y = pin.Y*s + nudge
	}
	transform := ""
	if rotated {
		transform = fmt.Sprintf("rotate(-90 %s %s)", num(x), num(y))
	}
	prims = append(prims, TextRun{
		X:         x,
		Y:         y,
		Content:   pin.Net,
		Anchor:    AnchorMiddle,
		FontSize:  fontSize,
		Transform: transform,
	})
	return prims
}
