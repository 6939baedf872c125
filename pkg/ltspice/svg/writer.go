// Package svg serializes a rendered document as an SVG file.
package svg

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/lt2svg/lt2svg/pkg/ltspice/render"
)

// FontFamily is the typeface used for all text runs.
const FontFamily = "Arial"

// Write serializes the document to w as a standalone SVG image sized to
// its viewbox.
func Write(w io.Writer, doc *render.Document) {
	canvas := svg.New(w)
	vb := doc.ViewBox
	canvas.Startview(vb.Width, vb.Height, vb.MinX, vb.MinY, vb.Width, vb.Height)
	writePrimitives(canvas, doc.Primitives)
	canvas.End()
}

func writePrimitives(canvas *svg.SVG, prims []render.Primitive) {
	for _, p := range prims {
		switch v := p.(type) {
		case render.Line:
			canvas.Line(v.X1, v.Y1, v.X2, v.Y2, strokeStyle(v.StrokeWidth, v.Dash))
		case render.Circle:
			if v.Filled {
				canvas.Circle(v.CX, v.CY, v.R, `fill="black" stroke="none"`)
			} else {
				canvas.Circle(v.CX, v.CY, v.R, strokeStyle(v.StrokeWidth, v.Dash))
			}
		case render.Ellipse:
			canvas.Ellipse(v.CX, v.CY, v.RX, v.RY, strokeStyle(v.StrokeWidth, v.Dash))
		case render.Rect:
			canvas.Rect(v.X, v.Y, v.W, v.H, strokeStyle(v.StrokeWidth, ""))
		case render.Path:
			canvas.Path(v.D, strokeStyle(v.StrokeWidth, v.Dash))
		case render.TextRun:
			canvas.Text(v.X, v.Y, v.Content, textStyle(v))
		case render.Group:
			canvas.Group(groupAttrs(v)...)
			writePrimitives(canvas, v.Children)
			canvas.Gend()
		}
	}
}

// strokeStyle builds the attribute string for monochrome line art with
// round caps.
func strokeStyle(width float64, dash string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `stroke="black" stroke-width="%s" stroke-linecap="round" fill="none"`, num(width))
	if dash != "" {
		fmt.Fprintf(&b, ` stroke-dasharray="%s"`, dash)
	}
	return b.String()
}

func textStyle(t render.TextRun) string {
	var b strings.Builder
	fmt.Fprintf(&b, `font-family="%s" font-size="%spx" text-anchor="%s" fill="black"`,
		FontFamily, num(t.FontSize), t.Anchor)
	if t.Transform != "" {
		fmt.Fprintf(&b, ` transform="%s"`, t.Transform)
	}
	return b.String()
}

func groupAttrs(g render.Group) []string {
	var attrs []string
	if g.Transform != "" {
		attrs = append(attrs, fmt.Sprintf(`transform="%s"`, g.Transform))
	}
	if g.Class != "" {
		attrs = append(attrs, fmt.Sprintf(`class="%s"`, g.Class))
	}
	return attrs
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
